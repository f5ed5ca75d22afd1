package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/awantoch/beemchart/constants"
)

func TestLoggerOutputs(t *testing.T) {
	var userBuf bytes.Buffer
	SetUserOutput(&userBuf)
	User("test user output %d", 1)
	if userBuf.String() != "test user output 1\n" {
		t.Errorf("user output not captured correctly: %q", userBuf.String())
	}

	var internalBuf bytes.Buffer
	SetInternalOutput(&internalBuf)
	Info("test internal output")
	Debug("debug is captured too")
	if !strings.Contains(internalBuf.String(), "test internal output") {
		t.Error("internal output not captured correctly")
	}
	if !strings.Contains(internalBuf.String(), "debug is captured too") {
		t.Error("debug output not captured")
	}

	SetUserOutput(nil)
	SetInternalOutput(nil)
}

func TestErrorf(t *testing.T) {
	var buf bytes.Buffer
	SetInternalOutput(&buf)
	defer SetInternalOutput(nil)

	err := Errorf("bad %s", "thing")
	if err == nil || err.Error() != "bad thing" {
		t.Fatalf("unexpected error %v", err)
	}
	if !strings.Contains(buf.String(), "bad thing") {
		t.Errorf("expected error to be logged, got %q", buf.String())
	}
}

func TestSetModeAndLevel(t *testing.T) {
	defer SetMode(constants.LogModeProduction)

	SetLevel("debug")
	if Mode() != constants.LogModeDebug {
		t.Errorf("expected debug mode, got %s", Mode())
	}
	SetMode(constants.LogModeProduction)
	SetLevel("info")
	if Mode() != constants.LogModeProduction {
		t.Errorf("info level should keep production mode, got %s", Mode())
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	if _, ok := RequestIDFromContext(ctx); ok {
		t.Error("expected no request id in empty context")
	}
	ctx = WithRequestID(ctx, "req-1")
	if id, ok := RequestIDFromContext(ctx); !ok || id != "req-1" {
		t.Errorf("expected req-1, got %q %v", id, ok)
	}

	var buf bytes.Buffer
	SetInternalOutput(&buf)
	defer SetInternalOutput(nil)
	InfoCtx(ctx, "handled", "path", "/render")
	if !strings.Contains(buf.String(), "req-1") || !strings.Contains(buf.String(), "/render") {
		t.Errorf("expected request id and fields in log, got %q", buf.String())
	}
}

func TestWriteHTTPError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteHTTPError(rec, "nope", http.StatusBadRequest)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if rec.Header().Get(constants.HeaderContentType) != constants.ContentTypeJSON {
		t.Errorf("unexpected content type %q", rec.Header().Get(constants.HeaderContentType))
	}
	var resp HTTPErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error != "Bad Request" || resp.Message != "nope" || resp.Code != 400 {
		t.Errorf("unexpected body %+v", resp)
	}
}

func TestWriteHTTPBody(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteHTTPBody(rec, constants.ContentTypeText, "flowchart TD")
	if rec.Code != http.StatusOK || rec.Body.String() != "flowchart TD" {
		t.Errorf("unexpected response %d %q", rec.Code, rec.Body.String())
	}
}
