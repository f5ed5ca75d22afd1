package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/awantoch/beemchart/chart"
	"github.com/awantoch/beemchart/config"
	"github.com/awantoch/beemchart/constants"
	"github.com/awantoch/beemchart/document"
	"github.com/awantoch/beemchart/export"
	"github.com/awantoch/beemchart/telemetry"
	"github.com/awantoch/beemchart/utils"
)

const shutdownTimeout = 5 * time.Second

// NewHandler builds the preview API:
//
//	POST /render   chart document in, Mermaid source out
//	POST /preview  chart document in, HTML preview page out
//	GET  /healthz
//	GET  /metrics
func NewHandler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(constants.RouteRender, telemetry.WrapHandler("render", http.HandlerFunc(renderHandler)))
	mux.Handle(constants.RoutePreview, telemetry.WrapHandler("preview", http.HandlerFunc(previewHandler)))
	mux.HandleFunc(constants.RouteHealth, healthHandler)
	mux.Handle(constants.RouteMetrics, telemetry.MetricsHandler())
	return withRequestID(mux)
}

// StartServer serves NewHandler on cfg.HTTP until ctx is cancelled, then
// shuts down gracefully.
func StartServer(ctx context.Context, cfg *config.Config) error {
	host, port := constants.DefaultHTTPHost, constants.DefaultHTTPPort
	if cfg != nil {
		if cfg.HTTP.Host != "" {
			host = cfg.HTTP.Host
		}
		if cfg.HTTP.Port != 0 {
			port = cfg.HTTP.Port
		}
	}
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	return serve(ctx, addr)
}

func serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewHandler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		utils.Info("beemchart preview server listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(constants.HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(constants.HeaderRequestID, reqID)
		ctx := utils.WithRequestID(r.Context(), reqID)
		utils.DebugCtx(ctx, "request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// POST /render
func renderHandler(w http.ResponseWriter, r *http.Request) {
	c, _, ok := loadChart(w, r)
	if !ok {
		return
	}
	telemetry.ChartRendered(string(export.FormatMermaid))
	utils.WriteHTTPBody(w, constants.ContentTypeText, c.Render())
}

// POST /preview
func previewHandler(w http.ResponseWriter, r *http.Request) {
	c, doc, ok := loadChart(w, r)
	if !ok {
		return
	}
	page, err := export.RenderHTML(c, export.WithTitle(doc.Title))
	if err != nil {
		utils.ErrorCtx(r.Context(), "preview render failed", "error", err)
		utils.WriteHTTPError(w, "failed to render preview", http.StatusInternalServerError)
		return
	}
	telemetry.ChartRendered(string(export.FormatHTML))
	utils.WriteHTTPBody(w, constants.ContentTypeHTML, page)
}

// GET /healthz
func healthHandler(w http.ResponseWriter, r *http.Request) {
	utils.WriteHTTPBody(w, constants.ContentTypeText, "ok")
}

// loadChart reads a chart document from the request body. On failure it has
// already written the error response.
func loadChart(w http.ResponseWriter, r *http.Request) (*chart.Chart, *document.Document, bool) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		utils.WriteHTTPError(w, "use POST with a chart document body", http.StatusMethodNotAllowed)
		return nil, nil, false
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, constants.MaxRequestBodySize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.WriteHTTPError(w, "request body too large", http.StatusRequestEntityTooLarge)
			return nil, nil, false
		}
		utils.WarnCtx(r.Context(), "failed to read request body", "error", err)
		utils.WriteHTTPError(w, "failed to read request body", http.StatusBadRequest)
		return nil, nil, false
	}
	c, doc, err := document.LoadBytes(body)
	if err != nil {
		utils.WarnCtx(r.Context(), "rejected chart document", "error", err)
		utils.WriteHTTPError(w, err.Error(), http.StatusBadRequest)
		return nil, nil, false
	}
	return c, doc, true
}
