package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/awantoch/beemchart/constants"
)

// HTTPErrorResponse is the JSON body returned for failed requests.
type HTTPErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

// WriteHTTPError writes a JSON error body with the given status code.
func WriteHTTPError(w http.ResponseWriter, message string, code int) {
	body, err := json.Marshal(HTTPErrorResponse{
		Error:   http.StatusText(code),
		Message: message,
		Code:    code,
	})
	if err != nil {
		w.Header().Set(constants.HeaderContentType, constants.ContentTypeText)
		w.WriteHeader(code)
		fmt.Fprintf(w, "Error: %s", message)
		return
	}
	w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
	w.WriteHeader(code)
	_, _ = w.Write(body)
}

// WriteHTTPBody writes a 200 response with the given content type.
func WriteHTTPBody(w http.ResponseWriter, contentType, body string) {
	w.Header().Set(constants.HeaderContentType, contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}
