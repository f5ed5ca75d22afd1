package constants

// Content types
const (
	ContentTypeJSON    = "application/json"
	ContentTypeText    = "text/plain; charset=utf-8"
	ContentTypeHTML    = "text/html; charset=utf-8"
	ContentTypeMermaid = "text/vnd.mermaid"
)

// Headers
const (
	HeaderContentType = "Content-Type"
	HeaderRequestID   = "X-Request-ID"
)

// Routes
const (
	RouteRender  = "/render"
	RoutePreview = "/preview"
	RouteHealth  = "/healthz"
	RouteMetrics = "/metrics"
)

// Server defaults
const (
	DefaultHTTPHost    = "localhost"
	DefaultHTTPPort    = 3333
	MaxRequestBodySize = 1 << 20
)
