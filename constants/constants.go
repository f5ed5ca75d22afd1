package constants

// Diagram
const (
	KindFlowchart    = "flowchart"
	DirectionDefault = "TD"
	ShapeDefault     = "[]"
)

// File extensions
const (
	ExtMermaid = ".mmd"
	ExtHTML    = ".html"
)

// Logger modes
const (
	LogModeProduction = "production"
	LogModeDebug      = "debug"
)

// Environment variables
const (
	EnvDebug      = "BEEMCHART_DEBUG"
	EnvOutputDir  = "BEEMCHART_OUTPUT_DIR"
	EnvHTTPPort   = "BEEMCHART_HTTP_PORT"
	EnvBlobDriver = "BEEMCHART_BLOB_DRIVER"
)

// DefaultServiceName is reported to tracing backends.
const DefaultServiceName = "beemchart"

// FilePermission is used for every exported file.
const FilePermission = 0o644
