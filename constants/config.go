package constants

// Configuration files
const (
	ConfigFileName  = "beemchart.config.json"
	ChartSchemaFile = "chart.schema.json"
)

// Blob drivers
const (
	BlobDriverFilesystem = "filesystem"
	BlobDriverS3         = "s3"
)

// Tracing exporters
const (
	TracingExporterNone   = "none"
	TracingExporterStdout = "stdout"
	TracingExporterOTLP   = "otlp"
)
