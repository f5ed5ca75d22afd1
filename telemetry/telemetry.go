package telemetry

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/awantoch/beemchart/config"
	"github.com/awantoch/beemchart/constants"
	"github.com/awantoch/beemchart/utils"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "beemchart_http_requests_total",
			Help: "Total number of HTTP requests received.",
		},
		[]string{"handler", "method", "code"},
	)
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "beemchart_http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"handler", "method"},
	)
	chartsRendered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "beemchart_charts_rendered_total",
			Help: "Charts rendered, by output format.",
		},
		[]string{"format"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal, httpRequestDuration, chartsRendered)
}

// Init installs a tracer provider for the configured exporter ("stdout" or
// "otlp"). It returns a shutdown func that flushes pending spans; with no
// tracing configured it is a no-op.
func Init(ctx context.Context, cfg *config.Config) (func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }
	if cfg == nil || cfg.Tracing == nil {
		return noop, nil
	}

	var (
		exp sdktrace.SpanExporter
		err error
	)
	switch cfg.Tracing.Exporter {
	case "", constants.TracingExporterNone:
		return noop, nil
	case constants.TracingExporterStdout:
		exp, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	case constants.TracingExporterOTLP:
		var opts []otlptracehttp.Option
		if cfg.Tracing.Endpoint != "" {
			opts = append(opts, otlptracehttp.WithEndpointURL(cfg.Tracing.Endpoint))
		}
		exp, err = otlptracehttp.New(ctx, opts...)
	default:
		return noop, utils.Errorf("unsupported tracing exporter: %s", cfg.Tracing.Exporter)
	}
	if err != nil {
		return noop, err
	}

	serviceName := constants.DefaultServiceName
	if cfg.Tracing.ServiceName != "" {
		serviceName = cfg.Tracing.ServiceName
	}
	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(serviceName)))
	if err != nil {
		return noop, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	utils.Debug("tracing enabled with %s exporter", cfg.Tracing.Exporter)
	return tp.Shutdown, nil
}

// WrapHandler applies tracing, Prometheus metrics, and otelhttp middleware.
func WrapHandler(name string, next http.Handler) http.Handler {
	h := otelhttp.NewHandler(next, name)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		h.ServeHTTP(rw, r)
		httpRequestsTotal.WithLabelValues(name, r.Method, strconv.Itoa(rw.status)).Inc()
		httpRequestDuration.WithLabelValues(name, r.Method).Observe(time.Since(start).Seconds())
	})
}

// ChartRendered counts one rendered chart in the given format.
func ChartRendered(format string) {
	chartsRendered.WithLabelValues(format).Inc()
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

// MetricsHandler returns the Prometheus metrics endpoint handler.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
