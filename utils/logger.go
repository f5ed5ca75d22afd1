package utils

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/awantoch/beemchart/constants"
)

var (
	userLogger     *log.Logger
	internalLogger *zap.SugaredLogger
	loggerMu       sync.RWMutex
	loggerMode     = constants.LogModeProduction
)

type requestIDKeyType struct{}

var requestIDKey = requestIDKeyType{}

func init() {
	userLogger = log.New(os.Stdout, "", 0)
	initLoggers(constants.LogModeProduction)
}

func initLoggers(mode string) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if os.Getenv(constants.EnvDebug) != "" || mode == constants.LogModeDebug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		log.Printf("zap init failed: %v, internal logging disabled", err)
		internalLogger = nil
		return
	}
	internalLogger = l.Sugar()
}

func sugar() *zap.SugaredLogger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return internalLogger
}

// User prints a plain line for the person running the CLI.
func User(format string, v ...any) {
	loggerMu.RLock()
	l := userLogger
	loggerMu.RUnlock()
	l.Printf(format, v...)
}

func Info(format string, v ...any) {
	if l := sugar(); l != nil {
		l.Infof(format, v...)
	}
}

func Warn(format string, v ...any) {
	if l := sugar(); l != nil {
		l.Warnf(format, v...)
	}
}

func Error(format string, v ...any) {
	if l := sugar(); l != nil {
		l.Errorf(format, v...)
	}
}

func Debug(format string, v ...any) {
	if l := sugar(); l != nil {
		l.Debugf(format, v...)
	}
}

// Errorf logs the error message and returns it as an error value.
func Errorf(format string, v ...any) error {
	err := fmt.Errorf(format, v...)
	if l := sugar(); l != nil {
		l.Errorf("%s", err)
	}
	return err
}

func SetUserOutput(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	loggerMu.Lock()
	defer loggerMu.Unlock()
	userLogger = log.New(w, "", 0)
}

// SetInternalOutput redirects internal logs to w at debug level, used by tests
// that capture stderr.
func SetInternalOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	loggerMu.Lock()
	defer loggerMu.Unlock()
	internalLogger = zap.New(core).Sugar()
}

// SetMode switches between "production" and "debug" logging.
func SetMode(mode string) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	loggerMode = mode
	initLoggers(mode)
}

// SetLevel maps a config log level onto a logger mode.
func SetLevel(level string) {
	switch strings.ToLower(level) {
	case "debug":
		SetMode(constants.LogModeDebug)
	case "", "info":
		// default
	default:
		Warn("unknown log level %q, keeping %s", level, Mode())
	}
}

func Mode() string {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return loggerMode
}

// WithRequestID returns a new context with the given request ID.
func WithRequestID(ctx context.Context, reqID string) context.Context {
	return context.WithValue(ctx, requestIDKey, reqID)
}

// RequestIDFromContext extracts the request ID from context, if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(requestIDKey).(string)
	return s, ok
}

func withRequestID(ctx context.Context, fields []any) []any {
	if reqID, ok := RequestIDFromContext(ctx); ok {
		fields = append(fields, "request_id", reqID)
	}
	return fields
}

func InfoCtx(ctx context.Context, msg string, fields ...any) {
	if l := sugar(); l != nil {
		l.Infow(msg, withRequestID(ctx, fields)...)
	}
}

func WarnCtx(ctx context.Context, msg string, fields ...any) {
	if l := sugar(); l != nil {
		l.Warnw(msg, withRequestID(ctx, fields)...)
	}
}

func ErrorCtx(ctx context.Context, msg string, fields ...any) {
	if l := sugar(); l != nil {
		l.Errorw(msg, withRequestID(ctx, fields)...)
	}
}

func DebugCtx(ctx context.Context, msg string, fields ...any) {
	if l := sugar(); l != nil {
		l.Debugw(msg, withRequestID(ctx, fields)...)
	}
}
