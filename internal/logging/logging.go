// Package logging builds the zap logger used across vanta-mcp.
//
// Stdout is reserved for MCP protocol frames, so every logger writes to
// stderr unless a different sink is supplied.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a logger writing to stderr at the given level and format.
func New(level, format string) (*zap.Logger, error) {
	return NewWithWriter(level, format, os.Stderr)
}

// NewWithWriter builds a logger writing to w.
// format is "console" or "json"; level is any zap level name.
func NewWithWriter(level, format string, w io.Writer) (*zap.Logger, error) {
	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch format {
	case "json":
		encoder = zapcore.NewJSONEncoder(encCfg)
	case "console", "":
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(w)), zap.NewAtomicLevelAt(zapLevel))
	return zap.New(core, zap.AddStacktrace(zapcore.ErrorLevel)), nil
}

// StdLogger adapts logger for APIs that want a *log.Logger, such as the
// mcp-go stdio error logger.
func StdLogger(logger *zap.Logger) *log.Logger {
	return zap.NewStdLog(logger.Named("stdio"))
}
