package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logger configuration
type Config struct {
	Level      string // debug, info, warn, error
	Format     string // json, console
	Output     string // stdout, stderr, none, or file path
	TimeFormat string
}

// DefaultFile is where the TUI logs, stdout belongs to the screen
const DefaultFile = "studyreel.log"

// DefaultConfig returns the configuration used by the terminal UI
func DefaultConfig() *Config {
	return &Config{
		Level:      "info",
		Format:     "console",
		Output:     DefaultFile,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	}
}

// CommandConfig is for the non-interactive subcommands
func CommandConfig() *Config {
	return &Config{
		Level:      "warn",
		Format:     "console",
		Output:     "stderr",
		TimeFormat: "15:04:05",
	}
}

// New creates a zap logger. The returned close func releases the output file.
func New(cfg *Config) (*zap.Logger, func() error, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	writer, closer, err := createWriter(cfg.Output)
	if err != nil {
		return nil, nil, err
	}
	if writer == nil {
		return zap.NewNop(), closer, nil
	}

	core := zapcore.NewCore(createEncoder(cfg), writer, level)
	logger := zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	return logger, closer, nil
}

// parseLevel converts a string level to zapcore.Level
func parseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info", "":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

func createEncoder(cfg *Config) zapcore.Encoder {
	timeFormat := cfg.TimeFormat
	if timeFormat == "" {
		timeFormat = DefaultConfig().TimeFormat
	}
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout(timeFormat),
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	if cfg.Format == "json" {
		return zapcore.NewJSONEncoder(encoderConfig)
	}
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(encoderConfig)
}

// createWriter returns a nil syncer for "none"
func createWriter(output string) (zapcore.WriteSyncer, func() error, error) {
	noop := func() error { return nil }
	switch strings.ToLower(output) {
	case "none", "off":
		return nil, noop, nil
	case "stdout":
		return zapcore.AddSync(os.Stdout), noop, nil
	case "stderr":
		return zapcore.AddSync(os.Stderr), noop, nil
	case "":
		output = DefaultFile
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	file, err := os.OpenFile(output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return zapcore.AddSync(file), file.Close, nil
}

// NewWriter builds a logger on top of w, used by tests and embedding hosts
func NewWriter(w io.Writer, level string) (*zap.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	cfg.Format = "json"
	core := zapcore.NewCore(createEncoder(cfg), zapcore.AddSync(w), lvl)
	return zap.New(core), nil
}
