package cli

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the zap logger of the commands, writing to stderr at level
// (or at debug, if verbose).
func NewLogger(level string, verbose bool) (*zap.Logger, error) {
	config, err := loggerConfig(level, verbose)
	if err != nil {
		return nil, err
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

//loggerConfig is the production config with a console encoder, so a failure
//reads "ERROR<tab>message<tab>{fields}". Stacktraces, timestamps and callers
//are off, so every entry is a single short line.
func loggerConfig(level string, verbose bool) (zap.Config, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.DisableStacktrace = true
	config.EncoderConfig.TimeKey = ""
	config.EncoderConfig.CallerKey = ""
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return config, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	config.Level = zap.NewAtomicLevelAt(lvl)
	return config, nil
}
