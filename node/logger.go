package node

import (
	"fmt"
	"io"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aicredit/go-aicredit/config"
)

// NewLogger creates the root logger that writes to out with the configured encoder.
// Every level is enabled in the core, module loggers filter entries with their own levels.
func NewLogger(out io.Writer, encoding config.LogEncoder) *zap.Logger {
	var encoder zapcore.Encoder
	switch encoding {
	case config.JSONLogEncoder:
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	default:
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}
	core := zapcore.NewCore(encoder, zapcore.AddSync(out), zap.NewAtomicLevelAt(zapcore.DebugLevel))
	return zap.New(core)
}

func decodeLoggerLevel(cfg *config.Config, name string) (zap.AtomicLevel, error) {
	lvl := zap.NewAtomicLevel()
	loggers := map[string]string{}
	if err := mapstructure.Decode(cfg.LOGGING, &loggers); err != nil {
		return zap.AtomicLevel{}, fmt.Errorf("error decoding mapstructure: %w", err)
	}

	level, ok := loggers[name]
	if ok {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return zap.AtomicLevel{}, fmt.Errorf("cannot parse logging for %v: %w", name, err)
		}
	} else {
		lvl.SetLevel(zapcore.InfoLevel)
	}
	return lvl, nil
}

// Wrap the root logger to set the level for a specific module.
// Calling this method will create a new logger every time
// and not re-use an existing logger with the same name.
//
// This method is not safe to be called concurrently.
func (app *App) addLogger(name string, logger *zap.Logger) (*zap.Logger, error) {
	lvl, err := decodeLoggerLevel(app.Config, name)
	if err != nil {
		return nil, err
	}
	app.loggers[name] = &lvl
	return logger.WithOptions(zap.IncreaseLevel(lvl)).Named(name), nil
}

// SetLogLevel updates the log level of an existing logger.
func (app *App) SetLogLevel(name, loglevel string) error {
	lvl, ok := app.loggers[name]
	if !ok {
		return fmt.Errorf("cannot find logger %v", name)
	}
	if err := lvl.UnmarshalText([]byte(loglevel)); err != nil {
		return fmt.Errorf("unmarshal text: %w", err)
	}
	return nil
}
