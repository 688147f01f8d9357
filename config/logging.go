package config

import "go.uber.org/zap/zapcore"

// LogEncoder defines a log encoder kind.
type LogEncoder = string

const (
	defaultLoggingLevel = zapcore.InfoLevel
	// ConsoleLogEncoder represents logging with plain text.
	ConsoleLogEncoder LogEncoder = "console"
	// JSONLogEncoder represents logging with JSON.
	JSONLogEncoder LogEncoder = "json"
)

// LoggerConfig holds the logging level for each module.
type LoggerConfig struct {
	Encoder        LogEncoder `mapstructure:"log-encoder"`
	AppLoggerLevel string     `mapstructure:"app"`
	VMLoggerLevel  string     `mapstructure:"vm"`
	SQLLoggerLevel string     `mapstructure:"sql"`
}

func DefaultLoggingConfig() LoggerConfig {
	return LoggerConfig{
		Encoder:        ConsoleLogEncoder,
		AppLoggerLevel: defaultLoggingLevel.String(),
		VMLoggerLevel:  defaultLoggingLevel.String(),
		SQLLoggerLevel: zapcore.WarnLevel.String(),
	}
}

// Names of the module loggers.
const (
	AppLogger = "app"
	VMLogger  = "vm"
	SQLLogger = "sql"
)
