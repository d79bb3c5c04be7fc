package logs

import (
	"io"
	"os"
	"strings"

	"github.com/natefinch/lumberjack"
	"github.com/reusedev/newsletter-hub/config"
	"github.com/rs/zerolog"
)

var (
	Logger = zerolog.Nop()
)

func InitLogger() {
	Logger = NewLogger(config.GConfig, os.Stderr)
}

// NewLogger builds a logger from cfg. Console output goes to console and is
// only enabled at debug level or below; stdout is left to subscribers.
func NewLogger(cfg *config.Config, console io.Writer) zerolog.Logger {
	level := parseLogLevel(cfg.LogLevel)
	zerolog.SetGlobalLevel(level)

	var writers []io.Writer
	if cfg.LogFile != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.LogMaxSize,
			MaxBackups: cfg.LogMaxBackups,
			MaxAge:     cfg.LogMaxAge,
			Compress:   true,
		})
	}
	if level <= zerolog.DebugLevel {
		writers = append(writers, zerolog.ConsoleWriter{Out: console})
	}
	if len(writers) == 0 {
		return zerolog.Nop()
	}

	return zerolog.New(io.MultiWriter(writers...)).Level(level).With().Timestamp().Logger()
}

func parseLogLevel(levelStr string) zerolog.Level {
	switch strings.ToLower(levelStr) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	default:
		return zerolog.InfoLevel
	}
}
