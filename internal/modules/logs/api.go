package logs

import (
	"io"
	"os"
	"strings"

	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/config"
	"github.com/natefinch/lumberjack"
	"github.com/rs/zerolog"
)

var (
	Logger zerolog.Logger
)

func InitLogger() {
	cfg := config.GConfig

	level := parseLogLevel(cfg.LogLevel)
	zerolog.SetGlobalLevel(level)

	var writers []io.Writer

	logFile := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   true,
	}
	writers = append(writers, logFile)

	if level <= zerolog.DebugLevel {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stdout})
	}

	multiWriter := io.MultiWriter(writers...)

	Logger = zerolog.New(multiWriter).With().Timestamp().Logger()
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
