package logger

import (
	"io"
	"log/slog"
)

const (
	EnvLocal = "local"
	EnvProd  = "production"
	EnvTest  = "test"
	EnvDev   = "development"
)

func SetupLogger(env string, w io.Writer) *slog.Logger {
	var log *slog.Logger
	switch env {
	case EnvTest, EnvDev:
		log = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case EnvProd:
		log = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return log
}
