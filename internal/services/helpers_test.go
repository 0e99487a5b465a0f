package services

import (
	"io"
	"log/slog"

	"imagevault/internal/logging"
)

func newTestLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
