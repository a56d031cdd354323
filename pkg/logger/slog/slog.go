package slog

import (
	"log/slog"

	"github.com/kvdoc/document/pkg/logger"
)

// SlogHandler implements logger.Logger on top of a slog.Handler.
// Identity values passed as args are logged as groups through their LogValue method.
type SlogHandler struct {
	logger *slog.Logger
}

func New(h slog.Handler) *SlogHandler {
	logger := slog.New(h)
	return &SlogHandler{logger: logger}
}

func (handler *SlogHandler) Error(msg string, args ...any) {
	handler.logger.Error(msg, args...)
}

func (handler *SlogHandler) Warn(msg string, args ...any) {
	handler.logger.Warn(msg, args...)
}

func (handler *SlogHandler) Info(msg string, args ...any) {
	handler.logger.Info(msg, args...)
}

func (handler *SlogHandler) Debug(msg string, args ...any) {
	handler.logger.Debug(msg, args...)
}

// With returns a SlogHandler whose entries carry args, e.g. the command being run.
func (handler *SlogHandler) With(args ...any) logger.Logger {
	return &SlogHandler{logger: handler.logger.With(args...)}
}
