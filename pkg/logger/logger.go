package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

const (
	permission = 0664
)

// Logger is the leveled, key/value logger used across the module.
type Logger interface {
	Error(msg string, args ...any)
	Warn(msg string, args ...any)
	Info(msg string, args ...any)
	Debug(msg string, args ...any)

	// With returns a Logger that adds args to every entry.
	With(args ...any) Logger
}

type LogBuild struct {
	writer io.Writer
	path   string
	level  zerolog.Level
}

type LogData struct {
	writer  io.Writer
	LogFile *os.File
	Logger  zerolog.Logger
}

func New() *LogBuild {
	return &LogBuild{level: zerolog.InfoLevel}
}

func (build *LogBuild) FromPath(path string) *LogBuild {
	build.path = path
	return build
}

func (build *LogBuild) FromBuffer(w io.Writer) *LogBuild {
	build.writer = w
	return build
}

func (build *LogBuild) WithLevel(level zerolog.Level) *LogBuild {
	build.level = level
	return build
}

// Make opens the log file, if any, and builds the logger.
// The file takes precedence over a buffer; with neither, logs go to stderr.
func (build *LogBuild) Make() (logData *LogData, err error) {
	logData = new(LogData)
	logData.writer = os.Stderr
	if build.writer != nil {
		logData.writer = build.writer
	}
	if build.path != "" {
		logData.LogFile, err = os.OpenFile(build.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
		if err != nil {
			return nil, err
		}
		logData.writer = zerolog.SyncWriter(logData.LogFile)
	}
	logData.Logger = zerolog.New(logData.writer).Level(build.level).With().Timestamp().Logger()
	return
}

// Close closes the log file opened by Make.
func (logData *LogData) Close() error {
	if logData.LogFile == nil {
		return nil
	}
	return logData.LogFile.Close()
}

// Handler adapts the built zerolog logger to Logger.
func (logData *LogData) Handler() *ZerologHandler {
	return &ZerologHandler{logger: logData.Logger}
}

// ZerologHandler implements Logger on top of zerolog.
// args are key/value pairs, as with log/slog.
type ZerologHandler struct {
	logger zerolog.Logger
}

func (handler *ZerologHandler) Error(msg string, args ...any) {
	handler.logger.Error().Fields(args).Msg(msg)
}

func (handler *ZerologHandler) Warn(msg string, args ...any) {
	handler.logger.Warn().Fields(args).Msg(msg)
}

func (handler *ZerologHandler) Info(msg string, args ...any) {
	handler.logger.Info().Fields(args).Msg(msg)
}

func (handler *ZerologHandler) Debug(msg string, args ...any) {
	handler.logger.Debug().Fields(args).Msg(msg)
}

func (handler *ZerologHandler) With(args ...any) Logger {
	return &ZerologHandler{logger: handler.logger.With().Fields(args).Logger()}
}
