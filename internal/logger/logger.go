package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/lmittmann/tint"
)

var (
	once   sync.Once
	logger = slog.Default()
)

type Options struct {
	Level      slog.Leveler // slog.LevelInfo, slog.LevelDebug и т.д.
	Writer     io.Writer    // по умолчанию os.Stdout
	TimeFormat string       // по умолчанию 15:04:05
}

// Init настраивает логгер один раз за процесс и делает его slog.Default
func Init(opts *Options) {
	once.Do(func() {
		if opts == nil {
			opts = &Options{}
		}
		writer := opts.Writer
		if writer == nil {
			writer = os.Stdout
		}
		timeFormat := opts.TimeFormat
		if timeFormat == "" {
			timeFormat = "15:04:05"
		}

		handler := tint.NewHandler(writer, &tint.Options{
			Level:      opts.Level,
			TimeFormat: timeFormat,
		})

		logger = slog.New(handler)
		slog.SetDefault(logger)
	})
}

func L() *slog.Logger {
	return logger
}
