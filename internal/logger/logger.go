package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

type Config struct {
	Out   io.Writer // defaults to os.Stderr
	Debug bool
}

var (
	mu     sync.RWMutex
	global = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// Setup installs the process-wide logger. Without Debug only warnings and
// errors are emitted.
func Setup(cfg Config) *slog.Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}

	level := slog.LevelWarn
	if cfg.Debug {
		level = slog.LevelDebug
	}

	h := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				t := a.Value.Time().UTC()
				a.Value = slog.StringValue(t.Format(time.RFC3339))
			}
			return a
		},
	})

	l := slog.New(h)

	mu.Lock()
	global = l
	mu.Unlock()

	l.Debug("logger.initialized", "debug", cfg.Debug)
	return l
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}
