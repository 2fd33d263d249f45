package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Config selects where logs go. File wins over Stderr; with neither set,
// logs are discarded. Stdout is never used: it carries the demo output.
type Config struct {
	File   string
	Debug  bool
	Stderr io.Writer
}

var (
	mu      sync.RWMutex
	global  = slog.New(slog.NewJSONHandler(io.Discard, nil))
	logFile *os.File
	logPath string
)

func Setup(cfg Config) (func() error, error) {
	var (
		w    io.Writer = io.Discard
		f    *os.File
		path string
	)

	switch {
	case cfg.File != "":
		path = filepath.Clean(cfg.File)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			setDiscard()
			return nil, err
		}
		var err error
		f, err = os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			setDiscard()
			return nil, err
		}
		w = f
	case cfg.Debug:
		w = cfg.Stderr
		if w == nil {
			w = os.Stderr
		}
	}

	level := slog.LevelInfo
	addSource := false
	if cfg.Debug {
		level = slog.LevelDebug
		addSource = true
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				t := a.Value.Time().UTC()
				a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
			}
			return a
		},
	})

	l := slog.New(h)

	mu.Lock()
	global = l
	logFile = f
	logPath = path
	mu.Unlock()

	l.Info("logger.initialized", "path", path, "debug", cfg.Debug)

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()

		var cerr error
		if logFile != nil {
			cerr = logFile.Close()
		}
		logFile = nil
		logPath = ""
			global = slog.New(slog.NewJSONHandler(io.Discard, nil))
		return cerr
	}

	return cleanup, nil
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Path returns the log file path, or "" when not logging to a file.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

func setDiscard() {
	mu.Lock()
	defer mu.Unlock()
	global = slog.New(slog.NewJSONHandler(io.Discard, nil))
	logFile = nil
	logPath = ""
}
