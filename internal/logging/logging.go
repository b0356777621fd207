// Package logging builds the process logger from config.LogConfig.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/wcjunkins/tspmerge/internal/config"
)

// New returns a logger writing to w, or to a rotated file when cfg.File is
// set. The returned close function releases the file and is safe to call
// when there is none.
func New(cfg config.LogConfig, w io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, errors.Wrap(err, "log level")
	}

	logger := log.New()
	logger.SetLevel(level)
	closeFn := func() error { return nil }

	if cfg.File != "" {
		if err = os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, nil, errors.Wrapf(err, "create log dir for %s", cfg.File)
		}
		rotated := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		w = rotated
		closeFn = rotated.Close
	}
	logger.SetOutput(w)

	switch cfg.Format {
	case "json":
		logger.SetFormatter(&log.JSONFormatter{})
	default:
		logger.SetFormatter(&log.TextFormatter{
			DisableColors: !isTerminal(w),
			FullTimestamp: true,
		})
	}

	return logger, closeFn, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
