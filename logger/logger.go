package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/baobei/config"
)

const (
	logFileName = "baobei.log"
	maxLogSize  = 10 * 1024 * 1024 // Rotate when larger than 10MB
)

// Init builds the process logger from the log config section
// The terminal owns stdout, so output goes to a file under cfg.Dir when Debug is set and is discarded otherwise
// The returned closer releases the log file and is never nil
func Init(cfg config.Log) (*logrus.Logger, io.Closer, error) {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if strings.ToLower(cfg.Format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:    true,
			DisableColors:    true,
			DisableQuote:     true,
			QuoteEmptyFields: true,
		})
	}

	if !cfg.Debug {
		log.SetOutput(io.Discard)
		return log, nopCloser{}, nil
	}

	f, err := openLogFile(cfg.Dir)
	if err != nil {
		log.SetOutput(io.Discard)
		return log, nopCloser{}, err
	}
	log.SetOutput(f)
	return log, f, nil
}

// openLogFile creates dir and opens the log file for append, rotating an oversized one
func openLogFile(dir string) (*os.File, error) {
	if dir == "" {
		dir = "logs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("baobei-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(path, rotated); err != nil {
			return nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
