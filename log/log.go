// Package log routes diagnostics to a daily logrus file under where.Logs().
package log

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/anistream/anistream/filesystem"
	"github.com/anistream/anistream/key"
	"github.com/anistream/anistream/where"
	"github.com/samber/lo"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// enabled mirrors logs.write at Setup time.
var enabled bool

// Setup opens today's log file and applies the configured formatter and level.
// When logs.write is off every call in this package is a no-op.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	filename := fmt.Sprintf("%s.log", time.Now().Format("2006-01-02"))
	path := filepath.Join(dir, filename)

	if exists := lo.Must(filesystem.API().Exists(path)); !exists {
		lo.Must(filesystem.API().Create(path))
	}

	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logrus.SetOutput(f)

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{PrettyPrint: true})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{})
	}

	lvl := viper.GetString(key.LogsLevel)
	parsed, err := logrus.ParseLevel(lvl)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	return nil
}

// Fields attaches structured context to a log line.
type Fields = logrus.Fields

// Entry is a log line builder returned by With. It drops everything when logging is disabled.
type Entry struct {
	entry *logrus.Entry
}

// With starts a log line carrying the given fields, e.g. the URL being scraped or the
// Jikan endpoint being retried.
func With(fields Fields) Entry {
	if !enabled {
		return Entry{}
	}
	return Entry{entry: logrus.WithFields(fields)}
}

func (e Entry) Error(args ...any) {
	if e.entry != nil {
		e.entry.Error(args...)
	}
}

func (e Entry) Warn(args ...any) {
	if e.entry != nil {
		e.entry.Warn(args...)
	}
}

func (e Entry) Info(args ...any) {
	if e.entry != nil {
		e.entry.Info(args...)
	}
}

func (e Entry) Debug(args ...any) {
	if e.entry != nil {
		e.entry.Debug(args...)
	}
}

func Error(args ...any) {
	if enabled {
		logrus.Error(args...)
	}
}

func Errorf(format string, args ...any) {
	if enabled {
		logrus.Errorf(format, args...)
	}
}

func Warn(args ...any) {
	if enabled {
		logrus.Warn(args...)
	}
}

func Warnf(format string, args ...any) {
	if enabled {
		logrus.Warnf(format, args...)
	}
}

func Info(args ...any) {
	if enabled {
		logrus.Info(args...)
	}
}

func Infof(format string, args ...any) {
	if enabled {
		logrus.Infof(format, args...)
	}
}

func Debugf(format string, args ...any) {
	if enabled {
		logrus.Debugf(format, args...)
	}
}
