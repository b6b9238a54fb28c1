// Package logging sets up the global zerolog logger and routes the engine's logr output through it.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/go-logr/zerologr"
	"github.com/nathanieltooley/pokearena/golurk"
	"github.com/nathanieltooley/pokearena/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	consoleOut *mutableWriter
	fileWriter *lumberjack.Logger
)

// mutableWriter drops everything written to it while muted.
type mutableWriter struct {
	out   io.Writer
	muted atomic.Bool
}

func (w *mutableWriter) Write(p []byte) (int, error) {
	if w.muted.Load() {
		return len(p), nil
	}

	return w.out.Write(p)
}

// Init points log.Logger at console (when not nil) and the rotated log file from the config (when set).
// Engine logs go through the same writers: V(1) shows at debug, V(2) at trace.
func Init(logConfig config.LogConfig, console io.Writer) error {
	level, err := zerolog.ParseLevel(logConfig.Level)
	if err != nil {
		return fmt.Errorf("log level %q: %w", logConfig.Level, err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	// the global default would swallow trace
	zerolog.SetGlobalLevel(level)

	writers := make([]io.Writer, 0, 2)

	consoleOut = nil
	if console != nil {
		consoleOut = &mutableWriter{out: console}
		writers = append(writers, zerolog.ConsoleWriter{Out: consoleOut, TimeFormat: time.Kitchen})
	}

	if logConfig.File != "" {
		if err := os.MkdirAll(filepath.Dir(logConfig.File), 0750); err != nil {
			return fmt.Errorf("creating log dir: %w", err)
		}

		closeFile()
		fileWriter = &lumberjack.Logger{
			Filename:   logConfig.File,
			MaxSize:    logConfig.MaxSizeMB,
			MaxBackups: logConfig.MaxBackups,
			MaxAge:     logConfig.MaxAgeDays,
		}

		// plain text, colour codes look bad in a text editor
		writers = append(writers, zerolog.ConsoleWriter{Out: fileWriter, NoColor: true, TimeFormat: time.RFC3339})
	}

	if len(writers) == 0 {
		log.Logger = zerolog.Nop()
	} else {
		log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger().Level(level)
	}

	zerologr.SetMaxV(2)
	engineLogger := log.Logger.With().Str("component", "engine").Logger()
	golurk.SetInternalLogger(zerologr.New(&engineLogger))

	return nil
}

// Close flushes and closes the log file, if there is one.
func Close() error {
	return closeFile()
}

func closeFile() error {
	if fileWriter == nil {
		return nil
	}

	err := fileWriter.Close()
	fileWriter = nil

	return err
}

// StopLogging silences console output until ContinueLogging is called, while a TUI owns the terminal.
// The log file keeps everything.
func StopLogging() {
	if consoleOut != nil {
		consoleOut.muted.Store(true)
	}
}

func ContinueLogging() {
	if consoleOut != nil {
		consoleOut.muted.Store(false)
	}
}
