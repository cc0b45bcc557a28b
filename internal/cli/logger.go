package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/meridianapp/meridian/internal/config"
	"github.com/meridianapp/meridian/internal/constants"
)

// logFileWriter holds the log file writer for cleanup purposes.
var logFileWriter io.WriteCloser //nolint:gochecknoglobals // Needed for cleanup

// zerologGlobalMu protects concurrent writes to the zerolog global logger.
var zerologGlobalMu sync.Mutex //nolint:gochecknoglobals // Protects zerolog global

// selectLevel maps verbosity flags onto a zerolog level. The config level
// applies when neither flag is set.
func selectLevel(cfg *config.Config, verbose, quiet bool) zerolog.Level {
	switch {
	case verbose:
		return zerolog.DebugLevel
	case quiet:
		return zerolog.WarnLevel
	default:
		if lvl, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil {
			return lvl
		}
		return zerolog.InfoLevel
	}
}

// selectOutput picks console formatting for interactive terminals and raw
// JSON otherwise.
func selectOutput() io.Writer {
	if term.IsTerminal(int(os.Stderr.Fd())) && os.Getenv("NO_COLOR") == "" {
		return zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
		}
	}
	return os.Stderr
}

// createLogFileWriter opens the rotating application log under the
// configured logs directory.
func createLogFileWriter(cfg *config.Config) (io.WriteCloser, error) {
	logsDir, err := cfg.LogsDir()
	if err != nil {
		return nil, err
	}
	if err = os.MkdirAll(logsDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return &lumberjack.Logger{
		Filename:   filepath.Join(logsDir, constants.CLILogFileName),
		MaxSize:    cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAge:     cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	}, nil
}

// InitLogger creates the CLI logger writing to the console and the rotating
// log file. If the log file cannot be created, logging continues with
// console output only.
func InitLogger(cfg *config.Config, verbose, quiet bool) zerolog.Logger {
	console := selectOutput()

	var writer io.Writer = console
	if fileWriter, err := createLogFileWriter(cfg); err == nil {
		logFileWriter = fileWriter
		writer = zerolog.MultiLevelWriter(console, fileWriter)
	}

	logger := zerolog.New(writer).
		Level(selectLevel(cfg, verbose, quiet)).
		With().Timestamp().Logger()
	setGlobalLogger(logger)
	return logger
}

// InitLoggerWithWriter creates a logger with a custom writer. This is
// primarily intended for testing.
func InitLoggerWithWriter(cfg *config.Config, verbose, quiet bool, w io.Writer) zerolog.Logger {
	logger := zerolog.New(w).
		Level(selectLevel(cfg, verbose, quiet)).
		With().Timestamp().Logger()
	setGlobalLogger(logger)
	return logger
}

// setGlobalLogger keeps the zerolog package-level logger in sync with the
// CLI logger so stray log.Info() calls share formatting.
func setGlobalLogger(cliLogger zerolog.Logger) {
	zerologGlobalMu.Lock()
	defer zerologGlobalMu.Unlock()
	log.Logger = cliLogger
}

// CloseLogFile closes the rotating log writer during shutdown.
func CloseLogFile() {
	if logFileWriter != nil {
		_ = logFileWriter.Close()
		logFileWriter = nil
	}
}
