package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/concretekem/hybridkem/pkg/log"
)

// addLoggingFlags registers the --log-level and --log-format flags shared by
// every subcommand.
func addLoggingFlags(fs *flag.FlagSet) (logLevel, logFormat *string) {
	logLevel = fs.String("log-level", "warn", "Log level: debug, info, warn, error, silent")
	logFormat = fs.String("log-format", "text", "Log format: text or json")
	return logLevel, logFormat
}

func parseLogLevel(level string) (log.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return log.LevelDebug, nil
	case "info":
		return log.LevelInfo, nil
	case "warn", "warning":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	case "silent", "off", "none":
		return log.LevelSilent, nil
	default:
		return log.LevelInfo, fmt.Errorf("invalid log level: %s (use debug, info, warn, error, silent)", level)
	}
}

func parseLogFormat(format string) (log.Format, error) {
	switch strings.ToLower(format) {
	case "text":
		return log.FormatText, nil
	case "json":
		return log.FormatJSON, nil
	default:
		return log.FormatText, fmt.Errorf("invalid log format: %s (use text or json)", format)
	}
}

// setupLogger builds a named logger from the parsed --log-level/--log-format
// values, installs it as the package-global logger so any library span or
// log call shares the same sink, and returns it for the subcommand's own
// progress and error reporting.
func setupLogger(name, logLevel, logFormat string) (*log.Logger, error) {
	level, err := parseLogLevel(logLevel)
	if err != nil {
		return nil, err
	}
	format, err := parseLogFormat(logFormat)
	if err != nil {
		return nil, err
	}
	logger := log.NewLogger(
		log.WithOutput(os.Stderr),
		log.WithLevel(level),
		log.WithFormat(format),
		log.WithFields(log.Fields{"app": "hybridkem"}),
	).Named(name)
	log.SetLogger(logger)
	return logger, nil
}
