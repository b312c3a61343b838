package logger

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/philipp01105/elfnlog/core"
	"github.com/philipp01105/elfnlog/formatter"
	"github.com/philipp01105/elfnlog/handler"
	"github.com/philipp01105/elfnlog/handler/consolehandler"
)

// Environment variables read once at package initialization.
const (
	EnvLevel  = "NLOG_LEVEL"  // root level, e.g. "FINE", "debug", "900"
	EnvFormat = "NLOG_FORMAT" // "text" (default) or "json"
	EnvCaller = "NLOG_CALLER" // "true" adds the source to each line
)

// Config is the default configuration of the root logger.
type Config struct {
	Level         core.Level
	JSON          bool
	IncludeCaller bool
}

// ConfigFromEnv reads Config from the environment through lookup (usually
// os.LookupEnv). Invalid values are reported and left at their defaults.
func ConfigFromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Config{Level: core.InfoLevel}
	var errs []string

	if v, ok := lookup(EnvLevel); ok && v != "" {
		lvl, err := core.ParseLevel(v)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", EnvLevel, err))
		} else {
			cfg.Level = lvl
		}
	}
	if v, ok := lookup(EnvFormat); ok && v != "" {
		switch strings.ToLower(v) {
		case "json":
			cfg.JSON = true
		case "text":
		default:
			errs = append(errs, fmt.Sprintf("%s: unknown format %q", EnvFormat, v))
		}
	}
	if v, ok := lookup(EnvCaller); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", EnvCaller, err))
		} else {
			cfg.IncludeCaller = b
		}
	}

	if len(errs) > 0 {
		return cfg, fmt.Errorf("logger: invalid environment: %s", strings.Join(errs, "; "))
	}
	return cfg, nil
}

// Handler builds the synchronous stderr console handler described by cfg.
func (cfg Config) Handler() handler.Handler {
	fc := formatter.Config{IncludeCaller: cfg.IncludeCaller}
	var f formatter.Formatter = formatter.NewTextFormatter(fc)
	if cfg.JSON {
		f = formatter.NewJSONFormatter(fc)
	}
	return consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    os.Stderr,
		Formatter: f,
	})
}

func init() {
	cfg, err := ConfigFromEnv(os.LookupEnv)
	root.AddHandler(cfg.Handler())
	root.SetLevel(cfg.Level)
	if err != nil {
		reportError("", err)
	}
}

// Package-level convenience functions using the root logger

// Severe logs a message at SEVERE using the root logger
func Severe(msg string, params ...any) {
	root.LogMsg(core.SevereLevel, msg, params...)
}

// Warning logs a message at WARNING using the root logger
func Warning(msg string, params ...any) {
	root.LogMsg(core.WarningLevel, msg, params...)
}

// Info logs a message at INFO using the root logger
func Info(msg string, params ...any) {
	root.LogMsg(core.InfoLevel, msg, params...)
}

// Fine logs a message at FINE using the root logger
func Fine(msg string, params ...any) {
	root.LogMsg(core.FineLevel, msg, params...)
}
