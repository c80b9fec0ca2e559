package main

import (
	"context"
	"fmt"
	"github.com/shimmeringbee/logwrap"
	"github.com/shimmeringbee/logwrap/impl/filter"
	"github.com/shimmeringbee/logwrap/impl/golog"
	"github.com/shimmeringbee/logwrap/impl/tee"
	"github.com/shimmeringbee/smarthome/config"
	"gopkg.in/natefinch/lumberjack.v2"
	"io"
	"log"
	"os"
	"path/filepath"
)

func configureLogging(logCfg []config.LoggingConfig, logDir string, l logwrap.Logger) (logwrap.Logger, error) {
	var impls []logwrap.Impl

	for _, cfg := range logCfg {
		var logWriter io.Writer
		var baseCfg config.BaseLogging

		switch lCfg := cfg.Config.(type) {
		case *config.StdoutLogging:
			logWriter = os.Stderr
			baseCfg = lCfg.BaseLogging
		case *config.FileLogging:
			if err := os.MkdirAll(logDir, DefaultDirectoryPermissions); err != nil {
				return l, fmt.Errorf("failed to initialise log directory: %w", err)
			}

			outFile := filepath.Join(logDir, lCfg.Filename)
			baseCfg = lCfg.BaseLogging

			logWriter = &lumberjack.Logger{
				Filename:   outFile,
				MaxSize:    lCfg.Size,
				MaxBackups: lCfg.Count,
				Compress:   lCfg.Compress,
			}
		default:
			return l, fmt.Errorf("unknown logging type for '%s': %s", cfg.Name, cfg.Type)
		}

		impl, err := constructFilter(baseCfg, golog.Wrap(log.New(logWriter, "", log.LstdFlags)))
		if err != nil {
			return l, fmt.Errorf("failed to construct filter for logging '%s': %w", cfg.Name, err)
		}

		impls = append(impls, impl)

		l.LogInfo(context.Background(), "Constructed logging.", logwrap.Datum("name", cfg.Name), logwrap.Datum("type", cfg.Type))
	}

	if len(impls) == 0 {
		l.LogDebug(context.Background(), "No logging configurations loaded, continuing with stderr only.")
		return l, nil
	}

	l.LogDebug(context.Background(), "Handing over to new logging configuration.")

	return logwrap.New(tee.Tee(impls...)), nil
}

func constructFilter(cfg config.BaseLogging, base logwrap.Impl) (logwrap.Impl, error) {
	var level logwrap.LogLevel

	if cfg.Level == "" {
		cfg.Level = "info"
	}

	switch cfg.Level {
	case "panic":
		level = logwrap.Panic
	case "fatal":
		level = logwrap.Fatal
	case "error":
		level = logwrap.Error
	case "warn":
		level = logwrap.Warn
	case "info":
		level = logwrap.Info
	case "debug":
		level = logwrap.Debug
	case "trace":
		level = logwrap.Trace
	default:
		return base, fmt.Errorf("unknown log level '%s'", cfg.Level)
	}

	return filter.Filter(base, func(message logwrap.Message) bool {
		if message.Level > level {
			return false
		}

		if len(cfg.Subsystems) == 0 {
			return true
		}

		found := false

		for _, filterSubsystem := range cfg.Subsystems {
			if filterSubsystem == message.Source {
				found = true
				break
			}
		}

		return cfg.NegateSubsystems != found
	}), nil
}
