package main

import (
	"context"
	"errors"
	lw "github.com/shimmeringbee/logwrap"
	"github.com/shimmeringbee/logwrap/impl/golog"
	"github.com/shimmeringbee/smarthome/config"
	"github.com/shimmeringbee/smarthome/device"
	"github.com/shimmeringbee/smarthome/state"
	"log"
	"os"
)

func main() {
	ctx := context.Background()
	l := lw.New(golog.Wrap(log.New(os.Stderr, "", log.LstdFlags)))

	l.LogInfo(ctx, "Shimmering Bee: Smart Home - Copyright 2019-2020 Shimmering Bee Contributors - Starting...")

	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		l.LogFatal(ctx, "Failed to parse options.", lw.Err(err))
	}

	logCfgs, err := config.ParseLoggingConfigs(opts.Logging)
	if err != nil {
		l.LogFatal(ctx, "Failed to parse logging configurations.", lw.Err(err))
	}

	l, err = configureLogging(logCfgs, opts.LogDirectory, l)
	if err != nil {
		l.LogFatal(ctx, "Failed to configure logging.", lw.Err(err))
	}

	observers := state.NewObservers(opts.ObserverCapacity)

	demo := Demo{
		Out:        os.Stdout,
		Logger:     l,
		Controller: selectController(opts),
		Registrar:  observers,
		Notifier:   observers,
		Stack:      newWrapperStack(l),
	}

	if err := demo.Run(ctx); err != nil {
		var resourceErr *device.ResourceError
		if errors.As(err, &resourceErr) {
			l.LogFatal(ctx, "Failed to construct device.", lw.Err(err), lw.Datum("kind", string(resourceErr.Kind)))
		}

		l.LogFatal(ctx, "Demo failed.", lw.Err(err))
	}

	l.LogInfo(ctx, "Demo complete.")
}
