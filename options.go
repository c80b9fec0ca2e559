package main

import (
	"flag"
	"fmt"
	"github.com/peterbourgon/ff/v3"
	"github.com/shimmeringbee/smarthome/controller"
	"github.com/shimmeringbee/smarthome/state"
	"os"
	"path/filepath"
)

const DefaultDirectoryPermissions = 0700

type Options struct {
	ControllerName   string
	ObserverCapacity int
	Logging          string
	LogDirectory     string
}

func parseOptions(args []string) (Options, error) {
	fs := flag.NewFlagSet("smarthome", flag.ContinueOnError)

	defaultLogDirectory, err := defaultDirectory("log")
	if err != nil {
		return Options{}, fmt.Errorf("failed to construct default log directory: %w", err)
	}

	controllerName := fs.String("controller-name", controller.DefaultName, "name of the home controller")
	observerCapacity := fs.Int("observer-capacity", state.DefaultObserverCapacity, "maximum number of observers which may be registered")
	logging := fs.String("logging", "", "json array of logging configurations, stderr only if empty")
	logDirectory := fs.String("log-directory", defaultLogDirectory, "location of log files")

	if err := ff.Parse(fs, args, ff.WithEnvVarNoPrefix()); err != nil {
		return Options{}, fmt.Errorf("failed to parse environment/command line arguments: %w", err)
	}

	if *observerCapacity <= 0 {
		return Options{}, fmt.Errorf("observer capacity must be positive: %d", *observerCapacity)
	}

	return Options{
		ControllerName:   *controllerName,
		ObserverCapacity: *observerCapacity,
		Logging:          *logging,
		LogDirectory:     *logDirectory,
	}, nil
}

// selectController uses the process wide controller unless a different name has been requested.
func selectController(opts Options) *controller.Controller {
	if opts.ControllerName == "" || opts.ControllerName == controller.DefaultName {
		return controller.Instance()
	}

	return controller.New(opts.ControllerName)
}

func defaultDirectory(t string) (string, error) {
	if configDir, err := os.UserConfigDir(); err != nil {
		return "", err
	} else {
		return filepath.Join(configDir, "shimmeringbee", "smarthome", t), nil
	}
}
