package main

import (
	"github.com/shimmeringbee/smarthome/controller"
	"github.com/shimmeringbee/smarthome/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_parseOptions(t *testing.T) {
	t.Run("defaults are used when nothing is provided", func(t *testing.T) {
		opts, err := parseOptions([]string{})
		require.NoError(t, err)

		assert.Equal(t, controller.DefaultName, opts.ControllerName)
		assert.Equal(t, state.DefaultObserverCapacity, opts.ObserverCapacity)
		assert.Empty(t, opts.Logging)
		assert.NotEmpty(t, opts.LogDirectory)
	})

	t.Run("flags override defaults", func(t *testing.T) {
		opts, err := parseOptions([]string{"-observer-capacity", "8", "-log-directory", "/tmp/logs", "-logging", `[{"Type":"stdout","Config":{}}]`})
		require.NoError(t, err)

		assert.Equal(t, 8, opts.ObserverCapacity)
		assert.Equal(t, "/tmp/logs", opts.LogDirectory)
		assert.Equal(t, `[{"Type":"stdout","Config":{}}]`, opts.Logging)
	})

	t.Run("environment variables are read", func(t *testing.T) {
		t.Setenv("OBSERVER_CAPACITY", "3")

		opts, err := parseOptions([]string{})
		require.NoError(t, err)

		assert.Equal(t, 3, opts.ObserverCapacity)
	})

	t.Run("controller name is read from flags", func(t *testing.T) {
		opts, err := parseOptions([]string{"-controller-name", "Attic"})
		require.NoError(t, err)

		assert.Equal(t, "Attic", opts.ControllerName)
	})

	t.Run("controller name is read from the environment", func(t *testing.T) {
		t.Setenv("CONTROLLER_NAME", "Cellar")

		opts, err := parseOptions([]string{})
		require.NoError(t, err)

		assert.Equal(t, "Cellar", opts.ControllerName)
	})

	t.Run("non positive observer capacity errors", func(t *testing.T) {
		_, err := parseOptions([]string{"-observer-capacity", "0"})
		assert.Error(t, err)
	})

	t.Run("unknown flags error", func(t *testing.T) {
		_, err := parseOptions([]string{"-unknown"})
		assert.Error(t, err)
	})
}

func Test_selectController(t *testing.T) {
	t.Run("default name uses the process wide controller", func(t *testing.T) {
		assert.Same(t, controller.Instance(), selectController(Options{ControllerName: controller.DefaultName}))
	})

	t.Run("other names construct a new controller", func(t *testing.T) {
		c := selectController(Options{ControllerName: "Attic"})

		assert.NotSame(t, controller.Instance(), c)
		assert.Equal(t, "Attic", c.Name())
	})
}
