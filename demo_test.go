package main

import (
	"bytes"
	"context"
	"errors"
	"github.com/shimmeringbee/logwrap"
	"github.com/shimmeringbee/logwrap/impl/discard"
	"github.com/shimmeringbee/smarthome/controller"
	"github.com/shimmeringbee/smarthome/device"
	"github.com/shimmeringbee/smarthome/layers"
	"github.com/shimmeringbee/smarthome/state"
	"github.com/stretchr/testify/assert"
	"io"
	"strings"
	"testing"
)

type failingWriter struct {
	buf    bytes.Buffer
	failOn string
	err    error
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if strings.Contains(string(p), w.failOn) {
		return 0, w.err
	}

	return w.buf.Write(p)
}

func newTestDemo(out io.Writer) Demo {
	l := logwrap.New(discard.Discard())
	observers := state.NewObservers(state.DefaultObserverCapacity)

	return Demo{
		Out:        out,
		Logger:     l,
		Controller: controller.New(controller.DefaultName),
		Registrar:  observers,
		Notifier:   observers,
		Stack:      newWrapperStack(l),
	}
}

func TestDemo_Run(t *testing.T) {
	t.Run("runs the fixed demo sequence", func(t *testing.T) {
		buf := &bytes.Buffer{}

		d := newTestDemo(buf)

		err := d.Run(context.Background())
		assert.NoError(t, err)

		expected := strings.Join([]string{
			"Controller: MainController",
			"1 : 30",
			"2 : 30",
			"[OBSERVER] Emergency shutdown triggered!",
			"Device running in ECO mode",
			"Device running in TURBO mode",
			"Device is ON",
			"Device is in STANDBY",
			"LivingRoom Light ON",
			"Bedroom Light ON",
			"LivingRoom Light OFF",
			"Bedroom Light OFF",
			"Legacy device is ON (manual switch)",
			"Legacy device is OFF (manual switch)",
			"draw the circle",
			"draw the square",
		}, "\n") + "\n"

		assert.Equal(t, expected, buf.String())
	})

	t.Run("stops at the first failing effect and returns its error", func(t *testing.T) {
		expectedErr := errors.New("stdout closed")
		w := &failingWriter{failOn: "Bedroom Light ON", err: expectedErr}

		d := newTestDemo(w)

		err := d.Run(context.Background())
		assert.ErrorIs(t, err, expectedErr)

		assert.True(t, strings.HasSuffix(w.buf.String(), "LivingRoom Light ON\n"))
		assert.NotContains(t, w.buf.String(), "Legacy device")
	})

	t.Run("without observers notification reaches nobody", func(t *testing.T) {
		buf := &bytes.Buffer{}

		d := newTestDemo(buf)
		d.Registrar = nil
		d.Notifier = nil

		assert.NoError(t, d.Run(context.Background()))
		assert.NotContains(t, buf.String(), "[OBSERVER]")
		assert.Contains(t, buf.String(), "Device running in ECO mode")
	})

	t.Run("a full observer registry stops the demo", func(t *testing.T) {
		observers := state.NewObservers(1)
		assert.NoError(t, observers.Register(func(context.Context) error { return nil }))

		d := newTestDemo(io.Discard)
		d.Registrar = observers
		d.Notifier = observers

		assert.ErrorIs(t, d.Run(context.Background()), state.ErrCapacityExceeded)
	})

	t.Run("the living room light is wrapped by the configured stack", func(t *testing.T) {
		rs := &recordingStack{}

		d := newTestDemo(io.Discard)
		d.Stack = rs

		assert.NoError(t, d.Run(context.Background()))
		assert.Equal(t, []string{"LivingRoom"}, rs.wrapped)
	})
}

type recordingStack struct {
	wrapped []string
}

var _ layers.WrapperStack = (*recordingStack)(nil)

func (r *recordingStack) Names() []string {
	return []string{"Recording"}
}

func (r *recordingStack) Lookup(string) layers.Layer {
	return nil
}

func (r *recordingStack) Apply(d device.Switchable) device.Switchable {
	r.wrapped = append(r.wrapped, d.Type())
	return d
}

func Test_newWrapperStack(t *testing.T) {
	t.Run("passes through then adds a logging proxy", func(t *testing.T) {
		s := newWrapperStack(logwrap.New(discard.Discard()))

		assert.Equal(t, []string{"PassThru", "Logging"}, s.Names())

		_, ok := s.Apply(device.NewLight("Hall", io.Discard)).(*device.Proxy)
		assert.True(t, ok)
	})
}
