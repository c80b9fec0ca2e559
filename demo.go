package main

import (
	"context"
	"fmt"
	"github.com/shimmeringbee/logwrap"
	"github.com/shimmeringbee/logwrap/impl/nest"
	"github.com/shimmeringbee/smarthome/controller"
	"github.com/shimmeringbee/smarthome/device"
	"github.com/shimmeringbee/smarthome/layers"
	"github.com/shimmeringbee/smarthome/shape"
	"github.com/shimmeringbee/smarthome/state"
	"io"
)

// Demo runs the fixed sequence of device operations. A nil Registrar skips observer registration, a nil Notifier
// notifies nobody and a nil Stack leaves devices unwrapped.
type Demo struct {
	Out        io.Writer
	Logger     logwrap.Logger
	Controller *controller.Controller
	Registrar  state.Registrar
	Notifier   state.Notifier
	Stack      layers.WrapperStack
}

func newWrapperStack(l logwrap.Logger) layers.Stack {
	pl := logwrap.New(nest.Wrap(l))
	pl.AddOptionsToLogger(logwrap.Source("proxy"))

	return layers.New(layers.PassThru{}, layers.Logging{Logger: pl})
}

func (d Demo) Run(ctx context.Context) error {
	if err := d.runController(); err != nil {
		return fmt.Errorf("controller: %w", err)
	}

	f := device.NewFactory(d.Out)

	light, err := f.Create(device.KindLight, "LivingRoom")
	if err != nil {
		return err
	}

	fan, err := f.Create(device.KindLight, "Bedroom")
	if err != nil {
		return err
	}

	legacy, err := f.Create(device.KindLegacy, device.LegacyType)
	if err != nil {
		return err
	}

	var stack layers.WrapperStack = layers.New()
	if d.Stack != nil {
		stack = d.Stack
	}

	d.Logger.LogDebug(ctx, "Wrapping device.", logwrap.Datum("device", light.Type()), logwrap.Datum("layers", stack.Names()))
	proxiedLight := stack.Apply(light)

	home := device.NewHome(proxiedLight, fan)

	if d.Registrar != nil {
		if err := d.Registrar.Register(state.EmergencyShutdown(d.Out)); err != nil {
			return fmt.Errorf("observer: %w", err)
		}
	}

	var notifier state.Notifier = state.NullNotifier
	if d.Notifier != nil {
		notifier = d.Notifier
	}

	if err := notifier.Notify(ctx); err != nil {
		return fmt.Errorf("observer: %w", err)
	}

	for _, s := range []state.Strategy{state.Eco, state.Turbo} {
		if err := state.Run(ctx, d.Out, s); err != nil {
			return fmt.Errorf("strategy: %w", err)
		}
	}

	dev := state.StatefulDevice{Mode: state.On}
	if err := dev.Print(d.Out); err != nil {
		return fmt.Errorf("state: %w", err)
	}

	dev.Set(state.Standby)
	if err := dev.Print(d.Out); err != nil {
		return fmt.Errorf("state: %w", err)
	}

	if err := home.AllOn(ctx); err != nil {
		return fmt.Errorf("home: %w", err)
	}

	if err := home.AllOff(ctx); err != nil {
		return fmt.Errorf("home: %w", err)
	}

	if err := legacy.TurnOn(ctx); err != nil {
		return fmt.Errorf("legacy: %w", err)
	}

	if err := legacy.TurnOff(ctx); err != nil {
		return fmt.Errorf("legacy: %w", err)
	}

	return d.runShapes(ctx)
}

func (d Demo) runController() error {
	if _, err := fmt.Fprintf(d.Out, "Controller: %s\n", d.Controller.Name()); err != nil {
		return err
	}

	d.Controller.SetData(30)
	if _, err := fmt.Fprintf(d.Out, "1 : %d\n", d.Controller.Data()); err != nil {
		return err
	}

	_, err := fmt.Fprintf(d.Out, "2 : %d\n", d.Controller.Data())
	return err
}

func (d Demo) runShapes(ctx context.Context) error {
	f := shape.Factory{Out: d.Out}

	for _, kind := range []shape.Kind{shape.KindCircle, shape.KindSquare} {
		s, err := f.Create(kind)
		if err != nil {
			return err
		}

		if err := s.Draw(ctx); err != nil {
			return fmt.Errorf("shape '%s': %w", s.Type(), err)
		}
	}

	return nil
}
