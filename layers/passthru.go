package layers

import (
	"github.com/shimmeringbee/logwrap"
	"github.com/shimmeringbee/smarthome/device"
)

type PassThru struct{}

var _ Layer = (*PassThru)(nil)

func (p PassThru) Name() string {
	return "PassThru"
}

func (p PassThru) Wrap(d device.Switchable) device.Switchable {
	return d
}

type Logging struct {
	Logger logwrap.Logger
}

var _ Layer = (*Logging)(nil)

func (l Logging) Name() string {
	return "Logging"
}

func (l Logging) Wrap(d device.Switchable) device.Switchable {
	return device.NewProxy(d, l.Logger)
}
