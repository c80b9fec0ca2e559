package layers

import "github.com/shimmeringbee/smarthome/device"

type WrapperStack interface {
	Names() []string
	Lookup(name string) Layer
	Apply(d device.Switchable) device.Switchable
}

type Layer interface {
	Name() string
	Wrap(d device.Switchable) device.Switchable
}
