package layers

import "github.com/shimmeringbee/smarthome/device"

var _ WrapperStack = (*Stack)(nil)

// Stack applies its layers in order, the first layer wraps the device and each later layer wraps the result of the
// one before.
type Stack struct {
	layers []Layer
}

func New(l ...Layer) Stack {
	layers := make([]Layer, len(l))
	copy(layers, l)

	return Stack{layers: layers}
}

func (s Stack) Names() []string {
	names := make([]string, 0, len(s.layers))

	for _, l := range s.layers {
		names = append(names, l.Name())
	}

	return names
}

func (s Stack) Lookup(name string) Layer {
	for _, l := range s.layers {
		if l.Name() == name {
			return l
		}
	}

	return nil
}

func (s Stack) Apply(d device.Switchable) device.Switchable {
	for _, l := range s.layers {
		d = l.Wrap(d)
	}

	return d
}
