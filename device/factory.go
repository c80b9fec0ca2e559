package device

import (
	"fmt"
	"io"
	"sort"
	"sync"
)

type Constructor func(name string, out io.Writer) (Switchable, error)

// Factory builds new devices by kind. Every call to Create returns an independent instance, nothing is cached.
type Factory struct {
	lock         sync.RWMutex
	out          io.Writer
	constructors map[Kind]Constructor
}

func NewFactory(out io.Writer) *Factory {
	return &Factory{
		out: out,
		constructors: map[Kind]Constructor{
			KindLight:  newLight,
			KindLegacy: newLegacy,
		},
	}
}

func newLight(name string, out io.Writer) (Switchable, error) {
	return NewLight(name, out), nil
}

func newLegacy(_ string, out io.Writer) (Switchable, error) {
	return NewLegacyAdapter(NewManualSwitch(out)), nil
}

func (f *Factory) Register(k Kind, c Constructor) error {
	f.lock.Lock()
	defer f.lock.Unlock()

	if _, found := f.constructors[k]; found {
		return fmt.Errorf("%w: %s", ErrKindRegistered, k)
	}

	f.constructors[k] = c
	return nil
}

func (f *Factory) Create(k Kind, name string) (Switchable, error) {
	f.lock.RLock()
	c, found := f.constructors[k]
	f.lock.RUnlock()

	if !found {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, k)
	}

	d, err := c(name, f.out)
	if err != nil {
		return nil, &ResourceError{Kind: k, Err: err}
	}

	if d == nil {
		return nil, &ResourceError{Kind: k, Err: ErrNilDevice}
	}

	return d, nil
}

func (f *Factory) Kinds() []string {
	f.lock.RLock()
	defer f.lock.RUnlock()

	kinds := make([]string, 0, len(f.constructors))
	for k := range f.constructors {
		kinds = append(kinds, string(k))
	}

	sort.Strings(kinds)
	return kinds
}
