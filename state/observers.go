package state

import (
	"context"
	"fmt"
	"io"
	"sync"
)

type Observer func(context.Context) error

type Notifier interface {
	Notify(context.Context) error
}

type Registrar interface {
	Register(Observer) error
}

var _ Notifier = (*Observers)(nil)
var _ Registrar = (*Observers)(nil)

type nullNotifier struct{}

func (_ nullNotifier) Notify(context.Context) error { return nil }

var NullNotifier = nullNotifier{}

type ObserverError string

func (e ObserverError) Error() string {
	return string(e)
}

const ErrCapacityExceeded = ObserverError("observer capacity exceeded")

const DefaultObserverCapacity = 5

// Observers is a bounded list of callbacks, invoked in the order they were registered. Registering the same callback
// twice results in it being invoked twice.
type Observers struct {
	capacity      int
	observers     []Observer
	observersLock *sync.RWMutex
}

func NewObservers(capacity int) *Observers {
	if capacity <= 0 {
		capacity = DefaultObserverCapacity
	}

	return &Observers{
		capacity:      capacity,
		observersLock: &sync.RWMutex{},
	}
}

func (o *Observers) Register(ob Observer) error {
	o.observersLock.Lock()
	defer o.observersLock.Unlock()

	if len(o.observers) >= o.capacity {
		return fmt.Errorf("%w: capacity %d", ErrCapacityExceeded, o.capacity)
	}

	o.observers = append(o.observers, ob)
	return nil
}

// Notify calls each observer in turn, stopping at the first to return an error. The registry is not locked while
// observers run.
func (o *Observers) Notify(ctx context.Context) error {
	o.observersLock.RLock()
	observers := make([]Observer, len(o.observers))
	copy(observers, o.observers)
	o.observersLock.RUnlock()

	for i, ob := range observers {
		if err := ob(ctx); err != nil {
			return fmt.Errorf("observer %d failed: %w", i, err)
		}
	}

	return nil
}

func (o *Observers) Len() int {
	o.observersLock.RLock()
	defer o.observersLock.RUnlock()

	return len(o.observers)
}

func (o *Observers) Capacity() int {
	return o.capacity
}

func EmergencyShutdown(out io.Writer) Observer {
	return func(_ context.Context) error {
		_, err := fmt.Fprintln(out, "[OBSERVER] Emergency shutdown triggered!")
		return err
	}
}
