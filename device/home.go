package device

import (
	"context"
	"fmt"
)

// Home groups devices so they can be switched together. Members are switched in the order given, stopping at the
// first failure; members already switched are left as they are.
type Home struct {
	members []Switchable
}

// NewHome ignores nil members.
func NewHome(members ...Switchable) *Home {
	m := make([]Switchable, 0, len(members))

	for _, d := range members {
		if d != nil {
			m = append(m, d)
		}
	}

	return &Home{members: m}
}

func (h *Home) Members() []Switchable {
	m := make([]Switchable, len(h.members))
	copy(m, h.members)
	return m
}

func (h *Home) AllOn(ctx context.Context) error {
	for _, d := range h.members {
		if err := d.TurnOn(ctx); err != nil {
			return fmt.Errorf("failed to turn on '%s': %w", d.Type(), err)
		}
	}

	return nil
}

func (h *Home) AllOff(ctx context.Context) error {
	for _, d := range h.members {
		if err := d.TurnOff(ctx); err != nil {
			return fmt.Errorf("failed to turn off '%s': %w", d.Type(), err)
		}
	}

	return nil
}
