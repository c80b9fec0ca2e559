package device

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"io"
)

// LegacySwitch is the interface of older hardware which predates Switchable.
type LegacySwitch interface {
	SwitchOn() error
	SwitchOff() error
}

const LegacyType = "Legacy"

type ManualSwitch struct {
	out io.Writer
}

var _ LegacySwitch = (*ManualSwitch)(nil)

func NewManualSwitch(out io.Writer) *ManualSwitch {
	return &ManualSwitch{out: out}
}

func (m *ManualSwitch) SwitchOn() error {
	_, err := fmt.Fprintln(m.out, "Legacy device is ON (manual switch)")
	return err
}

func (m *ManualSwitch) SwitchOff() error {
	_, err := fmt.Fprintln(m.out, "Legacy device is OFF (manual switch)")
	return err
}

var _ Switchable = (*LegacyAdapter)(nil)

// LegacyAdapter presents a LegacySwitch as a Switchable, it owns the legacy device it wraps.
type LegacyAdapter struct {
	id     uuid.UUID
	legacy LegacySwitch
}

func NewLegacyAdapter(legacy LegacySwitch) *LegacyAdapter {
	return &LegacyAdapter{id: uuid.New(), legacy: legacy}
}

func (a *LegacyAdapter) Identifier() uuid.UUID {
	return a.id
}

func (a *LegacyAdapter) Type() string {
	return LegacyType
}

func (a *LegacyAdapter) TurnOn(_ context.Context) error {
	return a.legacy.SwitchOn()
}

func (a *LegacyAdapter) TurnOff(_ context.Context) error {
	return a.legacy.SwitchOff()
}
