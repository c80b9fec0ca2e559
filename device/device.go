package device

import (
	"context"
	"github.com/google/uuid"
)

// Switchable is implemented by anything that can be turned on and off, be it a concrete device or a wrapper around
// one.
type Switchable interface {
	Identifier() uuid.UUID
	Type() string
	TurnOn(context.Context) error
	TurnOff(context.Context) error
}

type Kind string

const (
	KindLight  Kind = "light"
	KindLegacy Kind = "legacy"
)
