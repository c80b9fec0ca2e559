package device

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"io"
)

var _ Switchable = (*Light)(nil)

type Light struct {
	id   uuid.UUID
	name string
	out  io.Writer
}

func NewLight(name string, out io.Writer) *Light {
	return &Light{id: uuid.New(), name: name, out: out}
}

func (l *Light) Identifier() uuid.UUID {
	return l.id
}

func (l *Light) Type() string {
	return l.name
}

func (l *Light) TurnOn(_ context.Context) error {
	_, err := fmt.Fprintf(l.out, "%s Light ON\n", l.name)
	return err
}

func (l *Light) TurnOff(_ context.Context) error {
	_, err := fmt.Fprintf(l.out, "%s Light OFF\n", l.name)
	return err
}
