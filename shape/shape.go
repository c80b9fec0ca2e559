package shape

import (
	"context"
	"fmt"
	"io"
)

type Kind string

const (
	KindCircle Kind = "circle"
	KindSquare Kind = "square"
)

type Drawable interface {
	Type() string
	Draw(context.Context) error
}

type Circle struct {
	out io.Writer
}

var _ Drawable = (*Circle)(nil)

func NewCircle(out io.Writer) *Circle {
	return &Circle{out: out}
}

func (c *Circle) Type() string {
	return string(KindCircle)
}

func (c *Circle) Draw(_ context.Context) error {
	_, err := fmt.Fprintln(c.out, "draw the circle")
	return err
}

type Square struct {
	out io.Writer
}

var _ Drawable = (*Square)(nil)

func NewSquare(out io.Writer) *Square {
	return &Square{out: out}
}

func (s *Square) Type() string {
	return string(KindSquare)
}

func (s *Square) Draw(_ context.Context) error {
	_, err := fmt.Fprintln(s.out, "draw the square")
	return err
}
