package state

import (
	"context"
	"fmt"
	"io"
)

type Strategy interface {
	Run(context.Context, io.Writer) error
}

// StrategyFunc allows a plain function to be used as a Strategy.
type StrategyFunc func(context.Context, io.Writer) error

func (f StrategyFunc) Run(ctx context.Context, out io.Writer) error {
	return f(ctx, out)
}

var Eco = StrategyFunc(func(_ context.Context, out io.Writer) error {
	_, err := fmt.Fprintln(out, "Device running in ECO mode")
	return err
})

var Turbo = StrategyFunc(func(_ context.Context, out io.Writer) error {
	_, err := fmt.Fprintln(out, "Device running in TURBO mode")
	return err
})

func Run(ctx context.Context, out io.Writer, s Strategy) error {
	return s.Run(ctx, out)
}
