package shape

import (
	"fmt"
	"io"
)

type ShapeError string

func (e ShapeError) Error() string {
	return string(e)
}

const ErrUnknownShape = ShapeError("unknown shape")

type Factory struct {
	Out io.Writer
}

func (f Factory) Create(kind Kind) (Drawable, error) {
	switch kind {
	case KindCircle:
		return NewCircle(f.Out), nil
	case KindSquare:
		return NewSquare(f.Out), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownShape, kind)
	}
}

func (f Factory) Kinds() []string {
	return []string{string(KindCircle), string(KindSquare)}
}
