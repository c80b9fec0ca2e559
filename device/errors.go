package device

import "fmt"

type DeviceError string

func (e DeviceError) Error() string {
	return string(e)
}

const (
	ErrUnknownKind    = DeviceError("unknown device kind")
	ErrKindRegistered = DeviceError("device kind already registered")
	ErrNilDevice      = DeviceError("constructor returned no device")
)

// ResourceError is returned when a device could not be constructed, no device is returned alongside it.
type ResourceError struct {
	Kind Kind
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("failed to construct device of kind '%s': %v", e.Kind, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}
