package state

import (
	"fmt"
	"io"
)

type Mode uint8

const (
	Off Mode = iota
	On
	Standby
)

func (m Mode) String() string {
	switch m {
	case Off:
		return "OFF"
	case On:
		return "ON"
	case Standby:
		return "STANDBY"
	default:
		return "UNKNOWN"
	}
}

// StatefulDevice holds a Mode, any transition between modes is permitted.
type StatefulDevice struct {
	Mode Mode
}

func (d *StatefulDevice) Set(m Mode) {
	d.Mode = m
}

func (d StatefulDevice) Display() string {
	switch d.Mode {
	case Off:
		return "Device is OFF"
	case On:
		return "Device is ON"
	case Standby:
		return "Device is in STANDBY"
	default:
		return "Device is in UNKNOWN state"
	}
}

func (d StatefulDevice) Print(out io.Writer) error {
	_, err := fmt.Fprintln(out, d.Display())
	return err
}
