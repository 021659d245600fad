// Package harness times chains of operation policies against freshly
// created containers and reports the averaged duration per input size.
package harness

import (
	"fmt"
	"time"
)

// Repeat is the number of timed trials averaged for every size.
const Repeat = 7

// Sink receives one averaged measurement per size.
type Sink interface {
	AddResult(series, group string, value uint64)
}

// Clock is the time source used to measure trials.
type Clock interface {
	Now() time.Time
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }

// UnitName returns the short label of a duration unit as used in graphs.
func UnitName(unit time.Duration) string {
	switch unit {
	case time.Nanosecond:
		return "ns"
	case time.Microsecond:
		return "us"
	case time.Millisecond:
		return "ms"
	case time.Second:
		return "s"
	default:
		return unit.String()
	}
}

// ParseUnit is the inverse of UnitName.
func ParseUnit(name string) (time.Duration, error) {
	switch name {
	case "ns":
		return time.Nanosecond, nil
	case "us":
		return time.Microsecond, nil
	case "ms":
		return time.Millisecond, nil
	case "s":
		return time.Second, nil
	default:
		return 0, fmt.Errorf("unknown duration unit %q", name)
	}
}
