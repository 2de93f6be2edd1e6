package lifesrc

import (
	"errors"
	"fmt"
)

// Sentinel config errors, checked with errors.Is. Grounded on
// katalvlaran-lvlath's package-level sentinel-error convention.
var (
	// ErrNonPositiveSize is returned when width, height, or period is
	// not a positive integer.
	ErrNonPositiveSize = errors.New("lifesrc: width, height and period must be positive")
	// ErrIncompatibleTransform is returned when a transform or symmetry
	// that requires a square world is used with width != height.
	ErrIncompatibleTransform = errors.New("lifesrc: transform/symmetry requires a square world")
	// ErrInvalidRuleString is returned when a rule string does not
	// parse under any of the four supported grammars, and also for an
	// unrecognized transform, symmetry, search_order or new_state string.
	ErrInvalidRuleString = errors.New("lifesrc: invalid rule string")
	// ErrSetCell is returned by snapshot restoration when a replayed
	// assignment disagrees with what propagation has already deduced.
	ErrSetCell = errors.New("lifesrc: conflicting cell assignment during restore")
	// ErrConfigIO is returned when a YAML config file cannot be read or
	// parsed.
	ErrConfigIO = errors.New("lifesrc: config file error")
)

// ConfigError wraps a sentinel config error with the offending detail.
type ConfigError struct {
	Err    error
	Detail string
}

func (e *ConfigError) Error() string {
	if e.Detail == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Detail)
}

func (e *ConfigError) Unwrap() error { return e.Err }

func configErrorf(err error, format string, args ...any) error {
	return &ConfigError{Err: err, Detail: fmt.Sprintf(format, args...)}
}

// SetCellError is returned by snapshot restoration; it names the
// coordinate at which replay disagreed with propagation.
type SetCellError struct {
	Coord Coord
}

func (e *SetCellError) Error() string {
	return fmt.Sprintf("%s at %v", ErrSetCell.Error(), e.Coord)
}

func (e *SetCellError) Unwrap() error { return ErrSetCell }
