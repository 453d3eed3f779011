package latlon

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidNumber = errors.New("invalid number")
	ErrOutOfRange    = errors.New("coordinate out of range")
	ErrUnpairedValue = errors.New("latitude without longitude")
)

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	InvalidNumber ErrorKind = iota
	OutOfRange
	UnpairedValue
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidNumber:
		return "InvalidNumber"
	case OutOfRange:
		return "OutOfRange"
	case UnpairedValue:
		return "UnpairedValue"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

func (k ErrorKind) sentinel() error {
	switch k {
	case OutOfRange:
		return ErrOutOfRange
	case UnpairedValue:
		return ErrUnpairedValue
	}
	return ErrInvalidNumber
}

// ParseError reports the first malformed value of a coordinate list.
// Position is 1-based: the pair index for annotated input, the token index
// for plain input.
type ParseError struct {
	Kind     ErrorKind
	Format   Format
	Position int
	Token    string
	Value    LatLon
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case OutOfRange:
		return fmt.Sprintf("invalid coordinates at position %d: %q (lat %g, lon %g) is out of range", e.Position, e.Token, e.Value.Lat, e.Value.Lon)
	case UnpairedValue:
		return fmt.Sprintf("invalid coordinates at position %d: %q has no longitude", e.Position, e.Token)
	}
	if e.Token == "" {
		return fmt.Sprintf("invalid coordinates at position %d: empty value", e.Position)
	}
	return fmt.Sprintf("invalid coordinates at position %d: %q is not a number", e.Position, e.Token)
}

func (e *ParseError) Unwrap() error {
	return e.Kind.sentinel()
}
