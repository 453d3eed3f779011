package route

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownDirection = errors.New("unknown direction")

// Direction selects the axis and the order a route is sorted by.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

var Directions = []Direction{North, South, East, West}

var directionNames = [...]string{"North", "South", "East", "West"}

func (d Direction) String() string {
	if d < North || d > West {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection accepts the direction name or its initial, in any case.
func ParseDirection(s string) (Direction, error) {
	s = strings.TrimSpace(s)
	for _, d := range Directions {
		name := directionNames[d]
		if strings.EqualFold(s, name) || strings.EqualFold(s, name[:1]) {
			return d, nil
		}
	}
	return North, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

func (d Direction) MarshalText() ([]byte, error) {
	if d < North || d > West {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDirection, int(d))
	}
	return []byte(directionNames[d]), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	v, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
