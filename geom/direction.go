package geom

import (
	"fmt"
	"strings"
)

// Direction enumerates the eight compass directions.
//
// The constant values are single-bit masks, so a set of directions can be
// stored in one integer: North|East == 0b101. The mask assigned to a named
// direction is the same in every direction enum in this package.
type Direction uint8

const (
	North     Direction = 1
	NorthEast Direction = 2
	East      Direction = 4
	SouthEast Direction = 8
	South     Direction = 16
	SouthWest Direction = 32
	West      Direction = 64
	NorthWest Direction = 128
)

// Opposite returns the direction 180 degrees from d.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case NorthEast:
		return SouthWest
	case East:
		return West
	case SouthEast:
		return NorthWest
	case South:
		return North
	case SouthWest:
		return NorthEast
	case West:
		return East
	case NorthWest:
		return SouthEast
	default:
		panic(fmt.Sprintf("geom: invalid Direction %d", d))
	}
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case NorthEast:
		return "NorthEast"
	case East:
		return "East"
	case SouthEast:
		return "SouthEast"
	case South:
		return "South"
	case SouthWest:
		return "SouthWest"
	case West:
		return "West"
	case NorthWest:
		return "NorthWest"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// ParseDirection parses a direction from its long or short name,
// irrespective of case: "North", "north", "N" and "n" all yield North.
// Returns ErrParseDirection for anything else.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "north", "n":
		return North, nil
	case "northeast", "ne":
		return NorthEast, nil
	case "east", "e":
		return East, nil
	case "southeast", "se":
		return SouthEast, nil
	case "south", "s":
		return South, nil
	case "southwest", "sw":
		return SouthWest, nil
	case "west", "w":
		return West, nil
	case "northwest", "nw":
		return NorthWest, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrParseDirection, s)
	}
}

// Cardinal enumerates the four cardinal directions: North, East, South,
// West. Its constant values are the same bitmasks Direction assigns to
// those directions, so Cardinal values can be mixed into Direction masks.
type Cardinal uint8

const (
	CardinalNorth Cardinal = Cardinal(North)
	CardinalEast  Cardinal = Cardinal(East)
	CardinalSouth Cardinal = Cardinal(South)
	CardinalWest  Cardinal = Cardinal(West)
)

// Direction widens c into the eight-way Direction enum.
func (c Cardinal) Direction() Direction { return Direction(c) }

// Opposite returns the cardinal direction 180 degrees from c.
func (c Cardinal) Opposite() Cardinal {
	switch c {
	case CardinalNorth:
		return CardinalSouth
	case CardinalSouth:
		return CardinalNorth
	case CardinalEast:
		return CardinalWest
	case CardinalWest:
		return CardinalEast
	default:
		panic(fmt.Sprintf("geom: invalid Cardinal %d", c))
	}
}

// Right returns the cardinal direction 90 degrees clockwise from c.
func (c Cardinal) Right() Cardinal {
	switch c {
	case CardinalNorth:
		return CardinalEast
	case CardinalEast:
		return CardinalSouth
	case CardinalSouth:
		return CardinalWest
	case CardinalWest:
		return CardinalNorth
	default:
		panic(fmt.Sprintf("geom: invalid Cardinal %d", c))
	}
}

// Left returns the cardinal direction 90 degrees counterclockwise from c.
func (c Cardinal) Left() Cardinal {
	switch c {
	case CardinalNorth:
		return CardinalWest
	case CardinalWest:
		return CardinalSouth
	case CardinalSouth:
		return CardinalEast
	case CardinalEast:
		return CardinalNorth
	default:
		panic(fmt.Sprintf("geom: invalid Cardinal %d", c))
	}
}

// Offset returns the unit step (dx, dy) of one move in direction c,
// in the package convention that Y grows toward North.
func (c Cardinal) Offset() (dx, dy int) {
	switch c {
	case CardinalNorth:
		return 0, 1
	case CardinalEast:
		return 1, 0
	case CardinalSouth:
		return 0, -1
	case CardinalWest:
		return -1, 0
	default:
		panic(fmt.Sprintf("geom: invalid Cardinal %d", c))
	}
}

// String implements fmt.Stringer.
func (c Cardinal) String() string { return Direction(c).String() }

// ParseCardinal parses a cardinal direction from its long or short name,
// irrespective of case. Returns ErrParseCardinal for the ordinal
// directions and for anything ParseDirection rejects.
func ParseCardinal(s string) (Cardinal, error) {
	d, err := ParseDirection(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParseCardinal, s)
	}
	switch d {
	case North, East, South, West:
		return Cardinal(d), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrParseCardinal, s)
	}
}

// CardinalFromByte parses a cardinal direction from its single-letter
// form, irrespective of case: 'n', 'N', 'e', 'E', 's', 'S', 'w', 'W'.
func CardinalFromByte(b byte) (Cardinal, error) {
	switch b {
	case 'n', 'N':
		return CardinalNorth, nil
	case 'e', 'E':
		return CardinalEast, nil
	case 's', 'S':
		return CardinalSouth, nil
	case 'w', 'W':
		return CardinalWest, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrParseCardinal, string(b))
	}
}
