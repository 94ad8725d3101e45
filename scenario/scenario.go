// Package scenario holds the maneuver-sequence road representation and its
// conversions to and from Frenet-integrated polylines.
package scenario

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Kind tags a maneuver
type Kind uint8

const (
	Straight Kind = iota
	Left
	Right
)

// Kinds lists every maneuver tag
var Kinds = [...]Kind{Straight, Left, Right}

// ErrUnknownKind is returned when parsing an unrecognized maneuver name
var ErrUnknownKind = errors.New("unknown maneuver kind")

func (k Kind) String() string {
	switch k {
	case Straight:
		return "straight"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// IsTurn reports whether the kind changes heading
func (k Kind) IsTurn() bool {
	return k == Left || k == Right
}

// ParseKind resolves a maneuver name as produced by Kind.String
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownKind)
}

// Maneuver is one road segment instruction.
// Value is a length for Straight and a turn magnitude for Left/Right.
type Maneuver struct {
	Kind  Kind
	Value int
}

func (m Maneuver) String() string {
	return fmt.Sprintf("%s(%d)", m.Kind, m.Value)
}

// Scenario is an ordered maneuver sequence in traversal order
type Scenario []Maneuver

// Clone returns an independent copy
func (s Scenario) Clone() Scenario {
	if s == nil {
		return nil
	}
	return slices.Clone(s)
}

// Equal reports element-wise equality
func (s Scenario) Equal(o Scenario) bool {
	return slices.Equal(s, o)
}

// Kinds returns the tag sequence
func (s Scenario) Kinds() []Kind {
	kinds := make([]Kind, len(s))
	for i, m := range s {
		kinds[i] = m.Kind
	}
	return kinds
}

func (s Scenario) String() string {
	parts := make([]string, len(s))
	for i, m := range s {
		parts[i] = m.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
