package scenario

import (
	"errors"
	"fmt"
)

// Encoding selects the unit of a turn maneuver's Value
type Encoding string

const (
	// EncodingAngle stores the turn angle in whole degrees
	EncodingAngle Encoding = "angle"
	// EncodingCurvature stores the scaled curvature index, Value = |index| * 10
	EncodingCurvature Encoding = "curvature"
)

// ErrUnknownEncoding is returned when parsing an unrecognized encoding name
var ErrUnknownEncoding = errors.New("unknown parameter encoding")

// ParseEncoding resolves an encoding name
func ParseEncoding(s string) (Encoding, error) {
	switch e := Encoding(s); e {
	case EncodingAngle, EncodingCurvature:
		return e, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownEncoding)
}

func (e *Encoding) UnmarshalText(text []byte) error {
	parsed, err := ParseEncoding(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

func (e Encoding) MarshalText() ([]byte, error) {
	return []byte(e), nil
}
