package config

import (
	"strings"

	"github.com/wippyai/flexcircuit/errors"
)

// Encoding selects how the input feature vector is loaded onto the qubits
// before the fixed block runs.
type Encoding uint8

const (
	// Angle rotates qubit i by inputs[i]; needs one input per qubit.
	Angle Encoding = iota
	// Amplitude loads the normalised inputs as the 2^n state amplitudes.
	Amplitude
)

func (e Encoding) String() string {
	switch e {
	case Angle:
		return "angle"
	case Amplitude:
		return "amplitude"
	}
	return "unknown"
}

// ParseEncoding maps a selector to an Encoding. The empty selector means Angle.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "angle":
		return Angle, nil
	case "amplitude":
		return Amplitude, nil
	}
	return 0, errors.InvalidEncoding(s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Encoding) UnmarshalText(text []byte) error {
	v, err := ParseEncoding(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (e Encoding) MarshalText() ([]byte, error) {
	if e != Angle && e != Amplitude {
		return nil, errors.InvalidEncoding(e.String())
	}
	return []byte(e.String()), nil
}
