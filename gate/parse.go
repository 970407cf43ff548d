package gate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrEmpty is returned for blank tokens.
	ErrEmpty = errors.New("empty gate token")
	// ErrUnknown is returned for names outside the vocabulary.
	ErrUnknown = errors.New("unknown gate")
	// ErrTarget is returned when an entangling token has a missing or malformed target.
	ErrTarget = errors.New("malformed entangling target")
)

var lookup = map[string]Op{
	"H":    OpH,
	"X":    OpX,
	"Y":    OpY,
	"Z":    OpZ,
	"S":    OpS,
	"T":    OpT,
	"RX":   OpRX,
	"RY":   OpRY,
	"RZ":   OpRZ,
	"CNOT": OpCNOT,
	"CX":   OpCNOT,
	"CZ":   OpCZ,
	"SWAP": OpSWAP,
}

// Parse decodes a configuration token such as "H", "ry" or "CNOT-2".
//
// Entangling tokens carry a 1-based target after a dash; the returned
// Token.Target is 0-based. Parse does not know the qubit count, so the range
// of the target is checked by the config validator.
func Parse(text string) (Token, error) {
	s := strings.ToUpper(strings.TrimSpace(text))
	if s == "" {
		return Token{}, ErrEmpty
	}

	name, suffix, hasSuffix := strings.Cut(s, "-")
	op, ok := lookup[name]
	if !ok {
		return Token{}, fmt.Errorf("%w %q", ErrUnknown, name)
	}

	if op.Kind() != Entangling {
		if hasSuffix {
			return Token{}, fmt.Errorf("%w: %s takes no target", ErrUnknown, op)
		}
		return Token{Kind: op.Kind(), Op: op}, nil
	}

	if !hasSuffix || suffix == "" {
		return Token{}, fmt.Errorf("%w: %s needs a target", ErrTarget, op)
	}
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return Token{}, fmt.Errorf("%w %q", ErrTarget, suffix)
	}
	return Token{Kind: Entangling, Op: op, Target: n - 1}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// statically known grids.
func MustParse(text string) Token {
	t, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseRow parses one grid row, returning the index of the first failing cell.
func ParseRow(row []string) ([]Token, int, error) {
	out := make([]Token, len(row))
	for i, s := range row {
		t, err := Parse(s)
		if err != nil {
			return nil, i, err
		}
		out[i] = t
	}
	return out, -1, nil
}
