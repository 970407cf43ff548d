package circuit

import (
	"github.com/wippyai/flexcircuit/errors"
	"github.com/wippyai/flexcircuit/gate"
)

// Cursor is the index of the next unconsumed trainable parameter. It is
// passed into and returned from every dispatch step.
type Cursor int

// Apply turns one token on qubit row into an operation.
//
// Rotations read params[cur] and return cur+1; other tokens return cur
// unchanged. A rotation that finds cur at or beyond len(params) fails with a
// parameter underflow, which means the caller sized params differently from
// CountParameters.
func Apply(tok gate.Token, row int, params []float64, cur Cursor) (Operation, Cursor, error) {
	switch tok.Kind {
	case gate.Fixed:
		return Operation{Kind: KindGate, Gate: tok.Op, Qubits: []int{row}, Slot: -1}, cur, nil

	case gate.Rotation:
		if int(cur) >= len(params) || cur < 0 {
			return Operation{}, cur, errors.ParameterUnderflow(nil, int(cur), len(params))
		}
		return Operation{
			Kind:   KindGate,
			Gate:   tok.Op,
			Qubits: []int{row},
			Angle:  params[cur],
			Source: FromParams,
			Slot:   int(cur),
		}, cur + 1, nil

	case gate.Entangling:
		return Operation{Kind: KindGate, Gate: tok.Op, Qubits: []int{row, tok.Target}, Slot: -1}, cur, nil
	}
	return Operation{}, cur, errors.UnknownGate(nil, tok.String(), nil)
}
