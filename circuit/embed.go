package circuit

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/wippyai/flexcircuit/config"
	"github.com/wippyai/flexcircuit/errors"
	"github.com/wippyai/flexcircuit/gate"
)

// maxAmplitudeQubits bounds 2^n for amplitude embedding.
const maxAmplitudeQubits = 30

// embed returns the operations that load inputs onto qubits. Nothing is
// returned unless the whole input vector is acceptable.
func embed(enc config.Encoding, qubits int, inputs []float64) ([]Operation, error) {
	switch enc {
	case config.Angle:
		if len(inputs) != qubits {
			return nil, errors.InputLength(enc.String(), len(inputs), qubits)
		}
		ops := make([]Operation, qubits)
		for q, x := range inputs {
			ops[q] = Operation{
				Kind:   KindGate,
				Gate:   gate.OpRX,
				Qubits: []int{q},
				Angle:  x,
				Source: FromInput,
				Slot:   q,
			}
		}
		return ops, nil

	case config.Amplitude:
		if qubits > maxAmplitudeQubits {
			return nil, errors.Unsupported(errors.PhaseEncoding, "amplitude encoding above 30 qubits")
		}
		want := 1 << qubits
		if len(inputs) != want {
			return nil, errors.InputLength(enc.String(), len(inputs), want)
		}
		norm := floats.Norm(inputs, 2)
		if norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
			return nil, errors.New(errors.PhaseEncoding, errors.KindInvalidInput).
				Value(norm).
				Detail("amplitude inputs cannot be normalised (norm %v)", norm).
				Build()
		}
		amps := make([]float64, len(inputs))
		copy(amps, inputs)
		floats.Scale(1/norm, amps)

		wires := make([]int, qubits)
		for q := range wires {
			wires[q] = q
		}
		return []Operation{{Kind: KindStatePrep, Qubits: wires, Amplitudes: amps, Slot: -1}}, nil
	}
	return nil, errors.InvalidEncoding(enc.String())
}
