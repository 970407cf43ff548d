package statevector

import (
	"math"
	"math/cmplx"

	"github.com/wippyai/flexcircuit/errors"
	"github.com/wippyai/flexcircuit/gate"
)

type matrix [2][2]complex128

var (
	invSqrt2 = complex(1/math.Sqrt2, 0)

	matH = matrix{{invSqrt2, invSqrt2}, {invSqrt2, -invSqrt2}}
	matX = matrix{{0, 1}, {1, 0}}
	matY = matrix{{0, -1i}, {1i, 0}}
	matZ = matrix{{1, 0}, {0, -1}}
	matS = matrix{{1, 0}, {0, 1i}}
	matT = matrix{{1, 0}, {0, cmplx.Exp(complex(0, math.Pi/4))}}
)

func rotation(op gate.Op, theta float64) matrix {
	c := complex(math.Cos(theta/2), 0)
	s := math.Sin(theta / 2)
	switch op {
	case gate.OpRX:
		return matrix{{c, complex(0, -s)}, {complex(0, -s), c}}
	case gate.OpRY:
		return matrix{{c, complex(-s, 0)}, {complex(s, 0), c}}
	default: // RZ
		return matrix{{cmplx.Exp(complex(0, -theta/2)), 0}, {0, cmplx.Exp(complex(0, theta/2))}}
	}
}

// State is a dense n-qubit state vector. Qubit 0 is the most significant bit
// of the basis index.
type State struct {
	amps []complex128
	n    int
}

// NewState returns |0...0> on n qubits.
func NewState(n int) *State {
	amps := make([]complex128, 1<<n)
	amps[0] = 1
	return &State{amps: amps, n: n}
}

// Qubits returns the qubit count.
func (s *State) Qubits() int { return s.n }

// Amplitudes returns a copy of the amplitudes.
func (s *State) Amplitudes() []complex128 {
	return append([]complex128(nil), s.amps...)
}

// Probabilities returns |amplitude|^2 for every basis state.
func (s *State) Probabilities() []float64 {
	out := make([]float64, len(s.amps))
	for i, a := range s.amps {
		out[i] = real(a)*real(a) + imag(a)*imag(a)
	}
	return out
}

// ExpectZ returns <Z> on qubit q.
func (s *State) ExpectZ(q int) float64 {
	bit := s.bit(q)
	var e float64
	for i, a := range s.amps {
		p := real(a)*real(a) + imag(a)*imag(a)
		if i&bit == 0 {
			e += p
		} else {
			e -= p
		}
	}
	return e
}

func (s *State) bit(q int) int {
	return 1 << (s.n - 1 - q)
}

func (s *State) checkQubits(qs ...int) error {
	for _, q := range qs {
		if q < 0 || q >= s.n {
			return errors.New(errors.PhaseExecute, errors.KindInvalidInput).
				Value(q).
				Detail("qubit %d out of range for %d qubits", q, s.n).
				Build()
		}
	}
	return nil
}

// prepare replaces the state with real amplitudes.
func (s *State) prepare(amps []float64) error {
	if len(amps) != len(s.amps) {
		return errors.InvalidInput(errors.PhaseExecute, "state preparation size does not match qubit count")
	}
	for i, a := range amps {
		s.amps[i] = complex(a, 0)
	}
	return nil
}

func (s *State) apply1(q int, m matrix) {
	bit := s.bit(q)
	for i := range s.amps {
		if i&bit != 0 {
			continue
		}
		j := i | bit
		a, b := s.amps[i], s.amps[j]
		s.amps[i] = m[0][0]*a + m[0][1]*b
		s.amps[j] = m[1][0]*a + m[1][1]*b
	}
}

func (s *State) applyCNOT(control, target int) {
	cBit, tBit := s.bit(control), s.bit(target)
	for i := range s.amps {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

func (s *State) applyCZ(control, target int) {
	cBit, tBit := s.bit(control), s.bit(target)
	for i := range s.amps {
		if i&cBit != 0 && i&tBit != 0 {
			s.amps[i] = -s.amps[i]
		}
	}
}

func (s *State) applySWAP(a, b int) {
	aBit, bBit := s.bit(a), s.bit(b)
	for i := range s.amps {
		if i&aBit != 0 && i&bBit == 0 {
			j := (i &^ aBit) | bBit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

// Apply applies one gate. Rotations use theta; other gates ignore it.
func (s *State) Apply(op gate.Op, qubits []int, theta float64) error {
	if err := s.checkQubits(qubits...); err != nil {
		return err
	}
	switch op.Kind() {
	case gate.Entangling:
		if len(qubits) != 2 || qubits[0] == qubits[1] {
			return errors.InvalidInput(errors.PhaseExecute, op.String()+" needs two distinct qubits")
		}
	default:
		if len(qubits) != 1 {
			return errors.InvalidInput(errors.PhaseExecute, op.String()+" needs one qubit")
		}
	}

	switch op {
	case gate.OpH:
		s.apply1(qubits[0], matH)
	case gate.OpX:
		s.apply1(qubits[0], matX)
	case gate.OpY:
		s.apply1(qubits[0], matY)
	case gate.OpZ:
		s.apply1(qubits[0], matZ)
	case gate.OpS:
		s.apply1(qubits[0], matS)
	case gate.OpT:
		s.apply1(qubits[0], matT)
	case gate.OpRX, gate.OpRY, gate.OpRZ:
		s.apply1(qubits[0], rotation(op, theta))
	case gate.OpCNOT:
		s.applyCNOT(qubits[0], qubits[1])
	case gate.OpCZ:
		s.applyCZ(qubits[0], qubits[1])
	case gate.OpSWAP:
		s.applySWAP(qubits[0], qubits[1])
	default:
		return errors.Unsupported(errors.PhaseExecute, "gate "+op.String())
	}
	return nil
}
