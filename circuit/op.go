package circuit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wippyai/flexcircuit/gate"
)

// OpKind distinguishes gate applications from state preparation.
type OpKind uint8

const (
	// KindGate applies Gate to Qubits.
	KindGate OpKind = iota
	// KindStatePrep replaces the state of all qubits with Amplitudes.
	KindStatePrep
)

// Source tells where the angle of an operation came from.
type Source uint8

const (
	// NoAngle marks an operation without a parameter.
	NoAngle Source = iota
	// FromInput marks an embedding rotation; Slot indexes the input vector.
	FromInput
	// FromParams marks a trainable rotation; Slot indexes the parameter vector.
	FromParams
)

func (s Source) String() string {
	switch s {
	case FromInput:
		return "input"
	case FromParams:
		return "param"
	}
	return "none"
}

// Operation is one step of an assembled circuit.
//
// For two-qubit gates Qubits is [control, target]. For KindStatePrep Qubits
// lists every wire and Amplitudes holds the unit-norm state, wire 0 being the
// most significant bit of the basis index.
type Operation struct {
	Amplitudes []float64
	Qubits     []int
	Angle      float64
	Slot       int
	Kind       OpKind
	Gate       gate.Op
	Source     Source
}

func (o Operation) String() string {
	if o.Kind == KindStatePrep {
		return fmt.Sprintf("StatePrep(%d amplitudes) %s", len(o.Amplitudes), wires(o.Qubits))
	}
	if o.Source == NoAngle {
		return o.Gate.String() + " " + wires(o.Qubits)
	}
	return fmt.Sprintf("%s(%.6g <- %s[%d]) %s", o.Gate, o.Angle, o.Source, o.Slot, wires(o.Qubits))
}

// Observable is a single-qubit observable whose expectation is measured.
type Observable uint8

const (
	PauliZ Observable = iota
)

func (o Observable) String() string {
	if o == PauliZ {
		return "Z"
	}
	return "Observable(" + strconv.Itoa(int(o)) + ")"
}

// Measurement requests the expectation of Observable on Qubit.
type Measurement struct {
	Qubit      int
	Observable Observable
}

func (m Measurement) String() string {
	return fmt.Sprintf("expval(%s) q[%d]", m.Observable, m.Qubit)
}

// Program is an assembled circuit ready for an executor.
type Program struct {
	Ops          []Operation
	Measurements []Measurement
	Qubits       int
}

// String renders one operation per line followed by the measurements.
func (p *Program) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "qubits %d\n", p.Qubits)
	for i, op := range p.Ops {
		fmt.Fprintf(&b, "%4d  %s\n", i, op)
	}
	for _, m := range p.Measurements {
		fmt.Fprintf(&b, "      %s\n", m)
	}
	return b.String()
}

// Depth is the number of time steps the operations need when every gate
// starts as soon as all its qubits are free.
func (p *Program) Depth() int {
	free := make([]int, p.Qubits)
	depth := 0
	for _, op := range p.Ops {
		start := 0
		for _, q := range op.Qubits {
			start = max(start, free[q])
		}
		for _, q := range op.Qubits {
			free[q] = start + 1
		}
		depth = max(depth, start+1)
	}
	return depth
}

// Slots returns the trainable parameter indices in consumption order.
func (p *Program) Slots() []int {
	var out []int
	for _, op := range p.Ops {
		if op.Source == FromParams {
			out = append(out, op.Slot)
		}
	}
	return out
}

func wires(qs []int) string {
	parts := make([]string, len(qs))
	for i, q := range qs {
		parts[i] = "q[" + strconv.Itoa(q) + "]"
	}
	return strings.Join(parts, ",")
}
