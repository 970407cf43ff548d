// Package qasm renders assembled programs as OpenQASM 2.0 text so they can
// be handed to external toolchains.
package qasm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wippyai/flexcircuit/circuit"
	"github.com/wippyai/flexcircuit/errors"
	"github.com/wippyai/flexcircuit/gate"
)

const (
	header  = "OPENQASM 2.0;"
	include = `include "qelib1.inc";`
)

var mnemonics = map[gate.Op]string{
	gate.OpH:    "h",
	gate.OpX:    "x",
	gate.OpY:    "y",
	gate.OpZ:    "z",
	gate.OpS:    "s",
	gate.OpT:    "t",
	gate.OpRX:   "rx",
	gate.OpRY:   "ry",
	gate.OpRZ:   "rz",
	gate.OpCNOT: "cx",
	gate.OpCZ:   "cz",
	gate.OpSWAP: "swap",
}

// Builder accumulates the body of an OpenQASM 2.0 circuit.
type Builder struct {
	gates        []string
	measurements []string
	qubits       int
	classical    int
}

// NewBuilder creates a builder with a qreg of qubits and a creg of classical bits.
func NewBuilder(qubits, classical int) *Builder {
	return &Builder{qubits: qubits, classical: classical}
}

// AddGate appends one gate statement.
func (b *Builder) AddGate(stmt string) {
	b.gates = append(b.gates, stmt)
}

// AddMeasurement appends measure q[qubit] -> c[bit].
func (b *Builder) AddMeasurement(qubit, bit int) {
	b.measurements = append(b.measurements, fmt.Sprintf("measure q[%d] -> c[%d];", qubit, bit))
}

// Build returns the complete program text.
func (b *Builder) Build() string {
	var sb strings.Builder
	sb.WriteString(header + "\n")
	sb.WriteString(include + "\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n", b.qubits)
	if b.classical > 0 {
		fmt.Fprintf(&sb, "creg c[%d];\n", b.classical)
	}
	for _, g := range b.gates {
		sb.WriteString(g + "\n")
	}
	for _, m := range b.measurements {
		sb.WriteString(m + "\n")
	}
	return sb.String()
}

// Emit renders prog. Rotation angles are written as concrete values.
// Measurement k is written to classical bit k. State preparation has no
// OpenQASM 2.0 form and is rejected.
func Emit(prog *circuit.Program) (string, error) {
	if prog == nil {
		return "", errors.NotInitialized(errors.PhaseExport, "program")
	}
	b := NewBuilder(prog.Qubits, len(prog.Measurements))
	for i, op := range prog.Ops {
		stmt, err := statement(op)
		if err != nil {
			if e, ok := err.(*errors.Error); ok {
				e.Path = []string{"op", strconv.Itoa(i)}
			}
			return "", err
		}
		b.AddGate(stmt)
	}
	for k, m := range prog.Measurements {
		if m.Observable != circuit.PauliZ {
			return "", errors.Unsupported(errors.PhaseExport, "observable "+m.Observable.String())
		}
		b.AddMeasurement(m.Qubit, k)
	}
	return b.Build(), nil
}

func statement(op circuit.Operation) (string, error) {
	if op.Kind == circuit.KindStatePrep {
		return "", errors.Unsupported(errors.PhaseExport, "state preparation in OpenQASM 2.0")
	}
	name, ok := mnemonics[op.Gate]
	if !ok {
		return "", errors.Unsupported(errors.PhaseExport, "gate "+op.Gate.String())
	}

	args := make([]string, len(op.Qubits))
	for i, q := range op.Qubits {
		args[i] = "q[" + strconv.Itoa(q) + "]"
	}
	if op.Gate.Kind() == gate.Rotation {
		name += "(" + strconv.FormatFloat(op.Angle, 'g', -1, 64) + ")"
	}
	return name + " " + strings.Join(args, ",") + ";", nil
}
