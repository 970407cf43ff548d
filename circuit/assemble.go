package circuit

import (
	"go.uber.org/zap"

	"github.com/wippyai/flexcircuit/config"
	"github.com/wippyai/flexcircuit/errors"
)

// CountParameters returns the length of the parameter vector cfg consumes:
// one slot per rotation token across the fixed and trainable blocks.
func CountParameters(cfg *config.Config) int {
	n := 0
	for c := range cfg.Cells() {
		if c.Token.ConsumesParameter() {
			n++
		}
	}
	return n
}

// Assemble builds the operation sequence for one forward call: the input
// embedding, the fixed block, the trainable block and the measurement
// requests, in that order.
//
// params must hold exactly CountParameters(cfg) values. Any failure aborts
// the whole call; a partial program is never returned.
func Assemble(cfg *config.Config, enc config.Encoding, inputs, params []float64) (*Program, error) {
	ops, err := embed(enc, cfg.Qubits(), inputs)
	if err != nil {
		return nil, err
	}

	cur := Cursor(0)
	for cell := range cfg.Cells() {
		var op Operation
		op, cur, err = Apply(cell.Token, cell.Row, params, cur)
		if err != nil {
			if e, ok := err.(*errors.Error); ok {
				e.Path = cell.Path()
			}
			return nil, err
		}
		ops = append(ops, op)
	}
	if int(cur) != len(params) {
		return nil, errors.ParameterSurplus(int(cur), len(params))
	}

	measured := cfg.Measured()
	ms := make([]Measurement, len(measured))
	for i, q := range measured {
		ms[i] = Measurement{Qubit: q, Observable: PauliZ}
	}

	prog := &Program{Ops: ops, Measurements: ms, Qubits: cfg.Qubits()}
	Logger().Debug("assembled circuit",
		zap.Int("qubits", prog.Qubits),
		zap.Stringer("encoding", enc),
		zap.Int("ops", len(prog.Ops)),
		zap.Int("params", int(cur)),
		zap.Int("measurements", len(ms)))
	return prog, nil
}
