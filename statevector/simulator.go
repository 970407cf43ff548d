package statevector

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/wippyai/flexcircuit/circuit"
	"github.com/wippyai/flexcircuit/errors"
)

// DefaultMaxQubits caps the state size at 2^20 amplitudes.
const DefaultMaxQubits = 20

// Simulator executes programs on a dense state vector. It holds no state
// between calls and is safe for concurrent use.
type Simulator struct {
	log       *zap.Logger
	maxQubits int
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithMaxQubits sets the largest program the simulator accepts.
func WithMaxQubits(n int) Option {
	return func(s *Simulator) { s.maxQubits = n }
}

// WithLogger sets the logger used for per-run debug output.
func WithLogger(l *zap.Logger) Option {
	return func(s *Simulator) { s.log = l }
}

// New creates a simulator.
func New(opts ...Option) *Simulator {
	s := &Simulator{log: zap.NewNop(), maxQubits: DefaultMaxQubits}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Run applies every operation of prog to a fresh |0...0> state and returns
// the final state. ctx is checked between operations.
func (s *Simulator) Run(ctx context.Context, prog *circuit.Program) (*State, error) {
	if prog == nil {
		return nil, errors.NotInitialized(errors.PhaseExecute, "program")
	}
	if prog.Qubits < 1 || prog.Qubits > s.maxQubits {
		return nil, errors.Unsupported(errors.PhaseExecute,
			fmt.Sprintf("%d qubits outside simulator range 1..%d", prog.Qubits, s.maxQubits))
	}

	st := NewState(prog.Qubits)
	for i, op := range prog.Ops {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var err error
		switch op.Kind {
		case circuit.KindStatePrep:
			err = st.prepare(op.Amplitudes)
		case circuit.KindGate:
			err = st.Apply(op.Gate, op.Qubits, op.Angle)
		default:
			err = errors.Unsupported(errors.PhaseExecute, fmt.Sprintf("operation kind %d", op.Kind))
		}
		if err != nil {
			if e, ok := err.(*errors.Error); ok {
				e.Path = []string{"op", fmt.Sprint(i)}
			}
			return nil, err
		}
	}
	return st, nil
}

// Execute implements flexcircuit.Executor. Angles are taken from the
// program; inputs and params are not read again.
func (s *Simulator) Execute(ctx context.Context, prog *circuit.Program, inputs, params []float64) ([]float64, error) {
	start := time.Now()
	st, err := s.Run(ctx, prog)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(prog.Measurements))
	for i, m := range prog.Measurements {
		if err := st.checkQubits(m.Qubit); err != nil {
			return nil, err
		}
		if m.Observable != circuit.PauliZ {
			return nil, errors.Unsupported(errors.PhaseExecute, "observable "+m.Observable.String())
		}
		out[i] = st.ExpectZ(m.Qubit)
	}

	s.log.Debug("executed program",
		zap.Int("qubits", prog.Qubits),
		zap.Int("ops", len(prog.Ops)),
		zap.Int("measurements", len(out)),
		zap.Duration("elapsed", time.Since(start)))
	return out, nil
}
