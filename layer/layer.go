package layer

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wippyai/flexcircuit"
	"github.com/wippyai/flexcircuit/circuit"
	"github.com/wippyai/flexcircuit/config"
	"github.com/wippyai/flexcircuit/errors"
)

// Layer is a compiled quantum layer: a validated configuration, its
// parameter count and the executor that evaluates it. A Layer is read-only
// after New and is safe for concurrent use if its executor is.
type Layer struct {
	cfg         *config.Config
	exec        flexcircuit.Executor
	log         *zap.Logger
	params      int
	concurrency int
}

// Option configures a Layer.
type Option func(*Layer)

// WithLogger sets the logger for per-call debug output.
func WithLogger(l *zap.Logger) Option {
	return func(ly *Layer) { ly.log = l }
}

// WithConcurrency bounds the goroutines ForwardBatch uses. n <= 0 means no limit.
func WithConcurrency(n int) Option {
	return func(ly *Layer) { ly.concurrency = n }
}

// New builds a layer from a validated configuration.
func New(cfg *config.Config, exec flexcircuit.Executor, opts ...Option) (*Layer, error) {
	if cfg == nil {
		return nil, errors.NotInitialized(errors.PhaseConfig, "configuration")
	}
	if exec == nil {
		return nil, errors.NotInitialized(errors.PhaseExecute, "executor")
	}
	ly := &Layer{
		cfg:    cfg,
		exec:   exec,
		log:    zap.NewNop(),
		params: circuit.CountParameters(cfg),
	}
	for _, o := range opts {
		o(ly)
	}
	ly.log.Debug("layer ready",
		zap.Int("qubits", cfg.Qubits()),
		zap.Stringer("encoding", cfg.Encoding()),
		zap.Int("parameters", ly.params),
		zap.Ints("measured", cfg.Measured()))
	return ly, nil
}

// FromSpec validates spec and builds a layer. qubitHint is passed to
// config.Validate.
func FromSpec(spec config.Spec, qubitHint int, exec flexcircuit.Executor, opts ...Option) (*Layer, error) {
	cfg, err := config.Validate(spec, qubitHint)
	if err != nil {
		return nil, err
	}
	return New(cfg, exec, opts...)
}

// Config returns the validated configuration.
func (l *Layer) Config() *config.Config { return l.cfg }

// RequiredParameterCount is the exact length of the parameter vector
// Forward expects.
func (l *Layer) RequiredParameterCount() int { return l.params }

// WeightShape describes the trainable tensor for a host framework.
func (l *Layer) WeightShape() map[string]int {
	return map[string]int{"weights": l.params}
}

// OutputSize is the number of values Forward returns.
func (l *Layer) OutputSize() int { return len(l.cfg.Measured()) }

// Program assembles the circuit for one input and parameter vector without
// executing it.
func (l *Layer) Program(inputs, params []float64) (*circuit.Program, error) {
	return circuit.Assemble(l.cfg, l.cfg.Encoding(), inputs, params)
}

// Forward assembles and executes the circuit. The result holds one
// expectation value per measured qubit, in ascending qubit order. Executor
// errors are returned unchanged.
func (l *Layer) Forward(ctx context.Context, inputs, params []float64) ([]float64, error) {
	start := time.Now()
	prog, err := l.Program(inputs, params)
	if err != nil {
		return nil, err
	}

	out, err := l.exec.Execute(ctx, prog, inputs, params)
	if err != nil {
		return nil, err
	}
	if len(out) != len(prog.Measurements) {
		return nil, errors.New(errors.PhaseExecute, errors.KindResultCount).
			Value(len(out)).
			Detail("executor returned %d values for %d measurements", len(out), len(prog.Measurements)).
			Build()
	}

	l.log.Debug("forward",
		zap.Int("ops", len(prog.Ops)),
		zap.Int("depth", prog.Depth()),
		zap.Duration("elapsed", time.Since(start)))
	return out, nil
}

// ForwardBatch runs Forward for every input vector with shared params.
// Results keep the batch order. The first error cancels the remaining calls.
func (l *Layer) ForwardBatch(ctx context.Context, batch [][]float64, params []float64) ([][]float64, error) {
	out := make([][]float64, len(batch))
	g, ctx := errgroup.WithContext(ctx)
	if l.concurrency > 0 {
		g.SetLimit(l.concurrency)
	}
	for i, inputs := range batch {
		g.Go(func() error {
			res, err := l.Forward(ctx, inputs, params)
			if err != nil {
				return fmt.Errorf("batch item %d: %w", i, err)
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// InitParameters returns a parameter vector of the required length with
// values drawn uniformly from [0, 2π).
func (l *Layer) InitParameters(seed uint64) []float64 {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]float64, l.params)
	for i := range out {
		out[i] = r.Float64() * 2 * math.Pi
	}
	return out
}
