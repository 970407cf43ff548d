package flexcircuit

import (
	"context"

	"github.com/wippyai/flexcircuit/circuit"
)

// Executor runs an assembled program and returns one expectation value per
// measurement request, in request order. inputs and params are the concrete
// vectors the program was assembled from.
//
// Implementations must be safe for concurrent use when the same layer is
// shared between goroutines. Their errors are returned to callers unchanged.
type Executor interface {
	Execute(ctx context.Context, prog *circuit.Program, inputs, params []float64) ([]float64, error)
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(ctx context.Context, prog *circuit.Program, inputs, params []float64) ([]float64, error)

// Execute calls f.
func (f ExecutorFunc) Execute(ctx context.Context, prog *circuit.Program, inputs, params []float64) ([]float64, error) {
	return f(ctx, prog, inputs, params)
}
