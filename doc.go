// Package flexcircuit compiles declarative quantum-circuit configurations into
// executable variational layers for hybrid quantum/classical models.
//
// A configuration is a per-qubit grid of gate tokens split into a fixed block
// and a trainable block, a measurement mask and an input encoding. It is
// validated once; every forward call then assembles a concrete circuit from an
// input vector and a flat parameter vector and hands it to an Executor.
//
// # Architecture Overview
//
//	flexcircuit/         Root package with the Executor interface
//	├── gate/            Gate tokens: Fixed, Rotation and Entangling variants
//	├── config/          Spec validation, traversal order, YAML loading
//	├── circuit/         Parameter counting, token dispatch, assembly
//	├── statevector/     Reference executor (dense state-vector simulator)
//	├── layer/           Host-facing layer: Forward, ForwardBatch, weight shape
//	├── qasm/            OpenQASM 2.0 export of assembled programs
//	├── errors/          Structured error types
//	└── cmd/qcirc/       Command-line runner with an interactive mode
//
// # Quick Start
//
//	spec := config.Spec{
//	    Fixed:     [][]string{{"H", "CNOT-2"}, {"H", "Z"}},
//	    Trainable: [][]string{{"RY"}, {"RY"}},
//	    Measure:   []bool{true, true},
//	}
//	ly, err := layer.FromSpec(spec, 0, statevector.New())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, err := ly.Forward(ctx, []float64{0.1, 0.2}, ly.InitParameters(1))
//
// # Traversal Order
//
// Gates are visited column by column: every qubit's gate in column 0 of the
// fixed block, then column 1, and so on, then the trainable block the same
// way. Parameter counting and assembly share this order, so the k-th rotation
// met always reads the k-th parameter.
//
// # Parameter Vector
//
// A configuration declares exactly RequiredParameterCount rotations. Forward
// rejects shorter and longer parameter vectors.
//
// # Thread Safety
//
// Validated configurations and layers are immutable and safe for concurrent
// use. Concurrency of Forward is bounded by the Executor; the bundled
// simulator holds no state between calls.
package flexcircuit
