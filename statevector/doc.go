// Package statevector is a reference executor: a dense state-vector
// simulator for assembled circuits.
//
// It applies every operation exactly and returns Pauli-Z expectation values,
// so results are deterministic. Memory grows as 2^n complex numbers; the
// default limit is DefaultMaxQubits.
//
//	sim := statevector.New(statevector.WithMaxQubits(16))
//	vals, err := sim.Execute(ctx, prog, inputs, params)
//
// Qubit 0 is the most significant bit of a basis index, matching the
// amplitude order used by state preparation.
package statevector
