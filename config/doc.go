// Package config validates circuit configurations.
//
// A configuration describes, for n qubits, a fixed gate block, a trainable
// gate block and a measurement mask. Both blocks are grids with one row per
// qubit; every cell is a gate token (see package gate).
//
//	spec := config.Spec{
//	    Fixed:     [][]string{{"H", "CNOT-2"}, {"H", "CNOT-3"}, {"H", "CNOT-1"}},
//	    Trainable: [][]string{{"RY", "CNOT-2", "RY"}, {"RY", "CNOT-3", "RY"}, {"RY", "CNOT-1", "RY"}},
//	    Measure:   []bool{true, true, true},
//	}
//	cfg, err := config.Validate(spec, 0)
//
// Validation fails fast; the returned *Config is immutable and can be shared
// by concurrent callers. Config.Walk is the one traversal order used for
// both parameter counting and circuit assembly.
//
// Files are YAML or JSON, with long keys or the single-letter keys of the
// layer diagram:
//
//	F: [[H, CNOT-2], [H, CNOT-3], [H, CNOT-1]]
//	U: [[RY, CNOT-2, RY], [RY, CNOT-3, RY], [RY, CNOT-1, RY]]
//	M: [true, true, true]
//	encoding: angle
//	repeat: 2
package config
