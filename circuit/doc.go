// Package circuit compiles a validated configuration into an operation
// sequence.
//
// Assembly runs four stages in a fixed order:
//
//	embedding   angle: RX(inputs[i]) on every qubit i
//	            amplitude: one state preparation with the normalised inputs
//	fixed       tokens of the fixed block, column-major
//	trainable   tokens of the trainable block, column-major
//	measure     expval(Z) for every masked qubit, ascending
//
// Rotation tokens read the parameter vector through an explicit Cursor that
// each dispatch step takes and returns. CountParameters walks the same
// order, so a vector of CountParameters(cfg) values is consumed exactly:
//
//	n := circuit.CountParameters(cfg)
//	prog, err := circuit.Assemble(cfg, cfg.Encoding(), inputs, params[:n])
//
// Assembly is a pure function of its arguments and is safe to call from many
// goroutines with the same *config.Config. No numeric simulation happens
// here; a Program is handed to an executor.
package circuit
