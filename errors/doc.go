// Package errors provides structured error types for the flexcircuit module.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The phases follow the compiler's failure taxonomy:
//
//	PhaseConfig    missing or malformed configuration, raised at construction
//	PhaseSchema    unknown gate token or invalid entangling target, raised at construction
//	PhaseEncoding  input vector incompatible with the embedding, raised at assembly
//	PhaseCursor    parameter vector disagrees with the declared count, raised at assembly
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseSchema, errors.KindUnknownGate).
//		Path("fixed", "1", "0").
//		Token("CNOTX").
//		Detail("not in gate vocabulary").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.MissingBlock("trainable")
//	err := errors.ParameterUnderflow(path, 3, 3)
//
// Sentinel values match by Phase and Kind:
//
//	if errors.Is(err, fcerrors.ErrMissingBlock) { ... }
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
