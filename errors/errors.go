package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseLoad     Phase = "load"     // reading a configuration file
	PhaseConfig   Phase = "config"   // block presence and shape
	PhaseSchema   Phase = "schema"   // gate tokens and entangling targets
	PhaseEncoding Phase = "encoding" // input vector against the embedding
	PhaseCursor   Phase = "cursor"   // parameter vector against the declared count
	PhaseExecute  Phase = "execute"  // execution backend
	PhaseExport   Phase = "export"   // text export of a program
)

// Kind categorizes the error
type Kind string

const (
	KindMissingBlock       Kind = "missing_block"
	KindDimensionMismatch  Kind = "dimension_mismatch"
	KindUnknownGate        Kind = "unknown_gate"
	KindInvalidTarget      Kind = "invalid_target"
	KindInvalidEncoding    Kind = "invalid_encoding"
	KindInputLength        Kind = "input_length"
	KindInvalidInput       Kind = "invalid_input"
	KindParameterUnderflow Kind = "parameter_underflow"
	KindParameterSurplus   Kind = "parameter_surplus"
	KindResultCount        Kind = "result_count"
	KindUnsupported        Kind = "unsupported"
	KindInvalidData        Kind = "invalid_data"
	KindNotInitialized     Kind = "not_initialized"
)

// Sentinels for errors.Is. Matching compares Phase and Kind only.
var (
	ErrMissingBlock       = &Error{Phase: PhaseConfig, Kind: KindMissingBlock}
	ErrDimensionMismatch  = &Error{Phase: PhaseConfig, Kind: KindDimensionMismatch}
	ErrInvalidEncoding    = &Error{Phase: PhaseConfig, Kind: KindInvalidEncoding}
	ErrUnknownGate        = &Error{Phase: PhaseSchema, Kind: KindUnknownGate}
	ErrInvalidTarget      = &Error{Phase: PhaseSchema, Kind: KindInvalidTarget}
	ErrInputLength        = &Error{Phase: PhaseEncoding, Kind: KindInputLength}
	ErrParameterUnderflow = &Error{Phase: PhaseCursor, Kind: KindParameterUnderflow}
	ErrParameterSurplus   = &Error{Phase: PhaseCursor, Kind: KindParameterSurplus}
)

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Token  string
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Token != "" {
		b.WriteString(": token ")
		b.WriteString(fmt.Sprintf("%q", e.Token))
	}

	if e.Detail != "" {
		if e.Token != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the location path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Token sets the offending token text
func (b *Builder) Token(t string) *Builder {
	b.err.Token = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// MissingBlock creates an error for an absent configuration block
func MissingBlock(name string) *Error {
	return &Error{
		Phase:  PhaseConfig,
		Kind:   KindMissingBlock,
		Path:   []string{name},
		Detail: fmt.Sprintf("configuration does not contain block %q", name),
	}
}

// DimensionMismatch creates a shape error
func DimensionMismatch(path []string, detail string) *Error {
	return &Error{
		Phase:  PhaseConfig,
		Kind:   KindDimensionMismatch,
		Path:   path,
		Detail: detail,
	}
}

// UnknownGate creates an error for a token outside the gate vocabulary
func UnknownGate(path []string, token string, cause error) *Error {
	return &Error{
		Phase: PhaseSchema,
		Kind:  KindUnknownGate,
		Path:  path,
		Token: token,
		Cause: cause,
	}
}

// InvalidTarget creates an error for an entangling target that is out of range
// or equal to its control qubit
func InvalidTarget(path []string, token string, control, target, qubits int) *Error {
	return &Error{
		Phase:  PhaseSchema,
		Kind:   KindInvalidTarget,
		Path:   path,
		Token:  token,
		Value:  target,
		Detail: fmt.Sprintf("target %d invalid for control %d on %d qubits", target, control, qubits),
	}
}

// InvalidEncoding creates an error for an unrecognized encoding selector
func InvalidEncoding(value string) *Error {
	return &Error{
		Phase:  PhaseConfig,
		Kind:   KindInvalidEncoding,
		Value:  value,
		Detail: fmt.Sprintf("encoding can be angle or amplitude, found %q", value),
	}
}

// InputLength creates an error for an input vector the embedding cannot accept
func InputLength(encoding string, got, want int) *Error {
	return &Error{
		Phase:  PhaseEncoding,
		Kind:   KindInputLength,
		Value:  got,
		Detail: fmt.Sprintf("%s encoding needs %d inputs, got %d", encoding, want, got),
	}
}

// ParameterUnderflow creates an error for a rotation that finds no parameter left
func ParameterUnderflow(path []string, cursor, length int) *Error {
	return &Error{
		Phase:  PhaseCursor,
		Kind:   KindParameterUnderflow,
		Path:   path,
		Value:  cursor,
		Detail: fmt.Sprintf("parameter index %d out of bounds (length %d)", cursor, length),
	}
}

// ParameterSurplus creates an error for a parameter vector longer than the circuit consumes
func ParameterSurplus(consumed, length int) *Error {
	return &Error{
		Phase:  PhaseCursor,
		Kind:   KindParameterSurplus,
		Value:  length,
		Detail: fmt.Sprintf("circuit consumed %d of %d parameters", consumed, length),
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// NotInitialized creates a not-initialized error
func NotInitialized(phase Phase, component string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotInitialized,
		Detail: fmt.Sprintf("%s not initialized", component),
	}
}

// Load creates a configuration loading error
func Load(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidData,
		Detail: detail,
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// Class names the category of the error as seen by a caller of the compiler.
func (e *Error) Class() string {
	switch e.Phase {
	case PhaseConfig, PhaseLoad:
		return "configuration"
	case PhaseSchema:
		return "schema"
	case PhaseEncoding:
		return "encoding"
	case PhaseCursor:
		return "parameter_cursor"
	default:
		return string(e.Phase)
	}
}
