package gate

import "strconv"

// Kind is the variant tag of a Token.
type Kind uint8

const (
	// Fixed is a single-qubit gate without parameters.
	Fixed Kind = iota
	// Rotation is a single-qubit rotation consuming one trainable parameter.
	Rotation
	// Entangling is a two-qubit gate; the token's row is the control.
	Entangling
)

func (k Kind) String() string {
	switch k {
	case Fixed:
		return "fixed"
	case Rotation:
		return "rotation"
	case Entangling:
		return "entangling"
	}
	return "unknown"
}

// Op identifies a concrete gate.
type Op uint8

const (
	OpInvalid Op = iota

	// single-qubit, no parameter
	OpH
	OpX
	OpY
	OpZ
	OpS
	OpT

	// single-qubit rotations
	OpRX
	OpRY
	OpRZ

	// two-qubit
	OpCNOT
	OpCZ
	OpSWAP
)

var opNames = [...]string{
	OpInvalid: "INVALID",
	OpH:       "H",
	OpX:       "X",
	OpY:       "Y",
	OpZ:       "Z",
	OpS:       "S",
	OpT:       "T",
	OpRX:      "RX",
	OpRY:      "RY",
	OpRZ:      "RZ",
	OpCNOT:    "CNOT",
	OpCZ:      "CZ",
	OpSWAP:    "SWAP",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "Op(" + strconv.Itoa(int(o)) + ")"
}

// Kind returns the token variant an op belongs to.
func (o Op) Kind() Kind {
	switch o {
	case OpRX, OpRY, OpRZ:
		return Rotation
	case OpCNOT, OpCZ, OpSWAP:
		return Entangling
	}
	return Fixed
}

// Valid reports whether o is a known gate.
func (o Op) Valid() bool {
	return o > OpInvalid && o <= OpSWAP
}

// Token is one cell of a configuration grid. Target is meaningful only for
// Entangling tokens and is a 0-based qubit index.
type Token struct {
	Kind   Kind
	Op     Op
	Target int
}

// FixedGate returns a parameterless single-qubit token. It panics if op is
// not a fixed gate.
func FixedGate(op Op) Token {
	if !op.Valid() || op.Kind() != Fixed {
		panic("gate: " + op.String() + " is not a fixed gate")
	}
	return Token{Kind: Fixed, Op: op}
}

// Rotate returns a rotation token. It panics if op is not a rotation.
func Rotate(op Op) Token {
	if op.Kind() != Rotation {
		panic("gate: " + op.String() + " is not a rotation")
	}
	return Token{Kind: Rotation, Op: op}
}

// Entangle returns a two-qubit token with the given 0-based target. It panics
// if op is not an entangling gate. Range checks happen at config validation.
func Entangle(op Op, target int) Token {
	if op.Kind() != Entangling {
		panic("gate: " + op.String() + " is not an entangling gate")
	}
	return Token{Kind: Entangling, Op: op, Target: target}
}

// ConsumesParameter reports whether the token takes a slot from the
// trainable parameter vector.
func (t Token) ConsumesParameter() bool {
	return t.Kind == Rotation
}

// String renders the token in configuration syntax. Entangling targets are
// printed 1-based, so String and Parse round-trip.
func (t Token) String() string {
	if t.Kind == Entangling {
		return t.Op.String() + "-" + strconv.Itoa(t.Target+1)
	}
	return t.Op.String()
}
