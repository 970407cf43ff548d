// Package gate defines the vocabulary of gate tokens used in circuit
// configuration grids.
//
// A Token is a closed variant with three kinds:
//
//	Fixed       H X Y Z S T          no parameter
//	Rotation    RX RY RZ             one trainable parameter
//	Entangling  CNOT-n CZ-n SWAP-n   control is the token's row, target is qubit n
//
// Tokens are parsed once, when a configuration is validated, and are never
// re-parsed during circuit assembly. In text form the entangling target is
// 1-based:
//
//	t, _ := gate.Parse("CNOT-2") // Token{Kind: Entangling, Op: OpCNOT, Target: 1}
//	t.String()                   // "CNOT-2"
package gate
