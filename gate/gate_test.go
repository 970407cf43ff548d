package gate

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Token
	}{
		{"H", Token{Kind: Fixed, Op: OpH}},
		{" h ", Token{Kind: Fixed, Op: OpH}},
		{"T", Token{Kind: Fixed, Op: OpT}},
		{"RY", Token{Kind: Rotation, Op: OpRY}},
		{"rx", Token{Kind: Rotation, Op: OpRX}},
		{"CNOT-2", Token{Kind: Entangling, Op: OpCNOT, Target: 1}},
		{"cx-1", Token{Kind: Entangling, Op: OpCNOT, Target: 0}},
		{"CZ-3", Token{Kind: Entangling, Op: OpCZ, Target: 2}},
		{"SWAP-10", Token{Kind: Entangling, Op: OpSWAP, Target: 9}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"", ErrEmpty},
		{"   ", ErrEmpty},
		{"U3", ErrUnknown},
		{"RYY", ErrUnknown},
		{"H-2", ErrUnknown},
		{"CNOT", ErrTarget},
		{"CNOT-", ErrTarget},
		{"CNOT-x", ErrTarget},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := Parse(tt.in)
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.in, err, tt.want)
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, s := range []string{"H", "X", "Y", "Z", "S", "T", "RX", "RY", "RZ", "CNOT-1", "CZ-4", "SWAP-2"} {
		tok := MustParse(s)
		if tok.String() != s {
			t.Errorf("String() = %q, want %q", tok.String(), s)
		}
		again, err := Parse(tok.String())
		if err != nil || again != tok {
			t.Errorf("round trip of %q: %+v, %v", s, again, err)
		}
	}
}

func TestConsumesParameter(t *testing.T) {
	if !Rotate(OpRZ).ConsumesParameter() {
		t.Error("rotation should consume a parameter")
	}
	if FixedGate(OpH).ConsumesParameter() {
		t.Error("fixed gate should not consume a parameter")
	}
	if Entangle(OpCNOT, 1).ConsumesParameter() {
		t.Error("entangling gate should not consume a parameter")
	}
}

func TestConstructorsPanic(t *testing.T) {
	cases := map[string]func(){
		"fixed rotation":  func() { FixedGate(OpRX) },
		"rotate hadamard": func() { Rotate(OpH) },
		"entangle x":      func() { Entangle(OpX, 1) },
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			fn()
		})
	}
}

func TestParseRow(t *testing.T) {
	row, idx, err := ParseRow([]string{"H", "CNOT-2", "RY"})
	if err != nil {
		t.Fatalf("ParseRow: %v (cell %d)", err, idx)
	}
	if len(row) != 3 || row[2].Op != OpRY {
		t.Errorf("row = %+v", row)
	}

	_, idx, err = ParseRow([]string{"H", "BOGUS"})
	if err == nil || idx != 1 {
		t.Errorf("ParseRow failure index = %d, err = %v", idx, err)
	}
}
