package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	fcerrors "github.com/wippyai/flexcircuit/errors"
	"github.com/wippyai/flexcircuit/gate"
)

func threeQubitSpec() Spec {
	return Spec{
		Fixed:     [][]string{{"H", "CNOT-2"}, {"H", "CNOT-3"}, {"H", "CNOT-1"}},
		Trainable: [][]string{{"RY", "CNOT-2", "RY"}, {"RY", "CNOT-3", "RY"}, {"RY", "CNOT-1", "RY"}},
		Measure:   []bool{true, true, true},
	}
}

func TestValidate(t *testing.T) {
	cfg, err := Validate(threeQubitSpec(), 3)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Qubits() != 3 {
		t.Errorf("Qubits() = %d, want 3", cfg.Qubits())
	}
	if cfg.Encoding() != Angle {
		t.Errorf("Encoding() = %v, want angle", cfg.Encoding())
	}
	if cfg.Columns(FixedBlock) != 2 || cfg.Columns(TrainableBlock) != 3 {
		t.Errorf("Columns = %d/%d", cfg.Columns(FixedBlock), cfg.Columns(TrainableBlock))
	}
	if got := cfg.Fixed()[2][1]; got != gate.Entangle(gate.OpCNOT, 0) {
		t.Errorf("fixed[2][1] = %+v", got)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Spec)
		hint   int
		want   error
	}{
		{"missing fixed", func(s *Spec) { s.Fixed = nil }, 0, fcerrors.ErrMissingBlock},
		{"missing trainable", func(s *Spec) { s.Trainable = nil }, 0, fcerrors.ErrMissingBlock},
		{"missing measure", func(s *Spec) { s.Measure = nil }, 0, fcerrors.ErrMissingBlock},
		{"row count", func(s *Spec) { s.Measure = []bool{true, true} }, 0, fcerrors.ErrDimensionMismatch},
		{"hint", func(s *Spec) {}, 4, fcerrors.ErrDimensionMismatch},
		{"no qubits", func(s *Spec) {
			s.Fixed, s.Trainable, s.Measure = [][]string{}, [][]string{}, []bool{}
		}, 0, fcerrors.ErrDimensionMismatch},
		{"ragged fixed", func(s *Spec) { s.Fixed[1] = []string{"H"} }, 0, fcerrors.ErrDimensionMismatch},
		{"ragged trainable", func(s *Spec) { s.Trainable[2] = append(s.Trainable[2], "RX") }, 0, fcerrors.ErrDimensionMismatch},
		{"unknown token", func(s *Spec) { s.Trainable[0][1] = "U3" }, 0, fcerrors.ErrUnknownGate},
		{"self target", func(s *Spec) { s.Fixed[0][1] = "CNOT-1" }, 0, fcerrors.ErrInvalidTarget},
		{"target too high", func(s *Spec) { s.Fixed[0][1] = "CNOT-4" }, 0, fcerrors.ErrInvalidTarget},
		{"target zero", func(s *Spec) { s.Fixed[0][1] = "CNOT-0" }, 0, fcerrors.ErrInvalidTarget},
		{"encoding", func(s *Spec) { s.Encoding = "basis" }, 0, fcerrors.ErrInvalidEncoding},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := threeQubitSpec()
			tt.mutate(&spec)
			_, err := Validate(spec, tt.hint)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Validate error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestValidateErrorPath(t *testing.T) {
	spec := threeQubitSpec()
	spec.Trainable[1][2] = "QQ"
	_, err := Validate(spec, 0)

	var e *fcerrors.Error
	if !errors.As(err, &e) {
		t.Fatalf("error %v is not *errors.Error", err)
	}
	if diff := cmp.Diff([]string{"trainable", "1", "2"}, e.Path); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
	if e.Token != "QQ" {
		t.Errorf("Token = %q, want QQ", e.Token)
	}
}

func TestValidateOrder(t *testing.T) {
	// A ragged block with an unknown token reports the shape problem first.
	spec := threeQubitSpec()
	spec.Fixed[1] = []string{"BOGUS"}
	_, err := Validate(spec, 0)
	if !errors.Is(err, fcerrors.ErrDimensionMismatch) {
		t.Errorf("error = %v, want dimension mismatch", err)
	}

	// Unknown tokens are reported before bad targets and bad encodings.
	spec = threeQubitSpec()
	spec.Fixed[0][1] = "CNOT-1"
	spec.Trainable[2][0] = "BOGUS"
	spec.Encoding = "basis"
	_, err = Validate(spec, 0)
	if !errors.Is(err, fcerrors.ErrUnknownGate) {
		t.Errorf("error = %v, want unknown gate", err)
	}
}

func TestConfigIsImmutable(t *testing.T) {
	spec := threeQubitSpec()
	cfg, err := Validate(spec, 0)
	if err != nil {
		t.Fatal(err)
	}
	spec.Measure[0] = false
	cfg.Measure()[1] = false
	cfg.Fixed()[0][0] = gate.FixedGate(gate.OpX)

	if diff := cmp.Diff([]bool{true, true, true}, cfg.Measure()); diff != "" {
		t.Errorf("mask changed (-want +got):\n%s", diff)
	}
	if cfg.Fixed()[0][0].Op != gate.OpH {
		t.Error("fixed block changed through accessor")
	}
}

func TestWalkOrder(t *testing.T) {
	cfg, err := Validate(Spec{
		Fixed:     [][]string{{"H"}, {"X"}},
		Trainable: [][]string{{"RX", "RY"}, {"RZ", "CNOT-1"}},
		Measure:   []bool{true, false},
	}, 0)
	if err != nil {
		t.Fatal(err)
	}

	var got []string
	_ = cfg.Walk(func(c Cell) error {
		got = append(got, c.Token.String())
		return nil
	})
	want := []string{"H", "X", "RX", "RZ", "RY", "CNOT-1"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("walk order (-want +got):\n%s", diff)
	}

	stop := errors.New("stop")
	n := 0
	err = cfg.Walk(func(Cell) error {
		n++
		if n == 3 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) || n != 3 {
		t.Errorf("Walk did not stop: n=%d err=%v", n, err)
	}
}

func TestMeasured(t *testing.T) {
	cfg, err := Validate(Spec{
		Fixed:     [][]string{{}, {}, {}},
		Trainable: [][]string{{}, {}, {}},
		Measure:   []bool{true, false, true},
	}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{0, 2}, cfg.Measured()); diff != "" {
		t.Errorf("Measured (-want +got):\n%s", diff)
	}
}

func TestNew(t *testing.T) {
	fixed := [][]gate.Token{{gate.FixedGate(gate.OpH)}, {gate.FixedGate(gate.OpH)}}
	trainable := [][]gate.Token{{gate.Rotate(gate.OpRY)}, {gate.Entangle(gate.OpCZ, 0)}}

	cfg, err := New(fixed, trainable, []bool{true, true}, Amplitude)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if cfg.Encoding() != Amplitude {
		t.Errorf("Encoding() = %v", cfg.Encoding())
	}

	_, err = New(fixed, [][]gate.Token{{gate.Rotate(gate.OpRY)}, {gate.Entangle(gate.OpCZ, 1)}}, []bool{true, true}, Angle)
	if !errors.Is(err, fcerrors.ErrInvalidTarget) {
		t.Errorf("self target error = %v", err)
	}

	bad := [][]gate.Token{{{Kind: gate.Rotation, Op: gate.OpH}}, {gate.FixedGate(gate.OpH)}}
	_, err = New(bad, trainable, []bool{true, true}, Angle)
	if !errors.Is(err, fcerrors.ErrUnknownGate) {
		t.Errorf("mismatched kind error = %v", err)
	}

	_, err = New(fixed, nil, []bool{true, true}, Angle)
	if !errors.Is(err, fcerrors.ErrMissingBlock) {
		t.Errorf("missing block error = %v", err)
	}

	_, err = New(fixed, trainable, []bool{true, true}, Encoding(7))
	if !errors.Is(err, fcerrors.ErrInvalidEncoding) {
		t.Errorf("encoding error = %v", err)
	}
}

func TestParseEncoding(t *testing.T) {
	for in, want := range map[string]Encoding{"": Angle, "angle": Angle, "Amplitude": Amplitude} {
		got, err := ParseEncoding(in)
		if err != nil || got != want {
			t.Errorf("ParseEncoding(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseEncoding("iqp"); !errors.Is(err, fcerrors.ErrInvalidEncoding) {
		t.Errorf("ParseEncoding(iqp) error = %v", err)
	}
}

func TestRepeatColumns(t *testing.T) {
	got := RepeatColumns([][]string{{"RY", "CNOT-2"}, {"RY", "CNOT-1"}}, 2)
	want := [][]string{{"RY", "CNOT-2", "RY", "CNOT-2"}, {"RY", "CNOT-1", "RY", "CNOT-1"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RepeatColumns (-want +got):\n%s", diff)
	}
	if RepeatColumns(nil, 3) != nil {
		t.Error("RepeatColumns(nil) should stay nil")
	}
}

func TestParse(t *testing.T) {
	t.Run("short keys with repeat", func(t *testing.T) {
		spec, err := Parse([]byte(`
F: [[H, CNOT-2], [H, CNOT-1]]
U: [[RY, CNOT-2], [RY, CNOT-1]]
M: [true, false]
encoding: amplitude
repeat: 2
`))
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if len(spec.Trainable[0]) != 4 {
			t.Errorf("trainable row = %v, want 4 columns", spec.Trainable[0])
		}
		cfg, err := Validate(spec, 2)
		if err != nil {
			t.Fatalf("Validate: %v", err)
		}
		if cfg.Encoding() != Amplitude {
			t.Errorf("Encoding() = %v", cfg.Encoding())
		}
	})

	t.Run("json long keys", func(t *testing.T) {
		spec, err := Parse([]byte(`{"fixed": [["H"]], "trainable": [["RX"]], "measure": [true]}`))
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if _, err := Validate(spec, 1); err != nil {
			t.Fatalf("Validate: %v", err)
		}
	})

	t.Run("missing key stays missing", func(t *testing.T) {
		spec, err := Parse([]byte("F: [[H]]\nM: [true]\n"))
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if _, err := Validate(spec, 0); !errors.Is(err, fcerrors.ErrMissingBlock) {
			t.Errorf("Validate error = %v", err)
		}
	})

	for name, doc := range map[string]string{
		"unknown key":   "F: [[H]]\nV: [[H]]\n",
		"duplicate key": "F: [[H]]\nfixed: [[H]]\n",
		"not a mapping": "- H\n- X\n",
		"bad mask":      "M: [maybe]\n",
		"negative":      "repeat: -1\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			var e *fcerrors.Error
			if !errors.As(err, &e) || e.Phase != fcerrors.PhaseLoad {
				t.Errorf("Parse error = %v, want load error", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "circuit.yaml")
	if err := os.WriteFile(path, []byte("fixed: [[H]]\ntrainable: [[RZ]]\nmeasure: [true]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	spec, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if spec.Trainable[0][0] != "RZ" {
		t.Errorf("spec = %+v", spec)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of missing file should fail")
	}
}
