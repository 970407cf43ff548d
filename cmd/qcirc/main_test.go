package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	fcerrors "github.com/wippyai/flexcircuit/errors"
)

func TestParseFloats(t *testing.T) {
	tests := []struct {
		in      string
		want    []float64
		wantErr bool
	}{
		{"", nil, false},
		{"  ", nil, false},
		{"1", []float64{1}, false},
		{"0.5, -1.25 ,3e-1", []float64{0.5, -1.25, 0.3}, false},
		{"1,,2", nil, true},
		{"1,abc", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseFloats(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("parseFloats (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFormatResults(t *testing.T) {
	got := formatResults([]int{0, 2}, []float64{1, -0.5})
	want := "  <Z q[0]> = +1.000000\n  <Z q[2]> = -0.500000\n"
	if got != want {
		t.Errorf("formatResults = %q, want %q", got, want)
	}
}

func TestWriteResults(t *testing.T) {
	var buf bytes.Buffer
	writeResults(&buf, []int{1, 3}, []float64{0.25, -1})
	out := buf.String()
	for _, want := range []string{"QUBIT", "EXPECTATION", "0.250000", "-1.000000"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if lines := strings.Count(strings.TrimSpace(out), "\n"); lines != 2 {
		t.Errorf("got %d line breaks, want header plus 2 rows:\n%s", lines, out)
	}
}

func TestRun(t *testing.T) {
	log := zap.NewNop()
	tests := []struct {
		name string
		opts options
	}{
		{"angle", options{configFile: "testdata/bell.yaml", seed: 3}},
		{"explicit vectors", options{configFile: "testdata/bell.yaml", inputs: "0.1,0.2", params: "1,2,3"}},
		{"list", options{configFile: "testdata/bell.yaml", list: true}},
		{"qasm", options{configFile: "testdata/bell.yaml", emitQASM: true}},
		{"amplitude short keys", options{configFile: "testdata/short.yaml", seed: 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := run(tt.opts, log); err != nil {
				t.Errorf("run: %v", err)
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	log := zap.NewNop()
	tests := []struct {
		name string
		opts options
		want error
	}{
		{"qubit hint", options{configFile: "testdata/bell.yaml", qubits: 3}, fcerrors.ErrDimensionMismatch},
		{"short params", options{configFile: "testdata/bell.yaml", params: "1"}, fcerrors.ErrParameterUnderflow},
		{"surplus params", options{configFile: "testdata/bell.yaml", params: "1,2,3,4"}, fcerrors.ErrParameterSurplus},
		{"amplitude length", options{configFile: "testdata/short.yaml", inputs: "1,0"}, fcerrors.ErrInputLength},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := run(tt.opts, log); !errors.Is(err, tt.want) {
				t.Errorf("run error = %v, want %v", err, tt.want)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		err := run(options{configFile: "testdata/nope.yaml"}, log)
		var e *fcerrors.Error
		if !errors.As(err, &e) || e.Phase != fcerrors.PhaseLoad {
			t.Errorf("error = %v, want load error", err)
		}
	})
}
