package config

import (
	"fmt"
	"strconv"

	"github.com/wippyai/flexcircuit/errors"
	"github.com/wippyai/flexcircuit/gate"
)

// Spec is a raw configuration as written by a caller or decoded from a file.
// A nil block means the block is absent.
type Spec struct {
	// Fixed is the non-trainable layer, one row of tokens per qubit.
	Fixed [][]string
	// Trainable is the trainable layer. Its columns may already hold several
	// repetitions concatenated end to end.
	Trainable [][]string
	// Measure selects the measured qubits.
	Measure []bool
	// Encoding is "angle" (default) or "amplitude".
	Encoding string
	// Repeat, when above 1, is applied to Trainable by Load and Parse.
	// Validate ignores it.
	Repeat int
}

// Validate checks spec and returns an immutable Config.
//
// qubitHint, when positive, is the qubit count the caller expects; a spec
// with a different row count is rejected. Checks run in a fixed order:
// missing blocks, dimensions, gate tokens, entangling targets, encoding.
func Validate(spec Spec, qubitHint int) (*Config, error) {
	if spec.Fixed == nil {
		return nil, errors.MissingBlock("fixed")
	}
	if spec.Trainable == nil {
		return nil, errors.MissingBlock("trainable")
	}
	if spec.Measure == nil {
		return nil, errors.MissingBlock("measure")
	}

	qubits, err := checkShape(len(spec.Fixed), len(spec.Trainable), len(spec.Measure), qubitHint)
	if err != nil {
		return nil, err
	}
	if err := checkRectangular("fixed", rowLengths(spec.Fixed)); err != nil {
		return nil, err
	}
	if err := checkRectangular("trainable", rowLengths(spec.Trainable)); err != nil {
		return nil, err
	}

	fixed, err := parseGrid(FixedBlock, spec.Fixed)
	if err != nil {
		return nil, err
	}
	trainable, err := parseGrid(TrainableBlock, spec.Trainable)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		fixed:     fixed,
		trainable: trainable,
		measure:   append([]bool(nil), spec.Measure...),
		qubits:    qubits,
	}
	if err := checkTargets(cfg); err != nil {
		return nil, err
	}

	enc, err := ParseEncoding(spec.Encoding)
	if err != nil {
		return nil, err
	}
	cfg.encoding = enc
	return cfg, nil
}

// New validates already-typed grids. It applies the same checks as Validate
// except token parsing; tokens whose Kind disagrees with their Op are
// reported as unknown gates.
func New(fixed, trainable [][]gate.Token, measure []bool, enc Encoding) (*Config, error) {
	if fixed == nil {
		return nil, errors.MissingBlock("fixed")
	}
	if trainable == nil {
		return nil, errors.MissingBlock("trainable")
	}
	if measure == nil {
		return nil, errors.MissingBlock("measure")
	}

	qubits, err := checkShape(len(fixed), len(trainable), len(measure), 0)
	if err != nil {
		return nil, err
	}
	if err := checkRectangular("fixed", tokenRowLengths(fixed)); err != nil {
		return nil, err
	}
	if err := checkRectangular("trainable", tokenRowLengths(trainable)); err != nil {
		return nil, err
	}

	cfg := &Config{
		fixed:     cloneGrid(fixed),
		trainable: cloneGrid(trainable),
		measure:   append([]bool(nil), measure...),
		qubits:    qubits,
	}
	err = cfg.Walk(func(c Cell) error {
		if !c.Token.Op.Valid() || c.Token.Op.Kind() != c.Token.Kind {
			return errors.UnknownGate(c.Path(), c.Token.String(),
				fmt.Errorf("op %s does not match kind %s", c.Token.Op, c.Token.Kind))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := checkTargets(cfg); err != nil {
		return nil, err
	}

	if enc != Angle && enc != Amplitude {
		return nil, errors.InvalidEncoding(enc.String())
	}
	cfg.encoding = enc
	return cfg, nil
}

func checkShape(fixed, trainable, measure, hint int) (int, error) {
	if fixed != trainable || fixed != measure {
		return 0, errors.DimensionMismatch(nil,
			fmt.Sprintf("row counts disagree: fixed %d, trainable %d, measure %d", fixed, trainable, measure))
	}
	if fixed == 0 {
		return 0, errors.DimensionMismatch(nil, "configuration has no qubits")
	}
	if hint > 0 && hint != fixed {
		return 0, errors.DimensionMismatch(nil,
			fmt.Sprintf("expected %d qubits, configuration has %d", hint, fixed))
	}
	return fixed, nil
}

func checkRectangular(name string, lengths []int) error {
	for row, n := range lengths {
		if n != lengths[0] {
			return errors.DimensionMismatch([]string{name, strconv.Itoa(row)},
				fmt.Sprintf("row has %d columns, row 0 has %d", n, lengths[0]))
		}
	}
	return nil
}

func rowLengths(grid [][]string) []int {
	out := make([]int, len(grid))
	for i, row := range grid {
		out[i] = len(row)
	}
	return out
}

func tokenRowLengths(grid [][]gate.Token) []int {
	out := make([]int, len(grid))
	for i, row := range grid {
		out[i] = len(row)
	}
	return out
}

func parseGrid(b Block, grid [][]string) ([][]gate.Token, error) {
	out := make([][]gate.Token, len(grid))
	for r, row := range grid {
		tokens, col, err := gate.ParseRow(row)
		if err != nil {
			path := Cell{Block: b, Row: r, Column: col}.Path()
			return nil, errors.UnknownGate(path, row[col], err)
		}
		out[r] = tokens
	}
	return out, nil
}

func checkTargets(cfg *Config) error {
	return cfg.Walk(func(c Cell) error {
		if c.Token.Kind != gate.Entangling {
			return nil
		}
		t := c.Token.Target
		if t == c.Row || t < 0 || t >= cfg.qubits {
			return errors.InvalidTarget(c.Path(), c.Token.String(), c.Row, t, cfg.qubits)
		}
		return nil
	})
}
