package config

import (
	"iter"
	"strconv"

	"github.com/wippyai/flexcircuit/gate"
)

// Block names one of the two gate grids.
type Block uint8

const (
	FixedBlock Block = iota
	TrainableBlock
)

func (b Block) String() string {
	if b == FixedBlock {
		return "fixed"
	}
	return "trainable"
}

// Cell is one token visited by Walk.
type Cell struct {
	Token  gate.Token
	Block  Block
	Column int
	Row    int
}

// Path locates the cell for error reporting, e.g. [trainable 2 5].
func (c Cell) Path() []string {
	return []string{c.Block.String(), strconv.Itoa(c.Row), strconv.Itoa(c.Column)}
}

// Config is a validated circuit configuration. It is immutable and safe for
// concurrent use.
type Config struct {
	fixed     [][]gate.Token
	trainable [][]gate.Token
	measure   []bool
	qubits    int
	encoding  Encoding
}

// Qubits returns the qubit count.
func (c *Config) Qubits() int { return c.qubits }

// Encoding returns the input embedding.
func (c *Config) Encoding() Encoding { return c.encoding }

// Measure returns a copy of the measurement mask.
func (c *Config) Measure() []bool {
	return append([]bool(nil), c.measure...)
}

// Measured returns the measured qubit indices in ascending order.
func (c *Config) Measured() []int {
	var out []int
	for q, m := range c.measure {
		if m {
			out = append(out, q)
		}
	}
	return out
}

// Fixed returns a copy of the fixed block.
func (c *Config) Fixed() [][]gate.Token { return cloneGrid(c.fixed) }

// Trainable returns a copy of the trainable block.
func (c *Config) Trainable() [][]gate.Token { return cloneGrid(c.trainable) }

// Columns returns the column count of a block.
func (c *Config) Columns(b Block) int {
	grid := c.grid(b)
	if len(grid) == 0 {
		return 0
	}
	return len(grid[0])
}

func (c *Config) grid(b Block) [][]gate.Token {
	if b == FixedBlock {
		return c.fixed
	}
	return c.trainable
}

// Cells yields every token in execution order: the fixed block then the
// trainable block, each column left to right and, within a column, each row
// top to bottom.
//
// Parameter counting and circuit assembly both iterate Cells, which keeps
// the declared parameter count and the consumption order in lockstep.
func (c *Config) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, b := range [...]Block{FixedBlock, TrainableBlock} {
			grid := c.grid(b)
			cols := c.Columns(b)
			for col := 0; col < cols; col++ {
				for row := range grid {
					if !yield(Cell{Token: grid[row][col], Block: b, Column: col, Row: row}) {
						return
					}
				}
			}
		}
	}
}

// Walk calls fn for each cell in Cells order and stops at the first error.
func (c *Config) Walk(fn func(Cell) error) error {
	for cell := range c.Cells() {
		if err := fn(cell); err != nil {
			return err
		}
	}
	return nil
}

func cloneGrid(g [][]gate.Token) [][]gate.Token {
	out := make([][]gate.Token, len(g))
	for i, row := range g {
		out[i] = append([]gate.Token(nil), row...)
	}
	return out
}
