package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/flexcircuit/circuit"
	"github.com/wippyai/flexcircuit/config"
	"github.com/wippyai/flexcircuit/layer"
	"github.com/wippyai/flexcircuit/qasm"
	"github.com/wippyai/flexcircuit/statevector"
)

type options struct {
	configFile string
	inputs     string
	params     string
	seed       uint64
	qubits     int
	emitQASM   bool
	list       bool
}

func main() {
	var (
		opts        options
		verbose     = flag.Bool("v", false, "Verbose development logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.StringVar(&opts.configFile, "config", "", "Path to circuit configuration (YAML)")
	flag.StringVar(&opts.inputs, "inputs", "", "Input vector (comma-separated floats)")
	flag.StringVar(&opts.params, "params", "", "Parameter vector (comma-separated floats); random when empty")
	flag.Uint64Var(&opts.seed, "seed", 1, "Seed for random parameters")
	flag.IntVar(&opts.qubits, "qubits", 0, "Expected qubit count (0 to infer)")
	flag.BoolVar(&opts.emitQASM, "qasm", false, "Print the assembled circuit as OpenQASM 2.0 and exit")
	flag.BoolVar(&opts.list, "list", false, "Print the assembled program and exit")
	flag.Parse()

	if opts.configFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: qcirc -config <circuit.yaml> [-inputs x,...] [-params p,...] [-seed n]")
		fmt.Fprintln(os.Stderr, "       qcirc -config <circuit.yaml> -list | -qasm")
		fmt.Fprintln(os.Stderr, "       qcirc -config <circuit.yaml> -i  (interactive mode)")
		os.Exit(1)
	}

	log := zap.NewNop()
	if *verbose {
		var err error
		if log, err = zap.NewDevelopment(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer log.Sync() //nolint:errcheck
	}
	circuit.SetLogger(log)

	if *interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(opts, log); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(opts, log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options, log *zap.Logger) error {
	ctx := context.Background()

	ly, err := load(opts, log)
	if err != nil {
		return err
	}
	cfg := ly.Config()

	inputs, params, err := vectors(ly, opts)
	if err != nil {
		return err
	}

	prog, err := ly.Program(inputs, params)
	if err != nil {
		return fmt.Errorf("assemble: %w", err)
	}

	if opts.emitQASM {
		text, err := qasm.Emit(prog)
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		fmt.Print(text)
		return nil
	}

	fmt.Printf("Circuit: %s\n", opts.configFile)
	fmt.Printf("Qubits: %d\n", cfg.Qubits())
	fmt.Printf("Encoding: %s\n", cfg.Encoding())
	fmt.Printf("Parameters: %d\n", ly.RequiredParameterCount())
	fmt.Printf("Depth: %d\n", prog.Depth())
	fmt.Printf("\n%s", prog)

	if opts.list {
		return nil
	}

	out, err := ly.Forward(ctx, inputs, params)
	if err != nil {
		return fmt.Errorf("forward: %w", err)
	}
	fmt.Println()
	writeResults(os.Stdout, cfg.Measured(), out)
	return nil
}

func load(opts options, log *zap.Logger) (*layer.Layer, error) {
	spec, err := config.Load(opts.configFile)
	if err != nil {
		return nil, err
	}
	sim := statevector.New(statevector.WithLogger(log))
	ly, err := layer.FromSpec(spec, opts.qubits, sim, layer.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	return ly, nil
}

// vectors resolves the input and parameter vectors from flags, falling back
// to the ground-state input and seeded random parameters.
func vectors(ly *layer.Layer, opts options) (inputs, params []float64, err error) {
	if opts.inputs != "" {
		if inputs, err = parseFloats(opts.inputs); err != nil {
			return nil, nil, fmt.Errorf("inputs: %w", err)
		}
	} else {
		inputs = defaultInputs(ly.Config())
	}
	if opts.params != "" {
		if params, err = parseFloats(opts.params); err != nil {
			return nil, nil, fmt.Errorf("params: %w", err)
		}
	} else {
		params = ly.InitParameters(opts.seed)
	}
	return inputs, params, nil
}

func defaultInputs(cfg *config.Config) []float64 {
	if cfg.Encoding() == config.Amplitude {
		in := make([]float64, 1<<cfg.Qubits())
		in[0] = 1
		return in
	}
	return make([]float64, cfg.Qubits())
}

func parseFloats(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

func formatFloats(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatFloat(v, 'g', 6, 64)
	}
	return strings.Join(parts, ",")
}

func writeResults(w io.Writer, measured []int, out []float64) {
	data := make([][]string, len(measured))
	for i, q := range measured {
		data[i] = []string{strconv.Itoa(q), circuit.PauliZ.String(), strconv.FormatFloat(out[i], 'f', 6, 64)}
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"QUBIT", "OBSERVABLE", "EXPECTATION"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
}

func formatResults(measured []int, out []float64) string {
	var b strings.Builder
	for i, q := range measured {
		fmt.Fprintf(&b, "  <Z q[%d]> = %+.6f\n", q, out[i])
	}
	return b.String()
}
