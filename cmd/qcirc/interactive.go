package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/wippyai/flexcircuit/circuit"
	"github.com/wippyai/flexcircuit/layer"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	opStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateEdit modelState = iota
	stateShowResult
)

const (
	fieldInputs = iota
	fieldParams
)

type interactiveModel struct {
	err      error
	ly       *layer.Layer
	log      *zap.Logger
	prog     *circuit.Program
	opts     options
	results  []float64
	inputs   []textinput.Model
	focusIdx int
	seed     uint64
	state    modelState
}

type loadedMsg struct {
	err    error
	ly     *layer.Layer
	inputs []float64
	params []float64
}

type forwardMsg struct {
	err     error
	prog    *circuit.Program
	results []float64
}

func newInteractiveModel(opts options, log *zap.Logger) *interactiveModel {
	return &interactiveModel{opts: opts, log: log, seed: opts.seed, state: stateEdit}
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadCircuit
}

func (m *interactiveModel) loadCircuit() tea.Msg {
	ly, err := load(m.opts, m.log)
	if err != nil {
		return loadedMsg{err: err}
	}
	inputs, params, err := vectors(ly, m.opts)
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{ly: ly, inputs: inputs, params: params}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state == stateShowResult || m.ly == nil {
				return m, tea.Quit
			}

		case "tab":
			if m.state == stateEdit && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}
			return m, nil

		case "ctrl+r":
			if m.state == stateEdit && m.ly != nil {
				m.seed++
				m.inputs[fieldParams].SetValue(formatFloats(m.ly.InitParameters(m.seed)))
			}
			return m, nil

		case "enter":
			switch m.state {
			case stateEdit:
				if m.ly != nil {
					return m, m.forward
				}
			case stateShowResult:
				m.state = stateEdit
				m.err = nil
			}
			return m, nil

		case "esc":
			if m.state == stateShowResult {
				m.state = stateEdit
				m.err = nil
			}
			return m, nil
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.ly = msg.ly
		m.prepareInputs(msg.inputs, msg.params)

	case forwardMsg:
		m.prog = msg.prog
		m.results = msg.results
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateEdit {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) prepareInputs(inputs, params []float64) {
	fields := []struct {
		prompt string
		hint   string
		value  []float64
	}{
		{"inputs: ", fmt.Sprintf("%d values", len(inputs)), inputs},
		{"params: ", fmt.Sprintf("%d values", m.ly.RequiredParameterCount()), params},
	}
	m.inputs = make([]textinput.Model, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.Prompt = f.prompt
		ti.Placeholder = f.hint
		ti.Width = 60
		ti.SetValue(formatFloats(f.value))
		if i == fieldInputs {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = fieldInputs
}

func (m *interactiveModel) forward() tea.Msg {
	inputs, err := parseFloats(m.inputs[fieldInputs].Value())
	if err != nil {
		return forwardMsg{err: fmt.Errorf("inputs: %w", err)}
	}
	params, err := parseFloats(m.inputs[fieldParams].Value())
	if err != nil {
		return forwardMsg{err: fmt.Errorf("params: %w", err)}
	}

	prog, err := m.ly.Program(inputs, params)
	if err != nil {
		return forwardMsg{err: err}
	}
	out, err := m.ly.Forward(context.Background(), inputs, params)
	if err != nil {
		return forwardMsg{prog: prog, err: err}
	}
	return forwardMsg{prog: prog, results: out}
}

func (m *interactiveModel) View() string {
	if m.err != nil && m.ly == nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.ly == nil {
		return "Loading circuit..."
	}

	var b strings.Builder
	cfg := m.ly.Config()

	b.WriteString(titleStyle.Render("Circuit Runner"))
	b.WriteString(" ")
	b.WriteString(m.opts.configFile)
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %d  %s %s  %s %d\n\n",
		labelStyle.Render("qubits"), cfg.Qubits(),
		labelStyle.Render("encoding"), cfg.Encoding(),
		labelStyle.Render("parameters"), m.ly.RequiredParameterCount()))

	switch m.state {
	case stateEdit:
		for _, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • ctrl+r new params • enter run • ctrl+c quit"))

	case stateShowResult:
		if m.prog != nil {
			for _, op := range m.prog.Ops {
				b.WriteString(opStyle.Render("  " + op.String()))
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(formatResults(cfg.Measured(), m.results)))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter edit • q quit"))
	}

	return b.String()
}

func runInteractive(opts options, log *zap.Logger) error {
	p := tea.NewProgram(newInteractiveModel(opts, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
