// Package tui is a bubbletea front end for the calculator menu. Like the
// console session it performs exactly one interaction and then exits.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pengelbrecht/calc/internal/calculator"
	"github.com/pengelbrecht/calc/internal/console"
	"github.com/pengelbrecht/calc/internal/styles"
)

const invalidChoiceMessage = "Invalid choice. Please restart and choose a valid operation."

// ErrAborted is returned by Run when the user quits before a result is shown.
var ErrAborted = errors.New("aborted")

// Model is the bubbletea model for one calculator interaction.
type Model struct {
	input  textinput.Model
	styles *styles.Renderer

	state   console.State
	op      console.Operation
	result  string
	failed  bool
	aborted bool
	err     error
}

// New returns a model waiting for a menu choice.
func New(r *styles.Renderer) Model {
	ti := textinput.New()
	ti.Placeholder = "1-5"
	ti.Prompt = "> "
	ti.Focus()

	return Model{
		input:  ti,
		styles: r,
		state:  console.StateAwaitingChoice,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == console.StateDone {
		return m, tea.Quit
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			m.state = console.StateDone
			return m, tea.Quit
		case tea.KeyEnter:
			m = m.submit(strings.TrimSpace(m.input.Value()))
			if m.state == console.StateDone {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit(value string) Model {
	m.input.Reset()

	switch m.state {
	case console.StateAwaitingChoice:
		choice, err := strconv.Atoi(value)
		if err != nil {
			m.err = fmt.Errorf("invalid integer %q: %w", value, err)
			m.state = console.StateDone
			return m
		}
		op, ok := console.Lookup(choice)
		if !ok {
			m.result = invalidChoiceMessage
			m.state = console.StateDone
			return m
		}
		m.op = op
		m.input.Placeholder = strings.TrimSuffix(strings.Repeat("n ", op.Operands), " ")
		m.state = console.StateAwaitingOperands

	case console.StateAwaitingOperands:
		operands, err := parseOperands(value, m.op.Operands)
		if err != nil {
			m.err = err
			m.state = console.StateDone
			return m
		}
		text, err := m.op.Eval(operands...)
		switch {
		case errors.Is(err, calculator.ErrDivisionByZero):
			m.result = "Error: " + err.Error()
			m.failed = true
		case err != nil:
			m.err = err
		default:
			m.result = "Result: " + text
		}
		m.state = console.StateDone
	}
	return m
}

func parseOperands(value string, want int) ([]int, error) {
	fields := strings.Fields(value)
	if len(fields) != want {
		return nil, fmt.Errorf("expected %d numbers, got %d", want, len(fields))
	}
	operands := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", f, err)
		}
		operands[i] = n
	}
	return operands, nil
}

func (m Model) View() string {
	var b strings.Builder

	switch m.state {
	case console.StateAwaitingChoice:
		lines := []string{m.styles.Header("Welcome to the Calculator!"), "Please select an operation:"}
		for _, op := range console.Operations {
			lines = append(lines, fmt.Sprintf("%d. %s", op.Choice, op.Label))
		}
		b.WriteString(m.styles.Box(lines))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(m.styles.Dim("enter to select · esc to quit"))
	case console.StateAwaitingOperands:
		b.WriteString(m.styles.Bold(m.op.Prompt))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(m.styles.Dim("separate numbers with spaces · enter to calculate"))
	case console.StateDone:
		switch {
		case m.aborted:
			return ""
		case m.err != nil:
			b.WriteString(m.styles.Error("Error: " + m.err.Error()))
		case m.failed:
			b.WriteString(m.styles.Error(m.result))
		default:
			b.WriteString(m.styles.Result(m.result))
		}
	}
	b.WriteString("\n")
	return b.String()
}

// State returns the current interaction state.
func (m Model) State() console.State {
	return m.state
}

// Result returns the final line once the interaction is done.
func (m Model) Result() string {
	return m.result
}

// Err returns the input error that ended the interaction, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the program on in and out and blocks until it exits.
func Run(ctx context.Context, in io.Reader, out io.Writer, r *styles.Renderer) (string, error) {
	p := tea.NewProgram(New(r), tea.WithInput(in), tea.WithOutput(out), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("run tui: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return "", fmt.Errorf("unexpected model type %T", final)
	}
	if m.aborted {
		return "", ErrAborted
	}
	if m.err != nil {
		return "", m.err
	}
	return m.result, nil
}
