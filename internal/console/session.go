// Package console runs the one-shot interactive calculator menu over a
// line-oriented reader and writer.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/pengelbrecht/calc/internal/calculator"
	"github.com/pengelbrecht/calc/internal/styles"
)

// State is the position of a session in its single menu interaction.
type State int

const (
	StateAwaitingChoice State = iota
	StateAwaitingOperands
	StateDone
)

func (s State) String() string {
	switch s {
	case StateAwaitingChoice:
		return "awaiting_choice"
	case StateAwaitingOperands:
		return "awaiting_operands"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

const invalidChoiceMessage = "Invalid choice. Please restart and choose a valid operation."

// ErrSessionDone is returned when Run is called on a finished session.
var ErrSessionDone = errors.New("session already finished")

// Session reads one menu selection and its operands, prints one result line
// and then finishes. Sessions are not reusable.
type Session struct {
	in      io.Reader
	scanner *bufio.Scanner
	out     io.Writer
	styles  *styles.Renderer
	logger  *slog.Logger
	state   State
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithStyles sets the renderer for the result and error lines.
func WithStyles(r *styles.Renderer) Option {
	return func(s *Session) {
		s.styles = r
	}
}

// NewSession creates a session reading whitespace separated integers from in.
// If in is an io.Closer it is closed when Run returns.
func NewSession(in io.Reader, out io.Writer, opts ...Option) *Session {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	s := &Session{
		in:      in,
		scanner: scanner,
		out:     out,
		logger:  slog.Default(),
		state:   StateAwaitingChoice,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current session state.
func (s *Session) State() State {
	return s.state
}

// Run performs the menu interaction. Division by zero and an invalid menu
// choice are reported on the output and are not errors; only unreadable or
// non-integer input is.
func (s *Session) Run() (err error) {
	if s.state == StateDone {
		return ErrSessionDone
	}
	defer func() {
		s.state = StateDone
		if cerr := s.close(); cerr != nil && err == nil {
			err = fmt.Errorf("close input: %w", cerr)
		}
	}()

	if err := s.printMenu(); err != nil {
		return err
	}

	choice, err := s.readInt()
	if err != nil {
		return fmt.Errorf("read choice: %w", err)
	}

	op, ok := Lookup(choice)
	if !ok {
		s.logger.Debug("invalid menu choice", "choice", choice)
		return s.println(invalidChoiceMessage)
	}
	s.state = StateAwaitingOperands
	s.logger.Debug("menu choice", "choice", choice, "operation", op.Name)

	if err := s.println(op.Prompt); err != nil {
		return err
	}

	operands := make([]int, op.Operands)
	for i := range operands {
		if operands[i], err = s.readInt(); err != nil {
			return fmt.Errorf("read operand: %w", err)
		}
	}

	text, err := op.Eval(operands...)
	if errors.Is(err, calculator.ErrDivisionByZero) {
		s.logger.Info("division by zero", "dividend", operands[0])
		return s.println(s.styles.Error("Error: " + err.Error()))
	}
	if err != nil {
		return err
	}

	s.logger.Debug("evaluated", "operation", op.Name, "operands", operands, "result", text)
	return s.println(s.styles.Result("Result: " + text))
}

func (s *Session) printMenu() error {
	if err := s.println(s.styles.Header("Welcome to the Calculator!")); err != nil {
		return err
	}
	if err := s.println("Please select an operation:"); err != nil {
		return err
	}
	for _, op := range Operations {
		if err := s.println(fmt.Sprintf("%d. %s", op.Choice, op.Label)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) readInt() (int, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	tok := s.scanner.Text()
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", tok, err)
	}
	return n, nil
}

func (s *Session) println(line string) error {
	if _, err := fmt.Fprintln(s.out, line); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func (s *Session) close() error {
	if c, ok := s.in.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
