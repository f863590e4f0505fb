// Package intake drives the interactive console: it turns lines of user input
// into validated employees and roster reports.
package intake

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"paycalc/internal/domain/payroll"
	"paycalc/internal/domain/reports"
	"paycalc/internal/platform/logger"
)

var ErrFinished = errors.New("intake: session finished")

type State int

const (
	StateAwaitingCommand State = iota
	StateCollecting
	StateReporting
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateAwaitingCommand:
		return "awaiting_command"
	case StateCollecting:
		return "collecting"
	case StateReporting:
		return "reporting"
	case StateFinished:
		return "finished"
	}
	return "unknown"
}

const (
	banner       = "=== PAYROLL SYSTEM ==="
	namePrompt   = "Enter the employee's name:"
	nameRequired = "Name cannot be empty. Try again."
	badNumber    = "Enter a valid number greater than or equal to 0."
	badOption    = "Invalid option. Try again."
	goodbye      = "Goodbye!"
)

var menuKinds = map[string]payroll.Kind{
	"1": payroll.KindSalaried,
	"2": payroll.KindHourly,
	"3": payroll.KindCommissioned,
}

var amountPrompts = map[payroll.Kind]map[string]string{
	payroll.KindSalaried: {
		"salary": "Enter the monthly salary:",
	},
	payroll.KindHourly: {
		"hourlyRate":   "Enter the hourly rate:",
		"monthlyHours": "Enter the hours worked per month:",
	},
	payroll.KindCommissioned: {
		"baseSalary":     "Enter the base monthly salary:",
		"monthlySales":   "Enter the monthly sales:",
		"commissionRate": "Enter the commission percentage:",
	},
}

// Session is the console state machine. It owns the roster for the run and
// writes prompts and reports to out. It never reads input itself.
type Session struct {
	out      io.Writer
	roster   *payroll.Roster
	reporter *reports.Reporter
	log      *logger.Logger

	state  State
	kind   payroll.Kind
	step   int
	record payroll.Record
}

type Option func(*Session)

func WithLogger(log *logger.Logger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// WithRoster starts the session from an existing roster instead of an empty one.
func WithRoster(roster *payroll.Roster) Option {
	return func(s *Session) {
		if roster != nil {
			s.roster = roster
		}
	}
}

func NewSession(out io.Writer, opts ...Option) *Session {
	s := &Session{
		out:      out,
		roster:   payroll.NewRoster(),
		reporter: reports.NewReporter(out),
		log:      logger.Nop(),
		state:    StateAwaitingCommand,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) State() State            { return s.state }
func (s *Session) Roster() *payroll.Roster { return s.roster }

// Start prints the banner and the first menu.
func (s *Session) Start() error {
	if _, err := fmt.Fprintf(s.out, "%s\n", banner); err != nil {
		return err
	}
	return s.menu()
}

// Handle consumes one line of input. It returns ErrFinished once the session
// has ended and any error from the output sink.
func (s *Session) Handle(line string) error {
	input := strings.TrimSpace(line)
	switch s.state {
	case StateAwaitingCommand:
		return s.command(input)
	case StateCollecting:
		return s.collect(input)
	case StateFinished:
		return ErrFinished
	}
	return fmt.Errorf("intake: unexpected state %s", s.state)
}

// Finish ends the session as if the user chose to exit.
func (s *Session) Finish() error {
	if s.state == StateFinished {
		return nil
	}
	s.state = StateFinished
	_, err := fmt.Fprintln(s.out, goodbye)
	return err
}

func (s *Session) menu() error {
	var b strings.Builder
	b.WriteString("\nWhat type of employee do you want to add?\n")
	for i, kind := range payroll.Kinds {
		fmt.Fprintf(&b, "%d. %s\n", i+1, kind.Label())
	}
	b.WriteString("4. Show summary of all employees\n")
	b.WriteString("5. Exit\n")
	b.WriteString("Choose an option (1-5):\n")
	_, err := io.WriteString(s.out, b.String())
	return err
}

func (s *Session) command(input string) error {
	if kind, ok := menuKinds[input]; ok {
		s.state = StateCollecting
		s.kind = kind
		s.step = 0
		s.record = payroll.Record{Kind: kind}
		return s.prompt()
	}
	switch input {
	case "4":
		return s.report()
	case "5":
		return s.Finish()
	}
	if _, err := fmt.Fprintln(s.out, badOption); err != nil {
		return err
	}
	return s.menu()
}

func (s *Session) prompt() error {
	text := namePrompt
	if s.step > 0 {
		field := payroll.Fields[s.kind][s.step-1]
		text = amountPrompts[s.kind][field]
	}
	_, err := fmt.Fprintln(s.out, text)
	return err
}

func (s *Session) collect(input string) error {
	if s.step == 0 {
		if input == "" {
			if _, err := fmt.Fprintln(s.out, nameRequired); err != nil {
				return err
			}
			return s.prompt()
		}
		s.record.Name = input
		s.step++
		return s.prompt()
	}

	value, ok := parseAmount(input)
	if !ok {
		if _, err := fmt.Fprintf(s.out, "%s\n\n", badNumber); err != nil {
			return err
		}
		return s.prompt()
	}
	fields := payroll.Fields[s.kind]
	s.record.SetAmount(fields[s.step-1], value)
	if s.step < len(fields) {
		s.step++
		return s.prompt()
	}
	return s.commit()
}

func (s *Session) commit() error {
	e, err := s.record.Employee()
	if err != nil {
		return fmt.Errorf("intake: %w", err)
	}
	s.roster.Add(e)
	s.state = StateAwaitingCommand
	s.log.Debug("employee added", "kind", e.Kind(), "rosterSize", s.roster.Len())
	if _, err := fmt.Fprintf(s.out, "%s added successfully!\n", e.CategoryLabel()); err != nil {
		return err
	}
	return s.menu()
}

func (s *Session) report() error {
	s.state = StateReporting
	total, err := s.reporter.RenderRoster(s.roster.Employees())
	if err != nil {
		return err
	}
	s.log.Debug("roster reported", "employees", s.roster.Len(), "grandTotal", total)
	s.state = StateAwaitingCommand
	return s.menu()
}

func parseAmount(input string) (float64, bool) {
	value, err := strconv.ParseFloat(input, 64)
	if err != nil || payroll.CheckAmount(value) != "" {
		return 0, false
	}
	return value, true
}

// Run feeds in to the session line by line until the user exits, the input
// ends or ctx is cancelled. End of input finishes the session; cancellation
// finishes it too and returns ctx.Err(). A reader blocked on in is abandoned.
func Run(ctx context.Context, in io.Reader, s *Session) error {
	if err := s.Start(); err != nil {
		return err
	}
	done := make(chan struct{})
	defer close(done)
	lines, readErr := scanLines(in, done)
	for {
		if err := ctx.Err(); err != nil {
			return cancelled(s, err)
		}
		select {
		case <-ctx.Done():
			return cancelled(s, ctx.Err())
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("intake: read input: %w", err)
				}
				return s.Finish()
			}
			if err := s.Handle(line); err != nil {
				if errors.Is(err, ErrFinished) {
					return nil
				}
				return err
			}
			if s.State() == StateFinished {
				return nil
			}
		}
	}
}

func scanLines(in io.Reader, done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		readErr <- scanner.Err()
	}()
	return lines, readErr
}

func cancelled(s *Session, cause error) error {
	if err := s.Finish(); err != nil {
		return err
	}
	return cause
}
