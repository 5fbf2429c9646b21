package cli

import (
	"context"
	"errors"
	"io"
)

var errEnd = errors.New("end")

type menuItem struct {
	choice string
	label  string
	run    func(state *State) error
}

// Shell is the interactive menu loop. It owns the State for the whole session.
type Shell struct {
	console    *Console
	operations *Operations
	state      *State
	menu       []menuItem
}

// NewShell creates a Shell over an already loaded state
func NewShell(console *Console, operations *Operations, state *State) *Shell {
	shell := &Shell{
		console:    console,
		operations: operations,
		state:      state,
	}
	shell.menu = []menuItem{
		{choice: "1", label: "Search word", run: operations.Search},
		{choice: "2", label: "Add word", run: operations.Add},
		{choice: "3", label: "Edit word", run: operations.Edit},
		{choice: "4", label: "Delete word", run: operations.Delete},
		{choice: "5", label: "List all words", run: operations.ListAll},
		{choice: "6", label: "Statistics", run: operations.Statistics},
		{choice: "7", label: "Exit", run: func(*State) error { return errEnd }},
	}
	return shell
}

// Run shows the menu until Exit is chosen, the input ends or ctx is cancelled.
// Only failures to read input or save the dictionary are returned.
func (s *Shell) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if err := s.Session(ctx); err != nil {
			if errors.Is(err, errEnd) || errors.Is(err, io.EOF) {
				s.console.Println("Goodbye!")
				return nil
			}
			return err
		}
	}
}

// Session runs a single menu turn
func (s *Shell) Session(ctx context.Context) error {
	s.printMenu()
	choice, err := s.console.Prompt("Choose an option")
	if err != nil {
		return err
	}

	for _, item := range s.menu {
		if item.choice == choice {
			return item.run(s.state)
		}
	}
	s.console.Failure("Invalid choice.")
	return nil
}

func (s *Shell) printMenu() {
	s.console.Println()
	_, _ = s.console.bold.Fprintln(s.console.stdoutWriter, "--- Personal Dictionary ---")
	for _, item := range s.menu {
		s.console.Printf("%s. %s\n", item.choice, item.label)
	}
}
