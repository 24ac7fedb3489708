package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// IsInteractive reports whether stdin and stdout are both terminals
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// TerminalSize returns the size of the terminal on stdout, falling back to 80x24
func TerminalSize() (width, height int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}

// Command is one parsed line of script input
type Command struct {
	Intent Intent
	// Ticks is the number of simulation steps requested by a "tick N" line
	Ticks int
}

// ParseCommand parses a script line such as "toggle 3 4", "run" or "tick 10".
// Blank lines and lines starting with '#' parse as an empty Command.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return Command{}, nil
	}

	code := strings.ToLower(fields[0])
	args := fields[1:]

	if code == "tick" {
		n := 1
		if len(args) > 0 {
			v, err := strconv.Atoi(args[0])
			if err != nil || v < 0 {
				return Command{}, fmt.Errorf("tick count %q is not a non-negative integer", args[0])
			}
			n = v
		}
		return Command{Ticks: n}, nil
	}

	intent := MapToIntent(DebouncedInput{Device: DeviceTerminal, Code: code})
	if intent.Action == ActionNone {
		return Command{}, fmt.Errorf("unknown command %q", fields[0])
	}

	if intent.Action == ActionToggleCell || intent.Action == ActionClearCell {
		if len(args) != 2 {
			return Command{}, fmt.Errorf("%s needs a row and a column", code)
		}
		row, err := strconv.Atoi(args[0])
		if err != nil {
			return Command{}, fmt.Errorf("row %q is not an integer", args[0])
		}
		col, err := strconv.Atoi(args[1])
		if err != nil {
			return Command{}, fmt.Errorf("column %q is not an integer", args[1])
		}
		intent = intent.At(row, col)
	}

	return Command{Intent: intent}, nil
}

// ScriptReader reads commands line by line
type ScriptReader struct {
	r    *bufio.Reader
	line int
}

// NewScriptReader wraps r for line-oriented command input
func NewScriptReader(r io.Reader) *ScriptReader {
	return &ScriptReader{r: bufio.NewReader(r)}
}

// Next returns the next command. It returns io.EOF once input is exhausted.
func (s *ScriptReader) Next() (Command, error) {
	for {
		text, err := s.r.ReadString('\n')
		if text == "" && err != nil {
			return Command{}, err
		}
		s.line++

		cmd, perr := ParseCommand(strings.TrimRight(text, "\r\n"))
		if perr != nil {
			return Command{}, fmt.Errorf("line %d: %w", s.line, perr)
		}
		if cmd.Intent.Action == ActionNone && cmd.Ticks == 0 {
			if err != nil {
				return Command{}, err
			}
			continue
		}
		return cmd, nil
	}
}
