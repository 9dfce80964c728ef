package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"
)

// errInputClosed signals that stdin reached EOF; the shell shuts down
// cleanly when it sees this.
var errInputClosed = errors.New("input closed")

func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(line), nil
}

// promptChoice prints a prompt and returns the raw trimmed answer.
func (s *Shell) promptChoice(label string) (string, error) {
	promptColor.Fprint(s.out, label)
	return s.readLine()
}

// promptString re-prompts until a non-blank value is entered.
func (s *Shell) promptString(label, invalidMsg string) (string, error) {
	for {
		promptColor.Fprint(s.out, label)
		v, err := s.readLine()
		if err != nil {
			return "", err
		}
		if v != "" {
			return v, nil
		}
		errorColor.Fprintln(s.out, invalidMsg)
	}
}

// promptFloat re-prompts until a parseable number is entered.
func (s *Shell) promptFloat(label, invalidMsg string) (float64, error) {
	for {
		promptColor.Fprint(s.out, label)
		raw, err := s.readLine()
		if err != nil {
			return 0, err
		}
		v, perr := strconv.ParseFloat(raw, 64)
		if perr == nil {
			return v, nil
		}
		errorColor.Fprintln(s.out, invalidMsg)
	}
}

// promptPositiveFloat additionally rejects zero and negative values.
func (s *Shell) promptPositiveFloat(label string) (float64, error) {
	for {
		v, err := s.promptFloat(label, "Invalid amount. Please try again.")
		if err != nil {
			return 0, err
		}
		if v > 0 {
			return v, nil
		}
		errorColor.Fprintln(s.out, "Amount must be positive. Please try again.")
	}
}

// promptInt re-prompts until a parseable integer is entered.
func (s *Shell) promptInt(label, invalidMsg string) (int, error) {
	for {
		promptColor.Fprint(s.out, label)
		raw, err := s.readLine()
		if err != nil {
			return 0, err
		}
		v, perr := strconv.Atoi(raw)
		if perr == nil {
			return v, nil
		}
		errorColor.Fprintln(s.out, invalidMsg)
	}
}

// promptDate re-prompts until a YYYY-MM-DD date is entered.
func (s *Shell) promptDate(label string) (time.Time, error) {
	for {
		promptColor.Fprint(s.out, label)
		raw, err := s.readLine()
		if err != nil {
			return time.Time{}, err
		}
		d, perr := time.Parse("2006-01-02", raw)
		if perr == nil {
			return d, nil
		}
		errorColor.Fprintln(s.out, "Invalid date. Use YYYY-MM-DD.")
	}
}

// promptPassword reads a password without echo when stdin is a terminal,
// falling back to a plain line read otherwise (pipes, tests).
func (s *Shell) promptPassword(label string) (string, error) {
	for {
		promptColor.Fprint(s.out, label)
		fd := int(os.Stdin.Fd())
		if term.IsTerminal(fd) {
			raw, err := term.ReadPassword(fd)
			fmt.Fprintln(s.out)
			if err != nil {
				return "", errInputClosed
			}
			if pw := strings.TrimSpace(string(raw)); pw != "" {
				return pw, nil
			}
		} else {
			pw, err := s.readLine()
			if err != nil {
				return "", err
			}
			if pw != "" {
				return pw, nil
			}
		}
		errorColor.Fprintln(s.out, "Invalid password. Please try again.")
	}
}
