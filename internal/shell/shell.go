// Package shell implements the interactive menu loop. It owns input
// parsing and rendering only; every state change goes through the
// services, so no financial logic lives here.
package shell

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/antoniopaulocuyo/MCASH2/internal/initializer"
	authsvc "github.com/antoniopaulocuyo/MCASH2/pkg/service/auth"
	"github.com/fatih/color"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	menuColor    = color.New(color.FgWhite)
	promptColor  = color.New(color.FgYellow)
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
)

// Shell drives the menu loop. It holds the logged-in session and the
// currently selected account between menus.
type Shell struct {
	deps *initializer.Deps
	in   *bufio.Reader
	out  io.Writer

	session   *authsvc.Session
	accountID string
}

// New creates a Shell reading from stdin and writing to stdout.
func New(deps *initializer.Deps) *Shell {
	return NewWithIO(deps, os.Stdin, os.Stdout)
}

// NewWithIO creates a Shell bound to the given streams.
func NewWithIO(deps *initializer.Deps, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		deps: deps,
		in:   bufio.NewReader(in),
		out:  out,
	}
}

// Run executes the menu loop until the user exits or input closes.
func (s *Shell) Run() error {
	titleColor.Fprintln(s.out, "=== Welcome to MCASH Banking System ===")
	for {
		var err error
		if s.session == nil {
			err = s.loginMenu()
		} else {
			err = s.mainMenu()
		}
		if err != nil {
			if errors.Is(err, errInputClosed) || errors.Is(err, errExit) {
				menuColor.Fprintln(s.out, "Thank you for using MCASH Banking System!")
				return nil
			}
			return err
		}
	}
}

// errExit is returned when the user picks the exit option.
var errExit = errors.New("exit requested")

func (s *Shell) loginMenu() error {
	for {
		titleColor.Fprintln(s.out, "\n--- Login Menu ---")
		menuColor.Fprintln(s.out, "1. Register User")
		menuColor.Fprintln(s.out, "2. Login")
		menuColor.Fprintln(s.out, "3. Exit")

		choice, err := s.promptChoice("Choose option: ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			if err := s.registerUser(); err != nil {
				return err
			}
		case "2":
			if err := s.loginUser(); err != nil {
				return err
			}
			if s.session != nil {
				return nil
			}
		case "3":
			return errExit
		default:
			errorColor.Fprintln(s.out, "Invalid option. Please try again.")
		}
	}
}

func (s *Shell) mainMenu() error {
	for {
		titleColor.Fprintln(s.out, "\n--- Main Menu ---")
		menuColor.Fprintln(s.out, "1. Create Account")
		menuColor.Fprintln(s.out, "2. Select Account")
		menuColor.Fprintln(s.out, "3. Account Operations")
		menuColor.Fprintln(s.out, "4. Investment Operations")
		menuColor.Fprintln(s.out, "5. View All Accounts")
		menuColor.Fprintln(s.out, "6. Logout")

		choice, err := s.promptChoice("Choose option: ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			err = s.createAccount()
		case "2":
			err = s.selectAccount()
		case "3":
			if s.accountID == "" {
				errorColor.Fprintln(s.out, "Please select an account first.")
				continue
			}
			err = s.accountOperations()
		case "4":
			if s.accountID == "" {
				errorColor.Fprintln(s.out, "Please select an account first.")
				continue
			}
			err = s.investmentOperations()
		case "5":
			s.viewAllAccounts()
		case "6":
			s.session = nil
			s.accountID = ""
			successColor.Fprintln(s.out, "Logged out successfully.")
			return nil
		default:
			errorColor.Fprintln(s.out, "Invalid option. Please try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) registerUser() error {
	for {
		username, err := s.promptString("Enter username: ", "Invalid username. Please try again.")
		if err != nil {
			return err
		}
		password, err := s.promptPassword("Enter password: ")
		if err != nil {
			return err
		}

		if _, err := s.deps.Auth.Register(username, password); err != nil {
			errorColor.Fprintln(s.out, "Username already exists. Please try again.")
			continue
		}
		successColor.Fprintln(s.out, "User registered successfully!")
		return nil
	}
}

func (s *Shell) loginUser() error {
	for {
		username, err := s.promptString("Enter username: ", "Invalid username. Please try again.")
		if err != nil {
			return err
		}
		password, err := s.promptPassword("Enter password: ")
		if err != nil {
			return err
		}

		session, err := s.deps.Auth.Login(username, password)
		if err != nil {
			errorColor.Fprintln(s.out, "Invalid credentials. Please try again.")
			continue
		}
		s.session = session
		successColor.Fprintf(s.out, "Login successful! Welcome %s\n", session.Username)
		return nil
	}
}
