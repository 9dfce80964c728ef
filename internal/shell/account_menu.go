package shell

import (
	"errors"

	"github.com/antoniopaulocuyo/MCASH2/pkg/domain/account"
	accountsvc "github.com/antoniopaulocuyo/MCASH2/pkg/service/account"
	"github.com/antoniopaulocuyo/MCASH2/pkg/utils"
)

func (s *Shell) createAccount() error {
	for {
		titleColor.Fprintln(s.out, "\n--- Create Account ---")
		menuColor.Fprintln(s.out, "1. Checking Account")
		menuColor.Fprintln(s.out, "2. Savings Account")

		choice, err := s.promptChoice("Choose account type: ")
		if err != nil {
			return err
		}

		var kind account.Kind
		switch choice {
		case "1":
			kind = account.KindChecking
		case "2":
			kind = account.KindSavings
		default:
			errorColor.Fprintln(s.out, "Invalid option. Please try again.")
			continue
		}

		password, err := s.promptPassword("Enter account password: ")
		if err != nil {
			return err
		}
		hash, err := utils.HashPassword(password)
		if err != nil {
			errorColor.Fprintln(s.out, "Could not create account. Please try again.")
			continue
		}

		params := accountsvc.OpenParams{
			Kind:         kind,
			UserID:       s.session.UserID,
			PasswordHash: hash,
		}
		if kind == account.KindChecking {
			params.OverdraftLimit, err = s.promptFloat("Enter overdraft limit: $", "Invalid amount. Please try again.")
		} else {
			params.InterestRate, err = s.promptFloat("Enter interest rate (%): ", "Invalid rate. Please try again.")
		}
		if err != nil {
			return err
		}

		acc, err := s.deps.Accounts.Open(params)
		if err != nil {
			errorColor.Fprintf(s.out, "Could not create account: %v\n", err)
			continue
		}
		if kind == account.KindChecking {
			successColor.Fprintf(s.out, "Checking account created successfully! Account ID: %s\n", acc.ID())
		} else {
			successColor.Fprintf(s.out, "Savings account created successfully! Account ID: %s\n", acc.ID())
		}
		return nil
	}
}

func (s *Shell) selectAccount() error {
	userAccounts := s.deps.Accounts.ListByUser(s.session.UserID)
	if len(userAccounts) == 0 {
		errorColor.Fprintln(s.out, "No accounts found. Please create an account first.")
		return nil
	}

	for {
		titleColor.Fprintln(s.out, "\n--- Your Accounts ---")
		for i, acc := range userAccounts {
			menuColor.Fprintf(s.out, "%d. %s\n", i+1, acc.Summary())
		}

		idx, err := s.promptInt("Select account: ", "Invalid input. Please try again.")
		if err != nil {
			return err
		}
		if idx >= 1 && idx <= len(userAccounts) {
			s.accountID = userAccounts[idx-1].ID()
			successColor.Fprintf(s.out, "Account selected: %s\n", s.accountID)
			return nil
		}
		errorColor.Fprintln(s.out, "Invalid selection. Please try again.")
	}
}

func (s *Shell) accountOperations() error {
	for {
		acc, err := s.deps.Accounts.Get(s.accountID)
		if err != nil {
			return err
		}
		savings := acc.Kind() == account.KindSavings

		titleColor.Fprintln(s.out, "\n--- Account Operations ---")
		menuColor.Fprintf(s.out, "Current Account: %s\n", acc.Summary())
		menuColor.Fprintln(s.out, "1. Deposit")
		menuColor.Fprintln(s.out, "2. Withdraw")
		menuColor.Fprintln(s.out, "3. View Balance")
		menuColor.Fprintln(s.out, "4. View Transaction History")
		if savings {
			menuColor.Fprintln(s.out, "5. Apply Interest")
		}
		menuColor.Fprintln(s.out, "0. Back to Main Menu")

		choice, err := s.promptChoice("Choose option: ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			if err := s.deposit(); err != nil {
				return err
			}
		case "2":
			if err := s.withdraw(); err != nil {
				return err
			}
		case "3":
			balance, err := s.deps.Accounts.Balance(s.accountID)
			if err != nil {
				return err
			}
			menuColor.Fprintf(s.out, "Current Balance: $%.2f\n", balance)
		case "4":
			if err := s.viewTransactionHistory(); err != nil {
				return err
			}
		case "5":
			if !savings {
				errorColor.Fprintln(s.out, "Invalid option. Please try again.")
				continue
			}
			s.applyInterest()
		case "0":
			return nil
		default:
			errorColor.Fprintln(s.out, "Invalid option. Please try again.")
		}
	}
}

func (s *Shell) deposit() error {
	amount, err := s.promptPositiveFloat("Enter deposit amount: $")
	if err != nil {
		return err
	}
	txn, err := s.deps.Accounts.Deposit(s.accountID, amount)
	if err != nil {
		errorColor.Fprintf(s.out, "Deposit failed: %v\n", err)
		return nil
	}
	successColor.Fprintf(s.out, "Deposited $%.2f (transaction %s)\n", amount, txn.ID())
	return nil
}

func (s *Shell) withdraw() error {
	amount, err := s.promptPositiveFloat("Enter withdrawal amount: $")
	if err != nil {
		return err
	}
	txn, err := s.deps.Accounts.Withdraw(s.accountID, amount)
	if err != nil {
		if errors.Is(err, account.ErrInsufficientFunds) {
			errorColor.Fprintln(s.out, "Insufficient funds.")
		} else {
			errorColor.Fprintf(s.out, "Withdrawal failed: %v\n", err)
		}
		return nil
	}
	successColor.Fprintf(s.out, "Withdrew $%.2f (transaction %s)\n", amount, txn.ID())
	return nil
}

func (s *Shell) applyInterest() {
	txn, err := s.deps.Accounts.ApplyInterest(s.accountID)
	if err != nil {
		errorColor.Fprintf(s.out, "Could not apply interest: %v\n", err)
		return
	}
	if txn == nil {
		menuColor.Fprintln(s.out, "No interest to apply.")
		return
	}
	successColor.Fprintf(s.out, "Interest applied: $%.2f\n", txn.Amount())
}

func (s *Shell) viewTransactionHistory() error {
	history, err := s.deps.Accounts.History(s.accountID)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		menuColor.Fprintln(s.out, "No transactions found.")
		return nil
	}

	titleColor.Fprintln(s.out, "\n--- Transaction History ---")
	for _, txn := range history {
		menuColor.Fprintln(s.out, txn.Details())
	}
	return nil
}

func (s *Shell) viewAllAccounts() {
	userAccounts := s.deps.Accounts.ListByUser(s.session.UserID)
	if len(userAccounts) == 0 {
		errorColor.Fprintln(s.out, "No accounts found.")
		return
	}

	titleColor.Fprintln(s.out, "\n--- All Your Accounts ---")
	for _, acc := range userAccounts {
		menuColor.Fprintln(s.out, acc.Summary())
	}
}
