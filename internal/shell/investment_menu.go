package shell

import (
	investmentsvc "github.com/antoniopaulocuyo/MCASH2/pkg/service/investment"
)

func (s *Shell) investmentOperations() error {
	for {
		titleColor.Fprintln(s.out, "\n--- Investment Operations ---")
		menuColor.Fprintln(s.out, "1. Create Stock Investment")
		menuColor.Fprintln(s.out, "2. Create Bond Investment")
		menuColor.Fprintln(s.out, "3. View Investments")
		menuColor.Fprintln(s.out, "4. Update Investment Price")
		menuColor.Fprintln(s.out, "0. Back to Main Menu")

		choice, err := s.promptChoice("Choose option: ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			if err := s.createStockInvestment(); err != nil {
				return err
			}
		case "2":
			if err := s.createBondInvestment(); err != nil {
				return err
			}
		case "3":
			if err := s.viewInvestments(); err != nil {
				return err
			}
		case "4":
			if err := s.updateInvestmentPrice(); err != nil {
				return err
			}
		case "0":
			return nil
		default:
			errorColor.Fprintln(s.out, "Invalid option. Please try again.")
		}
	}
}

func (s *Shell) createStockInvestment() error {
	for {
		name, err := s.promptString("Enter stock name: ", "Invalid name. Please try again.")
		if err != nil {
			return err
		}
		ticker, err := s.promptString("Enter ticker symbol: ", "Invalid ticker. Please try again.")
		if err != nil {
			return err
		}
		purchasePrice, err := s.promptFloat("Enter purchase price: $", "Invalid price. Please try again.")
		if err != nil {
			return err
		}
		currentPrice, err := s.promptFloat("Enter current price: $", "Invalid price. Please try again.")
		if err != nil {
			return err
		}
		quantity, err := s.promptInt("Enter quantity: ", "Invalid quantity. Please try again.")
		if err != nil {
			return err
		}
		dividendYield, err := s.promptFloat("Enter dividend yield (as decimal, e.g., 0.05 for 5%): ", "Invalid dividend yield. Please try again.")
		if err != nil {
			return err
		}

		stock, serr := s.deps.Investments.CreateStock(investmentsvc.StockParams{
			AccountID:     s.accountID,
			Name:          name,
			Ticker:        ticker,
			PurchasePrice: purchasePrice,
			CurrentPrice:  currentPrice,
			Quantity:      quantity,
			DividendYield: dividendYield,
		})
		if serr != nil {
			errorColor.Fprintf(s.out, "Error creating investment: %v\n", serr)
			continue
		}
		successColor.Fprintf(s.out, "Stock investment created successfully! ID: %s\n", stock.ID())
		return nil
	}
}

func (s *Shell) createBondInvestment() error {
	for {
		name, err := s.promptString("Enter bond name: ", "Invalid name. Please try again.")
		if err != nil {
			return err
		}
		issuer, err := s.promptString("Enter issuer: ", "Invalid issuer. Please try again.")
		if err != nil {
			return err
		}
		purchasePrice, err := s.promptFloat("Enter purchase price: $", "Invalid price. Please try again.")
		if err != nil {
			return err
		}
		currentPrice, err := s.promptFloat("Enter current price: $", "Invalid price. Please try again.")
		if err != nil {
			return err
		}
		quantity, err := s.promptInt("Enter quantity: ", "Invalid quantity. Please try again.")
		if err != nil {
			return err
		}
		faceValue, err := s.promptFloat("Enter face value: $", "Invalid face value. Please try again.")
		if err != nil {
			return err
		}
		couponRate, err := s.promptFloat("Enter coupon rate (as decimal, e.g., 0.05 for 5%): ", "Invalid coupon rate. Please try again.")
		if err != nil {
			return err
		}
		maturityDate, err := s.promptDate("Enter maturity date (YYYY-MM-DD): ")
		if err != nil {
			return err
		}

		bond, serr := s.deps.Investments.CreateBond(investmentsvc.BondParams{
			AccountID:     s.accountID,
			Name:          name,
			Issuer:        issuer,
			PurchasePrice: purchasePrice,
			CurrentPrice:  currentPrice,
			Quantity:      quantity,
			FaceValue:     faceValue,
			CouponRate:    couponRate,
			MaturityDate:  maturityDate,
		})
		if serr != nil {
			errorColor.Fprintf(s.out, "Error creating investment: %v\n", serr)
			continue
		}
		successColor.Fprintf(s.out, "Bond investment created successfully! ID: %s\n", bond.ID())
		return nil
	}
}

func (s *Shell) viewInvestments() error {
	holdings, err := s.deps.Investments.ListByAccount(s.accountID)
	if err != nil {
		return err
	}
	if len(holdings) == 0 {
		menuColor.Fprintln(s.out, "No investments found.")
		return nil
	}

	titleColor.Fprintln(s.out, "\n--- Your Investments ---")
	for _, inv := range holdings {
		menuColor.Fprintln(s.out, inv.Summary())
		menuColor.Fprintln(s.out)
	}
	return nil
}

func (s *Shell) updateInvestmentPrice() error {
	id, err := s.promptString("Enter investment ID: ", "Invalid ID. Please try again.")
	if err != nil {
		return err
	}
	price, err := s.promptFloat("Enter new price: $", "Invalid price. Please try again.")
	if err != nil {
		return err
	}
	if uerr := s.deps.Investments.UpdatePrice(id, price); uerr != nil {
		errorColor.Fprintf(s.out, "Could not update price: %v\n", uerr)
		return nil
	}
	summary, serr := s.deps.Investments.Summary(id)
	if serr == nil {
		menuColor.Fprintln(s.out, summary)
	}
	return nil
}
