package game

import "fmt"

func validLot(shares int64) bool {
	for _, lot := range ShareLots {
		if shares == lot {
			return true
		}
	}
	return false
}

// ValidateBuy checks lot size and affordability. Advisory only: the store
// re-runs it against live state inside its transaction before committing.
func ValidateBuy(shares, price, cash int64) error {
	if !validLot(shares) {
		return NewError(CodeInvalidLot,
			fmt.Sprintf("invalid share amount %d, must be one of 500, 1000, 2000, 5000", shares))
	}
	cost := shares * price
	if cost > cash {
		return NewError(CodeInsufficientFunds,
			fmt.Sprintf("insufficient funds: need $%.2f, have $%.2f",
				float64(cost)/100, float64(cash)/100))
	}
	return nil
}

// ValidateSell checks lot size and ownership.
func ValidateSell(shares, owned int64) error {
	if !validLot(shares) {
		return NewError(CodeInvalidLot,
			fmt.Sprintf("invalid share amount %d, must be one of 500, 1000, 2000, 5000", shares))
	}
	if shares > owned {
		return NewError(CodeInsufficientShares,
			fmt.Sprintf("cannot sell %d shares, only %d owned", shares, owned))
	}
	return nil
}
