package game

// NextPrice computes a stock's price after a dice roll. UP adds the amount,
// DOWN subtracts it and fully resets to the starting price when the result
// would hit zero or below. Dividends never move the price.
func NextPrice(current int64, action DiceAction, amount int64) int64 {
	switch action {
	case ActionUp:
		return current + amount
	case ActionDown:
		next := current - amount
		if next <= 0 {
			return StartingPrice
		}
		return next
	default:
		return current
	}
}

// ShouldSplit reports whether a price has reached the split threshold.
func ShouldSplit(price int64) bool {
	return price >= SplitPrice
}

// Dividend returns the payout for one holder. Stocks trading below the
// starting price pay nothing; otherwise the dice amount is paid per share.
// The price is only an eligibility gate, never a multiplier.
func Dividend(price, shares, amountPerShare int64) int64 {
	if price < StartingPrice || shares <= 0 {
		return 0
	}
	return shares * amountPerShare
}

// PortfolioValue is a player's net worth: cash plus holdings at current prices.
func PortfolioValue(cash int64, holdings map[StockType]int64, prices map[StockType]int64) int64 {
	total := cash
	for st, shares := range holdings {
		total += shares * prices[st]
	}
	return total
}
