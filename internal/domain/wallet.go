package domain

import "github.com/govalues/decimal"

// Wallet holds a user's balance. The balance only ever grows through
// top-ups and never goes negative.
type Wallet struct {
	UserID  int64
	Balance decimal.Decimal
}
