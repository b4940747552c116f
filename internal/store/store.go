package store

import (
	"dashbot/internal/domain"

	"github.com/govalues/decimal"
)

// Sessions defines dialog-session persistence. Sessions are handed out by
// value: callers mutate their copy and persist it with Save.
type Sessions interface {
	GetOrCreate(userID int64) domain.DialogSession
	Save(session domain.DialogSession)
	Clear(userID int64)
}

// Ledger defines order and wallet operations
type Ledger interface {
	CreateRideOrder(ownerID int64, pickup, destination string) (*domain.Order, error)
	CreateFoodOrder(ownerID int64, restaurant, item string) (*domain.Order, error)
	LatestOrderFor(userID int64) (*domain.Order, error)
	GetWallet(userID int64) (*domain.Wallet, error)
	TopUp(userID int64, amount decimal.Decimal) (*domain.Wallet, error)
}
