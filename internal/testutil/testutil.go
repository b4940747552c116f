package testutil

import (
	"time"

	"dashbot/internal/domain"

	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// MustDecimal parses a decimal or panics; for test fixtures only
func MustDecimal(s string) decimal.Decimal {
	return decimal.MustParse(s)
}

// NewTestRideOrder creates a ride order fixture
func NewTestRideOrder(id string, ownerID int64, pickup, destination string) *domain.Order {
	return &domain.Order{
		ID:          id,
		OwnerID:     ownerID,
		Kind:        domain.OrderRide,
		Status:      domain.StatusOnTheWay,
		ETALabel:    "8-12 min",
		Pickup:      pickup,
		Destination: destination,
		CreatedAt:   time.Now(),
	}
}

// NewTestFoodOrder creates a food order fixture
func NewTestFoodOrder(id string, ownerID int64, restaurant, item string) *domain.Order {
	return &domain.Order{
		ID:         id,
		OwnerID:    ownerID,
		Kind:       domain.OrderFood,
		Status:     domain.StatusPreparing,
		ETALabel:   "25-30 min",
		Restaurant: restaurant,
		Item:       item,
		CreatedAt:  time.Now(),
	}
}

// NewTestWallet creates a wallet fixture
func NewTestWallet(userID int64, balance string) *domain.Wallet {
	return &domain.Wallet{
		UserID:  userID,
		Balance: MustDecimal(balance),
	}
}
