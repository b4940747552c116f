package store

import (
	"fmt"
	"sync"
	"time"

	"dashbot/internal/domain"

	"github.com/govalues/decimal"
)

// ETA labels and driver assignment are static in the current design;
// a dispatch integration would fill these in for real.
const (
	rideETA     = "8-12 min"
	foodETA     = "25-30 min"
	rideDriver  = "Ahmad B."
	rideVehicle = "Honda City ABC1234"
)

// MemoryLedger holds orders and wallets in process memory. It is volatile
// by design; records live for the process lifetime only.
type MemoryLedger struct {
	mu             sync.RWMutex
	orders         map[int64][]domain.Order // per owner, in creation order
	wallets        map[int64]domain.Wallet
	defaultBalance decimal.Decimal
}

// NewMemoryLedger creates an empty ledger. New wallets start at defaultBalance.
func NewMemoryLedger(defaultBalance decimal.Decimal) *MemoryLedger {
	return &MemoryLedger{
		orders:         make(map[int64][]domain.Order),
		wallets:        make(map[int64]domain.Wallet),
		defaultBalance: defaultBalance,
	}
}

// CreateRideOrder records a completed ride booking
func (l *MemoryLedger) CreateRideOrder(ownerID int64, pickup, destination string) (*domain.Order, error) {
	order := domain.Order{
		ID:          NewCode(),
		OwnerID:     ownerID,
		Kind:        domain.OrderRide,
		Status:      domain.StatusOnTheWay,
		ETALabel:    rideETA,
		Pickup:      pickup,
		Destination: destination,
		Driver:      rideDriver,
		Vehicle:     rideVehicle,
		CreatedAt:   time.Now(),
	}
	l.append(order)
	return &order, nil
}

// CreateFoodOrder records a completed food order
func (l *MemoryLedger) CreateFoodOrder(ownerID int64, restaurant, item string) (*domain.Order, error) {
	order := domain.Order{
		ID:         NewCode(),
		OwnerID:    ownerID,
		Kind:       domain.OrderFood,
		Status:     domain.StatusPreparing,
		ETALabel:   foodETA,
		Restaurant: restaurant,
		Item:       item,
		CreatedAt:  time.Now(),
	}
	l.append(order)
	return &order, nil
}

func (l *MemoryLedger) append(order domain.Order) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.orders[order.OwnerID] = append(l.orders[order.OwnerID], order)
}

// LatestOrderFor returns the user's most recently created order, or nil
// when the user has none.
func (l *MemoryLedger) LatestOrderFor(userID int64) (*domain.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	list := l.orders[userID]
	if len(list) == 0 {
		return nil, nil
	}
	order := list[len(list)-1]
	return &order, nil
}

// GetWallet returns the user's wallet, creating it with the default
// balance on first access.
func (l *MemoryLedger) GetWallet(userID int64) (*domain.Wallet, error) {
	l.mu.RLock()
	wallet, ok := l.wallets[userID]
	l.mu.RUnlock()
	if ok {
		return &wallet, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	wallet = l.walletLocked(userID)
	return &wallet, nil
}

// TopUp increases the user's balance by amount. Amounts of zero or less
// are rejected with domain.ErrInvalidAmount and leave the balance unchanged.
func (l *MemoryLedger) TopUp(userID int64, amount decimal.Decimal) (*domain.Wallet, error) {
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("top up %s: %w", amount, domain.ErrInvalidAmount)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	wallet := l.walletLocked(userID)
	balance, err := wallet.Balance.Add(amount)
	if err != nil {
		return nil, fmt.Errorf("top up %s: %w", amount, err)
	}
	wallet.Balance = balance
	l.wallets[userID] = wallet
	return &wallet, nil
}

// walletLocked returns the wallet, lazily creating it. Callers hold l.mu.
func (l *MemoryLedger) walletLocked(userID int64) domain.Wallet {
	wallet, ok := l.wallets[userID]
	if !ok {
		wallet = domain.Wallet{UserID: userID, Balance: l.defaultBalance}
		l.wallets[userID] = wallet
	}
	return wallet
}
