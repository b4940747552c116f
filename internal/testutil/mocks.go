package testutil

import (
	"dashbot/internal/domain"

	"github.com/govalues/decimal"
	"github.com/stretchr/testify/mock"
)

// MockSessions is a mock for store.Sessions
type MockSessions struct {
	mock.Mock
}

func (m *MockSessions) GetOrCreate(userID int64) domain.DialogSession {
	args := m.Called(userID)
	return args.Get(0).(domain.DialogSession)
}

func (m *MockSessions) Save(session domain.DialogSession) {
	m.Called(session)
}

func (m *MockSessions) Clear(userID int64) {
	m.Called(userID)
}

// MockLedger is a mock for store.Ledger
type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) CreateRideOrder(ownerID int64, pickup, destination string) (*domain.Order, error) {
	args := m.Called(ownerID, pickup, destination)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockLedger) CreateFoodOrder(ownerID int64, restaurant, item string) (*domain.Order, error) {
	args := m.Called(ownerID, restaurant, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockLedger) LatestOrderFor(userID int64) (*domain.Order, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockLedger) GetWallet(userID int64) (*domain.Wallet, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockLedger) TopUp(userID int64, amount decimal.Decimal) (*domain.Wallet, error) {
	args := m.Called(userID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}
