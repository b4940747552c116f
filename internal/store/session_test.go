package store

import (
	"sync"
	"testing"

	"dashbot/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestSessionStore_GetOrCreate(t *testing.T) {
	s := NewSessionStore()

	sess := s.GetOrCreate(123)

	assert.Equal(t, int64(123), sess.UserID)
	assert.Equal(t, domain.StateIdle, sess.State)
	assert.True(t, sess.Scratch.Empty())
}

func TestSessionStore_SaveAndReload(t *testing.T) {
	s := NewSessionStore()

	sess := s.GetOrCreate(123)
	sess.State = domain.StateAwaitingRideDestination
	sess.Scratch.Pickup = "Airport"
	s.Save(sess)

	reloaded := s.GetOrCreate(123)
	assert.Equal(t, domain.StateAwaitingRideDestination, reloaded.State)
	assert.Equal(t, "Airport", reloaded.Scratch.Pickup)
}

func TestSessionStore_CopiesDoNotLeak(t *testing.T) {
	s := NewSessionStore()

	sess := s.GetOrCreate(123)
	sess.State = domain.StateChoosingRestaurant

	// Unsaved mutation must not affect the stored session
	reloaded := s.GetOrCreate(123)
	assert.Equal(t, domain.StateIdle, reloaded.State)
}

func TestSessionStore_Clear(t *testing.T) {
	s := NewSessionStore()

	sess := s.GetOrCreate(123)
	sess.State = domain.StateAwaitingSupportIssue
	sess.Scratch.Pickup = "somewhere"
	s.Save(sess)

	s.Clear(123)

	cleared := s.GetOrCreate(123)
	assert.Equal(t, domain.StateIdle, cleared.State)
	assert.True(t, cleared.Scratch.Empty())
}

func TestSessionStore_IndependentUsers(t *testing.T) {
	s := NewSessionStore()

	a := s.GetOrCreate(1)
	a.State = domain.StateAwaitingRidePickup
	s.Save(a)

	b := s.GetOrCreate(2)
	assert.Equal(t, domain.StateIdle, b.State)
}

func TestSessionStore_ConcurrentAccess(t *testing.T) {
	s := NewSessionStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			sess := s.GetOrCreate(userID)
			sess.State = domain.StateViewingWallet
			s.Save(sess)
			s.Clear(userID)
		}(int64(i % 5))
	}
	wg.Wait()

	for userID := int64(0); userID < 5; userID++ {
		assert.Equal(t, domain.StateIdle, s.GetOrCreate(userID).State)
	}
}
