package dialog

import (
	"sync"

	"dashbot/internal/catalog"
	"dashbot/internal/domain"
	"dashbot/internal/store"

	"go.uber.org/zap"
)

// handlerFunc processes one event against the caller's session and returns
// the outbound response. A nil response acknowledges the event silently.
type handlerFunc func(sess *domain.DialogSession, ev domain.Event) (*domain.Response, error)

// Engine orchestrates dialogs: it serializes events per user, resolves one
// handler per event, and persists the resulting session transition. Handler
// failures never escape; they degrade to a generic fallback response.
type Engine struct {
	sessions store.Sessions
	ledger   store.Ledger
	catalog  *catalog.Catalog
	logger   *zap.Logger

	// Per-user locks keep one user's events in arrival order without
	// serializing unrelated users
	userMux   sync.Mutex
	userLocks map[int64]*sync.Mutex
}

// NewEngine creates a dialog engine
func NewEngine(
	sessions store.Sessions,
	ledger store.Ledger,
	cat *catalog.Catalog,
	logger *zap.Logger,
) *Engine {
	return &Engine{
		sessions:  sessions,
		ledger:    ledger,
		catalog:   cat,
		logger:    logger,
		userLocks: make(map[int64]*sync.Mutex),
	}
}

// Handle processes one inbound event and returns the outbound response.
// A nil response means the event needs only an acknowledgment.
func (e *Engine) Handle(ev domain.Event) *domain.Response {
	lock := e.userLock(ev.UserID)
	lock.Lock()
	defer lock.Unlock()

	sess := e.sessions.GetOrCreate(ev.UserID)

	handle := e.route(sess.State, ev)
	resp, err := handle(&sess, ev)
	if err != nil {
		e.logger.Error("dialog handler failed",
			zap.Int64("user_id", ev.UserID),
			zap.String("event_kind", string(ev.Kind)),
			zap.String("state", string(sess.State)),
			zap.Error(err),
		)
		sess.Reset()
		resp = e.fallback()
	}

	e.sessions.Save(sess)
	return resp
}

func (e *Engine) userLock(userID int64) *sync.Mutex {
	e.userMux.Lock()
	defer e.userMux.Unlock()

	lock, ok := e.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		e.userLocks[userID] = lock
	}
	return lock
}

// fallback is the safe response substituted for any internal failure
func (e *Engine) fallback() *domain.Response {
	return &domain.Response{
		Title:    "Something went wrong",
		Body:     []string{"Please try again or use /menu."},
		Keyboard: mainMenuKeyboard(),
	}
}
