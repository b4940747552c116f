package domain

// DialogState represents where a user is in a multi-step flow
type DialogState string

const (
	StateIdle                    DialogState = "idle"
	StateAwaitingRidePickup      DialogState = "awaiting_ride_pickup"
	StateAwaitingRideDestination DialogState = "awaiting_ride_destination"
	StateChoosingRestaurant      DialogState = "choosing_restaurant"
	StateChoosingFoodItem        DialogState = "choosing_food_item"
	StateAwaitingSupportIssue    DialogState = "awaiting_support_issue"
	StateViewingWallet           DialogState = "viewing_wallet"
)

// Scratch holds flow-local data for the flow in progress.
// Idle sessions always carry empty scratch.
type Scratch struct {
	Pickup     string // ride flow: pickup address
	Restaurant int    // food flow: selected restaurant index, -1 when unset
}

// EmptyScratch returns cleared scratch
func EmptyScratch() Scratch {
	return Scratch{Restaurant: -1}
}

// Empty reports whether scratch holds no flow data
func (s Scratch) Empty() bool {
	return s.Pickup == "" && s.Restaurant < 0
}

// DialogSession tracks one user's conversation state
type DialogSession struct {
	UserID  int64
	State   DialogState
	Scratch Scratch
}

// NewSession creates an idle session for a user
func NewSession(userID int64) DialogSession {
	return DialogSession{
		UserID:  userID,
		State:   StateIdle,
		Scratch: EmptyScratch(),
	}
}

// Reset returns the session to idle and clears scratch
func (s *DialogSession) Reset() {
	s.State = StateIdle
	s.Scratch = EmptyScratch()
}
