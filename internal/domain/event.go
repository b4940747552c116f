package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// EventKind discriminates inbound interaction events
type EventKind string

const (
	EventCommand EventKind = "command"
	EventText    EventKind = "text"
	EventChoice  EventKind = "choice"
)

// Event is one inbound interaction, decoded once at the transport boundary.
// Exactly one of Command, Text or Choice is meaningful, per Kind.
type Event struct {
	UserID    int64
	FirstName string
	Kind      EventKind
	Command   string // start, menu, help or cancel
	Text      string
	Choice    Choice
}

// CommandEvent builds a command event
func CommandEvent(userID int64, firstName, command string) Event {
	return Event{UserID: userID, FirstName: firstName, Kind: EventCommand, Command: command}
}

// TextEvent builds a free-text event
func TextEvent(userID int64, firstName, text string) Event {
	return Event{UserID: userID, FirstName: firstName, Kind: EventText, Text: text}
}

// ChoiceEvent builds an event for a selected choice token
func ChoiceEvent(userID int64, firstName string, choice Choice) Event {
	return Event{UserID: userID, FirstName: firstName, Kind: EventChoice, Choice: choice}
}

// ChoiceKind identifies a selectable menu action
type ChoiceKind string

const (
	ChoiceBookRide   ChoiceKind = "book_ride"
	ChoiceOrderFood  ChoiceKind = "order_food"
	ChoiceTrackOrder ChoiceKind = "track_order"
	ChoiceMyWallet   ChoiceKind = "my_wallet"
	ChoicePromotions ChoiceKind = "promotions"
	ChoiceSupport    ChoiceKind = "support"
	ChoiceAbout      ChoiceKind = "about"
	ChoiceSettings   ChoiceKind = "settings"
	ChoiceMainMenu   ChoiceKind = "main_menu"
	ChoiceTopUpMenu  ChoiceKind = "topup"

	// Prefixed tokens carrying a payload
	ChoiceRestaurant ChoiceKind = "restaurant"
	ChoiceFoodItem   ChoiceKind = "food_item"
	ChoiceTopUp      ChoiceKind = "topup_amount"

	ChoiceUnknown ChoiceKind = "unknown"
)

// Choice is a decoded choice token with its typed payload
type Choice struct {
	Kind       ChoiceKind
	Restaurant int   // ChoiceRestaurant, ChoiceFoodItem
	Item       int   // ChoiceFoodItem
	Amount     int64 // ChoiceTopUp, whole currency units
}

// ParseChoice decodes a raw choice token. Tokens are generated by the
// system's own menus, so a malformed one decodes to ChoiceUnknown rather
// than an error.
func ParseChoice(token string) Choice {
	switch token {
	case "book_ride":
		return Choice{Kind: ChoiceBookRide}
	case "order_food":
		return Choice{Kind: ChoiceOrderFood}
	case "track_order":
		return Choice{Kind: ChoiceTrackOrder}
	case "my_wallet":
		return Choice{Kind: ChoiceMyWallet}
	case "promotions":
		return Choice{Kind: ChoicePromotions}
	case "support":
		return Choice{Kind: ChoiceSupport}
	case "about":
		return Choice{Kind: ChoiceAbout}
	case "settings":
		return Choice{Kind: ChoiceSettings}
	case "main_menu":
		return Choice{Kind: ChoiceMainMenu}
	case "topup":
		return Choice{Kind: ChoiceTopUpMenu}
	}

	switch {
	case strings.HasPrefix(token, "rest_"):
		if i, err := strconv.Atoi(strings.TrimPrefix(token, "rest_")); err == nil {
			return Choice{Kind: ChoiceRestaurant, Restaurant: i}
		}
	case strings.HasPrefix(token, "food_"):
		parts := strings.Split(strings.TrimPrefix(token, "food_"), "_")
		if len(parts) == 2 {
			i, errI := strconv.Atoi(parts[0])
			j, errJ := strconv.Atoi(parts[1])
			if errI == nil && errJ == nil {
				return Choice{Kind: ChoiceFoodItem, Restaurant: i, Item: j}
			}
		}
	case strings.HasPrefix(token, "topup_"):
		if amount, err := strconv.ParseInt(strings.TrimPrefix(token, "topup_"), 10, 64); err == nil {
			return Choice{Kind: ChoiceTopUp, Amount: amount}
		}
	}

	return Choice{Kind: ChoiceUnknown}
}

// Token re-encodes the choice for use in an outbound menu
func (c Choice) Token() string {
	switch c.Kind {
	case ChoiceRestaurant:
		return fmt.Sprintf("rest_%d", c.Restaurant)
	case ChoiceFoodItem:
		return fmt.Sprintf("food_%d_%d", c.Restaurant, c.Item)
	case ChoiceTopUp:
		return fmt.Sprintf("topup_%d", c.Amount)
	case ChoiceUnknown:
		return ""
	default:
		return string(c.Kind)
	}
}
