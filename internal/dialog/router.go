package dialog

import "dashbot/internal/domain"

// route resolves exactly one handler for an event. Resolution runs in three
// tiers, first match wins:
//
//  1. global commands, regardless of session state;
//  2. state-scoped free-text handlers, so a user mid-flow cannot escape it
//     by typing arbitrary text;
//  3. choice-token dispatch on the decoded kind; unknown tokens fall through
//     to a silent acknowledgment.
//
// Anything else reprints the main menu.
func (e *Engine) route(state domain.DialogState, ev domain.Event) handlerFunc {
	switch ev.Kind {
	case domain.EventCommand:
		switch ev.Command {
		case "start":
			return e.handleStart
		case "menu":
			return e.handleMainMenu
		case "help":
			return e.handleHelp
		case "cancel":
			return e.handleCancel
		}
		return e.handleMainMenu

	case domain.EventText:
		switch state {
		case domain.StateAwaitingRidePickup:
			return e.handleRidePickup
		case domain.StateAwaitingRideDestination:
			return e.handleRideDestination
		case domain.StateAwaitingSupportIssue:
			return e.handleSupportIssue
		}
		return e.handleSmallTalk

	case domain.EventChoice:
		switch ev.Choice.Kind {
		case domain.ChoiceBookRide:
			return e.handleBookRide
		case domain.ChoiceOrderFood:
			return e.handleOrderFood
		case domain.ChoiceRestaurant:
			return e.handleRestaurant
		case domain.ChoiceFoodItem:
			return e.handleFoodItem
		case domain.ChoiceTrackOrder:
			return e.handleTrackOrder
		case domain.ChoiceMyWallet:
			return e.handleMyWallet
		case domain.ChoiceTopUpMenu:
			return e.handleTopUpMenu
		case domain.ChoiceTopUp:
			return e.handleTopUp
		case domain.ChoiceSupport:
			return e.handleSupport
		case domain.ChoicePromotions:
			return e.handlePromotions
		case domain.ChoiceAbout:
			return e.handleAbout
		case domain.ChoiceSettings:
			return e.handleSettings
		case domain.ChoiceMainMenu:
			return e.handleMainMenu
		}
		return e.handleUnknownChoice
	}

	return e.handleMainMenu
}
