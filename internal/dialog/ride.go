package dialog

import (
	"fmt"

	"dashbot/internal/domain"

	"go.uber.org/zap"
)

func (e *Engine) handleBookRide(sess *domain.DialogSession, _ domain.Event) (*domain.Response, error) {
	sess.Reset()
	sess.State = domain.StateAwaitingRidePickup

	return &domain.Response{
		Title: "🚗 Book a Ride",
		Body: []string{
			"Please share your pickup location.",
			"",
			"Type your address:",
		},
	}, nil
}

// handleRidePickup stores the pickup address and asks for the destination.
// The address is accepted verbatim; no format validation by design.
func (e *Engine) handleRidePickup(sess *domain.DialogSession, ev domain.Event) (*domain.Response, error) {
	sess.Scratch.Pickup = ev.Text
	sess.State = domain.StateAwaitingRideDestination

	return &domain.Response{
		Body: []string{
			fmt.Sprintf("📍 Pickup: %s", ev.Text),
			"",
			"Now please share your destination.",
			"Type your destination address:",
		},
	}, nil
}

func (e *Engine) handleRideDestination(sess *domain.DialogSession, ev domain.Event) (*domain.Response, error) {
	pickup := sess.Scratch.Pickup
	if pickup == "" {
		pickup = "Current Location"
	}

	order, err := e.ledger.CreateRideOrder(ev.UserID, pickup, ev.Text)
	if err != nil {
		return nil, fmt.Errorf("create ride order: %w", err)
	}

	e.logger.Info("ride booked",
		zap.Int64("user_id", ev.UserID),
		zap.String("order_id", order.ID),
	)

	sess.Reset()

	return &domain.Response{
		Title: "🚗 Ride Booked!",
		Body: []string{
			fmt.Sprintf("Order ID: %s", order.ID),
			fmt.Sprintf("Pickup: %s", order.Pickup),
			fmt.Sprintf("Destination: %s", order.Destination),
			fmt.Sprintf("Driver: %s", order.Driver),
			fmt.Sprintf("Vehicle: %s", order.Vehicle),
			fmt.Sprintf("Status: 🚗 %s", order.Status),
			fmt.Sprintf("ETA: %s", order.ETALabel),
			"",
			"Your driver is on the way!",
		},
		Keyboard: mainMenuKeyboard(),
	}, nil
}
