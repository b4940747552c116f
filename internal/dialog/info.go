package dialog

import (
	"fmt"

	"dashbot/internal/domain"
)

// statusEmoji maps an order status to its display marker
func statusEmoji(status domain.OrderStatus) string {
	switch status {
	case domain.StatusPreparing:
		return "👨‍🍳"
	case domain.StatusOnTheWay:
		return "🚗"
	case domain.StatusDelivered:
		return "✅"
	}
	return "📦"
}

// handleTrackOrder shows the caller's latest order. It never changes
// session state.
func (e *Engine) handleTrackOrder(_ *domain.DialogSession, ev domain.Event) (*domain.Response, error) {
	order, err := e.ledger.LatestOrderFor(ev.UserID)
	if err != nil {
		return nil, fmt.Errorf("latest order: %w", err)
	}

	if order == nil {
		return &domain.Response{
			Title: "📦 No Active Orders",
			Body:  []string{"You don't have any active orders right now."},
			Keyboard: [][]domain.Button{
				backRow("🔙 Back to Menu", "main_menu"),
			},
		}, nil
	}

	return &domain.Response{
		Title: "📦 Track Your Order",
		Body: []string{
			fmt.Sprintf("Order ID: %s", order.ID),
			fmt.Sprintf("Type: %s", order.Kind),
			fmt.Sprintf("Status: %s %s", statusEmoji(order.Status), order.Status),
			fmt.Sprintf("Estimated time: %s", order.ETALabel),
			"",
			fmt.Sprintf("Your %s order is on the way!", order.Kind),
		},
		Keyboard: [][]domain.Button{
			{
				{Label: "🔄 Refresh", Token: "track_order"},
				{Label: "🔙 Back", Token: "main_menu"},
			},
		},
	}, nil
}

func (e *Engine) handlePromotions(_ *domain.DialogSession, _ domain.Event) (*domain.Response, error) {
	return &domain.Response{
		Title: "🎁 Promotions & Deals",
		Body: []string{
			"🔥 Hot Deals:",
			"",
			"• 20% off on first 3 rides",
			"   Code: DASH20",
			"",
			"• Free delivery on orders above RM 30",
			"   Code: FREEDEL30",
			"",
			"• RM 5 off on food orders",
			"   Code: DASHFOOD5",
			"",
			"• Weekend Special: 15% cashback",
			"   Valid: Fri-Sun",
			"",
			"💡 Apply these codes at checkout!",
		},
		Keyboard: [][]domain.Button{backRow("🔙 Back to Menu", "main_menu")},
	}, nil
}

func (e *Engine) handleAbout(_ *domain.DialogSession, _ domain.Event) (*domain.Response, error) {
	return &domain.Response{
		Title: "ℹ️ About Dash",
		Body: []string{
			"Dash is your everyday super-app, providing everyday services:",
			"",
			"🚗 Transport",
			"Safe and reliable rides",
			"",
			"🍔 Food Delivery",
			"Your favorite restaurants delivered",
			"",
			"💳 Payments",
			"DashPay wallet and more",
			"",
			"Available in 8 countries!",
		},
		Keyboard: [][]domain.Button{backRow("🔙 Back to Menu", "main_menu")},
	}, nil
}

func (e *Engine) handleSettings(_ *domain.DialogSession, _ domain.Event) (*domain.Response, error) {
	return &domain.Response{
		Title: "⚙️ Settings",
		Body: []string{
			"Language: English",
			"Notifications: On",
			"Payment Method: DashPay",
			"Preferred Vehicle: DashCar",
			"",
			"More settings coming soon!",
		},
		Keyboard: [][]domain.Button{backRow("🔙 Back", "main_menu")},
	}, nil
}
