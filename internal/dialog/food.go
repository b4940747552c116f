package dialog

import (
	"errors"
	"fmt"

	"dashbot/internal/domain"

	"go.uber.org/zap"
)

func (e *Engine) handleOrderFood(sess *domain.DialogSession, _ domain.Event) (*domain.Response, error) {
	sess.Reset()
	sess.State = domain.StateChoosingRestaurant

	keyboard := make([][]domain.Button, 0, len(e.catalog.Restaurants)+1)
	for i, r := range e.catalog.Restaurants {
		token := domain.Choice{Kind: domain.ChoiceRestaurant, Restaurant: i}.Token()
		keyboard = append(keyboard, []domain.Button{{Label: r.Name, Token: token}})
	}
	keyboard = append(keyboard, backRow("🔙 Back to Menu", "main_menu"))

	return &domain.Response{
		Title:    "🍔 Order Food",
		Body:     []string{"Select a restaurant:"},
		Keyboard: keyboard,
	}, nil
}

func (e *Engine) handleRestaurant(sess *domain.DialogSession, ev domain.Event) (*domain.Response, error) {
	r, err := e.catalog.Restaurant(ev.Choice.Restaurant)
	if err != nil {
		// A stale or corrupted token; reprint the restaurant list rather
		// than surface an error to the user
		if errors.Is(err, domain.ErrIndexOutOfRange) {
			e.logger.Warn("restaurant index out of range",
				zap.Int64("user_id", ev.UserID),
				zap.Int("index", ev.Choice.Restaurant),
			)
			return e.handleOrderFood(sess, ev)
		}
		return nil, err
	}

	sess.State = domain.StateChoosingFoodItem
	sess.Scratch.Restaurant = ev.Choice.Restaurant

	keyboard := make([][]domain.Button, 0, len(r.Items)+1)
	for j, item := range r.Items {
		token := domain.Choice{
			Kind:       domain.ChoiceFoodItem,
			Restaurant: ev.Choice.Restaurant,
			Item:       j,
		}.Token()
		keyboard = append(keyboard, []domain.Button{{Label: item.Label(), Token: token}})
	}
	keyboard = append(keyboard, backRow("🔙 Back", "order_food"))

	return &domain.Response{
		Title:    fmt.Sprintf("🍔 %s", r.Name),
		Body:     []string{"Select an item:"},
		Keyboard: keyboard,
	}, nil
}

func (e *Engine) handleFoodItem(sess *domain.DialogSession, ev domain.Event) (*domain.Response, error) {
	r, item, err := e.catalog.Item(ev.Choice.Restaurant, ev.Choice.Item)
	if err != nil {
		if errors.Is(err, domain.ErrIndexOutOfRange) {
			e.logger.Warn("food item index out of range",
				zap.Int64("user_id", ev.UserID),
				zap.Int("restaurant", ev.Choice.Restaurant),
				zap.Int("item", ev.Choice.Item),
			)
			return e.handleOrderFood(sess, ev)
		}
		return nil, err
	}

	order, err := e.ledger.CreateFoodOrder(ev.UserID, r.Name, item.Name)
	if err != nil {
		return nil, fmt.Errorf("create food order: %w", err)
	}

	e.logger.Info("food order placed",
		zap.Int64("user_id", ev.UserID),
		zap.String("order_id", order.ID),
		zap.String("restaurant", r.Name),
	)

	sess.Reset()

	return &domain.Response{
		Title: "✅ Order Placed!",
		Body: []string{
			fmt.Sprintf("Order ID: %s", order.ID),
			fmt.Sprintf("Restaurant: %s", order.Restaurant),
			fmt.Sprintf("Item: %s", order.Item),
			fmt.Sprintf("Status: 👨‍🍳 %s", order.Status),
			fmt.Sprintf("Estimated delivery: %s", order.ETALabel),
			"",
			"You can track your order anytime!",
		},
		Keyboard: [][]domain.Button{
			{
				{Label: "📦 Track Order", Token: "track_order"},
				{Label: "🔙 Menu", Token: "main_menu"},
			},
		},
	}, nil
}
