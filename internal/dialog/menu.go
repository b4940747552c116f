package dialog

import (
	"fmt"
	"strings"

	"dashbot/internal/domain"

	"go.uber.org/zap"
)

// mainMenuKeyboard returns the main menu choice rows
func mainMenuKeyboard() [][]domain.Button {
	return [][]domain.Button{
		{
			{Label: "🚗 Book a Ride", Token: "book_ride"},
			{Label: "🍔 Order Food", Token: "order_food"},
		},
		{
			{Label: "📦 Track Order", Token: "track_order"},
			{Label: "💳 My Wallet", Token: "my_wallet"},
		},
		{
			{Label: "🎁 Promotions", Token: "promotions"},
			{Label: "📞 Support", Token: "support"},
		},
		{
			{Label: "ℹ️ About Dash", Token: "about"},
			{Label: "⚙️ Settings", Token: "settings"},
		},
	}
}

func backRow(label, token string) []domain.Button {
	return []domain.Button{{Label: label, Token: token}}
}

func (e *Engine) handleStart(sess *domain.DialogSession, ev domain.Event) (*domain.Response, error) {
	e.logger.Info("user started bot",
		zap.Int64("user_id", ev.UserID),
		zap.String("first_name", ev.FirstName),
	)

	sess.Reset()

	name := ev.FirstName
	if name == "" {
		name = "there"
	}
	return &domain.Response{
		Title: fmt.Sprintf("👋 Welcome to Dash, %s!", name),
		Body: []string{
			"Your everyday everything app.",
			"",
			"🚗 Ride - Book a car or bike",
			"🍔 Food - Order from restaurants",
			"💳 Payments - DashPay wallet",
			"",
			"What would you like to do today?",
		},
		Keyboard: mainMenuKeyboard(),
	}, nil
}

func (e *Engine) handleMainMenu(sess *domain.DialogSession, _ domain.Event) (*domain.Response, error) {
	sess.Reset()
	return &domain.Response{
		Title:    "📱 Dash Main Menu",
		Body:     []string{"What would you like to do?"},
		Keyboard: mainMenuKeyboard(),
	}, nil
}

func (e *Engine) handleCancel(sess *domain.DialogSession, _ domain.Event) (*domain.Response, error) {
	sess.Reset()
	return &domain.Response{
		Body:     []string{"Operation cancelled. Use /menu to see options."},
		Keyboard: mainMenuKeyboard(),
	}, nil
}

func (e *Engine) handleHelp(_ *domain.DialogSession, _ domain.Event) (*domain.Response, error) {
	return &domain.Response{
		Title: "🤖 Dash Bot Commands",
		Body: []string{
			"/start - Start the bot",
			"/menu - Show main menu",
			"/help - Show this help",
			"/cancel - Cancel current operation",
			"",
			"💡 Tips:",
			"• Use the buttons for quick actions",
			"• Track your orders anytime",
			"• Check promotions for great deals!",
		},
		Keyboard: mainMenuKeyboard(),
	}, nil
}

// handleSmallTalk answers free text sent outside any flow
func (e *Engine) handleSmallTalk(_ *domain.DialogSession, ev domain.Event) (*domain.Response, error) {
	name := ev.FirstName
	if name == "" {
		name = "there"
	}

	var reply string
	switch normalize(ev.Text) {
	case "hi":
		reply = fmt.Sprintf("Hi %s! How can I help you today?", name)
	case "hello":
		reply = fmt.Sprintf("Hello %s! What would you like to do?", name)
	case "thanks", "thank you":
		reply = "You're welcome! Anything else I can help with?"
	case "bye":
		reply = "Goodbye! Have a great day! 🚗"
	default:
		reply = fmt.Sprintf("Hi %s! I'm here to help. Use /menu to see all available services.", name)
	}

	return &domain.Response{
		Body:     []string{reply},
		Keyboard: mainMenuKeyboard(),
	}, nil
}

// handleUnknownChoice acknowledges a token no menu currently emits
func (e *Engine) handleUnknownChoice(_ *domain.DialogSession, ev domain.Event) (*domain.Response, error) {
	e.logger.Warn("unknown choice token", zap.Int64("user_id", ev.UserID))
	return nil, nil
}

func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
