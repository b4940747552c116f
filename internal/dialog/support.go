package dialog

import (
	"fmt"

	"dashbot/internal/domain"
	"dashbot/internal/store"

	"go.uber.org/zap"
)

func (e *Engine) handleSupport(sess *domain.DialogSession, _ domain.Event) (*domain.Response, error) {
	sess.Reset()
	sess.State = domain.StateAwaitingSupportIssue

	return &domain.Response{
		Title: "📞 Dash Support",
		Body: []string{
			"How can we help you today?",
			"",
			"Common issues:",
			"• Payment problems",
			"• Order issues",
			"• Account questions",
			"• Refund requests",
			"",
			"Please describe your issue:",
		},
		Keyboard: [][]domain.Button{backRow("🔙 Back", "main_menu")},
	}, nil
}

// handleSupportIssue accepts the issue text verbatim and hands back a
// reference code from the shared generator
func (e *Engine) handleSupportIssue(sess *domain.DialogSession, ev domain.Event) (*domain.Response, error) {
	ref := store.NewCode()

	e.logger.Info("support request received",
		zap.Int64("user_id", ev.UserID),
		zap.String("reference", ref),
	)

	sess.Reset()

	return &domain.Response{
		Title: "📞 Support Request Received",
		Body: []string{
			"Thank you for contacting Dash Support.",
			"",
			fmt.Sprintf("Your issue: %s", ev.Text),
			"",
			"Our team will get back to you within 24 hours.",
			fmt.Sprintf("Reference ID: %s", ref),
			"",
			"For urgent matters, call: 1300-DASH",
		},
		Keyboard: mainMenuKeyboard(),
	}, nil
}
