package dialog

import (
	"fmt"

	"dashbot/internal/domain"

	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

func (e *Engine) handleMyWallet(sess *domain.DialogSession, ev domain.Event) (*domain.Response, error) {
	wallet, err := e.ledger.GetWallet(ev.UserID)
	if err != nil {
		return nil, fmt.Errorf("get wallet: %w", err)
	}

	sess.Reset()
	sess.State = domain.StateViewingWallet

	return &domain.Response{
		Title: "💳 DashPay Wallet",
		Body: []string{
			fmt.Sprintf("Balance: RM %s", wallet.Balance),
			"",
			"Recent transactions:",
			"• Ride booking - RM 15.00",
			"• Food order - RM 28.50",
			"• Top-up - RM 100.00",
			"",
			"💡 Tip: Top up your wallet for faster checkout!",
		},
		Keyboard: [][]domain.Button{
			{{Label: "💵 Top Up", Token: "topup"}},
			{{Label: "🔙 Back", Token: "main_menu"}},
		},
	}, nil
}

func (e *Engine) handleTopUpMenu(_ *domain.DialogSession, _ domain.Event) (*domain.Response, error) {
	row := func(amounts ...int64) []domain.Button {
		buttons := make([]domain.Button, 0, len(amounts))
		for _, a := range amounts {
			token := domain.Choice{Kind: domain.ChoiceTopUp, Amount: a}.Token()
			buttons = append(buttons, domain.Button{
				Label: fmt.Sprintf("RM %d", a),
				Token: token,
			})
		}
		return buttons
	}

	return &domain.Response{
		Title: "💵 Top Up Wallet",
		Body:  []string{"Select amount:"},
		Keyboard: [][]domain.Button{
			row(20, 50),
			row(100, 200),
			backRow("🔙 Back", "my_wallet"),
		},
	}, nil
}

func (e *Engine) handleTopUp(sess *domain.DialogSession, ev domain.Event) (*domain.Response, error) {
	amount, err := decimal.New(ev.Choice.Amount, 0)
	if err != nil {
		return nil, fmt.Errorf("top-up amount %d: %w", ev.Choice.Amount, err)
	}

	wallet, err := e.ledger.TopUp(ev.UserID, amount)
	if err != nil {
		return nil, err
	}

	e.logger.Info("wallet topped up",
		zap.Int64("user_id", ev.UserID),
		zap.String("amount", amount.String()),
		zap.String("balance", wallet.Balance.String()),
	)

	sess.Reset()

	return &domain.Response{
		Title: "✅ Top Up Successful!",
		Body: []string{
			fmt.Sprintf("Amount: RM %s", amount),
			fmt.Sprintf("New Balance: RM %s", wallet.Balance),
			"",
			"Thank you for using DashPay!",
		},
		Keyboard: [][]domain.Button{
			{{Label: "🔙 Back to Wallet", Token: "my_wallet"}},
		},
	}, nil
}
