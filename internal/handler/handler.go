package handler

import (
	"strings"

	"dashbot/internal/dialog"
	"dashbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler wires the dialog engine to the Telegram transport
type Handler struct {
	bot    *tele.Bot
	engine *dialog.Engine
	logger *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(bot *tele.Bot, engine *dialog.Engine, logger *zap.Logger) *Handler {
	return &Handler{
		bot:    bot,
		engine: engine,
		logger: logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Handle("/start", h.command("start"))
	h.bot.Handle("/menu", h.command("menu"))
	h.bot.Handle("/help", h.command("help"))
	h.bot.Handle("/cancel", h.command("cancel"))

	h.bot.Handle(tele.OnText, h.handleText)
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

func (h *Handler) command(name string) tele.HandlerFunc {
	return func(c tele.Context) error {
		sender := c.Sender()
		ev := domain.CommandEvent(sender.ID, sender.FirstName, name)
		return h.deliver(c, h.engine.Handle(ev))
	}
}

// handleText forwards free-text messages; the engine decides what the text
// means based on the user's state
func (h *Handler) handleText(c tele.Context) error {
	text := strings.TrimSpace(c.Text())
	if strings.HasPrefix(text, "/") {
		return nil
	}

	sender := c.Sender()
	ev := domain.TextEvent(sender.ID, sender.FirstName, text)
	return h.deliver(c, h.engine.Handle(ev))
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Buttons are built with the token as Unique; fall back to cleaned
	// Data for clients that strip the prefix
	token := callback.Unique
	if token == "" {
		token = cleanCallbackData(callback.Data)
	}

	sender := c.Sender()
	choice := domain.ParseChoice(token)

	h.logger.Info("processing callback",
		zap.String("token", token),
		zap.String("kind", string(choice.Kind)),
		zap.Int64("user_id", sender.ID),
	)

	ev := domain.ChoiceEvent(sender.ID, sender.FirstName, choice)
	resp := h.engine.Handle(ev)
	if resp == nil {
		// No-op token: acknowledge without a message
		return c.Respond()
	}
	return h.deliver(c, resp)
}

// deliver renders the response and sends it. Callback-triggered responses
// edit the originating message where possible.
func (h *Handler) deliver(c tele.Context, resp *domain.Response) error {
	if resp == nil {
		return nil
	}

	text, markup := render(resp)

	if c.Callback() != nil {
		userID := c.Sender().ID
		if err := edit(c, text, markup); err != nil {
			if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
				return nil // Message was already modified, just acknowledged
			}
			return send(c, text, markup)
		}
		return c.Respond()
	}
	return send(c, text, markup)
}

func edit(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if markup == nil {
		return c.Edit(text)
	}
	return c.Edit(text, markup)
}

func send(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if markup == nil {
		return c.Send(text)
	}
	return c.Send(text, markup)
}

// handleEditError handles errors from c.Edit() - if message is not modified,
// just acknowledge the callback. Otherwise acknowledge and return the error
// so the caller can send a new message.
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()
	// If message is not modified, it was already edited by another callback
	if strings.Contains(errStr, "message is not modified") {
		h.logger.Debug("message already modified by another callback",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}
