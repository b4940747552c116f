package handler

import (
	"html"
	"strings"
	"unicode"

	"dashbot/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// render converts structured response content into message text and an
// inline keyboard. The bot runs with HTML parse mode, so user-supplied
// text is escaped here.
func render(resp *domain.Response) (string, *tele.ReplyMarkup) {
	var b strings.Builder

	if resp.Title != "" {
		b.WriteString("<b>")
		b.WriteString(html.EscapeString(resp.Title))
		b.WriteString("</b>")
		if len(resp.Body) > 0 {
			b.WriteString("\n\n")
		}
	}
	for i, line := range resp.Body {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(html.EscapeString(line))
	}

	if len(resp.Keyboard) == 0 {
		return b.String(), nil
	}

	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(resp.Keyboard))
	for _, row := range resp.Keyboard {
		buttons := make(tele.Row, 0, len(row))
		for _, btn := range row {
			buttons = append(buttons, markup.Data(btn.Label, btn.Token))
		}
		rows = append(rows, buttons)
	}
	markup.Inline(rows...)

	return b.String(), markup
}

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}
