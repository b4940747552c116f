package handler

import (
	"testing"

	"dashbot/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain token",
			input:    "book_ride",
			expected: "book_ride",
		},
		{
			name:     "leading control character",
			input:    "\fbook_ride",
			expected: "book_ride",
		},
		{
			name:     "surrounding whitespace",
			input:    "  rest_2  ",
			expected: "rest_2",
		},
		{
			name:     "embedded non-printables",
			input:    "top\x00up_50",
			expected: "topup_50",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanCallbackData(tt.input))
		})
	}
}

func TestRender(t *testing.T) {
	t.Run("title and body", func(t *testing.T) {
		resp := &domain.Response{
			Title: "Ride Booked!",
			Body:  []string{"Pickup: Airport", "Destination: Downtown"},
		}

		text, markup := render(resp)

		assert.Equal(t, "<b>Ride Booked!</b>\n\nPickup: Airport\nDestination: Downtown", text)
		assert.Nil(t, markup)
	})

	t.Run("user text is escaped", func(t *testing.T) {
		resp := &domain.Response{
			Body: []string{"Pickup: <script>alert(1)</script>"},
		}

		text, _ := render(resp)

		assert.NotContains(t, text, "<script>")
		assert.Contains(t, text, "&lt;script&gt;")
	})

	t.Run("keyboard rows", func(t *testing.T) {
		resp := &domain.Response{
			Body: []string{"pick one"},
			Keyboard: [][]domain.Button{
				{
					{Label: "Book a Ride", Token: "book_ride"},
					{Label: "Order Food", Token: "order_food"},
				},
				{
					{Label: "Back", Token: "main_menu"},
				},
			},
		}

		_, markup := render(resp)

		require.Len(t, markup.InlineKeyboard, 2)
		assert.Len(t, markup.InlineKeyboard[0], 2)
		assert.Len(t, markup.InlineKeyboard[1], 1)
		assert.Equal(t, "Book a Ride", markup.InlineKeyboard[0][0].Text)
		assert.Equal(t, "book_ride", markup.InlineKeyboard[0][0].Unique)
	})
}
