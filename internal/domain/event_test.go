package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseChoice(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected Choice
	}{
		{
			name:     "book ride",
			token:    "book_ride",
			expected: Choice{Kind: ChoiceBookRide},
		},
		{
			name:     "order food",
			token:    "order_food",
			expected: Choice{Kind: ChoiceOrderFood},
		},
		{
			name:     "main menu",
			token:    "main_menu",
			expected: Choice{Kind: ChoiceMainMenu},
		},
		{
			name:     "top-up menu",
			token:    "topup",
			expected: Choice{Kind: ChoiceTopUpMenu},
		},
		{
			name:     "restaurant index",
			token:    "rest_3",
			expected: Choice{Kind: ChoiceRestaurant, Restaurant: 3},
		},
		{
			name:     "food item indices",
			token:    "food_2_1",
			expected: Choice{Kind: ChoiceFoodItem, Restaurant: 2, Item: 1},
		},
		{
			name:     "top-up amount",
			token:    "topup_50",
			expected: Choice{Kind: ChoiceTopUp, Amount: 50},
		},
		{
			name:     "malformed restaurant index",
			token:    "rest_abc",
			expected: Choice{Kind: ChoiceUnknown},
		},
		{
			name:     "food token missing item index",
			token:    "food_2",
			expected: Choice{Kind: ChoiceUnknown},
		},
		{
			name:     "malformed top-up amount",
			token:    "topup_fifty",
			expected: Choice{Kind: ChoiceUnknown},
		},
		{
			name:     "empty token",
			token:    "",
			expected: Choice{Kind: ChoiceUnknown},
		},
		{
			name:     "garbage token",
			token:    "history",
			expected: Choice{Kind: ChoiceUnknown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseChoice(tt.token))
		})
	}
}

func TestChoice_Token_RoundTrip(t *testing.T) {
	tokens := []string{
		"book_ride", "order_food", "track_order", "my_wallet",
		"promotions", "support", "about", "settings", "main_menu", "topup",
		"rest_0", "rest_4", "food_1_2", "topup_200",
	}

	for _, token := range tokens {
		t.Run(token, func(t *testing.T) {
			assert.Equal(t, token, ParseChoice(token).Token())
		})
	}
}

func TestChoice_Token_Unknown(t *testing.T) {
	assert.Equal(t, "", Choice{Kind: ChoiceUnknown}.Token())
}
