package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name     string
		lang     string
		key      string
		expected string
	}{
		{
			name:     "russian lookup",
			lang:     "ru",
			key:      "welcome",
			expected: "Добро пожаловать!",
		},
		{
			name:     "english lookup",
			lang:     "en",
			key:      "menu_cart",
			expected: "Cart",
		},
		{
			name:     "unknown language falls back to uzbek",
			lang:     "de",
			key:      "welcome",
			expected: "Xush kelibsiz!",
		},
		{
			name:     "empty language falls back to uzbek",
			lang:     "",
			key:      "choose_language",
			expected: "Tilni tanlang:",
		},
		{
			name:     "unknown key returns the key",
			lang:     "ru",
			key:      "no_such_key",
			expected: "no_such_key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Translate(tt.lang, tt.key))
		})
	}
}

func TestTranslate_Formats(t *testing.T) {
	assert.Equal(t, "Message sent to 7 users.", Translate("en", "broadcast_sent", 7))
}

func TestMatches(t *testing.T) {
	assert.True(t, Matches("menu_cart", "Savat"))
	assert.True(t, Matches("menu_cart", "Корзина"))
	assert.True(t, Matches("menu_cart", "Cart"))
	assert.False(t, Matches("menu_cart", "cart"))
	assert.False(t, Matches("no_such_key", "Savat"))
}

// Every key must at least carry the fallback locale, otherwise Translate
// would render an empty message for some users.
func TestMessages_HaveFallback(t *testing.T) {
	for key, byLang := range messages {
		assert.NotEmpty(t, byLang[fallbackLang], "key %q has no uz text", key)
	}
}
