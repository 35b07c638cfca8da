// Package i18n provides localized bot texts for Uzbek, Russian and English.
// Uzbek is the fallback locale.
package i18n

import "fmt"

const fallbackLang = "uz"

// Translate returns the localized text for key, formatted with args when
// present. Unknown languages fall back to Uzbek; unknown keys return the
// key itself so a missing entry is visible instead of silent.
func Translate(lang, key string, args ...any) string {
	byLang, ok := messages[key]
	if !ok {
		return key
	}
	text, ok := byLang[lang]
	if !ok || text == "" {
		text = byLang[fallbackLang]
	}
	if len(args) > 0 {
		return fmt.Sprintf(text, args...)
	}
	return text
}

// Matches reports whether text equals the key's value in any locale.
// Used to recognize reply-keyboard menu labels regardless of the
// language the keyboard was rendered in.
func Matches(key, text string) bool {
	byLang, ok := messages[key]
	if !ok {
		return false
	}
	for _, v := range byLang {
		if v == text {
			return true
		}
	}
	return false
}
