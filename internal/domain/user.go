package domain

import "time"

// User is the bridge between a Telegram identity and the shop domain.
type User struct {
	ID         int
	TelegramID int64
	FirstName  string
	Language   string
	CreatedAt  time.Time
}

// Supported display languages. Uzbek is the fallback locale.
const (
	LangUz = "uz"
	LangRu = "ru"
	LangEn = "en"

	DefaultLanguage = LangUz
)

// ValidLanguage reports whether code is one of the supported locales.
func ValidLanguage(code string) bool {
	switch code {
	case LangUz, LangRu, LangEn:
		return true
	}
	return false
}
