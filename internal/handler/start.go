package handler

import (
	"errors"

	"shopbot/internal/domain"
	"shopbot/internal/i18n"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start: it is the only entry point for unregistered
// senders and always abandons whatever flow was in progress.
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID
	sess := h.session(c)
	sess.Reset()

	user, err := h.user(c)
	if err != nil {
		if !errors.Is(err, domain.ErrNotRegistered) {
			h.save(c, sess)
			return h.fail(c, sess.Language, err)
		}

		// New user: registration starts with a language choice.
		h.logger.Info("New user started bot", zap.Int64("user_id", userID))
		h.save(c, sess)
		return c.Send(i18n.Translate(sess.Language, "choose_language"), languageMarkup())
	}

	sess.Language = user.Language
	h.save(c, sess)
	return c.Send(i18n.Translate(sess.Language, "welcome"), mainMenuMarkup(sess.Language))
}

// handleLanguage handles a lang_<code> press: for a registered user it
// updates the stored preference, for a new one it continues registration
// by asking for a name.
func (h *Handler) handleLanguage(c tele.Context, code string) error {
	sess := h.session(c)
	if !domain.ValidLanguage(code) {
		return h.fail(c, sess.Language, domain.ErrNotFound)
	}
	sess.Language = code

	user, err := h.user(c)
	if err != nil {
		if !errors.Is(err, domain.ErrNotRegistered) {
			h.save(c, sess)
			return h.fail(c, sess.Language, err)
		}

		sess.Step = domain.StepRegisterName
		h.save(c, sess)
		return c.Send(i18n.Translate(code, "ask_name"))
	}

	if err := h.users.UpdateLanguage(user.TelegramID, code); err != nil {
		h.save(c, sess)
		return h.fail(c, sess.Language, err)
	}

	h.save(c, sess)
	return c.Send(i18n.Translate(code, "language_updated"), mainMenuMarkup(code))
}

// handleRegisterName consumes the free-text name and completes registration
func (h *Handler) handleRegisterName(c tele.Context, text string) error {
	sess := h.session(c)

	user, err := h.users.Register(c.Sender().ID, text, sess.Language)
	if err != nil {
		return h.fail(c, sess.Language, err)
	}

	h.logger.Info("User registered",
		zap.Int64("user_id", user.TelegramID),
		zap.String("name", user.FirstName),
	)

	sess.Reset()
	h.save(c, sess)
	return c.Send(
		i18n.Translate(sess.Language, "registered", user.FirstName),
		mainMenuMarkup(sess.Language),
	)
}

// handleChangeLanguage re-opens the language choice for a registered user
func (h *Handler) handleChangeLanguage(c tele.Context) error {
	sess := h.session(c)
	return c.Send(i18n.Translate(sess.Language, "choose_language"), languageMarkup())
}
