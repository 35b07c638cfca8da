package handler

import (
	"shopbot/internal/domain"
	"shopbot/internal/i18n"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleSupport shows prior support messages and opens the support step
func (h *Handler) handleSupport(c tele.Context) error {
	sess := h.session(c)

	user, err := h.user(c)
	if err != nil {
		return h.fail(c, sess.Language, err)
	}

	messages, err := h.messages.History(user.ID)
	if err != nil {
		return h.fail(c, sess.Language, err)
	}

	sess.Step = domain.StepSupport
	h.save(c, sess)
	return c.Send(supportText(sess.Language, messages))
}

// handleSupportMessage records the free-text support message
func (h *Handler) handleSupportMessage(c tele.Context, text string) error {
	sess := h.session(c)

	user, err := h.user(c)
	if err != nil {
		return h.fail(c, sess.Language, err)
	}

	if err := h.messages.Send(user.ID, h.cfg.PrimaryAdmin(), text); err != nil {
		return h.fail(c, sess.Language, err)
	}

	h.logger.Info("Support message received", zap.Int64("user_id", user.TelegramID))

	sess.Reset()
	h.save(c, sess)
	return c.Send(i18n.Translate(sess.Language, "message_sent"))
}
