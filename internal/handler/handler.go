package handler

import (
	"errors"
	"strings"
	"unicode"

	"shopbot/internal/config"
	"shopbot/internal/domain"
	"shopbot/internal/i18n"
	"shopbot/internal/middleware"
	"shopbot/internal/service"
	"shopbot/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler is the conversation dispatcher: it resolves every inbound
// update to at most one handler based on the sender's session step,
// the sender's role and the shape of the update.
type Handler struct {
	bot      *tele.Bot
	cfg      *config.Config
	users    *service.UserService
	catalog  *service.CatalogService
	cart     *service.CartService
	orders   *service.OrderService
	messages *service.MessageService
	sessions session.Store
	logger   *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	cfg *config.Config,
	users *service.UserService,
	catalog *service.CatalogService,
	cart *service.CartService,
	orders *service.OrderService,
	messages *service.MessageService,
	sessions session.Store,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:      bot,
		cfg:      cfg,
		users:    users,
		catalog:  catalog,
		cart:     cart,
		orders:   orders,
		messages: messages,
		sessions: sessions,
		logger:   logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Use(
		middleware.Recover(h.logger),
		middleware.Logging(h.logger),
		middleware.PerUser(),
	)

	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/admin", h.handleAdminPanel)
	h.bot.Handle("/place_order", h.handlePlaceOrder)

	// Free text: step continuations, menu labels, dynamic commands
	h.bot.Handle(tele.OnText, h.handleText)

	// Structured shares, meaningful only inside checkout
	h.bot.Handle(tele.OnContact, h.handleContact)
	h.bot.Handle(tele.OnLocation, h.handleLocation)

	// Inline buttons
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// session loads the sender's session
func (h *Handler) session(c tele.Context) *domain.Session {
	return h.sessions.Get(c.Sender().ID)
}

// save persists the sender's session
func (h *Handler) save(c tele.Context, sess *domain.Session) {
	h.sessions.Put(c.Sender().ID, sess)
}

// user resolves the sender to a registered user
func (h *Handler) user(c tele.Context) (*domain.User, error) {
	return h.users.Get(c.Sender().ID)
}

// isAdmin reports whether the sender is in the configured allow-list
func (h *Handler) isAdmin(c tele.Context) bool {
	return h.cfg.IsAdmin(c.Sender().ID)
}

// fail converts an error into a localized reply. Known kinds are
// recovered locally; anything else is logged and answered generically.
func (h *Handler) fail(c tele.Context, lang string, err error) error {
	var key string
	switch {
	case errors.Is(err, domain.ErrNotRegistered):
		key = "not_registered"
	case errors.Is(err, domain.ErrNotFound):
		key = "not_found"
	case errors.Is(err, domain.ErrEmptyCart):
		key = "cart_empty_order"
	case errors.Is(err, domain.ErrInvalidQuantity):
		key = "invalid_quantity"
	case errors.Is(err, domain.ErrInvalidPrice):
		key = "invalid_price"
	case errors.Is(err, domain.ErrForbidden):
		key = "no_rights"
	default:
		h.logger.Error("Handler failed",
			zap.Int64("user_id", c.Sender().ID),
			zap.Error(err),
		)
		key = "error_generic"
	}
	return c.Send(i18n.Translate(lang, key))
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
