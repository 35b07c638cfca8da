package handler

import (
	"strings"

	"shopbot/internal/domain"
	"shopbot/internal/i18n"

	tele "gopkg.in/telebot.v3"
)

// handleShowCart renders the cart summary
func (h *Handler) handleShowCart(c tele.Context) error {
	sess := h.session(c)

	user, err := h.user(c)
	if err != nil {
		return h.fail(c, sess.Language, err)
	}

	items, err := h.cart.Items(user.ID)
	if err != nil {
		return h.fail(c, sess.Language, err)
	}
	if len(items) == 0 {
		return c.Send(i18n.Translate(sess.Language, "cart_empty"))
	}

	return c.Send(cartText(sess.Language, items))
}

// handleAddToCart handles /add_<id>
func (h *Handler) handleAddToCart(c tele.Context, rawID string) error {
	sess := h.session(c)

	user, err := h.user(c)
	if err != nil {
		return h.fail(c, sess.Language, err)
	}

	productID, err := parseID(rawID)
	if err != nil {
		return h.fail(c, sess.Language, err)
	}

	if err := h.cart.Add(user.ID, productID, 1); err != nil {
		return h.fail(c, sess.Language, err)
	}

	return c.Send(i18n.Translate(sess.Language, "cart_added"))
}

// handleRemoveFromCart handles /remove_<id>
func (h *Handler) handleRemoveFromCart(c tele.Context, rawID string) error {
	sess := h.session(c)

	user, err := h.user(c)
	if err != nil {
		return h.fail(c, sess.Language, err)
	}

	productID, err := parseID(rawID)
	if err != nil {
		return h.fail(c, sess.Language, err)
	}

	if err := h.cart.Remove(user.ID, productID); err != nil {
		return h.fail(c, sess.Language, err)
	}

	return c.Send(i18n.Translate(sess.Language, "cart_removed"))
}

// handleSetQuantity handles /set_quantity_<id> <qty>
func (h *Handler) handleSetQuantity(c tele.Context, args string) error {
	sess := h.session(c)

	user, err := h.user(c)
	if err != nil {
		return h.fail(c, sess.Language, err)
	}

	fields := strings.Fields(args)
	if len(fields) != 2 {
		return h.fail(c, sess.Language, domain.ErrInvalidQuantity)
	}

	productID, err := parseID(fields[0])
	if err != nil {
		return h.fail(c, sess.Language, err)
	}
	quantity, err := parseID(fields[1])
	if err != nil {
		return h.fail(c, sess.Language, domain.ErrInvalidQuantity)
	}

	if err := h.cart.SetQuantity(user.ID, productID, quantity); err != nil {
		return h.fail(c, sess.Language, err)
	}

	return c.Send(i18n.Translate(sess.Language, "cart_quantity_updated"))
}

// handleOrderHistory renders the user's past orders
func (h *Handler) handleOrderHistory(c tele.Context) error {
	sess := h.session(c)

	user, err := h.user(c)
	if err != nil {
		return h.fail(c, sess.Language, err)
	}

	orders, err := h.orders.History(user.ID)
	if err != nil {
		return h.fail(c, sess.Language, err)
	}
	if len(orders) == 0 {
		return c.Send(i18n.Translate(sess.Language, "no_orders"))
	}

	return c.Send(ordersText(sess.Language, orders))
}
