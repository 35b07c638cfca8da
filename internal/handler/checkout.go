package handler

import (
	"errors"
	"fmt"

	"shopbot/internal/domain"
	"shopbot/internal/i18n"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// The checkout flow is strictly step-gated: every continuation checks the
// session step it declares as predecessor, so stray contact or location
// shares from unrelated flows never advance an order.

// handlePlaceOrder starts checkout from an idle session with a non-empty cart
func (h *Handler) handlePlaceOrder(c tele.Context) error {
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
		return c.Send(i18n.Translate(sess.Language, "cart_empty_order"))
	}

	sess.Step = domain.StepCheckoutPhone
	h.save(c, sess)
	return c.Send(i18n.Translate(sess.Language, "ask_phone"), contactMarkup(sess.Language))
}

// handleContact accepts the phone share while checkout waits for it
func (h *Handler) handleContact(c tele.Context) error {
	sess := h.session(c)
	if sess.Step != domain.StepCheckoutPhone {
		return nil
	}

	contact := c.Message().Contact
	if contact == nil || contact.PhoneNumber == "" {
		return c.Send(i18n.Translate(sess.Language, "ask_phone"), contactMarkup(sess.Language))
	}

	sess.Phone = contact.PhoneNumber
	sess.Step = domain.StepCheckoutLocation
	h.save(c, sess)
	return c.Send(i18n.Translate(sess.Language, "ask_location"), locationMarkup(sess.Language))
}

// handleLocation accepts the address share while checkout waits for it
func (h *Handler) handleLocation(c tele.Context) error {
	sess := h.session(c)
	if sess.Step != domain.StepCheckoutLocation {
		return nil
	}

	loc := c.Message().Location
	if loc == nil {
		return c.Send(i18n.Translate(sess.Language, "ask_location"), locationMarkup(sess.Language))
	}

	sess.Address = fmt.Sprintf("Lat: %v, Lon: %v", loc.Lat, loc.Lng)
	sess.Step = domain.StepCheckoutDelivery
	h.save(c, sess)
	return c.Send(i18n.Translate(sess.Language, "choose_delivery"), deliveryMarkup(sess.Language))
}

// handleDeliveryType accepts the delivery/pickup press at its step
func (h *Handler) handleDeliveryType(c tele.Context, deliveryType string) error {
	sess := h.session(c)
	if sess.Step != domain.StepCheckoutDelivery {
		return nil
	}

	sess.DeliveryType = deliveryType
	sess.Step = domain.StepCheckoutPayment
	h.save(c, sess)
	return c.Send(i18n.Translate(sess.Language, "choose_payment"), paymentMarkup(sess.Language))
}

// handlePayment finishes checkout: one order per cart line, cart cleared,
// session reset. The cart may have emptied since the flow started; in that
// case the session resets to idle with an error and no orders are created.
func (h *Handler) handlePayment(c tele.Context, method string) error {
	sess := h.session(c)
	if sess.Step != domain.StepCheckoutPayment {
		return nil
	}

	user, err := h.user(c)
	if err != nil {
		return h.fail(c, sess.Language, err)
	}

	created, err := h.orders.Checkout(user.ID, sess.Phone, sess.Address, sess.DeliveryType, method)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			sess.Reset()
			h.save(c, sess)
		}
		return h.fail(c, sess.Language, err)
	}

	h.logger.Info("Order placed",
		zap.Int64("user_id", user.TelegramID),
		zap.Int("orders", created),
		zap.String("payment_method", method),
	)

	sess.Reset()
	h.save(c, sess)
	return c.Send(i18n.Translate(sess.Language, "order_accepted"), mainMenuMarkup(sess.Language))
}
