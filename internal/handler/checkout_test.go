package handler

import (
	"fmt"
	"testing"

	"shopbot/internal/domain"
	"shopbot/internal/i18n"
	"shopbot/internal/testutil"

	"github.com/stretchr/testify/assert"
	tele "gopkg.in/telebot.v3"
)

func TestCheckout_FullChain(t *testing.T) {
	f := newHandlerFixture()
	sender := &tele.User{ID: 123}

	user := testutil.NewTestUser(1, 123, "Aziz", "uz")
	f.users.On("GetByTelegramID", int64(123)).Return(user, nil)
	f.carts.On("GetByUser", 1).Return([]domain.CartItem{
		testutil.NewTestCartItem(1, testutil.NewTestProduct(5, 1, 4500, "non"), 2),
	}, nil)

	// /place_order arms the phone step.
	ctx := &testContext{sender: sender}
	assert.NoError(t, f.handler.handlePlaceOrder(ctx))
	assert.Equal(t, domain.StepCheckoutPhone, f.sessions.Get(123).Step)
	assert.Equal(t, []string{i18n.Translate("uz", "ask_phone")}, ctx.sent)

	// Phone share advances to the location step.
	ctx = &testContext{sender: sender, message: &tele.Message{
		Contact: &tele.Contact{PhoneNumber: "+998901234567"},
	}}
	assert.NoError(t, f.handler.handleContact(ctx))
	sess := f.sessions.Get(123)
	assert.Equal(t, domain.StepCheckoutLocation, sess.Step)
	assert.Equal(t, "+998901234567", sess.Phone)

	// Location share advances to the delivery step.
	loc := &tele.Location{Lat: 41.3, Lng: 69.2}
	ctx = &testContext{sender: sender, message: &tele.Message{Location: loc}}
	assert.NoError(t, f.handler.handleLocation(ctx))
	sess = f.sessions.Get(123)
	assert.Equal(t, domain.StepCheckoutDelivery, sess.Step)
	assert.Equal(t, fmt.Sprintf("Lat: %v, Lon: %v", loc.Lat, loc.Lng), sess.Address)

	// Delivery choice advances to the payment step.
	ctx = &testContext{sender: sender}
	assert.NoError(t, f.handler.handleDeliveryType(ctx, "delivery"))
	sess = f.sessions.Get(123)
	assert.Equal(t, domain.StepCheckoutPayment, sess.Step)
	assert.Equal(t, "delivery", sess.DeliveryType)

	// Payment choice checks out and resets the session.
	f.orders.On("CreateFromCart", 1, "+998901234567", sess.Address, "delivery", "cash").
		Return(1, nil)

	ctx = &testContext{sender: sender}
	assert.NoError(t, f.handler.handlePayment(ctx, "cash"))
	sess = f.sessions.Get(123)
	assert.Equal(t, domain.StepIdle, sess.Step)
	assert.Empty(t, sess.Phone)
	assert.Equal(t, "uz", sess.Language)
	assert.Equal(t, []string{i18n.Translate("uz", "order_accepted")}, ctx.sent)

	f.orders.AssertExpectations(t)
}

func TestCheckout_StrayEventsIgnored(t *testing.T) {
	t.Run("contact outside the phone step", func(t *testing.T) {
		f := newHandlerFixture()
		ctx := &testContext{sender: &tele.User{ID: 123}, message: &tele.Message{
			Contact: &tele.Contact{PhoneNumber: "+998901234567"},
		}}

		assert.NoError(t, f.handler.handleContact(ctx))

		sess := f.sessions.Get(123)
		assert.Equal(t, domain.StepIdle, sess.Step)
		assert.Empty(t, sess.Phone)
		assert.Empty(t, ctx.sent)
	})

	t.Run("location outside the location step", func(t *testing.T) {
		f := newHandlerFixture()
		ctx := &testContext{sender: &tele.User{ID: 123}, message: &tele.Message{
			Location: &tele.Location{Lat: 41.3, Lng: 69.2},
		}}

		assert.NoError(t, f.handler.handleLocation(ctx))

		sess := f.sessions.Get(123)
		assert.Equal(t, domain.StepIdle, sess.Step)
		assert.Empty(t, sess.Address)
		assert.Empty(t, ctx.sent)
	})

	t.Run("delivery press outside the delivery step", func(t *testing.T) {
		f := newHandlerFixture()
		f.sessions.Get(123).Step = domain.StepCheckoutPhone
		ctx := &testContext{sender: &tele.User{ID: 123}}

		assert.NoError(t, f.handler.handleDeliveryType(ctx, "pickup"))

		sess := f.sessions.Get(123)
		assert.Equal(t, domain.StepCheckoutPhone, sess.Step)
		assert.Empty(t, sess.DeliveryType)
		assert.Empty(t, ctx.sent)
	})

	t.Run("payment press outside the payment step", func(t *testing.T) {
		f := newHandlerFixture()
		f.sessions.Get(123).Step = domain.StepCheckoutDelivery
		ctx := &testContext{sender: &tele.User{ID: 123}}

		assert.NoError(t, f.handler.handlePayment(ctx, "cash"))

		assert.Equal(t, domain.StepCheckoutDelivery, f.sessions.Get(123).Step)
		assert.Empty(t, ctx.sent)
		f.orders.AssertNotCalled(t, "CreateFromCart")
	})
}

func TestCheckout_ContactWithoutNumberReprompts(t *testing.T) {
	f := newHandlerFixture()
	f.sessions.Get(123).Step = domain.StepCheckoutPhone
	ctx := &testContext{sender: &tele.User{ID: 123}, message: &tele.Message{}}

	assert.NoError(t, f.handler.handleContact(ctx))

	assert.Equal(t, domain.StepCheckoutPhone, f.sessions.Get(123).Step)
	assert.Equal(t, []string{i18n.Translate("uz", "ask_phone")}, ctx.sent)
}

func TestCheckout_EmptyCartAtPaymentResets(t *testing.T) {
	f := newHandlerFixture()
	sess := f.sessions.Get(123)
	sess.Step = domain.StepCheckoutPayment
	sess.Phone = "+998901234567"
	sess.Address = "addr"
	sess.DeliveryType = "pickup"

	f.users.On("GetByTelegramID", int64(123)).
		Return(testutil.NewTestUser(1, 123, "Aziz", "uz"), nil)
	f.orders.On("CreateFromCart", 1, "+998901234567", "addr", "pickup", "click").
		Return(0, domain.ErrEmptyCart)

	ctx := &testContext{sender: &tele.User{ID: 123}}
	assert.NoError(t, f.handler.handlePayment(ctx, "click"))

	sess = f.sessions.Get(123)
	assert.Equal(t, domain.StepIdle, sess.Step)
	assert.Empty(t, sess.Phone)
	assert.Equal(t, []string{i18n.Translate("uz", "cart_empty_order")}, ctx.sent)
}
