package handler

import (
	"shopbot/internal/config"
	"shopbot/internal/service"
	"shopbot/internal/session"
	"shopbot/internal/testutil"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// testContext stubs the transport: it records what was sent and exposes
// the sender and message the handler under test should see. Methods the
// handlers never touch stay on the embedded interface.
type testContext struct {
	tele.Context
	sender  *tele.User
	message *tele.Message
	sent    []string
}

func (c *testContext) Sender() *tele.User { return c.sender }

func (c *testContext) Message() *tele.Message { return c.message }

func (c *testContext) Callback() *tele.Callback { return nil }

func (c *testContext) Text() string {
	if c.message == nil {
		return ""
	}
	return c.message.Text
}

func (c *testContext) Send(what interface{}, _ ...interface{}) error {
	if s, ok := what.(string); ok {
		c.sent = append(c.sent, s)
	}
	return nil
}

// handlerFixture wires a Handler over repository mocks and an in-memory
// session store, the way main wires the real thing.
type handlerFixture struct {
	handler    *Handler
	sessions   *session.MemoryStore
	users      *testutil.MockUserRepository
	categories *testutil.MockCategoryRepository
	products   *testutil.MockProductRepository
	carts      *testutil.MockCartRepository
	orders     *testutil.MockOrderRepository
	messages   *testutil.MockMessageRepository
}

func newHandlerFixture(adminIDs ...int64) *handlerFixture {
	f := &handlerFixture{
		sessions:   session.NewMemoryStore(),
		users:      new(testutil.MockUserRepository),
		categories: new(testutil.MockCategoryRepository),
		products:   new(testutil.MockProductRepository),
		carts:      new(testutil.MockCartRepository),
		orders:     new(testutil.MockOrderRepository),
		messages:   new(testutil.MockMessageRepository),
	}

	admins := make(map[int64]bool)
	for _, id := range adminIDs {
		admins[id] = true
	}
	cfg := &config.Config{BotToken: "test-token", AdminIDs: admins}

	f.handler = NewHandler(
		nil, cfg,
		service.NewUserService(f.users),
		service.NewCatalogService(f.categories, f.products),
		service.NewCartService(f.carts, f.products),
		service.NewOrderService(f.orders),
		service.NewMessageService(f.messages),
		f.sessions, zap.NewNop(),
	)
	return f
}
