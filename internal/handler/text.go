package handler

import (
	"strconv"
	"strings"

	"shopbot/internal/domain"
	"shopbot/internal/i18n"

	tele "gopkg.in/telebot.v3"
)

// handleText routes free text. An active session step always wins over
// menu labels and dynamic commands; unmatched text is dropped.
func (h *Handler) handleText(c tele.Context) error {
	text := strings.TrimSpace(c.Text())
	if text == "" {
		return nil
	}

	sess := h.session(c)

	// 1. Step continuations.
	switch sess.Step {
	case domain.StepRegisterName:
		return h.handleRegisterName(c, text)
	case domain.StepSupport:
		return h.handleSupportMessage(c, text)
	case domain.StepBroadcast:
		return h.handleBroadcastMessage(c, text)
	case domain.StepProductNameUz, domain.StepProductDescUz,
		domain.StepProductNameRu, domain.StepProductDescRu,
		domain.StepProductNameEn, domain.StepProductDescEn,
		domain.StepProductPrice:
		return h.handleProductDraftInput(c, text)
	case domain.StepCategoryNameUz, domain.StepCategoryNameRu, domain.StepCategoryNameEn:
		return h.handleCategoryDraftInput(c, text)
	}

	// 2. Menu labels, matched in any locale since the keyboard language
	// may differ from the stored preference.
	switch {
	case i18n.Matches("menu_products", text):
		return h.handleShowCategories(c)
	case i18n.Matches("menu_cart", text):
		return h.handleShowCart(c)
	case i18n.Matches("menu_orders", text):
		return h.handleOrderHistory(c)
	case i18n.Matches("menu_support", text):
		return h.handleSupport(c)
	case i18n.Matches("menu_change_language", text):
		return h.handleChangeLanguage(c)
	}

	// 3. Dynamic commands.
	switch {
	case strings.HasPrefix(text, "/add_"):
		return h.handleAddToCart(c, strings.TrimPrefix(text, "/add_"))
	case strings.HasPrefix(text, "/remove_"):
		return h.handleRemoveFromCart(c, strings.TrimPrefix(text, "/remove_"))
	case strings.HasPrefix(text, "/set_quantity_"):
		return h.handleSetQuantity(c, strings.TrimPrefix(text, "/set_quantity_"))
	case strings.HasPrefix(text, "/search"):
		return h.handleSearch(c, strings.TrimSpace(strings.TrimPrefix(text, "/search")))
	}

	// 4. Nothing matched: drop without effect.
	return nil
}

// parseID parses the numeric tail of a dynamic command or callback
func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, domain.ErrNotFound
	}
	return id, nil
}
