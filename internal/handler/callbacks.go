package handler

import (
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleCallback handles ALL callback queries. Dispatch is by data prefix;
// every press is acknowledged regardless of outcome.
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		return nil
	}

	data := cleanCallbackData(callback.Data)
	err := h.dispatchCallback(c, data)

	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Debug("Failed to acknowledge callback",
			zap.String("callback_id", callback.ID),
			zap.Error(ackErr),
		)
	}
	return err
}

// dispatchCallback resolves the callback data to one handler. Admin-only
// data from a non-admin sender is dropped without effect.
func (h *Handler) dispatchCallback(c tele.Context, data string) error {
	switch {
	case strings.HasPrefix(data, "lang_"):
		return h.handleLanguage(c, strings.TrimPrefix(data, "lang_"))
	case strings.HasPrefix(data, "category_"):
		return h.handleCategorySelect(c, strings.TrimPrefix(data, "category_"))
	case data == "next":
		return h.handleProductPageNav(c, true)
	case data == "prev":
		return h.handleProductPageNav(c, false)
	case data == "delivery" || data == "pickup":
		return h.handleDeliveryType(c, data)
	case strings.HasPrefix(data, "payment_"):
		return h.handlePayment(c, strings.TrimPrefix(data, "payment_"))
	}

	// Everything below is admin surface.
	if !h.isAdmin(c) {
		h.logger.Warn("Non-admin pressed admin button",
			zap.Int64("user_id", c.Sender().ID),
			zap.String("data", data),
		)
		return nil
	}

	switch data {
	case "manage_products":
		return h.handleManageProducts(c)
	case "manage_categories":
		return h.handleManageCategories(c)
	case "view_orders":
		return h.handleViewOrders(c)
	case "statistics":
		return h.handleStatistics(c)
	case "broadcast":
		return h.handleBroadcastStart(c)
	case "view_users":
		return h.handleViewUsers(c)
	case "add_product":
		return h.handleAddProduct(c)
	case "add_category":
		return h.handleAddCategory(c)
	}

	switch {
	case strings.HasPrefix(data, "set_category_"):
		return h.handleSetCategory(c, strings.TrimPrefix(data, "set_category_"))
	case strings.HasPrefix(data, "edit_product_"):
		return h.handleEditProduct(c, strings.TrimPrefix(data, "edit_product_"))
	case strings.HasPrefix(data, "delete_product_"):
		return h.handleDeleteProduct(c, strings.TrimPrefix(data, "delete_product_"))
	case strings.HasPrefix(data, "edit_category_"):
		return h.handleEditCategory(c, strings.TrimPrefix(data, "edit_category_"))
	case strings.HasPrefix(data, "delete_category_"):
		return h.handleDeleteCategory(c, strings.TrimPrefix(data, "delete_category_"))
	case strings.HasPrefix(data, "update_order_"):
		rest := strings.TrimPrefix(data, "update_order_")
		parts := strings.SplitN(rest, "_", 2)
		if len(parts) != 2 {
			return nil
		}
		return h.handleUpdateOrderStatus(c, parts[0], parts[1])
	}

	h.logger.Debug("Unhandled callback", zap.String("data", data))
	return nil
}
