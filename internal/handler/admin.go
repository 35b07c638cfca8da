package handler

import (
	"shopbot/internal/domain"
	"shopbot/internal/i18n"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleAdminPanel handles /admin
func (h *Handler) handleAdminPanel(c tele.Context) error {
	sess := h.session(c)
	if !h.isAdmin(c) {
		return h.fail(c, sess.Language, domain.ErrForbidden)
	}

	return c.Send(i18n.Translate(sess.Language, "admin_panel"), adminMarkup(sess.Language))
}

// handleManageProducts lists every product with edit/delete/add controls
func (h *Handler) handleManageProducts(c tele.Context) error {
	sess := h.session(c)

	products, err := h.catalog.AllProducts()
	if err != nil {
		return h.fail(c, sess.Language, err)
	}

	return c.Send(
		i18n.Translate(sess.Language, "manage_products_title"),
		manageProductsMarkup(sess.Language, products),
	)
}

// handleManageCategories lists every category with edit/delete/add controls
func (h *Handler) handleManageCategories(c tele.Context) error {
	sess := h.session(c)

	categories, err := h.catalog.Categories()
	if err != nil {
		return h.fail(c, sess.Language, err)
	}

	return c.Send(
		i18n.Translate(sess.Language, "manage_categories_title"),
		manageCategoriesMarkup(sess.Language, categories),
	)
}

// handleAddProduct starts the product authoring chain with an empty draft
func (h *Handler) handleAddProduct(c tele.Context) error {
	sess := h.session(c)
	sess.Reset()
	sess.Draft = &domain.ProductDraft{}
	sess.Step = domain.StepProductNameUz
	h.save(c, sess)
	return c.Send(i18n.Translate(sess.Language, "ask_product_name_uz"))
}

// handleEditProduct runs the same chain seeded with the existing record
func (h *Handler) handleEditProduct(c tele.Context, rawID string) error {
	sess := h.session(c)

	productID, err := parseID(rawID)
	if err != nil {
		return h.fail(c, sess.Language, err)
	}

	p, err := h.catalog.Product(productID)
	if err != nil {
		return h.fail(c, sess.Language, err)
	}

	sess.Reset()
	sess.Draft = &domain.ProductDraft{
		ID:            p.ID,
		NameUz:        p.NameUz,
		NameRu:        p.NameRu,
		NameEn:        p.NameEn,
		DescriptionUz: p.DescriptionUz,
		DescriptionRu: p.DescriptionRu,
		DescriptionEn: p.DescriptionEn,
		Price:         p.Price,
	}
	sess.Step = domain.StepProductNameUz
	h.save(c, sess)
	return c.Send(i18n.Translate(sess.Language, "ask_product_name_uz"))
}

// handleDeleteProduct removes a product
func (h *Handler) handleDeleteProduct(c tele.Context, rawID string) error {
	sess := h.session(c)

	productID, err := parseID(rawID)
	if err != nil {
		return h.fail(c, sess.Language, err)
	}

	if err := h.catalog.DeleteProduct(productID); err != nil {
		return h.fail(c, sess.Language, err)
	}

	h.logger.Info("Product deleted",
		zap.Int64("admin_id", c.Sender().ID),
		zap.Int("product_id", productID),
	)

	if err := c.Send(i18n.Translate(sess.Language, "product_deleted")); err != nil {
		return err
	}
	return h.handleManageProducts(c)
}

// handleAddCategory starts the category authoring chain
func (h *Handler) handleAddCategory(c tele.Context) error {
	sess := h.session(c)
	sess.Reset()
	sess.DraftCat = &domain.CategoryDraft{}
	sess.Step = domain.StepCategoryNameUz
	h.save(c, sess)
	return c.Send(i18n.Translate(sess.Language, "ask_category_name_uz"))
}

// handleEditCategory runs the category chain seeded with the existing record
func (h *Handler) handleEditCategory(c tele.Context, rawID string) error {
	sess := h.session(c)

	categoryID, err := parseID(rawID)
	if err != nil {
		return h.fail(c, sess.Language, err)
	}

	cat, err := h.catalog.Category(categoryID)
	if err != nil {
		return h.fail(c, sess.Language, err)
	}

	sess.Reset()
	sess.DraftCat = &domain.CategoryDraft{
		ID:     cat.ID,
		NameUz: cat.NameUz,
		NameRu: cat.NameRu,
		NameEn: cat.NameEn,
	}
	sess.Step = domain.StepCategoryNameUz
	h.save(c, sess)
	return c.Send(i18n.Translate(sess.Language, "ask_category_name_uz"))
}

// handleDeleteCategory removes a category
func (h *Handler) handleDeleteCategory(c tele.Context, rawID string) error {
	sess := h.session(c)

	categoryID, err := parseID(rawID)
	if err != nil {
		return h.fail(c, sess.Language, err)
	}

	if err := h.catalog.DeleteCategory(categoryID); err != nil {
		return h.fail(c, sess.Language, err)
	}

	h.logger.Info("Category deleted",
		zap.Int64("admin_id", c.Sender().ID),
		zap.Int("category_id", categoryID),
	)

	if err := c.Send(i18n.Translate(sess.Language, "category_deleted")); err != nil {
		return err
	}
	return h.handleManageCategories(c)
}

// handleViewOrders lists every order with status transition buttons
func (h *Handler) handleViewOrders(c tele.Context) error {
	sess := h.session(c)

	orders, err := h.orders.All()
	if err != nil {
		return h.fail(c, sess.Language, err)
	}
	if len(orders) == 0 {
		return c.Send(i18n.Translate(sess.Language, "no_orders"))
	}

	return c.Send(adminOrdersText(sess.Language, orders), adminOrdersMarkup(orders))
}

// handleUpdateOrderStatus handles update_order_<id>_<status>
func (h *Handler) handleUpdateOrderStatus(c tele.Context, rawID, status string) error {
	sess := h.session(c)

	orderID, err := parseID(rawID)
	if err != nil {
		return h.fail(c, sess.Language, err)
	}

	if err := h.orders.UpdateStatus(orderID, status); err != nil {
		return h.fail(c, sess.Language, err)
	}

	h.logger.Info("Order status updated",
		zap.Int64("admin_id", c.Sender().ID),
		zap.Int("order_id", orderID),
		zap.String("status", status),
	)
	return c.Send(i18n.Translate(sess.Language, "order_status_updated"))
}

// handleStatistics renders order and revenue aggregates
func (h *Handler) handleStatistics(c tele.Context) error {
	sess := h.session(c)

	stats, err := h.orders.Statistics()
	if err != nil {
		return h.fail(c, sess.Language, err)
	}

	return c.Send(statisticsText(sess.Language, stats))
}

// handleViewUsers lists every registered user
func (h *Handler) handleViewUsers(c tele.Context) error {
	sess := h.session(c)

	users, err := h.users.List()
	if err != nil {
		return h.fail(c, sess.Language, err)
	}

	return c.Send(usersText(sess.Language, users))
}

// handleBroadcastStart opens the broadcast step
func (h *Handler) handleBroadcastStart(c tele.Context) error {
	sess := h.session(c)
	sess.Reset()
	sess.Step = domain.StepBroadcast
	h.save(c, sess)
	return c.Send(i18n.Translate(sess.Language, "broadcast_prompt"))
}

// handleBroadcastMessage sends the free-text message to every known user
func (h *Handler) handleBroadcastMessage(c tele.Context, text string) error {
	sess := h.session(c)
	if !h.isAdmin(c) {
		return nil
	}

	users, err := h.users.List()
	if err != nil {
		return h.fail(c, sess.Language, err)
	}

	sent := 0
	for _, u := range users {
		if _, err := h.bot.Send(&tele.User{ID: u.TelegramID}, text); err != nil {
			h.logger.Warn("Broadcast delivery failed",
				zap.Int64("user_id", u.TelegramID),
				zap.Error(err),
			)
			continue
		}
		sent++
	}

	h.logger.Info("Broadcast sent",
		zap.Int64("admin_id", c.Sender().ID),
		zap.Int("recipients", sent),
	)

	sess.Reset()
	h.save(c, sess)
	return c.Send(i18n.Translate(sess.Language, "broadcast_sent", sent))
}
