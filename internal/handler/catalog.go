package handler

import (
	"shopbot/internal/i18n"

	tele "gopkg.in/telebot.v3"
)

// handleShowCategories renders the category list for browsing
func (h *Handler) handleShowCategories(c tele.Context) error {
	sess := h.session(c)

	if _, err := h.user(c); err != nil {
		return h.fail(c, sess.Language, err)
	}

	categories, err := h.catalog.Categories()
	if err != nil {
		return h.fail(c, sess.Language, err)
	}
	if len(categories) == 0 {
		return c.Send(i18n.Translate(sess.Language, "no_categories"))
	}

	return c.Send(
		i18n.Translate(sess.Language, "categories_title"),
		categoriesMarkup(sess.Language, "category_", categories),
	)
}

// handleCategorySelect starts paginated browsing of one category
func (h *Handler) handleCategorySelect(c tele.Context, rawID string) error {
	sess := h.session(c)

	if _, err := h.user(c); err != nil {
		return h.fail(c, sess.Language, err)
	}

	categoryID, err := parseID(rawID)
	if err != nil {
		return h.fail(c, sess.Language, err)
	}
	if _, err := h.catalog.Category(categoryID); err != nil {
		return h.fail(c, sess.Language, err)
	}

	sess.CategoryID = categoryID
	sess.Page = 0
	h.save(c, sess)
	return h.sendProductPage(c, false)
}

// handleProductPageNav moves the browsing cursor one page in either direction
func (h *Handler) handleProductPageNav(c tele.Context, next bool) error {
	sess := h.session(c)

	if sess.CategoryID == 0 {
		// Stray press from an old keyboard, nothing to paginate.
		return nil
	}

	if next {
		sess.Page++
	} else if sess.Page > 0 {
		sess.Page--
	}
	h.save(c, sess)
	return h.sendProductPage(c, true)
}

// sendProductPage renders the current page of the session's category.
// Edits in place when reacting to a button, otherwise sends a new message.
func (h *Handler) sendProductPage(c tele.Context, edit bool) error {
	sess := h.session(c)

	page, err := h.catalog.Page(sess.CategoryID, sess.Page)
	if err != nil {
		return h.fail(c, sess.Language, err)
	}
	if len(page.Items) == 0 && !page.HasPrev {
		return c.Send(i18n.Translate(sess.Language, "no_products"))
	}

	text := productPageText(sess.Language, page)
	markup := productPageMarkup(sess.Language, page)

	if edit && c.Callback() != nil {
		if err := c.Edit(text, markup); err != nil {
			return c.Send(text, markup)
		}
		return nil
	}
	return c.Send(text, markup)
}

// handleSearch matches products by name in any locale
func (h *Handler) handleSearch(c tele.Context, query string) error {
	sess := h.session(c)

	if _, err := h.user(c); err != nil {
		return h.fail(c, sess.Language, err)
	}

	if query == "" {
		return c.Send(i18n.Translate(sess.Language, "search_usage"))
	}

	products, err := h.catalog.Search(query)
	if err != nil {
		return h.fail(c, sess.Language, err)
	}

	return c.Send(searchResultsText(sess.Language, products))
}
