package handler

import (
	"strconv"
	"strings"

	"shopbot/internal/domain"
	"shopbot/internal/i18n"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// The authoring step machines consume one free-text message per field.
// advanceProductDraft and advanceCategoryDraft are pure over the session
// so the chains are testable without a live transport.

// advanceProductDraft writes one draft field and moves to the next step.
// A non-numeric price keeps the step and re-prompts. The returned key is
// the prompt for the user's next input.
func advanceProductDraft(sess *domain.Session, text string) (promptKey string) {
	switch sess.Step {
	case domain.StepProductNameUz:
		sess.Draft.NameUz = text
		sess.Step = domain.StepProductDescUz
		return "ask_product_desc_uz"
	case domain.StepProductDescUz:
		sess.Draft.DescriptionUz = text
		sess.Step = domain.StepProductNameRu
		return "ask_product_name_ru"
	case domain.StepProductNameRu:
		sess.Draft.NameRu = text
		sess.Step = domain.StepProductDescRu
		return "ask_product_desc_ru"
	case domain.StepProductDescRu:
		sess.Draft.DescriptionRu = text
		sess.Step = domain.StepProductNameEn
		return "ask_product_name_en"
	case domain.StepProductNameEn:
		sess.Draft.NameEn = text
		sess.Step = domain.StepProductDescEn
		return "ask_product_desc_en"
	case domain.StepProductDescEn:
		sess.Draft.DescriptionEn = text
		sess.Step = domain.StepProductPrice
		return "ask_product_price"
	case domain.StepProductPrice:
		price, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil || price <= 0 {
			return "invalid_price"
		}
		sess.Draft.Price = price
		sess.Step = domain.StepProductCat
		return "choose_product_category"
	}
	return ""
}

// advanceCategoryDraft writes one name field; done is true after the last
// field, at which point the draft is ready to persist.
func advanceCategoryDraft(sess *domain.Session, text string) (promptKey string, done bool) {
	switch sess.Step {
	case domain.StepCategoryNameUz:
		sess.DraftCat.NameUz = text
		sess.Step = domain.StepCategoryNameRu
		return "ask_category_name_ru", false
	case domain.StepCategoryNameRu:
		sess.DraftCat.NameRu = text
		sess.Step = domain.StepCategoryNameEn
		return "ask_category_name_en", false
	case domain.StepCategoryNameEn:
		sess.DraftCat.NameEn = text
		return "", true
	}
	return "", false
}

// handleProductDraftInput consumes one product authoring field.
// Authoring steps are only ever set on admin sessions, but the role is
// re-checked so a non-admin's text stays inert.
func (h *Handler) handleProductDraftInput(c tele.Context, text string) error {
	if !h.isAdmin(c) {
		return nil
	}

	sess := h.session(c)
	if sess.Draft == nil {
		sess.Reset()
		h.save(c, sess)
		return nil
	}

	promptKey := advanceProductDraft(sess, text)
	h.save(c, sess)

	if promptKey == "choose_product_category" {
		categories, err := h.catalog.Categories()
		if err != nil {
			return h.fail(c, sess.Language, err)
		}
		return c.Send(
			i18n.Translate(sess.Language, promptKey),
			categoriesMarkup(sess.Language, "set_category_", categories),
		)
	}
	return c.Send(i18n.Translate(sess.Language, promptKey))
}

// handleCategoryDraftInput consumes one category authoring field and
// persists the draft after the last one.
func (h *Handler) handleCategoryDraftInput(c tele.Context, text string) error {
	if !h.isAdmin(c) {
		return nil
	}

	sess := h.session(c)
	if sess.DraftCat == nil {
		sess.Reset()
		h.save(c, sess)
		return nil
	}

	promptKey, done := advanceCategoryDraft(sess, text)
	if !done {
		h.save(c, sess)
		return c.Send(i18n.Translate(sess.Language, promptKey))
	}

	if err := h.catalog.SaveCategoryDraft(sess.DraftCat); err != nil {
		return h.fail(c, sess.Language, err)
	}

	h.logger.Info("Category saved", zap.Int64("admin_id", c.Sender().ID))

	sess.Reset()
	h.save(c, sess)
	return c.Send(i18n.Translate(sess.Language, "category_saved"))
}

// handleSetCategory finishes the product authoring chain: the chosen
// category is attached and the draft persisted.
func (h *Handler) handleSetCategory(c tele.Context, rawID string) error {
	sess := h.session(c)
	if sess.Step != domain.StepProductCat || sess.Draft == nil {
		return nil
	}

	categoryID, err := parseID(rawID)
	if err != nil {
		return h.fail(c, sess.Language, err)
	}

	if err := h.catalog.SaveProductDraft(sess.Draft, categoryID); err != nil {
		return h.fail(c, sess.Language, err)
	}

	h.logger.Info("Product saved", zap.Int64("admin_id", c.Sender().ID))

	sess.Reset()
	h.save(c, sess)
	return c.Send(i18n.Translate(sess.Language, "product_saved"))
}
