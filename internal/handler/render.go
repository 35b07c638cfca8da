package handler

import (
	"fmt"
	"strconv"
	"strings"

	"shopbot/internal/domain"
	"shopbot/internal/i18n"
	"shopbot/internal/service"

	tele "gopkg.in/telebot.v3"
)

// Renderer functions build screen text and controls from their arguments
// only. Every user-facing string goes through the translation catalog with
// the session language.

// mainMenuMarkup returns the persistent reply keyboard
func mainMenuMarkup(lang string) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(
		menu.Row(
			tele.Btn{Text: i18n.Translate(lang, "menu_products")},
			tele.Btn{Text: i18n.Translate(lang, "menu_cart")},
		),
		menu.Row(
			tele.Btn{Text: i18n.Translate(lang, "menu_orders")},
			tele.Btn{Text: i18n.Translate(lang, "menu_support")},
		),
		menu.Row(
			tele.Btn{Text: i18n.Translate(lang, "menu_change_language")},
		),
	)
	return menu
}

// languageMarkup returns the language selection inline keyboard
func languageMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(tele.Btn{Text: "🇺🇿 O'zbek", Data: "lang_uz"}),
		markup.Row(tele.Btn{Text: "🇷🇺 Русский", Data: "lang_ru"}),
		markup.Row(tele.Btn{Text: "🇬🇧 English", Data: "lang_en"}),
	)
	return markup
}

// categoriesMarkup lists categories as inline buttons. The prefix selects
// the flow the press belongs to ("category_" for browsing,
// "set_category_" for the authoring chain).
func categoriesMarkup(lang, prefix string, categories []domain.Category) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(categories))
	for i := range categories {
		c := &categories[i]
		rows = append(rows, markup.Row(tele.Btn{
			Text: c.Name(lang),
			Data: prefix + strconv.Itoa(c.ID),
		}))
	}
	markup.Inline(rows...)
	return markup
}

// productPageText renders one page of the product list
func productPageText(lang string, page *service.ProductPage) string {
	var b strings.Builder
	b.WriteString(i18n.Translate(lang, "products_title"))
	b.WriteString("\n")
	for i := range page.Items {
		p := &page.Items[i]
		b.WriteString(i18n.Translate(lang, "product_entry",
			i+1, p.Name(lang), p.Price, p.Description(lang), p.ID))
	}
	return b.String()
}

// productPageMarkup shows prev/next controls only where a neighbor exists
func productPageMarkup(lang string, page *service.ProductPage) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	var nav tele.Row
	if page.HasPrev {
		nav = append(nav, tele.Btn{Text: i18n.Translate(lang, "nav_prev"), Data: "prev"})
	}
	if page.HasNext {
		nav = append(nav, tele.Btn{Text: i18n.Translate(lang, "nav_next"), Data: "next"})
	}
	if len(nav) > 0 {
		markup.Inline(nav)
	}
	return markup
}

// searchResultsText renders search hits as a flat product list
func searchResultsText(lang string, products []domain.Product) string {
	if len(products) == 0 {
		return i18n.Translate(lang, "search_empty")
	}
	var b strings.Builder
	b.WriteString(i18n.Translate(lang, "products_title"))
	b.WriteString("\n")
	for i := range products {
		p := &products[i]
		b.WriteString(i18n.Translate(lang, "product_entry",
			i+1, p.Name(lang), p.Price, p.Description(lang), p.ID))
	}
	return b.String()
}

// cartText renders the cart summary with per-line affordances and a total
func cartText(lang string, items []domain.CartItem) string {
	var b strings.Builder
	b.WriteString(i18n.Translate(lang, "cart_title"))
	b.WriteString("\n")
	total := 0
	for i := range items {
		item := &items[i]
		b.WriteString(i18n.Translate(lang, "cart_entry",
			i+1, item.Product.Name(lang), item.Quantity, item.LineTotal(),
			item.Product.ID, item.Product.ID))
		total += item.LineTotal()
	}
	b.WriteString("\n")
	b.WriteString(i18n.Translate(lang, "cart_total", total))
	b.WriteString("\n")
	b.WriteString(i18n.Translate(lang, "place_order_hint"))
	return b.String()
}

// ordersText renders the user's order history
func ordersText(lang string, orders []domain.Order) string {
	var b strings.Builder
	b.WriteString(i18n.Translate(lang, "orders_title"))
	b.WriteString("\n")
	for i := range orders {
		o := &orders[i]
		b.WriteString(i18n.Translate(lang, "order_entry",
			i+1, o.Product.Name(lang), o.Quantity, o.Status))
	}
	return b.String()
}

// contactMarkup asks for the phone number with a one-time contact keyboard
func contactMarkup(lang string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{ResizeKeyboard: true, OneTimeKeyboard: true}
	markup.Reply(markup.Row(tele.Btn{
		Text:    i18n.Translate(lang, "btn_send_phone"),
		Contact: true,
	}))
	return markup
}

// locationMarkup asks for the address with a one-time location keyboard
func locationMarkup(lang string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{ResizeKeyboard: true, OneTimeKeyboard: true}
	markup.Reply(markup.Row(tele.Btn{
		Text:     i18n.Translate(lang, "btn_send_location"),
		Location: true,
	}))
	return markup
}

// deliveryMarkup offers the two delivery types
func deliveryMarkup(lang string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(tele.Btn{Text: i18n.Translate(lang, "btn_delivery"), Data: "delivery"}),
		markup.Row(tele.Btn{Text: i18n.Translate(lang, "btn_pickup"), Data: "pickup"}),
	)
	return markup
}

// paymentMarkup offers the supported payment methods
func paymentMarkup(lang string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(tele.Btn{Text: i18n.Translate(lang, "btn_payment_cash"), Data: "payment_cash"}),
		markup.Row(tele.Btn{Text: i18n.Translate(lang, "btn_payment_payme"), Data: "payment_payme"}),
		markup.Row(tele.Btn{Text: i18n.Translate(lang, "btn_payment_click"), Data: "payment_click"}),
		markup.Row(tele.Btn{Text: i18n.Translate(lang, "btn_payment_stripe"), Data: "payment_stripe"}),
		markup.Row(tele.Btn{Text: i18n.Translate(lang, "btn_payment_onspot"), Data: "payment_onspot"}),
	)
	return markup
}

// adminMarkup returns the admin panel inline keyboard
func adminMarkup(lang string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(
			tele.Btn{Text: i18n.Translate(lang, "btn_manage_products"), Data: "manage_products"},
			tele.Btn{Text: i18n.Translate(lang, "btn_manage_categories"), Data: "manage_categories"},
		),
		markup.Row(
			tele.Btn{Text: i18n.Translate(lang, "btn_view_orders"), Data: "view_orders"},
			tele.Btn{Text: i18n.Translate(lang, "btn_statistics"), Data: "statistics"},
		),
		markup.Row(
			tele.Btn{Text: i18n.Translate(lang, "btn_broadcast"), Data: "broadcast"},
			tele.Btn{Text: i18n.Translate(lang, "btn_view_users"), Data: "view_users"},
		),
	)
	return markup
}

// manageProductsMarkup lists every product with edit/delete controls
func manageProductsMarkup(lang string, products []domain.Product) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(products)+1)
	for i := range products {
		p := &products[i]
		rows = append(rows, markup.Row(
			tele.Btn{
				Text: i18n.Translate(lang, "btn_edit", p.Name(lang)),
				Data: fmt.Sprintf("edit_product_%d", p.ID),
			},
			tele.Btn{
				Text: i18n.Translate(lang, "btn_delete", p.Name(lang)),
				Data: fmt.Sprintf("delete_product_%d", p.ID),
			},
		))
	}
	rows = append(rows, markup.Row(tele.Btn{
		Text: i18n.Translate(lang, "btn_add_product"),
		Data: "add_product",
	}))
	markup.Inline(rows...)
	return markup
}

// manageCategoriesMarkup lists every category with edit/delete controls
func manageCategoriesMarkup(lang string, categories []domain.Category) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(categories)+1)
	for i := range categories {
		c := &categories[i]
		rows = append(rows, markup.Row(
			tele.Btn{
				Text: i18n.Translate(lang, "btn_edit", c.Name(lang)),
				Data: fmt.Sprintf("edit_category_%d", c.ID),
			},
			tele.Btn{
				Text: i18n.Translate(lang, "btn_delete", c.Name(lang)),
				Data: fmt.Sprintf("delete_category_%d", c.ID),
			},
		))
	}
	rows = append(rows, markup.Row(tele.Btn{
		Text: i18n.Translate(lang, "btn_add_category"),
		Data: "add_category",
	}))
	markup.Inline(rows...)
	return markup
}

// adminOrdersText renders every order with contact details
func adminOrdersText(lang string, orders []domain.Order) string {
	var b strings.Builder
	b.WriteString(i18n.Translate(lang, "all_orders_title"))
	b.WriteString("\n")
	for i := range orders {
		o := &orders[i]
		b.WriteString(i18n.Translate(lang, "order_admin_entry",
			o.ID, o.Product.Name(lang), o.Quantity, o.Status, o.DeliveryType,
			o.Phone, o.Address))
	}
	return b.String()
}

// adminOrdersMarkup offers a status transition row per order
func adminOrdersMarkup(orders []domain.Order) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		rows = append(rows, markup.Row(
			tele.Btn{
				Text: fmt.Sprintf("#%d → %s", o.ID, domain.OrderStatusNew),
				Data: fmt.Sprintf("update_order_%d_%s", o.ID, domain.OrderStatusNew),
			},
			tele.Btn{
				Text: fmt.Sprintf("#%d → %s", o.ID, domain.OrderStatusProcessing),
				Data: fmt.Sprintf("update_order_%d_%s", o.ID, domain.OrderStatusProcessing),
			},
			tele.Btn{
				Text: fmt.Sprintf("#%d → %s", o.ID, domain.OrderStatusClosed),
				Data: fmt.Sprintf("update_order_%d_%s", o.ID, domain.OrderStatusClosed),
			},
		))
	}
	markup.Inline(rows...)
	return markup
}

// statisticsText renders the aggregate order counters
func statisticsText(lang string, stats *domain.Statistics) string {
	return i18n.Translate(lang, "statistics_text",
		stats.Last7DaysOrders, stats.Last7DaysRevenue,
		stats.Last30DaysOrders, stats.Last30DaysRevenue)
}

// usersText renders the registered user list
func usersText(lang string, users []domain.User) string {
	if len(users) == 0 {
		return i18n.Translate(lang, "no_users")
	}
	var b strings.Builder
	b.WriteString(i18n.Translate(lang, "users_title"))
	b.WriteString("\n")
	for i := range users {
		u := &users[i]
		b.WriteString(i18n.Translate(lang, "user_entry",
			i+1, u.FirstName, u.TelegramID, u.Language))
	}
	return b.String()
}

// supportText renders prior support messages followed by the prompt
func supportText(lang string, messages []domain.Message) string {
	var b strings.Builder
	if len(messages) == 0 {
		b.WriteString(i18n.Translate(lang, "no_messages"))
	} else {
		b.WriteString(i18n.Translate(lang, "support_title"))
		b.WriteString("\n")
		for i := range messages {
			b.WriteString(messages[i].Text)
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(i18n.Translate(lang, "support_prompt"))
	return b.String()
}
