package handler

import (
	"testing"

	"shopbot/internal/domain"
	"shopbot/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestProductPageMarkup(t *testing.T) {
	tests := []struct {
		name         string
		hasPrev      bool
		hasNext      bool
		expectedData []string
	}{
		{
			name:         "first of several pages",
			hasNext:      true,
			expectedData: []string{"next"},
		},
		{
			name:         "middle page",
			hasPrev:      true,
			hasNext:      true,
			expectedData: []string{"prev", "next"},
		},
		{
			name:         "last page",
			hasPrev:      true,
			expectedData: []string{"prev"},
		},
		{
			name:         "single page has no controls",
			expectedData: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := &service.ProductPage{HasPrev: tt.hasPrev, HasNext: tt.hasNext}

			markup := productPageMarkup("uz", page)

			var data []string
			for _, row := range markup.InlineKeyboard {
				for _, btn := range row {
					data = append(data, btn.Data)
				}
			}
			assert.Equal(t, tt.expectedData, data)
		})
	}
}

func TestCategoriesMarkup(t *testing.T) {
	categories := []domain.Category{
		{ID: 3, NameUz: "Non", NameRu: "Хлеб", NameEn: "Bread"},
		{ID: 7, NameUz: "Sut", NameRu: "Молоко", NameEn: "Milk"},
	}

	t.Run("browsing prefix", func(t *testing.T) {
		markup := categoriesMarkup("ru", "category_", categories)

		assert.Len(t, markup.InlineKeyboard, 2)
		assert.Equal(t, "Хлеб", markup.InlineKeyboard[0][0].Text)
		assert.Equal(t, "category_3", markup.InlineKeyboard[0][0].Data)
		assert.Equal(t, "category_7", markup.InlineKeyboard[1][0].Data)
	})

	t.Run("authoring prefix", func(t *testing.T) {
		markup := categoriesMarkup("en", "set_category_", categories)

		assert.Equal(t, "Bread", markup.InlineKeyboard[0][0].Text)
		assert.Equal(t, "set_category_3", markup.InlineKeyboard[0][0].Data)
	})
}

func TestCartText_Total(t *testing.T) {
	items := []domain.CartItem{
		{Quantity: 2, Product: domain.Product{ID: 5, NameUz: "Non", Price: 4500}},
		{Quantity: 1, Product: domain.Product{ID: 6, NameUz: "Sut", Price: 9000}},
	}

	text := cartText("uz", items)

	assert.Contains(t, text, "Non")
	assert.Contains(t, text, "Sut")
	assert.Contains(t, text, "18000")
	assert.Contains(t, text, "/place_order")
}

func TestAdminOrdersMarkup(t *testing.T) {
	orders := []domain.Order{{ID: 12, Status: domain.OrderStatusNew}}

	markup := adminOrdersMarkup(orders)

	assert.Len(t, markup.InlineKeyboard, 1)
	row := markup.InlineKeyboard[0]
	assert.Len(t, row, 3)
	assert.Equal(t, "update_order_12_new", row[0].Data)
	assert.Equal(t, "update_order_12_processing", row[1].Data)
	assert.Equal(t, "update_order_12_closed", row[2].Data)
}
