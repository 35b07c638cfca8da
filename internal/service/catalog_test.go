package service

import (
	"fmt"
	"testing"

	"shopbot/internal/domain"
	"shopbot/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func twelveProducts(categoryID int) []domain.Product {
	products := make([]domain.Product, 0, 12)
	for i := 1; i <= 12; i++ {
		products = append(products, testutil.NewTestProduct(i, categoryID, 100*i, fmt.Sprintf("product-%d", i)))
	}
	return products
}

func TestCatalogService_Page(t *testing.T) {
	tests := []struct {
		name        string
		page        int
		expectedIDs []int
		hasPrev     bool
		hasNext     bool
	}{
		{
			name:        "first page shows items 1-5 with only next",
			page:        0,
			expectedIDs: []int{1, 2, 3, 4, 5},
			hasPrev:     false,
			hasNext:     true,
		},
		{
			name:        "middle page shows items 6-10 with both controls",
			page:        1,
			expectedIDs: []int{6, 7, 8, 9, 10},
			hasPrev:     true,
			hasNext:     true,
		},
		{
			name:        "last page shows items 11-12 with only previous",
			page:        2,
			expectedIDs: []int{11, 12},
			hasPrev:     true,
			hasNext:     false,
		},
		{
			name:        "page past the end is empty with previous",
			page:        3,
			expectedIDs: nil,
			hasPrev:     true,
			hasNext:     false,
		},
		{
			name:        "negative page clamps to first",
			page:        -2,
			expectedIDs: []int{1, 2, 3, 4, 5},
			hasPrev:     false,
			hasNext:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			productRepo := new(testutil.MockProductRepository)
			productRepo.On("GetActiveByCategory", 7).Return(twelveProducts(7), nil)

			svc := NewCatalogService(new(testutil.MockCategoryRepository), productRepo)

			page, err := svc.Page(7, tt.page)

			assert.NoError(t, err)
			assert.Equal(t, tt.hasPrev, page.HasPrev)
			assert.Equal(t, tt.hasNext, page.HasNext)

			var ids []int
			for _, p := range page.Items {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)

			productRepo.AssertExpectations(t)
		})
	}
}

func TestCatalogService_SaveProductDraft(t *testing.T) {
	t.Run("new draft creates a product", func(t *testing.T) {
		categoryRepo := new(testutil.MockCategoryRepository)
		productRepo := new(testutil.MockProductRepository)

		categoryRepo.On("GetByID", 3).Return(&domain.Category{ID: 3}, nil)
		productRepo.On("Create", &domain.Product{
			CategoryID:    3,
			NameUz:        "non",
			NameRu:        "хлеб",
			NameEn:        "bread",
			DescriptionUz: "d1",
			DescriptionRu: "d2",
			DescriptionEn: "d3",
			Price:         4500,
			IsActive:      true,
		}).Return(10, nil)

		svc := NewCatalogService(categoryRepo, productRepo)

		draft := &domain.ProductDraft{
			NameUz: "non", NameRu: "хлеб", NameEn: "bread",
			DescriptionUz: "d1", DescriptionRu: "d2", DescriptionEn: "d3",
			Price: 4500,
		}
		err := svc.SaveProductDraft(draft, 3)

		assert.NoError(t, err)
		categoryRepo.AssertExpectations(t)
		productRepo.AssertExpectations(t)
	})

	t.Run("draft with id updates the existing product", func(t *testing.T) {
		categoryRepo := new(testutil.MockCategoryRepository)
		productRepo := new(testutil.MockProductRepository)

		categoryRepo.On("GetByID", 3).Return(&domain.Category{ID: 3}, nil)
		productRepo.On("Update", &domain.Product{
			ID:         42,
			CategoryID: 3,
			NameUz:     "yangilangan",
			Price:      100,
			IsActive:   true,
		}).Return(nil)

		svc := NewCatalogService(categoryRepo, productRepo)

		err := svc.SaveProductDraft(&domain.ProductDraft{ID: 42, NameUz: "yangilangan", Price: 100}, 3)

		assert.NoError(t, err)
		productRepo.AssertExpectations(t)
	})

	t.Run("non-positive price rejects the draft", func(t *testing.T) {
		categoryRepo := new(testutil.MockCategoryRepository)
		productRepo := new(testutil.MockProductRepository)

		svc := NewCatalogService(categoryRepo, productRepo)

		err := svc.SaveProductDraft(&domain.ProductDraft{NameUz: "x", Price: 0}, 3)

		assert.ErrorIs(t, err, domain.ErrInvalidPrice)
		categoryRepo.AssertNotCalled(t, "GetByID")
		productRepo.AssertNotCalled(t, "Create")
	})

	t.Run("unknown category rejects the draft", func(t *testing.T) {
		categoryRepo := new(testutil.MockCategoryRepository)
		productRepo := new(testutil.MockProductRepository)

		categoryRepo.On("GetByID", 99).Return(nil, domain.ErrNotFound)

		svc := NewCatalogService(categoryRepo, productRepo)

		err := svc.SaveProductDraft(&domain.ProductDraft{NameUz: "x", Price: 1}, 99)

		assert.ErrorIs(t, err, domain.ErrNotFound)
		productRepo.AssertNotCalled(t, "Create")
	})
}

func TestCatalogService_Search(t *testing.T) {
	productRepo := new(testutil.MockProductRepository)
	productRepo.On("Search", "olma").Return([]domain.Product{
		testutil.NewTestProduct(1, 1, 5000, "olma"),
	}, nil)

	svc := NewCatalogService(new(testutil.MockCategoryRepository), productRepo)

	t.Run("trims the query", func(t *testing.T) {
		products, err := svc.Search("  olma  ")
		assert.NoError(t, err)
		assert.Len(t, products, 1)
	})

	t.Run("empty query returns nothing without touching the repo", func(t *testing.T) {
		products, err := svc.Search("   ")
		assert.NoError(t, err)
		assert.Nil(t, products)
	})
}
