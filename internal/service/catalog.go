package service

import (
	"strings"

	"shopbot/internal/domain"
	"shopbot/internal/repository"
)

// PageSize is the number of products shown per catalog page.
const PageSize = 5

// ProductPage is one page of the paginated product list.
type ProductPage struct {
	Items   []domain.Product
	HasPrev bool
	HasNext bool
}

// CatalogService handles categories, products and the authoring drafts
type CatalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) *CatalogService {
	return &CatalogService{categoryRepo: categoryRepo, productRepo: productRepo}
}

// Categories returns every category
func (s *CatalogService) Categories() ([]domain.Category, error) {
	return s.categoryRepo.GetAll()
}

// Category returns one category
func (s *CatalogService) Category(id int) (*domain.Category, error) {
	return s.categoryRepo.GetByID(id)
}

// Page returns one page of a category's active products. Pages are
// zero-based; a previous control exists iff the page has a predecessor,
// a next control iff more items follow.
func (s *CatalogService) Page(categoryID, page int) (*ProductPage, error) {
	products, err := s.productRepo.GetActiveByCategory(categoryID)
	if err != nil {
		return nil, err
	}

	if page < 0 {
		page = 0
	}
	start := page * PageSize
	end := start + PageSize
	total := len(products)

	if start >= total {
		return &ProductPage{HasPrev: start > 0}, nil
	}
	if end > total {
		end = total
	}

	return &ProductPage{
		Items:   products[start:end],
		HasPrev: start > 0,
		HasNext: end < total,
	}, nil
}

// Product returns one product
func (s *CatalogService) Product(id int) (*domain.Product, error) {
	return s.productRepo.GetByID(id)
}

// AllProducts returns every product, including inactive ones
func (s *CatalogService) AllProducts() ([]domain.Product, error) {
	return s.productRepo.GetAll()
}

// Search matches active products by name in any locale
func (s *CatalogService) Search(query string) ([]domain.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	return s.productRepo.Search(query)
}

// SaveProductDraft persists a completed authoring draft. A zero draft ID
// creates a new product, otherwise the existing one is updated.
func (s *CatalogService) SaveProductDraft(draft *domain.ProductDraft, categoryID int) error {
	if draft.Price <= 0 {
		return domain.ErrInvalidPrice
	}
	if _, err := s.categoryRepo.GetByID(categoryID); err != nil {
		return err
	}

	p := &domain.Product{
		ID:            draft.ID,
		CategoryID:    categoryID,
		NameUz:        draft.NameUz,
		NameRu:        draft.NameRu,
		NameEn:        draft.NameEn,
		DescriptionUz: draft.DescriptionUz,
		DescriptionRu: draft.DescriptionRu,
		DescriptionEn: draft.DescriptionEn,
		Price:         draft.Price,
		IsActive:      true,
	}

	if draft.ID == 0 {
		_, err := s.productRepo.Create(p)
		return err
	}
	return s.productRepo.Update(p)
}

// SaveCategoryDraft persists a completed category draft
func (s *CatalogService) SaveCategoryDraft(draft *domain.CategoryDraft) error {
	c := &domain.Category{
		ID:     draft.ID,
		NameUz: draft.NameUz,
		NameRu: draft.NameRu,
		NameEn: draft.NameEn,
	}

	if draft.ID == 0 {
		_, err := s.categoryRepo.Create(c)
		return err
	}
	return s.categoryRepo.Update(c)
}

// DeleteProduct removes a product
func (s *CatalogService) DeleteProduct(id int) error {
	return s.productRepo.Delete(id)
}

// DeleteCategory removes a category
func (s *CatalogService) DeleteCategory(id int) error {
	return s.categoryRepo.Delete(id)
}
