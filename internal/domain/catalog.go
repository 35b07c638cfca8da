package domain

import "time"

// Category groups products. Names are stored per locale.
type Category struct {
	ID        int
	NameUz    string
	NameRu    string
	NameEn    string
	CreatedAt time.Time
}

// Name returns the category name for the given language,
// falling back to Uzbek for unknown codes.
func (c *Category) Name(lang string) string {
	switch lang {
	case LangRu:
		return c.NameRu
	case LangEn:
		return c.NameEn
	default:
		return c.NameUz
	}
}

// Product is a catalog item. CategoryID is zero for uncategorized products.
type Product struct {
	ID            int
	CategoryID    int
	NameUz        string
	NameRu        string
	NameEn        string
	DescriptionUz string
	DescriptionRu string
	DescriptionEn string
	Price         int
	ImageURL      string
	IsActive      bool
	CreatedAt     time.Time
}

// Name returns the product name for the given language.
func (p *Product) Name(lang string) string {
	switch lang {
	case LangRu:
		return p.NameRu
	case LangEn:
		return p.NameEn
	default:
		return p.NameUz
	}
}

// Description returns the product description for the given language.
func (p *Product) Description(lang string) string {
	switch lang {
	case LangRu:
		return p.DescriptionRu
	case LangEn:
		return p.DescriptionEn
	default:
		return p.DescriptionUz
	}
}
