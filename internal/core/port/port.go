package port

import (
	"github.com/hava-distribution/catalog/internal/core/domain"
)

type ProductSearcher interface {
	Search(domain.FilterSpec) []domain.Product
	SmartSearch(category, rawTags, rawSpecs string) ([]domain.Product, domain.HotspotFilters)
}

type ProductReader interface {
	Products() []domain.Product
	ProductBySlug(slug string) (domain.Product, error)
	ARProducts() []domain.Product
}

type BrandReader interface {
	Brands() []domain.Brand
	BrandBySlug(slug string) (domain.Brand, error)
	CategoriesForBrand(brandSlug string) ([]domain.Category, error)
}

type CategoryReader interface {
	Categories() []domain.Category
	CategoryBySlug(slug string) (domain.Category, error)
	ProductsByCategory(rootSlug string) []domain.Product
}

type StatsReader interface {
	Stats() domain.Stats
}

type SmartFindReader interface {
	SmartFind() domain.SmartFindConfig
}
