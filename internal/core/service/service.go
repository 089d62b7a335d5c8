// Package service owns the catalog query semantics: classification,
// filtering, ordering, lookups and aggregates over one immutable
// in-memory snapshot. Every operation is pure, synchronous and safe for
// concurrent use; each call produces a new result collection.
package service

import (
	"fmt"
	"strings"

	"github.com/hava-distribution/catalog/internal/core/domain"
	"github.com/hava-distribution/catalog/internal/core/port"
	"github.com/hava-distribution/catalog/pkg/querycodec"
)

var _ port.ProductSearcher = (*Service)(nil)
var _ port.ProductReader = (*Service)(nil)
var _ port.BrandReader = (*Service)(nil)
var _ port.CategoryReader = (*Service)(nil)
var _ port.StatsReader = (*Service)(nil)
var _ port.SmartFindReader = (*Service)(nil)

type Service struct {
	products   []domain.Product
	brands     []domain.Brand
	categories []domain.Category
	smartFind  domain.SmartFindConfig
	stats      domain.Stats
}

// New builds a query service over a loaded catalog. Products are
// classified against the injected hierarchy once, here; when the data
// set ships no category structure one is rendered from the table. The
// snapshot is read-only afterwards.
func New(c domain.Catalog, h domain.Hierarchy) *Service {
	products := AnnotateProducts(c.Products, h)

	categories := c.Categories
	if len(categories) == 0 {
		categories = BuildCategories(h)
	}

	return &Service{
		products:   products,
		brands:     c.Brands,
		categories: categories,
		smartFind:  c.SmartFind,
		stats:      ComputeStats(products, c.Brands, categories),
	}
}

// Search runs one filter query and applies the requested ordering.
func (s *Service) Search(spec domain.FilterSpec) []domain.Product {
	found := Filter(s.products, spec)
	if spec.SortBy == "" {
		return found
	}
	return Sort(found, spec.SortBy, spec.SortOrder)
}

// SmartSearch answers a hotspot query given in its wire form: a root
// category slug, a comma-joined tag list and a pipe-joined spec list.
// Malformed fragments are dropped by the codec, never reported. The
// parsed filters are returned alongside the products for echoing back.
func (s *Service) SmartSearch(category, rawTags, rawSpecs string) ([]domain.Product, domain.HotspotFilters) {
	filters := domain.HotspotFilters{
		Category: category,
		Tags:     querycodec.ParseTags(rawTags),
		Specs:    querycodec.ParseSpecs(rawSpecs),
	}
	found := Filter(s.products, domain.FilterSpec{
		Category: filters.Category,
		Tags:     filters.Tags,
		Specs:    filters.Specs,
	})
	return found, filters
}

func (s *Service) Products() []domain.Product { return s.products }

func (s *Service) ProductBySlug(slug string) (domain.Product, error) {
	const op = "Service.ProductBySlug"

	for _, p := range s.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return domain.Product{}, fmt.Errorf("%s: %q: %w", op, slug, domain.ErrNotFound)
}

// ARProducts lists the products carrying an augmented-reality model.
func (s *Service) ARProducts() []domain.Product {
	return Filter(s.products, domain.FilterSpec{HasAR: true})
}

func (s *Service) Brands() []domain.Brand { return s.brands }

func (s *Service) BrandBySlug(slug string) (domain.Brand, error) {
	const op = "Service.BrandBySlug"

	for _, b := range s.brands {
		if b.Slug == slug {
			return b, nil
		}
	}
	return domain.Brand{}, fmt.Errorf("%s: %q: %w", op, slug, domain.ErrNotFound)
}

// BrandByName resolves a brand by display name, case-insensitively.
// Products reference brands this way rather than by slug, so a renamed
// or duplicated display name silently breaks the relation; kept for
// compatibility with the existing data.
func (s *Service) BrandByName(name string) (domain.Brand, error) {
	const op = "Service.BrandByName"

	for _, b := range s.brands {
		if strings.EqualFold(b.Name, name) {
			return b, nil
		}
	}
	return domain.Brand{}, fmt.Errorf("%s: %q: %w", op, name, domain.ErrNotFound)
}

func (s *Service) Categories() []domain.Category { return s.categories }

func (s *Service) CategoryBySlug(slug string) (domain.Category, error) {
	const op = "Service.CategoryBySlug"

	for _, c := range s.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return domain.Category{}, fmt.Errorf("%s: %q: %w", op, slug, domain.ErrNotFound)
}

// ProductsByCategory matches against the classified root, so a root
// slug like "cylindres" finds products whose raw label is any of the
// root's subcategories.
func (s *Service) ProductsByCategory(rootSlug string) []domain.Product {
	return Filter(s.products, domain.FilterSpec{Category: rootSlug})
}

// ProductsByBrand matches the product brand name case-insensitively.
func (s *Service) ProductsByBrand(name string) []domain.Product {
	return Filter(s.products, domain.FilterSpec{Brand: name})
}

// CategoriesForBrand lists the root categories a brand has products in,
// in catalog category order.
func (s *Service) CategoriesForBrand(brandSlug string) ([]domain.Category, error) {
	const op = "Service.CategoriesForBrand"

	brand, err := s.BrandBySlug(brandSlug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	roots := make(map[string]struct{})
	for _, p := range s.ProductsByBrand(brand.Name) {
		roots[rootCategory(p)] = struct{}{}
	}

	var cats []domain.Category
	for _, c := range s.categories {
		if _, ok := roots[c.Slug]; ok {
			cats = append(cats, c)
		}
	}
	return cats, nil
}

// ProductCountByCategory counts products per root category slug.
func (s *Service) ProductCountByCategory() map[string]int {
	counts := make(map[string]int)
	for _, p := range s.products {
		counts[rootCategory(p)]++
	}
	return counts
}

func (s *Service) Stats() domain.Stats { return s.stats }

func (s *Service) SmartFind() domain.SmartFindConfig { return s.smartFind }
