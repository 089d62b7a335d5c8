package service

import (
	"github.com/hava-distribution/catalog/internal/core/domain"
	"github.com/hava-distribution/catalog/pkg/slug"
)

// Classify maps a product's raw category label to its place in the
// hierarchy. The table is scanned in declaration order and the first
// root listing the label exactly wins; no case folding or normalization
// is applied to the match. Labels no entry claims land in the catch-all
// root with the label kept as subcategory. Total: always returns a
// triple, never fails.
func Classify(p domain.Product, h domain.Hierarchy) domain.CategoryHierarchy {
	for _, entry := range h {
		for _, label := range entry.Subcategories {
			if label == p.Category {
				return domain.CategoryHierarchy{
					Root:        entry.Slug,
					Parent:      entry.Name,
					Subcategory: p.Category,
				}
			}
		}
	}
	return domain.CategoryHierarchy{
		Root:        domain.FallbackRootSlug,
		Parent:      domain.FallbackRootName,
		Subcategory: p.Category,
	}
}

// AnnotateProducts attaches a classification to every product, once per
// catalog load. The input slice is not mutated.
func AnnotateProducts(ps []domain.Product, h domain.Hierarchy) []domain.Product {
	annotated := make([]domain.Product, len(ps))
	for i, p := range ps {
		ch := Classify(p, h)
		p.Hierarchy = &ch
		annotated[i] = p
	}
	return annotated
}

// BuildCategories renders the hierarchy table as the category structure
// the navigation consumes, with URL slugs for subcategory links.
func BuildCategories(h domain.Hierarchy) []domain.Category {
	cats := make([]domain.Category, 0, len(h))
	for _, entry := range h {
		subs := make([]domain.Subcategory, 0, len(entry.Subcategories))
		for _, label := range entry.Subcategories {
			subs = append(subs, domain.Subcategory{
				Name: label,
				Slug: slug.Make(label),
			})
		}
		cats = append(cats, domain.Category{
			Slug:          entry.Slug,
			Name:          entry.Name,
			Icon:          entry.Icon,
			Subcategories: subs,
		})
	}
	return cats
}
