package service

import (
	"log/slog"
	"strings"

	"github.com/hava-distribution/catalog/internal/core/domain"
)

// Filter returns the products matching every specified criterion. It is
// pure: the input is never mutated and surviving products keep their
// relative order. "No matches" is a valid empty result, not an error.
//
// An unexpected panic while matching fails closed: the incident is
// logged and an empty set is returned, since callers render empty
// results as a normal state.
func Filter(ps []domain.Product, spec domain.FilterSpec) (out []domain.Product) {
	const op = "service.Filter"

	defer func() {
		if r := recover(); r != nil {
			slog.Error("product filtering failed", "op", op, "reason", r)
			out = nil
		}
	}()

	out = make([]domain.Product, 0, len(ps))
	for _, p := range ps {
		if matches(p, spec) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p domain.Product, spec domain.FilterSpec) bool {
	if spec.Category != "" && rootCategory(p) != spec.Category {
		return false
	}
	if spec.Subcategory != "" && p.Category != spec.Subcategory {
		return false
	}
	if spec.Brand != "" && !strings.EqualFold(p.Brand, spec.Brand) {
		return false
	}
	if spec.Search != "" && !matchesSearch(p, spec.Search) {
		return false
	}
	if len(spec.Tags) > 0 && !matchesTags(p.Tags, spec.Tags) {
		return false
	}
	if len(spec.Specs) > 0 && !matchesSpecs(p.Specs, spec.Specs) {
		return false
	}
	if spec.HasAR && p.AR == nil {
		return false
	}
	if spec.HasDownloads && len(p.Downloads) == 0 {
		return false
	}
	return true
}

// rootCategory falls back to the raw label for unclassified products.
func rootCategory(p domain.Product) string {
	if p.Hierarchy != nil {
		return p.Hierarchy.Root
	}
	return p.Category
}

// matchesSearch is a case-insensitive substring test across the
// searchable fields; matching any one field is enough. Absent optional
// fields never match.
func matchesSearch(p domain.Product, term string) bool {
	term = strings.ToLower(term)
	for _, field := range []string{
		p.Name, p.Description, p.Brand, p.Category, p.Reference,
	} {
		if field == "" {
			continue
		}
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// matchesTags requires every filter tag to be a case-insensitive
// substring of at least one product tag. A product without tags never
// matches a non-empty tag filter.
func matchesTags(productTags, filterTags []string) bool {
	if len(productTags) == 0 {
		return false
	}
	for _, ft := range filterTags {
		ft = strings.ToLower(ft)
		found := false
		for _, pt := range productTags {
			if strings.Contains(strings.ToLower(pt), ft) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// matchesSpecs requires every filter key to exist on the product with a
// value whose string form contains the filter value, case-insensitive.
func matchesSpecs(productSpecs map[string]domain.SpecValue, filterSpecs map[string]string) bool {
	if len(productSpecs) == 0 {
		return false
	}
	for key, want := range filterSpecs {
		have, ok := productSpecs[key]
		if !ok {
			return false
		}
		if !strings.Contains(
			strings.ToLower(have.String()), strings.ToLower(want),
		) {
			return false
		}
	}
	return true
}
