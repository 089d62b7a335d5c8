package service

import (
	"sort"

	"github.com/hava-distribution/catalog/internal/core/domain"
)

// ComputeStats derives display counts from one catalog snapshot in a
// single pass over the products. Distribution ties keep encounter
// order. Nothing is mutated.
func ComputeStats(
	ps []domain.Product, bs []domain.Brand, cs []domain.Category,
) domain.Stats {
	stats := domain.Stats{
		TotalProducts:   len(ps),
		TotalBrands:     len(bs),
		TotalCategories: len(cs),
	}

	byBrand := newDistribution()
	byCategory := newDistribution()

	for _, p := range ps {
		if p.AR != nil {
			stats.ProductsWithAR++
		}
		if len(p.Downloads) > 0 {
			stats.ProductsWithDownloads++
		}
		byBrand.add(p.Brand)
		byCategory.add(rootCategory(p))
	}

	stats.BrandDistribution = byBrand.sorted()
	stats.CategoryDistribution = byCategory.sorted()
	return stats
}

// distribution counts per name while remembering first-seen order, so
// the count-descending sort can break ties deterministically.
type distribution struct {
	counts map[string]int
	order  []string
}

func newDistribution() *distribution {
	return &distribution{counts: make(map[string]int)}
}

func (d *distribution) add(name string) {
	if _, seen := d.counts[name]; !seen {
		d.order = append(d.order, name)
	}
	d.counts[name]++
}

func (d *distribution) sorted() []domain.DistributionEntry {
	entries := make([]domain.DistributionEntry, 0, len(d.order))
	for _, name := range d.order {
		entries = append(entries, domain.DistributionEntry{
			Name:  name,
			Count: d.counts[name],
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}
