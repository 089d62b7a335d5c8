package service

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/hava-distribution/catalog/internal/core/domain"
)

// Sort returns a new ordering of ps by the given key; the input is not
// mutated. String keys compare with French collation to keep accented
// labels in dictionary order. The sort is stable, so equal keys retain
// their relative input order, and descending negates the ascending
// comparator rather than reversing the result.
func Sort(ps []domain.Product, key domain.SortKey, order domain.SortOrder) []domain.Product {
	out := make([]domain.Product, len(ps))
	copy(out, ps)

	cmp := comparator(key)
	if order == domain.SortDesc {
		asc := cmp
		cmp = func(a, b domain.Product) int { return -asc(a, b) }
	}

	sort.SliceStable(out, func(i, j int) bool {
		return cmp(out[i], out[j]) < 0
	})
	return out
}

func comparator(key domain.SortKey) func(a, b domain.Product) int {
	switch key {
	case domain.SortByBrand:
		c := newCollator()
		return func(a, b domain.Product) int {
			return c.CompareString(a.Brand, b.Brand)
		}
	case domain.SortByCategory:
		c := newCollator()
		return func(a, b domain.Product) int {
			return c.CompareString(a.Category, b.Category)
		}
	case domain.SortByNewest:
		// Missing ids compare as 0, clustering unset products at
		// the oldest end. Ascending means oldest first.
		return func(a, b domain.Product) int {
			switch {
			case a.ID < b.ID:
				return -1
			case a.ID > b.ID:
				return 1
			default:
				return 0
			}
		}
	default:
		c := newCollator()
		return func(a, b domain.Product) int {
			return c.CompareString(a.Name, b.Name)
		}
	}
}

// Collators carry internal buffers and are not safe for concurrent use,
// so each sort builds its own.
func newCollator() *collate.Collator {
	return collate.New(language.French)
}
