package domain

type SortKey string

const (
	SortByName     SortKey = "name"
	SortByBrand    SortKey = "brand"
	SortByCategory SortKey = "category"
	SortByNewest   SortKey = "newest"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortKey maps a raw query value to a sort key. Unknown values fall
// back to name ordering instead of failing.
func ParseSortKey(raw string) SortKey {
	switch SortKey(raw) {
	case SortByBrand, SortByCategory, SortByNewest:
		return SortKey(raw)
	default:
		return SortByName
	}
}

func ParseSortOrder(raw string) SortOrder {
	if SortOrder(raw) == SortDesc {
		return SortDesc
	}
	return SortAsc
}

// FilterSpec describes one catalog query. The zero value matches every
// product; absent fields mean "no constraint" and no combination of
// fields is invalid.
type FilterSpec struct {
	Category     string
	Subcategory  string
	Brand        string
	Search       string
	Tags         []string
	Specs        map[string]string
	HasAR        bool
	HasDownloads bool
	SortBy       SortKey
	SortOrder    SortOrder
}

// IsZero reports whether the spec constrains nothing and asks for no
// ordering.
func (f FilterSpec) IsZero() bool {
	return f.Category == "" && f.Subcategory == "" && f.Brand == "" &&
		f.Search == "" && len(f.Tags) == 0 && len(f.Specs) == 0 &&
		!f.HasAR && !f.HasDownloads && f.SortBy == "" && f.SortOrder == ""
}
