package httphandler

import "github.com/hava-distribution/catalog/internal/core/domain"

type (
	Product struct {
		ID          int                         `json:"id,omitempty"`
		Slug        string                      `json:"slug"`
		Name        string                      `json:"name"`
		Brand       string                      `json:"brand"`
		Category    string                      `json:"category"`
		Reference   string                      `json:"reference,omitempty"`
		Description string                      `json:"description,omitempty"`
		Images      []string                    `json:"images,omitempty"`
		Downloads   []Download                  `json:"downloads,omitempty"`
		Specs       map[string]domain.SpecValue `json:"specs,omitempty"`
		Tags        []string                    `json:"tags,omitempty"`
		AR          *ARModel                    `json:"ar,omitempty"`
		Hierarchy   *CategoryHierarchy          `json:"categoryHierarchy,omitempty"`
	}

	Download struct {
		Label string `json:"label"`
		URL   string `json:"url"`
	}

	ARModel struct {
		Model string `json:"model"`
		Type  string `json:"type,omitempty"`
	}

	CategoryHierarchy struct {
		Root        string `json:"root"`
		Parent      string `json:"parent"`
		Subcategory string `json:"subcategory"`
	}

	Brand struct {
		Slug        string `json:"slug"`
		Name        string `json:"name"`
		Logo        string `json:"logo"`
		Website     string `json:"website,omitempty"`
		Description string `json:"description,omitempty"`
	}

	Category struct {
		Slug          string        `json:"slug"`
		Name          string        `json:"name"`
		Icon          string        `json:"icon,omitempty"`
		Description   string        `json:"description,omitempty"`
		Subcategories []Subcategory `json:"subcategories,omitempty"`
	}

	Subcategory struct {
		Name string `json:"name"`
		Slug string `json:"slug"`
	}

	ProductList struct {
		Products []Product `json:"products"`
		Total    int       `json:"total"`
	}

	// SearchResult is the smart-find wire response: the matching
	// products plus the filters as parsed, echoed back.
	SearchResult struct {
		Products []Product     `json:"products"`
		Total    int           `json:"total"`
		Filters  SearchFilters `json:"filters"`
	}

	SearchFilters struct {
		Category string            `json:"category,omitempty"`
		Tags     []string          `json:"tags"`
		Specs    map[string]string `json:"specs"`
	}

	Stats struct {
		TotalProducts         int                 `json:"totalProducts"`
		TotalBrands           int                 `json:"totalBrands"`
		TotalCategories       int                 `json:"totalCategories"`
		ProductsWithAR        int                 `json:"productsWithAR"`
		ProductsWithDownloads int                 `json:"productsWithDownloads"`
		BrandDistribution     []DistributionEntry `json:"brandDistribution"`
		CategoryDistribution  []DistributionEntry `json:"categoryDistribution"`
	}

	DistributionEntry struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	SmartFind struct {
		Sectors []Sector `json:"sectors"`
	}

	Sector struct {
		Slug   string  `json:"slug"`
		Name   string  `json:"name"`
		Image  string  `json:"image,omitempty"`
		Scenes []Scene `json:"scenes"`
	}

	Scene struct {
		Slug     string    `json:"slug"`
		Name     string    `json:"name"`
		Image    string    `json:"image"`
		Hotspots []Hotspot `json:"hotspots"`
	}

	Hotspot struct {
		ID        string         `json:"id"`
		Title     string         `json:"title"`
		Shape     string         `json:"shape"`
		CoordsPct []float64      `json:"coordsPct"`
		Filters   HotspotFilters `json:"filters"`
		// ResultsQuery is the ready-made query string for the
		// hotspot's results link.
		ResultsQuery string `json:"resultsQuery,omitempty"`
	}

	HotspotFilters struct {
		Category string            `json:"category,omitempty"`
		Tags     []string          `json:"tags,omitempty"`
		Specs    map[string]string `json:"specs,omitempty"`
	}
)

func toProduct(p domain.Product) Product {
	hp := Product{
		ID:          p.ID,
		Slug:        p.Slug,
		Name:        p.Name,
		Brand:       p.Brand,
		Category:    p.Category,
		Reference:   p.Reference,
		Description: p.Description,
		Images:      p.Images,
		Specs:       p.Specs,
		Tags:        p.Tags,
	}
	for _, d := range p.Downloads {
		hp.Downloads = append(hp.Downloads, Download(d))
	}
	if p.AR != nil {
		hp.AR = &ARModel{Model: p.AR.Model, Type: string(p.AR.Type)}
	}
	if p.Hierarchy != nil {
		hp.Hierarchy = &CategoryHierarchy{
			Root:        p.Hierarchy.Root,
			Parent:      p.Hierarchy.Parent,
			Subcategory: p.Hierarchy.Subcategory,
		}
	}
	return hp
}

func toProducts(ps []domain.Product) []Product {
	out := make([]Product, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProduct(p))
	}
	return out
}

func toBrand(b domain.Brand) Brand { return Brand(b) }

func toCategory(c domain.Category) Category {
	hc := Category{
		Slug:        c.Slug,
		Name:        c.Name,
		Icon:        c.Icon,
		Description: c.Description,
	}
	for _, sc := range c.Subcategories {
		hc.Subcategories = append(hc.Subcategories, Subcategory(sc))
	}
	return hc
}

func toCategories(cs []domain.Category) []Category {
	out := make([]Category, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCategory(c))
	}
	return out
}

func toStats(s domain.Stats) Stats {
	hs := Stats{
		TotalProducts:         s.TotalProducts,
		TotalBrands:           s.TotalBrands,
		TotalCategories:       s.TotalCategories,
		ProductsWithAR:        s.ProductsWithAR,
		ProductsWithDownloads: s.ProductsWithDownloads,
	}
	for _, e := range s.BrandDistribution {
		hs.BrandDistribution = append(hs.BrandDistribution, DistributionEntry(e))
	}
	for _, e := range s.CategoryDistribution {
		hs.CategoryDistribution = append(hs.CategoryDistribution, DistributionEntry(e))
	}
	return hs
}
