package domain

import "errors"

// ErrNotFound is returned by catalog lookups for unknown slugs.
var ErrNotFound = errors.New("not found")

type (
	// Product is immutable once loaded. Slug is the primary key across
	// all lookups. Category is the raw human-authored label; Hierarchy
	// is attached once by the classifier at load time.
	Product struct {
		ID          int
		Slug        string
		Name        string
		Brand       string
		Category    string
		Reference   string
		Description string
		Images      []string
		Downloads   []Download
		Specs       map[string]SpecValue
		Tags        []string
		AR          *ARModel
		Hierarchy   *CategoryHierarchy
	}

	Download struct {
		Label string
		URL   string
	}

	ARModel struct {
		Model string
		Type  ARViewer
	}

	// CategoryHierarchy locates a product in the category tree.
	// Subcategory always equals the raw category label.
	CategoryHierarchy struct {
		Root        string
		Parent      string
		Subcategory string
	}
)

type ARViewer string

const (
	ARViewerWebXR   ARViewer = "webxr"
	ARViewerUSDZ    ARViewer = "usdz"
	ARViewer8thWall ARViewer = "8thwall"
)

// Brand is referenced from products by display name, not slug.
type Brand struct {
	Slug        string
	Name        string
	Logo        string
	Website     string
	Description string
}

type (
	// Category is a root-level bucket with the flat labels it groups.
	Category struct {
		Slug          string
		Name          string
		Icon          string
		Description   string
		Subcategories []Subcategory
	}

	Subcategory struct {
		Name string
		Slug string
	}
)

// Catalog is the whole data set loaded per process start.
type Catalog struct {
	Products   []Product
	Brands     []Brand
	Categories []Category
	SmartFind  SmartFindConfig
}
