package httphandler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hava-distribution/catalog/internal/adapter/httphandler"
	"github.com/hava-distribution/catalog/internal/core/domain"
	"github.com/hava-distribution/catalog/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMux(t *testing.T) *http.ServeMux {
	t.Helper()

	catalog := domain.Catalog{
		Products: []domain.Product{
			{
				ID:          1,
				Slug:        "serrure-multipoint-securite",
				Name:        "Serrure Multipoint Sécurité",
				Brand:       "Yale",
				Category:    "Serrures multipoints",
				Reference:   "MPS-2024",
				Description: "Serrure multipoint haute sécurité",
				Specs: map[string]domain.SpecValue{
					"entraxe": domain.StringSpec("70 mm"),
				},
				Tags: []string{"exterieur", "securite"},
				AR: &domain.ARModel{
					Model: "/models/serrure.usdz",
					Type:  domain.ARViewerUSDZ,
				},
				Downloads: []domain.Download{
					{Label: "Fiche technique", URL: "/docs/mps.pdf"},
				},
			},
			{
				ID:       2,
				Slug:     "cylindre-euro-pro",
				Name:     "Cylindre Européen Pro",
				Brand:    "Vachette",
				Category: "Cylindres avec passes",
				Tags:     []string{"securite"},
			},
		},
		Brands: []domain.Brand{
			{Slug: "yale", Name: "Yale", Logo: "/brands/yale.svg"},
			{Slug: "vachette", Name: "Vachette", Logo: "/brands/vachette.svg"},
		},
		SmartFind: domain.SmartFindConfig{
			Sectors: []domain.Sector{
				{
					Slug: "hotellerie",
					Name: "Hôtellerie",
					Scenes: []domain.Scene{
						{
							Slug:  "chambre",
							Name:  "Chambre",
							Image: "/smartfind/chambre.jpg",
							Hotspots: []domain.Hotspot{
								{
									ID:        "porte",
									Title:     "Porte d'entrée",
									Shape:     domain.HotspotRect,
									CoordsPct: []float64{10, 20, 30, 40},
									Filters: domain.HotspotFilters{
										Category: "serrures",
										Tags:     []string{"securite"},
									},
								},
							},
						},
					},
				},
			},
		},
	}

	svc := service.New(catalog, domain.DefaultHierarchy)

	mux := http.NewServeMux()
	httphandler.RegisterProducts(mux, svc, svc, nil)
	httphandler.RegisterBrands(mux, svc)
	httphandler.RegisterCategories(mux, svc, nil)
	httphandler.RegisterStats(mux, svc)
	httphandler.RegisterSmartFind(mux, svc, svc, nil)
	return mux
}

func get(t *testing.T, mux *http.ServeMux, target string, v any) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if v != nil && rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
	}
	return rec
}

func TestGetProducts(t *testing.T) {
	mux := newMux(t)

	t.Run("NoFilters", func(t *testing.T) {
		var got httphandler.ProductList
		rec := get(t, mux, "/v1/products", &got)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Equal(t, 2, got.Total)
	})

	t.Run("SearchTerm", func(t *testing.T) {
		var got httphandler.ProductList
		get(t, mux, "/v1/products?q=MULTIPOINT", &got)

		require.Equal(t, 1, got.Total)
		assert.Equal(t, "serrure-multipoint-securite", got.Products[0].Slug)
	})

	t.Run("RootCategoryFilter", func(t *testing.T) {
		var got httphandler.ProductList
		get(t, mux, "/v1/products?category=cylindres", &got)

		require.Equal(t, 1, got.Total)
		assert.Equal(t, "cylindre-euro-pro", got.Products[0].Slug)
		require.NotNil(t, got.Products[0].Hierarchy)
		assert.Equal(t, "cylindres", got.Products[0].Hierarchy.Root)
	})

	t.Run("BooleanFlags", func(t *testing.T) {
		var got httphandler.ProductList
		get(t, mux, "/v1/products?ar=true&docs=true", &got)

		require.Equal(t, 1, got.Total)
		assert.Equal(t, "serrure-multipoint-securite", got.Products[0].Slug)
	})

	t.Run("SortParams", func(t *testing.T) {
		var got httphandler.ProductList
		get(t, mux, "/v1/products?sort=newest&order=desc", &got)

		require.Equal(t, 2, got.Total)
		assert.Equal(t, "cylindre-euro-pro", got.Products[0].Slug)
	})

	t.Run("UnknownSortFallsBackToName", func(t *testing.T) {
		var got httphandler.ProductList
		get(t, mux, "/v1/products?sort=bogus", &got)

		require.Equal(t, 2, got.Total)
		assert.Equal(t, "cylindre-euro-pro", got.Products[0].Slug)
	})

	t.Run("NoMatchesIsEmptyNotError", func(t *testing.T) {
		var got httphandler.ProductList
		rec := get(t, mux, "/v1/products?q=introuvable", &got)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Zero(t, got.Total)
		assert.NotNil(t, got.Products)
	})
}

func TestGetProduct(t *testing.T) {
	mux := newMux(t)

	t.Run("Found", func(t *testing.T) {
		var got httphandler.Product
		rec := get(t, mux, "/v1/products/cylindre-euro-pro", &got)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Cylindre Européen Pro", got.Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		rec := get(t, mux, "/v1/products/inconnu", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGetARProducts(t *testing.T) {
	mux := newMux(t)

	var got httphandler.ProductList
	get(t, mux, "/v1/ar/products", &got)

	require.Equal(t, 1, got.Total)
	require.NotNil(t, got.Products[0].AR)
	assert.Equal(t, "usdz", got.Products[0].AR.Type)
}

func TestBrands(t *testing.T) {
	mux := newMux(t)

	t.Run("List", func(t *testing.T) {
		var got []httphandler.Brand
		get(t, mux, "/v1/brands", &got)
		assert.Len(t, got, 2)
	})

	t.Run("BySlug", func(t *testing.T) {
		var got httphandler.Brand
		get(t, mux, "/v1/brands/yale", &got)
		assert.Equal(t, "Yale", got.Name)
	})

	t.Run("Categories", func(t *testing.T) {
		var got []httphandler.Category
		get(t, mux, "/v1/brands/yale/categories", &got)

		require.Len(t, got, 1)
		assert.Equal(t, "serrures", got[0].Slug)
	})

	t.Run("UnknownBrand", func(t *testing.T) {
		rec := get(t, mux, "/v1/brands/inconnu", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = get(t, mux, "/v1/brands/inconnu/categories", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCategories(t *testing.T) {
	mux := newMux(t)

	t.Run("ListComesFromHierarchy", func(t *testing.T) {
		var got []httphandler.Category
		get(t, mux, "/v1/categories", &got)

		assert.Len(t, got, len(domain.DefaultHierarchy))
		assert.Equal(t, "serrures", got[0].Slug)
		assert.NotEmpty(t, got[0].Subcategories)
	})

	t.Run("Products", func(t *testing.T) {
		var got httphandler.ProductList
		get(t, mux, "/v1/categories/cylindres/products", &got)

		require.Equal(t, 1, got.Total)
		assert.Equal(t, "cylindre-euro-pro", got.Products[0].Slug)
	})
}

func TestStats(t *testing.T) {
	mux := newMux(t)

	var got httphandler.Stats
	get(t, mux, "/v1/stats", &got)

	assert.Equal(t, 2, got.TotalProducts)
	assert.Equal(t, 2, got.TotalBrands)
	assert.Equal(t, 1, got.ProductsWithAR)
	assert.Equal(t, 1, got.ProductsWithDownloads)
	assert.Len(t, got.BrandDistribution, 2)
}

func TestSmartFind(t *testing.T) {
	mux := newMux(t)

	t.Run("ConfigCarriesResultsQuery", func(t *testing.T) {
		var got httphandler.SmartFind
		get(t, mux, "/v1/smart-find", &got)

		require.Len(t, got.Sectors, 1)
		hotspots := got.Sectors[0].Scenes[0].Hotspots
		require.Len(t, hotspots, 1)
		assert.Equal(t, "category=serrures&tags=securite", hotspots[0].ResultsQuery)
	})

	t.Run("SearchWireContract", func(t *testing.T) {
		var got httphandler.SearchResult
		get(t, mux, "/v1/smart-find/search?category=serrures&tags=secur,&specs=entraxe:70", &got)

		require.Equal(t, 1, got.Total)
		assert.Equal(t, "serrure-multipoint-securite", got.Products[0].Slug)
		assert.Equal(t, "serrures", got.Filters.Category)
		assert.Equal(t, []string{"secur"}, got.Filters.Tags)
		assert.Equal(t, map[string]string{"entraxe": "70"}, got.Filters.Specs)
	})

	t.Run("SearchWithoutParamsReturnsEverything", func(t *testing.T) {
		var got httphandler.SearchResult
		get(t, mux, "/v1/smart-find/search", &got)

		assert.Equal(t, 2, got.Total)
		assert.NotNil(t, got.Filters.Tags)
		assert.NotNil(t, got.Filters.Specs)
	})

	t.Run("MalformedSpecsSegmentIgnored", func(t *testing.T) {
		var got httphandler.SearchResult
		get(t, mux, "/v1/smart-find/search?specs=invalid", &got)

		assert.Equal(t, 2, got.Total)
		assert.Empty(t, got.Filters.Specs)
	})
}
