package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hava-distribution/catalog/internal/core/domain"
	"github.com/hava-distribution/catalog/internal/core/port"
)

// QueryMetrics records filter query outcomes for observability.
type QueryMetrics interface {
	RecordQuery(endpoint string, results int)
}

type noopMetrics struct{}

func (noopMetrics) RecordQuery(string, int) {}

// GET /v1/products?q=&category=&subcategory=&brand=&ar=&docs=&sort=&order=
// GET /v1/products/{slug}
// GET /v1/ar/products
type ProductsHandler struct {
	searcher port.ProductSearcher
	reader   port.ProductReader
	metrics  QueryMetrics
}

func RegisterProducts(
	mux *http.ServeMux,
	searcher port.ProductSearcher,
	reader port.ProductReader,
	qm QueryMetrics,
) {
	if qm == nil {
		qm = noopMetrics{}
	}
	h := ProductsHandler{searcher, reader, qm}
	mux.HandleFunc("GET /v1/products", h.GetProducts)
	mux.HandleFunc("GET /v1/products/{slug}", h.GetProduct)
	mux.HandleFunc("GET /v1/ar/products", h.GetARProducts)
}

func (h ProductsHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	spec := domain.FilterSpec{
		Search:       q.Get("q"),
		Category:     q.Get("category"),
		Subcategory:  q.Get("subcategory"),
		Brand:        q.Get("brand"),
		HasAR:        q.Get("ar") == "true",
		HasDownloads: q.Get("docs") == "true",
		SortBy:       domain.ParseSortKey(q.Get("sort")),
		SortOrder:    domain.ParseSortOrder(q.Get("order")),
	}

	found := h.searcher.Search(spec)
	h.metrics.RecordQuery("products", len(found))

	writeJSON(w, ProductList{Products: toProducts(found), Total: len(found)})
}

func (h ProductsHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.reader.ProductBySlug(r.PathValue("slug"))
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, toProduct(p))
}

func (h ProductsHandler) GetARProducts(w http.ResponseWriter, r *http.Request) {
	found := h.reader.ARProducts()
	writeJSON(w, ProductList{Products: toProducts(found), Total: len(found)})
}

// GET /v1/brands
// GET /v1/brands/{slug}
// GET /v1/brands/{slug}/categories
type BrandsHandler struct {
	reader port.BrandReader
}

func RegisterBrands(mux *http.ServeMux, reader port.BrandReader) {
	h := BrandsHandler{reader}
	mux.HandleFunc("GET /v1/brands", h.GetBrands)
	mux.HandleFunc("GET /v1/brands/{slug}", h.GetBrand)
	mux.HandleFunc("GET /v1/brands/{slug}/categories", h.GetBrandCategories)
}

func (h BrandsHandler) GetBrands(w http.ResponseWriter, r *http.Request) {
	brands := h.reader.Brands()
	out := make([]Brand, 0, len(brands))
	for _, b := range brands {
		out = append(out, toBrand(b))
	}
	writeJSON(w, out)
}

func (h BrandsHandler) GetBrand(w http.ResponseWriter, r *http.Request) {
	b, err := h.reader.BrandBySlug(r.PathValue("slug"))
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, toBrand(b))
}

func (h BrandsHandler) GetBrandCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.reader.CategoriesForBrand(r.PathValue("slug"))
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, toCategories(cats))
}

// GET /v1/categories
// GET /v1/categories/{slug}
// GET /v1/categories/{slug}/products
type CategoriesHandler struct {
	reader  port.CategoryReader
	metrics QueryMetrics
}

func RegisterCategories(mux *http.ServeMux, reader port.CategoryReader, qm QueryMetrics) {
	if qm == nil {
		qm = noopMetrics{}
	}
	h := CategoriesHandler{reader, qm}
	mux.HandleFunc("GET /v1/categories", h.GetCategories)
	mux.HandleFunc("GET /v1/categories/{slug}", h.GetCategory)
	mux.HandleFunc("GET /v1/categories/{slug}/products", h.GetCategoryProducts)
}

func (h CategoriesHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, toCategories(h.reader.Categories()))
}

func (h CategoriesHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	c, err := h.reader.CategoryBySlug(r.PathValue("slug"))
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, toCategory(c))
}

func (h CategoriesHandler) GetCategoryProducts(w http.ResponseWriter, r *http.Request) {
	found := h.reader.ProductsByCategory(r.PathValue("slug"))
	h.metrics.RecordQuery("category_products", len(found))
	writeJSON(w, ProductList{Products: toProducts(found), Total: len(found)})
}

// GET /v1/stats
type StatsHandler struct {
	reader port.StatsReader
}

func RegisterStats(mux *http.ServeMux, reader port.StatsReader) {
	h := StatsHandler{reader}
	mux.HandleFunc("GET /v1/stats", h.GetStats)
}

func (h StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, toStats(h.reader.Stats()))
}

func writeJSON(w http.ResponseWriter, v any) {
	const op = "httphandler.writeJSON"

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response body", "op", op, "err", err)
	}
}

func writeLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}
