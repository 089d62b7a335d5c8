package httphandler

import (
	"net/http"

	"github.com/hava-distribution/catalog/internal/core/domain"
	"github.com/hava-distribution/catalog/internal/core/port"
	"github.com/hava-distribution/catalog/pkg/querycodec"
)

// GET /v1/smart-find
// GET /v1/smart-find/search?category=&tags=&specs=
//
// The search parameter shape is the wire contract with existing hotspot
// links and bookmarks and must stay as is.
type SmartFindHandler struct {
	config   port.SmartFindReader
	searcher port.ProductSearcher
	metrics  QueryMetrics
}

func RegisterSmartFind(
	mux *http.ServeMux,
	config port.SmartFindReader,
	searcher port.ProductSearcher,
	qm QueryMetrics,
) {
	if qm == nil {
		qm = noopMetrics{}
	}
	h := SmartFindHandler{config, searcher, qm}
	mux.HandleFunc("GET /v1/smart-find", h.GetConfig)
	mux.HandleFunc("GET /v1/smart-find/search", h.Search)
}

func (h SmartFindHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, toSmartFind(h.config.SmartFind()))
}

func (h SmartFindHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	found, filters := h.searcher.SmartSearch(
		q.Get("category"), q.Get("tags"), q.Get("specs"),
	)
	h.metrics.RecordQuery("smart_find", len(found))

	writeJSON(w, SearchResult{
		Products: toProducts(found),
		Total:    len(found),
		Filters: SearchFilters{
			Category: filters.Category,
			Tags:     emptyIfNil(filters.Tags),
			Specs:    filters.Specs,
		},
	})
}

func toSmartFind(cfg domain.SmartFindConfig) SmartFind {
	var out SmartFind
	for _, sec := range cfg.Sectors {
		hs := Sector{Slug: sec.Slug, Name: sec.Name, Image: sec.Image}
		for _, scene := range sec.Scenes {
			hScene := Scene{
				Slug:  scene.Slug,
				Name:  scene.Name,
				Image: scene.Image,
			}
			for _, spot := range scene.Hotspots {
				hScene.Hotspots = append(hScene.Hotspots, Hotspot{
					ID:        spot.ID,
					Title:     spot.Title,
					Shape:     string(spot.Shape),
					CoordsPct: spot.CoordsPct,
					Filters: HotspotFilters{
						Category: spot.Filters.Category,
						Tags:     spot.Filters.Tags,
						Specs:    spot.Filters.Specs,
					},
					ResultsQuery: querycodec.Values(
						spot.Filters.Category,
						spot.Filters.Tags,
						spot.Filters.Specs,
					).Encode(),
				})
			}
			hs.Scenes = append(hs.Scenes, hScene)
		}
		out.Sectors = append(out.Sectors, hs)
	}
	return out
}

// The original API always echoes tags as a list, never null.
func emptyIfNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
