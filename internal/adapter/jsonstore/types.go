package jsonstore

import (
	"github.com/hava-distribution/catalog/internal/core/domain"
	"github.com/hava-distribution/catalog/pkg/slug"
)

type (
	productJSON struct {
		ID          int                         `json:"id,omitempty"`
		Slug        string                      `json:"slug"`
		Name        string                      `json:"name"`
		Brand       string                      `json:"brand"`
		Category    string                      `json:"category"`
		Reference   string                      `json:"reference,omitempty"`
		Description string                      `json:"description,omitempty"`
		Images      []string                    `json:"images,omitempty"`
		Downloads   []downloadJSON              `json:"downloads,omitempty"`
		Specs       map[string]domain.SpecValue `json:"specs,omitempty"`
		Tags        []string                    `json:"tags,omitempty"`
		AR          *arJSON                     `json:"ar,omitempty"`
	}

	downloadJSON struct {
		Label string `json:"label"`
		URL   string `json:"url"`
	}

	arJSON struct {
		Model string `json:"model"`
		Type  string `json:"type,omitempty"`
	}

	brandJSON struct {
		Slug        string `json:"slug"`
		Name        string `json:"name"`
		Logo        string `json:"logo"`
		Website     string `json:"website,omitempty"`
		Description string `json:"description,omitempty"`
	}

	categoryJSON struct {
		Slug          string            `json:"slug"`
		Name          string            `json:"name"`
		Icon          string            `json:"icon,omitempty"`
		Description   string            `json:"description,omitempty"`
		Subcategories []subcategoryJSON `json:"subcategories,omitempty"`
	}

	subcategoryJSON struct {
		Name string `json:"name"`
		Slug string `json:"slug"`
	}

	smartFindJSON struct {
		Sectors []sectorJSON `json:"sectors"`
	}

	sectorJSON struct {
		Slug   string      `json:"slug"`
		Name   string      `json:"name"`
		Image  string      `json:"image,omitempty"`
		Scenes []sceneJSON `json:"scenes"`
	}

	sceneJSON struct {
		Slug     string        `json:"slug"`
		Name     string        `json:"name"`
		Image    string        `json:"image"`
		Hotspots []hotspotJSON `json:"hotspots"`
	}

	hotspotJSON struct {
		ID        string             `json:"id"`
		Title     string             `json:"title"`
		Shape     string             `json:"shape"`
		CoordsPct []float64          `json:"coordsPct"`
		Filters   hotspotFiltersJSON `json:"filters"`
	}

	hotspotFiltersJSON struct {
		Category string            `json:"category,omitempty"`
		Tags     []string          `json:"tags,omitempty"`
		Specs    map[string]string `json:"specs,omitempty"`
	}
)

func productsToDomain(ps []productJSON) []domain.Product {
	out := make([]domain.Product, 0, len(ps))
	for _, p := range ps {
		dp := domain.Product{
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
			dp.Downloads = append(dp.Downloads, domain.Download(d))
		}
		if p.AR != nil {
			dp.AR = &domain.ARModel{
				Model: p.AR.Model,
				Type:  domain.ARViewer(p.AR.Type),
			}
		}
		out = append(out, dp)
	}
	return out
}

func brandsToDomain(bs []brandJSON) []domain.Brand {
	out := make([]domain.Brand, 0, len(bs))
	for _, b := range bs {
		out = append(out, domain.Brand(b))
	}
	return out
}

func categoriesToDomain(cs []categoryJSON) []domain.Category {
	var out []domain.Category
	for _, c := range cs {
		dc := domain.Category{
			Slug:        c.Slug,
			Name:        displayName(c.Name, c.Slug),
			Icon:        c.Icon,
			Description: c.Description,
		}
		for _, sc := range c.Subcategories {
			dc.Subcategories = append(dc.Subcategories, domain.Subcategory(sc))
		}
		out = append(out, dc)
	}
	return out
}

// displayName falls back to a title rendered from the slug when a data
// entry ships no name.
func displayName(name, s string) string {
	if name != "" {
		return name
	}
	return slug.Title(s)
}

func smartFindToDomain(sf smartFindJSON) domain.SmartFindConfig {
	var cfg domain.SmartFindConfig
	for _, sec := range sf.Sectors {
		ds := domain.Sector{
			Slug:  sec.Slug,
			Name:  displayName(sec.Name, sec.Slug),
			Image: sec.Image,
		}
		for _, scene := range sec.Scenes {
			dScene := domain.Scene{
				Slug:  scene.Slug,
				Name:  displayName(scene.Name, scene.Slug),
				Image: scene.Image,
			}
			for _, h := range scene.Hotspots {
				dScene.Hotspots = append(dScene.Hotspots, domain.Hotspot{
					ID:        h.ID,
					Title:     h.Title,
					Shape:     domain.HotspotShape(h.Shape),
					CoordsPct: h.CoordsPct,
					Filters: domain.HotspotFilters{
						Category: h.Filters.Category,
						Tags:     h.Filters.Tags,
						Specs:    h.Filters.Specs,
					},
				})
			}
			ds.Scenes = append(ds.Scenes, dScene)
		}
		cfg.Sectors = append(cfg.Sectors, ds)
	}
	return cfg
}
