package domain

type (
	// SmartFindConfig is the guided navigation tree: business sectors,
	// each with photographed scenes carrying clickable hotspots.
	SmartFindConfig struct {
		Sectors []Sector
	}

	Sector struct {
		Slug   string
		Name   string
		Image  string
		Scenes []Scene
	}

	Scene struct {
		Slug     string
		Name     string
		Image    string
		Hotspots []Hotspot
	}

	// Hotspot binds a visual region to a predefined filter query.
	// CoordsPct is x/y/w/h for rect shapes, cx/cy/r for circles,
	// all in percent of the scene image.
	Hotspot struct {
		ID        string
		Title     string
		Shape     HotspotShape
		CoordsPct []float64
		Filters   HotspotFilters
	}

	HotspotFilters struct {
		Category string
		Tags     []string
		Specs    map[string]string
	}
)

type HotspotShape string

const (
	HotspotRect   HotspotShape = "rect"
	HotspotCircle HotspotShape = "circle"
)
