package registry

// City is one deregulated market city. Records are immutable after load and
// referenced by slug everywhere else in the engine.
type City struct {
	// Slug is the URL identifier, e.g. "fort-worth".
	Slug string `yaml:"slug" mapstructure:"slug" validate:"required"`
	// Name is the display name, e.g. "Fort Worth".
	Name string `yaml:"name" mapstructure:"name" validate:"required"`
	// Tier buckets the city by SEO importance: 1 = major metro, 3 = small town.
	Tier int `yaml:"tier" mapstructure:"tier" validate:"required,min=1,max=3"`
	// PriorityWeight scales sitemap priority and plan ordering, 0..1.
	PriorityWeight float64 `yaml:"priority_weight" mapstructure:"priority_weight" validate:"gte=0,lte=1"`
	// Population is the most recent census estimate.
	Population int `yaml:"population" mapstructure:"population" validate:"gte=0"`
	// TerritoryID names the TDSP that owns delivery for the city.
	TerritoryID string `yaml:"territory" mapstructure:"territory" validate:"required"`
}

// TerritoryName returns the display name of the city's TDSP.
func (c City) TerritoryName() string {
	return TerritoryName(c.TerritoryID)
}

// HubPath returns the city's filterless landing path, e.g. "/texas/dallas/".
func (c City) HubPath() string {
	return PathPrefix + c.Slug + "/"
}

// PathPrefix is the fixed URL prefix under which every faceted page lives.
const PathPrefix = "/texas/"
