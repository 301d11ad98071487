package registry

// Territory identifies a transmission and distribution utility (TDSP). The
// TDSP owns the wires for a service area regardless of which retail plan a
// customer picks, so every city maps to exactly one territory.
type Territory struct {
	ID   string
	Name string
}

// territories is the fixed TDSP table for the deregulated Texas market.
var territories = map[string]Territory{
	"oncor":       {ID: "oncor", Name: "Oncor Electric Delivery"},
	"centerpoint": {ID: "centerpoint", Name: "CenterPoint Energy"},
	"aep-central": {ID: "aep-central", Name: "AEP Texas Central"},
	"aep-north":   {ID: "aep-north", Name: "AEP Texas North"},
	"tnmp":        {ID: "tnmp", Name: "Texas-New Mexico Power"},
	"lpl":         {ID: "lpl", Name: "Lubbock Power & Light"},
}

// TerritoryByID looks up a territory by its identifier.
func TerritoryByID(id string) (Territory, bool) {
	t, ok := territories[id]

	return t, ok
}

// TerritoryName returns the display name for a territory ID, falling back to
// the raw ID when unknown.
func TerritoryName(id string) string {
	if t, ok := territories[id]; ok {
		return t.Name
	}

	return id
}
