package fare

import (
	"sort"
	"strings"
)

// Route is one undirected edge of the location graph.
type Route struct {
	A  string
	B  string
	Km float64
}

// RouteTable is an immutable lookup of canonical route -> distance.
// Keys are order-independent: the lexicographically smaller location
// name always comes first, so A->B and B->A resolve identically.
type RouteTable struct {
	distances map[string]float64
	byLower   map[string]string
	locations []string
	defaultKm float64
}

// NewRouteTable builds a RouteTable from the given routes. Routes
// absent from the table fall back to defaultKm. The table is never
// mutated after construction.
func NewRouteTable(routes []Route, defaultKm float64) *RouteTable {
	t := &RouteTable{
		distances: make(map[string]float64, len(routes)),
		byLower:   make(map[string]string),
		defaultKm: defaultKm,
	}

	for _, r := range routes {
		t.distances[routeKey(r.A, r.B)] = r.Km
		for _, name := range []string{r.A, r.B} {
			if _, ok := t.byLower[strings.ToLower(name)]; !ok {
				t.byLower[strings.ToLower(name)] = name
				t.locations = append(t.locations, name)
			}
		}
	}
	sort.Strings(t.locations)

	return t
}

// routeKey joins two canonical names with the smaller one first.
func routeKey(a, b string) string {
	if a < b {
		return a + "-" + b
	}
	return b + "-" + a
}

// Resolve matches a location name case-insensitively against the known
// set and returns its canonical spelling.
func (t *RouteTable) Resolve(name string) (string, bool) {
	canonical, ok := t.byLower[strings.ToLower(strings.TrimSpace(name))]
	return canonical, ok
}

// Distance returns the distance in km between two canonical locations,
// falling back to the default distance for unmapped pairs.
func (t *RouteTable) Distance(a, b string) float64 {
	if km, ok := t.distances[routeKey(a, b)]; ok {
		return km
	}
	return t.defaultKm
}

// Locations returns the closed, sorted set of known location names.
func (t *RouteTable) Locations() []string {
	out := make([]string, len(t.locations))
	copy(out, t.locations)
	return out
}

// DefaultDistanceKm is used for location pairs without a table entry.
const DefaultDistanceKm = 15.0

// DefaultRoutes returns the built-in Chennai route network.
func DefaultRoutes() []Route {
	return []Route{
		// Major hubs.
		{"Adyar", "AnnaNagar", 14.0},
		{"Adyar", "Guindy", 7.0},
		{"Adyar", "Marina", 8.0},
		{"Adyar", "Sholinganallur", 14.0},
		{"Adyar", "Tambaram", 18.0},
		{"Adyar", "TNagar", 6.0},
		{"Adyar", "Velachery", 5.0},
		{"AnnaNagar", "Guindy", 11.0},
		{"AnnaNagar", "Marina", 12.0},
		{"AnnaNagar", "Sholinganallur", 26.0},
		{"AnnaNagar", "Tambaram", 22.0},
		{"AnnaNagar", "TNagar", 9.0},
		{"AnnaNagar", "Velachery", 16.0},
		{"Guindy", "Marina", 12.0},
		{"Guindy", "Sholinganallur", 16.0},
		{"Guindy", "Tambaram", 14.0},
		{"Guindy", "TNagar", 6.0},
		{"Guindy", "Velachery", 4.0},
		{"Marina", "Sholinganallur", 22.0},
		{"Marina", "Tambaram", 26.0},
		{"Marina", "TNagar", 7.0},
		{"Marina", "Velachery", 13.0},
		{"Sholinganallur", "Tambaram", 14.0},
		{"Sholinganallur", "TNagar", 19.0},
		{"Sholinganallur", "Velachery", 10.0},
		{"Tambaram", "TNagar", 18.0},
		{"Tambaram", "Velachery", 14.0},
		{"TNagar", "Velachery", 9.0},
		// OMR short-distance connectors.
		{"Kelambakkam", "Siruseri", 5.0},
		{"Navalur", "Siruseri", 7.0},
		{"Navalur", "Sholinganallur", 5.0},
		{"Medavakkam", "Sholinganallur", 8.0},
		{"Perungudi", "Thoraipakkam", 3.0},
		{"Perungudi", "Velachery", 4.0},
		{"Thoraipakkam", "Sholinganallur", 6.0},
	}
}
