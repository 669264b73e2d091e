package content

import (
	"sort"
)

// Catalog holds the immutable country/landmark content, loaded once at
// startup. A zero-value Catalog is valid and behaves as empty; callers must
// tolerate an empty catalog (the menu disables play instead of crashing).
type Catalog struct {
	countries []Country
	landmarks []Landmark

	countryByID  map[string]*Country
	landmarkByID map[string]*Landmark
	byVisitOrder []Country
}

// NewCatalog builds a catalog with precomputed indices.
// The input slices are validated by the caller (see Validate).
func NewCatalog(countries []Country, landmarks []Landmark) *Catalog {
	c := &Catalog{
		countries:    countries,
		landmarks:    landmarks,
		countryByID:  make(map[string]*Country, len(countries)),
		landmarkByID: make(map[string]*Landmark, len(landmarks)),
	}

	for i := range c.countries {
		c.countryByID[c.countries[i].ID] = &c.countries[i]
	}
	for i := range c.landmarks {
		c.landmarkByID[c.landmarks[i].ID] = &c.landmarks[i]
	}

	c.byVisitOrder = make([]Country, len(countries))
	copy(c.byVisitOrder, countries)
	sort.Slice(c.byVisitOrder, func(i, j int) bool {
		return c.byVisitOrder[i].VisitOrder < c.byVisitOrder[j].VisitOrder
	})

	return c
}

// Empty reports whether the catalog has no playable content.
func (c *Catalog) Empty() bool {
	return len(c.byVisitOrder) == 0 || len(c.landmarks) == 0
}

// Countries returns all countries in ascending visit order.
func (c *Catalog) Countries() []Country {
	out := make([]Country, len(c.byVisitOrder))
	copy(out, c.byVisitOrder)
	return out
}

// Country looks up a country by ID.
func (c *Catalog) Country(id string) (Country, bool) {
	if co, ok := c.countryByID[id]; ok {
		return *co, true
	}
	return Country{}, false
}

// Landmark looks up a landmark by ID.
func (c *Catalog) Landmark(id string) (Landmark, bool) {
	if l, ok := c.landmarkByID[id]; ok {
		return *l, true
	}
	return Landmark{}, false
}

// LandmarksOf returns a country's landmarks in play order (the order of the
// country's landmark ID list). Unknown IDs are skipped.
func (c *Catalog) LandmarksOf(countryID string) []Landmark {
	co, ok := c.countryByID[countryID]
	if !ok {
		return nil
	}
	out := make([]Landmark, 0, len(co.Landmarks))
	for _, id := range co.Landmarks {
		if l, ok := c.landmarkByID[id]; ok {
			out = append(out, *l)
		}
	}
	return out
}

// FirstLandmark returns the first landmark of the first country by visit
// order. ok is false when the catalog is empty.
func (c *Catalog) FirstLandmark() (Country, Landmark, bool) {
	for _, co := range c.byVisitOrder {
		landmarks := c.LandmarksOf(co.ID)
		if len(landmarks) > 0 {
			return co, landmarks[0], true
		}
	}
	return Country{}, Landmark{}, false
}

// NextLandmark computes the landmark after (countryID, landmarkID):
// the next landmark within the country if one exists, otherwise the first
// landmark of the next country by ascending visit order. ok is false when
// the given landmark is the last one of the journey.
func (c *Catalog) NextLandmark(countryID, landmarkID string) (Country, Landmark, bool) {
	co, ok := c.countryByID[countryID]
	if !ok {
		return Country{}, Landmark{}, false
	}

	landmarks := c.LandmarksOf(countryID)
	for i, l := range landmarks {
		if l.ID == landmarkID && i+1 < len(landmarks) {
			return *co, landmarks[i+1], true
		}
	}

	// Move on to the next country with at least one landmark.
	for i, ordered := range c.byVisitOrder {
		if ordered.ID != countryID {
			continue
		}
		for j := i + 1; j < len(c.byVisitOrder); j++ {
			next := c.byVisitOrder[j]
			nextLandmarks := c.LandmarksOf(next.ID)
			if len(nextLandmarks) > 0 {
				return next, nextLandmarks[0], true
			}
		}
		break
	}

	return Country{}, Landmark{}, false
}

// TotalLandmarks returns the number of landmarks reachable on the journey.
func (c *Catalog) TotalLandmarks() int {
	total := 0
	for _, co := range c.byVisitOrder {
		total += len(c.LandmarksOf(co.ID))
	}
	return total
}
