package content

import (
	"fmt"
	"strings"
)

// validateCatalog performs structural checks on the loaded content.
// Returns a combined error describing all problems found, or nil if valid.
func validateCatalog(countries []Country, landmarks []Landmark) error {
	var errs []string

	countryIDs := make(map[string]bool, len(countries))
	visitOrders := make(map[int]string, len(countries))

	for _, co := range countries {
		if countryIDs[co.ID] {
			errs = append(errs, fmt.Sprintf("duplicate country ID: %q", co.ID))
		}
		countryIDs[co.ID] = true

		if other, ok := visitOrders[co.VisitOrder]; ok {
			errs = append(errs, fmt.Sprintf("countries %q and %q share visit order %d", other, co.ID, co.VisitOrder))
		}
		visitOrders[co.VisitOrder] = co.ID
	}

	landmarkIDs := make(map[string]bool, len(landmarks))
	for _, l := range landmarks {
		if landmarkIDs[l.ID] {
			errs = append(errs, fmt.Sprintf("duplicate landmark ID: %q", l.ID))
		}
		landmarkIDs[l.ID] = true

		if !countryIDs[l.CountryID] {
			errs = append(errs, fmt.Sprintf("landmark %q references nonexistent country %q", l.ID, l.CountryID))
		}
	}

	// Country landmark lists must reference known landmarks that belong to
	// that country.
	for _, co := range countries {
		for _, id := range co.Landmarks {
			if !landmarkIDs[id] {
				errs = append(errs, fmt.Sprintf("country %q lists nonexistent landmark %q", co.ID, id))
				continue
			}
			for _, l := range landmarks {
				if l.ID == id && l.CountryID != co.ID {
					errs = append(errs, fmt.Sprintf("country %q lists landmark %q which belongs to %q", co.ID, id, l.CountryID))
				}
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid catalog:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
