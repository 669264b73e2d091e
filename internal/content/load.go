package content

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed data/countries.json data/landmarks.json
var dataFS embed.FS

// Load builds the catalog from the embedded content files.
// Malformed content is logged and degrades to an empty catalog, never fatal.
func Load() *Catalog {
	countries, err := loadCountries()
	if err != nil {
		fmt.Fprintln(os.Stderr, "content: failed to load countries:", err)
		return NewCatalog(nil, nil)
	}
	landmarks, err := loadLandmarks()
	if err != nil {
		fmt.Fprintln(os.Stderr, "content: failed to load landmarks:", err)
		return NewCatalog(nil, nil)
	}
	if err := validateCatalog(countries, landmarks); err != nil {
		fmt.Fprintln(os.Stderr, "content:", err)
		return NewCatalog(nil, nil)
	}
	return NewCatalog(countries, landmarks)
}

func loadCountries() ([]Country, error) {
	raw, err := dataFS.ReadFile("data/countries.json")
	if err != nil {
		return nil, fmt.Errorf("read countries.json: %w", err)
	}
	if err := validateAgainstSchema("countries", countriesSchema, raw); err != nil {
		return nil, fmt.Errorf("countries.json: %w", err)
	}
	var countries []Country
	if err := json.Unmarshal(raw, &countries); err != nil {
		return nil, fmt.Errorf("decode countries.json: %w", err)
	}
	return countries, nil
}

func loadLandmarks() ([]Landmark, error) {
	raw, err := dataFS.ReadFile("data/landmarks.json")
	if err != nil {
		return nil, fmt.Errorf("read landmarks.json: %w", err)
	}
	if err := validateAgainstSchema("landmarks", landmarksSchema, raw); err != nil {
		return nil, fmt.Errorf("landmarks.json: %w", err)
	}
	var landmarks []Landmark
	if err := json.Unmarshal(raw, &landmarks); err != nil {
		return nil, fmt.Errorf("decode landmarks.json: %w", err)
	}
	return landmarks, nil
}
