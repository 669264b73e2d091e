package content

import (
	"testing"
)

func testCatalog() *Catalog {
	countries := []Country{
		{ID: "france", Name: "France", FlagEmoji: "🇫🇷", Landmarks: []string{"eiffel", "louvre"}, VisitOrder: 1},
		{ID: "spain", Name: "Spain", FlagEmoji: "🇪🇸", Landmarks: []string{"sagrada"}, VisitOrder: 2},
	}
	landmarks := []Landmark{
		{ID: "eiffel", DisplayName: "Eiffel Tower", CountryID: "france", CountryName: "France"},
		{ID: "louvre", DisplayName: "Louvre Museum", CountryID: "france", CountryName: "France"},
		{ID: "sagrada", DisplayName: "Sagrada Familia", CountryID: "spain", CountryName: "Spain"},
	}
	return NewCatalog(countries, landmarks)
}

func TestCatalog_FirstLandmark(t *testing.T) {
	c := testCatalog()

	co, l, ok := c.FirstLandmark()
	if !ok {
		t.Fatal("expected a first landmark")
	}
	if co.ID != "france" {
		t.Errorf("country = %q, want france", co.ID)
	}
	if l.ID != "eiffel" {
		t.Errorf("landmark = %q, want eiffel", l.ID)
	}
}

func TestCatalog_FirstLandmark_Empty(t *testing.T) {
	c := NewCatalog(nil, nil)

	if !c.Empty() {
		t.Error("expected empty catalog")
	}
	if _, _, ok := c.FirstLandmark(); ok {
		t.Error("expected no first landmark on empty catalog")
	}
}

func TestCatalog_NextLandmark_WithinCountry(t *testing.T) {
	c := testCatalog()

	co, l, ok := c.NextLandmark("france", "eiffel")
	if !ok {
		t.Fatal("expected a next landmark")
	}
	if co.ID != "france" || l.ID != "louvre" {
		t.Errorf("next = %s/%s, want france/louvre", co.ID, l.ID)
	}
}

func TestCatalog_NextLandmark_CrossCountry(t *testing.T) {
	c := testCatalog()

	co, l, ok := c.NextLandmark("france", "louvre")
	if !ok {
		t.Fatal("expected a next landmark")
	}
	if co.ID != "spain" || l.ID != "sagrada" {
		t.Errorf("next = %s/%s, want spain/sagrada", co.ID, l.ID)
	}
}

func TestCatalog_NextLandmark_EndOfJourney(t *testing.T) {
	c := testCatalog()

	if _, _, ok := c.NextLandmark("spain", "sagrada"); ok {
		t.Error("expected no landmark after the last one")
	}
}

func TestCatalog_CountriesSortedByVisitOrder(t *testing.T) {
	countries := []Country{
		{ID: "b", Name: "B", FlagEmoji: "🏳️", VisitOrder: 2},
		{ID: "a", Name: "A", FlagEmoji: "🏳️", VisitOrder: 1},
	}
	c := NewCatalog(countries, nil)

	sorted := c.Countries()
	if sorted[0].ID != "a" || sorted[1].ID != "b" {
		t.Errorf("countries = %v, want sorted by visit order", sorted)
	}
}

func TestCatalog_LandmarksOf_PreservesListOrder(t *testing.T) {
	c := testCatalog()

	landmarks := c.LandmarksOf("france")
	if len(landmarks) != 2 {
		t.Fatalf("len = %d, want 2", len(landmarks))
	}
	if landmarks[0].ID != "eiffel" || landmarks[1].ID != "louvre" {
		t.Errorf("order = %s, %s; want eiffel, louvre", landmarks[0].ID, landmarks[1].ID)
	}
}

func TestCatalog_TotalLandmarks(t *testing.T) {
	c := testCatalog()
	if got := c.TotalLandmarks(); got != 3 {
		t.Errorf("TotalLandmarks = %d, want 3", got)
	}
}
