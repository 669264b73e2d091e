package content

import (
	"strings"
	"testing"
)

func TestValidateCatalog_Valid(t *testing.T) {
	countries := []Country{
		{ID: "france", Name: "France", FlagEmoji: "🇫🇷", Landmarks: []string{"eiffel"}, VisitOrder: 1},
	}
	landmarks := []Landmark{
		{ID: "eiffel", DisplayName: "Eiffel Tower", CountryID: "france", CountryName: "France"},
	}

	if err := validateCatalog(countries, landmarks); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateCatalog_Errors(t *testing.T) {
	tests := []struct {
		name      string
		countries []Country
		landmarks []Landmark
		wantErr   string
	}{
		{
			name: "duplicate country ID",
			countries: []Country{
				{ID: "france", VisitOrder: 1},
				{ID: "france", VisitOrder: 2},
			},
			wantErr: "duplicate country ID",
		},
		{
			name: "duplicate visit order",
			countries: []Country{
				{ID: "france", VisitOrder: 1},
				{ID: "spain", VisitOrder: 1},
			},
			wantErr: "share visit order",
		},
		{
			name:      "dangling landmark country",
			countries: []Country{{ID: "france", VisitOrder: 1}},
			landmarks: []Landmark{{ID: "colosseum", CountryID: "italy"}},
			wantErr:   "nonexistent country",
		},
		{
			name: "country lists unknown landmark",
			countries: []Country{
				{ID: "france", Landmarks: []string{"ghost"}, VisitOrder: 1},
			},
			wantErr: "nonexistent landmark",
		},
		{
			name: "country lists foreign landmark",
			countries: []Country{
				{ID: "france", Landmarks: []string{"sagrada"}, VisitOrder: 1},
				{ID: "spain", VisitOrder: 2},
			},
			landmarks: []Landmark{{ID: "sagrada", CountryID: "spain"}},
			wantErr:   "belongs to",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCatalog(tt.countries, tt.landmarks)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateAgainstSchema_RejectsMalformed(t *testing.T) {
	bad := []byte(`[{"id": "france"}]`)
	if err := validateAgainstSchema("countries", countriesSchema, bad); err == nil {
		t.Error("expected schema violation for missing fields")
	}

	notJSON := []byte(`{broken`)
	if err := validateAgainstSchema("countries", countriesSchema, notJSON); err == nil {
		t.Error("expected error for invalid JSON")
	}
}
