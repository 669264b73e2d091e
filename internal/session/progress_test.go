package session

import (
	"testing"

	"github.com/abhisek/mathtravel/internal/store"
)

func TestNewProgress_RestoresValidPosition(t *testing.T) {
	snap := &store.SnapshotData{
		Progress: &store.ProgressSnapshotData{
			CountryID:  "france",
			LandmarkID: "louvre",
			Score:      3,
			Tickets:    17,
		},
	}

	p := NewProgress(snap, testCatalog())
	if p.CountryID != "france" || p.LandmarkID != "louvre" {
		t.Errorf("position = %s/%s", p.CountryID, p.LandmarkID)
	}
	if p.Score != 3 || p.Tickets != 17 {
		t.Errorf("score/tickets = %d/%d", p.Score, p.Tickets)
	}
}

func TestNewProgress_UnknownLandmarkResetsPosition(t *testing.T) {
	snap := &store.SnapshotData{
		Progress: &store.ProgressSnapshotData{
			CountryID:  "france",
			LandmarkID: "atlantis",
			Score:      4,
			Tickets:    9,
		},
	}

	p := NewProgress(snap, testCatalog())
	if p.CountryID != "france" || p.LandmarkID != "eiffel-tower" {
		t.Errorf("position = %s/%s, want reset to first landmark", p.CountryID, p.LandmarkID)
	}
	if p.Score != 0 {
		t.Errorf("score = %d, want reset", p.Score)
	}
	if p.Tickets != 9 {
		t.Errorf("tickets = %d, want kept", p.Tickets)
	}
}

func TestNewProgress_MismatchedCountryResetsPosition(t *testing.T) {
	snap := &store.SnapshotData{
		Progress: &store.ProgressSnapshotData{
			CountryID:  "spain",
			LandmarkID: "louvre", // belongs to france
		},
	}

	p := NewProgress(snap, testCatalog())
	if p.LandmarkID != "eiffel-tower" {
		t.Errorf("landmark = %s, want reset", p.LandmarkID)
	}
}

func TestNewProgress_ClampsScore(t *testing.T) {
	snap := &store.SnapshotData{
		Progress: &store.ProgressSnapshotData{
			CountryID:  "france",
			LandmarkID: "eiffel-tower",
			Score:      99,
		},
	}

	p := NewProgress(snap, testCatalog())
	if p.Score != MaxScore {
		t.Errorf("score = %d, want clamped to %d", p.Score, MaxScore)
	}
}

func TestNewProgress_KeepsCompletionFlag(t *testing.T) {
	snap := &store.SnapshotData{
		Progress: &store.ProgressSnapshotData{
			CountryID:        "spain",
			LandmarkID:       "sagrada-familia",
			Score:            5,
			JourneyCompleted: true,
		},
	}

	p := NewProgress(snap, testCatalog())
	if !p.JourneyCompleted {
		t.Error("completion flag lost")
	}
}
