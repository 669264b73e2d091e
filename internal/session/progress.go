package session

import (
	"time"

	"github.com/abhisek/mathtravel/internal/content"
	"github.com/abhisek/mathtravel/internal/store"
)

// MaxScore is the landmark score that completes a landmark.
const MaxScore = 5

// Progress is the player's position on the world map plus the running
// ticket balance. Tickets accumulate for the whole journey and are never
// spent or reset.
type Progress struct {
	CountryID        string
	LandmarkID       string
	Score            int
	Tickets          int
	JourneyCompleted bool
	StartedAt        time.Time
	UpdatedAt        time.Time
}

// NewProgress restores progress from the snapshot, validating the stored
// position against the catalog. An unknown or mismatched position resets
// to the first landmark; tickets and completion are kept.
func NewProgress(snap *store.SnapshotData, catalog *content.Catalog) *Progress {
	p := &Progress{StartedAt: time.Now()}
	if _, first, ok := catalog.FirstLandmark(); ok {
		p.CountryID = first.CountryID
		p.LandmarkID = first.ID
	}

	if snap == nil || snap.Progress == nil {
		return p
	}

	data := snap.Progress
	p.Tickets = data.Tickets
	p.JourneyCompleted = data.JourneyCompleted
	if t, err := time.Parse(time.RFC3339, data.StartedAt); err == nil {
		p.StartedAt = t
	}
	if t, err := time.Parse(time.RFC3339, data.UpdatedAt); err == nil {
		p.UpdatedAt = t
	}

	lm, ok := catalog.Landmark(data.LandmarkID)
	if !ok || lm.CountryID != data.CountryID {
		// Catalog changed underneath the save; position reset above.
		return p
	}
	p.CountryID = data.CountryID
	p.LandmarkID = data.LandmarkID
	p.Score = data.Score
	if p.Score < 0 {
		p.Score = 0
	}
	if p.Score > MaxScore {
		p.Score = MaxScore
	}
	return p
}

// SnapshotData exports the progress for persistence.
func (p *Progress) SnapshotData() *store.ProgressSnapshotData {
	return &store.ProgressSnapshotData{
		CountryID:        p.CountryID,
		LandmarkID:       p.LandmarkID,
		Score:            p.Score,
		Tickets:          p.Tickets,
		JourneyCompleted: p.JourneyCompleted,
		StartedAt:        p.StartedAt.Format(time.RFC3339),
		UpdatedAt:        p.UpdatedAt.Format(time.RFC3339),
	}
}
