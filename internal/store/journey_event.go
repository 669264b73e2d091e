package store

import (
	"context"
	"fmt"

	"github.com/abhisek/mathtravel/ent"
	"github.com/abhisek/mathtravel/ent/journeyevent"
)

func (r *eventRepo) AppendJourneyEvent(ctx context.Context, data JourneyEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.JourneyEvent.Create().
		SetSequence(seqNum).
		SetAction(data.Action).
		SetCountryID(data.CountryID).
		SetScore(data.Score).
		SetSessionID(data.SessionID)

	if data.LandmarkID != "" {
		builder = builder.SetLandmarkID(data.LandmarkID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save journey event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryJourneyEvents(ctx context.Context, opts QueryOpts) ([]JourneyEventRecord, error) {
	query := r.client.JourneyEvent.Query().
		Order(ent.Desc(journeyevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(journeyevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(journeyevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(journeyevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(journeyevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query journey events: %w", err)
	}

	records := make([]JourneyEventRecord, len(events))
	for i, e := range events {
		records[i] = JourneyEventRecord{
			JourneyEventData: JourneyEventData{
				Action:     e.Action,
				CountryID:  e.CountryID,
				LandmarkID: e.LandmarkID,
				Score:      e.Score,
				SessionID:  e.SessionID,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}
