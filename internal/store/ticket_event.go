package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendTicketEvent(ctx context.Context, data TicketEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.TicketEvent.Create().
		SetSequence(seqNum).
		SetAmount(data.Amount).
		SetReason(data.Reason).
		SetSessionID(data.SessionID)

	if data.QuestionID != "" {
		builder = builder.SetQuestionID(data.QuestionID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save ticket event: %w", err)
	}
	return nil
}

func (r *eventRepo) TicketTotal(ctx context.Context) (int, error) {
	events, err := r.client.TicketEvent.Query().All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query ticket total: %w", err)
	}

	total := 0
	for _, e := range events {
		total += e.Amount
	}
	return total, nil
}
