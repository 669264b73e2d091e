package store

import (
	"context"
	"fmt"

	"github.com/abhisek/mathtravel/ent"
	"github.com/abhisek/mathtravel/ent/answerevent"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLandmarkID(data.LandmarkID).
		SetQuestionID(data.QuestionID).
		SetMathType(data.MathType).
		SetDifficulty(data.Difficulty).
		SetQuestionText(data.QuestionText).
		SetCorrectAnswer(data.CorrectAnswer).
		SetPlayerAnswer(data.PlayerAnswer).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs).
		SetHintShown(data.HintShown).
		SetReview(data.Review).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAnswerEvents(ctx context.Context, opts QueryOpts) ([]AnswerEventRecord, error) {
	query := r.client.AnswerEvent.Query().
		Order(ent.Desc(answerevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(answerevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(answerevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(answerevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(answerevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	return answerRecords(events), nil
}

func (r *eventRepo) QuestionHistory(ctx context.Context, questionID string) ([]AnswerEventRecord, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.QuestionID(questionID)).
		Order(ent.Desc(answerevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query question history: %w", err)
	}
	return answerRecords(events), nil
}

func answerRecords(events []*ent.AnswerEvent) []AnswerEventRecord {
	records := make([]AnswerEventRecord, len(events))
	for i, e := range events {
		records[i] = AnswerEventRecord{
			AnswerEventData: AnswerEventData{
				SessionID:     e.SessionID,
				LandmarkID:    e.LandmarkID,
				QuestionID:    e.QuestionID,
				MathType:      e.MathType,
				Difficulty:    e.Difficulty,
				QuestionText:  e.QuestionText,
				CorrectAnswer: e.CorrectAnswer,
				PlayerAnswer:  e.PlayerAnswer,
				Correct:       e.Correct,
				TimeMs:        e.TimeMs,
				HintShown:     e.HintShown,
				Review:        e.Review,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records
}

func (r *eventRepo) AnswerTotals(ctx context.Context) (int, int, error) {
	total, err := r.client.AnswerEvent.Query().Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count answers: %w", err)
	}
	correct, err := r.client.AnswerEvent.Query().
		Where(answerevent.Correct(true)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count correct answers: %w", err)
	}
	return total, correct, nil
}

func (r *eventRepo) AccuracyByMathType(ctx context.Context) (map[string]AccuracyStat, error) {
	events, err := r.client.AnswerEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answers by type: %w", err)
	}

	stats := make(map[string]AccuracyStat)
	for _, e := range events {
		s := stats[e.MathType]
		s.Total++
		if e.Correct {
			s.Correct++
		}
		stats[e.MathType] = s
	}
	return stats, nil
}
