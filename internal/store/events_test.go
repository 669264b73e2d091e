package store

import (
	"context"
	"fmt"
	"testing"
)

func TestAnswerEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionID: "s1", LandmarkID: "eiffel-tower", QuestionID: "q1", MathType: "addition", Difficulty: 1, QuestionText: "2 + 2 = ?", CorrectAnswer: "4", PlayerAnswer: "4", Correct: true, TimeMs: 1200},
		{SessionID: "s1", LandmarkID: "eiffel-tower", QuestionID: "q2", MathType: "addition", Difficulty: 1, QuestionText: "3 + 3 = ?", CorrectAnswer: "6", PlayerAnswer: "5", Correct: false, TimeMs: 4000, HintShown: true},
		{SessionID: "s1", LandmarkID: "eiffel-tower", QuestionID: "q3", MathType: "subtraction", Difficulty: 2, QuestionText: "9 - 4 = ?", CorrectAnswer: "5", PlayerAnswer: "5", Correct: true, TimeMs: 2100, Review: true},
	}
	for i, a := range answers {
		if err := repo.AppendAnswerEvent(ctx, a); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.QueryAnswerEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}
	// Newest first.
	if records[0].QuestionText != "9 - 4 = ?" || !records[0].Review {
		t.Errorf("newest record = %+v, want the review subtraction", records[0])
	}
	if records[0].Sequence <= records[1].Sequence {
		t.Error("expected descending sequence order")
	}

	total, correct, err := repo.AnswerTotals(ctx)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if total != 3 || correct != 2 {
		t.Errorf("totals = %d/%d, want 3/2", correct, total)
	}

	stats, err := repo.AccuracyByMathType(ctx)
	if err != nil {
		t.Fatalf("accuracy: %v", err)
	}
	if got := stats["addition"]; got.Total != 2 || got.Correct != 1 {
		t.Errorf("addition stats = %+v, want 1/2", got)
	}
	if got := stats["subtraction"]; got.Total != 1 || got.Correct != 1 {
		t.Errorf("subtraction stats = %+v, want 1/1", got)
	}
}

func TestQuestionHistory(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// Same question answered twice: wrong, then right on review.
	attempts := []AnswerEventData{
		{SessionID: "s1", LandmarkID: "big-ben", QuestionID: "q1", MathType: "addition",
			Difficulty: 1, QuestionText: "5 + 5 = ?", CorrectAnswer: "10",
			PlayerAnswer: "11", Correct: false, TimeMs: 3000},
		{SessionID: "s1", LandmarkID: "big-ben", QuestionID: "q2", MathType: "addition",
			Difficulty: 1, QuestionText: "2 + 6 = ?", CorrectAnswer: "8",
			PlayerAnswer: "8", Correct: true, TimeMs: 1500},
		{SessionID: "s1", LandmarkID: "big-ben", QuestionID: "q1", MathType: "addition",
			Difficulty: 1, QuestionText: "5 + 5 = ?", CorrectAnswer: "10",
			PlayerAnswer: "10", Correct: true, TimeMs: 1800, Review: true},
	}
	for i, a := range attempts {
		if err := repo.AppendAnswerEvent(ctx, a); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	history, err := repo.QuestionHistory(ctx, "q1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history entries = %d, want 2", len(history))
	}
	if !history[0].Correct || !history[0].Review {
		t.Errorf("newest entry = %+v, want the correct review attempt", history[0])
	}
	if history[1].Correct {
		t.Error("expected the first attempt to be the miss")
	}
}

func TestAnswerEventQueryLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := repo.AppendAnswerEvent(ctx, AnswerEventData{
			SessionID: "s1", LandmarkID: "colosseum", QuestionID: fmt.Sprintf("q%d", i),
			MathType: "addition", Difficulty: 1, QuestionText: "1 + 1 = ?",
			CorrectAnswer: "2", PlayerAnswer: "2", Correct: true, TimeMs: 900,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.QueryAnswerEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("records = %d, want 2", len(records))
	}
}

func TestJourneyEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []JourneyEventData{
		{Action: "landmark-complete", CountryID: "france", LandmarkID: "eiffel-tower", Score: 5, SessionID: "s1"},
		{Action: "country-enter", CountryID: "spain", SessionID: "s1"},
	}
	for i, e := range events {
		if err := repo.AppendJourneyEvent(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.QueryJourneyEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[0].Action != "country-enter" || records[0].CountryID != "spain" {
		t.Errorf("newest = %+v, want country-enter spain", records[0])
	}
	if records[1].LandmarkID != "eiffel-tower" || records[1].Score != 5 {
		t.Errorf("oldest = %+v, want eiffel-tower score 5", records[1])
	}
}

func TestTicketTotal(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	total, err := repo.TicketTotal(ctx)
	if err != nil {
		t.Fatalf("empty total: %v", err)
	}
	if total != 0 {
		t.Errorf("empty total = %d, want 0", total)
	}

	for i := 0; i < 3; i++ {
		err := repo.AppendTicketEvent(ctx, TicketEventData{
			Amount: 1, Reason: "correct-answer", QuestionID: "q1", SessionID: "s1",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	total, err = repo.TicketTotal(ctx)
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
}

func TestMasteryEventAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendMasteryEvent(ctx, MasteryEventData{
		MathType: "addition", FromLevel: 1, ToLevel: 2, Trigger: "streak-up", SessionID: "s1",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	count, err := s.Client().MasteryEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestSessionSummaries(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: "start"}); err != nil {
		t.Fatalf("append start: %v", err)
	}
	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", Action: "end",
		QuestionsAnswered: 12, CorrectAnswers: 9, TicketsEarned: 9, DurationSecs: 300,
	})
	if err != nil {
		t.Fatalf("append end: %v", err)
	}

	summaries, err := repo.QuerySessionSummaries(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("summaries = %d, want 1 (start events excluded)", len(summaries))
	}
	got := summaries[0]
	if got.QuestionsAnswered != 12 || got.CorrectAnswers != 9 || got.TicketsEarned != 9 {
		t.Errorf("summary = %+v", got)
	}
}

func TestSettingsLoadDefaultsAndSave(t *testing.T) {
	s := openTestStore(t)
	repo := s.SettingsRepo()
	ctx := context.Background()

	settings, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if !settings.AdaptiveDifficulty || settings.HintLevel != HintMedium {
		t.Errorf("defaults = %+v", settings)
	}

	settings.AdaptiveDifficulty = false
	settings.HintLevel = HintDetailed
	if err := repo.Save(ctx, settings); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.AdaptiveDifficulty || loaded.HintLevel != HintDetailed {
		t.Errorf("loaded = %+v", loaded)
	}

	// Saving again updates the same row.
	loaded.HintLevel = HintMinimal
	if err := repo.Save(ctx, loaded); err != nil {
		t.Fatalf("second save: %v", err)
	}
	count, err := s.Client().Setting.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("settings rows = %d, want 1", count)
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendTicketEvent(ctx, TicketEventData{Amount: 1, Reason: "correct-answer", SessionID: "s1"}); err != nil {
		t.Fatalf("ticket: %v", err)
	}
	err := repo.AppendAnswerEvent(ctx, AnswerEventData{
		SessionID: "s1", LandmarkID: "big-ben", QuestionID: "q1",
		MathType: "addition", Difficulty: 1, QuestionText: "1 + 2 = ?",
		CorrectAnswer: "3", PlayerAnswer: "3", Correct: true, TimeMs: 800,
	})
	if err != nil {
		t.Fatalf("answer: %v", err)
	}

	answers, err := repo.QueryAnswerEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(answers) != 1 {
		t.Fatalf("answers = %d, want 1", len(answers))
	}
	// Ticket took sequence 1, so the answer got 2.
	if answers[0].Sequence != 2 {
		t.Errorf("answer sequence = %d, want 2", answers[0].Sequence)
	}
}
