package session

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/mathtravel/internal/content"
	"github.com/abhisek/mathtravel/internal/store"
)

func testCatalog() *content.Catalog {
	countries := []content.Country{
		{ID: "france", Name: "France", FlagEmoji: "🇫🇷", VisitOrder: 1, Landmarks: []string{"eiffel-tower", "louvre"}},
		{ID: "spain", Name: "Spain", FlagEmoji: "🇪🇸", VisitOrder: 2, Landmarks: []string{"sagrada-familia"}},
	}
	landmarks := []content.Landmark{
		{ID: "eiffel-tower", DisplayName: "Eiffel Tower", CountryID: "france", CountryName: "France", FunFact: "It was meant to be temporary."},
		{ID: "louvre", DisplayName: "The Louvre", CountryID: "france", CountryName: "France", FunFact: "It is the world's largest art museum."},
		{ID: "sagrada-familia", DisplayName: "Sagrada Família", CountryID: "spain", CountryName: "Spain", FunFact: "Construction started in 1882."},
	}
	return content.NewCatalog(countries, landmarks)
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := NewGame(testCatalog(), nil, store.DefaultSettings(), nil, nil)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	return g
}

// answerCorrectly serves the next question and answers it with the known
// correct answer.
func answerCorrectly(t *testing.T, g *Game) *AnswerResult {
	t.Helper()
	q := g.NextQuestion()
	if q == nil {
		t.Fatal("expected a question")
	}
	result, err := g.SubmitAnswer(context.Background(), q.Answer)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result == nil || !result.Correct {
		t.Fatalf("expected a correct result, got %+v", result)
	}
	return result
}

func answerWrongly(t *testing.T, g *Game) *AnswerResult {
	t.Helper()
	q := g.NextQuestion()
	if q == nil {
		t.Fatal("expected a question")
	}
	result, err := g.SubmitAnswer(context.Background(), "not even close")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result == nil || result.Correct {
		t.Fatalf("expected an incorrect result, got %+v", result)
	}
	return result
}

func TestNewGame_EmptyCatalog(t *testing.T) {
	empty := content.NewCatalog(nil, nil)
	if _, err := NewGame(empty, nil, store.DefaultSettings(), nil, nil); err != ErrEmptyCatalog {
		t.Errorf("err = %v, want ErrEmptyCatalog", err)
	}
}

func TestNewGame_StartsAtFirstLandmark(t *testing.T) {
	g := newTestGame(t)

	p := g.Progress()
	if p.CountryID != "france" || p.LandmarkID != "eiffel-tower" {
		t.Errorf("position = %s/%s, want france/eiffel-tower", p.CountryID, p.LandmarkID)
	}
	if p.Score != 0 || p.Tickets != 0 || p.JourneyCompleted {
		t.Errorf("fresh progress = %+v", p)
	}
}

func TestSubmitAnswer_CorrectAwardsScoreAndTicket(t *testing.T) {
	g := newTestGame(t)

	result := answerCorrectly(t, g)
	if result.TicketsWon != 1 {
		t.Errorf("tickets won = %d, want 1", result.TicketsWon)
	}
	if g.Progress().Score != 1 || g.Progress().Tickets != 1 {
		t.Errorf("progress = score %d tickets %d, want 1/1", g.Progress().Score, g.Progress().Tickets)
	}
	if g.QuestionsAnswered != 1 || g.CorrectAnswers != 1 || g.TicketsEarned != 1 {
		t.Errorf("counters = %d/%d/%d", g.QuestionsAnswered, g.CorrectAnswers, g.TicketsEarned)
	}
}

func TestSubmitAnswer_EmptyInputIsNoOp(t *testing.T) {
	g := newTestGame(t)
	q := g.NextQuestion()

	for _, input := range []string{"", "   "} {
		result, err := g.SubmitAnswer(context.Background(), input)
		if err != nil {
			t.Fatalf("submit %q: %v", input, err)
		}
		if result != nil {
			t.Errorf("submit %q produced a result", input)
		}
	}
	if g.QuestionsAnswered != 0 {
		t.Error("empty input should not count as an answer")
	}
	if again := g.NextQuestion(); again == nil || again.ID != q.ID {
		t.Error("question should remain current after empty input")
	}
}

func TestSubmitAnswer_WrongSchedulesReview(t *testing.T) {
	g := newTestGame(t)

	q := g.NextQuestion()
	missed := q.ID
	result, err := g.SubmitAnswer(context.Background(), "wrong")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Correct || result.TicketsWon != 0 {
		t.Fatalf("result = %+v", result)
	}
	if g.Progress().Score != 0 {
		t.Errorf("score = %d, want unchanged 0", g.Progress().Score)
	}
	if g.ReviewLen() != 1 {
		t.Fatalf("review len = %d, want 1", g.ReviewLen())
	}

	// The missed question comes back first.
	next := g.NextQuestion()
	if next.ID != missed {
		t.Errorf("next = %s, want the missed question %s", next.ID, missed)
	}
	reviewResult, err := g.SubmitAnswer(context.Background(), next.Answer)
	if err != nil {
		t.Fatalf("submit review: %v", err)
	}
	if !reviewResult.WasReview {
		t.Error("expected the re-ask to be flagged as review")
	}
	if g.ReviewLen() != 0 {
		t.Errorf("review len = %d, want drained", g.ReviewLen())
	}
}

func TestLandmarkCompletion(t *testing.T) {
	g := newTestGame(t)

	var transition *Transition
	for i := 0; i < MaxScore; i++ {
		result := answerCorrectly(t, g)
		if i < MaxScore-1 && result.Transition != nil {
			t.Fatalf("transition fired at score %d", i+1)
		}
		if i == MaxScore-1 {
			transition = result.Transition
		}
	}

	if transition == nil {
		t.Fatal("expected a transition at max score")
	}
	if transition.Landmark.ID != "eiffel-tower" || transition.FunFact == "" {
		t.Errorf("transition = %+v", transition)
	}
	if transition.NextLandmark.ID != "louvre" || transition.EnteringCountry {
		t.Errorf("next = %+v, want louvre in the same country", transition.NextLandmark)
	}
	if g.PendingTransition() == nil {
		t.Fatal("transition should be pending until consumed")
	}

	if err := g.AdvanceLandmark(context.Background()); err != nil {
		t.Fatalf("advance: %v", err)
	}
	p := g.Progress()
	if p.LandmarkID != "louvre" || p.Score != 0 {
		t.Errorf("progress = %s score %d, want louvre/0", p.LandmarkID, p.Score)
	}
	if p.Tickets != MaxScore {
		t.Errorf("tickets = %d, want %d kept across landmarks", p.Tickets, MaxScore)
	}
	if g.PendingTransition() != nil {
		t.Error("transition should be consumed")
	}
}

func TestCountryTransition(t *testing.T) {
	g := newTestGame(t)

	// Finish both French landmarks.
	for lm := 0; lm < 2; lm++ {
		var tr *Transition
		for tr == nil {
			tr = answerCorrectly(t, g).Transition
		}
		if lm == 0 {
			if tr.EnteringCountry {
				t.Error("louvre is in the same country")
			}
		} else {
			if !tr.EnteringCountry || tr.NextCountry.ID != "spain" {
				t.Errorf("transition = %+v, want entry into spain", tr)
			}
		}
		if err := g.AdvanceLandmark(context.Background()); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}

	p := g.Progress()
	if p.CountryID != "spain" || p.LandmarkID != "sagrada-familia" {
		t.Errorf("position = %s/%s, want spain/sagrada-familia", p.CountryID, p.LandmarkID)
	}
}

func TestJourneyCompletion(t *testing.T) {
	g := newTestGame(t)

	// Walk the whole journey: 3 landmarks.
	for lm := 0; lm < 3; lm++ {
		var tr *Transition
		for tr == nil {
			tr = answerCorrectly(t, g).Transition
		}
		if lm == 2 && !tr.JourneyComplete {
			t.Error("final landmark should complete the journey")
		}
		if err := g.AdvanceLandmark(context.Background()); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}

	if !g.Progress().JourneyCompleted {
		t.Fatal("journey should be completed")
	}

	// Play continues but no further transitions fire, and advancing again
	// is a no-op.
	result := answerCorrectly(t, g)
	if result.Transition != nil {
		t.Error("no transitions after journey completion")
	}
	if err := g.AdvanceLandmark(context.Background()); err != nil {
		t.Fatalf("idempotent advance: %v", err)
	}
	if !g.Progress().JourneyCompleted {
		t.Error("completion flag must survive further play")
	}
}

func TestFixedDifficultyWhenAdaptiveOff(t *testing.T) {
	settings := store.DefaultSettings()
	settings.AdaptiveDifficulty = false
	g, err := NewGame(testCatalog(), nil, settings, nil, nil)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}

	for i := 0; i < 20; i++ {
		q := g.NextQuestion()
		if q.Difficulty != FixedDifficulty {
			t.Fatalf("difficulty = %d, want fixed %d", q.Difficulty, FixedDifficulty)
		}
		if _, err := g.SubmitAnswer(context.Background(), q.Answer); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	g := newTestGame(t)
	answerCorrectly(t, g)
	answerCorrectly(t, g)
	answerWrongly(t, g)

	restored, err := NewGame(testCatalog(), g.SnapshotData(), store.DefaultSettings(), nil, nil)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}

	p, rp := g.Progress(), restored.Progress()
	if rp.Score != p.Score || rp.Tickets != p.Tickets || rp.LandmarkID != p.LandmarkID {
		t.Errorf("restored progress = %+v, want %+v", rp, p)
	}
	if restored.ReviewLen() != 1 {
		t.Errorf("restored review len = %d, want 1", restored.ReviewLen())
	}
}

func TestHintText(t *testing.T) {
	tests := []struct {
		level    string
		wantHint bool
	}{
		{store.HintMinimal, false},
		{store.HintMedium, true},
		{store.HintDetailed, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			settings := store.DefaultSettings()
			settings.HintLevel = tt.level
			g, err := NewGame(testCatalog(), nil, settings, nil, nil)
			if err != nil {
				t.Fatalf("new game: %v", err)
			}
			g.NextQuestion()

			hint := g.HintText()
			if tt.wantHint && hint == "" {
				t.Error("expected a hint")
			}
			if !tt.wantHint && hint != "" {
				t.Errorf("hint = %q, want none", hint)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	g := newTestGame(t)
	answerCorrectly(t, g)
	answerCorrectly(t, g)
	answerWrongly(t, g)

	s := g.Summarize()
	if s.QuestionsAnswered != 3 || s.CorrectAnswers != 2 || s.TicketsEarned != 2 {
		t.Errorf("summary = %+v", s)
	}
	if s.Accuracy < 0.66 || s.Accuracy > 0.67 {
		t.Errorf("accuracy = %f, want 2/3", s.Accuracy)
	}
}

func TestGameAgainstStore(t *testing.T) {
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()
	ctx := context.Background()

	g, err := LoadGame(ctx, testCatalog(), st)
	if err != nil {
		t.Fatalf("load game: %v", err)
	}

	answerCorrectly(t, g)
	answerWrongly(t, g)
	if err := g.End(ctx); err != nil {
		t.Fatalf("end: %v", err)
	}

	// Events landed.
	total, correct, err := st.EventRepo().AnswerTotals(ctx)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if total != 2 || correct != 1 {
		t.Errorf("totals = %d/%d, want 2/1", correct, total)
	}
	tickets, err := st.EventRepo().TicketTotal(ctx)
	if err != nil {
		t.Fatalf("tickets: %v", err)
	}
	if tickets != 1 {
		t.Errorf("tickets = %d, want 1", tickets)
	}

	// A second session restores from the snapshot.
	g2, err := LoadGame(ctx, testCatalog(), st)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if g2.Progress().Tickets != 1 || g2.Progress().Score != 1 {
		t.Errorf("restored progress = %+v", g2.Progress())
	}
	if g2.ReviewLen() != 1 {
		t.Errorf("restored review len = %d, want 1", g2.ReviewLen())
	}
}

func TestLoadGameCorruptSnapshot(t *testing.T) {
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()
	ctx := context.Background()

	// A snapshot row whose payload no longer decodes must not block play.
	_, err = st.Client().Snapshot.Create().
		SetSequence(1).
		SetTimestamp(time.Now()).
		SetData(map[string]any{"progress": "corrupt"}).
		Save(ctx)
	if err != nil {
		t.Fatalf("insert corrupt snapshot: %v", err)
	}

	g, err := LoadGame(ctx, testCatalog(), st)
	if err != nil {
		t.Fatalf("load game: %v", err)
	}
	p := g.Progress()
	if p.CountryID != "france" || p.LandmarkID != "eiffel-tower" || p.Tickets != 0 {
		t.Errorf("progress = %+v, want a fresh journey", p)
	}

	// The fresh session still plays and persists.
	answerCorrectly(t, g)
	if err := g.End(ctx); err != nil {
		t.Fatalf("end: %v", err)
	}
}

func TestProgressTimestamps(t *testing.T) {
	g := newTestGame(t)
	before := time.Now()
	answerCorrectly(t, g)
	if g.Progress().UpdatedAt.Before(before) {
		t.Error("UpdatedAt should move on answers")
	}
}
