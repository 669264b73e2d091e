package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mathtravel/internal/content"
	"github.com/abhisek/mathtravel/internal/mastery"
	"github.com/abhisek/mathtravel/internal/problemgen"
	"github.com/abhisek/mathtravel/internal/review"
	"github.com/abhisek/mathtravel/internal/store"
)

// ErrEmptyCatalog is returned when a game is started without any countries.
var ErrEmptyCatalog = errors.New("content catalog is empty")

// FixedDifficulty is used for every question when adaptive difficulty is
// turned off.
const FixedDifficulty = 2

// Game is the aggregate for one play session: journey position, mastery
// ladder, review queue, and question flow. It persists a snapshot after
// every answer so quitting mid-landmark loses nothing.
type Game struct {
	catalog  *content.Catalog
	gen      *problemgen.Generator
	pool     *problemgen.Pool
	mastery  *mastery.Tracker
	review   *review.Queue
	progress *Progress
	settings store.SettingsData

	snapRepo  store.SnapshotRepo
	eventRepo store.EventRepo

	sessionID string
	startTime time.Time
	snapSeq   int64

	current         *problemgen.Question
	currentIsReview bool
	questionStart   time.Time
	hintShown       bool

	pendingTransition *Transition

	// Session counters for the end-of-session summary.
	QuestionsAnswered int
	CorrectAnswers    int
	TicketsEarned     int
}

// AnswerResult describes the outcome of one submitted answer.
type AnswerResult struct {
	Correct       bool
	CorrectAnswer string
	Question      *problemgen.Question
	WasReview     bool
	LevelChanges  []mastery.LevelChange
	TicketsWon    int

	// Transition is non-nil when the answer completed the landmark. The
	// caller shows the transition screen and then calls AdvanceLandmark.
	Transition *Transition
}

// Transition is the one-shot token produced when a landmark is completed.
// It carries everything the transition screen needs and is consumed by
// AdvanceLandmark.
type Transition struct {
	Country  content.Country
	Landmark content.Landmark
	FunFact  string

	NextCountry     content.Country
	NextLandmark    content.Landmark
	EnteringCountry bool // next landmark is in a new country
	JourneyComplete bool // no next landmark
}

// NewGame builds a game from restored state. Repos may be nil in tests;
// events and snapshots are then skipped.
func NewGame(
	catalog *content.Catalog,
	snap *store.SnapshotData,
	settings store.SettingsData,
	snapRepo store.SnapshotRepo,
	eventRepo store.EventRepo,
) (*Game, error) {
	if catalog.Empty() {
		return nil, ErrEmptyCatalog
	}

	gen := problemgen.New()
	g := &Game{
		catalog:   catalog,
		gen:       gen,
		pool:      problemgen.NewPool(gen.InitialSet()),
		mastery:   mastery.NewTracker(snap),
		review:    review.NewQueue(snap),
		progress:  NewProgress(snap, catalog),
		settings:  settings,
		snapRepo:  snapRepo,
		eventRepo: eventRepo,
		sessionID: uuid.NewString(),
		startTime: time.Now(),
	}
	return g, nil
}

// LoadGame opens the stored state and starts a session, recording the
// session start event. A snapshot or settings load failure degrades to a
// fresh game with default settings rather than blocking play.
func LoadGame(ctx context.Context, catalog *content.Catalog, st *store.Store) (*Game, error) {
	var data *store.SnapshotData
	var seq int64
	snap, err := st.SnapshotRepo().Latest(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "session: failed to load snapshot, starting fresh:", err)
	} else if snap != nil {
		data = &snap.Data
		seq = snap.Sequence
	}

	settings, err := st.SettingsRepo().Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "session: failed to load settings, using defaults:", err)
		settings = store.DefaultSettings()
	}

	g, err := NewGame(catalog, data, settings, st.SnapshotRepo(), st.EventRepo())
	if err != nil {
		return nil, err
	}
	g.snapSeq = seq

	if g.eventRepo != nil {
		_ = g.eventRepo.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID: g.sessionID,
			Action:    "start",
		})
	}
	return g, nil
}

// NextQuestion returns the question to show, serving queued review
// questions before fresh ones. The same question is returned until it is
// answered.
func (g *Game) NextQuestion() *problemgen.Question {
	if g.current != nil {
		return g.current
	}

	if q := g.review.Next(); q != nil {
		g.setCurrent(q, true)
		return g.current
	}

	types := g.mastery.EligibleTypes()
	q, err := g.gen.Generate(types, g.difficultyFor(types))
	if err != nil {
		q = g.pool.Random()
		if q == nil {
			return nil
		}
	}
	g.setCurrent(q, false)
	return g.current
}

func (g *Game) setCurrent(q *problemgen.Question, isReview bool) {
	g.current = q
	g.currentIsReview = isReview
	g.questionStart = time.Now()
	g.hintShown = false
}

// difficultyFor picks the difficulty for the next question. With adaptive
// difficulty off every question is generated at FixedDifficulty.
func (g *Game) difficultyFor(types []problemgen.MathType) int {
	if !g.settings.AdaptiveDifficulty {
		return FixedDifficulty
	}
	// The generator picks the type; use the least-advanced eligible type
	// so its difficulty is never out of reach.
	d := problemgen.MaxDifficulty
	for _, t := range types {
		if td := g.mastery.Difficulty(t); td < d {
			d = td
		}
	}
	return d
}

// SubmitAnswer checks the player's input against the current question and
// applies every consequence: counters, mastery, tickets, review scheduling,
// events, and the post-answer snapshot. Empty input is a silent no-op.
func (g *Game) SubmitAnswer(ctx context.Context, input string) (*AnswerResult, error) {
	if g.current == nil {
		return nil, nil
	}
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}

	q := g.current
	correct := problemgen.CheckAnswer(input, q)
	timeMs := int(time.Since(g.questionStart).Milliseconds())

	g.QuestionsAnswered++
	if correct {
		g.CorrectAnswers++
	}

	result := &AnswerResult{
		Correct:       correct,
		CorrectAnswer: q.Answer,
		Question:      q,
		WasReview:     g.currentIsReview,
	}

	// Mastery before rewards, so level changes reflect this answer.
	result.LevelChanges = g.mastery.RecordAnswer(q.Type, correct)

	if correct {
		result.TicketsWon = 1
		g.TicketsEarned++
		g.progress.Tickets++
		if g.progress.Score < MaxScore {
			g.progress.Score++
		}
		if g.progress.Score >= MaxScore && g.pendingTransition == nil && !g.progress.JourneyCompleted {
			result.Transition = g.completeLandmark(ctx)
		}
	} else {
		g.review.Schedule(*q, time.Now())
	}
	g.progress.UpdatedAt = time.Now()

	g.appendAnswerEvents(ctx, q, input, correct, timeMs, result)

	g.current = nil
	g.currentIsReview = false

	if err := g.saveSnapshot(ctx); err != nil {
		return result, err
	}
	return result, nil
}

func (g *Game) appendAnswerEvents(ctx context.Context, q *problemgen.Question, input string, correct bool, timeMs int, result *AnswerResult) {
	if g.eventRepo == nil {
		return
	}

	_ = g.eventRepo.AppendAnswerEvent(ctx, store.AnswerEventData{
		SessionID:     g.sessionID,
		LandmarkID:    g.progress.LandmarkID,
		QuestionID:    q.ID,
		MathType:      string(q.Type),
		Difficulty:    q.Difficulty,
		QuestionText:  q.Text,
		CorrectAnswer: q.Answer,
		PlayerAnswer:  strings.TrimSpace(input),
		Correct:       correct,
		TimeMs:        timeMs,
		HintShown:     g.hintShown,
		Review:        g.currentIsReview,
	})

	for _, change := range result.LevelChanges {
		_ = g.eventRepo.AppendMasteryEvent(ctx, store.MasteryEventData{
			MathType:  string(change.MathType),
			FromLevel: change.From,
			ToLevel:   change.To,
			Trigger:   change.Trigger,
			SessionID: g.sessionID,
		})
	}

	if result.TicketsWon > 0 {
		_ = g.eventRepo.AppendTicketEvent(ctx, store.TicketEventData{
			Amount:     result.TicketsWon,
			Reason:     "correct-answer",
			QuestionID: q.ID,
			SessionID:  g.sessionID,
		})
	}

	if result.Transition != nil {
		_ = g.eventRepo.AppendJourneyEvent(ctx, store.JourneyEventData{
			Action:     "landmark-complete",
			CountryID:  g.progress.CountryID,
			LandmarkID: g.progress.LandmarkID,
			Score:      g.progress.Score,
			SessionID:  g.sessionID,
		})
	}
}

// completeLandmark builds the transition token for the just-finished
// landmark. Progress does not move until AdvanceLandmark consumes it.
func (g *Game) completeLandmark(ctx context.Context) *Transition {
	country, ok := g.catalog.Country(g.progress.CountryID)
	if !ok {
		return nil
	}
	landmark, ok := g.catalog.Landmark(g.progress.LandmarkID)
	if !ok {
		return nil
	}

	t := &Transition{
		Country:  country,
		Landmark: landmark,
		FunFact:  landmark.FunFact,
	}

	nextCountry, nextLandmark, ok := g.catalog.NextLandmark(country.ID, landmark.ID)
	if !ok {
		t.JourneyComplete = true
	} else {
		t.NextCountry = nextCountry
		t.NextLandmark = nextLandmark
		t.EnteringCountry = nextCountry.ID != country.ID
	}

	g.pendingTransition = t
	return t
}

// PendingTransition returns the unconsumed transition, if any.
func (g *Game) PendingTransition() *Transition {
	return g.pendingTransition
}

// AdvanceLandmark consumes the pending transition: progress moves to the
// next landmark (or the journey completes), events are recorded, and the
// snapshot is saved. Calling with nothing pending is a no-op.
func (g *Game) AdvanceLandmark(ctx context.Context) error {
	t := g.pendingTransition
	if t == nil {
		return nil
	}
	g.pendingTransition = nil

	if t.JourneyComplete {
		g.progress.JourneyCompleted = true
		if g.eventRepo != nil {
			_ = g.eventRepo.AppendJourneyEvent(ctx, store.JourneyEventData{
				Action:    "journey-complete",
				CountryID: g.progress.CountryID,
				SessionID: g.sessionID,
			})
		}
	} else {
		g.progress.CountryID = t.NextCountry.ID
		g.progress.LandmarkID = t.NextLandmark.ID
		g.progress.Score = 0
		if t.EnteringCountry && g.eventRepo != nil {
			_ = g.eventRepo.AppendJourneyEvent(ctx, store.JourneyEventData{
				Action:    "country-enter",
				CountryID: t.NextCountry.ID,
				SessionID: g.sessionID,
			})
		}
	}
	g.progress.UpdatedAt = time.Now()

	return g.saveSnapshot(ctx)
}

// HintText returns the hint to show for the current question, honoring the
// hint level setting. Minimal players get no hint text. Marks the hint as
// shown for event logging.
func (g *Game) HintText() string {
	if g.current == nil || g.settings.HintLevel == store.HintMinimal {
		return ""
	}
	g.hintShown = true
	hint := g.current.Hint
	if g.settings.HintLevel == store.HintDetailed {
		hint += fmt.Sprintf(" The answer has %d characters.", len(g.current.Answer))
	}
	return hint
}

// HintsImmediate reports whether hints should be shown without asking.
func (g *Game) HintsImmediate() bool {
	return g.settings.HintLevel == store.HintDetailed
}

// End closes the session: records the end event, saves and prunes
// snapshots.
func (g *Game) End(ctx context.Context) error {
	if g.eventRepo != nil {
		_ = g.eventRepo.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:         g.sessionID,
			Action:            "end",
			QuestionsAnswered: g.QuestionsAnswered,
			CorrectAnswers:    g.CorrectAnswers,
			TicketsEarned:     g.TicketsEarned,
			DurationSecs:      int(time.Since(g.startTime).Seconds()),
		})
	}

	if err := g.saveSnapshot(ctx); err != nil {
		return err
	}
	if g.snapRepo != nil {
		if err := g.snapRepo.Prune(ctx, 20); err != nil {
			return fmt.Errorf("prune snapshots: %w", err)
		}
	}
	return nil
}

func (g *Game) saveSnapshot(ctx context.Context) error {
	if g.snapRepo == nil {
		return nil
	}
	g.snapSeq++
	err := g.snapRepo.Save(ctx, &store.Snapshot{
		Sequence:  g.snapSeq,
		Timestamp: time.Now(),
		Data:      *g.SnapshotData(),
	})
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// SnapshotData exports the full game state for persistence.
func (g *Game) SnapshotData() *store.SnapshotData {
	return &store.SnapshotData{
		Version:  1,
		Progress: g.progress.SnapshotData(),
		Mastery:  g.mastery.SnapshotData(),
		Review:   g.review.SnapshotData(),
	}
}

// Progress returns the journey position.
func (g *Game) Progress() *Progress {
	return g.progress
}

// Mastery returns the mastery tracker.
func (g *Game) Mastery() *mastery.Tracker {
	return g.mastery
}

// CurrentIsReview reports whether the current question came from the
// review queue.
func (g *Game) CurrentIsReview() bool {
	return g.currentIsReview
}

// ReviewLen returns the number of queued review questions.
func (g *Game) ReviewLen() int {
	return g.review.Len()
}

// Settings returns the session's settings.
func (g *Game) Settings() store.SettingsData {
	return g.settings
}

// SessionID returns the session UUID.
func (g *Game) SessionID() string {
	return g.sessionID
}

// CurrentLandmark resolves the landmark the player is exploring.
func (g *Game) CurrentLandmark() (content.Country, content.Landmark, bool) {
	country, ok := g.catalog.Country(g.progress.CountryID)
	if !ok {
		return content.Country{}, content.Landmark{}, false
	}
	landmark, ok := g.catalog.Landmark(g.progress.LandmarkID)
	if !ok {
		return content.Country{}, content.Landmark{}, false
	}
	return country, landmark, true
}
