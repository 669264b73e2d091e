package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures the full player state at a point in time.
type SnapshotData struct {
	Version  int                   `json:"version"`
	Progress *ProgressSnapshotData `json:"progress,omitempty"`
	Mastery  *MasterySnapshotData  `json:"mastery,omitempty"`
	Review   *ReviewSnapshotData   `json:"review,omitempty"`
}

// ProgressSnapshotData is the serialized journey position.
type ProgressSnapshotData struct {
	CountryID        string `json:"countryId"`
	LandmarkID       string `json:"landmarkId"`
	Score            int    `json:"score"`
	Tickets          int    `json:"tickets"`
	JourneyCompleted bool   `json:"journeyCompleted"`
	StartedAt        string `json:"startedAt,omitempty"`
	UpdatedAt        string `json:"updatedAt,omitempty"`
}

// MasterySnapshotData is the serialized mastery ladder state.
type MasterySnapshotData struct {
	Types  map[string]*MathTypeMasteryData `json:"types"`
	Recent []bool                          `json:"recent,omitempty"`
}

// MathTypeMasteryData is the per-type mastery record.
type MathTypeMasteryData struct {
	MathType      string `json:"mathType"`
	Level         int    `json:"level"`
	CorrectRun    int    `json:"correctRun"`
	IncorrectRun  int    `json:"incorrectRun"`
	TotalAttempts int    `json:"totalAttempts"`
	CorrectCount  int    `json:"correctCount"`
}

// ReviewSnapshotData is the serialized review queue, in queue order.
type ReviewSnapshotData struct {
	Entries []*ReviewEntryData `json:"entries"`
}

// ReviewEntryData carries a full queued question so the queue survives
// restarts without regenerating.
type ReviewEntryData struct {
	QuestionID string `json:"questionId"`
	Text       string `json:"text"`
	Answer     string `json:"answer"`
	Hint       string `json:"hint"`
	Difficulty int    `json:"difficulty"`
	MathType   string `json:"mathType"`
	EnqueuedAt string `json:"enqueuedAt"`
}

// Snapshot represents a point-in-time capture of player state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages player state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// AnswerEventData captures a single answer. QuestionID keys the
// append-only per-question history.
type AnswerEventData struct {
	SessionID     string
	LandmarkID    string
	QuestionID    string
	MathType      string
	Difficulty    int
	QuestionText  string
	CorrectAnswer string
	PlayerAnswer  string
	Correct       bool
	TimeMs        int
	HintShown     bool
	Review        bool
}

// AnswerEventRecord is a stored answer event.
type AnswerEventRecord struct {
	AnswerEventData
	Sequence  int64
	Timestamp time.Time
}

// JourneyEventData captures a journey progress event.
type JourneyEventData struct {
	Action     string // "landmark-complete", "country-enter", "journey-complete"
	CountryID  string
	LandmarkID string
	Score      int
	SessionID  string
}

// JourneyEventRecord is a stored journey event.
type JourneyEventRecord struct {
	JourneyEventData
	Sequence  int64
	Timestamp time.Time
}

// MasteryEventData captures a mastery level change.
type MasteryEventData struct {
	MathType  string
	FromLevel int
	ToLevel   int
	Trigger   string
	SessionID string
}

// TicketEventData captures a ticket award.
type TicketEventData struct {
	Amount     int
	Reason     string
	QuestionID string
	SessionID  string
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID         string
	Action            string // "start" or "end"
	QuestionsAnswered int
	CorrectAnswers    int
	TicketsEarned     int
	DurationSecs      int
}

// SessionSummaryRecord summarizes a completed session.
type SessionSummaryRecord struct {
	SessionID         string
	Timestamp         time.Time
	QuestionsAnswered int
	CorrectAnswers    int
	TicketsEarned     int
	DurationSecs      int
}

// AccuracyStat aggregates answer counts for one math type.
type AccuracyStat struct {
	Total   int
	Correct int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAnswerEvent records an answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// QueryAnswerEvents returns answer events, newest first.
	QueryAnswerEvents(ctx context.Context, opts QueryOpts) ([]AnswerEventRecord, error)

	// QuestionHistory returns every stored answer to one question, newest
	// first. History is append-only; entries are never deleted.
	QuestionHistory(ctx context.Context, questionID string) ([]AnswerEventRecord, error)

	// AnswerTotals returns lifetime answered and correct counts.
	AnswerTotals(ctx context.Context) (total, correct int, err error)

	// AccuracyByMathType aggregates answer counts per math type.
	AccuracyByMathType(ctx context.Context) (map[string]AccuracyStat, error)

	// AppendJourneyEvent records a journey progress event.
	AppendJourneyEvent(ctx context.Context, data JourneyEventData) error

	// QueryJourneyEvents returns journey events, newest first.
	QueryJourneyEvents(ctx context.Context, opts QueryOpts) ([]JourneyEventRecord, error)

	// AppendMasteryEvent records a mastery level change.
	AppendMasteryEvent(ctx context.Context, data MasteryEventData) error

	// AppendTicketEvent records a ticket award.
	AppendTicketEvent(ctx context.Context, data TicketEventData) error

	// TicketTotal returns the lifetime sum of awarded tickets.
	TicketTotal(ctx context.Context) (int, error)

	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// QuerySessionSummaries returns completed session summaries, newest first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)
}
