// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "landmark_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "math_type", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeInt},
		{Name: "question_text", Type: field.TypeString},
		{Name: "correct_answer", Type: field.TypeString},
		{Name: "player_answer", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "time_ms", Type: field.TypeInt},
		{Name: "hint_shown", Type: field.TypeBool, Default: false},
		{Name: "review", Type: field.TypeBool, Default: false},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_question_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[5]},
			},
			{
				Name:    "answerevent_math_type",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[6]},
			},
			{
				Name:    "answerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[11]},
			},
		},
	}
	// JourneyEventsColumns holds the columns for the "journey_events" table.
	JourneyEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "action", Type: field.TypeString},
		{Name: "country_id", Type: field.TypeString},
		{Name: "landmark_id", Type: field.TypeString, Nullable: true},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "session_id", Type: field.TypeString},
	}
	// JourneyEventsTable holds the schema information for the "journey_events" table.
	JourneyEventsTable = &schema.Table{
		Name:       "journey_events",
		Columns:    JourneyEventsColumns,
		PrimaryKey: []*schema.Column{JourneyEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "journeyevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{JourneyEventsColumns[1]},
			},
			{
				Name:    "journeyevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{JourneyEventsColumns[2]},
			},
			{
				Name:    "journeyevent_action",
				Unique:  false,
				Columns: []*schema.Column{JourneyEventsColumns[3]},
			},
			{
				Name:    "journeyevent_country_id",
				Unique:  false,
				Columns: []*schema.Column{JourneyEventsColumns[4]},
			},
			{
				Name:    "journeyevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{JourneyEventsColumns[7]},
			},
		},
	}
	// MasteryEventsColumns holds the columns for the "mastery_events" table.
	MasteryEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "math_type", Type: field.TypeString},
		{Name: "from_level", Type: field.TypeInt},
		{Name: "to_level", Type: field.TypeInt},
		{Name: "trigger", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
	}
	// MasteryEventsTable holds the schema information for the "mastery_events" table.
	MasteryEventsTable = &schema.Table{
		Name:       "mastery_events",
		Columns:    MasteryEventsColumns,
		PrimaryKey: []*schema.Column{MasteryEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[1]},
			},
			{
				Name:    "masteryevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[2]},
			},
			{
				Name:    "masteryevent_math_type",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[3]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "questions_answered", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "tickets_earned", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
		},
	}
	// SettingsColumns holds the columns for the "settings" table.
	SettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "adaptive_difficulty", Type: field.TypeBool, Default: true},
		{Name: "hint_level", Type: field.TypeString, Default: "medium"},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SettingsTable holds the schema information for the "settings" table.
	SettingsTable = &schema.Table{
		Name:       "settings",
		Columns:    SettingsColumns,
		PrimaryKey: []*schema.Column{SettingsColumns[0]},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// TicketEventsColumns holds the columns for the "ticket_events" table.
	TicketEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "amount", Type: field.TypeInt},
		{Name: "reason", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
	}
	// TicketEventsTable holds the schema information for the "ticket_events" table.
	TicketEventsTable = &schema.Table{
		Name:       "ticket_events",
		Columns:    TicketEventsColumns,
		PrimaryKey: []*schema.Column{TicketEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ticketevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{TicketEventsColumns[1]},
			},
			{
				Name:    "ticketevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TicketEventsColumns[2]},
			},
			{
				Name:    "ticketevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{TicketEventsColumns[6]},
			},
			{
				Name:    "ticketevent_reason",
				Unique:  false,
				Columns: []*schema.Column{TicketEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		JourneyEventsTable,
		MasteryEventsTable,
		SessionEventsTable,
		SettingsTable,
		SnapshotsTable,
		TicketEventsTable,
	}
)

func init() {
}
