package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answer event within a session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("landmark_id").
			NotEmpty().
			Comment("Landmark the player was exploring"),
		field.String("question_id").
			NotEmpty().
			Comment("Generated question id, the history key"),
		field.String("math_type").
			NotEmpty().
			Comment("addition, subtraction, multiplication, division, fractions"),
		field.Int("difficulty").
			Comment("Difficulty 1-5 the question was generated at"),
		field.String("question_text").
			NotEmpty().
			Comment("The question shown"),
		field.String("correct_answer").
			NotEmpty().
			Comment("The canonical correct answer"),
		field.String("player_answer").
			NotEmpty().
			Comment("What the player entered"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Int("time_ms").
			Comment("Milliseconds to answer"),
		field.Bool("hint_shown").
			Default(false).
			Comment("Whether the hint was revealed before answering"),
		field.Bool("review").
			Default(false).
			Comment("Whether this was a re-asked review question"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("question_id"),
		index.Fields("math_type"),
		index.Fields("correct"),
	}
}
