package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TicketEvent records a ticket award.
type TicketEvent struct {
	ent.Schema
}

func (TicketEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TicketEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("amount").
			Positive(),
		field.String("reason").
			NotEmpty().
			Comment("correct-answer"),
		field.String("question_id").
			Optional(),
		field.String("session_id").
			NotEmpty(),
	}
}

func (TicketEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("reason"),
	}
}
