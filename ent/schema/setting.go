package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Setting holds the player's preferences as a single row, updated in
// place rather than event-sourced.
type Setting struct {
	ent.Schema
}

func (Setting) Fields() []ent.Field {
	return []ent.Field{
		field.Bool("adaptive_difficulty").
			Default(true).
			Comment("Whether difficulty follows mastery levels"),
		field.String("hint_level").
			Default("medium").
			Comment("minimal, medium, or detailed"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
