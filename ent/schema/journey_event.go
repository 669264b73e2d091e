package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// JourneyEvent records progress through the world map: landmark
// completions, country entries, and the final journey completion.
type JourneyEvent struct {
	ent.Schema
}

func (JourneyEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (JourneyEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("action").
			NotEmpty().
			Comment("landmark-complete, country-enter, or journey-complete"),
		field.String("country_id").
			NotEmpty(),
		field.String("landmark_id").
			Optional().
			Comment("Empty for country-enter"),
		field.Int("score").
			Default(0).
			Comment("Landmark score at the time of the event"),
		field.String("session_id").
			NotEmpty(),
	}
}

func (JourneyEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("action"),
		index.Fields("country_id"),
		index.Fields("session_id"),
	}
}
