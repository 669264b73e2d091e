// Code generated by ent, DO NOT EDIT.

package setting

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mathtravel/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Setting {
	return predicate.Setting(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Setting {
	return predicate.Setting(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Setting {
	return predicate.Setting(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Setting {
	return predicate.Setting(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Setting {
	return predicate.Setting(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Setting {
	return predicate.Setting(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Setting {
	return predicate.Setting(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Setting {
	return predicate.Setting(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Setting {
	return predicate.Setting(sql.FieldLTE(FieldID, id))
}

// AdaptiveDifficulty applies equality check predicate on the "adaptive_difficulty" field. It's identical to AdaptiveDifficultyEQ.
func AdaptiveDifficulty(v bool) predicate.Setting {
	return predicate.Setting(sql.FieldEQ(FieldAdaptiveDifficulty, v))
}

// HintLevel applies equality check predicate on the "hint_level" field. It's identical to HintLevelEQ.
func HintLevel(v string) predicate.Setting {
	return predicate.Setting(sql.FieldEQ(FieldHintLevel, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Setting {
	return predicate.Setting(sql.FieldEQ(FieldUpdatedAt, v))
}

// AdaptiveDifficultyEQ applies the EQ predicate on the "adaptive_difficulty" field.
func AdaptiveDifficultyEQ(v bool) predicate.Setting {
	return predicate.Setting(sql.FieldEQ(FieldAdaptiveDifficulty, v))
}

// AdaptiveDifficultyNEQ applies the NEQ predicate on the "adaptive_difficulty" field.
func AdaptiveDifficultyNEQ(v bool) predicate.Setting {
	return predicate.Setting(sql.FieldNEQ(FieldAdaptiveDifficulty, v))
}

// HintLevelEQ applies the EQ predicate on the "hint_level" field.
func HintLevelEQ(v string) predicate.Setting {
	return predicate.Setting(sql.FieldEQ(FieldHintLevel, v))
}

// HintLevelNEQ applies the NEQ predicate on the "hint_level" field.
func HintLevelNEQ(v string) predicate.Setting {
	return predicate.Setting(sql.FieldNEQ(FieldHintLevel, v))
}

// HintLevelIn applies the In predicate on the "hint_level" field.
func HintLevelIn(vs ...string) predicate.Setting {
	return predicate.Setting(sql.FieldIn(FieldHintLevel, vs...))
}

// HintLevelNotIn applies the NotIn predicate on the "hint_level" field.
func HintLevelNotIn(vs ...string) predicate.Setting {
	return predicate.Setting(sql.FieldNotIn(FieldHintLevel, vs...))
}

// HintLevelGT applies the GT predicate on the "hint_level" field.
func HintLevelGT(v string) predicate.Setting {
	return predicate.Setting(sql.FieldGT(FieldHintLevel, v))
}

// HintLevelGTE applies the GTE predicate on the "hint_level" field.
func HintLevelGTE(v string) predicate.Setting {
	return predicate.Setting(sql.FieldGTE(FieldHintLevel, v))
}

// HintLevelLT applies the LT predicate on the "hint_level" field.
func HintLevelLT(v string) predicate.Setting {
	return predicate.Setting(sql.FieldLT(FieldHintLevel, v))
}

// HintLevelLTE applies the LTE predicate on the "hint_level" field.
func HintLevelLTE(v string) predicate.Setting {
	return predicate.Setting(sql.FieldLTE(FieldHintLevel, v))
}

// HintLevelContains applies the Contains predicate on the "hint_level" field.
func HintLevelContains(v string) predicate.Setting {
	return predicate.Setting(sql.FieldContains(FieldHintLevel, v))
}

// HintLevelHasPrefix applies the HasPrefix predicate on the "hint_level" field.
func HintLevelHasPrefix(v string) predicate.Setting {
	return predicate.Setting(sql.FieldHasPrefix(FieldHintLevel, v))
}

// HintLevelHasSuffix applies the HasSuffix predicate on the "hint_level" field.
func HintLevelHasSuffix(v string) predicate.Setting {
	return predicate.Setting(sql.FieldHasSuffix(FieldHintLevel, v))
}

// HintLevelEqualFold applies the EqualFold predicate on the "hint_level" field.
func HintLevelEqualFold(v string) predicate.Setting {
	return predicate.Setting(sql.FieldEqualFold(FieldHintLevel, v))
}

// HintLevelContainsFold applies the ContainsFold predicate on the "hint_level" field.
func HintLevelContainsFold(v string) predicate.Setting {
	return predicate.Setting(sql.FieldContainsFold(FieldHintLevel, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Setting {
	return predicate.Setting(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Setting {
	return predicate.Setting(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Setting {
	return predicate.Setting(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Setting {
	return predicate.Setting(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Setting {
	return predicate.Setting(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Setting {
	return predicate.Setting(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Setting {
	return predicate.Setting(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Setting {
	return predicate.Setting(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Setting) predicate.Setting {
	return predicate.Setting(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Setting) predicate.Setting {
	return predicate.Setting(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Setting) predicate.Setting {
	return predicate.Setting(sql.NotPredicates(p))
}
