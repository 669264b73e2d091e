// Code generated by ent, DO NOT EDIT.

package journeyevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mathtravel/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldAction, v))
}

// CountryID applies equality check predicate on the "country_id" field. It's identical to CountryIDEQ.
func CountryID(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldCountryID, v))
}

// LandmarkID applies equality check predicate on the "landmark_id" field. It's identical to LandmarkIDEQ.
func LandmarkID(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldLandmarkID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldScore, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldSessionID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldContainsFold(FieldAction, v))
}

// CountryIDEQ applies the EQ predicate on the "country_id" field.
func CountryIDEQ(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldCountryID, v))
}

// CountryIDNEQ applies the NEQ predicate on the "country_id" field.
func CountryIDNEQ(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNEQ(FieldCountryID, v))
}

// CountryIDIn applies the In predicate on the "country_id" field.
func CountryIDIn(vs ...string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldIn(FieldCountryID, vs...))
}

// CountryIDNotIn applies the NotIn predicate on the "country_id" field.
func CountryIDNotIn(vs ...string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNotIn(FieldCountryID, vs...))
}

// CountryIDGT applies the GT predicate on the "country_id" field.
func CountryIDGT(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGT(FieldCountryID, v))
}

// CountryIDGTE applies the GTE predicate on the "country_id" field.
func CountryIDGTE(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGTE(FieldCountryID, v))
}

// CountryIDLT applies the LT predicate on the "country_id" field.
func CountryIDLT(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLT(FieldCountryID, v))
}

// CountryIDLTE applies the LTE predicate on the "country_id" field.
func CountryIDLTE(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLTE(FieldCountryID, v))
}

// CountryIDContains applies the Contains predicate on the "country_id" field.
func CountryIDContains(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldContains(FieldCountryID, v))
}

// CountryIDHasPrefix applies the HasPrefix predicate on the "country_id" field.
func CountryIDHasPrefix(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldHasPrefix(FieldCountryID, v))
}

// CountryIDHasSuffix applies the HasSuffix predicate on the "country_id" field.
func CountryIDHasSuffix(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldHasSuffix(FieldCountryID, v))
}

// CountryIDEqualFold applies the EqualFold predicate on the "country_id" field.
func CountryIDEqualFold(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEqualFold(FieldCountryID, v))
}

// CountryIDContainsFold applies the ContainsFold predicate on the "country_id" field.
func CountryIDContainsFold(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldContainsFold(FieldCountryID, v))
}

// LandmarkIDEQ applies the EQ predicate on the "landmark_id" field.
func LandmarkIDEQ(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldLandmarkID, v))
}

// LandmarkIDNEQ applies the NEQ predicate on the "landmark_id" field.
func LandmarkIDNEQ(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNEQ(FieldLandmarkID, v))
}

// LandmarkIDIn applies the In predicate on the "landmark_id" field.
func LandmarkIDIn(vs ...string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldIn(FieldLandmarkID, vs...))
}

// LandmarkIDNotIn applies the NotIn predicate on the "landmark_id" field.
func LandmarkIDNotIn(vs ...string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNotIn(FieldLandmarkID, vs...))
}

// LandmarkIDGT applies the GT predicate on the "landmark_id" field.
func LandmarkIDGT(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGT(FieldLandmarkID, v))
}

// LandmarkIDGTE applies the GTE predicate on the "landmark_id" field.
func LandmarkIDGTE(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGTE(FieldLandmarkID, v))
}

// LandmarkIDLT applies the LT predicate on the "landmark_id" field.
func LandmarkIDLT(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLT(FieldLandmarkID, v))
}

// LandmarkIDLTE applies the LTE predicate on the "landmark_id" field.
func LandmarkIDLTE(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLTE(FieldLandmarkID, v))
}

// LandmarkIDContains applies the Contains predicate on the "landmark_id" field.
func LandmarkIDContains(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldContains(FieldLandmarkID, v))
}

// LandmarkIDHasPrefix applies the HasPrefix predicate on the "landmark_id" field.
func LandmarkIDHasPrefix(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldHasPrefix(FieldLandmarkID, v))
}

// LandmarkIDHasSuffix applies the HasSuffix predicate on the "landmark_id" field.
func LandmarkIDHasSuffix(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldHasSuffix(FieldLandmarkID, v))
}

// LandmarkIDIsNil applies the IsNil predicate on the "landmark_id" field.
func LandmarkIDIsNil() predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldIsNull(FieldLandmarkID))
}

// LandmarkIDNotNil applies the NotNil predicate on the "landmark_id" field.
func LandmarkIDNotNil() predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNotNull(FieldLandmarkID))
}

// LandmarkIDEqualFold applies the EqualFold predicate on the "landmark_id" field.
func LandmarkIDEqualFold(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEqualFold(FieldLandmarkID, v))
}

// LandmarkIDContainsFold applies the ContainsFold predicate on the "landmark_id" field.
func LandmarkIDContainsFold(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldContainsFold(FieldLandmarkID, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLTE(FieldScore, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.JourneyEvent) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.JourneyEvent) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.JourneyEvent) predicate.JourneyEvent {
	return predicate.JourneyEvent(sql.NotPredicates(p))
}
