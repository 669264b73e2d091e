// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/mathtravel/ent/answerevent"
	"github.com/abhisek/mathtravel/ent/journeyevent"
	"github.com/abhisek/mathtravel/ent/masteryevent"
	"github.com/abhisek/mathtravel/ent/schema"
	"github.com/abhisek/mathtravel/ent/sessionevent"
	"github.com/abhisek/mathtravel/ent/setting"
	"github.com/abhisek/mathtravel/ent/snapshot"
	"github.com/abhisek/mathtravel/ent/ticketevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescLandmarkID is the schema descriptor for landmark_id field.
	answereventDescLandmarkID := answereventFields[1].Descriptor()
	// answerevent.LandmarkIDValidator is a validator for the "landmark_id" field. It is called by the builders before save.
	answerevent.LandmarkIDValidator = answereventDescLandmarkID.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[2].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescMathType is the schema descriptor for math_type field.
	answereventDescMathType := answereventFields[3].Descriptor()
	// answerevent.MathTypeValidator is a validator for the "math_type" field. It is called by the builders before save.
	answerevent.MathTypeValidator = answereventDescMathType.Validators[0].(func(string) error)
	// answereventDescQuestionText is the schema descriptor for question_text field.
	answereventDescQuestionText := answereventFields[5].Descriptor()
	// answerevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	answerevent.QuestionTextValidator = answereventDescQuestionText.Validators[0].(func(string) error)
	// answereventDescCorrectAnswer is the schema descriptor for correct_answer field.
	answereventDescCorrectAnswer := answereventFields[6].Descriptor()
	// answerevent.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	answerevent.CorrectAnswerValidator = answereventDescCorrectAnswer.Validators[0].(func(string) error)
	// answereventDescPlayerAnswer is the schema descriptor for player_answer field.
	answereventDescPlayerAnswer := answereventFields[7].Descriptor()
	// answerevent.PlayerAnswerValidator is a validator for the "player_answer" field. It is called by the builders before save.
	answerevent.PlayerAnswerValidator = answereventDescPlayerAnswer.Validators[0].(func(string) error)
	// answereventDescHintShown is the schema descriptor for hint_shown field.
	answereventDescHintShown := answereventFields[10].Descriptor()
	// answerevent.DefaultHintShown holds the default value on creation for the hint_shown field.
	answerevent.DefaultHintShown = answereventDescHintShown.Default.(bool)
	// answereventDescReview is the schema descriptor for review field.
	answereventDescReview := answereventFields[11].Descriptor()
	// answerevent.DefaultReview holds the default value on creation for the review field.
	answerevent.DefaultReview = answereventDescReview.Default.(bool)
	journeyeventMixin := schema.JourneyEvent{}.Mixin()
	journeyeventMixinFields0 := journeyeventMixin[0].Fields()
	_ = journeyeventMixinFields0
	journeyeventFields := schema.JourneyEvent{}.Fields()
	_ = journeyeventFields
	// journeyeventDescTimestamp is the schema descriptor for timestamp field.
	journeyeventDescTimestamp := journeyeventMixinFields0[1].Descriptor()
	// journeyevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	journeyevent.DefaultTimestamp = journeyeventDescTimestamp.Default.(func() time.Time)
	// journeyeventDescAction is the schema descriptor for action field.
	journeyeventDescAction := journeyeventFields[0].Descriptor()
	// journeyevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	journeyevent.ActionValidator = journeyeventDescAction.Validators[0].(func(string) error)
	// journeyeventDescCountryID is the schema descriptor for country_id field.
	journeyeventDescCountryID := journeyeventFields[1].Descriptor()
	// journeyevent.CountryIDValidator is a validator for the "country_id" field. It is called by the builders before save.
	journeyevent.CountryIDValidator = journeyeventDescCountryID.Validators[0].(func(string) error)
	// journeyeventDescScore is the schema descriptor for score field.
	journeyeventDescScore := journeyeventFields[3].Descriptor()
	// journeyevent.DefaultScore holds the default value on creation for the score field.
	journeyevent.DefaultScore = journeyeventDescScore.Default.(int)
	// journeyeventDescSessionID is the schema descriptor for session_id field.
	journeyeventDescSessionID := journeyeventFields[4].Descriptor()
	// journeyevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	journeyevent.SessionIDValidator = journeyeventDescSessionID.Validators[0].(func(string) error)
	masteryeventMixin := schema.MasteryEvent{}.Mixin()
	masteryeventMixinFields0 := masteryeventMixin[0].Fields()
	_ = masteryeventMixinFields0
	masteryeventFields := schema.MasteryEvent{}.Fields()
	_ = masteryeventFields
	// masteryeventDescTimestamp is the schema descriptor for timestamp field.
	masteryeventDescTimestamp := masteryeventMixinFields0[1].Descriptor()
	// masteryevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	masteryevent.DefaultTimestamp = masteryeventDescTimestamp.Default.(func() time.Time)
	// masteryeventDescMathType is the schema descriptor for math_type field.
	masteryeventDescMathType := masteryeventFields[0].Descriptor()
	// masteryevent.MathTypeValidator is a validator for the "math_type" field. It is called by the builders before save.
	masteryevent.MathTypeValidator = masteryeventDescMathType.Validators[0].(func(string) error)
	// masteryeventDescTrigger is the schema descriptor for trigger field.
	masteryeventDescTrigger := masteryeventFields[3].Descriptor()
	// masteryevent.TriggerValidator is a validator for the "trigger" field. It is called by the builders before save.
	masteryevent.TriggerValidator = masteryeventDescTrigger.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescQuestionsAnswered is the schema descriptor for questions_answered field.
	sessioneventDescQuestionsAnswered := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultQuestionsAnswered holds the default value on creation for the questions_answered field.
	sessionevent.DefaultQuestionsAnswered = sessioneventDescQuestionsAnswered.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescTicketsEarned is the schema descriptor for tickets_earned field.
	sessioneventDescTicketsEarned := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultTicketsEarned holds the default value on creation for the tickets_earned field.
	sessionevent.DefaultTicketsEarned = sessioneventDescTicketsEarned.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	settingFields := schema.Setting{}.Fields()
	_ = settingFields
	// settingDescAdaptiveDifficulty is the schema descriptor for adaptive_difficulty field.
	settingDescAdaptiveDifficulty := settingFields[0].Descriptor()
	// setting.DefaultAdaptiveDifficulty holds the default value on creation for the adaptive_difficulty field.
	setting.DefaultAdaptiveDifficulty = settingDescAdaptiveDifficulty.Default.(bool)
	// settingDescHintLevel is the schema descriptor for hint_level field.
	settingDescHintLevel := settingFields[1].Descriptor()
	// setting.DefaultHintLevel holds the default value on creation for the hint_level field.
	setting.DefaultHintLevel = settingDescHintLevel.Default.(string)
	// settingDescUpdatedAt is the schema descriptor for updated_at field.
	settingDescUpdatedAt := settingFields[2].Descriptor()
	// setting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	setting.DefaultUpdatedAt = settingDescUpdatedAt.Default.(func() time.Time)
	// setting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	setting.UpdateDefaultUpdatedAt = settingDescUpdatedAt.UpdateDefault.(func() time.Time)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	ticketeventMixin := schema.TicketEvent{}.Mixin()
	ticketeventMixinFields0 := ticketeventMixin[0].Fields()
	_ = ticketeventMixinFields0
	ticketeventFields := schema.TicketEvent{}.Fields()
	_ = ticketeventFields
	// ticketeventDescTimestamp is the schema descriptor for timestamp field.
	ticketeventDescTimestamp := ticketeventMixinFields0[1].Descriptor()
	// ticketevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	ticketevent.DefaultTimestamp = ticketeventDescTimestamp.Default.(func() time.Time)
	// ticketeventDescAmount is the schema descriptor for amount field.
	ticketeventDescAmount := ticketeventFields[0].Descriptor()
	// ticketevent.AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	ticketevent.AmountValidator = ticketeventDescAmount.Validators[0].(func(int) error)
	// ticketeventDescReason is the schema descriptor for reason field.
	ticketeventDescReason := ticketeventFields[1].Descriptor()
	// ticketevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	ticketevent.ReasonValidator = ticketeventDescReason.Validators[0].(func(string) error)
	// ticketeventDescSessionID is the schema descriptor for session_id field.
	ticketeventDescSessionID := ticketeventFields[3].Descriptor()
	// ticketevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	ticketevent.SessionIDValidator = ticketeventDescSessionID.Validators[0].(func(string) error)
}
