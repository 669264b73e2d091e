// Code generated by ent, DO NOT EDIT.

package setting

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the setting type in the database.
	Label = "setting"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAdaptiveDifficulty holds the string denoting the adaptive_difficulty field in the database.
	FieldAdaptiveDifficulty = "adaptive_difficulty"
	// FieldHintLevel holds the string denoting the hint_level field in the database.
	FieldHintLevel = "hint_level"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the setting in the database.
	Table = "settings"
)

// Columns holds all SQL columns for setting fields.
var Columns = []string{
	FieldID,
	FieldAdaptiveDifficulty,
	FieldHintLevel,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultAdaptiveDifficulty holds the default value on creation for the "adaptive_difficulty" field.
	DefaultAdaptiveDifficulty bool
	// DefaultHintLevel holds the default value on creation for the "hint_level" field.
	DefaultHintLevel string
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Setting queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAdaptiveDifficulty orders the results by the adaptive_difficulty field.
func ByAdaptiveDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdaptiveDifficulty, opts...).ToFunc()
}

// ByHintLevel orders the results by the hint_level field.
func ByHintLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHintLevel, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
