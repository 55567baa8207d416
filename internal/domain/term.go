package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Term is a named, typed attribute value of a contract (e.g. renewal date).
// A contract holds at most one term per key — applying a term replaces any
// prior value for the same key.
type Term struct {
	ContractID      uuid.UUID
	Key             string
	Name            string
	ValueType       ValueType
	ValueRaw        string
	ValueNormalized string
	// ValueDate is set when ValueType is date and the raw value parsed.
	// It is what event derivation reads.
	ValueDate  *time.Time
	Status     TermStatus
	Confidence float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TermValue is the normalized, typed form of a raw term value.
// Exactly one concrete type exists per ValueType.
type TermValue interface {
	Type() ValueType
	// Normalized returns the canonical string stored alongside the raw value.
	Normalized() string
}

// DateValue is a calendar date (UTC midnight).
type DateValue struct {
	Date time.Time
}

func (DateValue) Type() ValueType { return ValueTypeDate }
func (v DateValue) Normalized() string { return v.Date.Format("2006-01-02") }

// TextValue is free text, whitespace-normalized.
type TextValue struct {
	Text string
}

func (TextValue) Type() ValueType { return ValueTypeText }
func (v TextValue) Normalized() string { return v.Text }

// MoneyValue is an amount in integer minor units plus an ISO currency code.
type MoneyValue struct {
	Cents    int64
	Currency string
}

func (MoneyValue) Type() ValueType { return ValueTypeMoney }
func (v MoneyValue) Normalized() string {
	return fmt.Sprintf("%d.%02d %s", v.Cents/100, v.Cents%100, v.Currency)
}

// BoolValue is a boolean flag.
type BoolValue struct {
	Value bool
}

func (BoolValue) Type() ValueType { return ValueTypeBoolean }
func (v BoolValue) Normalized() string {
	if v.Value {
		return "true"
	}
	return "false"
}

// EnumValue is one of a per-key fixed set of labels.
type EnumValue struct {
	Value string
}

func (EnumValue) Type() ValueType { return ValueTypeEnum }
func (v EnumValue) Normalized() string { return v.Value }
