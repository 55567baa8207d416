package domain

// ValueType is the declared type of a term value.
type ValueType string

const (
	ValueTypeDate    ValueType = "date"
	ValueTypeText    ValueType = "text"
	ValueTypeMoney   ValueType = "money"
	ValueTypeBoolean ValueType = "boolean"
	ValueTypeEnum    ValueType = "enum"
)

func (v ValueType) String() string { return string(v) }

func (v ValueType) IsValid() bool {
	switch v {
	case ValueTypeDate, ValueTypeText, ValueTypeMoney, ValueTypeBoolean, ValueTypeEnum:
		return true
	}
	return false
}

// TermStatus reflects how a term value entered the system. It is independent
// of whether the term currently implies a calendar event.
type TermStatus string

const (
	TermStatusExtracted TermStatus = "extracted"
	TermStatusVerified  TermStatus = "verified"
	TermStatusManual    TermStatus = "manual"
)

func (s TermStatus) String() string { return string(s) }

func (s TermStatus) IsValid() bool {
	switch s {
	case TermStatusExtracted, TermStatusVerified, TermStatusManual:
		return true
	}
	return false
}

// FireStatus classifies a single reminder fire date relative to "now".
type FireStatus string

const (
	FireStatusPending  FireStatus = "pending"
	FireStatusDue      FireStatus = "due"
	FireStatusPast     FireStatus = "past"
	FireStatusDisabled FireStatus = "disabled"
)

func (s FireStatus) String() string { return string(s) }

func (s FireStatus) IsValid() bool {
	switch s {
	case FireStatusPending, FireStatusDue, FireStatusPast, FireStatusDisabled:
		return true
	}
	return false
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
