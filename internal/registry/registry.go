// Package registry holds the canonical catalog of recognized contract term
// keys: their value types, validation/normalization rules, and the
// declarative mapping from date-valued keys to derived calendar event types.
//
// The mapping is data, not code — new derivable keys are added by extending
// the catalog (built-in or via configuration), never by touching the
// derivation algorithm.
package registry

import (
	"fmt"
	"slices"

	"github.com/pactwatch/pactwatch-backend/internal/domain"
)

// EventTemplate describes the calendar event a date term implies.
type EventTemplate struct {
	EventType domain.EventType
}

// KeySpec is one catalog entry.
type KeySpec struct {
	Key       string
	Name      string
	ValueType domain.ValueType
	// EnumValues restricts enum keys to a fixed label set. Empty means any
	// normalized label is accepted.
	EnumValues []string
	// Event is non-nil when a valid date value for this key implies an event.
	Event *EventTemplate
}

// Registry is an immutable catalog of term key specs.
type Registry struct {
	keys map[string]KeySpec
}

// New builds a registry from the built-in catalog plus extra specs.
// Extras with a key already in the catalog override the built-in entry.
func New(extra ...KeySpec) *Registry {
	keys := make(map[string]KeySpec, len(builtinKeys)+len(extra))
	for _, spec := range builtinKeys {
		keys[spec.Key] = spec
	}
	for _, spec := range extra {
		keys[spec.Key] = spec
	}
	return &Registry{keys: keys}
}

// Lookup returns the catalog entry for a key.
func (r *Registry) Lookup(key string) (KeySpec, bool) {
	spec, ok := r.keys[key]
	return spec, ok
}

// Keys returns all catalog keys in sorted order.
func (r *Registry) Keys() []string {
	out := make([]string, 0, len(r.keys))
	for k := range r.keys {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// ImpliesEvent returns the event template for a key, if the key derives a
// calendar event from its date value.
func (r *Registry) ImpliesEvent(key string) (EventTemplate, bool) {
	spec, ok := r.keys[key]
	if !ok || spec.Event == nil {
		return EventTemplate{}, false
	}
	return *spec.Event, true
}

// Validate checks a raw value against the catalog entry for key and returns
// its normalized, typed form.
//
// The key must exist in the catalog and valueType must match its declared
// type; violations are domain.ValidationError. A blank raw value returns
// (nil, nil) — callers treat it as value removal, not an error.
func (r *Registry) Validate(key string, valueType domain.ValueType, raw string) (domain.TermValue, error) {
	spec, ok := r.keys[key]
	if !ok {
		return nil, domain.NewValidationError("key", fmt.Sprintf("unrecognized term key %q", key))
	}
	if !valueType.IsValid() {
		return nil, domain.NewValidationError("value_type", fmt.Sprintf("unknown value type %q", valueType))
	}
	if valueType != spec.ValueType {
		return nil, domain.NewValidationError("value_type",
			fmt.Sprintf("key %q is declared %s, got %s", key, spec.ValueType, valueType))
	}

	if domain.NormalizeText(raw) == "" {
		return nil, nil
	}

	switch spec.ValueType {
	case domain.ValueTypeDate:
		return parseDate(raw)
	case domain.ValueTypeMoney:
		return parseMoney(raw)
	case domain.ValueTypeBoolean:
		return parseBool(raw)
	case domain.ValueTypeEnum:
		return parseEnum(raw, spec.EnumValues)
	default:
		return domain.TextValue{Text: domain.NormalizeText(raw)}, nil
	}
}
