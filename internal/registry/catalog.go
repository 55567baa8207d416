package registry

import "github.com/pactwatch/pactwatch-backend/internal/domain"

// builtinKeys is the default term catalog. Date keys with an Event entry
// derive a calendar event of that type; the rest are descriptive terms.
var builtinKeys = []KeySpec{
	{
		Key:       "renewal_date",
		Name:      "Renewal date",
		ValueType: domain.ValueTypeDate,
		Event:     &EventTemplate{EventType: domain.EventTypeRenewal},
	},
	{
		Key:       "termination_date",
		Name:      "Termination date",
		ValueType: domain.ValueTypeDate,
		Event:     &EventTemplate{EventType: domain.EventTypeTermination},
	},
	{
		Key:       "end_date",
		Name:      "End date",
		ValueType: domain.ValueTypeDate,
		Event:     &EventTemplate{EventType: domain.EventTypeTermination},
	},
	{
		Key:       "auto_opt_out_date",
		Name:      "Auto-renewal opt-out deadline",
		ValueType: domain.ValueTypeDate,
		Event:     &EventTemplate{EventType: domain.EventTypeAutoOptOut},
	},
	{
		Key:       "effective_date",
		Name:      "Effective date",
		ValueType: domain.ValueTypeDate,
		Event:     &EventTemplate{EventType: domain.EventTypeEffective},
	},
	{
		Key:       "review_date",
		Name:      "Review date",
		ValueType: domain.ValueTypeDate,
		Event:     &EventTemplate{EventType: domain.EventTypeReview},
	},
	{
		// Signature date is informational; it does not imply an event.
		Key:       "sign_date",
		Name:      "Signature date",
		ValueType: domain.ValueTypeDate,
	},
	{
		Key:       "vendor",
		Name:      "Vendor",
		ValueType: domain.ValueTypeText,
	},
	{
		Key:       "payment_terms",
		Name:      "Payment terms",
		ValueType: domain.ValueTypeText,
	},
	{
		Key:       "notice_period",
		Name:      "Notice period",
		ValueType: domain.ValueTypeText,
	},
	{
		Key:       "contract_value",
		Name:      "Contract value",
		ValueType: domain.ValueTypeMoney,
	},
	{
		Key:       "auto_renews",
		Name:      "Auto-renews",
		ValueType: domain.ValueTypeBoolean,
	},
	{
		Key:        "agreement_type",
		Name:       "Agreement type",
		ValueType:  domain.ValueTypeEnum,
		EnumValues: []string{"msa", "nda", "sow", "license", "lease", "other"},
	},
	{
		Key:        "billing_frequency",
		Name:       "Billing frequency",
		ValueType:  domain.ValueTypeEnum,
		EnumValues: []string{"monthly", "quarterly", "annual", "one_time"},
	},
}
