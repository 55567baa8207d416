package domain

import (
	"time"

	"github.com/google/uuid"
)

// Contract is the aggregation root for terms and events. Terms and events
// are never shared across contracts; deleting a contract cascades to both.
type Contract struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Title         string
	Vendor        string
	AgreementType string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
