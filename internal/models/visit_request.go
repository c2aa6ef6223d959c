package models

import (
	"time"

	"github.com/google/uuid"
)

// VisitRequest is an inbound prospect inquiry. CreatedAt is stamped on
// creation and never changes; the resource has no update operation.
type VisitRequest struct {
	ID             uuid.UUID `json:"id"`
	PropertyID     uuid.UUID `json:"propertyId"`
	RequesterName  string    `json:"requesterName"`
	RequesterEmail string    `json:"requesterEmail"`
	Message        string    `json:"message,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (r *VisitRequest) Clone() *VisitRequest {
	out := *r
	return &out
}
