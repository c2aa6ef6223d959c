package models

import (
	"time"

	"github.com/google/uuid"
)

// Visit references its property by ID value only; the repository does not
// enforce the link, the handler checks it at creation time.
type Visit struct {
	ID          uuid.UUID `json:"id"`
	PropertyID  uuid.UUID `json:"propertyId"`
	Date        time.Time `json:"date"`
	VisitorName string    `json:"visitorName"`
	Notes       string    `json:"notes,omitempty"`
}

func (v *Visit) Clone() *Visit {
	out := *v
	return &out
}

// VisitPatch is a partial update; nil fields are left untouched.
type VisitPatch struct {
	PropertyID  *uuid.UUID
	Date        *time.Time
	VisitorName *string
	Notes       *string
}
