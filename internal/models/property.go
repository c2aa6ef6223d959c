package models

import (
	"time"

	"github.com/google/uuid"
)

type PropertyType string

const (
	PropertyTypeApartment PropertyType = "apartment"
	PropertyTypeHouse     PropertyType = "house"
	PropertyTypeStudio    PropertyType = "studio"
	PropertyTypeLoft      PropertyType = "loft"
)

type PropertyStatus string

const (
	PropertyStatusForSale PropertyStatus = "for_sale"
	PropertyStatusForRent PropertyStatus = "for_rent"
	PropertyStatusSold    PropertyStatus = "sold"
	PropertyStatusRented  PropertyStatus = "rented"
)

type Property struct {
	ID          uuid.UUID      `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	City        string         `json:"city"`
	Price       float64        `json:"price"`
	Surface     float64        `json:"surface"`
	Rooms       int            `json:"rooms"`
	Type        PropertyType   `json:"type"`
	Status      PropertyStatus `json:"status"`
	Images      []string       `json:"images,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// Clone returns a copy that shares no mutable state with the original.
func (p *Property) Clone() *Property {
	out := *p
	if p.Images != nil {
		out.Images = append([]string(nil), p.Images...)
	}
	return &out
}

// PropertyPatch is a partial update. Nil fields are left untouched;
// a non-nil Images replaces the prior list wholesale.
type PropertyPatch struct {
	Title       *string
	Description *string
	City        *string
	Price       *float64
	Surface     *float64
	Rooms       *int
	Type        *PropertyType
	Status      *PropertyStatus
	Images      *[]string
}
