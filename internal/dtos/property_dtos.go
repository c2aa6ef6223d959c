package dtos

import "github.com/Yutux/immo-api/internal/models"

// CreatePropertyRequest is the single schema for property creation: the
// validate tags perform the runtime shape check and the struct is the
// statically-checked type the handler works with.
type CreatePropertyRequest struct {
	Title       string  `json:"title" validate:"required,min=3"`
	Description string  `json:"description" validate:"required,min=10"`
	City        string  `json:"city" validate:"required,min=2"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Surface     float64 `json:"surface" validate:"required,gt=0"`
	Rooms       int     `json:"rooms" validate:"required,gt=0"`
	Type        string  `json:"type" validate:"required,oneof=apartment house studio loft"`
	Status      string  `json:"status" validate:"required,oneof=for_sale for_rent sold rented"`
}

func (r CreatePropertyRequest) Model() models.Property {
	return models.Property{
		Title:       r.Title,
		Description: r.Description,
		City:        r.City,
		Price:       r.Price,
		Surface:     r.Surface,
		Rooms:       r.Rooms,
		Type:        models.PropertyType(r.Type),
		Status:      models.PropertyStatus(r.Status),
	}
}

// UpdatePropertyRequest carries a partial update; absent fields stay nil.
// Images are managed through the upload endpoints, not here.
type UpdatePropertyRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=3"`
	Description *string  `json:"description" validate:"omitempty,min=10"`
	City        *string  `json:"city" validate:"omitempty,min=2"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	Surface     *float64 `json:"surface" validate:"omitempty,gt=0"`
	Rooms       *int     `json:"rooms" validate:"omitempty,gt=0"`
	Type        *string  `json:"type" validate:"omitempty,oneof=apartment house studio loft"`
	Status      *string  `json:"status" validate:"omitempty,oneof=for_sale for_rent sold rented"`
}

func (r UpdatePropertyRequest) Patch() models.PropertyPatch {
	patch := models.PropertyPatch{
		Title:       r.Title,
		Description: r.Description,
		City:        r.City,
		Price:       r.Price,
		Surface:     r.Surface,
		Rooms:       r.Rooms,
	}
	if r.Type != nil {
		t := models.PropertyType(*r.Type)
		patch.Type = &t
	}
	if r.Status != nil {
		s := models.PropertyStatus(*r.Status)
		patch.Status = &s
	}
	return patch
}
