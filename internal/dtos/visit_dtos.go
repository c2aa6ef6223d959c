package dtos

type CreateVisitRequest struct {
	PropertyID  string `json:"propertyId" validate:"required,uuid"`
	Date        string `json:"date" validate:"required"`
	VisitorName string `json:"visitorName" validate:"required"`
	Notes       string `json:"notes"`
}

type UpdateVisitRequest struct {
	PropertyID  *string `json:"propertyId" validate:"omitempty,uuid"`
	Date        *string `json:"date"`
	VisitorName *string `json:"visitorName" validate:"omitempty,min=1"`
	Notes       *string `json:"notes"`
}

// PropertyMissingResponse names the offending propertyId when a visit
// references a property that does not exist.
type PropertyMissingResponse struct {
	Message    string `json:"message"`
	PropertyID string `json:"propertyId"`
}
