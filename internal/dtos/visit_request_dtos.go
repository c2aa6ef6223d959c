package dtos

type SubmitVisitRequest struct {
	PropertyID     string `json:"propertyId" validate:"required,uuid"`
	RequesterName  string `json:"requesterName" validate:"required"`
	RequesterEmail string `json:"requesterEmail" validate:"required,email"`
	Message        string `json:"message"`
}

// VisitRequestNotFoundResponse is the 404 body for this resource,
// echoing the requested id.
type VisitRequestNotFoundResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}
