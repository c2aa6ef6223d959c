package routes

const (
	// Health & metrics
	Health  = "/health"
	Metrics = "/metrics"

	// Property endpoints
	Properties   = "/api/properties"
	PropertyByID = "/api/properties/{id}"

	// Image attachment endpoints
	UploadPropertyImage = "/api/upload/property/{propertyId}"
	DeletePropertyImage = "/api/upload/property/{propertyId}/image"

	// Visit endpoints
	Visits    = "/api/visits"
	VisitByID = "/api/visits/{id}"

	// Visit-request endpoints
	VisitRequests    = "/api/visit-requests"
	VisitRequestByID = "/api/visit-requests/{id}"

	// Static serving of uploaded images
	UploadsPrefix = "/uploads/"
)
