package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/Yutux/immo-api/internal/dtos"
	"github.com/Yutux/immo-api/internal/models"
	"github.com/Yutux/immo-api/internal/repositories"
	"github.com/Yutux/immo-api/internal/services"
	"github.com/Yutux/immo-api/internal/utils"
)

type VisitRequestController struct {
	visitRequests repositories.VisitRequestRepository
	notifier      services.NotificationService
}

func NewVisitRequestController(
	visitRequests repositories.VisitRequestRepository,
	notifier services.NotificationService,
) *VisitRequestController {
	return &VisitRequestController{visitRequests: visitRequests, notifier: notifier}
}

// -----------------------------------------------------------------------------
// GET /api/visit-requests
// -----------------------------------------------------------------------------
func (c *VisitRequestController) ListVisitRequests(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, c.visitRequests.List())
}

// -----------------------------------------------------------------------------
// GET /api/visit-requests/{id}
// -----------------------------------------------------------------------------
func (c *VisitRequestController) GetVisitRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondInvalidID(w, err)
		return
	}

	vr, err := c.visitRequests.GetByID(id)
	if err != nil {
		c.respondNotFound(w, id)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, vr)
}

// -----------------------------------------------------------------------------
// POST /api/visit-requests
// -----------------------------------------------------------------------------
func (c *VisitRequestController) CreateVisitRequest(w http.ResponseWriter, r *http.Request) {
	var req dtos.SubmitVisitRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	propertyID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		respondInvalidID(w, err)
		return
	}

	created := c.visitRequests.Create(models.VisitRequest{
		PropertyID:     propertyID,
		RequesterName:  req.RequesterName,
		RequesterEmail: req.RequesterEmail,
		Message:        req.Message,
	})

	// Best-effort; never blocks the 201.
	c.notifier.VisitRequestReceived(created)

	utils.RespondWithJSON(w, http.StatusCreated, created)
}

// -----------------------------------------------------------------------------
// DELETE /api/visit-requests/{id}
// -----------------------------------------------------------------------------
func (c *VisitRequestController) DeleteVisitRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondInvalidID(w, err)
		return
	}

	if err := c.visitRequests.Delete(id); err != nil {
		c.respondNotFound(w, id)
		return
	}
	utils.RespondNoContent(w)
}

// This resource replies 404 with a {message, id} body rather than the
// standard error envelope.
func (c *VisitRequestController) respondNotFound(w http.ResponseWriter, id uuid.UUID) {
	utils.RespondWithJSON(w, http.StatusNotFound, dtos.VisitRequestNotFoundResponse{
		Message: "Visit request not found",
		ID:      id.String(),
	})
}
