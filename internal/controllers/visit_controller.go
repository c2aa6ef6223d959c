package controllers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Yutux/immo-api/internal/dtos"
	"github.com/Yutux/immo-api/internal/models"
	"github.com/Yutux/immo-api/internal/repositories"
	"github.com/Yutux/immo-api/internal/utils"
)

type VisitController struct {
	visits     repositories.VisitRepository
	properties repositories.PropertyRepository
}

func NewVisitController(
	visits repositories.VisitRepository,
	properties repositories.PropertyRepository,
) *VisitController {
	return &VisitController{visits: visits, properties: properties}
}

// -----------------------------------------------------------------------------
// GET /api/visits
//
// Optional query parameters surface the repository's derivations:
//   ?filter=upcoming|past
//   ?propertyId=<uuid>
//   ?start=<RFC3339>&end=<RFC3339>
// With no parameters the response is all visits, date descending.
// -----------------------------------------------------------------------------
func (c *VisitController) ListVisits(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	switch filter := q.Get("filter"); filter {
	case "":
	case "upcoming":
		utils.RespondWithJSON(w, http.StatusOK, c.visits.Upcoming())
		return
	case "past":
		utils.RespondWithJSON(w, http.StatusOK, c.visits.Past())
		return
	default:
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation,
			"filter must be 'upcoming' or 'past'", nil,
		)
		return
	}

	if raw := q.Get("propertyId"); raw != "" {
		propertyID, err := uuid.Parse(raw)
		if err != nil {
			respondInvalidID(w, err)
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, c.visits.ListByPropertyID(propertyID))
		return
	}

	if q.Get("start") != "" || q.Get("end") != "" {
		start, err := time.Parse(time.RFC3339, q.Get("start"))
		if err != nil {
			utils.RespondErrorWithCode(
				w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid start date", nil, err,
			)
			return
		}
		end, err := time.Parse(time.RFC3339, q.Get("end"))
		if err != nil {
			utils.RespondErrorWithCode(
				w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid end date", nil, err,
			)
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, c.visits.ListByDateRange(start, end))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, c.visits.List())
}

// -----------------------------------------------------------------------------
// GET /api/visits/{id}
// -----------------------------------------------------------------------------
func (c *VisitController) GetVisit(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondInvalidID(w, err)
		return
	}

	visit, err := c.visits.GetByID(id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, visit)
}

// -----------------------------------------------------------------------------
// POST /api/visits
// -----------------------------------------------------------------------------
func (c *VisitController) CreateVisit(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateVisitRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	propertyID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		respondInvalidID(w, err)
		return
	}

	// The property must exist at creation time; updates do not re-check.
	if _, ok := c.properties.Find(propertyID); !ok {
		utils.RespondWithJSON(w, http.StatusBadRequest, dtos.PropertyMissingResponse{
			Message:    "The property does not exist",
			PropertyID: req.PropertyID,
		})
		return
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		utils.HandleAppError(w, utils.NewValidationError("Invalid visit date"))
		return
	}

	created, err := c.visits.Create(models.Visit{
		PropertyID:  propertyID,
		Date:        date,
		VisitorName: req.VisitorName,
		Notes:       req.Notes,
	})
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

// -----------------------------------------------------------------------------
// PUT /api/visits/{id}
// -----------------------------------------------------------------------------
func (c *VisitController) UpdateVisit(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondInvalidID(w, err)
		return
	}

	var req dtos.UpdateVisitRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	var patch models.VisitPatch
	if req.PropertyID != nil {
		propertyID, err := uuid.Parse(*req.PropertyID)
		if err != nil {
			respondInvalidID(w, err)
			return
		}
		patch.PropertyID = &propertyID
	}
	if req.Date != nil {
		date, err := time.Parse(time.RFC3339, *req.Date)
		if err != nil {
			utils.HandleAppError(w, utils.NewValidationError("Invalid visit date"))
			return
		}
		patch.Date = &date
	}
	patch.VisitorName = req.VisitorName
	patch.Notes = req.Notes

	updated, err := c.visits.Update(id, patch)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// -----------------------------------------------------------------------------
// DELETE /api/visits/{id}
// -----------------------------------------------------------------------------
func (c *VisitController) DeleteVisit(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondInvalidID(w, err)
		return
	}

	if err := c.visits.Delete(id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondNoContent(w)
}
