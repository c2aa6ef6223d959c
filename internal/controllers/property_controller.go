package controllers

import (
	"net/http"

	"github.com/Yutux/immo-api/internal/dtos"
	"github.com/Yutux/immo-api/internal/repositories"
	"github.com/Yutux/immo-api/internal/utils"
)

type PropertyController struct {
	properties repositories.PropertyRepository
}

func NewPropertyController(properties repositories.PropertyRepository) *PropertyController {
	return &PropertyController{properties: properties}
}

// -----------------------------------------------------------------------------
// GET /api/properties
// -----------------------------------------------------------------------------
func (c *PropertyController) ListProperties(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, c.properties.List())
}

// -----------------------------------------------------------------------------
// GET /api/properties/{id}
// -----------------------------------------------------------------------------
func (c *PropertyController) GetProperty(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondInvalidID(w, err)
		return
	}

	property, err := c.properties.GetByID(id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, property)
}

// -----------------------------------------------------------------------------
// POST /api/properties
// -----------------------------------------------------------------------------
func (c *PropertyController) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreatePropertyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created := c.properties.Create(req.Model())
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

// -----------------------------------------------------------------------------
// PUT /api/properties/{id}
// -----------------------------------------------------------------------------
func (c *PropertyController) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondInvalidID(w, err)
		return
	}

	var req dtos.UpdatePropertyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := c.properties.Update(id, req.Patch())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// -----------------------------------------------------------------------------
// DELETE /api/properties/{id}
// -----------------------------------------------------------------------------
func (c *PropertyController) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondInvalidID(w, err)
		return
	}

	if err := c.properties.Delete(id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondNoContent(w)
}
