package controllers

import (
	"net/http"
	"time"

	"github.com/Yutux/immo-api/internal/dtos"
	"github.com/Yutux/immo-api/internal/utils"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dtos.HealthCheckResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
	})
}
