package dtos

import "github.com/Yutux/immo-api/internal/models"

type UploadImageResponse struct {
	Message  string           `json:"message"`
	ImageURL string           `json:"imageUrl"`
	Property *models.Property `json:"property"`
}

type DeleteImageRequest struct {
	ImageURL string `json:"imageUrl" validate:"required"`
}

type DeleteImageResponse struct {
	Message  string           `json:"message"`
	Property *models.Property `json:"property"`
}
