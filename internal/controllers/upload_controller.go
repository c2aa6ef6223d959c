package controllers

import (
	"fmt"
	"io"
	"net/http"
	"slices"

	"github.com/Yutux/immo-api/internal/config"
	"github.com/Yutux/immo-api/internal/dtos"
	"github.com/Yutux/immo-api/internal/metrics"
	"github.com/Yutux/immo-api/internal/models"
	"github.com/Yutux/immo-api/internal/repositories"
	"github.com/Yutux/immo-api/internal/services"
	"github.com/Yutux/immo-api/internal/utils"
)

// multipart form memory threshold; larger parts spool to temp files.
const multipartMemory = 8 << 20

type UploadController struct {
	properties repositories.PropertyRepository
	uploads    *services.UploadService
}

func NewUploadController(
	properties repositories.PropertyRepository,
	uploads *services.UploadService,
) *UploadController {
	return &UploadController{properties: properties, uploads: uploads}
}

// -----------------------------------------------------------------------------
// POST /api/upload/property/{propertyId}
//
// Multipart upload, file under the "file" field. Size and MIME policy are
// enforced here, before the file store is invoked.
// -----------------------------------------------------------------------------
func (c *UploadController) UploadImage(w http.ResponseWriter, r *http.Request) {
	propertyID, err := pathUUID(r, "propertyId")
	if err != nil {
		respondInvalidID(w, err)
		return
	}

	if _, ok := c.properties.Find(propertyID); !ok {
		metrics.ObserveImageUpload("unknown_property")
		utils.HandleAppError(w, utils.NewNotFoundError("Property", propertyID.String()))
		return
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid multipart payload", nil, err,
		)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "No file provided", nil, err,
		)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	if len(data) > config.MaxUploadSize {
		metrics.ObserveImageUpload("too_large")
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation,
			fmt.Sprintf("File too large. Max size: %dMB", config.MaxUploadSize/1024/1024), nil,
		)
		return
	}

	imageURL, err := c.uploads.SaveFile(data, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		metrics.ObserveImageUpload("rejected_type")
		utils.HandleAppError(w, err)
		return
	}

	property, err := c.properties.AddImage(propertyID, imageURL)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	metrics.ObserveImageUpload("ok")
	utils.RespondWithJSON(w, http.StatusCreated, dtos.UploadImageResponse{
		Message:  "Image uploaded successfully",
		ImageURL: imageURL,
		Property: property,
	})
}

// -----------------------------------------------------------------------------
// DELETE /api/upload/property/{propertyId}/image
//
// Detaches an image: the URL must already belong to the property, else 404
// and nothing is touched.
// -----------------------------------------------------------------------------
func (c *UploadController) DeleteImage(w http.ResponseWriter, r *http.Request) {
	propertyID, err := pathUUID(r, "propertyId")
	if err != nil {
		respondInvalidID(w, err)
		return
	}

	var req dtos.DeleteImageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	property, ok := c.properties.Find(propertyID)
	if !ok {
		utils.HandleAppError(w, utils.NewNotFoundError("Property", propertyID.String()))
		return
	}

	if !slices.Contains(property.Images, req.ImageURL) {
		utils.RespondErrorWithCode(
			w, http.StatusNotFound, utils.ErrCodeNotFound, "Image not associated with this property", nil,
		)
		return
	}

	c.uploads.DeleteFile(req.ImageURL)

	remaining := make([]string, 0, len(property.Images)-1)
	for _, u := range property.Images {
		if u != req.ImageURL {
			remaining = append(remaining, u)
		}
	}

	updated, err := c.properties.Update(propertyID, models.PropertyPatch{Images: &remaining})
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.DeleteImageResponse{
		Message:  "Image deleted successfully",
		Property: updated,
	})
}
