package services

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Yutux/immo-api/internal/config"
	"github.com/Yutux/immo-api/internal/utils"
)

// PublicPathPrefix is the URL prefix under which saved images are served.
const PublicPathPrefix = "/uploads/properties/"

// UploadService is the file store: it persists uploaded bytes under
// generated names and hands back the public-facing URL path.
type UploadService struct {
	dir string
}

// NewUploadService creates the upload directory if it does not exist.
func NewUploadService(dir string) (*UploadService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &UploadService{dir: dir}, nil
}

// SaveFile rejects disallowed MIME types, writes the bytes under a unique
// name preserving the original extension, and returns the public URL path.
// The 5 MiB size ceiling is enforced at the HTTP boundary before this call.
func (s *UploadService) SaveFile(data []byte, originalFilename, mimeType string) (string, error) {
	if !mimeTypeAllowed(mimeType) {
		return "", utils.NewValidationError(fmt.Sprintf(
			"File type not allowed. Accepted types: %s",
			strings.Join(config.AllowedMimeTypes, ", "),
		))
	}

	ext := filepath.Ext(originalFilename)
	if ext == "" {
		ext = extForMimeType(mimeType)
	}
	name := uuid.New().String() + ext
	filePath := filepath.Join(s.dir, name)

	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	imageURL := PublicPathPrefix + name
	utils.Logger.Debugf("Saved file %s (%d bytes) as %s", filePath, len(data), imageURL)
	return imageURL, nil
}

// DeleteFile removes the stored file behind imageURL. Deletion is
// idempotent and never raises: an absent file is a logged no-op, and
// filesystem failures are logged but not propagated.
func (s *UploadService) DeleteFile(imageURL string) {
	name := path.Base(imageURL)
	filePath := filepath.Join(s.dir, name)

	if _, err := os.Stat(filePath); err != nil {
		utils.Logger.Warnf("File not found, skipping delete: %s", filePath)
		return
	}
	if err := os.Remove(filePath); err != nil {
		utils.Logger.WithError(err).Errorf("Failed to delete file %s", filePath)
		return
	}
	utils.Logger.Debugf("Deleted file %s", name)
}

// DeleteFiles applies DeleteFile to each URL; partial failures do not halt
// the remaining deletions.
func (s *UploadService) DeleteFiles(imageURLs []string) {
	for _, u := range imageURLs {
		s.DeleteFile(u)
	}
}

func mimeTypeAllowed(mimeType string) bool {
	for _, m := range config.AllowedMimeTypes {
		if m == mimeType {
			return true
		}
	}
	return false
}

func extForMimeType(mimeType string) string {
	switch mimeType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".jpg"
	}
}
