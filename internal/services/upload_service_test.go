package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Yutux/immo-api/internal/utils"
)

func TestSaveFileWritesAndReturnsPublicPath(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewUploadService(filepath.Join(dir, "properties"))
	require.NoError(t, err)

	data := []byte("not really a png but close enough")
	imageURL, err := svc.SaveFile(data, "photo.png", "image/png")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(imageURL, PublicPathPrefix), "got %s", imageURL)
	require.True(t, strings.HasSuffix(imageURL, ".png"), "got %s", imageURL)

	name := strings.TrimPrefix(imageURL, PublicPathPrefix)
	onDisk, err := os.ReadFile(filepath.Join(dir, "properties", name))
	require.NoError(t, err)
	require.Equal(t, data, onDisk)
}

func TestSaveFileGeneratesUniqueNames(t *testing.T) {
	svc, err := NewUploadService(t.TempDir())
	require.NoError(t, err)

	first, err := svc.SaveFile([]byte("a"), "photo.jpg", "image/jpeg")
	require.NoError(t, err)
	second, err := svc.SaveFile([]byte("b"), "photo.jpg", "image/jpeg")
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestSaveFileRejectsDisallowedMime(t *testing.T) {
	svc, err := NewUploadService(t.TempDir())
	require.NoError(t, err)

	_, err = svc.SaveFile([]byte("%PDF-1.4"), "doc.pdf", "application/pdf")
	var ve *utils.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestSaveFileFallsBackToMimeExtension(t *testing.T) {
	svc, err := NewUploadService(t.TempDir())
	require.NoError(t, err)

	imageURL, err := svc.SaveFile([]byte("x"), "noextension", "image/webp")
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(imageURL, ".webp"), "got %s", imageURL)
}

func TestDeleteFileIdempotent(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewUploadService(dir)
	require.NoError(t, err)

	imageURL, err := svc.SaveFile([]byte("x"), "photo.gif", "image/gif")
	require.NoError(t, err)
	name := strings.TrimPrefix(imageURL, PublicPathPrefix)

	svc.DeleteFile(imageURL)
	_, err = os.Stat(filepath.Join(dir, name))
	require.True(t, os.IsNotExist(err))

	// second delete is a no-op, never raises
	svc.DeleteFile(imageURL)
}

func TestDeleteFilesContinuesPastMissing(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewUploadService(dir)
	require.NoError(t, err)

	kept, err := svc.SaveFile([]byte("x"), "a.jpg", "image/jpeg")
	require.NoError(t, err)

	svc.DeleteFiles([]string{"/uploads/properties/never-existed.jpg", kept})

	name := strings.TrimPrefix(kept, PublicPathPrefix)
	_, err = os.Stat(filepath.Join(dir, name))
	require.True(t, os.IsNotExist(err))
}
