package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"synthlab/internal/config"
	"synthlab/internal/models"
	"synthlab/internal/observability"
	"synthlab/internal/repository"

	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

// synthesizeImageDir is the subdirectory of the upload root that holds
// record images.
const synthesizeImageDir = "synthesize"

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// ImageService stores uploaded record images on disk and records their
// relative path. A rejected upload leaves both the record and the filesystem
// untouched.
type ImageService struct {
	repo         repository.SynthesizeRepository
	uploadDir    string
	maxSizeBytes int64
}

// NewImageService returns a new ImageService configured from cfg.
func NewImageService(repo repository.SynthesizeRepository, cfg *config.Config) *ImageService {
	return &ImageService{
		repo:         repo,
		uploadDir:    cfg.UploadDir,
		maxSizeBytes: int64(cfg.MaxUploadSizeMB) * 1024 * 1024,
	}
}

// Attach validates content as an image, writes it under the upload root with
// a generated filename, and sets the record's image path. The stored path is
// relative to the upload root so the root can move without rewriting rows.
func (s *ImageService) Attach(ctx context.Context, userID, recordID uint, filename string, content []byte) (*models.Synthesize, error) {
	rec, err := s.repo.GetOwned(ctx, userID, recordID)
	if err != nil {
		return nil, err
	}

	if len(content) == 0 {
		observability.ImageUploads.WithLabelValues("rejected").Inc()
		return nil, models.NewValidationError("No file uploaded")
	}
	if int64(len(content)) > s.maxSizeBytes {
		observability.ImageUploads.WithLabelValues("rejected").Inc()
		return nil, models.NewValidationError(fmt.Sprintf("Image exceeds the maximum size of %d bytes", s.maxSizeBytes))
	}

	format, err := validateImage(content)
	if err != nil {
		observability.ImageUploads.WithLabelValues("rejected").Inc()
		return nil, err
	}

	relPath := path.Join(synthesizeImageDir, generateImageName(filename, format))
	absPath := filepath.Join(s.uploadDir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := os.WriteFile(absPath, content, 0o644); err != nil {
		return nil, models.NewInternalError(err)
	}

	if err := s.repo.SetImage(ctx, rec, relPath); err != nil {
		// Keep the filesystem consistent with the row.
		_ = os.Remove(absPath)
		return nil, err
	}

	observability.ImageUploads.WithLabelValues("accepted").Inc()
	return rec, nil
}

// validateImage checks both the sniffed content type and that the payload
// actually decodes as an image, returning the decoded format name.
func validateImage(content []byte) (string, error) {
	contentType := http.DetectContentType(content)
	if !allowedImageTypes[contentType] {
		return "", models.NewValidationError("Upload a valid image. The file you uploaded was either not an image or a corrupted image.")
	}
	_, format, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		return "", models.NewValidationError("Upload a valid image. The file you uploaded was either not an image or a corrupted image.")
	}
	return format, nil
}

// generateImageName keeps the client's extension when present so the stored
// name reflects the original, falling back to the decoded format.
func generateImageName(original, format string) string {
	ext := strings.ToLower(filepath.Ext(original))
	if ext == "" {
		ext = "." + format
	}
	return uuid.New().String() + ext
}
