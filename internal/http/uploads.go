package http

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kviik/recipegram/internal/config"
)

// UploadFieldName is the multipart field carrying the recipe image.
const UploadFieldName = "recipeImage"

var (
	ErrUploadType    = errors.New("unsupported image type")
	ErrUploadTooBig  = errors.New("image too large")
	allowedExtension = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".gif":  true,
	}
)

// saveRecipeImage stores an uploaded recipe image under uploadsDir with a
// random filename and returns its public URL path. Returns "" and no error
// when the request carries no image; the image is optional.
func saveRecipeImage(c *gin.Context, uploadsDir string) (string, error) {
	file, err := c.FormFile(UploadFieldName)
	if err != nil {
		// No file attached
		return "", nil
	}

	if err := validateRecipeImage(file); err != nil {
		return "", err
	}

	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create uploads directory: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := uuid.New().String() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(uploadsDir, name)); err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}

	return "/uploads/" + name, nil
}

func validateRecipeImage(file *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtension[ext] {
		return ErrUploadType
	}
	if file.Size > config.MaxUploadSize {
		return ErrUploadTooBig
	}
	return nil
}
