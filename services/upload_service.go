package services

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // decoder registration
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/Modassir22/dream-home-hub/models"
	"github.com/Modassir22/dream-home-hub/utils/redislog"

	"github.com/google/uuid"
	"github.com/nfnt/resize"
)

const (
	maxImageWidth = 1600
	jpegQuality   = 85
)

// UploadService stores admin-uploaded photos for plots, team members and
// testimonials. Every image is re-encoded as JPEG, so the stored file never
// carries the client's bytes or name.
type UploadService interface {
	SaveImage(r io.Reader) (*models.UploadResponse, error)
}

type uploadService struct {
	dir        string // filesystem directory
	publicPath string // URL prefix the router serves dir on
	log        *redislog.Logger
}

func NewUploadService(dir, publicPath string, rlog *redislog.Logger) UploadService {
	return &uploadService{dir: dir, publicPath: publicPath, log: rlog}
}

func (s *uploadService) SaveImage(r io.Reader) (*models.UploadResponse, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, invalid("Only JPEG and PNG images are allowed")
	}
	if img.Bounds().Dx() > maxImageWidth {
		img = resize.Resize(maxImageWidth, 0, img, resize.Lanczos3)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	name := uuid.NewString() + ".jpg"
	if err := os.WriteFile(filepath.Join(s.dir, name), buf.Bytes(), 0o644); err != nil {
		s.log.Error("upload write error", map[string]string{"file": name, "err": err.Error()})
		return nil, fmt.Errorf("write image: %w", err)
	}

	s.log.Info("image uploaded", map[string]string{"file": name, "source_format": format})
	return &models.UploadResponse{URL: path.Join(s.publicPath, name), Filename: name}, nil
}
