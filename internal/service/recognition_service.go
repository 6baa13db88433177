package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"invocr/internal/domain"
	"invocr/internal/ocr"
	"invocr/internal/port"
	"invocr/internal/raster"
)

// RecognitionService runs single-image OCR for the recognize operations.
type RecognitionService struct {
	engine      port.OCREngine
	orientation bool
	fetcher     *http.Client
	log         zerolog.Logger
}

// NewRecognitionService creates a RecognitionService.
func NewRecognitionService(engine port.OCREngine, orientation bool, log zerolog.Logger) *RecognitionService {
	return &RecognitionService{
		engine:      engine,
		orientation: orientation,
		fetcher:     &http.Client{Timeout: 30 * time.Second},
		log:         log,
	}
}

func (s *RecognitionService) recognize(ctx context.Context, image []byte) ([]domain.Fragment, error) {
	raw, err := s.engine.Recognize(ctx, image, s.orientation)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProcessingFailed, err)
	}
	return ocr.Flatten(raw), nil
}

// ByPath recognizes a local image file.
func (s *RecognitionService) ByPath(ctx context.Context, path string) ([]domain.Fragment, error) {
	image, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFileNotFound, err)
	}
	return s.recognize(ctx, image)
}

// ByBase64 recognizes a base64-encoded image.
func (s *RecognitionService) ByBase64(ctx context.Context, encoded string) ([]domain.Fragment, error) {
	image, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64 payload: %v", domain.ErrUnsupportedFormat, err)
	}
	return s.recognize(ctx, image)
}

// ByFile recognizes an uploaded image. Uploads are validated by filename
// extension; no OCR call is made for rejected files.
func (s *RecognitionService) ByFile(ctx context.Context, filename string, image []byte) ([]domain.Fragment, error) {
	if !raster.HasImageExt(filename) {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, filename)
	}
	return s.recognize(ctx, image)
}

// ByURL fetches an image URL and recognizes it. Fetched content is validated
// by its JPEG/PNG magic bytes, not by the URL's extension.
func (s *RecognitionService) ByURL(ctx context.Context, imageURL string) ([]domain.Fragment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnsupportedFormat, err)
	}
	resp, err := s.fetcher.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching image: %v", domain.ErrProcessingFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	image, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading image: %v", domain.ErrProcessingFailed, err)
	}
	if !raster.SniffImage(image) {
		return nil, fmt.Errorf("%w: content is not a JPEG or PNG image", domain.ErrUnsupportedFormat)
	}
	return s.recognize(ctx, image)
}
