package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"invocr/internal/domain"
	"invocr/internal/ocr"
	"invocr/internal/port"
	"invocr/internal/prompt"
	"invocr/internal/raster"
)

// ExtractionService drives the PDF extraction pipeline: parse the column
// overrides, compose the prompt once, rasterize, then OCR each page in order.
type ExtractionService struct {
	engine      port.OCREngine
	rasterizer  *raster.Rasterizer
	orientation bool
	log         zerolog.Logger
}

// NewExtractionService creates an ExtractionService.
func NewExtractionService(engine port.OCREngine, rasterizer *raster.Rasterizer, orientation bool, log zerolog.Logger) *ExtractionService {
	return &ExtractionService{
		engine:      engine,
		rasterizer:  rasterizer,
		orientation: orientation,
		log:         log,
	}
}

// ExtractFromPDF returns one PageResult per page, indices 1..N with fresh
// page ids, all sharing one prompt. Any rasterization or OCR failure aborts
// the whole request; no partial results are returned.
func (s *ExtractionService) ExtractFromPDF(ctx context.Context, pdf []byte, customColumns string) ([]domain.PageResult, error) {
	mapping := domain.ColumnMapping{}
	if customColumns != "" {
		if err := json.Unmarshal([]byte(customColumns), &mapping); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidColumnMapping, err)
		}
	}
	extractionPrompt := prompt.BuildExtractionPrompt(mapping)

	pages, err := s.rasterizer.Rasterize(ctx, domain.Document{Bytes: pdf, Kind: domain.KindPDF})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProcessingFailed, err)
	}
	s.log.Debug().Int("pages", len(pages)).Msg("pdf rasterized")

	results := make([]domain.PageResult, 0, len(pages))
	for _, page := range pages {
		raw, err := s.engine.Recognize(ctx, page.Image, s.orientation)
		if err != nil {
			return nil, fmt.Errorf("%w: page %d: %v", domain.ErrProcessingFailed, page.Index, err)
		}
		results = append(results, domain.PageResult{
			Page:       page.Index,
			PageID:     uuid.New().String(),
			OCRResults: ocr.Flatten(raw),
			Prompt:     extractionPrompt,
		})
	}
	return results, nil
}
