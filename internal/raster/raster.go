package raster

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"invocr/internal/config"
	"invocr/internal/domain"
)

// Rasterizer converts a document into an ordered sequence of page images.
// PDFs are rendered one PNG per page through poppler's pdftoppm; single
// images pass through after format validation.
type Rasterizer struct {
	cfg    config.RasterConfig
	runner Runner
}

// NewRasterizer creates a Rasterizer, filling in binary and DPI defaults.
func NewRasterizer(cfg config.RasterConfig) *Rasterizer {
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 200
	}
	return &Rasterizer{cfg: cfg, runner: execRunner{}}
}

// NewRasterizerWithRunner creates a Rasterizer with a custom Runner (for testing).
func NewRasterizerWithRunner(cfg config.RasterConfig, runner Runner) *Rasterizer {
	r := NewRasterizer(cfg)
	r.runner = runner
	return r
}

// Rasterize produces the page sequence for a document. Page indices are
// 1-based in rendering order.
func (r *Rasterizer) Rasterize(ctx context.Context, doc domain.Document) ([]domain.Page, error) {
	switch doc.Kind {
	case domain.KindPDF:
		return r.rasterizePDF(ctx, doc.Bytes)
	case domain.KindImage:
		if !SniffImage(doc.Bytes) {
			return nil, fmt.Errorf("%w: not a JPEG or PNG image", domain.ErrUnsupportedFormat)
		}
		return []domain.Page{{Index: 1, Image: doc.Bytes}}, nil
	default:
		return nil, fmt.Errorf("%w: unknown document kind %q", domain.ErrUnsupportedFormat, doc.Kind)
	}
}

func (r *Rasterizer) rasterizePDF(ctx context.Context, pdf []byte) ([]domain.Page, error) {
	tmpDir, err := os.MkdirTemp("", "invocr-pp-*")
	if err != nil {
		return nil, err
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	src := filepath.Join(tmpDir, "input.pdf")
	if err := os.WriteFile(src, pdf, 0o600); err != nil {
		return nil, err
	}

	prefix := filepath.Join(tmpDir, "page")
	args := []string{"-r", strconv.Itoa(r.cfg.DPI), "-png"}
	if r.cfg.MaxPages > 0 {
		args = append(args, "-l", strconv.Itoa(r.cfg.MaxPages))
	}
	args = append(args, src, prefix)

	// pdftoppm -r <dpi> -png [-l <last>] <in.pdf> <tmp/page>
	if _, errb, err := r.runner.Run(ctx, r.cfg.Pdftoppm, args...); err != nil {
		return nil, fmt.Errorf("pdftoppm failed: %w (%s)", err, strings.TrimSpace(string(errb)))
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, "page") && strings.HasSuffix(name, ".png") {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("pdftoppm produced no pages")
	}
	// pdftoppm zero-pads page numbers, so lexical order is page order.
	sort.Strings(names)

	pages := make([]domain.Page, 0, len(names))
	for i, name := range names {
		img, err := os.ReadFile(filepath.Join(tmpDir, name))
		if err != nil {
			return nil, err
		}
		pages = append(pages, domain.Page{Index: i + 1, Image: img})
	}
	return pages, nil
}
