package handler

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"invocr/internal/service"
)

// ExtractHandler handles PDF extraction.
type ExtractHandler struct {
	svc *service.ExtractionService
	log zerolog.Logger
}

// NewExtractHandler creates a new ExtractHandler.
func NewExtractHandler(svc *service.ExtractionService, log zerolog.Logger) *ExtractHandler {
	return &ExtractHandler{svc: svc, log: log}
}

// PredictByPDF handles POST /ocr/predict-by-pdf
// @Summary Parse uploaded PDF file
// @Description Rasterizes the PDF, OCRs every page, and attaches the composed extraction prompt.
// @Tags OCR
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF file"
// @Param custom_columns formData string false "JSON object overriding line-item column names"
// @Success 200 {object} domain.Envelope{data=[]domain.PageResult}
// @Failure 400 {object} domain.Envelope
// @Failure 500 {object} domain.Envelope
// @Router /ocr/predict-by-pdf [post]
func (h *ExtractHandler) PredictByPDF(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "file is required")
		return
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		RespondError(c, http.StatusBadRequest, "Please upload a .pdf file")
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "cannot read uploaded file")
		return
	}
	defer func() { _ = f.Close() }()
	pdf, err := io.ReadAll(f)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "cannot read uploaded file")
		return
	}

	results, err := h.svc.ExtractFromPDF(c.Request.Context(), pdf, c.PostForm("custom_columns"))
	if err != nil {
		HandleError(c, h.log, err)
		return
	}
	RespondOK(c, fmt.Sprintf("%d page(s) parsed.", len(results)), results)
}
