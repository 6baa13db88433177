package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"invocr/internal/domain"
	"invocr/internal/llm"
)

// AnalyzeHandler handles the LLM analysis endpoints. Both always answer 200;
// LLM failures are reported inside the body, not as transport errors.
type AnalyzeHandler struct {
	interp *llm.Interpreter
	log    zerolog.Logger
}

// NewAnalyzeHandler creates a new AnalyzeHandler.
func NewAnalyzeHandler(interp *llm.Interpreter, log zerolog.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{interp: interp, log: log}
}

// StructuredJSON handles POST /ocr/gpt4o-structured-json
// @Summary Extract structured JSON from OCR text via the LLM
// @Tags LLM
// @Accept json
// @Produce json
// @Success 200 {object} domain.StructuredResult
// @Failure 400 {object} domain.Envelope
// @Router /ocr/gpt4o-structured-json [post]
func (h *AnalyzeHandler) StructuredJSON(c *gin.Context) {
	var req struct {
		Prompt     string            `json:"prompt" binding:"required"`
		OCRResults []domain.Fragment `json:"ocr_results"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "prompt is required")
		return
	}
	result := h.interp.StructuredExtract(c.Request.Context(), req.Prompt, req.OCRResults)
	c.JSON(http.StatusOK, result)
}

// SimpleAnalyze handles POST /ocr/gpt4o-simple-analyze
// @Summary Run a plain prompt against the LLM
// @Tags LLM
// @Accept json
// @Produce json
// @Failure 400 {object} domain.Envelope
// @Router /ocr/gpt4o-simple-analyze [post]
func (h *AnalyzeHandler) SimpleAnalyze(c *gin.Context) {
	var req struct {
		Prompt string `json:"prompt" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "prompt is required")
		return
	}
	reply, err := h.interp.Analyze(c.Request.Context(), req.Prompt)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"response": reply})
}
