package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"invocr/internal/service"
)

// RecognizeHandler handles the single-image recognition endpoints.
type RecognizeHandler struct {
	svc *service.RecognitionService
	log zerolog.Logger
}

// NewRecognizeHandler creates a new RecognizeHandler.
func NewRecognizeHandler(svc *service.RecognitionService, log zerolog.Logger) *RecognizeHandler {
	return &RecognizeHandler{svc: svc, log: log}
}

// PredictByPath handles GET /ocr/predict-by-path
// @Summary Parse local image file
// @Tags OCR
// @Produce json
// @Param image_path query string true "Local image file path"
// @Success 200 {object} domain.Envelope{data=[]domain.Fragment}
// @Failure 400 {object} domain.Envelope
// @Router /ocr/predict-by-path [get]
func (h *RecognizeHandler) PredictByPath(c *gin.Context) {
	imagePath := c.Query("image_path")
	if imagePath == "" {
		RespondError(c, http.StatusBadRequest, "image_path is required")
		return
	}
	fragments, err := h.svc.ByPath(c.Request.Context(), imagePath)
	if err != nil {
		HandleError(c, h.log, err)
		return
	}
	RespondOK(c, "Success", fragments)
}

// PredictByBase64 handles POST /ocr/predict-by-base64
// @Summary Parse Base64 data
// @Tags OCR
// @Accept json
// @Produce json
// @Success 200 {object} domain.Envelope{data=[]domain.Fragment}
// @Failure 400 {object} domain.Envelope
// @Router /ocr/predict-by-base64 [post]
func (h *RecognizeHandler) PredictByBase64(c *gin.Context) {
	var req struct {
		Base64Str string `json:"base64_str" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "base64_str is required")
		return
	}
	fragments, err := h.svc.ByBase64(c.Request.Context(), req.Base64Str)
	if err != nil {
		HandleError(c, h.log, err)
		return
	}
	RespondOK(c, "Success", fragments)
}

// PredictByFile handles POST /ocr/predict-by-file
// @Summary Parse uploaded image file
// @Tags OCR
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file (.jpg or .png)"
// @Success 200 {object} domain.Envelope{data=[]domain.Fragment}
// @Failure 400 {object} domain.Envelope
// @Router /ocr/predict-by-file [post]
func (h *RecognizeHandler) PredictByFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "file is required")
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "cannot read uploaded file")
		return
	}
	defer func() { _ = f.Close() }()
	image, err := io.ReadAll(f)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "cannot read uploaded file")
		return
	}

	fragments, err := h.svc.ByFile(c.Request.Context(), fileHeader.Filename, image)
	if err != nil {
		HandleError(c, h.log, err)
		return
	}
	RespondOK(c, fileHeader.Filename, fragments)
}

// PredictByURL handles GET /ocr/predict-by-url
// @Summary Parse image URL
// @Tags OCR
// @Produce json
// @Param imageUrl query string true "Image URL"
// @Success 200 {object} domain.Envelope{data=[]domain.Fragment}
// @Failure 400 {object} domain.Envelope
// @Router /ocr/predict-by-url [get]
func (h *RecognizeHandler) PredictByURL(c *gin.Context) {
	imageURL := c.Query("imageUrl")
	if imageURL == "" {
		RespondError(c, http.StatusBadRequest, "imageUrl is required")
		return
	}
	fragments, err := h.svc.ByURL(c.Request.Context(), imageURL)
	if err != nil {
		HandleError(c, h.log, err)
		return
	}
	RespondOK(c, "Success", fragments)
}
