package router

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"invocr/internal/handler"
	"invocr/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	log zerolog.Logger,
	corsOrigins []string,
	recognizeH *handler.RecognizeHandler,
	extractH *handler.ExtractHandler,
	analyzeH *handler.AnalyzeHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	ocr := r.Group("/ocr")
	ocr.GET("/predict-by-path", recognizeH.PredictByPath)
	ocr.POST("/predict-by-base64", recognizeH.PredictByBase64)
	ocr.POST("/predict-by-file", recognizeH.PredictByFile)
	ocr.GET("/predict-by-url", recognizeH.PredictByURL)
	ocr.POST("/predict-by-pdf", extractH.PredictByPDF)
	ocr.POST("/gpt4o-structured-json", analyzeH.StructuredJSON)
	ocr.POST("/gpt4o-simple-analyze", analyzeH.SimpleAnalyze)

	return r
}
