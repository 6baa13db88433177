package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	_ "invocr/docs"
	"invocr/internal/config"
	"invocr/internal/handler"
	"invocr/internal/llm"
	llmopenai "invocr/internal/llm/openai"
	"invocr/internal/ocr/paddle"
	"invocr/internal/raster"
	"invocr/internal/router"
	"invocr/internal/service"
)

// @title Invoice OCR API
// @version 1.0
// @description OCR and LLM extraction API for invoice parsing
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := newLogger(&cfg.Log)
	if err != nil {
		return err
	}

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Adapters: one OCR engine client and one completer shared by all requests
	engine := paddle.NewClient(&cfg.OCR)
	completer := llmopenai.NewClient(&cfg.LLM)
	rasterizer := raster.NewRasterizer(cfg.Raster)

	// Services
	recognitionSvc := service.NewRecognitionService(engine, cfg.OCR.Orientation, logger)
	extractionSvc := service.NewExtractionService(engine, rasterizer, cfg.OCR.Orientation, logger)
	interpreter := llm.NewInterpreter(completer, logger)

	// Handlers
	recognizeH := handler.NewRecognizeHandler(recognitionSvc, logger)
	extractH := handler.NewExtractHandler(extractionSvc, logger)
	analyzeH := handler.NewAnalyzeHandler(interpreter, logger)
	healthH := handler.NewHealthHandler(engine)

	r := router.Setup(logger, cfg.CORS.AllowedOrigins, recognizeH, extractH, analyzeH, healthH)

	logger.Info().Str("port", cfg.Server.Port).Msg("server starting")
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func newLogger(cfg *config.LogConfig) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	if cfg.Format == "console" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
	return logger, nil
}
