package domain

import "errors"

var (
	ErrUnsupportedFormat    = errors.New("unsupported image format")
	ErrInvalidColumnMapping = errors.New("invalid column mapping")
	ErrProcessingFailed     = errors.New("document processing failed")
	ErrFileNotFound         = errors.New("file not found")
)
