package port

import (
	"context"
	"encoding/json"
)

// RawResult is the OCR engine's nested payload: a list of blocks, each block
// a list of line entries. A well-formed line entry decodes to a two-element
// array [box, [text, score]]; anything else is dropped by the adapter.
type RawResult [][]json.RawMessage

// OCREngine abstracts the OCR capability. Implementations must be safe for
// concurrent use by in-flight requests.
type OCREngine interface {
	Recognize(ctx context.Context, image []byte, classifyOrientation bool) (RawResult, error)
}
