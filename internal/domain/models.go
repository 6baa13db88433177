package domain

// DocumentKind declares how a document's bytes should be interpreted.
type DocumentKind string

const (
	KindPDF   DocumentKind = "pdf"
	KindImage DocumentKind = "image"
)

// Document is a raw input document. Immutable once received.
type Document struct {
	Bytes []byte
	Kind  DocumentKind
}

// Page is one rasterized page image. Index is 1-based and follows document order.
type Page struct {
	Index int
	Image []byte
}

// Fragment is one recognized text span. Geometry and confidence are consumed
// at the OCR adapter boundary and not carried in the external contract.
type Fragment struct {
	Text string `json:"text"`
}

// ColumnMapping maps logical line-item field keys to user-supplied display
// names. Absent or empty values fall back to built-in defaults; unknown keys
// are ignored.
type ColumnMapping map[string]string

// PageResult is the per-page output of PDF extraction. Every page of one
// request carries the same prompt.
type PageResult struct {
	Page       int        `json:"page"`
	PageID     string     `json:"page_id"`
	OCRResults []Fragment `json:"ocr_results"`
	Prompt     string     `json:"prompt"`
}

// Envelope is the uniform response contract for all recognition and
// extraction operations.
type Envelope struct {
	ResultCode int         `json:"resultcode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
}

// StructuredResult is the outcome of a structured LLM extraction. A missing
// or unparsable JSON block is a data-quality outcome (Success stays true);
// only a failed LLM call flips Success to false.
type StructuredResult struct {
	Success        bool        `json:"success"`
	FinalPrompt    string      `json:"final_prompt,omitempty"`
	RawResponse    string      `json:"gpt_response_raw,omitempty"`
	StructuredJSON interface{} `json:"structured_json,omitempty"`
	Error          string      `json:"error,omitempty"`
}
