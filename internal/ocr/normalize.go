package ocr

import (
	"encoding/json"

	"invocr/internal/domain"
	"invocr/internal/port"
)

// Flatten maps the engine's nested block/line payload into a flat ordered
// fragment list. Line entries that do not decode as [box, [text, score]] are
// skipped, not errors. Order is block-major as reported by the engine and is
// never re-sorted.
func Flatten(result port.RawResult) []domain.Fragment {
	fragments := make([]domain.Fragment, 0)
	for _, block := range result {
		for _, line := range block {
			var entry []json.RawMessage
			if err := json.Unmarshal(line, &entry); err != nil || len(entry) < 2 {
				continue
			}
			var pair []json.RawMessage
			if err := json.Unmarshal(entry[1], &pair); err != nil || len(pair) < 2 {
				continue
			}
			var text string
			if err := json.Unmarshal(pair[0], &text); err != nil {
				continue
			}
			var score float64
			if err := json.Unmarshal(pair[1], &score); err != nil {
				continue
			}
			fragments = append(fragments, domain.Fragment{Text: text})
		}
	}
	return fragments
}
