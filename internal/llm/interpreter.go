package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"invocr/internal/domain"
	"invocr/internal/port"
)

const (
	structuredMaxTokens   = 2048
	structuredTemperature = 0.2
	analyzeMaxTokens      = 1024

	noJSONBlock = "No JSON block found"
)

// jsonFence matches the first ```json fenced block in a model reply.
var jsonFence = regexp.MustCompile("(?s)```json\n(.*?)\n```")

// Interpreter sends prompts to the LLM capability and classifies replies.
type Interpreter struct {
	completer port.Completer
	log       zerolog.Logger
}

// NewInterpreter creates an Interpreter.
func NewInterpreter(completer port.Completer, log zerolog.Logger) *Interpreter {
	return &Interpreter{completer: completer, log: log}
}

// StructuredExtract joins fragment texts onto the prompt, runs a low
// temperature completion, and extracts the embedded JSON block. Failures are
// tiered: a failed LLM call flips Success to false; a missing or unparsable
// JSON block is reported as a diagnostic value with Success still true.
func (i *Interpreter) StructuredExtract(ctx context.Context, prompt string, fragments []domain.Fragment) domain.StructuredResult {
	texts := make([]string, len(fragments))
	for n, f := range fragments {
		texts[n] = f.Text
	}
	finalPrompt := prompt + "\n\nOCR Result:\n" + strings.Join(texts, "\n")

	raw, err := i.completer.Complete(ctx, port.CompletionRequest{
		Prompt:      finalPrompt,
		MaxTokens:   structuredMaxTokens,
		Temperature: structuredTemperature,
	})
	if err != nil {
		i.log.Error().Err(err).Msg("structured extraction: LLM call failed")
		return domain.StructuredResult{Success: false, Error: err.Error()}
	}

	return domain.StructuredResult{
		Success:        true,
		FinalPrompt:    finalPrompt,
		RawResponse:    raw,
		StructuredJSON: extractJSONBlock(raw),
	}
}

// Analyze runs a plain completion with default sampling.
func (i *Interpreter) Analyze(ctx context.Context, prompt string) (string, error) {
	return i.completer.Complete(ctx, port.CompletionRequest{
		Prompt:    prompt,
		MaxTokens: analyzeMaxTokens,
	})
}

// extractJSONBlock takes the first ```json fence in the reply. No fence and
// an unparsable fence both yield descriptive strings, not errors.
func extractJSONBlock(raw string) interface{} {
	match := jsonFence.FindStringSubmatch(raw)
	if match == nil {
		return noJSONBlock
	}
	var parsed interface{}
	if err := json.Unmarshal([]byte(match[1]), &parsed); err != nil {
		return fmt.Sprintf("JSON parse error: %v", err)
	}
	return parsed
}
