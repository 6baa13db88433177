package port

import "context"

// CompletionRequest carries a single-turn prompt to the LLM capability.
// A zero Temperature leaves the provider default in place.
type CompletionRequest struct {
	Prompt      string
	MaxTokens   int
	Temperature float32
}

// Completer abstracts LLM text completion.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
