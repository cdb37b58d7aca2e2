// Package ai defines the narrow interfaces over the external text
// capabilities: structured-text completion and text embedding.
package ai

import "context"

// Completer generates text for a prompt. Implementations may be
// non-deterministic; callers must keep a deterministic fallback.
type Completer interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// Embedder converts text into a fixed-dimension vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Dimensions() int
}
