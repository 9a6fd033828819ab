package ai

import (
	"context"

	"github.com/poiesic/regulo/core"
)

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Generator produces a free-form answer from a fully assembled prompt.
// Implementations must be thread-safe for concurrent use.
type Generator interface {
	// Generate returns the model's completion for the prompt.
	Generate(ctx context.Context, prompt string) (string, error)
}

// IntentClassifier decides how a user query should be handled before
// any retrieval happens.
// Implementations must be thread-safe for concurrent use.
type IntentClassifier interface {
	// Classify maps the query to one of the core intents.
	// Returns an error if classification fails; callers decide the
	// fallback intent.
	Classify(ctx context.Context, query string) (core.Intent, error)
}

// AIProvider aggregates AI services for convenient initialization and
// lifecycle management. All returned services share configuration and
// are safe for concurrent use.
type AIProvider interface {
	// Embedder returns the text embedding service.
	Embedder() Embedder

	// Generator returns the answer generation service.
	Generator() Generator

	// IntentClassifier returns the query classification service.
	IntentClassifier() IntentClassifier

	// Close releases resources held by the provider and its services.
	Close() error
}
