package openai

import (
	"context"
	"log/slog"
	"time"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/poiesic/regulo/ai"
)

// Embedder implements ai.Embedder using OpenAI-compatible embedding APIs.
// Failed requests are retried with a fixed delay.
type Embedder struct {
	embedder   embeddings.Embedder
	maxRetries int
	retryDelay time.Duration
	logger     *slog.Logger
}

// newEmbedder is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newEmbedder(config *ai.Config) (*Embedder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that
	// don't require authentication.
	client, err := openai.New(
		openai.WithBaseURL(config.EmbeddingHost),
		openai.WithToken("none"),
		openai.WithEmbeddingModel(config.EmbeddingModel),
	)
	if err != nil {
		return nil, err
	}

	embedder, err := embeddings.NewEmbedder(client, embeddings.WithStripNewLines(true))
	if err != nil {
		return nil, err
	}

	return &Embedder{
		embedder:   embedder,
		maxRetries: config.MaxRetries,
		retryDelay: config.RetryDelay,
		logger:     slog.Default().With("component", "openai-embedder"),
	}, nil
}

// NewEmbedder creates a new embedder using the provided configuration.
//
// Returns ai.Embedder interface to enforce abstraction.
func NewEmbedder(config *ai.Config) (ai.Embedder, error) {
	return newEmbedder(config)
}

// EmbedText generates a vector embedding for a single text string.
func (e *Embedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	vectors, err := e.EmbedTexts(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vectors) == 0 {
		e.logger.Warn("embedder returned empty result")
		return []float32{}, nil
	}
	return vectors[0], nil
}

// EmbedTexts generates vector embeddings for multiple text strings in
// a batch, retrying transient failures.
func (e *Embedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	e.logger.Debug("generating embeddings for texts", "count", len(texts))

	var lastErr error
	for attempt := 1; attempt <= e.maxRetries; attempt++ {
		vectors, err := e.embedder.EmbedDocuments(ctx, texts)
		if err == nil {
			return vectors, nil
		}
		lastErr = err
		e.logger.Warn("embedding attempt failed",
			"attempt", attempt,
			"count", len(texts),
			"err", err)

		if attempt == e.maxRetries {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(e.retryDelay):
		}
	}

	e.logger.Error("failed to generate embeddings", "count", len(texts), "err", lastErr)
	return nil, lastErr
}
