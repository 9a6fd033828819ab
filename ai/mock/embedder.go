package mock

import (
	"context"
	"hash/fnv"
	"math"
)

// mockDim is the embedding width produced by the default behavior.
// Small on purpose; tests never need production-sized vectors.
const mockDim = 64

// MockEmbedder is a test double for ai.Embedder. Behavior is injected
// through the exported function fields; when a field is nil the method
// returns a deterministic vector derived from the text.
type MockEmbedder struct {
	// EmbedTextFunc overrides EmbedText when set.
	EmbedTextFunc func(ctx context.Context, text string) ([]float32, error)

	// EmbedTextsFunc overrides EmbedTexts when set.
	EmbedTextsFunc func(ctx context.Context, texts []string) ([][]float32, error)

	callCount int
}

// NewMockEmbedder creates a mock embedder with default deterministic behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockEmbedder() *MockEmbedder {
	return &MockEmbedder{}
}

// EmbedText returns the injected result or a vector seeded by the text.
// Identical text always yields an identical vector, so index round trips
// in tests behave like real embeddings would.
func (m *MockEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	m.callCount++

	if m.EmbedTextFunc != nil {
		return m.EmbedTextFunc(ctx, text)
	}
	return seededVector(text), nil
}

// EmbedTexts returns the injected result or one seeded vector per text.
func (m *MockEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	m.callCount++

	if m.EmbedTextsFunc != nil {
		return m.EmbedTextsFunc(ctx, texts)
	}

	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = seededVector(text)
	}
	return vectors, nil
}

// CallCount returns the number of times any method was called.
func (m *MockEmbedder) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockEmbedder) Reset() {
	m.callCount = 0
	m.EmbedTextFunc = nil
	m.EmbedTextsFunc = nil
}

// seededVector expands an FNV hash of the text into a unit vector via a
// linear congruential sequence.
func seededVector(text string) []float32 {
	h := fnv.New32a()
	h.Write([]byte(text))
	state := h.Sum32()

	vector := make([]float32, mockDim)
	var sumSquares float64
	for i := range vector {
		state = state*1664525 + 1013904223
		v := float32(state%1000)/1000.0 - 0.5
		vector[i] = v
		sumSquares += float64(v) * float64(v)
	}

	if sumSquares > 0 {
		norm := float32(1 / math.Sqrt(sumSquares))
		for i := range vector {
			vector[i] *= norm
		}
	}
	return vector
}
