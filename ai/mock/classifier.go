package mock

import (
	"context"

	"github.com/poiesic/regulo/core"
)

// MockIntentClassifier is a test double for ai.IntentClassifier.
type MockIntentClassifier struct {
	// ClassifyFunc is called by Classify if set.
	// If nil, every query classifies as ACADEMIC_READY.
	ClassifyFunc func(ctx context.Context, query string) (core.Intent, error)

	callCount int
}

// NewMockIntentClassifier creates a mock classifier with default behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockIntentClassifier() *MockIntentClassifier {
	return &MockIntentClassifier{}
}

// Classify returns the injected behavior's result, or ACADEMIC_READY.
func (m *MockIntentClassifier) Classify(ctx context.Context, query string) (core.Intent, error) {
	m.callCount++

	if m.ClassifyFunc != nil {
		return m.ClassifyFunc(ctx, query)
	}
	return core.IntentAcademicReady, nil
}

// CallCount returns the number of times Classify was called.
func (m *MockIntentClassifier) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockIntentClassifier) Reset() {
	m.callCount = 0
	m.ClassifyFunc = nil
}
