package answer

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"

	"github.com/poiesic/regulo/ai"
	"github.com/poiesic/regulo/cache"
	"github.com/poiesic/regulo/core"
	"github.com/poiesic/regulo/faq"
)

var (
	// ErrNilRetriever indicates the engine was built without a retriever.
	ErrNilRetriever = errors.New("engine requires a retriever")

	// ErrNilGenerator indicates the engine was built without a generator.
	ErrNilGenerator = errors.New("engine requires a generator")

	// ErrNilClassifier indicates the engine was built without a classifier.
	ErrNilClassifier = errors.New("engine requires a classifier")
)

// Retriever supplies ranked chunks for a query.
type Retriever interface {
	Retrieve(ctx context.Context, query string) ([]core.ScoredChunk, error)
}

// Option configures an Engine.
type Option func(*Engine)

// WithCache enables the query result cache.
func WithCache(c *cache.QueryCache) Option {
	return func(e *Engine) {
		e.cache = c
	}
}

// WithFAQ enables verified answer lookup before retrieval.
func WithFAQ(store *faq.Store) Option {
	return func(e *Engine) {
		e.faq = store
	}
}

// Engine turns a user query into an answer. The pipeline short-circuits
// in order: blank query, cache, verified FAQ, intent gate, retrieval,
// generation. Each stage that produces a final answer skips the rest.
type Engine struct {
	retriever  Retriever
	generator  ai.Generator
	classifier ai.IntentClassifier
	cache      *cache.QueryCache
	faq        *faq.Store
	logger     *slog.Logger
}

// New creates an Engine over the given services.
func New(retriever Retriever, generator ai.Generator, classifier ai.IntentClassifier, opts ...Option) (*Engine, error) {
	if retriever == nil {
		return nil, ErrNilRetriever
	}
	if generator == nil {
		return nil, ErrNilGenerator
	}
	if classifier == nil {
		return nil, ErrNilClassifier
	}

	e := &Engine{
		retriever:  retriever,
		generator:  generator,
		classifier: classifier,
		logger:     slog.Default().With("component", "engine"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Answer runs the full pipeline for a query.
func (e *Engine) Answer(ctx context.Context, query string) (*core.Answer, error) {
	if strings.TrimSpace(query) == "" {
		return templated(core.IntentGreeting, greetingText), nil
	}

	if e.cache != nil {
		if cached := e.cache.Get(query); cached != nil {
			e.logger.Debug("cache hit", "intent", cached.Intent)
			return cached, nil
		}
	}

	if e.faq != nil {
		if verified := e.faq.Find(query); verified != nil {
			e.logger.Debug("verified answer hit")
			return verified, nil
		}
	}

	intent := e.classify(ctx, query)
	switch intent {
	case core.IntentGreeting:
		return templated(core.IntentGreeting, greetingText), nil
	case core.IntentNonAcademic:
		return templated(core.IntentNonAcademic, nonAcademicText), nil
	case core.IntentNeedsClarification:
		return templated(core.IntentNeedsClarification, clarificationText), nil
	}

	return e.answerAcademic(ctx, query)
}

// classify routes the query, failing open to ACADEMIC_READY so a
// classifier outage degrades to normal retrieval instead of refusal.
func (e *Engine) classify(ctx context.Context, query string) core.Intent {
	intent, err := e.classifier.Classify(ctx, query)
	if err != nil {
		e.logger.Warn("intent classification failed, assuming academic query", "err", err)
		return core.IntentAcademicReady
	}
	return intent
}

func (e *Engine) answerAcademic(ctx context.Context, query string) (*core.Answer, error) {
	chunks, err := e.retriever.Retrieve(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return templated(core.IntentAcademicReady, noResultsText), nil
	}

	prompt := buildPrompt(query, chunks)
	text, err := e.generator.Generate(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		e.logger.Error("answer generation failed", "err", err)
		return templated(core.IntentError, generationFailedText), nil
	}

	result := &core.Answer{
		Answer:  text,
		Sources: collectSources(chunks),
		Chunks:  chunks,
		Intent:  core.IntentAcademicReady,
	}

	// Only grounded answers are worth replaying.
	if e.cache != nil && len(result.Sources) > 0 {
		e.cache.Set(query, result)
	}
	return result, nil
}

func templated(intent core.Intent, text string) *core.Answer {
	return &core.Answer{
		Answer: text,
		Intent: intent,
	}
}

// collectSources returns the distinct source files, sorted.
func collectSources(chunks []core.ScoredChunk) []string {
	seen := make(map[string]struct{}, len(chunks))
	var sources []string
	for _, chunk := range chunks {
		if chunk.Source == "" {
			continue
		}
		if _, ok := seen[chunk.Source]; ok {
			continue
		}
		seen[chunk.Source] = struct{}{}
		sources = append(sources, chunk.Source)
	}
	sort.Strings(sources)
	return sources
}
