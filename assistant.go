// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package regulo

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/poiesic/regulo/ai"
	"github.com/poiesic/regulo/ai/openai"
	"github.com/poiesic/regulo/answer"
	"github.com/poiesic/regulo/cache"
	"github.com/poiesic/regulo/core"
	"github.com/poiesic/regulo/faq"
	"github.com/poiesic/regulo/index"
	badgerindex "github.com/poiesic/regulo/index/badger"
	"github.com/poiesic/regulo/ingest"
	"github.com/poiesic/regulo/retrieve"
)

// Assistant bundles the index, AI services, cache, FAQ store, answer
// engine and ingestion pipeline behind one handle. It is the unit the
// CLI and embedding applications work with.
type Assistant struct {
	dataDir   string
	aiConfig  *ai.Config
	provider  ai.AIProvider
	index     index.Index
	cache     *cache.QueryCache
	faq       *faq.Store
	engine    *answer.Engine
	pipeline  *ingest.Pipeline
	converter ingest.Converter
	topK      int
	logger    *slog.Logger
}

// AssistantOption configures an Assistant.
type AssistantOption func(*Assistant) error

// WithAIConfig overrides the default AI service configuration.
func WithAIConfig(config *ai.Config) AssistantOption {
	return func(a *Assistant) error {
		a.aiConfig = config
		return nil
	}
}

// WithProvider injects a prebuilt AI provider, bypassing WithAIConfig.
// Used by tests to run against mocks.
func WithProvider(provider ai.AIProvider) AssistantOption {
	return func(a *Assistant) error {
		a.provider = provider
		return nil
	}
}

// WithIndex injects a prebuilt vector index instead of opening one
// under the data directory.
func WithIndex(idx index.Index) AssistantOption {
	return func(a *Assistant) error {
		a.index = idx
		return nil
	}
}

// WithConverter replaces the default plain text document converter.
func WithConverter(converter ingest.Converter) AssistantOption {
	return func(a *Assistant) error {
		a.converter = converter
		return nil
	}
}

// WithTopK sets how many chunks back an answer.
func WithTopK(topK int) AssistantOption {
	return func(a *Assistant) error {
		a.topK = topK
		return nil
	}
}

// NewAssistant creates an assistant rooted at dataDir. The directory
// holds the vector index (index/), the query cache (cache/) and an
// optional verified FAQ file (faq.json).
func NewAssistant(dataDir string, opts ...AssistantOption) (*Assistant, error) {
	a := &Assistant{
		dataDir:  dataDir,
		aiConfig: ai.DefaultConfig(),
		topK:     retrieve.DefaultTopK,
		logger:   slog.Default().With("component", "assistant"),
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	if a.provider == nil {
		provider, err := openai.NewProvider(a.aiConfig)
		if err != nil {
			return nil, err
		}
		a.provider = provider
	}

	if a.index == nil {
		idx, err := badgerindex.OpenIndex(filepath.Join(dataDir, "index"))
		if err != nil {
			return nil, err
		}
		a.index = idx
	}

	queryCache, err := cache.New(filepath.Join(dataDir, "cache"))
	if err != nil {
		a.index.Close()
		return nil, err
	}
	a.cache = queryCache

	faqStore, err := faq.LoadFile(filepath.Join(dataDir, "faq.json"))
	if err != nil {
		a.index.Close()
		return nil, err
	}
	a.faq = faqStore
	if faqStore.Len() > 0 {
		a.logger.Info("loaded verified answers", "count", faqStore.Len())
	}

	retriever, err := retrieve.New(a.index, a.provider.Embedder(), retrieve.WithTopK(a.topK))
	if err != nil {
		a.index.Close()
		return nil, err
	}

	engine, err := answer.New(
		retriever,
		a.provider.Generator(),
		a.provider.IntentClassifier(),
		answer.WithCache(a.cache),
		answer.WithFAQ(a.faq),
	)
	if err != nil {
		a.index.Close()
		return nil, err
	}
	a.engine = engine

	if a.converter == nil {
		a.converter = ingest.NewTextConverter()
	}
	pipeline, err := ingest.NewPipeline(a.index, a.provider.Embedder(), a.converter)
	if err != nil {
		a.index.Close()
		return nil, err
	}
	a.pipeline = pipeline

	return a, nil
}

// Ask answers a user query.
func (a *Assistant) Ask(ctx context.Context, query string) (*core.Answer, error) {
	return a.engine.Answer(ctx, query)
}

// IngestFile indexes one document, skipping already indexed sources.
func (a *Assistant) IngestFile(ctx context.Context, path string) error {
	return a.pipeline.IngestFile(ctx, path)
}

// IngestDir indexes every supported document under dir.
func (a *Assistant) IngestDir(ctx context.Context, dir string) error {
	return a.pipeline.IngestDir(ctx, dir)
}

// Watch ingests dir and then keeps the index in sync with it until the
// context is cancelled.
func (a *Assistant) Watch(ctx context.Context, dir string) error {
	watcher, err := ingest.NewWatcher(a.pipeline, dir)
	if err != nil {
		return err
	}
	defer watcher.Close()
	return watcher.Run(ctx)
}

// IndexCount returns the number of chunks in the index.
func (a *Assistant) IndexCount(ctx context.Context) (int, error) {
	return a.index.Count(ctx)
}

// CacheStats reports query cache occupancy.
func (a *Assistant) CacheStats() (cache.Stats, error) {
	return a.cache.Stats()
}

// ClearCache drops all cached answers.
func (a *Assistant) ClearCache() error {
	return a.cache.Clear()
}

// Close releases the pipeline, index and AI provider.
func (a *Assistant) Close() error {
	a.pipeline.Release()
	if err := a.index.Close(); err != nil {
		a.provider.Close()
		return err
	}
	return a.provider.Close()
}
