package ingest

import (
	"context"
	"encoding/json"
	"io/fs"
	"log/slog"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/regulo/ai"
	"github.com/poiesic/regulo/chunk"
	"github.com/poiesic/regulo/core"
	"github.com/poiesic/regulo/extract"
	"github.com/poiesic/regulo/index"
)

// Pipeline converts documents into chunks, embeds them concurrently
// and stores the records in the vector index.
type Pipeline struct {
	index     index.Index
	embedder  ai.Embedder
	converter Converter
	chunker   chunk.Chunker
	pool      *ants.Pool
	logger    *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		if p.pool != nil {
			p.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithChunker replaces the default article chunker.
func WithChunker(chunker chunk.Chunker) Option {
	return func(p *Pipeline) error {
		p.chunker = chunker
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(idx index.Index, embedder ai.Embedder, converter Converter, opts ...Option) (*Pipeline, error) {
	if idx == nil {
		return nil, ErrIndexRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if converter == nil {
		return nil, ErrConverterRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		index:     idx,
		embedder:  embedder,
		converter: converter,
		chunker:   chunk.New(chunk.StrategyArticle, chunk.DefaultMaxSize, chunk.DefaultOverlap),
		pool:      pool,
		logger:    slog.Default().With("component", "ingest"),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}
	return p, nil
}

// Release shuts down the worker pool.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}

// IngestFile indexes one document. Files already present in the index
// are skipped; use ReingestFile to refresh them.
func (p *Pipeline) IngestFile(ctx context.Context, path string) error {
	if !p.converter.Supports(path) {
		return ErrUnsupportedFile
	}

	source := filepath.Base(path)
	has, err := p.index.HasSource(ctx, source)
	if err != nil {
		return err
	}
	if has {
		p.logger.Debug("source already indexed, skipping", "source", source)
		return nil
	}
	return p.ingest(ctx, path, source)
}

// ReingestFile drops the document's existing records and indexes it
// again. Used when a watched file changes.
func (p *Pipeline) ReingestFile(ctx context.Context, path string) error {
	if !p.converter.Supports(path) {
		return ErrUnsupportedFile
	}

	source := filepath.Base(path)
	if err := p.index.DeleteSource(ctx, source); err != nil {
		return err
	}
	return p.ingest(ctx, path, source)
}

// IngestDir walks dir and ingests every supported file. Per-file
// failures are logged and do not stop the walk.
func (p *Pipeline) IngestDir(ctx context.Context, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !p.converter.Supports(path) {
			return nil
		}
		if err := p.IngestFile(ctx, path); err != nil {
			p.logger.Error("failed to ingest document", "path", path, "err", err)
		}
		return nil
	})
}

func (p *Pipeline) ingest(ctx context.Context, path, source string) error {
	blocks, err := p.converter.Convert(ctx, path)
	if err != nil {
		return err
	}
	if len(blocks) == 0 {
		p.logger.Warn("document produced no text", "source", source)
		return nil
	}

	pieces := p.chunker.Chunk(blocks)
	if len(pieces) == 0 {
		p.logger.Warn("document produced no chunks", "source", source)
		return nil
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		records []*index.Record
		failed  int
		lastErr error
	)

	for _, piece := range pieces {
		piece := piece
		wg.Add(1)
		task := func() {
			defer wg.Done()

			vector, err := p.embedder.EmbedText(ctx, piece.Text)
			if err != nil || len(vector) == 0 {
				mu.Lock()
				failed++
				if err != nil {
					lastErr = err
				}
				mu.Unlock()
				return
			}

			record := &index.Record{
				ID:        core.IDFromContent(source + "\x00" + piece.Heading + "\x00" + piece.Text),
				Text:      piece.Text,
				Vector:    vector,
				Source:    source,
				Heading:   piece.Heading,
				PageStart: piece.PageStart,
				PageEnd:   piece.PageEnd,
				Metadata:  entityMetadata(piece.Text),
			}

			mu.Lock()
			records = append(records, record)
			mu.Unlock()
		}
		if err := p.pool.Submit(task); err != nil {
			task()
		}
	}
	wg.Wait()

	if failed > 0 {
		p.logger.Warn("some chunks failed to embed", "source", source, "failed", failed, "err", lastErr)
	}
	if len(records) == 0 {
		return lastErr
	}

	if err := p.index.Add(ctx, records...); err != nil {
		return err
	}

	p.logger.Info("ingested document", "source", source, "chunks", len(records))
	return nil
}

// entityMetadata serializes the chunk's extracted entities for storage
// alongside its vector. Chunks without entities store no metadata.
func entityMetadata(text string) string {
	entities := extract.Extract(text)
	if entities.IsEmpty() {
		return ""
	}
	data, err := json.Marshal(entities)
	if err != nil {
		return ""
	}
	return string(data)
}
