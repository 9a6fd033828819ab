package ingest

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/regulo/ai/mock"
	"github.com/poiesic/regulo/core"
	"github.com/poiesic/regulo/index"
	"github.com/poiesic/regulo/index/badger"
)

type stubConverter struct {
	blocks []core.Block
}

func (s *stubConverter) Convert(ctx context.Context, path string) ([]core.Block, error) {
	return s.blocks, nil
}

func (s *stubConverter) Supports(path string) bool {
	return strings.HasSuffix(path, ".txt")
}

func newTestIndex(t *testing.T) index.Index {
	t.Helper()
	idx, err := badger.NewMemoryIndex()
	require.NoError(t, err)
	t.Cleanup(func() { idx.Close() })
	return idx
}

func regulationBlocks() []core.Block {
	return []core.Block{
		{Text: "Madde 1 - Bu yönetmelik Hacettepe Üniversitesi lisans öğrencilerine uygulanır.", Kind: "paragraph", Page: 1},
		{Text: "Madde 2 - Kayıt yenileme akademik takvimde belirtilen sürede yapılır.", Kind: "paragraph", Page: 1},
	}
}

func newTestPipeline(t *testing.T, idx index.Index, embedder *mock.MockEmbedder) *Pipeline {
	t.Helper()
	p, err := NewPipeline(idx, embedder, &stubConverter{blocks: regulationBlocks()}, WithPoolSize(1))
	require.NoError(t, err)
	t.Cleanup(p.Release)
	return p
}

func TestPipelineIngestFile(t *testing.T) {
	ctx := context.Background()
	idx := newTestIndex(t)
	p := newTestPipeline(t, idx, mock.NewMockEmbedder())

	require.NoError(t, p.IngestFile(ctx, "/docs/YÖNETMELİK.txt"))

	has, err := idx.HasSource(ctx, "YÖNETMELİK.txt")
	require.NoError(t, err)
	assert.True(t, has)

	count, err := idx.Count(ctx)
	require.NoError(t, err)
	assert.Greater(t, count, 0)
}

func TestPipelineStoresEntityMetadata(t *testing.T) {
	ctx := context.Background()
	idx := newTestIndex(t)
	embedder := mock.NewMockEmbedder()
	p := newTestPipeline(t, idx, embedder)

	require.NoError(t, p.IngestFile(ctx, "/docs/YÖNETMELİK.txt"))

	vector, err := embedder.EmbedText(ctx, "Hacettepe Üniversitesi")
	require.NoError(t, err)

	matches, err := idx.Search(ctx, vector, 10)
	require.NoError(t, err)
	require.NotEmpty(t, matches)

	found := false
	for _, m := range matches {
		if strings.Contains(m.Record.Metadata, "organizations") {
			found = true
		}
	}
	assert.True(t, found, "expected at least one record with organization entities")
}

func TestPipelineSkipsIndexedSources(t *testing.T) {
	ctx := context.Background()
	idx := newTestIndex(t)
	embedder := mock.NewMockEmbedder()
	p := newTestPipeline(t, idx, embedder)

	require.NoError(t, p.IngestFile(ctx, "/docs/YÖNETMELİK.txt"))
	calls := embedder.CallCount()

	require.NoError(t, p.IngestFile(ctx, "/docs/YÖNETMELİK.txt"))
	assert.Equal(t, calls, embedder.CallCount())
}

func TestPipelineReingestReplacesRecords(t *testing.T) {
	ctx := context.Background()
	idx := newTestIndex(t)
	p := newTestPipeline(t, idx, mock.NewMockEmbedder())

	require.NoError(t, p.IngestFile(ctx, "/docs/YÖNETMELİK.txt"))
	before, err := idx.Count(ctx)
	require.NoError(t, err)

	require.NoError(t, p.ReingestFile(ctx, "/docs/YÖNETMELİK.txt"))
	after, err := idx.Count(ctx)
	require.NoError(t, err)

	assert.Equal(t, before, after)
}

func TestPipelineRejectsUnsupportedFiles(t *testing.T) {
	idx := newTestIndex(t)
	p := newTestPipeline(t, idx, mock.NewMockEmbedder())

	err := p.IngestFile(context.Background(), "/docs/resim.png")
	assert.ErrorIs(t, err, ErrUnsupportedFile)
}

func TestPipelineEmbeddingFailure(t *testing.T) {
	ctx := context.Background()
	idx := newTestIndex(t)

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, errors.New("embedding service down")
	}
	p := newTestPipeline(t, idx, embedder)

	err := p.IngestFile(ctx, "/docs/YÖNETMELİK.txt")
	assert.Error(t, err)

	has, err2 := idx.HasSource(ctx, "YÖNETMELİK.txt")
	require.NoError(t, err2)
	assert.False(t, has)
}
