package regulo

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/regulo/ai/mock"
	"github.com/poiesic/regulo/core"
	"github.com/poiesic/regulo/index/badger"
)

func newTestAssistant(t *testing.T) *Assistant {
	t.Helper()

	idx, err := badger.NewMemoryIndex()
	require.NoError(t, err)

	a, err := NewAssistant(t.TempDir(),
		WithProvider(mock.NewMockProvider()),
		WithIndex(idx),
	)
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func TestAssistantEndToEnd(t *testing.T) {
	ctx := context.Background()
	a := newTestAssistant(t)

	docs := t.TempDir()
	content := "Madde 1 - Bu yönetmelik Hacettepe Üniversitesi lisans öğrencilerine uygulanır.\n\n" +
		"Madde 2 - Kayıt yenileme akademik takvimde belirtilen sürede yapılır."
	require.NoError(t, os.WriteFile(filepath.Join(docs, "YÖNETMELİK.txt"), []byte(content), 0644))

	require.NoError(t, a.IngestDir(ctx, docs))

	count, err := a.IndexCount(ctx)
	require.NoError(t, err)
	assert.Greater(t, count, 0)

	got, err := a.Ask(ctx, "kayıt yenileme ne zaman yapılır")
	require.NoError(t, err)
	assert.Equal(t, core.IntentAcademicReady, got.Intent)
	assert.Contains(t, got.Sources, "YÖNETMELİK.txt")
}

func TestAssistantBlankQuery(t *testing.T) {
	a := newTestAssistant(t)

	got, err := a.Ask(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, core.IntentGreeting, got.Intent)
}

func TestAssistantCacheLifecycle(t *testing.T) {
	ctx := context.Background()
	a := newTestAssistant(t)

	docs := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(docs, "YÖNERGE.txt"),
		[]byte("Madde 1 - Yatay geçiş başvuruları her yıl ilan edilir."), 0644))
	require.NoError(t, a.IngestDir(ctx, docs))

	_, err := a.Ask(ctx, "yatay geçiş başvurusu")
	require.NoError(t, err)

	stats, err := a.CacheStats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.MemoryEntries)

	require.NoError(t, a.ClearCache())
	stats, err = a.CacheStats()
	require.NoError(t, err)
	assert.Equal(t, 0, stats.MemoryEntries)
}
