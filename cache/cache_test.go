package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/regulo/core"
)

func answer(text string) *core.Answer {
	return &core.Answer{
		Answer:  text,
		Sources: []string{"yonetmelik.pdf"},
		Intent:  core.IntentAcademicReady,
	}
}

func TestQueryCacheRoundTrip(t *testing.T) {
	c, err := New(t.TempDir())
	require.NoError(t, err)

	assert.Nil(t, c.Get("mezuniyet koşulları nelerdir"))

	c.Set("mezuniyet koşulları nelerdir", answer("cevap"))

	got := c.Get("mezuniyet koşulları nelerdir")
	require.NotNil(t, got)
	assert.Equal(t, "cevap", got.Answer)
}

func TestQueryCacheNormalizesQueries(t *testing.T) {
	c, err := New(t.TempDir())
	require.NoError(t, err)

	c.Set("Mezuniyet Koşulları", answer("cevap"))

	assert.NotNil(t, c.Get("mezuniyet koşulları"))
	assert.NotNil(t, c.Get("  MEZUNİYET KOŞULLARI  "))
}

func TestQueryCacheExpiry(t *testing.T) {
	c, err := New(t.TempDir(), WithMaxAge(time.Hour))
	require.NoError(t, err)

	current := time.Now()
	c.now = func() time.Time { return current }

	c.Set("soru", answer("cevap"))
	require.NotNil(t, c.Get("soru"))

	current = current.Add(2 * time.Hour)
	assert.Nil(t, c.Get("soru"))

	stats, err := c.Stats()
	require.NoError(t, err)
	assert.Equal(t, 0, stats.MemoryEntries)
	assert.Equal(t, 0, stats.DiskEntries)
}

func TestQueryCacheDiskPromotion(t *testing.T) {
	dir := t.TempDir()

	first, err := New(dir)
	require.NoError(t, err)
	first.Set("soru", answer("cevap"))

	// A fresh instance starts with an empty memory tier and must fall
	// back to the disk file.
	second, err := New(dir)
	require.NoError(t, err)

	got := second.Get("soru")
	require.NotNil(t, got)
	assert.Equal(t, "cevap", got.Answer)

	stats, err := second.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.MemoryEntries)
	assert.Equal(t, 1, stats.DiskEntries)
}

func TestQueryCacheClear(t *testing.T) {
	c, err := New(t.TempDir())
	require.NoError(t, err)

	c.Set("bir", answer("1"))
	c.Set("iki", answer("2"))

	require.NoError(t, c.Clear())

	assert.Nil(t, c.Get("bir"))
	stats, err := c.Stats()
	require.NoError(t, err)
	assert.Equal(t, Stats{}, stats)
}
