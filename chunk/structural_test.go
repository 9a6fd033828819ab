package chunk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/regulo/core"
)

func TestStructuralChunkerGroupsByHeading(t *testing.T) {
	c := NewStructuralChunker(DefaultMaxSize, DefaultOverlap)

	blocks := []core.Block{
		{Text: "BİRİNCİ BÖLÜM", Kind: "section_header", Page: 1},
		{Text: "Amaç bu yönetmeliğin kapsamını belirlemektir.", Kind: "paragraph", Page: 1},
		{Text: "Dayanak ilgili kanun hükümleridir.", Kind: "paragraph", Page: 2},
		{Text: "İKİNCİ BÖLÜM", Kind: "section_header", Page: 2},
		{Text: "Sınav esasları burada düzenlenir.", Kind: "paragraph", Page: 3},
	}

	pieces := c.Chunk(blocks)
	require.Len(t, pieces, 2)

	assert.Equal(t, "BİRİNCİ BÖLÜM", pieces[0].Heading)
	assert.True(t, strings.HasPrefix(pieces[0].Text, "BİRİNCİ BÖLÜM\n\n"))
	assert.Contains(t, pieces[0].Text, "Amaç bu yönetmeliğin")
	assert.Contains(t, pieces[0].Text, "Dayanak ilgili")
	assert.Equal(t, 1, pieces[0].PageStart)
	assert.Equal(t, 2, pieces[0].PageEnd)

	assert.Equal(t, "İKİNCİ BÖLÜM", pieces[1].Heading)
	assert.Equal(t, 3, pieces[1].PageEnd)
}

func TestStructuralChunkerDefaultHeading(t *testing.T) {
	c := NewStructuralChunker(DefaultMaxSize, DefaultOverlap)

	pieces := c.Chunk([]core.Block{
		{Text: "Başlıksız giriş metni.", Kind: "paragraph", Page: 1},
	})

	require.Len(t, pieces, 1)
	assert.Equal(t, "Giriş / Genel", pieces[0].Heading)
}

func TestStructuralChunkerDetectsTextHeadings(t *testing.T) {
	c := NewStructuralChunker(DefaultMaxSize, DefaultOverlap)

	blocks := []core.Block{
		{Text: "Madde 5", Kind: "text", Page: 1},
		{Text: "Devamsızlık sınırı burada düzenlenir.", Kind: "paragraph", Page: 1},
	}

	pieces := c.Chunk(blocks)
	require.Len(t, pieces, 1)
	assert.Equal(t, "Madde 5", pieces[0].Heading)
	assert.Contains(t, pieces[0].BlockKinds, "heading")
}

func TestStructuralChunkerSplitsOversizedSections(t *testing.T) {
	c := NewStructuralChunker(80, 0)

	blocks := []core.Block{
		{Text: "BÖLÜM", Kind: "section_header", Page: 1},
		{Text: strings.TrimSpace(strings.Repeat("sözcük ", 60)), Kind: "paragraph", Page: 1},
	}

	pieces := c.Chunk(blocks)
	require.Greater(t, len(pieces), 1)
	for _, piece := range pieces {
		assert.True(t, strings.HasPrefix(piece.Text, "BÖLÜM\n\n"))
		assert.Equal(t, "BÖLÜM", piece.Heading)
	}
}

func TestLooksLikeHeading(t *testing.T) {
	assert.True(t, looksLikeHeading("Madde 12"))
	assert.True(t, looksLikeHeading("3. Bölüm"))
	assert.True(t, looksLikeHeading("GENEL HÜKÜMLER"))
	assert.False(t, looksLikeHeading("sıradan bir cümle"))
	assert.False(t, looksLikeHeading(strings.Repeat("UZUN ", 30)))
}
