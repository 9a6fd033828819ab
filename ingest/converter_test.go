package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextConverter(t *testing.T) {
	converter := NewTextConverter()

	t.Run("supported extensions", func(t *testing.T) {
		assert.True(t, converter.Supports("doc.txt"))
		assert.True(t, converter.Supports("doc.MD"))
		assert.False(t, converter.Supports("doc.pdf"))
	})

	t.Run("splits paragraphs into blocks", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "yonetmelik.txt")
		content := "BİRİNCİ BÖLÜM\n\nMadde 1 - Amaç bu yönetmeliğin kapsamını belirlemektir.\n\nMadde 2 - Dayanak ilgili kanundur."
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		blocks, err := converter.Convert(context.Background(), path)
		require.NoError(t, err)
		require.Len(t, blocks, 3)

		assert.Equal(t, "section_header", blocks[0].Kind)
		assert.Equal(t, "BİRİNCİ BÖLÜM", blocks[0].Text)
		assert.Equal(t, "paragraph", blocks[1].Kind)
	})

	t.Run("unreadable file yields no blocks", func(t *testing.T) {
		blocks, err := converter.Convert(context.Background(), filepath.Join(t.TempDir(), "yok.txt"))
		require.NoError(t, err)
		assert.Empty(t, blocks)
	})
}
