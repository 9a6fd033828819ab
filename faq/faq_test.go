package faq

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/regulo/core"
)

func testStore() *Store {
	return New([]Entry{
		{
			Questions: []string{"Kayıt yenileme ne zaman?", "kayıt yenileme tarihleri"},
			Answer:    "Kayıt yenileme her dönem başında akademik takvimde ilan edilir.",
			Source:    "akademik_takvim.pdf",
		},
	})
}

func TestStoreFind(t *testing.T) {
	store := testStore()

	t.Run("exact match ignoring case", func(t *testing.T) {
		got := store.Find("KAYIT YENİLEME NE ZAMAN?")
		require.NotNil(t, got)
		assert.Equal(t, core.IntentVerifiedFAQ, got.Intent)
		assert.Equal(t, []string{"akademik_takvim.pdf"}, got.Sources)
		require.Len(t, got.Chunks, 1)
		assert.Equal(t, 1.0, got.Chunks[0].Score)
	})

	t.Run("question embedded in longer query", func(t *testing.T) {
		got := store.Find("merhaba, kayıt yenileme tarihleri hakkında bilgi alabilir miyim")
		require.NotNil(t, got)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Nil(t, store.Find("yatay geçiş şartları"))
	})

	t.Run("blank query", func(t *testing.T) {
		assert.Nil(t, store.Find("   "))
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "faq.json")
		data := `[{"questions": ["soru"], "answer": "cevap", "source": "s.pdf"}]`
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))

		store, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("missing file is an empty store", func(t *testing.T) {
		store, err := LoadFile(filepath.Join(t.TempDir(), "absent.json"))
		require.NoError(t, err)
		assert.Equal(t, 0, store.Len())
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "faq.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

		_, err := LoadFile(path)
		assert.Error(t, err)
	})
}
