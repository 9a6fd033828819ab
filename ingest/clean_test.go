package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	t.Run("drops page number lines", func(t *testing.T) {
		in := "Birinci cümle burada biter.\n12\nSayfa 3\nİkinci cümle."
		got := CleanText(in)
		assert.NotContains(t, got, "12")
		assert.NotContains(t, got, "Sayfa 3")
		assert.Contains(t, got, "İkinci cümle.")
	})

	t.Run("repairs hyphenated line breaks", func(t *testing.T) {
		got := CleanText("öğrencinin başvuru-\nsu kabul edilir.")
		assert.Equal(t, "öğrencinin başvurusu kabul edilir.", got)
	})

	t.Run("rejoins wrapped sentences", func(t *testing.T) {
		got := CleanText("Öğrenci her yarıyıl başında kayıt\nyenilemek zorundadır.")
		assert.Equal(t, "Öğrenci her yarıyıl başında kayıt yenilemek zorundadır.", got)
	})

	t.Run("keeps article starts on their own line", func(t *testing.T) {
		got := CleanText("hükümler saklıdır\nMadde 5 - Sınav esasları")
		assert.Contains(t, got, "hükümler saklıdır\nMadde 5")
	})

	t.Run("keeps list items separate", func(t *testing.T) {
		got := CleanText("koşullar şunlardır\na) başarı notu\nb) devam şartı")
		assert.Contains(t, got, "\na) başarı notu")
		assert.Contains(t, got, "\nb) devam şartı")
	})

	t.Run("collapses extra blank lines", func(t *testing.T) {
		got := CleanText("Birinci paragraf.\n\n\n\nİkinci paragraf.")
		assert.Equal(t, "Birinci paragraf.\n\nİkinci paragraf.", got)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", CleanText("  \n \n"))
	})
}
