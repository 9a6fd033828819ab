package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashContent(t *testing.T) {
	assert.Len(t, HashContent("mezuniyet", 8), 8)
	assert.Len(t, HashContent("mezuniyet", 16), 16)
	assert.Equal(t, HashContent("mezuniyet", 8), HashContent("mezuniyet", 8))
	assert.NotEqual(t, HashContent("mezuniyet", 8), HashContent("kayıt", 8))
}

func TestIDFromContent(t *testing.T) {
	a := IDFromContent("YÖNETMELİK.pdf\x00Madde 1\x00Amaç bu yönetmeliğin kapsamıdır.")
	b := IDFromContent("YÖNETMELİK.pdf\x00Madde 1\x00Amaç bu yönetmeliğin kapsamıdır.")
	c := IDFromContent("YÖNETMELİK.pdf\x00Madde 2\x00Dayanak ilgili kanundur.")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotZero(t, a)
}

func TestParseIntent(t *testing.T) {
	for _, label := range []string{
		"GREETING",
		"NON_ACADEMIC",
		"ACADEMIC_NEEDS_CLARIFICATION",
		"ACADEMIC_READY",
	} {
		intent, ok := ParseIntent(label)
		require.True(t, ok, label)
		assert.Equal(t, Intent(label), intent)
	}

	for _, label := range []string{"", "VERIFIED_FAQ", "ERROR", "academic_ready", "OTHER"} {
		_, ok := ParseIntent(label)
		assert.False(t, ok, label)
	}
}

func TestChunkValidate(t *testing.T) {
	valid := Chunk{
		ID:        IDFromContent("test"),
		Text:      "Amaç bu yönetmeliğin kapsamıdır.",
		Source:    "YÖNETMELİK.pdf",
		PageStart: 1,
		PageEnd:   2,
	}
	require.NoError(t, valid.Validate())

	t.Run("empty text", func(t *testing.T) {
		c := valid
		c.Text = "   "
		err := c.Validate()
		assert.ErrorIs(t, err, ErrInvalidChunk)
		assert.ErrorIs(t, err, ErrEmptyChunkText)
	})

	t.Run("empty source", func(t *testing.T) {
		c := valid
		c.Source = ""
		err := c.Validate()
		assert.ErrorIs(t, err, ErrInvalidChunk)
		assert.ErrorIs(t, err, ErrEmptySource)
	})

	t.Run("inverted page range", func(t *testing.T) {
		c := valid
		c.PageStart = 5
		c.PageEnd = 3
		err := c.Validate()
		assert.ErrorIs(t, err, ErrInvalidChunk)
		assert.ErrorIs(t, err, ErrInvalidPageRange)
	})
}

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "mezuniyet koşulları", NormalizeQuery("  Mezuniyet koşulları  "))
	assert.Equal(t, "", NormalizeQuery("   "))

	t.Run("turkish case folding", func(t *testing.T) {
		// Dotted İ folds to i, dotless I to ı. Uppercase variants of
		// the same query must derive the same key.
		assert.Equal(t, "mezuniyet koşulları", NormalizeQuery("MEZUNİYET KOŞULLARI"))
		assert.Equal(t, "kayıt yenileme ne zaman?", NormalizeQuery("KAYIT YENİLEME NE ZAMAN?"))
		assert.Equal(t, NormalizeQuery("yatay geçiş"), NormalizeQuery("YATAY GEÇİŞ"))
	})
}
