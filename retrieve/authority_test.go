package retrieve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorityMultiplier(t *testing.T) {
	t.Run("first matching rule wins", func(t *testing.T) {
		got := authorityMultiplier(
			"HACETTEPE EĞİTİM-ÖĞRETİM YÖNETMELİK.pdf", "ders kaydı",
			DefaultAuthorityRules, DefaultBoostRules)
		assert.Equal(t, 1.25, got)
	})

	t.Run("regulation outranks directive", func(t *testing.T) {
		regulation := authorityMultiplier("YÖNETMELİK.pdf", "soru", DefaultAuthorityRules, nil)
		directive := authorityMultiplier("YÖNERGE.pdf", "soru", DefaultAuthorityRules, nil)
		assert.Greater(t, regulation, directive)
	})

	t.Run("unknown document defaults to one", func(t *testing.T) {
		got := authorityMultiplier("notlar.txt", "soru", DefaultAuthorityRules, DefaultBoostRules)
		assert.Equal(t, 1.0, got)
	})

	t.Run("lowercase filename matches via turkish casing", func(t *testing.T) {
		got := authorityMultiplier("lisans yönetmelik.pdf", "soru", DefaultAuthorityRules, nil)
		assert.Equal(t, 1.10, got)
	})

	t.Run("boost applies once to matching query", func(t *testing.T) {
		got := authorityMultiplier(
			"MEZUNİYET SIRALAMASI.pdf", "mezuniyet sıralaması nasıl hesaplanır",
			DefaultAuthorityRules, DefaultBoostRules)
		assert.InDelta(t, 0.85*1.5, got, 1e-9)
	})

	t.Run("boost needs a keyword in the query", func(t *testing.T) {
		got := authorityMultiplier(
			"MEZUNİYET SIRALAMASI.pdf", "kayıt yenileme",
			DefaultAuthorityRules, DefaultBoostRules)
		assert.Equal(t, 0.85, got)
	})
}
