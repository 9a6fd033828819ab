package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/poiesic/regulo/core"
)

func TestOverlap(t *testing.T) {
	t.Run("identical sets score one", func(t *testing.T) {
		set := Extract("Hacettepe Üniversitesi Tıp Fakültesi Madde 12")
		assert.Equal(t, 1.0, Overlap(set, set))
	})

	t.Run("empty query scores zero", func(t *testing.T) {
		chunk := Extract("Hacettepe Üniversitesi Ankara")
		assert.Equal(t, 0.0, Overlap(core.NewEntitySet(), chunk))
	})

	t.Run("empty chunk scores zero", func(t *testing.T) {
		query := Extract("Hacettepe Üniversitesi")
		assert.Equal(t, 0.0, Overlap(query, core.NewEntitySet()))
	})

	t.Run("partial coverage is proportional", func(t *testing.T) {
		query := core.NewEntitySet()
		query.Add(core.CategoryDate, "2023")
		query.Add(core.CategoryDate, "2024")
		chunk := core.NewEntitySet()
		chunk.Add(core.CategoryDate, "2023")

		assert.InDelta(t, 0.5, Overlap(query, chunk), 1e-9)
	})

	t.Run("weighted categories dominate", func(t *testing.T) {
		query := core.NewEntitySet()
		query.Add(core.CategoryOrganization, "Hacettepe Üniversitesi")
		query.Add(core.CategoryDate, "2023")

		orgOnly := core.NewEntitySet()
		orgOnly.Add(core.CategoryOrganization, "Hacettepe Üniversitesi")

		dateOnly := core.NewEntitySet()
		dateOnly.Add(core.CategoryDate, "2023")

		assert.Greater(t, Overlap(query, orgOnly), Overlap(query, dateOnly))
	})

	t.Run("matching is case insensitive", func(t *testing.T) {
		query := core.NewEntitySet()
		query.Add(core.CategoryLocation, "ANKARA")
		chunk := core.NewEntitySet()
		chunk.Add(core.CategoryLocation, "Ankara")

		assert.Equal(t, 1.0, Overlap(query, chunk))
	})
}
