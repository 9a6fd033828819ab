package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntitySet(t *testing.T) {
	s := NewEntitySet()
	require.Len(t, s, len(Categories()))
	for _, c := range Categories() {
		values, ok := s[c]
		require.True(t, ok, string(c))
		assert.Empty(t, values)
	}
	assert.True(t, s.IsEmpty())
}

func TestEntitySetAdd(t *testing.T) {
	s := NewEntitySet()

	s.Add(CategoryFaculty, "Mühendislik Fakültesi")
	s.Add(CategoryFaculty, "  mühendislik fakültesi  ")
	s.Add(CategoryFaculty, "MÜHENDISLIK FAKÜLTESI")
	s.Add(CategoryFaculty, "Tıp Fakültesi")
	s.Add(CategoryFaculty, "   ")

	assert.Equal(t, []string{"Mühendislik Fakültesi", "Tıp Fakültesi"}, s[CategoryFaculty])
	assert.False(t, s.IsEmpty())
}

func TestEntitySetFold(t *testing.T) {
	s := NewEntitySet()
	s.Add(CategoryOrganization, "Hacettepe Üniversitesi")
	s.Add(CategoryOrganization, "HÜ")

	folded := s.Fold(CategoryOrganization)
	assert.Contains(t, folded, "hacettepe üniversitesi")
	assert.Contains(t, folded, "hü")
	assert.Len(t, folded, 2)

	assert.Empty(t, s.Fold(CategoryCourse))
}

func TestEntitySetSorted(t *testing.T) {
	s := NewEntitySet()
	s.Add(CategoryArticleNumber, "12")
	s.Add(CategoryArticleNumber, "3")
	s.Add(CategoryArticleNumber, "15")

	assert.Equal(t, []string{"12", "15", "3"}, s.Sorted(CategoryArticleNumber))
	assert.Equal(t, []string{"12", "3", "15"}, s[CategoryArticleNumber])
}
