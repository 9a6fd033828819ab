package core

import (
	"fmt"
	"strings"
	"unicode"
)

// Validate checks that a chunk is well-formed before storage.
func (c *Chunk) Validate() error {
	if strings.TrimSpace(c.Text) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyChunkText)
	}
	if strings.TrimSpace(c.Source) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptySource)
	}
	if c.PageEnd < c.PageStart {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrInvalidPageRange)
	}
	return nil
}

// NormalizeQuery lowercases and trims a query for use as a cache key or
// FAQ-match subject. Lowercasing uses the Turkish case table so that
// İ folds to i and I to ı; plain ToLower would split "KAYIT" and
// "kayıt" into different keys. Queries are never normalized before
// embedding or entity extraction.
func NormalizeQuery(query string) string {
	return strings.ToLowerSpecial(unicode.TurkishCase, strings.TrimSpace(query))
}
