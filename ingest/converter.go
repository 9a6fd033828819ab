package ingest

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/poiesic/regulo/core"
)

// Converter turns a document file into an ordered list of text blocks.
// Implementations should be fail-soft: returning no blocks for a file
// they cannot read lets ingestion continue with the rest of the corpus.
type Converter interface {
	// Convert reads the file at path and returns its blocks.
	Convert(ctx context.Context, path string) ([]core.Block, error)

	// Supports reports whether the converter handles this file.
	Supports(path string) bool
}

// TextConverter reads plain text and markdown files. Paragraphs become
// blocks; short all-caps or "Madde N" paragraphs are tagged as section
// headers so the structural chunker can group by them.
type TextConverter struct {
	logger *slog.Logger
}

var _ Converter = (*TextConverter)(nil)

// NewTextConverter creates a converter for .txt and .md files.
func NewTextConverter() *TextConverter {
	return &TextConverter{
		logger: slog.Default().With("component", "text-converter"),
	}
}

// Supports reports whether path has a plain text extension.
func (c *TextConverter) Supports(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md":
		return true
	}
	return false
}

// Convert reads and cleans the file, splitting it into one block per
// paragraph. Read failures are logged and yield no blocks.
func (c *TextConverter) Convert(ctx context.Context, path string) ([]core.Block, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		c.logger.Warn("failed to read document", "path", path, "err", err)
		return nil, nil
	}

	cleaned := CleanText(string(data))
	if cleaned == "" {
		return nil, nil
	}

	var blocks []core.Block
	for _, paragraph := range strings.Split(cleaned, "\n\n") {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}
		kind := "paragraph"
		if looksLikeHeader(paragraph) {
			kind = "section_header"
		}
		blocks = append(blocks, core.Block{
			Text: paragraph,
			Kind: kind,
			Page: 1,
		})
	}
	return blocks, nil
}

// looksLikeHeader recognizes short title-case lines such as
// "BİRİNCİ BÖLÜM". Article sentences keep their paragraph kind; the
// chunkers split on those themselves.
func looksLikeHeader(paragraph string) bool {
	if len([]rune(paragraph)) > 100 || strings.Contains(paragraph, "\n") {
		return false
	}
	return headingRe.MatchString(paragraph)
}
