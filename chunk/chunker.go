// Package chunk splits regulatory document text into bounded retrieval
// units. Two strategies share one output contract: article splitting for
// flat text and heading-grouped chunking for typed block sequences.
package chunk

import (
	"github.com/poiesic/regulo/core"
)

const (
	// DefaultMaxSize is the chunk size ceiling in characters. Articles
	// longer than this are split by the semantic sliding window.
	DefaultMaxSize = 1000
	// DefaultOverlap is the character overlap carried between adjacent
	// windows of an oversized segment.
	DefaultOverlap = 200
)

// Piece is the shared output of both chunking strategies: chunk text
// plus the metadata recorded for it.
type Piece struct {
	Text       string
	Heading    string
	PageStart  int
	PageEnd    int
	BlockKinds []string
}

// Chunker turns an ordered block sequence into pieces. Chunking is
// total over any input; empty input yields no pieces and no strategy
// returns an error.
type Chunker interface {
	Chunk(blocks []core.Block) []Piece
}

// Strategy selects a chunking implementation.
type Strategy string

const (
	// StrategyArticle splits flattened text at legal-structure markers.
	StrategyArticle Strategy = "article"
	// StrategyStructural groups typed blocks under their headings.
	StrategyStructural Strategy = "structural"
)

// New returns the chunker for the given strategy. Unknown strategies
// fall back to the structural chunker.
func New(strategy Strategy, maxSize, overlap int) Chunker {
	switch strategy {
	case StrategyArticle:
		return NewArticleChunker(maxSize, overlap)
	default:
		return NewStructuralChunker(maxSize, overlap)
	}
}

func pageRange(blocks []core.Block) (int, int) {
	if len(blocks) == 0 {
		return 0, 0
	}
	start, end := blocks[0].Page, blocks[0].Page
	for _, b := range blocks[1:] {
		if b.Page < start {
			start = b.Page
		}
		if b.Page > end {
			end = b.Page
		}
	}
	return start, end
}
