package chunk

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/poiesic/regulo/core"
)

// markerRe recognizes hard segment boundaries in regulatory text: an
// article marker ("Madde 12"), a numbered list item at line start, or a
// lettered list item at line start.
var markerRe = regexp.MustCompile(`(?im)(madde\s+\d+|^\d+\.|^[ \t]*[a-z]\))`)

// ArticleChunker splits flat text at legal-structure markers, keeping
// text before the first marker as a preamble segment. Segments over the
// size limit are further split by a semantic sliding window that
// prefers paragraph, sentence and word boundaries, in that order.
type ArticleChunker struct {
	maxSize int
	overlap int
}

// NewArticleChunker creates an article chunker. Non-positive size or
// overlap fall back to the defaults.
func NewArticleChunker(maxSize, overlap int) *ArticleChunker {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	if overlap < 0 {
		overlap = DefaultOverlap
	}
	return &ArticleChunker{maxSize: maxSize, overlap: overlap}
}

// Chunk flattens the blocks into one text and splits it. The produced
// pieces span the whole document's page range; block-level provenance
// is the structural chunker's concern.
func (c *ArticleChunker) Chunk(blocks []core.Block) []Piece {
	if len(blocks) == 0 {
		return nil
	}
	texts := make([]string, 0, len(blocks))
	kinds := make(map[string]struct{})
	for _, b := range blocks {
		if t := strings.TrimSpace(b.Text); t != "" {
			texts = append(texts, t)
			kinds[b.Kind] = struct{}{}
		}
	}
	start, end := pageRange(blocks)

	pieces := make([]Piece, 0)
	for _, text := range c.SplitText(strings.Join(texts, "\n\n")) {
		pieces = append(pieces, Piece{
			Text:       text,
			PageStart:  start,
			PageEnd:    end,
			BlockKinds: kindList(kinds),
		})
	}
	return pieces
}

// SplitText splits raw text into chunk strings. Markers open hard
// segment boundaries; segments at or under the size limit are kept
// intact, larger ones go through the sliding window. Empty segments
// are dropped.
func (c *ArticleChunker) SplitText(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	locs := markerRe.FindAllStringIndex(text, -1)
	var segments []string
	if len(locs) == 0 {
		segments = []string{text}
	} else {
		if locs[0][0] > 0 {
			segments = append(segments, text[:locs[0][0]]) // preamble
		}
		for i, loc := range locs {
			end := len(text)
			if i+1 < len(locs) {
				end = locs[i+1][0]
			}
			segments = append(segments, text[loc[0]:end])
		}
	}

	var chunks []string
	for _, segment := range segments {
		trimmed := strings.TrimSpace(segment)
		if trimmed == "" {
			continue
		}
		if len([]rune(trimmed)) <= c.maxSize {
			chunks = append(chunks, trimmed)
			continue
		}
		chunks = append(chunks, c.slidingWindow(trimmed)...)
	}
	return chunks
}

// slidingWindow splits an oversized span at the best available cut
// point per window. The next window starts overlap characters before
// the cut, bounded so it can never regress past cut−maxSize.
func (c *ArticleChunker) slidingWindow(text string) []string {
	runes := []rune(text)
	var chunks []string

	start := 0
	for start < len(runes) {
		end := start + c.maxSize
		if end >= len(runes) {
			if s := strings.TrimSpace(string(runes[start:])); s != "" {
				chunks = append(chunks, s)
			}
			break
		}

		cut := bestCut(runes, start, end)
		if cut <= start {
			cut = end
		}
		if s := strings.TrimSpace(string(runes[start:cut])); s != "" {
			chunks = append(chunks, s)
		}

		next := cut - c.overlap
		if next < cut-c.maxSize {
			next = cut
		}
		if next <= start { // overlap spans the whole window; do not loop
			next = cut
		}
		start = next
	}
	return chunks
}

// bestCut searches backward from the window end for a cut point, in
// strict priority order: paragraph break in the last 20%, sentence end
// in the last 30%, whitespace in the last 10%, whitespace anywhere,
// then the raw boundary. It never splits inside a word when any
// whitespace exists in the window.
func bestCut(runes []rune, start, end int) int {
	w := runes[start:end]
	length := len(w)

	// Paragraph break: first blank line in the last 20%.
	from := length * 8 / 10
	for i := from; i < length-1; i++ {
		if w[i] == '\n' && w[i+1] == '\n' {
			j := i
			for j < length && w[j] == '\n' {
				j++
			}
			return start + j
		}
	}

	// Sentence terminator followed by whitespace: last match in the final 30%.
	from = length * 7 / 10
	for i := length - 2; i >= from; i-- {
		if isTerminator(w[i]) && unicode.IsSpace(w[i+1]) {
			j := i + 1
			for j < length && unicode.IsSpace(w[j]) {
				j++
			}
			return start + j
		}
	}

	// Whitespace run in the last 10%.
	from = length * 9 / 10
	if cut := lastSpaceRunEnd(w, from); cut > 0 {
		return start + cut
	}

	// Whitespace run anywhere in the window.
	if cut := lastSpaceRunEnd(w, 0); cut > 0 {
		return start + cut
	}

	// No whitespace at all: raw boundary.
	return end
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// lastSpaceRunEnd returns the index just past the last whitespace run
// found at or after from, or 0 when the region has no whitespace.
func lastSpaceRunEnd(w []rune, from int) int {
	for i := len(w) - 1; i >= from; i-- {
		if unicode.IsSpace(w[i]) {
			j := i
			for j < len(w) && unicode.IsSpace(w[j]) {
				j++
			}
			return j
		}
	}
	return 0
}

func kindList(kinds map[string]struct{}) []string {
	list := make([]string, 0, len(kinds))
	for k := range kinds {
		list = append(list, k)
	}
	return list
}
