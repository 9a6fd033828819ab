package chunk

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/poiesic/regulo/core"
)

// defaultHeading labels text that precedes the first recognized heading.
const defaultHeading = "Giriş / Genel"

var (
	articleHeadingRe = regexp.MustCompile(`(?i)^madde\s+\d+`)
	numberedRe       = regexp.MustCompile(`^\d+\.`)
)

// headingKinds are block types that always open a new section.
var headingKinds = map[string]struct{}{
	"section_header": {},
	"title":          {},
	"page_header":    {},
}

// StructuralChunker groups typed blocks under their active heading and
// flushes each group as one or more chunks. Oversized groups are split
// word by word; every output chunk is prefixed with the heading text.
type StructuralChunker struct {
	maxSize int
	overlap int
}

// NewStructuralChunker creates a structural chunker. Non-positive size
// or overlap fall back to the defaults.
func NewStructuralChunker(maxSize, overlap int) *StructuralChunker {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	if overlap < 0 {
		overlap = DefaultOverlap
	}
	return &StructuralChunker{maxSize: maxSize, overlap: overlap}
}

type sectionMeta struct {
	pageStart int
	pageEnd   int
	kinds     map[string]struct{}
}

func newSectionMeta(page int) sectionMeta {
	return sectionMeta{pageStart: page, pageEnd: page, kinds: make(map[string]struct{})}
}

// Chunk consumes the ordered block sequence and emits heading-grouped
// pieces. A block triggers a new section when its type is a heading
// kind, or when it is generic text that looks like a heading.
func (c *StructuralChunker) Chunk(blocks []core.Block) []Piece {
	if len(blocks) == 0 {
		return nil
	}

	var pieces []Piece
	heading := defaultHeading
	var buffer []string
	meta := newSectionMeta(blocks[0].Page)

	for _, block := range blocks {
		text := strings.TrimSpace(block.Text)
		if text == "" {
			continue
		}

		if isHeadingBlock(block.Kind, text) {
			if len(buffer) > 0 {
				pieces = append(pieces, c.flush(heading, buffer, meta)...)
				buffer = nil
			}
			meta = newSectionMeta(block.Page)
			meta.kinds["heading"] = struct{}{}
			heading = text
			continue
		}

		buffer = append(buffer, text)
		if block.Page > meta.pageEnd {
			meta.pageEnd = block.Page
		}
		meta.kinds[block.Kind] = struct{}{}
	}

	if len(buffer) > 0 {
		pieces = append(pieces, c.flush(heading, buffer, meta)...)
	}
	return pieces
}

// flush turns the buffered section into pieces, splitting word by word
// when the joined text exceeds the size limit.
func (c *StructuralChunker) flush(heading string, buffer []string, meta sectionMeta) []Piece {
	full := strings.Join(buffer, "\n\n")
	kinds := sortedKinds(meta.kinds)

	if len([]rune(full)) <= c.maxSize {
		return []Piece{{
			Text:       heading + "\n\n" + full,
			Heading:    heading,
			PageStart:  meta.pageStart,
			PageEnd:    meta.pageEnd,
			BlockKinds: kinds,
		}}
	}

	var pieces []Piece
	words := strings.Fields(full)
	var current []string
	length := 0
	for _, word := range words {
		wlen := len([]rune(word))
		if length+wlen+1 > c.maxSize && len(current) > 0 {
			pieces = append(pieces, Piece{
				Text:       heading + "\n\n" + strings.Join(current, " "),
				Heading:    heading,
				PageStart:  meta.pageStart,
				PageEnd:    meta.pageEnd,
				BlockKinds: kinds,
			})
			current = current[:0]
			length = 0
		}
		current = append(current, word)
		length += wlen + 1
	}
	if len(current) > 0 {
		pieces = append(pieces, Piece{
			Text:       heading + "\n\n" + strings.Join(current, " "),
			Heading:    heading,
			PageStart:  meta.pageStart,
			PageEnd:    meta.pageEnd,
			BlockKinds: kinds,
		})
	}
	return pieces
}

func isHeadingBlock(kind, text string) bool {
	if _, ok := headingKinds[kind]; ok {
		return true
	}
	return kind == "text" && looksLikeHeading(text)
}

// looksLikeHeading flags short text that starts with an article or
// numbered marker, or is fully upper-case and longer than a few runes.
func looksLikeHeading(text string) bool {
	runes := []rune(text)
	if len(runes) > 100 {
		return false
	}
	if articleHeadingRe.MatchString(text) {
		return true
	}
	if numberedRe.MatchString(text) {
		return true
	}
	return len(runes) > 4 && isAllUpper(text)
}

func isAllUpper(text string) bool {
	hasLetter := false
	for _, r := range text {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

func sortedKinds(kinds map[string]struct{}) []string {
	list := kindList(kinds)
	sort.Strings(list)
	return list
}
