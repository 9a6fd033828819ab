package core

import (
	"encoding/binary"
)

// ID is a unique identifier for stored chunks.
// It is generated from chunk content and source, so re-ingesting an
// unchanged document produces the same IDs.
type ID uint64

// Intent is the classification assigned to a query before retrieval.
type Intent string

const (
	// IntentGreeting covers greetings and empty queries.
	IntentGreeting Intent = "GREETING"
	// IntentNonAcademic covers queries unrelated to university or administrative topics.
	IntentNonAcademic Intent = "NON_ACADEMIC"
	// IntentNeedsClarification covers academic queries too vague to retrieve for.
	IntentNeedsClarification Intent = "ACADEMIC_NEEDS_CLARIFICATION"
	// IntentAcademicReady covers specific academic queries that proceed to retrieval.
	IntentAcademicReady Intent = "ACADEMIC_READY"
	// IntentVerifiedFAQ marks answers served from the curated FAQ list.
	IntentVerifiedFAQ Intent = "VERIFIED_FAQ"
	// IntentError marks answers produced on a generation failure.
	IntentError Intent = "ERROR"
)

// ParseIntent maps a classifier label to an Intent.
// Returns false for labels outside the classification set.
func ParseIntent(s string) (Intent, bool) {
	switch Intent(s) {
	case IntentGreeting, IntentNonAcademic, IntentNeedsClarification, IntentAcademicReady:
		return Intent(s), true
	}
	return "", false
}

// Block is a typed unit of text produced by the document conversion
// service, with its page of origin. The core never reads documents
// directly; it only consumes blocks.
type Block struct {
	Text string
	Kind string // e.g. "section_header", "title", "text", "table"
	Page int
}

// Chunk is a bounded unit of normalized document text prepared for
// retrieval. Chunks are transient until stored in the vector index.
type Chunk struct {
	ID        ID
	Text      string
	Source    string // originating document filename
	Heading   string // active section heading, if any
	PageStart int
	PageEnd   int
	Entities  EntitySet
}

// ScoredChunk is a chunk plus the scores assigned during reranking.
// Produced per query, never persisted.
type ScoredChunk struct {
	Text        string  `json:"text"`
	Source      string  `json:"source"`
	Score       float64 `json:"score"`
	VectorScore float64 `json:"vector_score"`
	EntityScore float64 `json:"entity_score"`
	Authority   float64 `json:"authority"`
}

// Answer is the structured result of one query cycle. Every path
// through the engine terminates in a well-formed Answer.
type Answer struct {
	Answer  string        `json:"answer"`
	Sources []string      `json:"sources"`
	Chunks  []ScoredChunk `json:"chunks"`
	Intent  Intent        `json:"intent"`
}

// IDFromContent generates a deterministic ID from text content using
// BLAKE2b hashing. Identical content produces identical IDs.
func IDFromContent(text string) ID {
	return ID(binary.LittleEndian.Uint64(HashContent(text, 8)))
}
