// Package faq serves curated question and answer pairs.
//
// A small set of verified answers is checked before any retrieval or
// generation happens, so the most common questions always get the
// exact wording the administration approved.
package faq

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/poiesic/regulo/core"
)

// Entry is one verified answer with the question phrasings that map
// to it.
type Entry struct {
	Questions []string `json:"questions"`
	Answer    string   `json:"answer"`
	Source    string   `json:"source,omitempty"`
	ChunkText string   `json:"chunk_text,omitempty"`
}

// Store holds verified entries and matches queries against them.
type Store struct {
	entries []Entry
}

// New creates a Store from the given entries.
func New(entries []Entry) *Store {
	return &Store{entries: entries}
}

// LoadFile reads a JSON array of entries from path. A missing file
// yields an empty store rather than an error.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(nil), nil
		}
		return nil, fmt.Errorf("reading faq file: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing faq file %s: %w", path, err)
	}
	return New(entries), nil
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Find returns the verified answer matching the query, or nil. A query
// matches when its normalized form equals a question or contains one.
func (s *Store) Find(query string) *core.Answer {
	normalized := core.NormalizeQuery(query)
	if normalized == "" {
		return nil
	}

	for _, e := range s.entries {
		for _, q := range e.Questions {
			question := core.NormalizeQuery(q)
			if question == "" {
				continue
			}
			if normalized == question || strings.Contains(normalized, question) {
				return e.answer()
			}
		}
	}
	return nil
}

func (e Entry) answer() *core.Answer {
	chunkText := e.ChunkText
	if chunkText == "" {
		chunkText = e.Answer
	}

	var sources []string
	if e.Source != "" {
		sources = []string{e.Source}
	}

	return &core.Answer{
		Answer:  e.Answer,
		Sources: sources,
		Chunks: []core.ScoredChunk{{
			Text:   chunkText,
			Source: e.Source,
			Score:  1.0,
		}},
		Intent: core.IntentVerifiedFAQ,
	}
}
