package index

import (
	"context"

	"github.com/poiesic/regulo/core"
)

// Record is one embedded chunk as stored in the index.
type Record struct {
	ID        core.ID   `json:"id"`
	Text      string    `json:"text"`
	Vector    []float32 `json:"vector"`
	Source    string    `json:"source"`
	Heading   string    `json:"heading,omitempty"`
	PageStart int       `json:"page_start,omitempty"`
	PageEnd   int       `json:"page_end,omitempty"`
	// Metadata carries the chunk's serialized entity set.
	Metadata string `json:"metadata,omitempty"`
}

// Match pairs a stored record with its cosine distance to the query
// vector. Distance is in [0, 2]; lower is closer.
type Match struct {
	Record   *Record
	Distance float32
}

// Index stores embedded chunks and retrieves the nearest ones by
// cosine distance. Implementations must be thread-safe.
type Index interface {
	// Add inserts records into the index. Records with ID zero are
	// rejected with ErrInvalidRecord.
	Add(ctx context.Context, records ...*Record) error

	// Search returns up to limit records closest to the query vector,
	// ordered by distance ascending.
	Search(ctx context.Context, vector []float32, limit int) ([]*Match, error)

	// DeleteSource removes every record ingested from the given source.
	// Deleting an unknown source is not an error.
	DeleteSource(ctx context.Context, source string) error

	// HasSource reports whether any record from the source exists.
	HasSource(ctx context.Context, source string) (bool, error)

	// Count returns the number of records in the index.
	Count(ctx context.Context) (int, error)

	// Close releases the backing store.
	Close() error
}
