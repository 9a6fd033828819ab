package ingest

import "errors"

var (
	// ErrIndexRequired is returned when an index is not provided.
	ErrIndexRequired = errors.New("index required")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrConverterRequired is returned when a converter is not provided.
	ErrConverterRequired = errors.New("converter required")

	// ErrUnsupportedFile is returned for files no converter handles.
	ErrUnsupportedFile = errors.New("unsupported file type")
)
