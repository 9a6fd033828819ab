package badger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"os"
	"slices"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/poiesic/regulo/index"
)

// Store implements index.Index on top of BadgerDB.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

var _ index.Index = (*Store)(nil)

// badgerLoggerAdapter adapts slog.Logger to badger.Logger interface.
type badgerLoggerAdapter struct {
	logger *slog.Logger
}

var _ badger.Logger = (*badgerLoggerAdapter)(nil)

func (bl *badgerLoggerAdapter) Errorf(msg string, items ...any) {
	bl.logger.Error(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Warningf(msg string, items ...any) {
	bl.logger.Warn(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Infof(msg string, items ...any) {
	bl.logger.Info(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Debugf(msg string, items ...any) {
	bl.logger.Debug(fmt.Sprintf(msg, items...))
}

// OpenIndex opens a BadgerDB-backed vector index at the specified path.
// Creates the directory if it doesn't exist.
func OpenIndex(filePath string) (index.Index, error) {
	return openStore(filePath, false)
}

func openStore(filePath string, inMemory bool) (*Store, error) {
	var opts badger.Options

	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		info, err := os.Stat(filePath)
		if err != nil {
			if os.IsNotExist(err) {
				if err := os.MkdirAll(filePath, 0755); err != nil {
					return nil, err
				}
				info, err = os.Stat(filePath)
				if err != nil {
					return nil, err
				}
			} else {
				return nil, err
			}
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", filePath)
		}
		opts = badger.DefaultOptions(filePath)
	}

	opts.Logger = &badgerLoggerAdapter{logger: slog.Default()}
	opts.Compression = options.None

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{
		db:     db,
		logger: slog.Default().With("component", "index"),
	}, nil
}

// Close closes the BadgerDB database.
func (s *Store) Close() error {
	return s.db.Close()
}

// withTx executes a function within a BadgerDB transaction.
// The transaction is discarded automatically if fn returns an error.
func (s *Store) withTx(fn func(tx *badger.Txn) error, isWrite bool) error {
	tx := s.db.NewTransaction(isWrite)
	defer tx.Discard()
	return fn(tx)
}

// Add inserts records and maintains the per-source secondary index.
func (s *Store) Add(ctx context.Context, records ...*index.Record) error {
	if s.db.IsClosed() {
		return index.ErrIndexClosed
	}
	for _, record := range records {
		if record.ID == 0 || record.Text == "" || len(record.Vector) == 0 {
			return fmt.Errorf("%w: record %d", index.ErrInvalidRecord, record.ID)
		}
	}

	return s.withTx(func(tx *badger.Txn) error {
		for _, record := range records {
			value, err := json.Marshal(record)
			if err != nil {
				return err
			}
			if err := tx.Set(makeRecordKey(record.ID), value); err != nil {
				return err
			}
			if err := tx.Set(makeSourceKey(record.Source, record.ID), nil); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// Search scans all records and returns the limit closest by cosine
// distance, ascending. Records whose vector length differs from the
// query are skipped.
func (s *Store) Search(ctx context.Context, vector []float32, limit int) ([]*index.Match, error) {
	if len(vector) == 0 {
		return nil, index.ErrInvalidVector
	}
	if s.db.IsClosed() {
		return nil, index.ErrIndexClosed
	}

	var matches []*index.Match
	err := s.withTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(recordPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var record index.Record
			err := iter.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &record)
			})
			if err != nil {
				return err
			}
			if len(record.Vector) != len(vector) {
				continue
			}
			matches = append(matches, &index.Match{
				Record:   &record,
				Distance: cosineDistance(vector, record.Vector),
			})
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(matches, func(a, b *index.Match) int {
		if a.Distance < b.Distance {
			return -1
		}
		if a.Distance > b.Distance {
			return 1
		}
		return 0
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// DeleteSource removes every record ingested from the source along
// with its secondary index entries.
func (s *Store) DeleteSource(ctx context.Context, source string) error {
	if s.db.IsClosed() {
		return index.ErrIndexClosed
	}

	return s.withTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialSourceKey(source)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		var keys [][]byte
		for iter.Rewind(); iter.Valid(); iter.Next() {
			key := iter.Item().KeyCopy(nil)
			id, err := parseSourceKey(key, source)
			if err != nil {
				return err
			}
			keys = append(keys, key, makeRecordKey(id))
		}
		iter.Close()

		for _, key := range keys {
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// HasSource reports whether any record from the source exists.
func (s *Store) HasSource(ctx context.Context, source string) (bool, error) {
	if s.db.IsClosed() {
		return false, index.ErrIndexClosed
	}

	found := false
	err := s.withTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialSourceKey(source)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		iter.Rewind()
		found = iter.Valid()
		return nil
	}, false)
	return found, err
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	if s.db.IsClosed() {
		return 0, index.ErrIndexClosed
	}

	count := 0
	err := s.withTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(recordPrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// cosineDistance returns 1 - cos(a, b), in [0, 2]. Zero-magnitude
// vectors are treated as maximally distant.
func cosineDistance(a, b []float32) float32 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 2
	}
	return float32(1 - dot/(math.Sqrt(normA)*math.Sqrt(normB)))
}
