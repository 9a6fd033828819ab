package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/poiesic/regulo/core"
	"github.com/poiesic/regulo/index"
)

// Key prefixes for different data types
const (
	recordPrefix = "vecrec"
	sourcePrefix = "vecsrc"
)

// makeRecordKey generates a key for a record by ID.
func makeRecordKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", recordPrefix, id))
}

// makeSourceKey generates a composite key for the source index.
// Format: prefix:source:id
func makeSourceKey(source string, id core.ID) []byte {
	prefix := makePartialSourceKey(source)
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialSourceKey generates the prefix covering all records of a
// source. The trailing separator keeps one source name from matching
// another that merely extends it.
func makePartialSourceKey(source string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", sourcePrefix, source))
}

// parseSourceKey extracts the record ID from a source index key.
func parseSourceKey(key []byte, source string) (core.ID, error) {
	prefix := makePartialSourceKey(source)
	if len(key) != len(prefix)+8 {
		return 0, fmt.Errorf("%w: malformed source key %q", index.ErrInvalidRecord, key)
	}
	return core.ID(binary.BigEndian.Uint64(key[len(prefix):])), nil
}
