// Package objstore persists named objects in a local LevelDB database,
// passing values through a blockenv.Envelope on the write path and back
// through it on the read path.
//
// Values the envelope rejects (too small, or not effectively
// compressible) are stored raw. Each record carries a single leading
// tag byte so the read path knows which form it holds:
//
//	Record layout:
//	+--------------+--------------------------------------+
//	| tag (1 byte) |  raw value or blockenv container     |
//	+--------------+--------------------------------------+
package objstore

import (
	"errors"
	"fmt"

	"github.com/bsm/blockenv"
	"github.com/syndtr/goleveldb/leveldb"
)

const (
	recordRaw        = 0
	recordCompressed = 1
)

// ErrNotFound is returned by Get when an object does not exist.
var ErrNotFound = errors.New("objstore: not found")

var (
	errClosed    = errors.New("objstore: is closed")
	errBadRecord = errors.New("objstore: bad record tag")
)

// Options define store specific options.
type Options struct {
	// Codec is the compression envelope applied to stored values.
	// Default: blockenv.New(nil).
	Codec *blockenv.Envelope
}

func (o *Options) norm() *Options {
	var oo Options
	if o != nil {
		oo = *o
	}

	if oo.Codec == nil {
		oo.Codec = blockenv.New(nil)
	}

	return &oo
}

// Store is a named-object store. It is safe for concurrent use.
type Store struct {
	db    *leveldb.DB
	codec *blockenv.Envelope
}

// Open opens or creates a store at path.
func Open(path string, o *Options) (*Store, error) {
	o = o.norm()

	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, err
	}
	return &Store{db: db, codec: o.Codec}, nil
}

// Put stores value under name, replacing any previous value. The value
// is compressed when the envelope keeps the attempt and stored raw when
// the envelope rejects it.
func (s *Store) Put(name string, value []byte) error {
	if s.db == nil {
		return errClosed
	}

	container, err := s.codec.Encode(value)
	switch {
	case err == nil:
		return s.db.Put([]byte(name), record(recordCompressed, container), nil)
	case errors.Is(err, blockenv.ErrTooSmall), errors.Is(err, blockenv.ErrTooLarge), errors.Is(err, blockenv.ErrNotEffective):
		return s.db.Put([]byte(name), record(recordRaw, value), nil)
	default:
		return err
	}
}

// Get retrieves the value stored under name. It may return an
// ErrNotFound error. Corrupt records surface as unrecoverable read
// failures for that object.
func (s *Store) Get(name string) ([]byte, error) {
	if s.db == nil {
		return nil, errClosed
	}

	rec, err := s.db.Get([]byte(name), nil)
	if err == leveldb.ErrNotFound {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	if len(rec) == 0 {
		return nil, errBadRecord
	}
	switch rec[0] {
	case recordRaw:
		return rec[1:], nil
	case recordCompressed:
		return s.codec.Decode(rec[1:])
	default:
		return nil, fmt.Errorf("%w: %d", errBadRecord, rec[0])
	}
}

// Has reports whether an object exists under name.
func (s *Store) Has(name string) (bool, error) {
	if s.db == nil {
		return false, errClosed
	}
	return s.db.Has([]byte(name), nil)
}

// Delete removes the object stored under name, if any.
func (s *Store) Delete(name string) error {
	if s.db == nil {
		return errClosed
	}
	return s.db.Delete([]byte(name), nil)
}

// Close closes the store.
func (s *Store) Close() error {
	if s.db == nil {
		return errClosed
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func record(tag byte, data []byte) []byte {
	rec := make([]byte, 1+len(data))
	rec[0] = tag
	copy(rec[1:], data)
	return rec
}
