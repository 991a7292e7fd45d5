package db

import (
	"errors"
	"testing"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
)

var _ KeyValueStore = (*PebbleDB)(nil)

type PebbleDB struct {
	pebble *pebble.DB
}

// New opens a new database at the given path
func New(path string, logger pebble.Logger) (*PebbleDB, error) {
	return newPebble(path, &pebble.Options{Logger: logger})
}

// NewMem opens a new in-memory database
func NewMem() (*PebbleDB, error) {
	return newPebble("", &pebble.Options{
		FS: vfs.NewMem(),
	})
}

// NewMemTest opens a new in-memory database, fails the test on error
func NewMemTest(t *testing.T) *PebbleDB {
	memDB, err := NewMem()
	if err != nil {
		t.Fatalf("create in-memory db: %v", err)
	}
	t.Cleanup(func() {
		if err := memDB.Close(); err != nil {
			t.Errorf("close in-memory db: %v", err)
		}
	})
	return memDB
}

func newPebble(path string, options *pebble.Options) (*PebbleDB, error) {
	pDB, err := pebble.Open(path, options)
	if err != nil {
		return nil, err
	}
	return &PebbleDB{pebble: pDB}, nil
}

func (d *PebbleDB) Has(key []byte) (bool, error) {
	err := d.Get(key, func([]byte) error { return nil })
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (d *PebbleDB) Get(key []byte, cb func(value []byte) error) error {
	value, closer, err := d.pebble.Get(key)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return ErrKeyNotFound
		}
		return err
	}
	cbErr := cb(value)
	if err = closer.Close(); err != nil {
		return err
	}
	return cbErr
}

func (d *PebbleDB) Put(key, value []byte) error {
	return d.pebble.Set(key, value, pebble.Sync)
}

func (d *PebbleDB) Delete(key []byte) error {
	return d.pebble.Delete(key, pebble.Sync)
}

func (d *PebbleDB) NewIterator(lowerBound []byte) (Iterator, error) {
	it, err := d.pebble.NewIter(&pebble.IterOptions{LowerBound: lowerBound})
	if err != nil {
		return nil, err
	}
	return &pebbleIterator{iter: it}, nil
}

// Close : see io.Closer.Close
func (d *PebbleDB) Close() error {
	return d.pebble.Close()
}

type pebbleIterator struct {
	iter *pebble.Iterator
}

func (i *pebbleIterator) Valid() bool {
	return i.iter.Valid()
}

func (i *pebbleIterator) Key() []byte {
	return i.iter.Key()
}

func (i *pebbleIterator) Value() ([]byte, error) {
	return i.iter.ValueAndErr()
}

func (i *pebbleIterator) Next() bool {
	return i.iter.Next()
}

func (i *pebbleIterator) Seek(key []byte) bool {
	return i.iter.SeekGE(key)
}

func (i *pebbleIterator) SeekLT(key []byte) bool {
	return i.iter.SeekLT(key)
}

func (i *pebbleIterator) Close() error {
	return i.iter.Close()
}
