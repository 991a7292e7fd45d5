package db

import "io"

// Represents a data store that can read from the database
type KeyValueReader interface {
	// Checks if a key exists in the data store
	Has(key []byte) (bool, error)
	// Retrieves a value for a given key if it exists
	Get(key []byte, cb func(value []byte) error) error
	// Returns an iterator positioned before the first key
	NewIterator(lowerBound []byte) (Iterator, error)
}

// Represents a data store that can write to the database
type KeyValueWriter interface {
	// Inserts a given value into the data store
	Put(key []byte, value []byte) error
	// Deletes a given key from the data store
	Delete(key []byte) error
}

// Represents a key-value data store that can handle different operations
type KeyValueStore interface {
	KeyValueReader
	KeyValueWriter
	io.Closer
}

type Iterator interface {
	// Valid reports whether the iterator is positioned at a key/value pair
	Valid() bool
	// Key returns the key at the current position. The returned slice is
	// only valid until the next call that advances the iterator.
	Key() []byte
	// Value returns the value at the current position
	Value() ([]byte, error)
	// Next moves the iterator to the next key/value pair
	Next() bool
	// Seek moves the iterator to the first key >= key
	Seek(key []byte) bool
	// SeekLT moves the iterator to the last key < key
	SeekLT(key []byte) bool
	io.Closer
}
