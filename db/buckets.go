package db

import "bytes"

// Pebble does not support buckets the way Bolt or MDBX do, so each group of
// keys gets a single-byte prefix instead.
type Bucket byte

const (
	ContractStorage   Bucket = iota // address ∥ storage key ∥ height -> storage value
	ContractNonce                   // address ∥ height -> nonce
	ContractClassHash               // address ∥ height -> class hash
	Class                           // class hash -> declared class record
	CompiledClassHash               // class hash -> compiled class hash
	BlockHash                       // height -> block hash
)

// Key flattens the bucket prefix and a series of byte slices into a single key
func (b Bucket) Key(key ...[]byte) []byte {
	return append([]byte{byte(b)}, bytes.Join(key, nil)...)
}
