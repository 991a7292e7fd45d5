package core

import (
	"github.com/NethermindEth/starkstate/core/felt"
)

// StateDiff is the materialized set of state changes produced by one
// execution, in the shape commitment computation consumes.
type StateDiff struct {
	// address -> storage key -> value
	StorageDiffs map[felt.Felt]map[felt.Felt]*felt.Felt
	// address -> nonce
	Nonces map[felt.Felt]*felt.Felt
	// address -> class hash, covering both deployments and replacements
	ClassHashes map[felt.Felt]*felt.Felt
	// class hash -> compiled class hash
	CompiledClassHashes map[felt.Felt]*felt.Felt
}

func EmptyStateDiff() StateDiff {
	return StateDiff{
		StorageDiffs:        make(map[felt.Felt]map[felt.Felt]*felt.Felt),
		Nonces:              make(map[felt.Felt]*felt.Felt),
		ClassHashes:         make(map[felt.Felt]*felt.Felt),
		CompiledClassHashes: make(map[felt.Felt]*felt.Felt),
	}
}

func (d *StateDiff) Length() uint64 {
	var length int
	for _, storageDiff := range d.StorageDiffs {
		length += len(storageDiff)
	}
	length += len(d.Nonces) + len(d.ClassHashes) + len(d.CompiledClassHashes)
	return uint64(length)
}
