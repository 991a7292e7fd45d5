package core

import (
	"github.com/NethermindEth/starkstate/core/felt"
)

// ClassDefinition unambiguously defines a contract's semantics. It is either
// a *DeprecatedCairoClass or a *SierraClass; the ABI travels separately, see
// Abi.
type ClassDefinition interface {
	Version() uint64
}

var (
	_ ClassDefinition = (*DeprecatedCairoClass)(nil)
	_ ClassDefinition = (*SierraClass)(nil)
)

type DeprecatedEntryPoint struct {
	// starknet_keccak hash of the function signature
	Selector *felt.Felt
	// Offset of the instruction in the class's bytecode
	Offset *felt.Felt
}

// DeprecatedCairoClass is the original bytecode-interpreted contract format.
type DeprecatedCairoClass struct {
	Constructors []DeprecatedEntryPoint
	Externals    []DeprecatedEntryPoint
	L1Handlers   []DeprecatedEntryPoint
	// Compiled program, gzip-compressed and base64 encoded
	Program string
}

func (c *DeprecatedCairoClass) Version() uint64 {
	return 0
}

type SierraEntryPoint struct {
	// Position of the function in the Sierra program
	Index    uint64
	Selector *felt.Felt
}

type SierraEntryPoints struct {
	Constructor []SierraEntryPoint
	External    []SierraEntryPoint
	L1Handler   []SierraEntryPoint
}

// SierraClass is the compiled-IR contract format produced by the Cairo 1
// compiler.
type SierraClass struct {
	SemanticVersion string
	Program         []*felt.Felt
	EntryPoints     SierraEntryPoints
}

func (c *SierraClass) Version() uint64 {
	return 1
}
