package vm

import (
	"errors"

	"github.com/bits-and-blooms/bitset"

	"github.com/NethermindEth/starkstate/core"
	"github.com/NethermindEth/starkstate/core/felt"
	"github.com/NethermindEth/starkstate/db"
)

var (
	feltOne = new(felt.Felt).SetUint64(1)
	// maxNonce is the largest representable field element, 0 - 1 mod p.
	maxNonce = new(felt.Felt).Sub(&felt.Zero, feltOne)
	// blockHashOracleAddress is the reserved contract whose storage serves
	// historical block hashes keyed by block number.
	blockHashOracleAddress = new(felt.Felt).SetUint64(1)
)

// StateReader is the read surface the execution engine sees.
type StateReader interface {
	ContractStorage(addr, key *felt.Felt) (felt.Felt, error)
	ContractNonce(addr *felt.Felt) (felt.Felt, error)
	ContractClassHash(addr *felt.Felt) (felt.Felt, error)
	Class(classHash *felt.Felt) (*core.DeclaredClass, error)
	CompiledClassHash(classHash *felt.Felt) (felt.Felt, error)
}

// StateWriter is the write surface. Writes land in the overlay buffer and
// become visible to subsequent reads through the same overlay only.
type StateWriter interface {
	SetStorage(addr, key, value *felt.Felt) error
	IncrementNonce(addr *felt.Felt) error
	SetClassHash(addr, classHash *felt.Felt) error
	SetContractClass(classHash *felt.Felt, class core.ClassDefinition) error
	SetCompiledClassHash(classHash, compiledClassHash *felt.Felt) error
}

// ExecutionState is a write-buffered view of the state as of a fixed block.
// One is created per execution, read and written by a single goroutine, and
// dropped by its owner once the resulting diff has been taken. It is never
// persisted.
type ExecutionState struct {
	history     core.StateHistoryReader
	blockNumber uint64

	storage             map[felt.Felt]map[felt.Felt]*felt.Felt
	nonces              map[felt.Felt]*felt.Felt
	classHashes         map[felt.Felt]*felt.Felt
	compiledClassHashes map[felt.Felt]*felt.Felt
	classes             map[felt.Felt]core.ClassDefinition
	visitedPCs          map[felt.Felt]*bitset.BitSet
}

var (
	_ StateReader = (*ExecutionState)(nil)
	_ StateWriter = (*ExecutionState)(nil)
)

func NewExecutionState(history core.StateHistoryReader, blockNumber uint64) *ExecutionState {
	return &ExecutionState{
		history:             history,
		blockNumber:         blockNumber,
		storage:             make(map[felt.Felt]map[felt.Felt]*felt.Felt),
		nonces:              make(map[felt.Felt]*felt.Felt),
		classHashes:         make(map[felt.Felt]*felt.Felt),
		compiledClassHashes: make(map[felt.Felt]*felt.Felt),
		classes:             make(map[felt.Felt]core.ClassDefinition),
		visitedPCs:          make(map[felt.Felt]*bitset.BitSet),
	}
}

func (s *ExecutionState) BlockNumber() uint64 {
	return s.blockNumber
}

// ContractStorage returns the value at key for the contract at addr,
// defaulting to zero for cells never written. Address 0x1 is the block hash
// oracle: the key is reinterpreted as a block number and the corresponding
// block hash is served instead of storage.
func (s *ExecutionState) ContractStorage(addr, key *felt.Felt) (felt.Felt, error) {
	if addr.Equal(blockHashOracleAddress) {
		return s.blockHashAt(key)
	}

	if diffs, found := s.storage[*addr]; found {
		if value, found := diffs[*key]; found {
			return *value, nil
		}
	}

	value, err := s.history.ContractStorageAt(addr, key, s.blockNumber)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return felt.Zero, nil
		}
		return felt.Zero, stateReadError("contract storage", key, err)
	}
	return value, nil
}

func (s *ExecutionState) blockHashAt(key *felt.Felt) (felt.Felt, error) {
	if !key.IsUint64() {
		return felt.Zero, ErrOldBlockHashNotProvided
	}

	hash, err := s.history.BlockHash(key.Uint64())
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return felt.Zero, ErrOldBlockHashNotProvided
		}
		return felt.Zero, stateReadError("block hash", key, err)
	}
	return hash, nil
}

func (s *ExecutionState) ContractNonce(addr *felt.Felt) (felt.Felt, error) {
	if nonce, found := s.nonces[*addr]; found {
		return *nonce, nil
	}

	nonce, err := s.history.ContractNonceAt(addr, s.blockNumber)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return felt.Zero, nil
		}
		return felt.Zero, stateReadError("contract nonce", addr, err)
	}
	return nonce, nil
}

// ContractClassHash returns the class hash of the contract at addr, zero
// when no contract is deployed there.
func (s *ExecutionState) ContractClassHash(addr *felt.Felt) (felt.Felt, error) {
	if classHash, found := s.classHashes[*addr]; found {
		return *classHash, nil
	}

	classHash, err := s.history.ContractClassHashAt(addr, s.blockNumber)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return felt.Zero, nil
		}
		return felt.Zero, stateReadError("contract class hash", addr, err)
	}
	return classHash, nil
}

// Class returns the declared class for classHash. There is no zero default:
// an unknown hash is UndeclaredClassError.
func (s *ExecutionState) Class(classHash *felt.Felt) (*core.DeclaredClass, error) {
	if class, found := s.classes[*classHash]; found {
		return &core.DeclaredClass{
			DeclaredAt: s.blockNumber,
			Class:      class,
		}, nil
	}

	declared, err := s.history.DeclaredClass(classHash)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, UndeclaredClassError{ClassHash: *classHash}
		}
		return nil, stateReadError("class", classHash, err)
	}
	return declared, nil
}

func (s *ExecutionState) CompiledClassHash(classHash *felt.Felt) (felt.Felt, error) {
	if compiledHash, found := s.compiledClassHashes[*classHash]; found {
		return *compiledHash, nil
	}

	compiledHash, err := s.history.CompiledClassHash(classHash)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return felt.Zero, UndeclaredClassError{ClassHash: *classHash}
		}
		return felt.Zero, stateReadError("compiled class hash", classHash, err)
	}
	return compiledHash, nil
}

func (s *ExecutionState) SetStorage(addr, key, value *felt.Felt) error {
	if _, found := s.storage[*addr]; !found {
		s.storage[*addr] = make(map[felt.Felt]*felt.Felt)
	}
	s.storage[*addr][*key] = value.Clone()
	return nil
}

// IncrementNonce bumps the contract nonce through the overlay read path.
func (s *ExecutionState) IncrementNonce(addr *felt.Felt) error {
	nonce, err := s.ContractNonce(addr)
	if err != nil {
		return err
	}
	if nonce.Equal(maxNonce) {
		return ErrNonceOverflow
	}
	s.nonces[*addr] = nonce.Add(&nonce, feltOne)
	return nil
}

func (s *ExecutionState) SetClassHash(addr, classHash *felt.Felt) error {
	s.classHashes[*addr] = classHash.Clone()
	return nil
}

func (s *ExecutionState) SetContractClass(classHash *felt.Felt, class core.ClassDefinition) error {
	s.classes[*classHash] = class
	return nil
}

func (s *ExecutionState) SetCompiledClassHash(classHash, compiledClassHash *felt.Felt) error {
	s.compiledClassHashes[*classHash] = compiledClassHash.Clone()
	return nil
}

// AddVisitedPCs unions pcs into the visited set for classHash. Re-adding a
// PC is a no-op.
func (s *ExecutionState) AddVisitedPCs(classHash *felt.Felt, pcs []uint64) {
	visited, found := s.visitedPCs[*classHash]
	if !found {
		visited = bitset.New(0)
		s.visitedPCs[*classHash] = visited
	}
	for _, pc := range pcs {
		visited.Set(uint(pc))
	}
}

// VisitedPCs returns the per-class visited program counters accumulated so
// far. The returned map is the overlay's own; callers must not mutate it
// while the overlay is still in use.
func (s *ExecutionState) VisitedPCs() map[felt.Felt]*bitset.BitSet {
	return s.visitedPCs
}

// StateDiff snapshots the write buffer into a core.StateDiff. The diff is a
// deep copy; the overlay stays usable afterwards.
func (s *ExecutionState) StateDiff() core.StateDiff {
	diff := core.EmptyStateDiff()
	for addr, diffs := range s.storage {
		cells := make(map[felt.Felt]*felt.Felt, len(diffs))
		for key, value := range diffs {
			cells[key] = value.Clone()
		}
		diff.StorageDiffs[addr] = cells
	}
	for addr, nonce := range s.nonces {
		diff.Nonces[addr] = nonce.Clone()
	}
	for addr, classHash := range s.classHashes {
		diff.ClassHashes[addr] = classHash.Clone()
	}
	for classHash, compiledHash := range s.compiledClassHashes {
		diff.CompiledClassHashes[classHash] = compiledHash.Clone()
	}
	return diff
}
