package core

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/NethermindEth/starkstate/core/felt"
	"github.com/NethermindEth/starkstate/db"
	"github.com/NethermindEth/starkstate/encoder"
	"github.com/NethermindEth/starkstate/utils"
)

// StateHistoryReader is the versioned backend consumed by the execution
// overlay: block-parameterized, read-only lookups. Absence is reported as
// db.ErrKeyNotFound; any other error is an I/O failure. Values as of block N
// must stay stable for as long as a caller references N.
//
//go:generate mockgen -destination=../mocks/mock_state_history_reader.go -package=mocks github.com/NethermindEth/starkstate/core StateHistoryReader
type StateHistoryReader interface {
	ContractStorageAt(addr, key *felt.Felt, blockNumber uint64) (felt.Felt, error)
	ContractNonceAt(addr *felt.Felt, blockNumber uint64) (felt.Felt, error)
	ContractClassHashAt(addr *felt.Felt, blockNumber uint64) (felt.Felt, error)
	CompiledClassHash(classHash *felt.Felt) (felt.Felt, error)
	DeclaredClass(classHash *felt.Felt) (*DeclaredClass, error)
	BlockHash(blockNumber uint64) (felt.Felt, error)
}

var _ StateHistoryReader = (*History)(nil)

// History is the pebble-backed implementation of StateHistoryReader.
// Contract values are stored as change records keyed by the height they took
// effect at; "value as of block N" is a reverse seek to the last change with
// height <= N.
type History struct {
	store db.KeyValueStore
	log   utils.SimpleLogger
}

func NewHistory(store db.KeyValueStore, log utils.SimpleLogger) *History {
	return &History{
		store: store,
		log:   log,
	}
}

func (h *History) ContractStorageAt(addr, key *felt.Felt, blockNumber uint64) (felt.Felt, error) {
	addrBytes := addr.Bytes()
	keyBytes := key.Bytes()
	value, err := h.valueAt(db.ContractStorage.Key(addrBytes[:], keyBytes[:]), blockNumber)
	if err != nil {
		return felt.Felt{}, err
	}
	return *new(felt.Felt).SetBytes(value), nil
}

func (h *History) ContractNonceAt(addr *felt.Felt, blockNumber uint64) (felt.Felt, error) {
	addrBytes := addr.Bytes()
	value, err := h.valueAt(db.ContractNonce.Key(addrBytes[:]), blockNumber)
	if err != nil {
		return felt.Felt{}, err
	}
	return *new(felt.Felt).SetBytes(value), nil
}

func (h *History) ContractClassHashAt(addr *felt.Felt, blockNumber uint64) (felt.Felt, error) {
	addrBytes := addr.Bytes()
	value, err := h.valueAt(db.ContractClassHash.Key(addrBytes[:]), blockNumber)
	if err != nil {
		return felt.Felt{}, err
	}
	return *new(felt.Felt).SetBytes(value), nil
}

func (h *History) CompiledClassHash(classHash *felt.Felt) (felt.Felt, error) {
	classHashBytes := classHash.Bytes()

	var compiledClassHash felt.Felt
	err := h.store.Get(db.CompiledClassHash.Key(classHashBytes[:]), func(value []byte) error {
		compiledClassHash.SetBytes(value)
		return nil
	})
	if err != nil {
		return felt.Felt{}, err
	}
	return compiledClassHash, nil
}

func (h *History) BlockHash(blockNumber uint64) (felt.Felt, error) {
	var blockHash felt.Felt
	err := h.store.Get(db.BlockHash.Key(uint64Key(blockNumber)), func(value []byte) error {
		blockHash.SetBytes(value)
		return nil
	})
	if err != nil {
		return felt.Felt{}, err
	}
	return blockHash, nil
}

// valueAt returns the value the key held as of the given height: the change
// record with the greatest height <= height. db.ErrKeyNotFound means the key
// had no value yet at that height.
func (h *History) valueAt(key []byte, height uint64) ([]byte, error) {
	it, err := h.store.NewIterator(nil)
	if err != nil {
		return nil, err
	}

	// first key strictly after (key, height) belongs to (key, height+1)
	seekKey := binary.BigEndian.AppendUint64(key, height+1)
	if it.SeekLT(seekKey) {
		seekedKey := it.Key()
		if len(seekedKey) == len(key)+8 && bytes.HasPrefix(seekedKey, key) {
			value, itErr := it.Value()
			value = slices.Clone(value)
			if err = utils.RunAndWrapOnError(it.Close, itErr); err != nil {
				return nil, err
			}
			return value, nil
		}
	}

	return nil, utils.RunAndWrapOnError(it.Close, db.ErrKeyNotFound)
}

// LogContractStorage records a storage value change effective at blockNumber.
func (h *History) LogContractStorage(addr, key, value *felt.Felt, blockNumber uint64) error {
	addrBytes := addr.Bytes()
	keyBytes := key.Bytes()
	dbKey := binary.BigEndian.AppendUint64(db.ContractStorage.Key(addrBytes[:], keyBytes[:]), blockNumber)
	return h.store.Put(dbKey, value.Marshal())
}

// LogContractNonce records a nonce change effective at blockNumber.
func (h *History) LogContractNonce(addr, nonce *felt.Felt, blockNumber uint64) error {
	addrBytes := addr.Bytes()
	dbKey := binary.BigEndian.AppendUint64(db.ContractNonce.Key(addrBytes[:]), blockNumber)
	return h.store.Put(dbKey, nonce.Marshal())
}

// LogContractClassHash records a deployment or class replacement effective
// at blockNumber.
func (h *History) LogContractClassHash(addr, classHash *felt.Felt, blockNumber uint64) error {
	addrBytes := addr.Bytes()
	dbKey := binary.BigEndian.AppendUint64(db.ContractClassHash.Key(addrBytes[:]), blockNumber)
	return h.store.Put(dbKey, classHash.Marshal())
}

func (h *History) PutCompiledClassHash(classHash, compiledClassHash *felt.Felt) error {
	classHashBytes := classHash.Bytes()
	return h.store.Put(db.CompiledClassHash.Key(classHashBytes[:]), compiledClassHash.Marshal())
}

func (h *History) PutBlockHash(blockNumber uint64, hash *felt.Felt) error {
	return h.store.Put(db.BlockHash.Key(uint64Key(blockNumber)), hash.Marshal())
}

// declaredClassRecord is the durable layout of a DeclaredClass: the class
// body compressed, the length hints and declaration height in the clear so
// queries can filter without decompressing.
type declaredClassRecord struct {
	DeclaredAt          uint64
	SierraProgramLength uint64
	AbiLength           uint64
	// raw ABI payload; a JSON string for Sierra classes, a JSON entry array
	// for deprecated ones
	Abi []byte
	// gzip of the CBOR-encoded class body
	CompressedClass []byte
}

// PutDeclaredClass persists a class under its hash. All class writes go
// through here, which is what keeps the length hints consistent with the
// body.
func (h *History) PutDeclaredClass(classHash *felt.Felt, class ClassDefinition, abi Abi, declaredAt uint64) error {
	declared, err := NewDeclaredClass(class, abi, declaredAt)
	if err != nil {
		return err
	}

	classBytes, err := encoder.Marshal(class)
	if err != nil {
		return fmt.Errorf("encode class %s: %w", classHash, err)
	}
	compressedClass, err := utils.Compress(classBytes)
	if err != nil {
		return fmt.Errorf("compress class %s: %w", classHash, err)
	}

	var rawAbi []byte
	switch a := abi.(type) {
	case *SierraAbi:
		rawAbi = []byte(a.Definition)
	case *CairoAbi:
		rawAbi = a.Definition
	}

	record, err := encoder.Marshal(&declaredClassRecord{
		DeclaredAt:          declared.DeclaredAt,
		SierraProgramLength: declared.SierraProgramLength,
		AbiLength:           declared.AbiLength,
		Abi:                 rawAbi,
		CompressedClass:     compressedClass,
	})
	if err != nil {
		return fmt.Errorf("encode class record %s: %w", classHash, err)
	}

	classHashBytes := classHash.Bytes()
	if err = h.store.Put(db.Class.Key(classHashBytes[:]), record); err != nil {
		return err
	}
	h.log.Debugw("Stored declared class", "classHash", classHash.String(),
		"sierraProgramLength", declared.SierraProgramLength, "abiLength", declared.AbiLength)
	return nil
}

// DeclaredClass materializes the stored record into the execution
// representation. The Sierra-vs-deprecated branch is selected by the
// SierraProgramLength hint, not by inspecting the body.
func (h *History) DeclaredClass(classHash *felt.Felt) (*DeclaredClass, error) {
	classHashBytes := classHash.Bytes()

	var record declaredClassRecord
	err := h.store.Get(db.Class.Key(classHashBytes[:]), func(value []byte) error {
		return encoder.Unmarshal(value, &record)
	})
	if err != nil {
		return nil, err
	}

	classBytes, err := utils.Decompress(record.CompressedClass)
	if err != nil {
		return nil, fmt.Errorf("decompress class %s: %w", classHash, err)
	}

	declared := &DeclaredClass{
		DeclaredAt:          record.DeclaredAt,
		SierraProgramLength: record.SierraProgramLength,
		AbiLength:           record.AbiLength,
	}
	if record.SierraProgramLength > 0 {
		class := new(SierraClass)
		if err = encoder.Unmarshal(classBytes, class); err != nil {
			return nil, fmt.Errorf("decode sierra class %s: %w", classHash, err)
		}
		declared.Class = class
		declared.Abi = &SierraAbi{Definition: string(record.Abi)}
	} else {
		class := new(DeprecatedCairoClass)
		if err = encoder.Unmarshal(classBytes, class); err != nil {
			return nil, fmt.Errorf("decode deprecated class %s: %w", classHash, err)
		}
		declared.Class = class
		declared.Abi = &CairoAbi{Definition: record.Abi}
	}

	return declared, nil
}

func uint64Key(n uint64) []byte {
	return binary.BigEndian.AppendUint64(nil, n)
}
