package core2sn

import (
	"encoding/json"

	"github.com/NethermindEth/starkstate/core"
	"github.com/NethermindEth/starkstate/starknet"
	"github.com/NethermindEth/starkstate/utils"
)

// AdaptDeclaredClass converts a persisted class back to its wire form.
// The class and ABI variants must agree; a mixed pair is rejected, never
// coerced.
func AdaptDeclaredClass(declared *core.DeclaredClass) (*starknet.ClassDefinition, error) {
	switch class := declared.Class.(type) {
	case *core.SierraClass:
		abi, ok := declared.Abi.(*core.SierraAbi)
		if !ok {
			return nil, core.ErrClassAbiMismatch
		}
		sierra, err := AdaptSierraClass(class, abi)
		if err != nil {
			return nil, err
		}
		return &starknet.ClassDefinition{Sierra: sierra}, nil
	case *core.DeprecatedCairoClass:
		abi, ok := declared.Abi.(*core.CairoAbi)
		if !ok {
			return nil, core.ErrClassAbiMismatch
		}
		deprecated, err := AdaptDeprecatedCairoClass(class, abi)
		if err != nil {
			return nil, err
		}
		return &starknet.ClassDefinition{DeprecatedCairo: deprecated}, nil
	default:
		return nil, core.ErrMalformedClassDefinition
	}
}

func AdaptSierraClass(class *core.SierraClass, abi *core.SierraAbi) (*starknet.SierraClass, error) {
	if class.EntryPoints.External == nil {
		return nil, core.ErrMissingExternalEntryPoints
	}

	return &starknet.SierraClass{
		Abi:     abi.Definition,
		Version: class.SemanticVersion,
		Program: class.Program,
		EntryPoints: starknet.SierraEntryPoints{
			Constructor: reindexSierraBucket(class.EntryPoints.Constructor),
			External:    reindexSierraBucket(class.EntryPoints.External),
			L1Handler:   reindexSierraBucket(class.EntryPoints.L1Handler),
		},
	}, nil
}

// reindexSierraBucket rebuilds a wire entry-point bucket. Function indices
// are reassigned from each entry's position in the bucket on every encode;
// input indices are never carried over, so the assignment is deterministic
// regardless of how the class was built.
func reindexSierraBucket(bucket []core.SierraEntryPoint) []starknet.SierraEntryPoint {
	if bucket == nil {
		return []starknet.SierraEntryPoint{}
	}
	adapted := make([]starknet.SierraEntryPoint, len(bucket))
	for index := range bucket {
		adapted[index] = starknet.SierraEntryPoint{
			Index:    uint64(index),
			Selector: bucket[index].Selector,
		}
	}
	return adapted
}

func AdaptDeprecatedCairoClass(
	class *core.DeprecatedCairoClass,
	abi *core.CairoAbi,
) (*starknet.DeprecatedCairoClass, error) {
	if class.Externals == nil {
		return nil, core.ErrMissingExternalEntryPoints
	}

	decompressedProgram, err := utils.Gzip64Decode(class.Program)
	if err != nil {
		return nil, err
	}

	return &starknet.DeprecatedCairoClass{
		Program: decompressedProgram,
		Abi:     json.RawMessage(abi.Definition),
		EntryPoints: starknet.EntryPoints{
			Constructor: emptyIfNil(utils.Map(class.Constructors, AdaptDeprecatedEntryPoint)),
			External:    utils.Map(class.Externals, AdaptDeprecatedEntryPoint),
			L1Handler:   emptyIfNil(utils.Map(class.L1Handlers, AdaptDeprecatedEntryPoint)),
		},
	}, nil
}

func AdaptDeprecatedEntryPoint(ep core.DeprecatedEntryPoint) starknet.EntryPoint {
	return starknet.EntryPoint{
		Selector: ep.Selector,
		Offset:   ep.Offset,
	}
}

// CONSTRUCTOR and L1_HANDLER buckets default to empty lists when absent.
func emptyIfNil[T any](slice []T) []T {
	if slice == nil {
		return []T{}
	}
	return slice
}

// AdaptAbiEntries is the wire direction of the ABI normalization. Folded
// constructor and l1_handler entries come back as plain functions; callers
// that care about the original kind must inspect the name.
func AdaptAbiEntries(entries []core.AbiEntry) ([]starknet.AbiEntry, error) {
	adapted := make([]starknet.AbiEntry, len(entries))
	for index := range entries {
		var err error
		adapted[index], err = AdaptAbiEntry(entries[index])
		if err != nil {
			return nil, err
		}
	}
	return adapted, nil
}

func AdaptAbiEntry(entry core.AbiEntry) (starknet.AbiEntry, error) {
	switch e := entry.(type) {
	case *core.FunctionAbiEntry:
		return starknet.AbiEntry{
			Type:            starknet.AbiFunction,
			Name:            e.Name,
			Inputs:          utils.Map(e.Inputs, adaptTypedParameter),
			Outputs:         utils.Map(e.Outputs, adaptTypedParameter),
			StateMutability: e.StateMutability,
		}, nil
	case *core.EventAbiEntry:
		return starknet.AbiEntry{
			Type: starknet.AbiEvent,
			Name: e.Name,
			Keys: utils.Map(e.Keys, adaptTypedParameter),
			Data: utils.Map(e.Data, adaptTypedParameter),
		}, nil
	case *core.StructAbiEntry:
		return starknet.AbiEntry{
			Type: starknet.AbiStruct,
			Name: e.Name,
			Size: e.Size,
			Members: utils.Map(e.Members, func(member core.AbiStructMember) starknet.AbiStructMember {
				return starknet.AbiStructMember{
					Name:   member.Name,
					Type:   member.Type,
					Offset: member.Offset,
				}
			}),
		}, nil
	default:
		return starknet.AbiEntry{}, core.ErrMalformedClassDefinition
	}
}

func adaptTypedParameter(param core.AbiTypedParameter) starknet.AbiTypedParameter {
	return starknet.AbiTypedParameter{
		Name: param.Name,
		Type: param.Type,
	}
}
