package sn2core

import (
	"encoding/json"
	"fmt"

	"github.com/NethermindEth/starkstate/core"
	"github.com/NethermindEth/starkstate/starknet"
	"github.com/NethermindEth/starkstate/utils"
)

// AdaptDeclaredClass converts a wire class definition into the persisted
// representation. The payload is routed on the presence of sierra_program;
// the ABI is extracted and paired, and the length hints are computed.
func AdaptDeclaredClass(definition json.RawMessage, declaredAt uint64) (*core.DeclaredClass, error) {
	var wireClass starknet.ClassDefinition
	if err := json.Unmarshal(definition, &wireClass); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrMalformedClassDefinition, err)
	}

	switch {
	case wireClass.Sierra != nil:
		if wireClass.Sierra.Abi == "" {
			return nil, core.ErrMissingAbi
		}
		return core.NewDeclaredClass(
			AdaptSierraClass(wireClass.Sierra),
			&core.SierraAbi{Definition: wireClass.Sierra.Abi},
			declaredAt,
		)
	case wireClass.DeprecatedCairo != nil:
		if wireClass.DeprecatedCairo.Abi == nil {
			return nil, core.ErrMissingAbi
		}
		class, err := AdaptDeprecatedCairoClass(wireClass.DeprecatedCairo)
		if err != nil {
			return nil, err
		}
		return core.NewDeclaredClass(
			class,
			&core.CairoAbi{Definition: wireClass.DeprecatedCairo.Abi},
			declaredAt,
		)
	default:
		return nil, core.ErrMalformedClassDefinition
	}
}

func AdaptSierraClass(class *starknet.SierraClass) *core.SierraClass {
	return &core.SierraClass{
		SemanticVersion: class.Version,
		Program:         class.Program,
		EntryPoints: core.SierraEntryPoints{
			Constructor: utils.Map(class.EntryPoints.Constructor, AdaptSierraEntryPoint),
			External:    utils.Map(class.EntryPoints.External, AdaptSierraEntryPoint),
			L1Handler:   utils.Map(class.EntryPoints.L1Handler, AdaptSierraEntryPoint),
		},
	}
}

func AdaptSierraEntryPoint(ep starknet.SierraEntryPoint) core.SierraEntryPoint {
	return core.SierraEntryPoint{
		Index:    ep.Index,
		Selector: ep.Selector,
	}
}

func AdaptDeprecatedCairoClass(class *starknet.DeprecatedCairoClass) (*core.DeprecatedCairoClass, error) {
	compressedProgram, err := utils.Gzip64Encode(class.Program)
	if err != nil {
		return nil, err
	}

	return &core.DeprecatedCairoClass{
		Program:      compressedProgram,
		Constructors: utils.Map(class.EntryPoints.Constructor, AdaptDeprecatedEntryPoint),
		Externals:    utils.Map(class.EntryPoints.External, AdaptDeprecatedEntryPoint),
		L1Handlers:   utils.Map(class.EntryPoints.L1Handler, AdaptDeprecatedEntryPoint),
	}, nil
}

func AdaptDeprecatedEntryPoint(ep starknet.EntryPoint) core.DeprecatedEntryPoint {
	return core.DeprecatedEntryPoint{
		Selector: ep.Selector,
		Offset:   ep.Offset,
	}
}

// AdaptAbiEntries normalizes a deprecated wire ABI. Constructor and
// l1_handler entries fold into functions with synthesized names and no
// outputs; the fold is not reversible.
func AdaptAbiEntries(entries []starknet.AbiEntry) ([]core.AbiEntry, error) {
	adapted := make([]core.AbiEntry, len(entries))
	for index := range entries {
		var err error
		adapted[index], err = AdaptAbiEntry(&entries[index])
		if err != nil {
			return nil, err
		}
	}
	return adapted, nil
}

func AdaptAbiEntry(entry *starknet.AbiEntry) (core.AbiEntry, error) {
	switch entry.Type {
	case starknet.AbiFunction:
		return &core.FunctionAbiEntry{
			Name:            entry.Name,
			Inputs:          utils.Map(entry.Inputs, adaptTypedParameter),
			Outputs:         utils.Map(entry.Outputs, adaptTypedParameter),
			StateMutability: entry.StateMutability,
		}, nil
	case starknet.AbiConstructor:
		return &core.FunctionAbiEntry{
			Name:   "constructor",
			Inputs: utils.Map(entry.Inputs, adaptTypedParameter),
		}, nil
	case starknet.AbiL1Handler:
		return &core.FunctionAbiEntry{
			Name:   "l1_handler",
			Inputs: utils.Map(entry.Inputs, adaptTypedParameter),
		}, nil
	case starknet.AbiEvent:
		return &core.EventAbiEntry{
			Name: entry.Name,
			Keys: utils.Map(entry.Keys, adaptTypedParameter),
			Data: utils.Map(entry.Data, adaptTypedParameter),
		}, nil
	case starknet.AbiStruct:
		return &core.StructAbiEntry{
			Name: entry.Name,
			Size: entry.Size,
			Members: utils.Map(entry.Members, func(member starknet.AbiStructMember) core.AbiStructMember {
				return core.AbiStructMember{
					Name:   member.Name,
					Type:   member.Type,
					Offset: member.Offset,
				}
			}),
		}, nil
	default:
		return nil, fmt.Errorf("unknown ABI entry type %q", entry.Type)
	}
}

func adaptTypedParameter(param starknet.AbiTypedParameter) core.AbiTypedParameter {
	return core.AbiTypedParameter{
		Name: param.Name,
		Type: param.Type,
	}
}
