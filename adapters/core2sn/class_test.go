package core2sn_test

import (
	"testing"

	"github.com/NethermindEth/starkstate/adapters/core2sn"
	"github.com/NethermindEth/starkstate/adapters/sn2core"
	"github.com/NethermindEth/starkstate/core"
	"github.com/NethermindEth/starkstate/core/felt"
	"github.com/NethermindEth/starkstate/starknet"
	"github.com/NethermindEth/starkstate/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selector(v uint64) *felt.Felt {
	return new(felt.Felt).SetUint64(v)
}

func TestAdaptDeclaredClassPairing(t *testing.T) {
	t.Run("sierra class with cairo abi", func(t *testing.T) {
		_, err := core2sn.AdaptDeclaredClass(&core.DeclaredClass{
			Class: &core.SierraClass{},
			Abi:   &core.CairoAbi{},
		})
		assert.ErrorIs(t, err, core.ErrClassAbiMismatch)
	})

	t.Run("deprecated class with sierra abi", func(t *testing.T) {
		_, err := core2sn.AdaptDeclaredClass(&core.DeclaredClass{
			Class: &core.DeprecatedCairoClass{},
			Abi:   &core.SierraAbi{},
		})
		assert.ErrorIs(t, err, core.ErrClassAbiMismatch)
	})

	t.Run("nil class", func(t *testing.T) {
		_, err := core2sn.AdaptDeclaredClass(&core.DeclaredClass{})
		assert.ErrorIs(t, err, core.ErrMalformedClassDefinition)
	})
}

func TestAdaptSierraClassReindexesEntryPoints(t *testing.T) {
	class := &core.SierraClass{
		SemanticVersion: "0.1.0",
		Program:         []*felt.Felt{selector(1)},
		EntryPoints: core.SierraEntryPoints{
			External: []core.SierraEntryPoint{
				{Index: 42, Selector: selector(0xaa)},
				{Index: 3, Selector: selector(0xbb)},
				{Index: 17, Selector: selector(0xcc)},
			},
		},
	}

	wire, err := core2sn.AdaptSierraClass(class, &core.SierraAbi{Definition: "[]"})
	require.NoError(t, err)

	require.Len(t, wire.EntryPoints.External, 3)
	for position, ep := range wire.EntryPoints.External {
		assert.Equal(t, uint64(position), ep.Index)
	}
	assert.True(t, wire.EntryPoints.External[1].Selector.Equal(selector(0xbb)))

	// absent buckets encode as empty lists
	assert.Empty(t, wire.EntryPoints.Constructor)
	assert.NotNil(t, wire.EntryPoints.Constructor)
	assert.NotNil(t, wire.EntryPoints.L1Handler)
}

func TestAdaptSierraClassRequiresExternals(t *testing.T) {
	_, err := core2sn.AdaptSierraClass(&core.SierraClass{}, &core.SierraAbi{})
	assert.ErrorIs(t, err, core.ErrMissingExternalEntryPoints)
}

func TestAdaptDeprecatedCairoClass(t *testing.T) {
	program := []byte(`{"builtins":[],"data":["0x1"]}`)
	compressed, err := utils.Gzip64Encode(program)
	require.NoError(t, err)

	class := &core.DeprecatedCairoClass{
		Externals: []core.DeprecatedEntryPoint{
			{Selector: selector(0xf00), Offset: selector(10)},
		},
		Program: compressed,
	}

	wire, err := core2sn.AdaptDeprecatedCairoClass(class, &core.CairoAbi{Definition: []byte("[]")})
	require.NoError(t, err)

	assert.Equal(t, program, []byte(wire.Program))
	require.Len(t, wire.EntryPoints.External, 1)
	assert.True(t, wire.EntryPoints.External[0].Offset.Equal(selector(10)))
	assert.NotNil(t, wire.EntryPoints.Constructor)
	assert.NotNil(t, wire.EntryPoints.L1Handler)
}

func TestAdaptDeprecatedCairoClassRequiresExternals(t *testing.T) {
	_, err := core2sn.AdaptDeprecatedCairoClass(&core.DeprecatedCairoClass{}, &core.CairoAbi{})
	assert.ErrorIs(t, err, core.ErrMissingExternalEntryPoints)
}

func TestAdaptAbiEntryReverse(t *testing.T) {
	// folded entries come back as plain functions
	entries := []core.AbiEntry{
		&core.FunctionAbiEntry{Name: "constructor", Inputs: []core.AbiTypedParameter{{Name: "owner", Type: "felt"}}},
		&core.FunctionAbiEntry{Name: "l1_handler"},
		&core.EventAbiEntry{Name: "Transfer"},
		&core.StructAbiEntry{Name: "Point", Size: 2},
	}

	wire, err := core2sn.AdaptAbiEntries(entries)
	require.NoError(t, err)
	require.Len(t, wire, 4)

	assert.Equal(t, starknet.AbiFunction, wire[0].Type)
	assert.Equal(t, "constructor", wire[0].Name)
	assert.Equal(t, starknet.AbiFunction, wire[1].Type)
	assert.Equal(t, starknet.AbiEvent, wire[2].Type)
	assert.Equal(t, starknet.AbiStruct, wire[3].Type)
}

func TestSierraRoundTripReassignsIndices(t *testing.T) {
	definition := []byte(`{
		"abi": "[]",
		"contract_class_version": "0.1.0",
		"sierra_program": ["0x1", "0x2"],
		"entry_points_by_type": {
			"EXTERNAL": [
				{"function_idx": 9, "selector": "0xaa"},
				{"function_idx": 4, "selector": "0xbb"}
			],
			"CONSTRUCTOR": [],
			"L1_HANDLER": []
		}
	}`)

	declared, err := sn2core.AdaptDeclaredClass(definition, 0)
	require.NoError(t, err)

	wire, err := core2sn.AdaptDeclaredClass(declared)
	require.NoError(t, err)
	require.NotNil(t, wire.Sierra)

	external := wire.Sierra.EntryPoints.External
	require.Len(t, external, 2)
	assert.Equal(t, uint64(0), external[0].Index)
	assert.Equal(t, uint64(1), external[1].Index)
	// selector order is preserved, only indices change
	assert.True(t, external[0].Selector.Equal(selector(0xaa)))
	assert.True(t, external[1].Selector.Equal(selector(0xbb)))
}

func TestDeprecatedRoundTrip(t *testing.T) {
	definition := []byte(`{
		"abi": [],
		"program": {"builtins": [], "data": []},
		"entry_points_by_type": {
			"EXTERNAL": [{"selector": "0xf00", "offset": "0xa"}],
			"CONSTRUCTOR": [],
			"L1_HANDLER": []
		}
	}`)

	declared, err := sn2core.AdaptDeclaredClass(definition, 0)
	require.NoError(t, err)

	wire, err := core2sn.AdaptDeclaredClass(declared)
	require.NoError(t, err)
	require.NotNil(t, wire.DeprecatedCairo)

	require.Len(t, wire.DeprecatedCairo.EntryPoints.External, 1)
	assert.True(t, wire.DeprecatedCairo.EntryPoints.External[0].Selector.Equal(selector(0xf00)))
	assert.JSONEq(t, `{"builtins": [], "data": []}`, string(wire.DeprecatedCairo.Program))
}
