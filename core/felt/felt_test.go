package felt

import (
	"encoding/json"
	"testing"

	"github.com/fxamacker/cbor/v2"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalJson(t *testing.T) {
	var with Felt
	assert.NoError(t, with.UnmarshalJSON([]byte("0x4437ab")))

	var without Felt
	assert.NoError(t, without.UnmarshalJSON([]byte("4437ab")))
	assert.Equal(t, true, without.Equal(&with))

	var quoted Felt
	assert.NoError(t, quoted.UnmarshalJSON([]byte(`"0x4437ab"`)))
	assert.Equal(t, true, quoted.Equal(&with))
}

func TestMarshalJson(t *testing.T) {
	f := new(Felt).SetUint64(255)
	data, err := json.Marshal(f)
	require.NoError(t, err)

	var parsed Felt
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, parsed.Equal(f))
}

func TestFeltCbor(t *testing.T) {
	var val Felt
	_, err := val.SetRandom()
	assert.NoError(t, err)

	bytes, err := cbor.Marshal(val)
	assert.NoError(t, err)

	var unmarshaledFelt Felt
	assert.NoError(t, cbor.Unmarshal(bytes, &unmarshaledFelt))
	assert.Equal(t, val, unmarshaledFelt)
}

func TestUint64(t *testing.T) {
	small := new(Felt).SetUint64(42)
	assert.True(t, small.IsUint64())
	assert.Equal(t, uint64(42), small.Uint64())

	big, err := new(Felt).SetString("0x10000000000000000")
	require.NoError(t, err)
	assert.False(t, big.IsUint64())
}

func TestArithmetic(t *testing.T) {
	one := new(Felt).SetUint64(1)
	two := new(Felt).SetUint64(2)

	sum := new(Felt).Add(one, one)
	assert.True(t, sum.Equal(two))

	diff := new(Felt).Sub(two, one)
	assert.True(t, diff.Equal(one))

	// 0 - 1 wraps to the largest field element.
	max := new(Felt).Sub(&Zero, one)
	assert.False(t, max.IsZero())
	assert.True(t, new(Felt).Add(max, one).IsZero())
}

func TestClone(t *testing.T) {
	original := new(Felt).SetUint64(7)
	clone := original.Clone()
	clone.Add(clone, clone)
	assert.True(t, original.Equal(new(Felt).SetUint64(7)))
}
