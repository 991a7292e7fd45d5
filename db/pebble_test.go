package db_test

import (
	"testing"

	"github.com/NethermindEth/starkstate/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutGetDelete(t *testing.T) {
	testDB := db.NewMemTest(t)

	key := []byte("key")
	value := []byte("value")

	err := testDB.Get(key, func([]byte) error { return nil })
	assert.ErrorIs(t, err, db.ErrKeyNotFound)

	require.NoError(t, testDB.Put(key, value))

	has, err := testDB.Has(key)
	require.NoError(t, err)
	assert.True(t, has)

	var got []byte
	require.NoError(t, testDB.Get(key, func(v []byte) error {
		got = append([]byte(nil), v...)
		return nil
	}))
	assert.Equal(t, value, got)

	require.NoError(t, testDB.Delete(key))
	has, err = testDB.Has(key)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestIteratorSeekLT(t *testing.T) {
	testDB := db.NewMemTest(t)

	require.NoError(t, testDB.Put([]byte{1, 0}, []byte("a")))
	require.NoError(t, testDB.Put([]byte{1, 5}, []byte("b")))
	require.NoError(t, testDB.Put([]byte{2, 0}, []byte("c")))

	it, err := testDB.NewIterator(nil)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, it.Close()) })

	// greatest key strictly below the target
	require.True(t, it.SeekLT([]byte{1, 6}))
	assert.Equal(t, []byte{1, 5}, it.Key())
	value, err := it.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("b"), value)

	require.True(t, it.SeekLT([]byte{1, 5}))
	assert.Equal(t, []byte{1, 0}, it.Key())

	assert.False(t, it.SeekLT([]byte{1, 0}))
}

func TestBucketKey(t *testing.T) {
	assert.Equal(t, []byte{byte(db.ContractNonce)}, db.ContractNonce.Key())
	assert.Equal(t,
		[]byte{byte(db.ContractStorage), 0xde, 0xad, 0xbe, 0xef},
		db.ContractStorage.Key([]byte{0xde, 0xad}, []byte{0xbe, 0xef}))
}
