package encoder_test

import (
	"reflect"
	"testing"

	"github.com/NethermindEth/starkstate/encoder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type animal interface {
	Sound() string
}

type cat struct {
	Name string
}

func (c *cat) Sound() string {
	return "meow"
}

func TestRegisterType(t *testing.T) {
	require.NoError(t, encoder.RegisterType(reflect.TypeOf(cat{})))
	assert.Error(t, encoder.RegisterType(reflect.TypeOf(cat{})))

	type holder struct {
		Pet animal
	}

	data, err := encoder.Marshal(&holder{Pet: &cat{Name: "mog"}})
	require.NoError(t, err)

	var decoded holder
	require.NoError(t, encoder.Unmarshal(data, &decoded))
	require.NotNil(t, decoded.Pet)
	assert.Equal(t, "meow", decoded.Pet.Sound())
	assert.Equal(t, &cat{Name: "mog"}, decoded.Pet)
}

func TestMarshalUnregisteredType(t *testing.T) {
	type plain struct {
		A uint64
		B string
	}

	data, err := encoder.Marshal(plain{A: 7, B: "x"})
	require.NoError(t, err)

	var decoded plain
	require.NoError(t, encoder.Unmarshal(data, &decoded))
	assert.Equal(t, plain{A: 7, B: "x"}, decoded)
}
