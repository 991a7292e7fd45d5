package registry

import (
	"reflect"
	"sync"

	"github.com/NethermindEth/starkstate/core"
	"github.com/NethermindEth/starkstate/encoder"
)

var once sync.Once

//nolint:gochecknoinits
func init() {
	once.Do(func() {
		types := []reflect.Type{
			reflect.TypeOf(core.DeprecatedCairoClass{}),
			reflect.TypeOf(core.SierraClass{}),
			reflect.TypeOf(core.SierraAbi{}),
			reflect.TypeOf(core.CairoAbi{}),
		}

		for _, t := range types {
			err := encoder.RegisterType(t)
			if err != nil {
				panic(err)
			}
		}
	})
}
