package core

// DeclaredClass is the unit of durable storage per class hash: the class
// body, its ABI and two indexing hints kept consistent by the writer.
// SierraProgramLength is 0 for deprecated classes and selects the decode
// path on read; it is never re-derived from the class body.
type DeclaredClass struct {
	DeclaredAt          uint64
	Class               ClassDefinition
	Abi                 Abi
	SierraProgramLength uint64
	AbiLength           uint64
}

// NewDeclaredClass validates the class/ABI pairing and computes the length
// hints. This is the only place the hints are derived.
func NewDeclaredClass(class ClassDefinition, abi Abi, declaredAt uint64) (*DeclaredClass, error) {
	var sierraProgramLength uint64
	switch c := class.(type) {
	case *SierraClass:
		if _, ok := abi.(*SierraAbi); !ok {
			return nil, ErrClassAbiMismatch
		}
		sierraProgramLength = uint64(len(c.Program))
	case *DeprecatedCairoClass:
		if _, ok := abi.(*CairoAbi); !ok {
			return nil, ErrClassAbiMismatch
		}
	default:
		return nil, ErrMalformedClassDefinition
	}

	return &DeclaredClass{
		DeclaredAt:          declaredAt,
		Class:               class,
		Abi:                 abi,
		SierraProgramLength: sierraProgramLength,
		AbiLength:           abi.Length(),
	}, nil
}
