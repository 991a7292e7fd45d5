package core

// Abi is a contract class ABI. A *SierraAbi pairs only with a *SierraClass
// and a *CairoAbi only with a *DeprecatedCairoClass; a mixed pair is
// ErrClassAbiMismatch at every conversion boundary.
type Abi interface {
	Length() uint64
}

var (
	_ Abi = (*SierraAbi)(nil)
	_ Abi = (*CairoAbi)(nil)
)

type SierraAbi struct {
	// ABI as returned by the Cairo 1 compiler, an opaque JSON string
	Definition string
}

func (a *SierraAbi) Length() uint64 {
	return uint64(len(a.Definition))
}

type CairoAbi struct {
	// Raw JSON ABI entry array. Nil when the class was declared without one.
	Definition []byte
}

func (a *CairoAbi) Length() uint64 {
	return uint64(len(a.Definition))
}

// AbiEntry is a normalized deprecated-ABI entry: one of *FunctionAbiEntry,
// *EventAbiEntry or *StructAbiEntry. Wire constructor and l1_handler entries
// are folded into functions named "constructor" and "l1_handler" with no
// outputs; the original entry kind is recoverable only by name.
type AbiEntry interface {
	EntryName() string
}

var (
	_ AbiEntry = (*FunctionAbiEntry)(nil)
	_ AbiEntry = (*EventAbiEntry)(nil)
	_ AbiEntry = (*StructAbiEntry)(nil)
)

type AbiTypedParameter struct {
	Name string
	Type string
}

type FunctionAbiEntry struct {
	Name    string
	Inputs  []AbiTypedParameter
	Outputs []AbiTypedParameter
	// "view" for view functions, empty when unspecified
	StateMutability string
}

func (e *FunctionAbiEntry) EntryName() string {
	return e.Name
}

type EventAbiEntry struct {
	Name string
	Keys []AbiTypedParameter
	Data []AbiTypedParameter
}

func (e *EventAbiEntry) EntryName() string {
	return e.Name
}

type AbiStructMember struct {
	Name string
	Type string
	// Offset of the member within the struct
	Offset uint64
}

type StructAbiEntry struct {
	Name    string
	Size    uint64
	Members []AbiStructMember
}

func (e *StructAbiEntry) EntryName() string {
	return e.Name
}
