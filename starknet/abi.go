package starknet

// Entry types appearing in deprecated (Cairo 0) class ABIs.
// https://github.com/starkware-libs/starknet-specs/blob/master/api/starknet_api_openrpc.json
type AbiEntryType string

const (
	AbiFunction    AbiEntryType = "function"
	AbiConstructor AbiEntryType = "constructor"
	AbiL1Handler   AbiEntryType = "l1_handler"
	AbiEvent       AbiEntryType = "event"
	AbiStruct      AbiEntryType = "struct"
)

type AbiTypedParameter struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type AbiStructMember struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Offset uint64 `json:"offset"`
}

// AbiEntry is a single deprecated-ABI entry. Which fields are populated
// depends on Type: function-like entries carry inputs/outputs, events carry
// keys/data, structs carry size/members.
type AbiEntry struct {
	Type            AbiEntryType        `json:"type"`
	Name            string              `json:"name"`
	Inputs          []AbiTypedParameter `json:"inputs,omitempty"`
	Outputs         []AbiTypedParameter `json:"outputs,omitempty"`
	StateMutability string              `json:"stateMutability,omitempty"`
	Keys            []AbiTypedParameter `json:"keys,omitempty"`
	Data            []AbiTypedParameter `json:"data,omitempty"`
	Size            uint64              `json:"size,omitempty"`
	Members         []AbiStructMember   `json:"members,omitempty"`
}
