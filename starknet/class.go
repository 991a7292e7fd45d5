package starknet

import (
	"encoding/json"

	"github.com/NethermindEth/starkstate/core/felt"
)

type EntryPoint struct {
	Selector *felt.Felt `json:"selector"`
	Offset   *felt.Felt `json:"offset"`
}

type EntryPoints struct {
	Constructor []EntryPoint `json:"CONSTRUCTOR"`
	External    []EntryPoint `json:"EXTERNAL"`
	L1Handler   []EntryPoint `json:"L1_HANDLER"`
}

type SierraEntryPoint struct {
	Index    uint64     `json:"function_idx"`
	Selector *felt.Felt `json:"selector"`
}

type SierraEntryPoints struct {
	Constructor []SierraEntryPoint `json:"CONSTRUCTOR"`
	External    []SierraEntryPoint `json:"EXTERNAL"`
	L1Handler   []SierraEntryPoint `json:"L1_HANDLER"`
}

type SierraClass struct {
	Abi         string            `json:"abi,omitempty"`
	EntryPoints SierraEntryPoints `json:"entry_points_by_type"`
	Program     []*felt.Felt      `json:"sierra_program"`
	Version     string            `json:"contract_class_version"`
}

type DeprecatedCairoClass struct {
	Abi         json.RawMessage `json:"abi,omitempty"`
	EntryPoints EntryPoints     `json:"entry_points_by_type"`
	Program     json.RawMessage `json:"program"`
}

// ClassDefinition is the wire form of a contract class. Exactly one of the
// two fields is set; the variant is selected by the presence of the
// sierra_program field in the payload.
type ClassDefinition struct {
	DeprecatedCairo *DeprecatedCairoClass
	Sierra          *SierraClass
}

func (c *ClassDefinition) UnmarshalJSON(data []byte) error {
	jsonMap := make(map[string]any)
	if err := json.Unmarshal(data, &jsonMap); err != nil {
		return err
	}

	if _, found := jsonMap["sierra_program"]; found {
		c.Sierra = new(SierraClass)
		return json.Unmarshal(data, c.Sierra)
	}
	c.DeprecatedCairo = new(DeprecatedCairoClass)
	return json.Unmarshal(data, c.DeprecatedCairo)
}

func (c ClassDefinition) MarshalJSON() ([]byte, error) {
	if c.Sierra != nil {
		return json.Marshal(c.Sierra)
	}
	return json.Marshal(c.DeprecatedCairo)
}
