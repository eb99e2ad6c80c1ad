package sequencer

import (
	"encoding/json"

	"github.com/venuechain/rollup-core/crypto"
	"github.com/venuechain/rollup-core/vm"
)

// StateRootFunc computes the state root of a curve-ISA program. The
// consensus core calls it once per replica per proposal; ownership of the
// hook is exclusive to whichever ConsensusCore holds it.
type StateRootFunc func(program []vm.CurveInstruction) [32]byte

type curveStateDoc struct {
	Balance      int64 `json:"balance"`
	Liquidity    int64 `json:"liquidity"`
	Migrated     bool  `json:"migrated"`
	MigrateValue int64 `json:"migrate_value"`
}

// NewStateRootFunc returns a StateRootFunc that hashes the post-execution
// curve VM state with provider, fields emitted in the fixed order
// {balance, liquidity, migrated, migrate_value}. Programs that drive the
// VM to identical final states produce identical roots under the same
// provider.
func NewStateRootFunc(provider crypto.HashProvider) StateRootFunc {
	return func(program []vm.CurveInstruction) [32]byte {
		v := vm.NewCurveVM()
		v.Execute(program)
		encoded, err := json.Marshal(curveStateDoc{
			Balance:      v.State.Balance,
			Liquidity:    v.State.Liquidity,
			Migrated:     v.State.Migrated,
			MigrateValue: v.State.MigrateValue,
		})
		if err != nil {
			panic("sequencer: curve state encoding failed: " + err.Error())
		}
		return provider.Sum(encoded)
	}
}

// DefaultStateRoot is the default StateRootFunc: crypto.SHA256Provider
// over the canonical JSON encoding of the post-execution curve VM state.
var DefaultStateRoot = NewStateRootFunc(crypto.SHA256Provider{})
