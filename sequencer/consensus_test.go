package sequencer

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"testing"
	"time"

	"github.com/venuechain/rollup-core/vm"
)

func TestConsensusCommitsWithSingleValidator(t *testing.T) {
	anchor := NewAnchoringClient()
	core, err := NewConsensusCore([]string{"A"}, anchor, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	program := []vm.CurveInstruction{{Opcode: vm.Buy, Operand: 5}}
	handle, err := core.ProposeAndCommit(Block{Program: program, Kind: LaneFast})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	transcript := anchor.Transcript()
	if len(transcript) != 1 || transcript[len(transcript)-1] != handle {
		t.Errorf("expected handle to equal transcript's last entry")
	}
	if core.Height() != 1 {
		t.Errorf("height = %d, want 1", core.Height())
	}
}

func TestConsensusDivergenceStopsHeight(t *testing.T) {
	anchor := NewAnchoringClient()
	calls := 0
	outputs := [][32]byte{{1}, {2}}
	diverge := func(program []vm.CurveInstruction) [32]byte {
		out := outputs[calls%len(outputs)]
		calls++
		return out
	}

	core, err := NewConsensusCore([]string{"A", "B"}, anchor, diverge)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = core.ProposeAndCommit(Block{Kind: LaneFast})
	se, ok := err.(*SequencerError)
	if !ok {
		t.Fatalf("expected *SequencerError, got %T (%v)", err, err)
	}
	if se.Code != ErrCodeStateRootsDiverged {
		t.Errorf("code = %v, want %v", se.Code, ErrCodeStateRootsDiverged)
	}
	if core.Height() != 0 {
		t.Errorf("height = %d, want 0 after divergence", core.Height())
	}
	if len(anchor.Transcript()) != 0 {
		t.Errorf("expected no anchoring submission after divergence")
	}
}

func TestAnchoringPayloadWellFormed(t *testing.T) {
	anchor := NewAnchoringClient()
	program := []vm.CurveInstruction{
		{Opcode: vm.Buy, Operand: 5},
		{Opcode: vm.Sell, Operand: 2},
	}
	handle := anchor.Submit(program)

	raw, err := base64.StdEncoding.DecodeString(handle)
	if err != nil {
		t.Fatalf("unexpected error decoding handle: %v", err)
	}

	var decoded struct {
		Root    string `json:"root"`
		Program []struct {
			Op  string `json:"op"`
			Arg int64  `json:"arg"`
		} `json:"program"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unexpected error unmarshaling payload: %v", err)
	}

	wantRoot := vm.CurveProgramRoot(program)
	if decoded.Root != hex.EncodeToString(wantRoot[:]) {
		t.Errorf("root = %q, want %q", decoded.Root, hex.EncodeToString(wantRoot[:]))
	}
	if len(decoded.Program) != 2 || decoded.Program[0].Op != "BUY" || decoded.Program[1].Op != "SELL" {
		t.Errorf("unexpected program in payload: %+v", decoded.Program)
	}
}

func TestDemoPipelineEndToEnd(t *testing.T) {
	program := []vm.CurveInstruction{
		{Opcode: vm.Buy, Operand: 5},
		{Opcode: vm.Sell, Operand: 2},
		{Opcode: vm.AddLiquidity, Operand: 3},
		{Opcode: vm.MigrateToAmm, Operand: 1},
	}

	now := time.Unix(1_700_000_000, 0)
	mp := NewMempool(fixedClock(now))
	if err := mp.AddTx(Tx{Sender: "Alice", Nonce: 0, Program: program, Kind: LaneFast, Timestamp: now}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	anchor := NewAnchoringClient()
	core, err := NewConsensusCore([]string{"A", "B", "C"}, anchor, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	miner, err := NewMiner(mp, core)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := miner.Mine(LaneFast, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Handle == "" {
		t.Errorf("expected non-empty anchoring handle")
	}
	if result.Height != 1 {
		t.Errorf("height = %d, want 1", result.Height)
	}
}
