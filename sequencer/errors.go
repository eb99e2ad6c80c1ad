package sequencer

import "fmt"

// ErrorCode classifies a SequencerError.
type ErrorCode string

const (
	ErrCodeNoValidators        ErrorCode = "no_validators"
	ErrCodeStateRootsDiverged  ErrorCode = "state_roots_diverged"
	ErrCodeNonceWindowExceeded ErrorCode = "nonce_window_exceeded"
)

// SequencerError is a recoverable error from the leader schedule, the
// consensus core, or the mempool's nonce-window check.
type SequencerError struct {
	Code ErrorCode
	Msg  string
}

func (e *SequencerError) Error() string { return e.Msg }

func seqErr(code ErrorCode, msg string) *SequencerError {
	return &SequencerError{Code: code, Msg: msg}
}

func errNoValidators() *SequencerError {
	return seqErr(ErrCodeNoValidators, "no validators configured")
}

func errStateRootsDiverged() *SequencerError {
	return seqErr(ErrCodeStateRootsDiverged, "state roots diverged across replicas")
}

func errNonceWindowExceeded(sender string, lane Lane) *SequencerError {
	return seqErr(ErrCodeNonceWindowExceeded,
		fmt.Sprintf("nonce window exceeded for sender %q in %q lane", sender, lane))
}
