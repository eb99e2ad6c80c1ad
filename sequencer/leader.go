package sequencer

// LeaderSchedule is a cyclic cursor over a non-empty, immutable validator
// list. It models rotation, not election: the returned identity is
// currently unconsulted by the consensus protocol, but the cursor must
// still advance every tick so its observable position stays correct.
type LeaderSchedule struct {
	validators []string
	next       int
}

// NewLeaderSchedule returns a LeaderSchedule over validators. It fails if
// validators is empty.
func NewLeaderSchedule(validators []string) (*LeaderSchedule, error) {
	if len(validators) == 0 {
		return nil, errNoValidators()
	}
	cp := append([]string(nil), validators...)
	return &LeaderSchedule{validators: cp}, nil
}

// Next returns the current leader and advances the cursor.
func (s *LeaderSchedule) Next() string {
	leader := s.validators[s.next%len(s.validators)]
	s.next++
	return leader
}
