package sequencer

import "testing"

func TestLeaderRotation(t *testing.T) {
	schedule, err := NewLeaderSchedule([]string{"A", "B", "C"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"A", "B", "C", "A", "B"}
	for i, w := range want {
		if got := schedule.Next(); got != w {
			t.Errorf("tick %d = %q, want %q", i, got, w)
		}
	}
}

func TestNewLeaderScheduleEmpty(t *testing.T) {
	_, err := NewLeaderSchedule(nil)
	se, ok := err.(*SequencerError)
	if !ok {
		t.Fatalf("expected *SequencerError, got %T (%v)", err, err)
	}
	if se.Code != ErrCodeNoValidators {
		t.Errorf("code = %v, want %v", se.Code, ErrCodeNoValidators)
	}
}
