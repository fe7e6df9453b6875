package engine

import "fmt"

// AllocationError rejects an allocation request without touching state.
type AllocationError struct {
	Reason    string
	Requested int
	Available int
}

func (e AllocationError) Error() string {
	return fmt.Sprintf("allocation rejected: %s (requested %d, available %d)", e.Reason, e.Requested, e.Available)
}

// AllocateStats spends ability points on base stats. deltas maps stat keys to
// requested increases; the whole request commits or none of it does.
// Downward deltas are rejected, unknown keys are rejected, and the total
// spend must not exceed the available pool.
func (s *PlayerState) AllocateStats(deltas map[string]int) error {
	spend := 0
	for k, d := range deltas {
		if _, ok := s.Stats[k]; !ok {
			return AllocationError{Reason: "unknown stat " + k, Requested: d, Available: s.Available}
		}
		if d < 0 {
			return AllocationError{Reason: "cannot lower " + k, Requested: d, Available: s.Available}
		}
		spend += d
	}
	if spend == 0 {
		return nil
	}
	if spend > s.Available {
		return AllocationError{Reason: "not enough ability points", Requested: spend, Available: s.Available}
	}
	for k, d := range deltas {
		s.Stats[k] += d
	}
	s.Available -= spend
	return nil
}
