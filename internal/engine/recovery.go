package engine

import (
	"math"
	"time"
)

// RegenPerSecond is the whole-unit regeneration rate for each of HP, MP and
// stamina. The tick period is a scheduling choice; long-run rates depend only
// on elapsed tick time.
const RegenPerSecond = 2.0

// RecoveryDelta reports the whole units applied by a regeneration batch.
type RecoveryDelta struct {
	HP   int
	MP   int
	Stam int
}

// Any reports whether any whole unit was applied.
func (d RecoveryDelta) Any() bool {
	return d.HP > 0 || d.MP > 0 || d.Stam > 0
}

// ApplyRecoveryTicks runs ticks' worth of regeneration: the fractional
// accumulator per resource grows by ticks*rate, only the integer part is
// applied (clamped to max), and that integer is subtracted back out so the
// remainder carries. Whole units that hit a full resource are consumed
// without effect; nothing banks past full.
func (s *PlayerState) ApplyRecoveryTicks(ticks int, period time.Duration) RecoveryDelta {
	if ticks <= 0 {
		return RecoveryDelta{}
	}
	gain := RegenPerSecond * float64(ticks) * period.Seconds()
	s.RegenBuffer.HP += gain
	s.RegenBuffer.MP += gain
	s.RegenBuffer.Stam += gain

	return RecoveryDelta{
		HP:   drainWhole(&s.HP, &s.RegenBuffer.HP),
		MP:   drainWhole(&s.MP, &s.RegenBuffer.MP),
		Stam: drainWhole(&s.Stamina, &s.RegenBuffer.Stam),
	}
}

func drainWhole(r *Resource, buf *float64) int {
	whole := int(math.Floor(*buf))
	if whole <= 0 {
		return 0
	}
	*buf -= float64(whole)
	return r.Add(whole)
}

// CatchUpRecovery applies the whole ticks elapsed since RecoveryLast and
// advances RecoveryLast by exactly that many periods, never to "now", so
// sub-tick remainders are neither lost nor double-counted. Returns the tick
// count applied.
func (s *PlayerState) CatchUpRecovery(now time.Time, period time.Duration) (int, RecoveryDelta) {
	last := s.RecoveryLast
	if last <= 0 {
		s.RecoveryLast = now.UnixMilli()
		return 0, RecoveryDelta{}
	}
	elapsed := now.UnixMilli() - last
	if elapsed < period.Milliseconds() {
		return 0, RecoveryDelta{}
	}
	ticks := int(elapsed / period.Milliseconds())
	delta := s.ApplyRecoveryTicks(ticks, period)
	s.RecoveryLast = last + int64(ticks)*period.Milliseconds()
	return ticks, delta
}
