package engine

import (
	"testing"
	"time"
)

func TestWeekKeyMondayAnchor(t *testing.T) {
	// 2026-03-02 is a Monday.
	monday := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	if got := WeekKey(monday); got != "2026-03-02" {
		t.Fatalf("WeekKey(monday)=%q, want 2026-03-02", got)
	}
	sunday := time.Date(2026, 3, 8, 23, 59, 0, 0, time.UTC)
	if got := WeekKey(sunday); got != "2026-03-02" {
		t.Fatalf("WeekKey(sunday)=%q, want same week 2026-03-02", got)
	}
	nextMonday := time.Date(2026, 3, 9, 0, 0, 1, 0, time.UTC)
	if got := WeekKey(nextMonday); got != "2026-03-09" {
		t.Fatalf("WeekKey(next monday)=%q, want 2026-03-09", got)
	}
}

func TestExpireDailyChallenges(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	s := NewDefaultState(now)
	dailySet := map[string]bool{"c1": true, "c4": true}

	s.Challenges["c1"] = true
	s.ChallengeCompletionDate["c1"] = DayKey(now)
	s.Challenges["c4"] = true
	s.ChallengeCompletionDate["c4"] = "2026-03-01"
	s.Challenges["c9"] = true // not in the daily set, never expires

	if changed := s.ExpireDailyChallenges(dailySet, DayKey(now)); !changed {
		t.Fatal("expected a change for the stale completion")
	}
	if s.Challenges["c1"] != true {
		t.Fatal("today's completion must survive")
	}
	if s.Challenges["c4"] {
		t.Fatal("yesterday's completion must clear")
	}
	if _, ok := s.ChallengeCompletionDate["c4"]; ok {
		t.Fatal("stale completion stamp must be removed")
	}
	if !s.Challenges["c9"] {
		t.Fatal("one-off challenge must not expire")
	}

	// Second run changes nothing.
	if changed := s.ExpireDailyChallenges(dailySet, DayKey(now)); changed {
		t.Fatal("expiry must be idempotent")
	}
}

func TestExpireWeeklyChallenges(t *testing.T) {
	now := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC) // Monday, new week
	s := NewDefaultState(now)
	weeklySet := map[string]bool{"c2": true}

	s.Challenges["c2"] = true
	s.ChallengeCompletionWeek["c2"] = "2026-03-02"

	if changed := s.ExpireWeeklyChallenges(weeklySet, WeekKey(now)); !changed {
		t.Fatal("expected last week's completion to clear")
	}
	if s.Challenges["c2"] {
		t.Fatal("weekly challenge still marked done")
	}
}

func TestTaskXP(t *testing.T) {
	if got := TaskXP(TaskDaily); got != 20 {
		t.Fatalf("daily XP=%d, want 20", got)
	}
	if got := TaskXP(TaskWeeklyPush); got != 40 {
		t.Fatalf("weekly XP=%d, want 40", got)
	}
}

func TestCheckUpgradesWeeklyPushups(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	s := NewDefaultState(now)
	s.Level = 10

	// Condition not met yet: c1 not completed today.
	if notes := s.CheckUpgrades(now); len(notes) != 0 {
		t.Fatalf("unexpected upgrades: %v", notes)
	}

	s.Challenges["c1"] = true
	s.ChallengeCompletionDate["c1"] = DayKey(now)
	notes := s.CheckUpgrades(now)
	if len(notes) != 1 {
		t.Fatalf("got %d notices, want 1", len(notes))
	}
	if s.TaskBase[BaseWeeklyPushups] != 50 {
		t.Fatalf("weekly push-ups base=%d, want 50", s.TaskBase[BaseWeeklyPushups])
	}
	if !s.Upgrades[UpgradeWeeklyPushups50] {
		t.Fatal("upgrade flag not persisted")
	}

	// Fires at most once.
	if notes := s.CheckUpgrades(now); len(notes) != 0 {
		t.Fatalf("upgrade fired twice: %v", notes)
	}
}

func TestCheckUpgradesDailyJumpingJacks(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	s := NewDefaultState(now)
	s.Level = 12
	s.Challenges["c34"] = true

	notes := s.CheckUpgrades(now)
	if len(notes) != 1 {
		t.Fatalf("got %d notices, want 1", len(notes))
	}
	if s.TaskBase[BaseDailyJumpingJacks] != 50 {
		t.Fatalf("daily base=%d, want 50", s.TaskBase[BaseDailyJumpingJacks])
	}
}

func TestResetTasks(t *testing.T) {
	s := NewDefaultState(time.Now())
	for _, k := range []string{TaskDaily, TaskWeeklyPush, TaskWeeklySquat, TaskWeeklySit} {
		s.Tasks[k].Completed = true
	}
	s.ResetDailyTasks()
	if s.Tasks[TaskDaily].Completed {
		t.Fatal("daily task not reset")
	}
	if !s.Tasks[TaskWeeklyPush].Completed {
		t.Fatal("daily reset must not touch weekly tasks")
	}
	s.ResetWeeklyTasks()
	for _, k := range []string{TaskWeeklyPush, TaskWeeklySquat, TaskWeeklySit} {
		if s.Tasks[k].Completed {
			t.Fatalf("weekly task %s not reset", k)
		}
	}
}
