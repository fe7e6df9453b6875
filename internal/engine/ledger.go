package engine

import "time"

// DayKey is the canonical identifier for a calendar day in local time.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// WeekKey identifies a week by the date of its Monday in local time.
func WeekKey(t time.Time) string {
	// time.Weekday puts Sunday at 0; shift so Monday is 0.
	back := (int(t.Weekday()) + 6) % 7
	monday := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).AddDate(0, 0, -back)
	return monday.Format("2006-01-02")
}

// ExpireDailyChallenges clears done flags in the daily set whose completion
// stamp is missing or not today. Idempotent; reports whether anything
// changed.
func (s *PlayerState) ExpireDailyChallenges(dailySet map[string]bool, today string) bool {
	changed := false
	for id := range dailySet {
		if !s.Challenges[id] {
			continue
		}
		if s.ChallengeCompletionDate[id] != today {
			s.Challenges[id] = false
			delete(s.ChallengeCompletionDate, id)
			changed = true
		}
	}
	return changed
}

// ExpireWeeklyChallenges is the weekly analogue, keyed on the week key.
func (s *PlayerState) ExpireWeeklyChallenges(weeklySet map[string]bool, week string) bool {
	changed := false
	for id := range weeklySet {
		if !s.Challenges[id] {
			continue
		}
		if s.ChallengeCompletionWeek[id] != week {
			s.Challenges[id] = false
			delete(s.ChallengeCompletionWeek, id)
			changed = true
		}
	}
	return changed
}

// Challenges the permanent upgrades key off.
const (
	challengePushups50Daily = "c1"  // 50 push-ups, daily set
	challengeMileRun        = "c34" // 1 mile run
)

// CheckUpgrades applies permanent account-wide upgrades whose conditions
// hold. Each fires at most once, guarded by a persisted flag; the whole
// check is idempotent and safe to run on every state-changing event.
// Returned strings are user-facing notices for upgrades applied now.
func (s *PlayerState) CheckUpgrades(now time.Time) []string {
	var notices []string

	// Weekly push-ups base 25 -> 50: level 10+ and the daily 50 push-ups
	// challenge completed today.
	if !s.Upgrades[UpgradeWeeklyPushups50] {
		doneToday := s.Challenges[challengePushups50Daily] &&
			s.ChallengeCompletionDate[challengePushups50Daily] == DayKey(now)
		if s.Level >= 10 && doneToday {
			s.TaskBase[BaseWeeklyPushups] = 50
			s.Upgrades[UpgradeWeeklyPushups50] = true
			notices = append(notices, "Weekly Push-ups increased to 50")
		}
	}

	// Daily jumping jacks base 25 -> 50: level 10+ and the mile run done.
	if !s.Upgrades[UpgradeDailyJumpingJacks50] {
		if s.Level >= 10 && s.Challenges[challengeMileRun] {
			s.TaskBase[BaseDailyJumpingJacks] = 50
			s.Upgrades[UpgradeDailyJumpingJacks50] = true
			notices = append(notices, "Daily Jumping Jacks increased to 50")
		}
	}

	return notices
}

// Default task XP rewards.
const (
	dailyTaskXP  = 20
	weeklyTaskXP = 40
)

// TaskXP returns the XP reward for completing a fixed task.
func TaskXP(key string) int {
	if key == TaskDaily {
		return dailyTaskXP
	}
	return weeklyTaskXP
}

// ResetDailyTasks clears the daily task flag.
func (s *PlayerState) ResetDailyTasks() {
	s.Tasks[TaskDaily].Completed = false
}

// ResetWeeklyTasks clears all weekly task flags.
func (s *PlayerState) ResetWeeklyTasks() {
	for _, k := range []string{TaskWeeklyPush, TaskWeeklySquat, TaskWeeklySit} {
		s.Tasks[k].Completed = false
	}
}
