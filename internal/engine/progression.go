package engine

import "math"

const (
	// HP 100 at level 1, +10 per level; MP 50 at level 1, +5 per level.
	hpBase     = 100
	hpPerLevel = 10
	mpBase     = 50
	mpPerLevel = 5

	// StaminaMax is fixed and does not scale with level.
	StaminaMax = 100

	// XP curve: linear growth plus a flat +10% per 5-level tier.
	xpBase     = 100
	xpPerLevel = 50
	tierSize   = 5
	tierBonus  = 0.10
)

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	return level
}

// HPMax returns the HP ceiling for a level.
func HPMax(level int) int {
	return hpBase + (clampLevel(level)-1)*hpPerLevel
}

// MPMax returns the MP ceiling for a level.
func MPMax(level int) int {
	return mpBase + (clampLevel(level)-1)*mpPerLevel
}

// XPToNext returns the XP needed to leave the given level.
func XPToNext(level int) int {
	lv := clampLevel(level)
	linear := float64(xpBase + (lv-1)*xpPerLevel)
	tiers := (lv - 1) / tierSize
	mult := 1 + float64(tiers)*tierBonus
	req := int(math.Ceil(linear * mult))
	if req < 10 {
		req = 10
	}
	return req
}

// TieredRequirement scales a task's base goal by the stepped 10%-per-5-levels
// multiplier.
func TieredRequirement(base, level int) int {
	tiers := (clampLevel(level) - 1) / tierSize
	mult := 1 + tierBonus*float64(tiers)
	req := int(math.Ceil(float64(base) * mult))
	if req < 1 {
		req = 1
	}
	return req
}

// statGrowth defines the per-level stat formulas: base + floor(level*coef).
var statGrowth = map[string]struct {
	Base int
	Coef float64
}{
	"str": {30, 1.0},
	"agi": {15, 0.65},
	"per": {12, 0.8},
	"vit": {14, 0.8},
	"int": {12, 0.75},
}

// StatsForLevel computes the base stat spread for a level.
func StatsForLevel(level int) map[string]int {
	lv := clampLevel(level)
	out := make(map[string]int, len(statGrowth))
	for k, g := range statGrowth {
		out[k] = g.Base + int(math.Floor(float64(lv)*g.Coef))
	}
	return out
}

// ApplyStatsForLevel recomputes stats and HP/MP maxima for a level. It also
// resets the ability-point pool to the level baseline: stat recompute and
// pool baseline move together.
func (s *PlayerState) ApplyStatsForLevel(level int) {
	lv := clampLevel(level)
	s.Stats = StatsForLevel(lv)
	s.Available = 20 - lv/2
	if s.Available < 0 {
		s.Available = 0
	}
	s.HP.Max = HPMax(lv)
	s.MP.Max = MPMax(lv)
	s.HP.Clamp()
	s.MP.Clamp()
}

// LevelUp records one level gained during an XP grant, with the stat deltas
// the growth pass produced (for UI feedback).
type LevelUp struct {
	Level      int
	StatDeltas map[string]int
}

// GrantXP adds XP and resolves any number of level boundaries in one call.
// After it returns, 0 <= XP.Cur < XP.ToNext holds and level never decreased.
// Returned level-ups are in ascending order.
func (s *PlayerState) GrantXP(amount int) []LevelUp {
	if amount < 0 {
		amount = 0
	}
	s.XP.Cur += amount
	if s.XP.ToNext <= 0 {
		s.XP.ToNext = XPToNext(s.Level)
	}

	var ups []LevelUp
	for s.XP.Cur >= s.XP.ToNext {
		s.XP.Cur -= s.XP.ToNext
		s.Level++
		s.XP.ToNext = XPToNext(s.Level)

		old := s.Stats
		s.ApplyStatsForLevel(s.Level)
		deltas := make(map[string]int, len(StatKeys))
		for _, k := range StatKeys {
			deltas[k] = s.Stats[k] - old[k]
		}
		s.Title = TitleForLevel(s.Level)
		ups = append(ups, LevelUp{Level: s.Level, StatDeltas: deltas})

		if s.Level >= 10 && !s.UnlockedCategories[CategoryFightingSkills] {
			s.UnlockedCategories[CategoryFightingSkills] = true
		}
	}
	return ups
}

// titleBands maps the upper level bound of each rank to its title, in order.
var titleBands = []struct {
	Max   int
	Title string
}{
	{10, "Rookie"},
	{20, "Novice"},
	{30, "Skilled"},
	{40, "Experienced"},
	{60, "Veteran"},
	{80, "Expert"},
	{120, "Elite"},
	{200, "Champion"},
	{350, "Master"},
	{599, "Grandmaster"},
	{799, "Mythic"},
	{949, "Ascendant"},
	{998, "Exalted"},
}

// TitleForLevel maps a level into its rank title.
func TitleForLevel(level int) string {
	lv := clampLevel(level)
	for _, b := range titleBands {
		if lv <= b.Max {
			return b.Title
		}
	}
	return "Legendary"
}

// RankIndex returns the 0-based rank band index for a level.
func RankIndex(level int) int {
	lv := clampLevel(level)
	for i, b := range titleBands {
		if lv <= b.Max {
			return i
		}
	}
	return len(titleBands)
}

// WeeklyBonus is the extra weekly-task volume granted per rank.
func WeeklyBonus(level int) int {
	return RankIndex(level) * 72
}

// DailyTask is the computed daily task for a level.
type DailyTask struct {
	Amount   int
	Activity string
}

// DailyTaskForLevel picks the daily activity and amount by level band.
// dailyBase is the (upgradeable) jumping-jacks base requirement.
func DailyTaskForLevel(level, dailyBase int) DailyTask {
	lv := clampLevel(level)
	switch {
	case lv <= 10:
		return DailyTask{Amount: dailyBase, Activity: "jumping jacks"}
	case lv >= 21 && lv <= 30:
		return DailyTask{Amount: 50, Activity: "jumping jacks"}
	case lv >= 61 && lv <= 599:
		return DailyTask{Amount: 25, Activity: "High knees"}
	case lv >= 600:
		return DailyTask{Amount: 25, Activity: "Burpees"}
	default:
		return DailyTask{Amount: TieredRequirement(dailyBase, lv), Activity: "jumping jacks"}
	}
}

// WorkoutXP converts logged workout minutes into XP: 2 XP per minute,
// floor 5, cap 200.
func WorkoutXP(minutes int) int {
	if minutes < 0 {
		minutes = 0
	}
	xp := minutes * 2
	if xp < 5 {
		xp = 5
	}
	if xp > 200 {
		xp = 200
	}
	return xp
}
