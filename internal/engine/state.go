// Package engine implements the progression, recovery, ledger and battle
// rules. All durable state hangs off PlayerState; the Service owns one
// instance plus the optional battle session and is the only writer.
package engine

import "time"

// Stat keys, in display order.
var StatKeys = []string{"str", "agi", "per", "vit", "int"}

// Resource is a current/maximum pair (HP, MP, stamina). Cur is kept inside
// [0, Max] by every mutation.
type Resource struct {
	Cur int `json:"cur"`
	Max int `json:"max"`
}

// Clamp pins Cur into [0, Max].
func (r *Resource) Clamp() {
	if r.Cur > r.Max {
		r.Cur = r.Max
	}
	if r.Cur < 0 {
		r.Cur = 0
	}
}

// Add applies a (possibly negative) delta with clamping and returns the
// change actually applied.
func (r *Resource) Add(delta int) int {
	before := r.Cur
	r.Cur += delta
	r.Clamp()
	return r.Cur - before
}

// XP tracks progress toward the next level. Cur is always < ToNext after
// normalization.
type XP struct {
	Cur    int `json:"cur"`
	ToNext int `json:"toNext"`
}

// Item is an inventory record. Items have no id; stacks merge by
// name+rarity+type.
type Item struct {
	Name    string         `json:"name"`
	Type    string         `json:"type"` // consumable, armor
	Rarity  string         `json:"rarity"`
	Slot    string         `json:"slot,omitempty"` // armor equip slot
	Qty     int            `json:"qty"`
	Bonuses map[string]int `json:"bonuses,omitempty"` // stat bonuses while equipped
	Effect  map[string]int `json:"effect,omitempty"`  // consumable resource effect
}

// Skill is a learned skill. The id resolves effect data from the catalog.
type Skill struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Desc   string `json:"desc"`
	Rarity string `json:"rarity"`
	MPCost int    `json:"mpCost"`
}

// TaskFlag is a fixed task's completion state.
type TaskFlag struct {
	Completed bool `json:"completed"`
}

// WorkoutEntry is one logged personal workout.
type WorkoutEntry struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Minutes int    `json:"minutes"`
	XP      int    `json:"xp"`
	At      int64  `json:"at"` // unix millis
}

// RegenBuffer carries the fractional remainder of regeneration per resource,
// so rates below one unit per tick stay exact over time.
type RegenBuffer struct {
	HP   float64 `json:"hp"`
	MP   float64 `json:"mp"`
	Stam float64 `json:"stam"`
}

// Fixed task keys.
const (
	TaskDaily       = "daily"
	TaskWeeklyPush  = "weeklyPush"
	TaskWeeklySquat = "weeklySquat"
	TaskWeeklySit   = "weeklySit"
)

// Task base requirement keys (mutable via progression upgrades).
const (
	BaseDailyJumpingJacks = "dailyJumpingJacks"
	BaseWeeklyPushups     = "weeklyPushups"
	BaseWeeklySquats      = "weeklySquats"
	BaseWeeklySitups      = "weeklySitups"
)

// Progression upgrade flags (each fires exactly once).
const (
	UpgradeWeeklyPushups50     = "weeklyPushups50"
	UpgradeDailyJumpingJacks50 = "dailyJumpingJacks50"
)

// CategoryFightingSkills unlocks at level 10.
const CategoryFightingSkills = "Fighting Skills"

// PlayerState is the root aggregate, persisted as one JSON record.
type PlayerState struct {
	Version int    `json:"v"`
	Level   int    `json:"level"`
	Job     string `json:"job"`
	Title   string `json:"title"`

	HP        Resource       `json:"hp"`
	MP        Resource       `json:"mp"`
	Stamina   Resource       `json:"stamina"`
	XP        XP             `json:"xp"`
	Stats     map[string]int `json:"stats"`
	Available int            `json:"available"`

	Inventory []Item          `json:"inventory"`
	Skills    []Skill         `json:"skills"`
	Equipment map[string]Item `json:"equipment"`

	TaskBase map[string]int       `json:"taskBase"`
	Tasks    map[string]*TaskFlag `json:"tasks"`
	Workouts []WorkoutEntry       `json:"workouts,omitempty"`

	Challenges              map[string]bool   `json:"challenges"`
	ChallengeCompletionDate map[string]string `json:"challengeCompletionDate"`
	ChallengeCompletionWeek map[string]string `json:"challengeCompletionWeek"`
	UnlockedCategories      map[string]bool   `json:"unlockedCategories"`
	Upgrades                map[string]bool   `json:"upgrades"`

	RegenBuffer  RegenBuffer `json:"regenBuffer"`
	RecoveryLast int64       `json:"recoveryLast"` // unix millis of last applied regen instant
}

// NewDefaultState returns a fresh level-1 player with full resources.
// Stats start at zero and are first populated by the level-up growth pass,
// matching the original progression feel of earning the base spread.
func NewDefaultState(now time.Time) *PlayerState {
	s := &PlayerState{
		Version: 2,
		Level:   1,
		Job:     "None",
		Stats:   map[string]int{"str": 0, "agi": 0, "per": 0, "vit": 0, "int": 0},
		TaskBase: map[string]int{
			BaseDailyJumpingJacks: 25,
			BaseWeeklyPushups:     25,
			BaseWeeklySquats:      25,
			BaseWeeklySitups:      25,
		},
		Tasks: map[string]*TaskFlag{
			TaskDaily:       {},
			TaskWeeklyPush:  {},
			TaskWeeklySquat: {},
			TaskWeeklySit:   {},
		},
		Equipment:               map[string]Item{},
		Challenges:              map[string]bool{},
		ChallengeCompletionDate: map[string]string{},
		ChallengeCompletionWeek: map[string]string{},
		UnlockedCategories:      map[string]bool{CategoryFightingSkills: false},
		Upgrades: map[string]bool{
			UpgradeWeeklyPushups50:     false,
			UpgradeDailyJumpingJacks50: false,
		},
		RecoveryLast: now.UnixMilli(),
	}
	s.Normalize(now)
	return s
}

// Normalize fills derived and missing fields after load or reset: XP
// requirement, HP/MP maxima, stamina shape, map presence and title. It is
// idempotent and safe to run on any state.
func (s *PlayerState) Normalize(now time.Time) {
	if s.Level < 1 {
		s.Level = 1
	}
	if s.XP.ToNext <= 0 {
		s.XP.ToNext = XPToNext(s.Level)
	}
	if s.HP.Max <= 0 {
		s.HP.Max = HPMax(s.Level)
		s.HP.Cur = s.HP.Max
	}
	if s.MP.Max <= 0 {
		s.MP.Max = MPMax(s.Level)
		s.MP.Cur = s.MP.Max
	}
	if s.Stamina.Max <= 0 {
		s.Stamina.Max = StaminaMax
		s.Stamina.Cur = s.Stamina.Max
	}
	s.HP.Clamp()
	s.MP.Clamp()
	s.Stamina.Clamp()

	if s.Stats == nil {
		s.Stats = map[string]int{}
	}
	for _, k := range StatKeys {
		if _, ok := s.Stats[k]; !ok {
			s.Stats[k] = 0
		}
	}
	if s.TaskBase == nil {
		s.TaskBase = map[string]int{}
	}
	for k, v := range map[string]int{
		BaseDailyJumpingJacks: 25,
		BaseWeeklyPushups:     25,
		BaseWeeklySquats:      25,
		BaseWeeklySitups:      25,
	} {
		if _, ok := s.TaskBase[k]; !ok {
			s.TaskBase[k] = v
		}
	}
	if s.Tasks == nil {
		s.Tasks = map[string]*TaskFlag{}
	}
	for _, k := range []string{TaskDaily, TaskWeeklyPush, TaskWeeklySquat, TaskWeeklySit} {
		if s.Tasks[k] == nil {
			s.Tasks[k] = &TaskFlag{}
		}
	}
	if s.Equipment == nil {
		s.Equipment = map[string]Item{}
	}
	if s.Challenges == nil {
		s.Challenges = map[string]bool{}
	}
	if s.ChallengeCompletionDate == nil {
		s.ChallengeCompletionDate = map[string]string{}
	}
	if s.ChallengeCompletionWeek == nil {
		s.ChallengeCompletionWeek = map[string]string{}
	}
	if s.UnlockedCategories == nil {
		s.UnlockedCategories = map[string]bool{}
	}
	if s.Upgrades == nil {
		s.Upgrades = map[string]bool{}
	}
	if s.RecoveryLast <= 0 {
		s.RecoveryLast = now.UnixMilli()
	}
	if s.Title == "" {
		s.Title = TitleForLevel(s.Level)
	}
	s.Version = 2
}
