package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/onemoresn/FightersQuest/internal/catalog"
	"github.com/onemoresn/FightersQuest/internal/storage"
)

// Default scheduling knobs. The tick period is how often regeneration is
// evaluated; expiry checks and background saves are throttled independently
// so a fast tick does not hammer the store.
const (
	DefaultTickPeriod   = 250 * time.Millisecond
	DefaultSaveThrottle = time.Second
	expiryThrottle      = 10 * time.Second
)

// Service owns the single PlayerState, the optional battle session, and the
// store behind them. All mutations go through it; callers never share the
// state across goroutines.
type Service struct {
	store storage.Store
	cat   *catalog.Catalog
	log   *slog.Logger
	roll  Roller
	now   func() time.Time

	tickPeriod   time.Duration
	saveThrottle time.Duration

	state  *PlayerState
	battle *BattleSession

	lastExpiry time.Time
	lastSave   time.Time
	dirty      bool
}

// ServiceOptions tune scheduling and inject test seams. Zero values pick
// defaults.
type ServiceOptions struct {
	TickPeriod   time.Duration
	SaveThrottle time.Duration
	Roller       Roller
	Now          func() time.Time
}

func NewService(store storage.Store, cat *catalog.Catalog, log *slog.Logger, opt ServiceOptions) *Service {
	if opt.TickPeriod <= 0 {
		opt.TickPeriod = DefaultTickPeriod
	}
	if opt.SaveThrottle <= 0 {
		opt.SaveThrottle = DefaultSaveThrottle
	}
	if opt.Roller == nil {
		opt.Roller = systemRoller{}
	}
	if opt.Now == nil {
		opt.Now = time.Now
	}
	return &Service{
		store:        store,
		cat:          cat,
		log:          log,
		roll:         opt.Roller,
		now:          opt.Now,
		tickPeriod:   opt.TickPeriod,
		saveThrottle: opt.SaveThrottle,
	}
}

// State exposes the loaded player state for rendering. Callers must not hold
// it across Service calls that mutate.
func (s *Service) State() *PlayerState { return s.state }

// Battle returns the active session, or nil.
func (s *Service) Battle() *BattleSession { return s.battle }

// Catalog returns the injected content tables.
func (s *Service) Catalog() *catalog.Catalog { return s.cat }

// TickPeriod returns the regeneration evaluation period.
func (s *Service) TickPeriod() time.Duration { return s.tickPeriod }

// Load reads and migrates the persisted record, overlays it on a fresh
// default state, then runs offline catch-up: regeneration for the elapsed
// downtime, ledger expiry, and any pending progression upgrades. A missing,
// unreadable or malformed record means a fresh start, never a hard error.
func (s *Service) Load(ctx context.Context) {
	now := s.now()
	st := NewDefaultState(now)

	raw, ok, err := s.store.Get(ctx, storage.StateKey)
	if err != nil {
		s.log.Warn("load state failed, starting fresh", "err", err)
		ok = false
	}
	if ok {
		if migrated, err := storage.MigrateRecord(raw); err != nil {
			s.log.Warn("state record malformed, starting fresh", "err", err)
		} else if err := json.Unmarshal(migrated, st); err != nil {
			s.log.Warn("state record malformed, starting fresh", "err", err)
			st = NewDefaultState(now)
		} else {
			st.Normalize(now)
		}
	}
	s.state = st

	ticks, delta := st.CatchUpRecovery(now, s.tickPeriod)
	if ticks > 0 {
		s.log.Debug("offline recovery applied", "ticks", ticks, "hp", delta.HP, "mp", delta.MP, "stam", delta.Stam)
	}
	s.expireLedger(now)
	for _, n := range st.CheckUpgrades(now) {
		s.log.Info("progression upgrade", "notice", n)
	}

	s.dirty = true
	if err := s.SaveNow(ctx); err != nil {
		s.log.Warn("initial save failed", "err", err)
	}
}

func (s *Service) encode() ([]byte, error) {
	return json.Marshal(s.state)
}

// Save persists best-effort: failures are logged, never surfaced, and the
// write is skipped entirely inside the throttle window. Gameplay goes on
// even when the store is gone.
func (s *Service) Save(ctx context.Context) {
	now := s.now()
	if now.Sub(s.lastSave) < s.saveThrottle {
		s.dirty = true
		return
	}
	if err := s.SaveNow(ctx); err != nil {
		s.log.Warn("save failed", "err", err)
	}
}

// SaveNow persists immediately and reports the error. Battle settlement and
// shutdown use this so the durable record is known-good before moving on.
func (s *Service) SaveNow(ctx context.Context) error {
	raw, err := s.encode()
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := s.store.Set(ctx, storage.StateKey, raw); err != nil {
		return fmt.Errorf("persist state: %w", err)
	}
	s.lastSave = s.now()
	s.dirty = false
	return nil
}

// Flush writes any deferred dirty state. Called on shutdown.
func (s *Service) Flush(ctx context.Context) error {
	if !s.dirty {
		return nil
	}
	return s.SaveNow(ctx)
}

// Tick advances regeneration to now and runs the throttled ledger expiry
// check. Returns the whole units applied this call.
func (s *Service) Tick(ctx context.Context) RecoveryDelta {
	now := s.now()
	_, delta := s.state.CatchUpRecovery(now, s.tickPeriod)

	if now.Sub(s.lastExpiry) >= expiryThrottle {
		s.lastExpiry = now
		if s.expireLedger(now) {
			s.dirty = true
		}
	}
	// Whole units of recovery persist immediately so a crash cannot roll
	// them back; fraction-only ticks ride the throttle.
	if delta.Any() {
		s.dirty = true
		if err := s.SaveNow(ctx); err != nil {
			s.log.Warn("save failed", "err", err)
		}
	} else if s.dirty {
		s.Save(ctx)
	}
	return delta
}

// expireLedger clears stale daily and weekly completions. Reports change.
func (s *Service) expireLedger(now time.Time) bool {
	daily := s.state.ExpireDailyChallenges(s.cat.DailySet, DayKey(now))
	weekly := s.state.ExpireWeeklyChallenges(s.cat.WeeklySet, WeekKey(now))
	if daily {
		s.state.ResetDailyTasks()
	}
	if weekly {
		s.state.ResetWeeklyTasks()
	}
	return daily || weekly
}

// CompletionResult reports everything a completion produced, for rendering.
type CompletionResult struct {
	XP       int
	LevelUps []LevelUp
	Skill    *catalog.SkillDef
	Loot     *Item
	Upgrades []string
}

// CompleteChallenge marks a challenge done, stamps its expiry key, grants
// its XP and rolls the skill and loot tables. Completing a challenge in a
// locked category or one already done is rejected with no state change.
func (s *Service) CompleteChallenge(ctx context.Context, id string) (CompletionResult, error) {
	ch := s.cat.Challenge(id)
	if ch == nil {
		return CompletionResult{}, UnknownIDError{Kind: "challenge", ID: id}
	}
	if ch.Category == CategoryFightingSkills && !s.state.UnlockedCategories[CategoryFightingSkills] {
		return CompletionResult{}, GateError{Feature: CategoryFightingSkills, RequiredLevel: 10}
	}
	if s.state.Challenges[id] {
		return CompletionResult{}, AlreadyCompletedError{ID: id}
	}

	now := s.now()
	s.state.Challenges[id] = true
	if s.cat.DailySet[id] {
		s.state.ChallengeCompletionDate[id] = DayKey(now)
	}
	if s.cat.WeeklySet[id] {
		s.state.ChallengeCompletionWeek[id] = WeekKey(now)
	}

	res := CompletionResult{XP: ch.XP}
	res.LevelUps = s.state.GrantXP(ch.XP)
	res.Skill = RollLearnSkill(s.roll, LearnFromChallenge, s.cat.Skills, s.state)
	res.Loot = s.state.MaybeDropLoot(s.roll, LearnFromChallenge)
	res.Upgrades = s.state.CheckUpgrades(now)

	s.logCompletion("challenge completed", "id", id, res)
	s.dirty = true
	s.Save(ctx)
	return res, nil
}

// CompleteTask marks a fixed daily or weekly task done. Re-completing is a
// no-op; SetTaskDone(key, false) unchecks without refunding XP.
func (s *Service) CompleteTask(ctx context.Context, key string) (CompletionResult, error) {
	flag, ok := s.state.Tasks[key]
	if !ok {
		return CompletionResult{}, UnknownIDError{Kind: "task", ID: key}
	}
	if flag.Completed {
		return CompletionResult{}, nil
	}
	flag.Completed = true

	xp := TaskXP(key)
	res := CompletionResult{XP: xp}
	res.LevelUps = s.state.GrantXP(xp)
	res.Loot = s.state.MaybeDropLoot(s.roll, LearnFromTask)
	res.Skill = RollLearnSkill(s.roll, LearnFromTask, s.cat.Skills, s.state)
	res.Upgrades = s.state.CheckUpgrades(s.now())

	s.logCompletion("task completed", "key", key, res)
	s.dirty = true
	s.Save(ctx)
	return res, nil
}

// SetTaskDone unchecks a task (or checks it without rewards, for restores).
func (s *Service) SetTaskDone(ctx context.Context, key string, done bool) error {
	flag, ok := s.state.Tasks[key]
	if !ok {
		return UnknownIDError{Kind: "task", ID: key}
	}
	flag.Completed = done
	s.dirty = true
	s.Save(ctx)
	return nil
}

// LogWorkout records a personal workout and grants minute-scaled XP, with
// the same skill and loot rolls as a fixed task.
func (s *Service) LogWorkout(ctx context.Context, name string, minutes int) (WorkoutEntry, CompletionResult, error) {
	if minutes <= 0 {
		return WorkoutEntry{}, CompletionResult{}, fmt.Errorf("workout minutes must be positive")
	}
	now := s.now()
	if name == "" {
		name = fmt.Sprintf("%dm workout", minutes)
	}
	xp := WorkoutXP(minutes)
	entry := WorkoutEntry{
		ID:      now.UnixMilli(),
		Name:    name,
		Minutes: minutes,
		XP:      xp,
		At:      now.UnixMilli(),
	}
	s.state.Workouts = append([]WorkoutEntry{entry}, s.state.Workouts...)

	res := CompletionResult{XP: xp}
	res.LevelUps = s.state.GrantXP(xp)
	res.Skill = RollLearnSkill(s.roll, LearnFromTask, s.cat.Skills, s.state)
	res.Loot = s.state.MaybeDropLoot(s.roll, LearnFromTask)
	res.Upgrades = s.state.CheckUpgrades(now)

	s.logCompletion("workout logged", "name", name, res)
	s.dirty = true
	s.Save(ctx)
	return entry, res, nil
}

// DeleteWorkout removes a history entry by its id. The XP it granted stays.
func (s *Service) DeleteWorkout(ctx context.Context, id int64) error {
	for i, w := range s.state.Workouts {
		if w.ID == id {
			s.state.Workouts = append(s.state.Workouts[:i], s.state.Workouts[i+1:]...)
			s.dirty = true
			s.Save(ctx)
			return nil
		}
	}
	return UnknownIDError{Kind: "workout", ID: fmt.Sprintf("%d", id)}
}

func (s *Service) logCompletion(msg, idKey, idVal string, res CompletionResult) {
	args := []any{idKey, idVal, "xp", res.XP, "levelUps", len(res.LevelUps)}
	if res.Skill != nil {
		args = append(args, "skillLearned", res.Skill.ID)
	}
	if res.Loot != nil {
		args = append(args, "loot", res.Loot.Name)
	}
	s.log.Info(msg, args...)
}

// Allocate spends ability points per the all-or-nothing rules.
func (s *Service) Allocate(ctx context.Context, deltas map[string]int) error {
	if err := s.state.AllocateStats(deltas); err != nil {
		return err
	}
	s.dirty = true
	s.Save(ctx)
	return nil
}

// StartBattle opens a turn-based session against a quest or dungeon monster.
// Only one session may exist at a time.
func (s *Service) StartBattle(questID string) (*BattleSession, error) {
	if s.battle != nil && !s.battle.Over() {
		return nil, ErrBattleActive
	}
	op := s.cat.Quest(questID)
	if op == nil {
		return nil, UnknownIDError{Kind: "quest", ID: questID}
	}
	s.battle = NewBattleSession(*op, s.state)
	s.log.Info("battle started", "quest", questID, "enemyLevel", s.battle.Enemy.Level)
	return s.battle, nil
}

// BattleAttack runs a player attack turn, settling the session if it ended.
func (s *Service) BattleAttack(ctx context.Context) error {
	if s.battle == nil {
		return ErrNoBattle
	}
	if err := s.battle.Attack(s.state, s.roll); err != nil {
		return err
	}
	return s.settleIfOver(ctx)
}

// BattleDefend runs a defend turn.
func (s *Service) BattleDefend(ctx context.Context) error {
	if s.battle == nil {
		return ErrNoBattle
	}
	if err := s.battle.Defend(s.state, s.roll); err != nil {
		return err
	}
	return s.settleIfOver(ctx)
}

// UseSkill casts a learned skill. In battle it runs through the session; out
// of battle only heals apply, against persistent MP and HP.
func (s *Service) UseSkill(ctx context.Context, id string) error {
	def := s.cat.Skill(id)
	if def == nil {
		return UnknownIDError{Kind: "skill", ID: id}
	}
	if !s.state.HasSkill(id) {
		return fmt.Errorf("skill '%s' is not learned", id)
	}

	if s.battle != nil && !s.battle.Over() {
		if err := s.battle.UseSkill(s.state, s.roll, *def); err != nil {
			return err
		}
		return s.settleIfOver(ctx)
	}

	if def.Effect.Kind != catalog.EffectHeal {
		return fmt.Errorf("%s can only be used in battle", def.Name)
	}
	if s.state.MP.Cur < def.MPCost {
		return InsufficientMPError{Skill: def.Name, Cost: def.MPCost, Have: s.state.MP.Cur}
	}
	s.state.MP.Add(-def.MPCost)
	s.state.HP.Add(effectMagnitude(def.Effect, s.state.Level, s.roll))
	s.dirty = true
	s.Save(ctx)
	return nil
}

// settleIfOver folds a finished session into persistent state and awaits the
// save, so a crash right after a battle cannot lose its outcome.
func (s *Service) settleIfOver(ctx context.Context) error {
	if s.battle == nil || !s.battle.Over() {
		return nil
	}
	won := s.battle.Phase == PhaseWon
	reward, err := s.battle.Settle(s.state)
	if err != nil {
		return err
	}
	if won {
		if item := s.state.MaybeDropLoot(s.roll, LearnFromChallenge); item != nil {
			s.battle.logf("You found: %s", item.Name)
		}
	}
	s.log.Info("battle finished", "won", won, "reward", reward)
	return s.SaveNow(ctx)
}

// EndBattle discards a finished session. The outcome was already settled.
func (s *Service) EndBattle() {
	if s.battle != nil && s.battle.Over() {
		s.battle = nil
	}
}

// Duel resolves a one-shot power-contest fight against a quest monster and
// awaits the save.
func (s *Service) Duel(ctx context.Context, questID string) (DuelResult, error) {
	if s.battle != nil && !s.battle.Over() {
		return DuelResult{}, ErrBattleActive
	}
	op := s.cat.Quest(questID)
	if op == nil {
		return DuelResult{}, UnknownIDError{Kind: "quest", ID: questID}
	}
	res := s.state.ResolveDuel(DuelOpponent{
		Name:    op.Name,
		Level:   op.Level,
		Reward:  op.Reward,
		Stamina: op.Stamina,
	}, s.roll)
	s.log.Info("duel resolved", "quest", questID, "won", res.Won, "damageTaken", res.DamageTaken)
	return res, s.SaveNow(ctx)
}

// UseItem consumes an inventory item by index.
func (s *Service) UseItem(ctx context.Context, idx int) (Item, error) {
	item, err := s.state.UseItem(idx)
	if err != nil {
		return Item{}, err
	}
	s.dirty = true
	s.Save(ctx)
	return item, nil
}

// ToggleEquip equips or unequips the armor at idx.
func (s *Service) ToggleEquip(ctx context.Context, idx int) error {
	if err := s.state.ToggleEquip(idx); err != nil {
		return err
	}
	s.dirty = true
	s.Save(ctx)
	return nil
}

// ResetAll discards all progress and persists a fresh default state.
func (s *Service) ResetAll(ctx context.Context) error {
	if err := s.store.Remove(ctx, storage.StateKey); err != nil {
		s.log.Warn("remove state failed", "err", err)
	}
	s.state = NewDefaultState(s.now())
	s.battle = nil
	s.log.Info("state reset")
	return s.SaveNow(ctx)
}
