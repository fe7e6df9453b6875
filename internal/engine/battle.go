package engine

import (
	"fmt"
	"math"

	"github.com/onemoresn/FightersQuest/internal/catalog"
)

// BattlePhase is the battle session lifecycle. Sessions are transient: once
// Won or Lost they are settled into persistent state and discarded.
type BattlePhase int

const (
	PhaseNotStarted BattlePhase = iota
	PhaseInProgress
	PhaseWon
	PhaseLost
)

// Enemy is the opponent's combat snapshot, generated fresh from a template
// at battle start and never shared with persistent state.
type Enemy struct {
	ID    string
	Name  string
	Level int
	HP    Resource
	MP    Resource
	Stam  Resource
	STR   int
	VIT   int
}

// Combatant is the player's in-battle resource copy. Turns mutate this copy;
// persistent state only changes when the session settles.
type Combatant struct {
	HP   Resource
	MP   Resource
	Stam Resource
}

// Buff is a temporary stat modifier, decremented once per enemy turn.
type Buff struct {
	Key   string
	Val   int
	Turns int
}

// BattleSession is the turn-based combat state machine.
type BattleSession struct {
	Opponent  catalog.Monster
	Enemy     Enemy
	Player    Combatant
	Phase     BattlePhase
	Defending bool // halves the next incoming hit, cleared each enemy turn
	Buffs     []Buff
	Barrier   int // remaining damage-reduction charges
	Log       []string
}

// NewBattleSession derives the enemy from its template and snapshots the
// player's resources by value.
func NewBattleSession(op catalog.Monster, st *PlayerState) *BattleSession {
	lv := op.Level
	if lv < 1 {
		lv = 1
	}
	hpMax := max(24, lv*30)
	mpMax := max(8, lv*3)
	return &BattleSession{
		Opponent: op,
		Enemy: Enemy{
			ID:    op.ID,
			Name:  op.Name,
			Level: lv,
			HP:    Resource{Cur: hpMax, Max: hpMax},
			MP:    Resource{Cur: mpMax, Max: mpMax},
			Stam:  Resource{Cur: StaminaMax, Max: StaminaMax},
			STR:   max(1, lv*12/10),
			VIT:   max(1, lv),
		},
		Player: Combatant{HP: st.HP, MP: st.MP, Stam: st.Stamina},
		Phase:  PhaseInProgress,
	}
}

func (b *BattleSession) logf(format string, args ...any) {
	b.Log = append(b.Log, fmt.Sprintf(format, args...))
}

// Over reports whether the session reached a terminal phase.
func (b *BattleSession) Over() bool {
	return b.Phase == PhaseWon || b.Phase == PhaseLost
}

func (b *BattleSession) buffBonus(key string) int {
	total := 0
	for _, buf := range b.Buffs {
		if buf.Key == key {
			total += buf.Val
		}
	}
	return total
}

// Attack resolves a player basic attack. Damage floors at 1. A killing blow
// wins immediately with no enemy counter-turn; otherwise a small MP cost is
// paid and the enemy takes its turn.
func (b *BattleSession) Attack(st *PlayerState, r Roller) error {
	if b.Phase != PhaseInProgress {
		return fmt.Errorf("battle is not in progress")
	}
	effStr := st.EffectiveStat("str") + b.buffBonus("str")
	base := int(math.Round(float64(effStr)*1.1 + float64(st.Level)*1.5))
	if base < 1 {
		base = 1
	}
	variance := r.IntN(max(1, b.Enemy.Level*7/10))
	dmg := base + variance - b.Enemy.VIT/2
	if dmg < 1 {
		dmg = 1
	}
	b.Enemy.HP.Add(-dmg)
	b.logf("You attack for %d damage.", dmg)
	if b.Enemy.HP.Cur <= 0 {
		b.Phase = PhaseWon
		return nil
	}

	mpCost := min(b.Player.MP.Cur, b.Enemy.Level)
	b.Player.MP.Add(-mpCost)
	b.logf("You used %d MP.", mpCost)

	b.enemyTurn(st, r)
	return nil
}

// Defend braces for the next hit (halved) and yields the turn.
func (b *BattleSession) Defend(st *PlayerState, r Roller) error {
	if b.Phase != PhaseInProgress {
		return fmt.Errorf("battle is not in progress")
	}
	b.Defending = true
	b.logf("You brace for the next attack.")
	b.enemyTurn(st, r)
	return nil
}

// UseSkill pays the skill's MP cost from the session copy and applies its
// effect. Insufficient MP rejects with no state change. Skills do not yield
// the turn; a lethal damage skill wins without a counter-attack.
func (b *BattleSession) UseSkill(st *PlayerState, r Roller, def catalog.SkillDef) error {
	if b.Phase != PhaseInProgress {
		return fmt.Errorf("battle is not in progress")
	}
	if b.Player.MP.Cur < def.MPCost {
		return InsufficientMPError{Skill: def.Name, Cost: def.MPCost, Have: b.Player.MP.Cur}
	}
	b.Player.MP.Add(-def.MPCost)

	switch def.Effect.Kind {
	case catalog.EffectDamage:
		dmg := effectMagnitude(def.Effect, st.Level, r)
		b.Enemy.HP.Add(-dmg)
		b.logf("You cast %s for %d damage.", def.Name, dmg)
		if b.Enemy.HP.Cur <= 0 {
			b.Phase = PhaseWon
		}
	case catalog.EffectHeal:
		heal := effectMagnitude(def.Effect, st.Level, r)
		applied := b.Player.HP.Add(heal)
		b.logf("You cast %s and restored %d HP.", def.Name, applied)
	case catalog.EffectBarrier:
		charges := def.Effect.Amount
		if charges < 1 {
			charges = 1
		}
		b.Barrier += charges
		b.logf("You cast %s; incoming damage will be reduced.", def.Name)
	case catalog.EffectBuff:
		b.Buffs = append(b.Buffs, Buff{Key: def.Effect.Stat, Val: def.Effect.Amount, Turns: def.Effect.Turns})
		b.logf("You cast %s; %s increased for %d turns.", def.Name, def.Effect.Stat, def.Effect.Turns)
	default:
		b.logf("You used %s.", def.Name)
	}
	return nil
}

// enemyTurn resolves the enemy attack: defending halves, a barrier charge
// halves again (consumed), effective VIT shaves the rest, floored at 0.
// Buff counters tick down afterwards.
func (b *BattleSession) enemyTurn(st *PlayerState, r Roller) {
	effStr := st.EffectiveStat("str")
	base := int(math.Ceil(float64(b.Enemy.Level*10-effStr*8/10) / 6))
	if base < 1 {
		base = 1
	}
	variance := r.IntN(max(1, b.Enemy.Level*10/12))
	dmg := base + variance
	if b.Defending {
		dmg /= 2
	}
	if b.Barrier > 0 {
		dmg /= 2
		b.Barrier--
		b.logf("Your barrier absorbed some damage.")
	}
	dmg -= st.EffectiveStat("vit") / 6
	if dmg < 0 {
		dmg = 0
	}
	b.Player.HP.Add(-dmg)
	b.logf("%s hits you for %d damage.", b.Enemy.Name, dmg)

	drain := min(b.Player.Stam.Cur, (b.Enemy.Level+1)/2)
	b.Player.Stam.Add(-drain)
	if drain > 0 {
		b.logf("You lost %d STA.", drain)
	}
	b.Defending = false

	if b.Player.HP.Cur <= 0 {
		b.Phase = PhaseLost
	}

	kept := b.Buffs[:0]
	for _, buf := range b.Buffs {
		buf.Turns--
		if buf.Turns > 0 {
			kept = append(kept, buf)
		} else {
			b.logf("Your %s buff has expired.", buf.Key)
		}
	}
	b.Buffs = kept
}

// Settle folds the finished session back into persistent state and returns
// the ability-point reward (zero on defeat). Victories never grant XP; the
// only combat currency is ability points.
func (b *BattleSession) Settle(st *PlayerState) (int, error) {
	switch b.Phase {
	case PhaseWon:
		reward := b.Opponent.Reward
		if reward <= 0 {
			reward = b.Enemy.Level * 2
		}
		b.logf("Victory! You defeated %s and earned %d Ability Points.", b.Enemy.Name, reward)

		// Session maxima can drift from persistent maxima if a level-up
		// landed mid-battle; clamp against the persistent ones.
		st.HP.Cur = b.Player.HP.Cur
		st.HP.Clamp()
		st.MP.Cur = b.Player.MP.Cur
		st.MP.Clamp()
		st.Stamina.Cur = b.Player.Stam.Cur + (b.Enemy.Level+1)/2
		st.Stamina.Clamp()

		upkeep := int(math.Ceil(float64(b.Enemy.Level*10) / 8))
		st.MP.Add(-upkeep)
		st.Available += reward
		return reward, nil
	case PhaseLost:
		b.logf("Defeat... %s bested you.", b.Enemy.Name)
		st.HP.Cur = b.Player.HP.Cur
		st.HP.Clamp()
		st.MP.Cur = b.Player.MP.Cur
		st.MP.Clamp()
		penalty := int(math.Ceil(float64(b.Enemy.Level*10) / 12))
		st.Stamina.Add(-penalty)
		return 0, nil
	default:
		return 0, fmt.Errorf("battle is still in progress")
	}
}
