package engine

import (
	"fmt"
	"math"

	"github.com/onemoresn/FightersQuest/internal/catalog"
)

// Learn contexts, with their skill-drop chance.
const (
	LearnFromTask      = "task"      // 8%
	LearnFromChallenge = "challenge" // 30%
)

// HasSkill reports whether a skill id is already learned.
func (s *PlayerState) HasSkill(id string) bool {
	for _, sk := range s.Skills {
		if sk.ID == id {
			return true
		}
	}
	return false
}

// LearnSkill adds a skill from its definition; duplicates are ignored.
func (s *PlayerState) LearnSkill(def catalog.SkillDef) bool {
	if def.ID == "" || s.HasSkill(def.ID) {
		return false
	}
	s.Skills = append(s.Skills, Skill{
		ID:     def.ID,
		Name:   def.Name,
		Type:   def.Type,
		Desc:   def.Desc,
		Rarity: def.Rarity,
		MPCost: def.MPCost,
	})
	return true
}

// RollLearnSkill may teach a new skill after a task or challenge completion.
// Challenges roll at 30%, tasks at 8%; a second roll weights rarity so epics
// stay rare. Already-learned picks are dropped, not rerolled.
func RollLearnSkill(r Roller, context string, pool []catalog.SkillDef, s *PlayerState) *catalog.SkillDef {
	chance := 0.08
	if context == LearnFromChallenge {
		chance = 0.30
	}
	if r.Float64() > chance {
		return nil
	}

	roll := r.Float64()
	filtered := pool
	switch {
	case roll < 0.05:
		filtered = filterRarity(pool, func(rar string) bool { return rar == "epic" })
	case roll < 0.25:
		filtered = filterRarity(pool, func(rar string) bool { return rar != "common" })
	}
	if len(filtered) == 0 {
		filtered = pool
	}
	if len(filtered) == 0 {
		return nil
	}
	pick := filtered[r.IntN(len(filtered))]
	if !s.LearnSkill(pick) {
		return nil
	}
	return &pick
}

func filterRarity(pool []catalog.SkillDef, keep func(string) bool) []catalog.SkillDef {
	var out []catalog.SkillDef
	for _, def := range pool {
		if keep(def.Rarity) {
			out = append(out, def)
		}
	}
	return out
}

// InsufficientMPError rejects a skill the player cannot pay for; no state
// changes when it is returned.
type InsufficientMPError struct {
	Skill string
	Cost  int
	Have  int
}

func (e InsufficientMPError) Error() string {
	return fmt.Sprintf("not enough MP for %s: need %d, have %d", e.Skill, e.Cost, e.Have)
}

// effectMagnitude evaluates a damage/heal descriptor at a player level.
func effectMagnitude(eff catalog.Effect, level int, r Roller) int {
	v := float64(eff.Base) + eff.PerLevel*float64(clampLevel(level))
	if eff.Variance > 0 {
		v += r.Float64() * float64(eff.Variance)
	}
	n := int(math.Round(v))
	if n < 1 {
		n = 1
	}
	return n
}
