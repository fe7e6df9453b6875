package engine

import (
	"fmt"
	"math"
)

// DuelResult is the resolved outcome of a one-shot power-contest fight.
type DuelResult struct {
	Won           bool
	OpponentName  string
	OpponentPower int
	PlayerPower   int
	Roll          int // -10..29
	Effective     int
	EnemyStrikes  int
	DamageTaken   int
	MPCost        int
	StaminaCost   int
	AbilityGain   int
	Log           []string
}

// ResolveDuel settles a fight in a single contested power roll instead of
// turns. The player wins when level*10 plus effective stats plus a d40-10
// roll meets the opponent's power; either way the opponent may land a number
// of strikes that shrinks with the player's VIT, current stamina, and the
// opponent's own fatigue. Mutates state in place.
func (s *PlayerState) ResolveDuel(op DuelOpponent, r Roller) DuelResult {
	eff := s.EffectiveStats()
	statsSum := 0
	for _, k := range StatKeys {
		statsSum += eff[k]
	}
	playerPower := s.Level*10 + statsSum

	opPower := op.Power
	if opPower <= 0 {
		if op.Level > 0 {
			opPower = op.Level * 10
		} else {
			opPower = 10
		}
	}

	roll := r.IntN(40) - 10
	effective := playerPower + roll

	// Stamina lends a small VIT bonus; both sides' fatigue cuts the number
	// of strikes the opponent gets in.
	effectiveVIT := max(0, eff["vit"]+s.Stamina.Cur/5)
	strikesBase := max(1, opPower/25)
	strikes := max(0, strikesBase-(effectiveVIT/10+op.Stamina/10))

	res := DuelResult{
		OpponentName:  op.Name,
		OpponentPower: opPower,
		PlayerPower:   playerPower,
		Roll:          roll,
		Effective:     effective,
	}
	res.Log = append(res.Log,
		fmt.Sprintf("You engage %s (Lv. %d, power %d)", op.Name, op.Level, opPower),
		fmt.Sprintf("Your effective power: %d (base %d, roll %d)", effective, playerPower, roll))

	if effective >= opPower {
		res.Won = true
		res.AbilityGain = op.Reward
		if res.AbilityGain <= 0 {
			res.AbilityGain = int(math.Ceil(float64(max(1, op.Level)) * 2))
		}
		s.Available += res.AbilityGain
		res.Log = append(res.Log, fmt.Sprintf("Victory! You defeated %s and earned %d Ability Points.", op.Name, res.AbilityGain))

		res.MPCost = int(math.Ceil(float64(opPower) / 8))
		s.MP.Add(-res.MPCost)
		res.StaminaCost = int(math.Ceil(float64(opPower) / 12))
		s.Stamina.Add(-res.StaminaCost)

		// Going down, the opponent still swings; damage scales off its
		// power less the player's raw STR.
		res.EnemyStrikes = strikes
		for i := 0; i < strikes; i++ {
			base := max(1, int(math.Ceil(float64(opPower-s.Stats["str"]*12/10)/6)))
			res.DamageTaken += base + r.IntN(max(1, opPower/20))
		}
		if res.DamageTaken > 0 {
			s.HP.Add(-res.DamageTaken)
			res.Log = append(res.Log, fmt.Sprintf("The %s landed %d strike(s) for %d total damage.", op.Name, strikes, res.DamageTaken))
		}
		res.Log = append(res.Log, fmt.Sprintf("Used %d MP.", res.MPCost))

		// Quick post-fight second wind.
		s.Stamina.Add(int(math.Ceil(float64(opPower) / 20)))
		return res
	}

	// Overpowered: the opponent always gets at least one strike, and they
	// hit harder.
	res.EnemyStrikes = max(1, strikes)
	for i := 0; i < res.EnemyStrikes; i++ {
		base := max(1, int(math.Ceil(float64(opPower-s.Stats["str"])/5)))
		res.DamageTaken += base + r.IntN(max(1, opPower/15))
	}
	s.HP.Add(-res.DamageTaken)

	res.MPCost = min(s.MP.Cur, int(math.Ceil(float64(opPower)/6)))
	s.MP.Add(-res.MPCost)
	res.Log = append(res.Log, fmt.Sprintf("Defeat. %s was too strong. It landed %d strike(s) for %d damage and you lost %d MP.",
		op.Name, res.EnemyStrikes, res.DamageTaken, res.MPCost))

	res.StaminaCost = int(math.Ceil(float64(opPower) / 12))
	s.Stamina.Add(-res.StaminaCost)
	return res
}

// DuelOpponent describes one side of a power-contest fight. Power wins over
// Level when both are set.
type DuelOpponent struct {
	Name    string
	Level   int
	Power   int
	Reward  int
	Stamina int
}
