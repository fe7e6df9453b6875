package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/onemoresn/FightersQuest/internal/catalog"
)

func battleFixture() (*PlayerState, *BattleSession) {
	s := NewDefaultState(time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC))
	s.Level = 3
	s.Stats = map[string]int{"str": 10, "agi": 5, "per": 5, "vit": 6, "int": 5}
	op := catalog.Monster{ID: "q1", Name: "Gnoll", Level: 2, Reward: 7}
	return s, NewBattleSession(op, s)
}

func TestNewBattleSessionDerivation(t *testing.T) {
	_, b := battleFixture()
	if b.Enemy.HP.Max != 60 || b.Enemy.HP.Cur != 60 {
		t.Fatalf("enemy HP %d/%d, want 60/60", b.Enemy.HP.Cur, b.Enemy.HP.Max)
	}
	if b.Enemy.MP.Max != 8 {
		t.Fatalf("enemy MP max=%d, want floor(8) with floor 8", b.Enemy.MP.Max)
	}
	if b.Enemy.STR != 2 || b.Enemy.VIT != 2 {
		t.Fatalf("enemy stats str=%d vit=%d, want 2/2", b.Enemy.STR, b.Enemy.VIT)
	}
	if b.Phase != PhaseInProgress {
		t.Fatalf("phase=%v, want in progress", b.Phase)
	}
}

func TestBattleSessionCopiesResources(t *testing.T) {
	s, b := battleFixture()
	b.Player.HP.Cur = 1
	if s.HP.Cur == 1 {
		t.Fatal("session mutated persistent HP")
	}
}

func TestAttackExchange(t *testing.T) {
	s, b := battleFixture()
	r := &fixedRoller{ints: []int{0, 0}}

	if err := b.Attack(s, r); err != nil {
		t.Fatalf("attack: %v", err)
	}
	// Player hit: round(10*1.1 + 3*1.5)=16, minus vit/2=1 -> 15.
	if got := b.Enemy.HP.Cur; got != 45 {
		t.Fatalf("enemy HP=%d, want 45", got)
	}
	// Attack MP cost equals enemy level.
	if got := b.Player.MP.Cur; got != s.MP.Max-2 {
		t.Fatalf("player MP=%d, want %d", got, s.MP.Max-2)
	}
	// Counter-hit: max(1,ceil((20-8)/6))=2, minus vit/6=1 -> 1.
	if got := b.Player.HP.Cur; got != s.HP.Max-1 {
		t.Fatalf("player HP=%d, want %d", got, s.HP.Max-1)
	}
	// Stamina drain ceil(2/2)=1.
	if got := b.Player.Stam.Cur; got != StaminaMax-1 {
		t.Fatalf("player stamina=%d, want %d", got, StaminaMax-1)
	}
}

func TestKillingBlowSkipsCounterTurn(t *testing.T) {
	s, b := battleFixture()
	b.Enemy.HP.Cur = 5
	hp := b.Player.HP.Cur
	mp := b.Player.MP.Cur

	if err := b.Attack(s, &fixedRoller{}); err != nil {
		t.Fatalf("attack: %v", err)
	}
	if b.Phase != PhaseWon {
		t.Fatalf("phase=%v, want won", b.Phase)
	}
	if b.Player.HP.Cur != hp || b.Player.MP.Cur != mp {
		t.Fatal("killing blow must not cost MP or trigger a counter-turn")
	}
	if err := b.Attack(s, &fixedRoller{}); err == nil {
		t.Fatal("acting on a finished battle must fail")
	}
}

func TestDefendHalvesDamage(t *testing.T) {
	s, b := battleFixture()
	if err := b.Defend(s, &fixedRoller{}); err != nil {
		t.Fatalf("defend: %v", err)
	}
	// Incoming 2 halved to 1, minus vit/6=1 -> 0.
	if got := b.Player.HP.Cur; got != s.HP.Max {
		t.Fatalf("player HP=%d, want untouched %d", got, s.HP.Max)
	}
	if b.Defending {
		t.Fatal("defending flag must clear after the enemy turn")
	}
}

func TestSkillDamageAndMPGate(t *testing.T) {
	s, b := battleFixture()
	fireball := catalog.SkillDef{
		ID: "s_fireball", Name: "Fireball", MPCost: 6,
		Effect: catalog.Effect{Kind: catalog.EffectDamage, Base: 10, PerLevel: 2},
	}

	b.Player.MP.Cur = 5
	err := b.UseSkill(s, &fixedRoller{}, fireball)
	var mpErr InsufficientMPError
	if !errors.As(err, &mpErr) {
		t.Fatalf("err=%v, want InsufficientMPError", err)
	}
	if b.Enemy.HP.Cur != b.Enemy.HP.Max || b.Player.MP.Cur != 5 {
		t.Fatal("rejected skill changed state")
	}

	b.Player.MP.Cur = 10
	if err := b.UseSkill(s, &fixedRoller{}, fireball); err != nil {
		t.Fatalf("use skill: %v", err)
	}
	// magnitude = round(10 + 2*3) = 16, no variance.
	if got := b.Enemy.HP.Cur; got != b.Enemy.HP.Max-16 {
		t.Fatalf("enemy HP=%d, want %d", got, b.Enemy.HP.Max-16)
	}
	if b.Player.MP.Cur != 4 {
		t.Fatalf("player MP=%d, want 4", b.Player.MP.Cur)
	}
	if b.Phase != PhaseInProgress {
		t.Fatal("skills must not yield the turn")
	}
}

func TestBuffExpiresAfterEnemyTurns(t *testing.T) {
	s, b := battleFixture()
	berserk := catalog.SkillDef{
		ID: "s_berserk", Name: "Berserk", MPCost: 0,
		Effect: catalog.Effect{Kind: catalog.EffectBuff, Stat: "str", Amount: 5, Turns: 2},
	}
	if err := b.UseSkill(s, &fixedRoller{}, berserk); err != nil {
		t.Fatalf("buff: %v", err)
	}
	if b.buffBonus("str") != 5 {
		t.Fatalf("buff bonus=%d, want 5", b.buffBonus("str"))
	}

	// str 10+5 -> attack base round(15*1.1+4.5)=21, minus 1 -> 20.
	if err := b.Attack(s, &fixedRoller{}); err != nil {
		t.Fatalf("attack: %v", err)
	}
	if got := b.Enemy.HP.Max - b.Enemy.HP.Cur; got != 20 {
		t.Fatalf("buffed damage=%d, want 20", got)
	}

	if err := b.Defend(s, &fixedRoller{}); err != nil {
		t.Fatalf("defend: %v", err)
	}
	if b.buffBonus("str") != 0 {
		t.Fatal("buff should expire after two enemy turns")
	}
}

func TestBarrierAbsorbsOneHit(t *testing.T) {
	s, b := battleFixture()
	b.Barrier = 1
	s.Stats["vit"] = 0 // isolate the halving

	if err := b.Defend(s, &fixedRoller{}); err != nil {
		t.Fatalf("defend: %v", err)
	}
	// 2 halved by defend -> 1, halved by barrier -> 0.
	if got := b.Player.HP.Cur; got != s.HP.Max {
		t.Fatalf("player HP=%d, want untouched", got)
	}
	if b.Barrier != 0 {
		t.Fatalf("barrier=%d, want consumed", b.Barrier)
	}
}

func TestSettleVictory(t *testing.T) {
	s, b := battleFixture()
	b.Enemy.HP.Cur = 1
	if err := b.Attack(s, &fixedRoller{}); err != nil {
		t.Fatalf("attack: %v", err)
	}
	availableBefore := s.Available

	b.Player.HP.Cur = 40
	b.Player.MP.Cur = 30
	b.Player.Stam.Cur = 50
	reward, err := b.Settle(s)
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	if reward != 7 {
		t.Fatalf("reward=%d, want template reward 7", reward)
	}
	if s.Available != availableBefore+7 {
		t.Fatalf("available=%d, want +7", s.Available)
	}
	if s.HP.Cur != 40 {
		t.Fatalf("HP=%d, want reconciled 40", s.HP.Cur)
	}
	// MP 30 minus upkeep ceil(20/8)=3.
	if s.MP.Cur != 27 {
		t.Fatalf("MP=%d, want 27", s.MP.Cur)
	}
	// Stamina 50 plus victory regain ceil(2/2)=1.
	if s.Stamina.Cur != 51 {
		t.Fatalf("stamina=%d, want 51", s.Stamina.Cur)
	}
}

func TestSettleDefeat(t *testing.T) {
	s, b := battleFixture()
	b.Phase = PhaseLost
	b.Player.HP.Cur = 0
	b.Player.MP.Cur = 12
	s.Stamina.Cur = 40

	reward, err := b.Settle(s)
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	if reward != 0 {
		t.Fatalf("reward=%d, want 0 on defeat", reward)
	}
	if s.HP.Cur != 0 || s.MP.Cur != 12 {
		t.Fatalf("resources %d/%d, want 0/12", s.HP.Cur, s.MP.Cur)
	}
	// Exhaustion penalty ceil(20/12)=2.
	if s.Stamina.Cur != 38 {
		t.Fatalf("stamina=%d, want 38", s.Stamina.Cur)
	}
}

func TestSettleInProgressFails(t *testing.T) {
	s, b := battleFixture()
	if _, err := b.Settle(s); err == nil {
		t.Fatal("settling an unfinished battle must fail")
	}
}

func TestDefaultRewardFromLevel(t *testing.T) {
	s := NewDefaultState(time.Now())
	b := NewBattleSession(catalog.Monster{ID: "q", Name: "Slime", Level: 4}, s)
	b.Phase = PhaseWon
	reward, err := b.Settle(s)
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	if reward != 8 {
		t.Fatalf("reward=%d, want level*2=8", reward)
	}
}
