package engine

import (
	"reflect"
	"testing"
	"time"
)

func TestResourceCurves(t *testing.T) {
	if got := HPMax(1); got != 100 {
		t.Fatalf("HPMax(1)=%d, want 100", got)
	}
	if got := HPMax(5); got != 140 {
		t.Fatalf("HPMax(5)=%d, want 140", got)
	}
	if got := MPMax(1); got != 50 {
		t.Fatalf("MPMax(1)=%d, want 50", got)
	}
	if got := MPMax(11); got != 100 {
		t.Fatalf("MPMax(11)=%d, want 100", got)
	}
}

func TestXPToNextTierBumps(t *testing.T) {
	// Levels 1-5 share the 1.0 multiplier, level 6 jumps to 1.1.
	if got := XPToNext(1); got != 100 {
		t.Fatalf("XPToNext(1)=%d, want 100", got)
	}
	if got := XPToNext(5); got != 300 {
		t.Fatalf("XPToNext(5)=%d, want 300", got)
	}
	// 350*1.1 is 385.00000000000006 in float64, so the ceil lands on 386.
	if got := XPToNext(6); got != 386 {
		t.Fatalf("XPToNext(6)=%d, want 386", got)
	}
	if XPToNext(0) < 10 {
		t.Fatalf("XPToNext floor violated: %d", XPToNext(0))
	}
}

func TestGrantXPSplitEqualsCombined(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	a := NewDefaultState(now)
	b := NewDefaultState(now)

	// Crosses several level boundaries either way.
	a.GrantXP(137)
	a.GrantXP(2864)
	b.GrantXP(137 + 2864)

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("split and combined grants diverge:\n%+v\nvs\n%+v", a, b)
	}
}

func TestTieredRequirement(t *testing.T) {
	if got := TieredRequirement(25, 1); got != 25 {
		t.Fatalf("level 1: got %d, want 25", got)
	}
	if got := TieredRequirement(25, 6); got != 28 {
		t.Fatalf("level 6: got %d, want ceil(25*1.1)=28", got)
	}
	if got := TieredRequirement(25, 11); got != 30 {
		t.Fatalf("level 11: got %d, want 30", got)
	}
	if got := TieredRequirement(0, 50); got != 1 {
		t.Fatalf("floor: got %d, want 1", got)
	}
}

func TestGrantXPSingleLevel(t *testing.T) {
	s := NewDefaultState(time.Now())
	ups := s.GrantXP(150)
	if len(ups) != 1 || ups[0].Level != 2 {
		t.Fatalf("ups=%v, want one level-up to 2", ups)
	}
	if s.XP.Cur != 50 {
		t.Fatalf("XP.Cur=%d, want 50", s.XP.Cur)
	}
	if s.XP.ToNext != XPToNext(2) {
		t.Fatalf("XP.ToNext=%d, want %d", s.XP.ToNext, XPToNext(2))
	}
	if s.Stats["str"] != 32 {
		t.Fatalf("str=%d, want 30+floor(2*1.0)=32", s.Stats["str"])
	}
	if s.Available != 19 {
		t.Fatalf("available=%d, want 20-1=19", s.Available)
	}
	if s.HP.Max != HPMax(2) || s.MP.Max != MPMax(2) {
		t.Fatalf("maxima not recomputed: hp=%d mp=%d", s.HP.Max, s.MP.Max)
	}
}

func TestGrantXPMultipleBoundaries(t *testing.T) {
	s := NewDefaultState(time.Now())
	total := XPToNext(1) + XPToNext(2) + XPToNext(3) + 7
	ups := s.GrantXP(total)
	if len(ups) != 3 {
		t.Fatalf("got %d level-ups, want 3", len(ups))
	}
	for i, want := range []int{2, 3, 4} {
		if ups[i].Level != want {
			t.Fatalf("ups[%d].Level=%d, want %d", i, ups[i].Level, want)
		}
	}
	if s.Level != 4 || s.XP.Cur != 7 {
		t.Fatalf("level=%d cur=%d, want 4/7", s.Level, s.XP.Cur)
	}
	if s.XP.Cur >= s.XP.ToNext {
		t.Fatalf("invariant violated: cur %d >= toNext %d", s.XP.Cur, s.XP.ToNext)
	}
}

func TestGrantXPUnlocksFightingSkills(t *testing.T) {
	s := NewDefaultState(time.Now())
	if s.UnlockedCategories[CategoryFightingSkills] {
		t.Fatal("category should start locked")
	}
	total := 0
	for lv := 1; lv < 10; lv++ {
		total += XPToNext(lv)
	}
	s.GrantXP(total)
	if s.Level != 10 {
		t.Fatalf("level=%d, want 10", s.Level)
	}
	if !s.UnlockedCategories[CategoryFightingSkills] {
		t.Fatal("category should unlock at level 10")
	}
	if s.Title != "Rookie" {
		t.Fatalf("title=%q, want Rookie at level 10", s.Title)
	}
}

func TestTitleBands(t *testing.T) {
	cases := []struct {
		level int
		want  string
	}{
		{1, "Rookie"},
		{10, "Rookie"},
		{11, "Novice"},
		{45, "Veteran"},
		{100, "Elite"},
		{400, "Grandmaster"},
		{950, "Exalted"},
		{999, "Legendary"},
	}
	for _, c := range cases {
		if got := TitleForLevel(c.level); got != c.want {
			t.Fatalf("TitleForLevel(%d)=%q, want %q", c.level, got, c.want)
		}
	}
}

func TestWeeklyBonus(t *testing.T) {
	if got := WeeklyBonus(1); got != 0 {
		t.Fatalf("rank 0 bonus=%d, want 0", got)
	}
	if got := WeeklyBonus(11); got != 72 {
		t.Fatalf("rank 1 bonus=%d, want 72", got)
	}
	if got := WeeklyBonus(999); got != len(titleBands)*72 {
		t.Fatalf("legendary bonus=%d, want %d", got, len(titleBands)*72)
	}
}

func TestDailyTaskBands(t *testing.T) {
	if got := DailyTaskForLevel(5, 25); got.Amount != 25 || got.Activity != "jumping jacks" {
		t.Fatalf("level 5: %+v", got)
	}
	if got := DailyTaskForLevel(25, 25); got.Amount != 50 {
		t.Fatalf("level 25: %+v, want amount 50", got)
	}
	if got := DailyTaskForLevel(100, 25); got.Activity != "High knees" {
		t.Fatalf("level 100: %+v, want High knees", got)
	}
	if got := DailyTaskForLevel(700, 25); got.Activity != "Burpees" {
		t.Fatalf("level 700: %+v, want Burpees", got)
	}
	// The upgraded base flows through the default band.
	if got := DailyTaskForLevel(15, 50); got.Amount != TieredRequirement(50, 15) {
		t.Fatalf("level 15 upgraded: %+v", got)
	}
}

func TestWorkoutXP(t *testing.T) {
	if got := WorkoutXP(1); got != 5 {
		t.Fatalf("1m=%d, want floor 5", got)
	}
	if got := WorkoutXP(30); got != 60 {
		t.Fatalf("30m=%d, want 60", got)
	}
	if got := WorkoutXP(500); got != 200 {
		t.Fatalf("500m=%d, want cap 200", got)
	}
}

func TestAllocateStatsAllOrNothing(t *testing.T) {
	s := NewDefaultState(time.Now())
	s.Available = 5
	s.Stats["str"] = 10

	if err := s.AllocateStats(map[string]int{"str": 3, "vit": 3}); err == nil {
		t.Fatal("expected over-budget rejection")
	}
	if s.Stats["str"] != 10 || s.Available != 5 {
		t.Fatalf("rejected allocation mutated state: str=%d available=%d", s.Stats["str"], s.Available)
	}

	if err := s.AllocateStats(map[string]int{"luck": 1}); err == nil {
		t.Fatal("expected unknown stat rejection")
	}
	if err := s.AllocateStats(map[string]int{"str": -1}); err == nil {
		t.Fatal("expected negative delta rejection")
	}

	if err := s.AllocateStats(map[string]int{"str": 3, "vit": 2}); err != nil {
		t.Fatalf("exact spend should commit: %v", err)
	}
	if s.Stats["str"] != 13 || s.Available != 0 {
		t.Fatalf("commit wrong: str=%d available=%d", s.Stats["str"], s.Available)
	}
}
