package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogShape(t *testing.T) {
	cat := Default()

	assert.Len(t, cat.Challenges, 34)
	assert.Len(t, cat.Skills, 6)
	assert.Len(t, cat.Quests, 100)
	assert.Len(t, cat.Dungeons, 30, "20 regular + 10 endgame dungeons")

	for id := range cat.DailySet {
		require.NotNil(t, cat.Challenge(id), "daily set id %s must exist", id)
	}
	for id := range cat.WeeklySet {
		require.NotNil(t, cat.Challenge(id), "weekly set id %s must exist", id)
	}
}

func TestChallengeIDsUnique(t *testing.T) {
	cat := Default()
	seen := map[string]bool{}
	for _, ch := range cat.Challenges {
		assert.False(t, seen[ch.ID], "duplicate challenge id %s", ch.ID)
		seen[ch.ID] = true
	}
}

func TestLookups(t *testing.T) {
	cat := Default()

	ch := cat.Challenge("c1")
	require.NotNil(t, ch)
	assert.Equal(t, 60, ch.XP)
	assert.Nil(t, cat.Challenge("zzz"))

	sk := cat.Skill("s_fireball")
	require.NotNil(t, sk)
	assert.Equal(t, EffectDamage, sk.Effect.Kind)
	assert.Nil(t, cat.Skill("zzz"))

	require.NotEmpty(t, cat.Quests)
	q := cat.Quest(cat.Quests[0].ID)
	require.NotNil(t, q)

	// Dungeon monsters resolve through the same lookup.
	require.NotEmpty(t, cat.Dungeons)
	require.NotEmpty(t, cat.Dungeons[0].Monsters)
	dm := cat.Quest(cat.Dungeons[0].Monsters[0].ID)
	require.NotNil(t, dm)
}

func TestCategoriesStableOrder(t *testing.T) {
	cat := Default()
	cats := cat.Categories()
	require.NotEmpty(t, cats)
	assert.Equal(t, "Strength", cats[0], "first-seen order starts with Strength")
	seen := map[string]bool{}
	for _, c := range cats {
		assert.False(t, seen[c], "duplicate category %s", c)
		seen[c] = true
	}
}

func TestGenerateQuestsDeterministic(t *testing.T) {
	a := GenerateQuests(10)
	b := GenerateQuests(10)
	assert.Equal(t, a, b, "generation must be deterministic")

	for _, q := range a {
		assert.GreaterOrEqual(t, q.Level, 1)
		assert.GreaterOrEqual(t, q.Reward, 5)
		assert.GreaterOrEqual(t, q.Stamina, 3)
	}
}

func TestGenerateEndgameDungeonsScaleUp(t *testing.T) {
	dungeons := GenerateEndgameDungeons(10, 5, 999)
	require.Len(t, dungeons, 10)

	assert.Equal(t, 100, dungeons[0].Difficulty, "series starts at level 100")
	assert.Equal(t, 999, dungeons[len(dungeons)-1].Difficulty, "series ends at the cap")
	for _, d := range dungeons {
		for _, m := range d.Monsters {
			assert.LessOrEqual(t, m.Level, 999)
			assert.GreaterOrEqual(t, m.Level, 1)
		}
	}
}

func TestLoadYAMLOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := `
challenges:
  - id: x1
    label: "10 burpees"
    type: burpees
    amount: 10
    xp: 15
    category: Strength
daily:
  - x1
skills:
  - id: s_test
    name: Test Bolt
    type: magic
    rarity: common
    mpCost: 3
    effect:
      kind: damage
      base: 5
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cat, err := LoadYAML(path)
	require.NoError(t, err)

	require.Len(t, cat.Challenges, 1)
	assert.Equal(t, "x1", cat.Challenges[0].ID)
	assert.True(t, cat.DailySet["x1"])
	assert.False(t, cat.DailySet["c1"], "daily override replaces the set")

	require.Len(t, cat.Skills, 1)
	assert.Equal(t, 3, cat.Skills[0].MPCost)

	// Untouched sections keep the defaults.
	assert.Len(t, cat.Quests, 100)
	assert.Equal(t, map[string]bool{"c2": true, "c3": true}, cat.WeeklySet)
}

func TestLoadYAMLMissingFile(t *testing.T) {
	_, err := LoadYAML(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
