package catalog

import (
	"fmt"
	"math"
	"strings"
)

// Quest and dungeon rosters are generated rather than hand-written so the
// lists can scale to hundreds of entries. Generation is deterministic: the
// same roster appears on every run, which keeps ids stable across sessions.

var questTemplates = []struct {
	Name string
	Tag  string
}{
	{"Wild Wolf", "wolf"},
	{"Bandit Scout", "bandit"},
	{"Orc Brute", "orc"},
	{"Goblin", "goblin"},
	{"Skeleton", "skeleton"},
	{"Dire Bear", "bear"},
	{"Stone Golem", "golem"},
	{"Dark Mage", "mage"},
	{"Rogue Assassin", "assassin"},
	{"Slime", "slime"},
}

// GenerateQuests builds count standalone opponents with levels that grow
// across the list.
func GenerateQuests(count int) []Monster {
	out := make([]Monster, 0, count)
	for i := 0; i < count; i++ {
		t := questTemplates[i%len(questTemplates)]
		name := t.Name
		if series := i / len(questTemplates); series > 0 {
			name = fmt.Sprintf("%s %d", t.Name, series+1)
		}
		level := max(1, int(math.Round(1+float64(i)*0.25))+i%3)
		out = append(out, Monster{
			ID:      fmt.Sprintf("q%d", i+1),
			Name:    name,
			Level:   level,
			Reward:  max(5, level*10+i%7),
			Stamina: max(3, int(math.Round(float64(level)*1.2))),
			Type:    t.Tag,
		})
	}
	return out
}

var dungeonNames = []string{
	"Forsaken Ruins", "Shadow Keep", "Mossy Cavern", "Blight Hollow",
	"Crimson Vault", "Frostfell Lair", "Sundered Mines", "Obsidian Deep",
	"Sunken Temple", "Iron Bastion", "Gloomfen", "Thunder Reach", "Ember Maw",
	"Silent Halls", "Whispering Tunnels", "Grim Passage", "Twisted Grove",
	"Ancient Sepulcher", "Stormwatch", "Verdant Hollow",
}

var monsterTemplates = []string{
	"Wolf", "Bandit", "Orc", "Goblin", "Skeleton", "Bear", "Golem", "Mage",
	"Assassin", "Slime", "Spider", "Wraith", "Elemental", "Cultist",
	"Berserker", "Drake", "Troll", "Ghoul", "Imp", "Knight",
}

// GenerateDungeons builds count dungeons of perDungeon monsters each, with
// difficulty rising across the list.
func GenerateDungeons(count, perDungeon int) []Dungeon {
	out := make([]Dungeon, 0, count)
	for i := 0; i < count; i++ {
		id := fmt.Sprintf("d%d", i+1)
		difficulty := max(1, 1+int(float64(i)*0.6))
		monsters := make([]Monster, 0, perDungeon)
		for m := 0; m < perDungeon; m++ {
			t := monsterTemplates[(i+m)%len(monsterTemplates)]
			level := max(1, difficulty+m%5-1+m%3)
			monsters = append(monsters, Monster{
				ID:      fmt.Sprintf("%s-m%d", id, m+1),
				Name:    fmt.Sprintf("%s %d", t, m+1),
				Level:   level,
				Reward:  max(5, level*8+m%7),
				Stamina: max(10, int(math.Round(float64(level)*1.2))),
				Type:    strings.ToLower(t),
			})
		}
		out = append(out, Dungeon{ID: id, Name: dungeonNames[i%len(dungeonNames)], Difficulty: difficulty, Monsters: monsters})
	}
	return out
}

var endgameNames = []string{
	"Abyssal Depths", "Eternal Spire", "Void Citadel", "Celestial Rift",
	"Oblivion Gate", "Titanforge", "Nexus of Sorrow", "Shattered Throne",
	"Eclipse Bastion", "Crown of Ash",
}

// GenerateEndgameDungeons scales monster levels linearly from 100 up to
// maxLevel across the series.
func GenerateEndgameDungeons(count, perDungeon, maxLevel int) []Dungeon {
	const minStart = 100
	out := make([]Dungeon, 0, count)
	for i := 0; i < count; i++ {
		id := fmt.Sprintf("eg%d", i+1)
		name := endgameNames[i%len(endgameNames)]
		if i > 0 {
			name = fmt.Sprintf("%s %d", name, i+1)
		}
		baseLevel := minStart
		if count > 1 {
			baseLevel = minStart + i*(maxLevel-minStart)/(count-1)
		}
		monsters := make([]Monster, 0, perDungeon)
		for m := 0; m < perDungeon; m++ {
			level := baseLevel + m - perDungeon/2
			level = min(maxLevel, max(1, level))
			monsters = append(monsters, Monster{
				ID:      fmt.Sprintf("%s-m%d", id, m+1),
				Name:    fmt.Sprintf("Abyssal %d", m+1),
				Level:   level,
				Reward:  max(50, level*12),
				Stamina: max(20, int(math.Round(float64(level)*1.2))),
				Type:    "abyssal",
			})
		}
		out = append(out, Dungeon{ID: id, Name: name, Difficulty: baseLevel, Monsters: monsters})
	}
	return out
}

func defaultDungeons() []Dungeon {
	return append(GenerateDungeons(20, 20), GenerateEndgameDungeons(10, 20, 999)...)
}
