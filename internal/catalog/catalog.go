// Package catalog holds the static content tables the engine consumes:
// challenge definitions, the learnable skill pool and generated quest and
// dungeon rosters. The engine takes a *Catalog as injected configuration and
// never hard-codes content, so tables can be swapped (see LoadYAML) without
// touching game logic.
package catalog

// Challenge is a one-off or recurring exercise goal worth XP.
type Challenge struct {
	ID       string `yaml:"id"`
	Label    string `yaml:"label"`
	Type     string `yaml:"type"`
	Amount   int    `yaml:"amount"`
	XP       int    `yaml:"xp"`
	Category string `yaml:"category"`
}

// EffectKind tags what a skill effect does when applied.
type EffectKind string

const (
	EffectDamage  EffectKind = "damage"
	EffectHeal    EffectKind = "heal"
	EffectBarrier EffectKind = "barrier"
	EffectBuff    EffectKind = "buff"
)

// Effect is a data-only skill effect descriptor. One generic routine in the
// engine interprets these; adding a skill needs no new code path.
type Effect struct {
	Kind     EffectKind `yaml:"kind"`
	Base     int        `yaml:"base,omitempty"`     // flat magnitude
	PerLevel float64    `yaml:"perLevel,omitempty"` // scales with player level
	Variance int        `yaml:"variance,omitempty"` // random extra in [0,variance)
	Stat     string     `yaml:"stat,omitempty"`     // buff target stat key
	Amount   int        `yaml:"amount,omitempty"`   // buff magnitude
	Turns    int        `yaml:"turns,omitempty"`    // buff duration in enemy turns
}

// SkillDef is a learnable skill template.
type SkillDef struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Type   string `yaml:"type"` // "magic" or "skill"
	Desc   string `yaml:"desc"`
	Rarity string `yaml:"rarity"` // common, rare, epic
	MPCost int    `yaml:"mpCost"`
	Effect Effect `yaml:"effect"`
}

// Monster is an opponent template. Quests are standalone monsters; dungeons
// group them.
type Monster struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Level   int    `yaml:"level"`
	Reward  int    `yaml:"reward"`  // ability points on victory
	Stamina int    `yaml:"stamina"` // stamina cost to engage
	Type    string `yaml:"type"`
}

// Dungeon is a named set of monsters with a difficulty rating.
type Dungeon struct {
	ID         string    `yaml:"id"`
	Name       string    `yaml:"name"`
	Difficulty int       `yaml:"difficulty"`
	Monsters   []Monster `yaml:"monsters"`
}

// Catalog is the full injected content set.
type Catalog struct {
	Challenges []Challenge     `yaml:"challenges"`
	DailySet   map[string]bool `yaml:"-"` // challenge ids that expire daily
	WeeklySet  map[string]bool `yaml:"-"` // challenge ids that expire weekly
	Skills     []SkillDef      `yaml:"skills"`
	Quests     []Monster       `yaml:"quests"`
	Dungeons   []Dungeon       `yaml:"dungeons"`
}

// Challenge returns the challenge with the given id, or nil.
func (c *Catalog) Challenge(id string) *Challenge {
	for i := range c.Challenges {
		if c.Challenges[i].ID == id {
			return &c.Challenges[i]
		}
	}
	return nil
}

// Skill returns the skill definition with the given id, or nil.
func (c *Catalog) Skill(id string) *SkillDef {
	for i := range c.Skills {
		if c.Skills[i].ID == id {
			return &c.Skills[i]
		}
	}
	return nil
}

// Quest returns the quest monster with the given id, searching dungeons too.
func (c *Catalog) Quest(id string) *Monster {
	for i := range c.Quests {
		if c.Quests[i].ID == id {
			return &c.Quests[i]
		}
	}
	for d := range c.Dungeons {
		for m := range c.Dungeons[d].Monsters {
			if c.Dungeons[d].Monsters[m].ID == id {
				return &c.Dungeons[d].Monsters[m]
			}
		}
	}
	return nil
}

// Categories returns challenge categories in stable first-seen order.
func (c *Catalog) Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, ch := range c.Challenges {
		if !seen[ch.Category] {
			seen[ch.Category] = true
			out = append(out, ch.Category)
		}
	}
	return out
}

// Default builds the shipped catalog.
func Default() *Catalog {
	return &Catalog{
		Challenges: defaultChallenges(),
		DailySet:   map[string]bool{"c1": true, "c4": true, "c32": true, "c33": true},
		WeeklySet:  map[string]bool{"c2": true, "c3": true},
		Skills:     defaultSkills(),
		Quests:     GenerateQuests(100),
		Dungeons:   defaultDungeons(),
	}
}
