package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overrideFile is the YAML shape accepted by LoadYAML. Any section left empty
// keeps the built-in table; daily/weekly sets are lists of challenge ids.
type overrideFile struct {
	Challenges []Challenge `yaml:"challenges"`
	Daily      []string    `yaml:"daily"`
	Weekly     []string    `yaml:"weekly"`
	Skills     []SkillDef  `yaml:"skills"`
	Quests     []Monster   `yaml:"quests"`
	Dungeons   []Dungeon   `yaml:"dungeons"`
}

// LoadYAML reads an override file and returns the default catalog with the
// present sections replaced.
func LoadYAML(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var f overrideFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	cat := Default()
	if len(f.Challenges) > 0 {
		cat.Challenges = f.Challenges
	}
	if len(f.Daily) > 0 {
		cat.DailySet = idSet(f.Daily)
	}
	if len(f.Weekly) > 0 {
		cat.WeeklySet = idSet(f.Weekly)
	}
	if len(f.Skills) > 0 {
		cat.Skills = f.Skills
	}
	if len(f.Quests) > 0 {
		cat.Quests = f.Quests
	}
	if len(f.Dungeons) > 0 {
		cat.Dungeons = f.Dungeons
	}
	return cat, nil
}

func idSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
