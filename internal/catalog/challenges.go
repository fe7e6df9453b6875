package catalog

func defaultChallenges() []Challenge {
	return []Challenge{
		// Strength
		{ID: "c1", Label: "50 push-ups (Complete Today)", Type: "pushups", Amount: 50, XP: 60, Category: "Strength"},
		{ID: "c2", Label: "100 push-ups (Complete This Week)", Type: "pushups", Amount: 100, XP: 120, Category: "Strength"},
		{ID: "c3", Label: "150 push-ups (Complete This Week)", Type: "pushups", Amount: 150, XP: 200, Category: "Strength"},
		{ID: "c4", Label: "50 sit-ups (Complete Today)", Type: "situps", Amount: 50, XP: 50, Category: "Strength"},
		{ID: "c5", Label: "100 sit-ups", Type: "situps", Amount: 100, XP: 110, Category: "Strength"},
		{ID: "c32", Label: "100 push-ups (Complete Today)", Type: "pushups", Amount: 100, XP: 120, Category: "Strength"},
		{ID: "c33", Label: "150 push-ups (Complete Today)", Type: "pushups", Amount: 150, XP: 200, Category: "Strength"},

		// Cardio
		{ID: "c6", Label: "2 km Run", Type: "run", Amount: 2, XP: 80, Category: "Cardio"},
		{ID: "c7", Label: "200 Jumping Jacks", Type: "jumpingjacks", Amount: 200, XP: 60, Category: "Cardio"},
		{ID: "c8", Label: "30-minute Cycling", Type: "cycling", Amount: 30, XP: 100, Category: "Cardio"},
		{ID: "c34", Label: "1 mile Run", Type: "run_mile", Amount: 1, XP: 90, Category: "Cardio"},

		// Flexibility
		{ID: "c9", Label: "15 min Yoga Stretch", Type: "yoga", Amount: 15, XP: 50, Category: "Flexibility"},
		{ID: "c10", Label: "Hold Plank 2 min", Type: "plank", Amount: 2, XP: 70, Category: "Flexibility"},

		// Fighting Skills (locked until the category unlocks at level 10)
		{ID: "c11", Label: "Switch between Orthodox and Southpaw - 20x", Type: "stance_switch", Amount: 20, XP: 40, Category: "Fighting Skills"},
		{ID: "c12", Label: "Left Jab - 20x", Type: "jab_left", Amount: 20, XP: 40, Category: "Fighting Skills"},
		{ID: "c13", Label: "Right Jab - 20x", Type: "jab_right", Amount: 20, XP: 40, Category: "Fighting Skills"},
		{ID: "c14", Label: "Left Hook - 20x", Type: "hook_left", Amount: 20, XP: 45, Category: "Fighting Skills"},
		{ID: "c15", Label: "Right Hook - 20x", Type: "hook_right", Amount: 20, XP: 45, Category: "Fighting Skills"},
		{ID: "c16", Label: "Left Uppercut - 20x", Type: "upper_left", Amount: 20, XP: 50, Category: "Fighting Skills"},
		{ID: "c17", Label: "Right Uppercut - 20x", Type: "upper_right", Amount: 20, XP: 50, Category: "Fighting Skills"},
		{ID: "c18", Label: "Switch between Orthodox and Southpaw - 50x", Type: "stance_switch", Amount: 50, XP: 100, Category: "Fighting Skills"},
		{ID: "c19", Label: "Left Jab - 50x", Type: "jab_left", Amount: 50, XP: 100, Category: "Fighting Skills"},
		{ID: "c20", Label: "Right Jab - 50x", Type: "jab_right", Amount: 50, XP: 100, Category: "Fighting Skills"},
		{ID: "c21", Label: "Left Hook - 50x", Type: "hook_left", Amount: 50, XP: 110, Category: "Fighting Skills"},
		{ID: "c22", Label: "Right Hook - 50x", Type: "hook_right", Amount: 50, XP: 110, Category: "Fighting Skills"},
		{ID: "c23", Label: "Left Uppercut - 50x", Type: "upper_left", Amount: 50, XP: 120, Category: "Fighting Skills"},
		{ID: "c24", Label: "Right Uppercut - 50x", Type: "upper_right", Amount: 50, XP: 120, Category: "Fighting Skills"},
		{ID: "c25", Label: "Switch between Orthodox and Southpaw - 100x", Type: "stance_switch", Amount: 100, XP: 200, Category: "Fighting Skills"},
		{ID: "c26", Label: "Left Jab - 100x", Type: "jab_left", Amount: 100, XP: 200, Category: "Fighting Skills"},
		{ID: "c27", Label: "Right Jab - 100x", Type: "jab_right", Amount: 100, XP: 200, Category: "Fighting Skills"},
		{ID: "c28", Label: "Left Hook - 100x", Type: "hook_left", Amount: 100, XP: 220, Category: "Fighting Skills"},
		{ID: "c29", Label: "Right Hook - 100x", Type: "hook_right", Amount: 100, XP: 220, Category: "Fighting Skills"},
		{ID: "c30", Label: "Left Uppercut - 100x", Type: "upper_left", Amount: 100, XP: 240, Category: "Fighting Skills"},
		{ID: "c31", Label: "Right Uppercut - 100x", Type: "upper_right", Amount: 100, XP: 240, Category: "Fighting Skills"},
	}
}

func defaultSkills() []SkillDef {
	return []SkillDef{
		{
			ID: "s_fireball", Name: "Fireball", Type: "magic", Rarity: "common", MPCost: 6,
			Desc:   "Deal moderate fire damage to an enemy.",
			Effect: Effect{Kind: EffectDamage, PerLevel: 4, Variance: 12},
		},
		{
			ID: "s_heal", Name: "Minor Heal", Type: "magic", Rarity: "common", MPCost: 6,
			Desc:   "Restore a small amount of HP.",
			Effect: Effect{Kind: EffectHeal, Base: 60, PerLevel: 4},
		},
		{
			ID: "s_barrier", Name: "Stone Barrier", Type: "skill", Rarity: "rare", MPCost: 10,
			Desc:   "Temporarily reduce incoming damage.",
			Effect: Effect{Kind: EffectBarrier, Amount: 1},
		},
		{
			ID: "s_berserk", Name: "Berserk", Type: "skill", Rarity: "rare", MPCost: 10,
			Desc:   "Increase STR for a few turns.",
			Effect: Effect{Kind: EffectBuff, Stat: "str", Amount: 5, Turns: 3},
		},
		{
			ID: "s_megaheal", Name: "Greater Heal", Type: "magic", Rarity: "epic", MPCost: 18,
			Desc:   "Restore significant HP.",
			Effect: Effect{Kind: EffectHeal, Base: 160, PerLevel: 10},
		},
		{
			ID: "s_lightning", Name: "Chain Lightning", Type: "magic", Rarity: "epic", MPCost: 18,
			Desc:   "Strike the enemy with lightning.",
			Effect: Effect{Kind: EffectDamage, PerLevel: 6, Variance: 18},
		},
	}
}
