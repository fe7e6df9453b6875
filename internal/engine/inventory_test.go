package engine

import (
	"testing"
	"time"
)

func TestAddItemStacks(t *testing.T) {
	s := NewDefaultState(time.Now())
	potion := Item{Name: "Minor Health Potion", Type: "consumable", Rarity: "common", Effect: map[string]int{"hp": 40}, Qty: 1}
	s.AddItem(potion)
	s.AddItem(potion)
	if len(s.Inventory) != 1 {
		t.Fatalf("inventory has %d stacks, want 1", len(s.Inventory))
	}
	if s.Inventory[0].Qty != 2 {
		t.Fatalf("qty=%d, want 2", s.Inventory[0].Qty)
	}

	// Different rarity starts a new stack.
	rare := potion
	rare.Rarity = "rare"
	s.AddItem(rare)
	if len(s.Inventory) != 2 {
		t.Fatalf("inventory has %d stacks, want 2", len(s.Inventory))
	}
}

func TestUseItemClampsAndConsumes(t *testing.T) {
	s := NewDefaultState(time.Now())
	s.HP.Cur = s.HP.Max - 10
	s.AddItem(Item{Name: "Minor Health Potion", Type: "consumable", Effect: map[string]int{"hp": 40}, Qty: 2})

	item, err := s.UseItem(0)
	if err != nil {
		t.Fatalf("use item: %v", err)
	}
	if item.Name != "Minor Health Potion" {
		t.Fatalf("used %q", item.Name)
	}
	if s.HP.Cur != s.HP.Max {
		t.Fatalf("HP=%d, want clamped to max %d", s.HP.Cur, s.HP.Max)
	}
	if s.Inventory[0].Qty != 1 {
		t.Fatalf("qty=%d, want 1", s.Inventory[0].Qty)
	}

	s.AddItem(Item{Name: "Leather Armor (Chest)", Type: "armor", Slot: "chest", Qty: 1})
	if _, err := s.UseItem(1); err == nil {
		t.Fatal("armor must not be consumable")
	}
}

func TestToggleEquipDisplacesAndUnequips(t *testing.T) {
	s := NewDefaultState(time.Now())
	s.AddItem(Item{Name: "Leather Armor (Chest)", Type: "armor", Rarity: "common", Slot: "chest", Bonuses: map[string]int{"vit": 2}, Qty: 1})
	s.AddItem(Item{Name: "Dragon Mail", Type: "armor", Rarity: "epic", Slot: "chest", Bonuses: map[string]int{"vit": 8}, Qty: 1})

	if err := s.ToggleEquip(0); err != nil {
		t.Fatalf("equip: %v", err)
	}
	if s.Equipment["chest"].Name != "Leather Armor (Chest)" {
		t.Fatalf("chest slot has %q", s.Equipment["chest"].Name)
	}
	if s.EffectiveStat("vit") != s.Stats["vit"]+2 {
		t.Fatalf("effective vit=%d, want +2 bonus", s.EffectiveStat("vit"))
	}

	// Equipping into an occupied slot returns the old piece to the bag.
	idx := -1
	for i, it := range s.Inventory {
		if it.Name == "Dragon Mail" {
			idx = i
		}
	}
	if err := s.ToggleEquip(idx); err != nil {
		t.Fatalf("swap equip: %v", err)
	}
	if s.Equipment["chest"].Name != "Dragon Mail" {
		t.Fatalf("chest slot has %q, want Dragon Mail", s.Equipment["chest"].Name)
	}
	found := false
	for _, it := range s.Inventory {
		if it.Name == "Leather Armor (Chest)" {
			found = true
		}
	}
	if !found {
		t.Fatal("displaced armor must return to inventory")
	}

}

func TestToggleEquipSameItemUnequips(t *testing.T) {
	s := NewDefaultState(time.Now())
	armor := Item{Name: "Leather Armor (Chest)", Type: "armor", Rarity: "common", Slot: "chest", Bonuses: map[string]int{"vit": 2}, Qty: 2}
	s.AddItem(armor)

	if err := s.ToggleEquip(0); err != nil {
		t.Fatalf("equip: %v", err)
	}
	if err := s.ToggleEquip(0); err != nil {
		t.Fatalf("unequip: %v", err)
	}
	if _, ok := s.Equipment["chest"]; ok {
		t.Fatal("slot should be empty after toggling the same item")
	}
	if len(s.Inventory) != 1 || s.Inventory[0].Qty != 2 {
		t.Fatalf("inventory %+v, want the stack restored to qty 2", s.Inventory)
	}
}

func TestEffectiveStatsNeverPersist(t *testing.T) {
	s := NewDefaultState(time.Now())
	s.Stats["vit"] = 10
	s.Equipment["chest"] = Item{Name: "Plate", Type: "armor", Bonuses: map[string]int{"vit": 4}}
	if s.EffectiveStat("vit") != 14 {
		t.Fatalf("effective vit=%d, want 14", s.EffectiveStat("vit"))
	}
	if s.Stats["vit"] != 10 {
		t.Fatalf("base vit mutated to %d", s.Stats["vit"])
	}
}

func TestMaybeDropLootGate(t *testing.T) {
	s := NewDefaultState(time.Now())

	// 0.50 is above the 35% task gate, below the 60% challenge gate.
	if item := s.MaybeDropLoot(&fixedRoller{floats: []float64{0.50}}, LearnFromTask); item != nil {
		t.Fatalf("task drop above gate: %v", item)
	}
	item := s.MaybeDropLoot(&fixedRoller{floats: []float64{0.50, 0.10}}, LearnFromChallenge)
	if item == nil || item.Name != "Minor Health Potion" {
		t.Fatalf("challenge drop=%v, want Minor Health Potion", item)
	}
	if len(s.Inventory) != 1 {
		t.Fatal("drop must land in the inventory")
	}
}

func TestRollLootTable(t *testing.T) {
	cases := []struct {
		roll float64
		want string
	}{
		{0.10, "Minor Health Potion"},
		{0.50, "Stamina Potion"},
		{0.70, "Greater Health Potion"},
		{0.80, "Leather Armor (Chest)"},
		{0.90, "Iron Greaves (Legs)"},
		{0.95, "Dragonplate Helm"},
	}
	for _, c := range cases {
		item := RollLoot(&fixedRoller{floats: []float64{c.roll}})
		if item == nil || item.Name != c.want {
			t.Fatalf("roll %.2f: got %v, want %s", c.roll, item, c.want)
		}
	}
	if item := RollLoot(&fixedRoller{floats: []float64{0.98}}); item != nil {
		t.Fatalf("roll 0.98 should drop nothing, got %v", item)
	}
}
