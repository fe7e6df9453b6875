package engine

import "fmt"

// EffectiveStats layers equipment bonuses over base stats. The result is
// computed on demand and never written back into Stats.
func (s *PlayerState) EffectiveStats() map[string]int {
	eff := make(map[string]int, len(s.Stats))
	for k, v := range s.Stats {
		eff[k] = v
	}
	for _, item := range s.Equipment {
		for k, v := range item.Bonuses {
			eff[k] += v
		}
	}
	return eff
}

// EffectiveStat returns one stat with equipment bonuses applied.
func (s *PlayerState) EffectiveStat(key string) int {
	return s.EffectiveStats()[key]
}

// AddItem merges an item into the inventory. Stacks are identified by
// name+rarity+type; quantities accumulate.
func (s *PlayerState) AddItem(item Item) {
	if item.Name == "" {
		return
	}
	if item.Qty <= 0 {
		item.Qty = 1
	}
	for i := range s.Inventory {
		held := &s.Inventory[i]
		if held.Name == item.Name && held.Rarity == item.Rarity && held.Type == item.Type {
			held.Qty += item.Qty
			return
		}
	}
	s.Inventory = append(s.Inventory, item)
}

// RemoveOneItem decrements a stack, dropping it at zero.
func (s *PlayerState) RemoveOneItem(idx int) {
	if idx < 0 || idx >= len(s.Inventory) {
		return
	}
	s.Inventory[idx].Qty--
	if s.Inventory[idx].Qty <= 0 {
		s.Inventory = append(s.Inventory[:idx], s.Inventory[idx+1:]...)
	}
}

// ToggleEquip equips the armor at idx into its slot, or unequips it if that
// same item is already worn. The displaced item returns to the inventory.
func (s *PlayerState) ToggleEquip(idx int) error {
	if idx < 0 || idx >= len(s.Inventory) {
		return fmt.Errorf("no item at %d", idx)
	}
	item := s.Inventory[idx]
	if item.Type != "armor" {
		return fmt.Errorf("%s is not equippable", item.Name)
	}
	slot := item.Slot
	if slot == "" {
		slot = "chest"
	}
	if worn, ok := s.Equipment[slot]; ok {
		if worn.Name == item.Name {
			worn.Qty = 1
			s.AddItem(worn)
			delete(s.Equipment, slot)
			return nil
		}
		worn.Qty = 1
		s.AddItem(worn)
	}
	equipped := item
	equipped.Qty = 1
	s.Equipment[slot] = equipped
	s.RemoveOneItem(idx)
	return nil
}

// UseItem consumes one unit of a consumable, applying its resource effect
// with clamping. Non-consumables are rejected.
func (s *PlayerState) UseItem(idx int) (Item, error) {
	if idx < 0 || idx >= len(s.Inventory) {
		return Item{}, fmt.Errorf("no item at %d", idx)
	}
	item := s.Inventory[idx]
	if item.Type != "consumable" {
		return Item{}, fmt.Errorf("%s cannot be consumed", item.Name)
	}
	s.HP.Add(item.Effect["hp"])
	s.MP.Add(item.Effect["mp"])
	s.Stamina.Add(item.Effect["stam"])
	s.RemoveOneItem(idx)
	return item, nil
}

// Loot drop chances by completion context.
const (
	lootChanceTask      = 0.35
	lootChanceChallenge = 0.60
)

// MaybeDropLoot gates the drop table on the context's chance and adds any
// drop to the inventory.
func (s *PlayerState) MaybeDropLoot(r Roller, context string) *Item {
	chance := lootChanceTask
	if context == LearnFromChallenge {
		chance = lootChanceChallenge
	}
	if r.Float64() > chance {
		return nil
	}
	item := RollLoot(r)
	if item != nil {
		s.AddItem(*item)
	}
	return item
}

// RollLoot rolls the drop table. Returns nil when nothing drops.
func RollLoot(r Roller) *Item {
	roll := r.Float64()
	switch {
	case roll < 0.40:
		return &Item{Name: "Minor Health Potion", Type: "consumable", Rarity: "common", Effect: map[string]int{"hp": 40}, Qty: 1}
	case roll < 0.65:
		return &Item{Name: "Stamina Potion", Type: "consumable", Rarity: "common", Effect: map[string]int{"stam": 40}, Qty: 1}
	case roll < 0.75:
		return &Item{Name: "Greater Health Potion", Type: "consumable", Rarity: "rare", Effect: map[string]int{"hp": 120}, Qty: 1}
	case roll < 0.85:
		return &Item{Name: "Leather Armor (Chest)", Type: "armor", Rarity: "common", Slot: "chest", Bonuses: map[string]int{"vit": 2}, Qty: 1}
	case roll < 0.92:
		return &Item{Name: "Iron Greaves (Legs)", Type: "armor", Rarity: "rare", Slot: "legs", Bonuses: map[string]int{"vit": 4}, Qty: 1}
	case roll < 0.97:
		return &Item{Name: "Dragonplate Helm", Type: "armor", Rarity: "epic", Slot: "head", Bonuses: map[string]int{"vit": 8}, Qty: 1}
	default:
		return nil
	}
}
