package domain

import (
	"testing"

	"github.com/aratama/magiacircle/internal/core/types/enums"
)

func TestInventory_InsertFirstFreeSlot(t *testing.T) {
	inv := NewInventory(13)
	if inv.Capacity() != 13 {
		t.Fatalf("Capacity = %d, want 13", inv.Capacity())
	}
	inv.Set(0, SpellItem(enums.SpellMagicBolt))
	inv.Set(1, WandItem(enums.WandCypress))

	if !inv.Insert(SpellItem(enums.SpellHeal)) {
		t.Fatal("Insert failed with free slots")
	}
	got, ok := inv.Get(2)
	if !ok || got.Spell != enums.SpellHeal {
		t.Errorf("Expected Heal in slot 2, got %v", got)
	}
}

func TestInventory_InsertFull(t *testing.T) {
	inv := NewInventory(2)
	inv.Insert(SpellItem(enums.SpellHeal))
	inv.Insert(SpellItem(enums.SpellHeal))

	if inv.Insert(SpellItem(enums.SpellHeal)) {
		t.Error("Insert must fail on a full inventory")
	}
	if inv.FreeSlots() != 0 {
		t.Errorf("Expected 0 free slots, got %d", inv.FreeSlots())
	}
}

func TestInventory_TrySet(t *testing.T) {
	inv := NewInventory(4)
	wand := WandItem(enums.WandCypress)

	tests := []struct {
		name string
		slot int
		item InventoryItem
		want bool
	}{
		{"free slot", 0, wand, true},
		{"occupied slot", 0, SpellItem(enums.SpellHeal), false},
		{"negative slot", -1, wand, false},
		{"past capacity", 4, wand, false},
		{"empty item", 1, InventoryItem{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inv.TrySet(tt.slot, tt.item); got != tt.want {
				t.Errorf("TrySet(%d, %v) = %v, want %v", tt.slot, tt.item, got, tt.want)
			}
		})
	}
}

func TestInventory_RemoveAndWidth(t *testing.T) {
	inv := NewInventory(3)
	inv.Set(1, WandItem(enums.WandCypress))

	item, ok := inv.Remove(1)
	if !ok || item.Width() != 2 {
		t.Errorf("Expected a double width wand, got %v (%v)", item, ok)
	}
	if _, ok := inv.Get(1); ok {
		t.Error("Slot must be empty after Remove")
	}
	if SpellItem(enums.SpellHeal).Width() != 1 {
		t.Error("Spell icons are single width")
	}
}

func TestActor_SpeedBuffIsOneShot(t *testing.T) {
	a := NewActor(10, 10, 100)
	if a.TakeSpeedMultiplier() != 1 {
		t.Fatal("No pending buff must give multiplier 1")
	}

	a.PushSpeedDelta(0.5)
	a.PushSpeedDelta(0.5)
	if got := a.TakeSpeedMultiplier(); got != 2.25 {
		t.Errorf("Expected 2.25, got %v", got)
	}
	if got := a.TakeSpeedMultiplier(); got != 1 {
		t.Errorf("Buff must be cleared, got %v", got)
	}
}

func TestActor_ManaAndLife(t *testing.T) {
	a := NewActor(5, 10, 30)
	if a.SpendMana(31) || a.Mana != 30 {
		t.Error("Failed spend must not change mana")
	}
	if !a.SpendMana(30) || a.Mana != 0 {
		t.Error("Exact spend must succeed")
	}
	a.Heal(100)
	if a.Life != 10 {
		t.Errorf("Heal must cap at MaxLife, got %d", a.Life)
	}
	if !a.TakeDamage(10) || !a.IsDead {
		t.Error("Lethal damage must kill")
	}
}

func TestWand_NewAndClone(t *testing.T) {
	w := NewWand(enums.WandCypress, enums.SpellDualCast, enums.SpellNone, enums.SpellHeal)
	if len(w.Slots) != MaxSpellsInWand {
		t.Fatalf("Expected %d slots, got %d", MaxSpellsInWand, len(w.Slots))
	}
	if got := w.Spells(); len(got) != 2 {
		t.Errorf("Expected 2 spells, got %v", got)
	}

	c := w.Clone()
	c.Slots[0] = enums.SpellNone
	if w.Slots[0] != enums.SpellDualCast {
		t.Error("Clone must not share slots")
	}
	if w.SpellAt(100) != enums.SpellNone {
		t.Error("Out of range slot must be empty")
	}
}
