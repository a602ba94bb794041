package systems

import (
	"errors"
	"testing"

	"github.com/aratama/magiacircle/internal/core/types/enums"
	"github.com/aratama/magiacircle/internal/domain"
)

type dropRecorder struct {
	items []domain.InventoryItem
}

func (d *dropRecorder) SpawnDroppedItem(_ domain.Vec2, item domain.InventoryItem) {
	d.items = append(d.items, item)
}

func inv(i int) domain.SlotRef { return domain.SlotRef{Area: domain.SlotInventory, Index: i} }

func wandSpell(w, i int) domain.SlotRef {
	return domain.SlotRef{Area: domain.SlotWandSpell, Wand: w, Index: i}
}

func TestMoveItem_InventoryToInventory(t *testing.T) {
	w := createTestWorld(".")
	witch := spawnWitch(w, 0, 0)
	bag := witch.Player.Inventory
	bag.Set(0, domain.SpellItem(enums.SpellHeal))
	bag.Set(1, domain.SpellItem(enums.SpellMagicBolt))

	if _, err := MoveItem(witch, inv(0), inv(1), nil); !errors.Is(err, ErrSlotOccupied) {
		t.Errorf("Expected ErrSlotOccupied, got %v", err)
	}
	if _, err := MoveItem(witch, inv(0), inv(3), nil); err != nil {
		t.Fatalf("MoveItem error: %v", err)
	}
	if item, ok := bag.Get(3); !ok || item.Spell != enums.SpellHeal {
		t.Errorf("slot 3 = %v", item)
	}
	if _, ok := bag.Get(0); ok {
		t.Error("Source slot must be empty")
	}
	if _, err := MoveItem(witch, inv(2), inv(0), nil); !errors.Is(err, ErrEmptySource) {
		t.Errorf("Expected ErrEmptySource, got %v", err)
	}
}

func TestMoveItem_WandSpellRoundTrip(t *testing.T) {
	w := createTestWorld(".")
	witch := spawnWitch(w, 0, 0)
	witch.Actor.Wands[0] = domain.NewWand(enums.WandCypress, enums.SpellMagicBolt)

	if _, err := MoveItem(witch, wandSpell(0, 0), inv(2), nil); err != nil {
		t.Fatalf("wand -> inventory: %v", err)
	}
	if !witch.Actor.Wands[0].SpellAt(0).IsNone() {
		t.Error("Wand slot must be empty")
	}

	if _, err := MoveItem(witch, inv(2), wandSpell(0, 5), nil); err != nil {
		t.Fatalf("inventory -> wand: %v", err)
	}
	if witch.Actor.Wands[0].SpellAt(5) != enums.SpellMagicBolt {
		t.Error("Spell must land in wand slot 5")
	}

	if _, err := MoveItem(witch, wandSpell(0, 5), wandSpell(0, 7), nil); err != nil {
		t.Fatalf("wand -> wand: %v", err)
	}
	if witch.Actor.Wands[0].SpellAt(7) != enums.SpellMagicBolt {
		t.Error("Spell must move inside the wand")
	}
}

func TestMoveItem_WandToInventorySpillsSpells(t *testing.T) {
	w := createTestWorld(".")
	witch := spawnWitch(w, 0, 0) // инвентарь на 4 слота
	witch.Player.Inventory.Set(0, domain.SpellItem(enums.SpellHeal))
	witch.Actor.Wands[1] = domain.NewWand(enums.WandCypress,
		enums.SpellMagicBolt, enums.SpellDualCast, enums.SpellPurpleBolt, enums.SpellTripleCast)

	drops := &dropRecorder{}
	msg, err := MoveItem(witch, domain.SlotRef{Area: domain.SlotWand, Wand: 1}, inv(1), drops)
	if err != nil {
		t.Fatalf("MoveItem error: %v", err)
	}

	bag := witch.Player.Inventory
	if item, _ := bag.Get(1); item.Kind != enums.ItemKindWand {
		t.Errorf("slot 1 = %v, want the wand", item)
	}
	if bag.FreeSlots() != 0 {
		t.Errorf("Free slots must be filled, %d left", bag.FreeSlots())
	}
	if len(drops.items) != 2 || msg == "" {
		t.Errorf("Expected 2 dropped spells, got %v (%q)", drops.items, msg)
	}
	if witch.Actor.Wands[1] != nil {
		t.Error("Wand slot must be empty")
	}
}

func TestMoveItem_InventoryToWandAndEquipment(t *testing.T) {
	w := createTestWorld(".")
	witch := spawnWitch(w, 0, 0)
	bag := witch.Player.Inventory
	bag.Set(0, domain.WandItem(enums.WandCypress))
	bag.Set(1, domain.EquipmentItem(enums.EquipmentLantern))

	wandSlot := domain.SlotRef{Area: domain.SlotWand, Wand: 2}
	if _, err := MoveItem(witch, inv(0), wandSlot, nil); err != nil {
		t.Fatalf("inventory -> wand: %v", err)
	}
	if wand := witch.Actor.Wands[2]; wand == nil || len(wand.Slots) != domain.MaxSpellsInWand {
		t.Error("Cypress wand must be equipped with 8 empty slots")
	}

	eqSlot := domain.SlotRef{Area: domain.SlotEquipment, Index: 3}
	if _, err := MoveItem(witch, inv(1), eqSlot, nil); err != nil {
		t.Fatalf("inventory -> equipment: %v", err)
	}
	if witch.Player.Equipments[3] != enums.EquipmentLantern {
		t.Error("Lantern must be equipped")
	}

	if _, err := MoveItem(witch, eqSlot, inv(2), nil); err != nil {
		t.Fatalf("equipment -> inventory: %v", err)
	}
	if item, _ := bag.Get(2); item.Equipment != enums.EquipmentLantern {
		t.Errorf("slot 2 = %v", item)
	}
}

func TestMoveItem_RejectsWrongKinds(t *testing.T) {
	w := createTestWorld(".")
	witch := spawnWitch(w, 0, 0)
	witch.Player.Inventory.Set(0, domain.SpellItem(enums.SpellHeal))

	tests := []struct {
		name string
		to   domain.SlotRef
	}{
		{"spell into wand hand", domain.SlotRef{Area: domain.SlotWand, Wand: 0}},
		{"spell into equipment", domain.SlotRef{Area: domain.SlotEquipment, Index: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := MoveItem(witch, inv(0), tt.to, nil); !errors.Is(err, ErrInvalidMove) {
				t.Errorf("Expected ErrInvalidMove, got %v", err)
			}
		})
	}

	if _, err := MoveItem(witch, domain.SlotRef{Area: domain.SlotEquipment}, domain.SlotRef{Area: domain.SlotWand}, nil); !errors.Is(err, ErrInvalidMove) {
		t.Errorf("Equipment -> wand must be rejected, got %v", err)
	}
}
