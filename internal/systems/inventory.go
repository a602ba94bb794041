package systems

import (
	"errors"
	"fmt"

	"github.com/aratama/magiacircle/internal/core/types/enums"
	"github.com/aratama/magiacircle/internal/domain"
	"github.com/aratama/magiacircle/pkg/logger"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidMove  = errors.New("invalid item move")
	ErrEmptySource  = errors.New("source slot is empty")
	ErrSlotOccupied = errors.New("target slot is occupied")
)

// ItemDropper кладет предмет на пол (лишние заклинания из снятого посоха).
type ItemDropper interface {
	SpawnDroppedItem(pos domain.Vec2, item domain.InventoryItem)
}

// MoveItem перекладывает предмет между инвентарем, посохами и экипировкой ведьмы.
// Поддерживаемые перемещения:
//   - инвентарь -> инвентарь (только в свободный слот)
//   - заклинание посоха -> инвентарь / другой слот посоха
//   - посох -> инвентарь (заклинания высыпаются в свободные слоты, остальное на пол)
//   - экипировка -> инвентарь
//   - инвентарь -> слот заклинания, посох в руке, экипировка
func MoveItem(player *domain.Entity, from, to domain.SlotRef, dropper ItemDropper) (string, error) {
	if player.Player == nil || player.Player.Inventory == nil || player.Actor == nil {
		return "", fmt.Errorf("%w: %s has no inventory", ErrInvalidMove, player.Name)
	}
	if from == to {
		return "", nil
	}

	moveLogger := logger.For("inventory_system").WithFields(logrus.Fields{
		"player": player.ID,
		"from":   from,
		"to":     to,
	})

	var (
		msg string
		err error
	)
	switch {
	case from.Area == domain.SlotInventory && to.Area == domain.SlotInventory:
		msg, err = inventoryToInventory(player, from.Index, to.Index)
	case from.Area == domain.SlotWandSpell && to.Area == domain.SlotInventory:
		msg, err = wandSpellToInventory(player, from, to.Index)
	case from.Area == domain.SlotWandSpell && to.Area == domain.SlotWandSpell:
		msg, err = wandSpellToWandSpell(player, from, to)
	case from.Area == domain.SlotWand && to.Area == domain.SlotInventory:
		msg, err = wandToInventory(player, from.Wand, to.Index, dropper)
	case from.Area == domain.SlotEquipment && to.Area == domain.SlotInventory:
		msg, err = equipmentToInventory(player, from.Index, to.Index)
	case from.Area == domain.SlotInventory && to.Area == domain.SlotWandSpell:
		msg, err = inventoryToWandSpell(player, from.Index, to)
	case from.Area == domain.SlotInventory && to.Area == domain.SlotWand:
		msg, err = inventoryToWand(player, from.Index, to.Wand)
	case from.Area == domain.SlotInventory && to.Area == domain.SlotEquipment:
		msg, err = inventoryToEquipment(player, from.Index, to.Index)
	default:
		err = fmt.Errorf("%w: %s -> %s", ErrInvalidMove, from, to)
	}

	if err != nil {
		moveLogger.WithError(err).Debug("Item move rejected.")
		return "", err
	}
	moveLogger.Debug("Item moved.")
	return msg, nil
}

func inventoryToInventory(player *domain.Entity, from, to int) (string, error) {
	inv := player.Player.Inventory
	item, ok := inv.Get(from)
	if !ok {
		return "", ErrEmptySource
	}
	if !inv.IsSettable(to, item) {
		return "", ErrSlotOccupied
	}
	inv.Set(to, item)
	inv.Set(from, domain.InventoryItem{})
	return "", nil
}

func wandAt(player *domain.Entity, slot int) (*domain.Wand, error) {
	wand := player.Actor.ActiveWand(slot)
	if wand == nil {
		return nil, fmt.Errorf("%w: no wand in slot %d", ErrEmptySource, slot)
	}
	return wand, nil
}

func wandSpellToInventory(player *domain.Entity, from domain.SlotRef, to int) (string, error) {
	wand, err := wandAt(player, from.Wand)
	if err != nil {
		return "", err
	}
	spell := wand.SpellAt(from.Index)
	if spell.IsNone() {
		return "", ErrEmptySource
	}
	if !player.Player.Inventory.TrySet(to, domain.SpellItem(spell)) {
		return "", ErrSlotOccupied
	}
	wand.Slots[from.Index] = enums.SpellNone
	return "", nil
}

func wandSpellToWandSpell(player *domain.Entity, from, to domain.SlotRef) (string, error) {
	src, err := wandAt(player, from.Wand)
	if err != nil {
		return "", err
	}
	dst, err := wandAt(player, to.Wand)
	if err != nil {
		return "", err
	}
	spell := src.SpellAt(from.Index)
	if spell.IsNone() {
		return "", ErrEmptySource
	}
	if to.Index < 0 || to.Index >= len(dst.Slots) || !dst.Slots[to.Index].IsNone() {
		return "", ErrSlotOccupied
	}
	dst.Slots[to.Index] = spell
	src.Slots[from.Index] = enums.SpellNone
	return "", nil
}

// wandToInventory убирает посох в инвентарь. Заклинания посоха переезжают
// в свободные слоты инвентаря, а что не поместилось - падает на пол под ведьмой.
func wandToInventory(player *domain.Entity, slot, to int, dropper ItemDropper) (string, error) {
	wand, err := wandAt(player, slot)
	if err != nil {
		return "", err
	}
	inv := player.Player.Inventory
	if !inv.TrySet(to, domain.WandItem(wand.Type)) {
		return "", ErrSlotOccupied
	}

	dropped := 0
	for _, spell := range wand.Spells() {
		if inv.Insert(domain.SpellItem(spell)) {
			continue
		}
		if dropper != nil {
			dropper.SpawnDroppedItem(player.Pos, domain.SpellItem(spell))
		}
		dropped++
	}
	player.Actor.Wands[slot] = nil

	if dropped > 0 {
		return fmt.Sprintf("Инвентарь полон: %d заклинаний упало на пол.", dropped), nil
	}
	return "", nil
}

func equipmentToInventory(player *domain.Entity, from, to int) (string, error) {
	if from < 0 || from >= len(player.Player.Equipments) {
		return "", fmt.Errorf("%w: equipment slot %d", ErrInvalidMove, from)
	}
	eq := player.Player.Equipments[from]
	if eq == enums.EquipmentUnknown {
		return "", ErrEmptySource
	}
	if !player.Player.Inventory.TrySet(to, domain.EquipmentItem(eq)) {
		return "", ErrSlotOccupied
	}
	player.Player.Equipments[from] = enums.EquipmentUnknown
	return "", nil
}

func inventoryToWandSpell(player *domain.Entity, from int, to domain.SlotRef) (string, error) {
	inv := player.Player.Inventory
	item, ok := inv.Get(from)
	if !ok {
		return "", ErrEmptySource
	}
	if item.Kind != enums.ItemKindSpell {
		return "", fmt.Errorf("%w: %s is not a spell", ErrInvalidMove, item)
	}
	wand, err := wandAt(player, to.Wand)
	if err != nil {
		return "", err
	}
	if to.Index < 0 || to.Index >= len(wand.Slots) || !wand.Slots[to.Index].IsNone() {
		return "", ErrSlotOccupied
	}
	wand.Slots[to.Index] = item.Spell
	inv.Set(from, domain.InventoryItem{})
	return "", nil
}

// inventoryToWand берет посох из инвентаря в руку. Посох приходит пустым.
func inventoryToWand(player *domain.Entity, from, slot int) (string, error) {
	inv := player.Player.Inventory
	item, ok := inv.Get(from)
	if !ok {
		return "", ErrEmptySource
	}
	if item.Kind != enums.ItemKindWand {
		return "", fmt.Errorf("%w: %s is not a wand", ErrInvalidMove, item)
	}
	if slot < 0 || slot >= len(player.Actor.Wands) {
		return "", fmt.Errorf("%w: wand slot %d", ErrInvalidMove, slot)
	}
	if player.Actor.Wands[slot] != nil {
		return "", ErrSlotOccupied
	}
	player.Actor.Wands[slot] = domain.NewWand(item.Wand)
	inv.Set(from, domain.InventoryItem{})
	return "", nil
}

func inventoryToEquipment(player *domain.Entity, from, to int) (string, error) {
	inv := player.Player.Inventory
	item, ok := inv.Get(from)
	if !ok {
		return "", ErrEmptySource
	}
	if item.Kind != enums.ItemKindEquipment {
		return "", fmt.Errorf("%w: %s is not equipment", ErrInvalidMove, item)
	}
	if to < 0 || to >= len(player.Player.Equipments) {
		return "", fmt.Errorf("%w: equipment slot %d", ErrInvalidMove, to)
	}
	if player.Player.Equipments[to] != enums.EquipmentUnknown {
		return "", ErrSlotOccupied
	}
	player.Player.Equipments[to] = item.Equipment
	inv.Set(from, domain.InventoryItem{})
	return "", nil
}
