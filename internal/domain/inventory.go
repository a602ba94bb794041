package domain

import (
	"fmt"

	"github.com/aratama/magiacircle/internal/core/types/enums"
)

// InventoryItem - предмет в слоте: посох, заклинание или экипировка.
// Нулевое значение означает "нет предмета".
type InventoryItem struct {
	Kind      enums.ItemKind      `json:"kind"`
	Wand      enums.WandType      `json:"wand,omitempty"`
	Spell     enums.SpellType     `json:"spell,omitempty"`
	Equipment enums.EquipmentType `json:"equipment,omitempty"`
}

func WandItem(t enums.WandType) InventoryItem {
	return InventoryItem{Kind: enums.ItemKindWand, Wand: t}
}

func SpellItem(t enums.SpellType) InventoryItem {
	return InventoryItem{Kind: enums.ItemKindSpell, Spell: t}
}

func EquipmentItem(t enums.EquipmentType) InventoryItem {
	return InventoryItem{Kind: enums.ItemKindEquipment, Equipment: t}
}

func (i InventoryItem) IsNone() bool { return i.Kind == enums.ItemKindUnknown }

// Width - ширина иконки в ячейках. Посох рисуется в две ячейки,
// но в модели занимает один слот.
func (i InventoryItem) Width() int {
	if i.Kind == enums.ItemKindWand {
		return 2
	}
	return 1
}

func (i InventoryItem) String() string {
	switch i.Kind {
	case enums.ItemKindWand:
		return fmt.Sprintf("Wand(%s)", i.Wand)
	case enums.ItemKindSpell:
		return fmt.Sprintf("Spell(%s)", i.Spell)
	case enums.ItemKindEquipment:
		return fmt.Sprintf("Equipment(%s)", i.Equipment)
	default:
		return "None"
	}
}

// Inventory - слоты фиксированной емкости, в каждом не больше одного предмета.
type Inventory struct {
	slots []InventoryItem
}

func NewInventory(capacity int) *Inventory {
	return &Inventory{slots: make([]InventoryItem, capacity)}
}

func (inv *Inventory) Capacity() int { return len(inv.slots) }

func (inv *Inventory) inRange(slot int) bool {
	return 0 <= slot && slot < len(inv.slots)
}

// Get возвращает предмет слота и признак его наличия.
func (inv *Inventory) Get(slot int) (InventoryItem, bool) {
	if !inv.inRange(slot) || inv.slots[slot].IsNone() {
		return InventoryItem{}, false
	}
	return inv.slots[slot], true
}

// Set кладет предмет без проверок. Нулевой InventoryItem очищает слот.
// Слот вне диапазона игнорируется.
func (inv *Inventory) Set(slot int, item InventoryItem) {
	if inv.inRange(slot) {
		inv.slots[slot] = item
	}
}

// Remove забирает предмет из слота.
func (inv *Inventory) Remove(slot int) (InventoryItem, bool) {
	item, ok := inv.Get(slot)
	if ok {
		inv.slots[slot] = InventoryItem{}
	}
	return item, ok
}

// IsSettable - слот существует и свободен.
// Вид предмета на правило не влияет: посох тоже занимает один слот.
func (inv *Inventory) IsSettable(slot int, item InventoryItem) bool {
	if item.IsNone() || !inv.inRange(slot) {
		return false
	}
	return inv.slots[slot].IsNone()
}

// TrySet кладет предмет, только если слот свободен.
func (inv *Inventory) TrySet(slot int, item InventoryItem) bool {
	if !inv.IsSettable(slot, item) {
		return false
	}
	inv.slots[slot] = item
	return true
}

// Insert кладет предмет в первый свободный слот.
func (inv *Inventory) Insert(item InventoryItem) bool {
	for i := range inv.slots {
		if inv.TrySet(i, item) {
			return true
		}
	}
	return false
}

// FreeSlots возвращает число свободных слотов.
func (inv *Inventory) FreeSlots() int {
	n := 0
	for _, it := range inv.slots {
		if it.IsNone() {
			n++
		}
	}
	return n
}

// Items возвращает копию слотов (пустые - нулевые значения).
func (inv *Inventory) Items() []InventoryItem {
	return append([]InventoryItem(nil), inv.slots...)
}

func (inv *Inventory) Clone() *Inventory {
	if inv == nil {
		return nil
	}
	return &Inventory{slots: inv.Items()}
}
