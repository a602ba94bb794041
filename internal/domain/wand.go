package domain

import "github.com/aratama/magiacircle/internal/core/types/enums"

// wandCapacity - число слотов у каждой модели посоха.
var wandCapacity = map[enums.WandType]int{
	enums.WandCypress: MaxSpellsInWand,
}

// WandCapacity возвращает число слотов. Неизвестная модель - 0 слотов.
func WandCapacity(t enums.WandType) int {
	return wandCapacity[t]
}

// Wand - посох: упорядоченные слоты заклинаний, курсор и задержка.
// SpellNone в слоте означает пустой слот.
type Wand struct {
	Type   enums.WandType    `json:"type"`
	Slots  []enums.SpellType `json:"slots"`
	Cursor int               `json:"cursor"`
	Delay  int               `json:"delay"` // оставшиеся кадры перезарядки
}

func NewWand(t enums.WandType, spells ...enums.SpellType) *Wand {
	w := &Wand{Type: t, Slots: make([]enums.SpellType, WandCapacity(t))}
	copy(w.Slots, spells)
	return w
}

// IsReady - посох не перезаряжается.
func (w *Wand) IsReady() bool { return w.Delay <= 0 }

// SpellAt возвращает заклинание слота, за границами - SpellNone.
func (w *Wand) SpellAt(i int) enums.SpellType {
	if i < 0 || i >= len(w.Slots) {
		return enums.SpellNone
	}
	return w.Slots[i]
}

// Spells возвращает непустые заклинания в порядке слотов.
func (w *Wand) Spells() []enums.SpellType {
	out := make([]enums.SpellType, 0, len(w.Slots))
	for _, s := range w.Slots {
		if !s.IsNone() {
			out = append(out, s)
		}
	}
	return out
}

func (w *Wand) Clone() *Wand {
	if w == nil {
		return nil
	}
	c := *w
	c.Slots = append([]enums.SpellType(nil), w.Slots...)
	return &c
}
