package domain

import (
	"github.com/aratama/magiacircle/internal/core/types"
	"github.com/aratama/magiacircle/internal/core/types/enums"
)

// GameWorld - арена сущностей текущего уровня.
// Каждая сущность помечена эпохой: смена уровня удаляет всю эпоху разом,
// без обхода связей родитель/потомок.
type GameWorld struct {
	Epoch   uint16        `json:"epoch"`
	Tick    int           `json:"tick"`
	Map     *LevelTileMap `json:"-"`
	Current CurrentLevel  `json:"current"`
	Slice   string        `json:"slice"`

	entities  map[types.EntityID]*Entity
	order     []types.EntityID // порядок создания, для детерминированного обхода
	nextIndex uint32
}

func NewGameWorld() *GameWorld {
	return &GameWorld{
		Epoch:    1,
		entities: make(map[types.EntityID]*Entity),
	}
}

// Spawn регистрирует сущность в текущей эпохе и присваивает ей ID.
func (w *GameWorld) Spawn(e *Entity) types.EntityID {
	w.nextIndex++
	e.ID = types.PackEntityID(uint8(e.Kind), w.Epoch, w.nextIndex)
	w.entities[e.ID] = e
	w.order = append(w.order, e.ID)
	return e.ID
}

// GetEntity ищет сущность по ID
func (w *GameWorld) GetEntity(id types.EntityID) *Entity {
	return w.entities[id]
}

// Despawn удаляет одну сущность (смерть, истекший снаряд, подобранный предмет).
func (w *GameWorld) Despawn(id types.EntityID) bool {
	if _, ok := w.entities[id]; !ok {
		return false
	}
	delete(w.entities, id)
	for i, other := range w.order {
		if other == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	return true
}

// ClearEpoch удаляет все сущности эпохи. Возвращает число удаленных.
func (w *GameWorld) ClearEpoch(epoch uint16) int {
	removed := 0
	kept := w.order[:0]
	for _, id := range w.order {
		if id.BelongsTo(epoch) {
			delete(w.entities, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	w.order = kept
	return removed
}

// AdvanceEpoch очищает текущую эпоху и открывает следующую.
func (w *GameWorld) AdvanceEpoch() (removed int) {
	removed = w.ClearEpoch(w.Epoch)
	w.Epoch++
	if w.Epoch == 0 {
		w.Epoch = 1 // нулевая эпоха зарезервирована под NilEntityID
	}
	w.nextIndex = 0
	return removed
}

// Entities возвращает все сущности в порядке создания.
func (w *GameWorld) Entities() []*Entity {
	out := make([]*Entity, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.entities[id])
	}
	return out
}

// EntitiesOf возвращает сущности одного вида в порядке создания.
func (w *GameWorld) EntitiesOf(kind enums.EntityKind) []*Entity {
	var out []*Entity
	for _, id := range w.order {
		if enums.EntityKind(id.Kind()) == kind {
			out = append(out, w.entities[id])
		}
	}
	return out
}

// CountOf считает сущности одного вида.
func (w *GameWorld) CountOf(kind enums.EntityKind) int {
	n := 0
	for _, id := range w.order {
		if enums.EntityKind(id.Kind()) == kind {
			n++
		}
	}
	return n
}

func (w *GameWorld) Len() int { return len(w.order) }

// Player возвращает ведьму (первую, если их несколько).
func (w *GameWorld) Player() *Entity {
	for _, id := range w.order {
		if enums.EntityKind(id.Kind()) == enums.EntityPlayer {
			return w.entities[id]
		}
	}
	return nil
}
