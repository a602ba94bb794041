package domain

import (
	"github.com/aratama/magiacircle/internal/core/types"
	"github.com/aratama/magiacircle/internal/core/types/enums"
)

// --- СУЩНОСТЬ ---

// Entity - любая сущность арены: тайл, коллайдер, ведьма, враг, снаряд.
// Компоненты: если nil - значит свойство отсутствует.
type Entity struct {
	ID   types.EntityID   `json:"id"`
	Kind enums.EntityKind `json:"kind"`
	Name string           `json:"name"`
	Pos  Vec2             `json:"pos"`

	Render      *RenderComponent      `json:"render,omitempty"`
	Collider    *ColliderComponent    `json:"collider,omitempty"`
	Actor       *ActorComponent       `json:"actor,omitempty"`
	Player      *PlayerComponent      `json:"player,omitempty"`
	Breakable   *BreakableComponent   `json:"breakable,omitempty"`
	Light       *LightComponent       `json:"light,omitempty"`
	MagicCircle *MagicCircleComponent `json:"magicCircle,omitempty"`
	Chest       *ChestComponent       `json:"chest,omitempty"`
	Dropped     *DroppedItemComponent `json:"dropped,omitempty"`
	Enemy       *EnemyComponent       `json:"enemy,omitempty"`
	Bullet      *BulletComponent      `json:"bullet,omitempty"`
}

// Cell - клетка, в которой стоит сущность.
func (e *Entity) Cell() Position { return e.Pos.Cell() }
