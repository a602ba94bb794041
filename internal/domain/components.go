package domain

import (
	"github.com/aratama/magiacircle/internal/core/types"
	"github.com/aratama/magiacircle/internal/core/types/enums"
)

// --- КОМПОНЕНТЫ ---

// RenderComponent - Визуализация (Клиент): имя среза в атласе и слой.
type RenderComponent struct {
	Slice string  `json:"slice"`
	Layer float64 `json:"layer"`
	Alpha float64 `json:"alpha,omitempty"`
}

// ColliderShape - форма физического коллайдера.
type ColliderShape uint8

const (
	ShapeCuboid  ColliderShape = iota // прямоугольник HalfW x HalfH
	ShapeBall                         // круг Radius
	ShapeTopEdge                      // верхняя грань стены
)

func (s ColliderShape) String() string {
	switch s {
	case ShapeCuboid:
		return "CUBOID"
	case ShapeBall:
		return "BALL"
	case ShapeTopEdge:
		return "TOP_EDGE"
	default:
		return "UNKNOWN"
	}
}

func (s ColliderShape) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ColliderComponent - физика. Стены статичны и пересоздаются целиком.
type ColliderComponent struct {
	Shape  ColliderShape `json:"shape"`
	HalfW  float64       `json:"halfW,omitempty"`
	HalfH  float64       `json:"halfH,omitempty"`
	Radius float64       `json:"radius,omitempty"`
	Cell   Position      `json:"cell"`
}

// BreakableComponent - разрушаемые объекты (фонари, ящики)
type BreakableComponent struct {
	Life int `json:"life"`
}

// LightParams - точечный источник света.
type LightParams struct {
	Intensity float64    `json:"intensity"`
	Radius    float64    `json:"radius"`
	Falloff   float64    `json:"falloff,omitempty"`
	Color     [4]float64 `json:"color"` // HSLA
}

// LightComponent привязывает свет к владельцу: без владельца свет удаляется.
type LightComponent struct {
	LightParams
	Owner types.EntityID `json:"owner,omitempty"`
}

// MagicCircleDestination - куда ведет магический круг.
type MagicCircleDestination uint8

const (
	DestinationNextLevel MagicCircleDestination = iota
	DestinationArena
)

func (d MagicCircleDestination) MarshalText() ([]byte, error) {
	if d == DestinationArena {
		return []byte("ARENA"), nil
	}
	return []byte("NEXT_LEVEL"), nil
}

type MagicCircleComponent struct {
	Destination MagicCircleDestination `json:"destination"`
	Broken      bool                   `json:"broken,omitempty"`
}

// ChestType - сундук или ящик.
type ChestType uint8

const (
	ChestTypeChest ChestType = iota
	ChestTypeCrate
)

func (c ChestType) MarshalText() ([]byte, error) {
	if c == ChestTypeCrate {
		return []byte("CRATE"), nil
	}
	return []byte("CHEST"), nil
}

type ChestComponent struct {
	Type  ChestType `json:"type"`
	Golds int       `json:"golds"`
}

// DroppedItemComponent - предмет, лежащий на полу.
type DroppedItemComponent struct {
	Item InventoryItem `json:"item"`
}

// EnemyComponent - враг. LifeBar - непрозрачная ссылка на полоску жизни у клиента.
type EnemyComponent struct {
	Archetype string `json:"archetype"`
	LifeBar   string `json:"lifeBar,omitempty"`
}

// BulletComponent - летящий снаряд.
type BulletComponent struct {
	Owner    types.EntityID  `json:"owner"`
	Spell    enums.SpellType `json:"spell"`
	Velocity Vec2            `json:"velocity"`
	Lifetime int             `json:"lifetime"`
	Damage   int             `json:"damage"`
	Impulse  float64         `json:"impulse"`
}

// PlayerComponent - данные ведьмы, которые переносятся между уровнями.
type PlayerComponent struct {
	Name       string                                  `json:"name"`
	Golds      int                                     `json:"golds"`
	Inventory  *Inventory                              `json:"-"`
	Equipments [MaxItemsInEquipment]enums.EquipmentType `json:"equipments"`
	UUID       string                                  `json:"uuid"`
}
