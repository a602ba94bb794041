package dungeon

import (
	"github.com/aratama/magiacircle/internal/core/types/enums"
	"github.com/aratama/magiacircle/internal/domain"
)

// EntityTemplate определяет шаблон для создания сущности
type EntityTemplate struct {
	Name     string
	Kind     enums.EntityKind
	Slice    string
	Life     int
	Collider domain.ColliderComponent
	Light    *domain.LightParams
}

// SpawnEntity создает сущность из шаблона на заданной позиции (без регистрации в мире)
func (t EntityTemplate) SpawnEntity(pos domain.Vec2) *domain.Entity {
	collider := t.Collider
	e := &domain.Entity{
		Kind:     t.Kind,
		Name:     t.Name,
		Pos:      pos,
		Render:   &domain.RenderComponent{Slice: t.Slice, Layer: domain.DepthLayer(pos)},
		Collider: &collider,
	}
	if t.Life > 0 {
		e.Breakable = &domain.BreakableComponent{Life: t.Life}
	}
	return e
}

// --- ВРАГИ ---

// EnemyTemplate - враг с жизнью и маной (маны у врагов нет, посохов тоже).
type EnemyTemplate struct {
	EntityTemplate
	Archetype string
}

var Slime = EnemyTemplate{
	Archetype: "slime",
	EntityTemplate: EntityTemplate{
		Name:     "slime",
		Kind:     enums.EntityEnemy,
		Slice:    "slime",
		Life:     15,
		Collider: domain.ColliderComponent{Shape: domain.ShapeBall, Radius: 8},
	},
}

var Eyeball = EnemyTemplate{
	Archetype: "eyeball",
	EntityTemplate: EntityTemplate{
		Name:     "eyeball",
		Kind:     enums.EntityEnemy,
		Slice:    "eyeball",
		Life:     20,
		Collider: domain.ColliderComponent{Shape: domain.ShapeBall, Radius: 6},
	},
}

// EnemyTemplates - враги, которых уровень расставляет по пустым клеткам.
// Порядок важен: он определяет порядок вызовов генератора случайных чисел.
var EnemyTemplates = []EnemyTemplate{Slime, Eyeball}

// SpawnEnemy создает врага с жизнью из шаблона.
func (t EnemyTemplate) SpawnEnemy(pos domain.Vec2, lifeBar LifeBarHandle) *domain.Entity {
	e := t.SpawnEntity(pos)
	e.Breakable = nil
	e.Actor = domain.NewActor(t.Life, t.Life, 0)
	e.Enemy = &domain.EnemyComponent{Archetype: t.Archetype, LifeBar: string(lifeBar)}
	return e
}

// --- ОБСТАНОВКА ---

var ChestTemplate = EntityTemplate{
	Name:     "chest",
	Kind:     enums.EntityChest,
	Slice:    "chest",
	Life:     30,
	Collider: domain.ColliderComponent{Shape: domain.ShapeCuboid, HalfW: 4, HalfH: 4},
}

var CrateTemplate = EntityTemplate{
	Name:     "crate",
	Kind:     enums.EntityChest,
	Slice:    "crate",
	Life:     10,
	Collider: domain.ColliderComponent{Shape: domain.ShapeCuboid, HalfW: 4, HalfH: 4},
}

var BookShelfTemplate = EntityTemplate{
	Name:     "book_shelf",
	Kind:     enums.EntityBookShelf,
	Slice:    "book_shelf",
	Life:     25,
	Collider: domain.ColliderComponent{Shape: domain.ShapeCuboid, HalfW: 16, HalfH: 8},
}

var StoneLanternTemplate = EntityTemplate{
	Name:     "stone_lantern",
	Kind:     enums.EntityStoneLantern,
	Slice:    "stone_lantern",
	Life:     50,
	Collider: domain.ColliderComponent{Shape: domain.ShapeCuboid, HalfW: 8, HalfH: 8},
	Light: &domain.LightParams{
		Intensity: 1,
		Radius:    64,
		Falloff:   10,
		Color:     [4]float64{42, 1, 0.71, 1},
	},
}

var MagicCircleTemplate = EntityTemplate{
	Name:     "magic_circle",
	Kind:     enums.EntityMagicCircle,
	Slice:    "magic_circle",
	Collider: domain.ColliderComponent{Shape: domain.ShapeBall, Radius: 8},
}

var BrokenMagicCircleTemplate = EntityTemplate{
	Name:     "broken_magic_circle",
	Kind:     enums.EntityBrokenMagicCircle,
	Slice:    "broken_magic_circle",
	Collider: domain.ColliderComponent{Shape: domain.ShapeBall, Radius: 8},
}

// ChestGolds - сколько золота выпадает из сундука и ящика.
var ChestGolds = map[domain.ChestType]int{
	domain.ChestTypeChest: 10,
	domain.ChestTypeCrate: 1,
}
