package dungeon

import (
	"math/rand"

	"github.com/aratama/magiacircle/internal/core/types"
	"github.com/aratama/magiacircle/internal/core/types/enums"
	"github.com/aratama/magiacircle/internal/domain"
	"github.com/aratama/magiacircle/pkg/logger"
	"github.com/sirupsen/logrus"
)

// LifeBarHandle - непрозрачная ссылка на ресурс полоски жизни у клиента.
// Ядро только передает ее спавнерам врагов.
type LifeBarHandle string

// DefaultLifeBar - полоска жизни по умолчанию.
const DefaultLifeBar LifeBarHandle = "life_bar"

// Spawner - функции создания сущностей уровня, по одной на вид.
// Позиции в мировых координатах. Создание "выстрелил и забыл".
type Spawner interface {
	SpawnWitch(name string, pos domain.Vec2) *domain.Entity
	SpawnEnemy(t EnemyTemplate, pos domain.Vec2, lifeBar LifeBarHandle)
	SpawnChest(pos domain.Vec2, chest domain.ChestType)
	SpawnBookShelf(pos domain.Vec2)
	SpawnStoneLantern(pos domain.Vec2)
	SpawnMagicCircle(pos domain.Vec2, dest domain.MagicCircleDestination)
	SpawnBrokenMagicCircle(pos domain.Vec2)
	SpawnPaint(pos domain.Vec2, slice string)
	SpawnDroppedItem(pos domain.Vec2, item domain.InventoryItem)
}

// WorldSpawner регистрирует сущности в арене текущей эпохи.
type WorldSpawner struct {
	World *domain.GameWorld
	rng   *rand.Rand
}

func NewWorldSpawner(w *domain.GameWorld, rng *rand.Rand) *WorldSpawner {
	return &WorldSpawner{World: w, rng: rng}
}

func (s *WorldSpawner) spawn(e *domain.Entity) types.EntityID {
	id := s.World.Spawn(e)
	logger.For("spawner").WithFields(logrus.Fields{
		"id":   id,
		"kind": e.Kind,
		"name": e.Name,
		"x":    e.Pos.X,
		"y":    e.Pos.Y,
	}).Trace("Entity spawned.")
	return id
}

func (s *WorldSpawner) SpawnWitch(name string, pos domain.Vec2) *domain.Entity {
	witch := CreateWitch(name, pos, s.rng)
	s.spawn(witch)
	return witch
}

func (s *WorldSpawner) SpawnEnemy(t EnemyTemplate, pos domain.Vec2, lifeBar LifeBarHandle) {
	s.spawn(t.SpawnEnemy(pos, lifeBar))
}

func (s *WorldSpawner) SpawnChest(pos domain.Vec2, chest domain.ChestType) {
	t := ChestTemplate
	if chest == domain.ChestTypeCrate {
		t = CrateTemplate
	}
	e := t.SpawnEntity(pos)
	e.Chest = &domain.ChestComponent{Type: chest, Golds: ChestGolds[chest]}
	s.spawn(e)
}

func (s *WorldSpawner) SpawnBookShelf(pos domain.Vec2) {
	s.spawn(BookShelfTemplate.SpawnEntity(pos))
}

// SpawnStoneLantern создает фонарь и отдельную сущность света,
// привязанную к нему.
func (s *WorldSpawner) SpawnStoneLantern(pos domain.Vec2) {
	lantern := StoneLanternTemplate.SpawnEntity(pos)
	owner := s.spawn(lantern)

	s.spawn(&domain.Entity{
		Kind:  enums.EntityLight,
		Name:  "lantern_light",
		Pos:   pos,
		Light: &domain.LightComponent{LightParams: *StoneLanternTemplate.Light, Owner: owner},
	})
}

func (s *WorldSpawner) SpawnMagicCircle(pos domain.Vec2, dest domain.MagicCircleDestination) {
	e := MagicCircleTemplate.SpawnEntity(pos)
	e.MagicCircle = &domain.MagicCircleComponent{Destination: dest}
	s.spawn(e)
}

func (s *WorldSpawner) SpawnBrokenMagicCircle(pos domain.Vec2) {
	e := BrokenMagicCircleTemplate.SpawnEntity(pos)
	e.MagicCircle = &domain.MagicCircleComponent{Broken: true}
	s.spawn(e)
}

// SpawnPaint - надпись на полу, без коллайдера.
func (s *WorldSpawner) SpawnPaint(pos domain.Vec2, slice string) {
	s.spawn(&domain.Entity{
		Kind:   enums.EntityPaint,
		Name:   slice,
		Pos:    pos,
		Render: &domain.RenderComponent{Slice: slice, Layer: domain.PaintLayerZ, Alpha: 0.7},
	})
}

func (s *WorldSpawner) SpawnDroppedItem(pos domain.Vec2, item domain.InventoryItem) {
	s.spawn(&domain.Entity{
		Kind:     enums.EntityDroppedItem,
		Name:     item.String(),
		Pos:      pos,
		Render:   &domain.RenderComponent{Slice: "dropped_item", Layer: domain.DepthLayer(pos)},
		Collider: &domain.ColliderComponent{Shape: domain.ShapeBall, Radius: 8},
		Dropped:  &domain.DroppedItemComponent{Item: item},
	})
}

// SpawnMarker создает сущность по маркеру карты.
// Неизвестные маркеры пропускаются: новые маркеры в редакторе карт не ломают сервер.
func SpawnMarker(s Spawner, m domain.EntityMarker) bool {
	corner := m.Pos().Corner()
	center := domain.Vec2{X: corner.X + domain.TileHalf, Y: corner.Y - domain.TileHalf}

	switch m.Marker {
	case enums.MarkerBookShelf:
		// Полка шириной в две клетки
		s.SpawnBookShelf(domain.Vec2{X: corner.X + domain.TileSize, Y: corner.Y - domain.TileHalf})
	case enums.MarkerChest:
		s.SpawnChest(center, domain.ChestTypeChest)
	case enums.MarkerCrate:
		s.SpawnChest(center, domain.ChestTypeCrate)
	case enums.MarkerMagicCircle:
		s.SpawnMagicCircle(center, domain.DestinationNextLevel)
	case enums.MarkerMultiPlayArenaMagicCircle:
		s.SpawnMagicCircle(center, domain.DestinationArena)
	case enums.MarkerBrokenMagicCircle:
		s.SpawnBrokenMagicCircle(center)
	case enums.MarkerStoneLantern:
		s.SpawnStoneLantern(center)
	case enums.MarkerUsage:
		s.SpawnPaint(corner, "usage")
	case enums.MarkerRoutes:
		s.SpawnPaint(corner, "routes")
	case enums.MarkerSpell:
		s.SpawnDroppedItem(center, domain.SpellItem(enums.SpellMagicBolt))
	case enums.MarkerWand:
		s.SpawnDroppedItem(center, domain.WandItem(enums.WandCypress))
	default:
		return false
	}
	return true
}
