package domain

// Геометрия мира
const (
	TileSize = 16.0
	TileHalf = TileSize / 2
)

// Емкости
const (
	MaxItemsInInventory = 64
	MaxItemsInEquipment = 4
	MaxWands            = 4
	MaxSpellsInWand     = 8
)

// Уровни
const (
	// DefaultLevels - число обычных уровней, индекс берется по модулю.
	DefaultLevels = 10

	// EnemyDensityThreshold - врагов не спавним, если пустых клеток не больше.
	EnemyDensityThreshold = 20

	// EnemiesPerKind - сколько врагов каждого вида расставляется на уровне.
	EnemiesPerKind = 10
)

// Стартовые параметры ведьмы
const (
	PlayerLife    = 150
	PlayerGolds   = 10
	PlayerMana    = 1000
	ManaRegenTick = 1
)

// HealAmount - сколько жизни восстанавливает заклинание лечения.
const HealAmount = 10

// Враги
const (
	// EnemySightRadius - дальность обзора врага в клетках.
	EnemySightRadius = 8.0

	// EnemyStepInterval - враг делает шаг раз в столько тиков.
	EnemyStepInterval = 30

	// EnemyContactDamage - урон при касании ведьмы.
	EnemyContactDamage = 4
)

// InteractRange - дальность взаимодействия в пикселях (полторы клетки).
const InteractRange = TileSize * 1.5

// Слои отрисовки
const (
	FloorLayerZ  = 0.0
	PaintLayerZ  = 1.0
	EntityLayerZ = 10.0
	BulletLayerZ = 50.0
	RoofLayerZ   = 100.0
	ZOrderScale  = 0.001
)

// DepthLayer - слой сущности по глубине: ниже по экрану - ближе к зрителю.
func DepthLayer(pos Vec2) float64 {
	return EntityLayerZ - pos.Y*ZOrderScale
}
