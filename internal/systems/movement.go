package systems

import (
	"github.com/aratama/magiacircle/internal/domain"
)

// MovementResult - результат вычисления шага на одну клетку
type MovementResult struct {
	Target    domain.Position
	HasMoved  bool
	BlockedBy *domain.Entity // Если врезались в кого-то
	IsWall    bool           // Стена, пустота или край карты
}

// CalculateMove вычисляет шаг на соседнюю клетку. Не меняет состояние мира!
// Ходить можно только по полу; живые персонажи и разрушаемые объекты блокируют клетку.
func CalculateMove(e *domain.Entity, dx, dy int, w *domain.GameWorld) MovementResult {
	target := e.Cell().Shift(dx, dy)
	res := MovementResult{Target: target}

	// 1. Стены, пустота и границы
	if w.Map == nil || !w.Map.IsWalkable(target.X, target.Y) {
		res.IsWall = true
		return res
	}

	// 2. Проверка сущностей
	for _, other := range w.Entities() {
		if other.ID == e.ID || !blocksMovement(other) {
			continue
		}
		if other.Cell() == target {
			res.BlockedBy = other
			return res
		}
	}

	res.HasMoved = true
	return res
}

// ApplyMove ставит сущность в центр клетки назначения.
func ApplyMove(e *domain.Entity, res MovementResult) {
	if !res.HasMoved {
		return
	}
	e.Pos = res.Target.Center()
	if e.Render != nil {
		e.Render.Layer = domain.DepthLayer(e.Pos)
	}
}

// blocksMovement: тело есть у живых персонажей и разрушаемых объектов.
// Предметы, круги, снаряды и свет проходимы.
func blocksMovement(e *domain.Entity) bool {
	if e.Actor != nil {
		return !e.Actor.IsDead
	}
	return e.Breakable != nil
}
