package dungeon

import (
	"github.com/aratama/magiacircle/internal/core/types/enums"
	"github.com/aratama/magiacircle/internal/domain"
	"github.com/aratama/magiacircle/pkg/logger"
	"github.com/sirupsen/logrus"
)

// WallColliders вычисляет коллайдеры стен по сетке.
// Каждая стена получает тело. Верхняя грань добавляется, только если
// над стеной не стена: внутренние стыки столбца стен грани не имеют.
func WallColliders(m *domain.LevelTileMap) []domain.ColliderComponent {
	var out []domain.ColliderComponent
	for y := m.MinY; y < m.MaxY; y++ {
		for x := m.MinX; x < m.MaxX; x++ {
			if !m.Equals(x, y, enums.TileWall) {
				continue
			}
			cell := domain.Position{X: x, Y: y}
			out = append(out, domain.ColliderComponent{
				Shape: domain.ShapeCuboid,
				HalfW: domain.TileHalf,
				HalfH: domain.TileHalf,
				Cell:  cell,
			})
			if !m.Equals(x, y-1, enums.TileWall) {
				out = append(out, domain.ColliderComponent{
					Shape: domain.ShapeTopEdge,
					HalfW: domain.TileHalf,
					Cell:  cell,
				})
			}
		}
	}
	return out
}

// RebuildWallColliders удаляет все коллайдеры стен и создает их заново.
// Частичного обновления нет: старые коллайдеры не переживают смену уровня.
func RebuildWallColliders(w *domain.GameWorld, m *domain.LevelTileMap) int {
	removed := 0
	for _, e := range w.EntitiesOf(enums.EntityWallCollider) {
		if w.Despawn(e.ID) {
			removed++
		}
	}

	colliders := WallColliders(m)
	for i := range colliders {
		c := colliders[i]
		pos := c.Cell.Center()
		if c.Shape == domain.ShapeTopEdge {
			pos.Y += domain.TileHalf
		}
		w.Spawn(&domain.Entity{
			Kind:     enums.EntityWallCollider,
			Name:     "wall_collider",
			Pos:      pos,
			Collider: &c,
		})
	}

	logger.For("collider_sync").WithFields(logrus.Fields{
		"removed": removed,
		"created": len(colliders),
	}).Debug("Wall colliders rebuilt.")

	return len(colliders)
}
