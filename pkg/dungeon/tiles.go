package dungeon

import (
	"github.com/aratama/magiacircle/internal/core/types/enums"
	"github.com/aratama/magiacircle/internal/domain"
	"github.com/aratama/magiacircle/pkg/logger"
	"github.com/sirupsen/logrus"
)

// RoofCaps возвращает стены, которым нужна крыша: хотя бы один из
// восьми соседей открыт. Соседи за границей карты открыты, поэтому
// крайние стены всегда получают крышу.
func RoofCaps(m *domain.LevelTileMap) []domain.Position {
	var out []domain.Position
	for y := m.MinY; y < m.MaxY; y++ {
		for x := m.MinX; x < m.MaxX; x++ {
			if m.Equals(x, y, enums.TileWall) && hasOpenNeighbour(m, x, y) {
				out = append(out, domain.Position{X: x, Y: y})
			}
		}
	}
	return out
}

func hasOpenNeighbour(m *domain.LevelTileMap, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if (dx != 0 || dy != 0) && m.IsEmpty(x+dx, y+dy) {
				return true
			}
		}
	}
	return false
}

// RebuildTiles удаляет тайлы и крыши прошлой карты и создает новые:
// пол, лицевую сторону стен (если под стеной не стена) и крыши.
func RebuildTiles(w *domain.GameWorld, m *domain.LevelTileMap) (tiles, roofs int) {
	for _, kind := range []enums.EntityKind{enums.EntityTile, enums.EntityRoof} {
		for _, e := range w.EntitiesOf(kind) {
			w.Despawn(e.ID)
		}
	}

	for y := m.MinY; y < m.MaxY; y++ {
		for x := m.MinX; x < m.MaxX; x++ {
			cell := domain.Position{X: x, Y: y}
			corner := cell.Corner()

			switch m.GetTile(x, y) {
			case enums.TileFloor:
				w.Spawn(&domain.Entity{
					Kind:   enums.EntityTile,
					Name:   "stone_tile",
					Pos:    corner,
					Render: &domain.RenderComponent{Slice: "stone tile", Layer: domain.FloorLayerZ},
				})
				tiles++
			case enums.TileWall:
				if !m.Equals(x, y+1, enums.TileWall) {
					w.Spawn(&domain.Entity{
						Kind: enums.EntityTile,
						Name: "wall",
						Pos:  domain.Vec2{X: corner.X, Y: corner.Y - domain.TileHalf},
						Render: &domain.RenderComponent{
							Slice: "stone wall",
							Layer: domain.DepthLayer(corner),
						},
					})
					tiles++
				}
			}
		}
	}

	for _, cell := range RoofCaps(m) {
		w.Spawn(&domain.Entity{
			Kind:   enums.EntityRoof,
			Name:   "roof",
			Pos:    cell.Corner(),
			Render: &domain.RenderComponent{Slice: "roof", Layer: domain.RoofLayerZ},
		})
		roofs++
	}

	logger.For("roof_compositor").WithFields(logrus.Fields{
		"tiles": tiles,
		"roofs": roofs,
	}).Debug("Tiles and roofs rebuilt.")

	return tiles, roofs
}
