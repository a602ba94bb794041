package dungeon

import (
	"testing"

	"github.com/aratama/magiacircle/internal/core/types/enums"
	"github.com/aratama/magiacircle/internal/domain"
)

func collidersAt(cs []domain.ColliderComponent, p domain.Position) (body, top int) {
	for _, c := range cs {
		if c.Cell != p {
			continue
		}
		switch c.Shape {
		case domain.ShapeTopEdge:
			top++
		default:
			body++
		}
	}
	return body, top
}

func TestWallColliders_StackedWalls(t *testing.T) {
	// Столбец из двух стен над полом
	m := domain.NewLevelTileMap(0, 1, 0, 3)
	m.SetTile(0, 0, enums.TileFloor)
	m.SetTile(0, 1, enums.TileWall)
	m.SetTile(0, 2, enums.TileWall)

	cs := WallColliders(m)

	body, top := collidersAt(cs, domain.Position{X: 0, Y: 1})
	if body != 1 || top != 1 {
		t.Errorf("Wall under floor: body=%d top=%d, want 1/1", body, top)
	}
	body, top = collidersAt(cs, domain.Position{X: 0, Y: 2})
	if body != 1 || top != 0 {
		t.Errorf("Wall under wall: body=%d top=%d, want 1/0", body, top)
	}
	if len(cs) != 3 {
		t.Errorf("Expected 3 colliders, got %d", len(cs))
	}
}

func TestRebuildWallColliders_ReplacesPreviousSet(t *testing.T) {
	w := domain.NewGameWorld()

	big := domain.NewLevelTileMap(0, 3, 0, 1)
	for x := 0; x < 3; x++ {
		big.SetTile(x, 0, enums.TileWall)
	}
	if n := RebuildWallColliders(w, big); n != 6 {
		t.Fatalf("Expected 6 colliders, got %d", n)
	}

	small := domain.NewLevelTileMap(0, 1, 0, 1)
	small.SetTile(0, 0, enums.TileWall)
	RebuildWallColliders(w, small)

	if got := w.CountOf(enums.EntityWallCollider); got != 2 {
		t.Errorf("Stale colliders survived: %d in arena", got)
	}
}
