package dungeon

import (
	"errors"
	"fmt"
	"image"

	"github.com/aratama/magiacircle/internal/core/types"
	"github.com/aratama/magiacircle/internal/core/types/enums"
	"github.com/aratama/magiacircle/internal/domain"
)

var (
	ErrNoEntryPoint     = errors.New("level has no entry point")
	ErrSliceOutOfBounds = errors.New("slice lies outside the atlas image")
)

// DecodeTileMap превращает прямоугольник изображения в сетку уровня.
//
// Каждый пиксель классифицируется точным совпадением цвета. Маркеры и точки
// входа записываются по координатам, а клетка под ними считается полом.
// В список пустых клеток попадает только пол без маркеров и точек входа,
// иначе враги встанут на сундук или на место появления ведьмы.
func DecodeTileMap(img image.Image, rect image.Rectangle, pal Palette) (*domain.LevelTileMap, error) {
	if rect.Empty() || !rect.In(img.Bounds()) {
		return nil, fmt.Errorf("%w: %v not in %v", ErrSliceOutOfBounds, rect, img.Bounds())
	}

	m := domain.NewLevelTileMap(rect.Min.X, rect.Max.X, rect.Min.Y, rect.Max.Y)

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			entry, ok := pal[types.PixelFromColor(img.At(x, y))]
			if !ok {
				continue // Blank
			}
			m.SetTile(x, y, entry.Tile)

			claimed := false
			if entry.Entry {
				m.EntryPoints = append(m.EntryPoints, domain.Position{X: x, Y: y})
				claimed = true
			}
			if entry.Marker != enums.MarkerUnknown {
				m.Entities = append(m.Entities, domain.EntityMarker{Marker: entry.Marker, X: x, Y: y})
				claimed = true
			}
			if !claimed && entry.Tile == enums.TileFloor {
				m.Empties = append(m.Empties, domain.Position{X: x, Y: y})
			}
		}
	}

	if len(m.EntryPoints) == 0 {
		return nil, fmt.Errorf("%w: rect %v", ErrNoEntryPoint, rect)
	}
	return m, nil
}
