package domain

import "github.com/aratama/magiacircle/internal/core/types/enums"

// EntityMarker - маркер сущности, найденный при декодировании карты.
type EntityMarker struct {
	Marker enums.GameEntity `json:"marker"`
	X      int              `json:"x"`
	Y      int              `json:"y"`
}

func (m EntityMarker) Pos() Position { return Position{X: m.X, Y: m.Y} }

// LevelTileMap - сетка уровня, декодированная из среза атласа.
// Границы: [MinX, MaxX) x [MinY, MaxY) в координатах изображения.
// Карта строится целиком при каждом входе на уровень и не патчится.
type LevelTileMap struct {
	MinX int `json:"minX"`
	MaxX int `json:"maxX"`
	MinY int `json:"minY"`
	MaxY int `json:"maxY"`

	// Tiles хранится построчно: индекс (y-MinY)*Width + (x-MinX)
	Tiles []enums.TileKind `json:"tiles"`

	Entities    []EntityMarker `json:"entities"`
	EntryPoints []Position     `json:"entryPoints"`

	// Empties - проходимые клетки без маркеров и точек входа.
	// Список уменьшается по мере расстановки врагов.
	Empties []Position `json:"empties"`
}

// NewLevelTileMap создает карту, заполненную Blank.
func NewLevelTileMap(minX, maxX, minY, maxY int) *LevelTileMap {
	m := &LevelTileMap{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}
	if w, h := m.Width(), m.Height(); w > 0 && h > 0 {
		m.Tiles = make([]enums.TileKind, w*h)
	}
	return m
}

func (m *LevelTileMap) Width() int  { return m.MaxX - m.MinX }
func (m *LevelTileMap) Height() int { return m.MaxY - m.MinY }

func (m *LevelTileMap) InBounds(x, y int) bool {
	return m.MinX <= x && x < m.MaxX && m.MinY <= y && y < m.MaxY
}

func (m *LevelTileMap) index(x, y int) int {
	return (y-m.MinY)*m.Width() + (x - m.MinX)
}

// GetTile возвращает вид клетки. За границами карты - Blank.
func (m *LevelTileMap) GetTile(x, y int) enums.TileKind {
	if !m.InBounds(x, y) {
		return enums.TileBlank
	}
	return m.Tiles[m.index(x, y)]
}

// SetTile меняет клетку внутри границ, вне границ игнорируется.
func (m *LevelTileMap) SetTile(x, y int, kind enums.TileKind) {
	if m.InBounds(x, y) {
		m.Tiles[m.index(x, y)] = kind
	}
}

// IsEmpty - "открытая" клетка, то есть не стена.
// Клетки за границей карты тоже считаются открытыми,
// поэтому стены по краю всегда получают крышу.
func (m *LevelTileMap) IsEmpty(x, y int) bool {
	return m.GetTile(x, y) != enums.TileWall
}

func (m *LevelTileMap) Equals(x, y int, kind enums.TileKind) bool {
	return m.GetTile(x, y) == kind
}

// IsWalkable - по клетке можно ходить (только пол).
func (m *LevelTileMap) IsWalkable(x, y int) bool {
	return m.GetTile(x, y) == enums.TileFloor
}

// CountTiles считает клетки указанного вида (для логов и дебага).
func (m *LevelTileMap) CountTiles(kind enums.TileKind) int {
	n := 0
	for _, t := range m.Tiles {
		if t == kind {
			n++
		}
	}
	return n
}
