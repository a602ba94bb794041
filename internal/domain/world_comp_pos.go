package domain

import "math"

// Position - координата клетки сетки уровня.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Shift возвращает новую позицию со смещением
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// IsAdjacent возвращает true, если цель в соседней клетке (включая диагональ)
func (p Position) IsAdjacent(other Position) bool {
	dx := p.X - other.X
	dy := p.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx <= 1 && dy <= 1 && (dx != 0 || dy != 0)
}

// Center возвращает мировые координаты центра клетки.
// Ось Y мира направлена вверх, поэтому строки сетки уходят в минус.
func (p Position) Center() Vec2 {
	return Vec2{
		X: TileSize*float64(p.X) + TileHalf,
		Y: -TileSize*float64(p.Y) - TileHalf,
	}
}

// Corner возвращает мировые координаты левого верхнего угла клетки.
func (p Position) Corner() Vec2 {
	return Vec2{X: TileSize * float64(p.X), Y: -TileSize * float64(p.Y)}
}

// Vec2 - точка или вектор в мировых координатах (пиксели).
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

func (v Vec2) Scale(k float64) Vec2 { return Vec2{X: v.X * k, Y: v.Y * k} }

// DistanceTo возвращает расстояние до другой точки
func (v Vec2) DistanceTo(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// FromAngle строит вектор длины length по углу в радианах.
func FromAngle(angle, length float64) Vec2 {
	return Vec2{X: math.Cos(angle) * length, Y: math.Sin(angle) * length}
}

// Cell возвращает клетку, в которой лежит точка.
func (v Vec2) Cell() Position {
	return Position{
		X: int(math.Floor(v.X / TileSize)),
		Y: int(math.Floor(-v.Y / TileSize)),
	}
}
