package systems

import (
	"github.com/aratama/magiacircle/internal/core/types/enums"
	"github.com/aratama/magiacircle/internal/domain"
	"github.com/aratama/magiacircle/pkg/logger"
	"github.com/sirupsen/logrus"
)

// TraceLine идет по клеткам от p1 к p2 алгоритмом Брезенхэма.
// Возвращает первую стену на пути и true, либо p2 и false.
// Стартовая клетка не проверяется: снаряд, вылетевший из стены, не застревает.
func TraceLine(m *domain.LevelTileMap, p1, p2 domain.Position) (stop domain.Position, blocked bool) {
	x0, y0 := p1.X, p1.Y
	x1, y1 := p2.X, p2.Y

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	err := dx - dy

	for {
		cell := domain.Position{X: x0, Y: y0}
		if cell != p1 && m.Equals(x0, y0, enums.TileWall) {
			return cell, true
		}
		if x0 == x1 && y0 == y1 {
			return cell, false
		}

		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// HasLineOfSight проверяет прямую видимость между двумя клетками.
// Конечная клетка может быть стеной: видим саму стену.
func HasLineOfSight(m *domain.LevelTileMap, p1, p2 domain.Position) bool {
	if p1 == p2 {
		return true
	}
	stop, blocked := TraceLine(m, p1, p2)
	visible := !blocked || stop == p2

	logger.For("physics_system").WithFields(logrus.Fields{
		"from":    p1,
		"to":      p2,
		"visible": visible,
	}).Trace("Line of sight checked.")

	return visible
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
