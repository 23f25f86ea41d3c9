package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/szydell/ufoai/internal/domain"
	"github.com/szydell/ufoai/pkg/logger"
)

// HasLineOfSight проверяет прямую видимость между двумя клетками одного уровня.
// low=true - луч идет на уровне ног/корпуса и задевает низкие укрытия.
// Использует алгоритм Брезенхэма (только целочисленная арифметика).
func HasLineOfSight(w *domain.World, p1, p2 domain.GridPos, low bool) bool {
	// Между уровнями не смотрим
	if p1.Z != p2.Z {
		return false
	}
	if p1 == p2 {
		return true
	}

	x0, y0 := p1.X, p1.Y
	x1, y1 := p2.X, p2.Y

	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}

	sx, sy := sign(x1-x0), sign(y1-y0)
	err := dx - dy

	for {
		// Проверяем препятствия, ИСКЛЮЧАЯ стартовую и конечную точки.
		isStart := x0 == p1.X && y0 == p1.Y
		isEnd := x0 == p2.X && y0 == p2.Y

		if !isStart && !isEnd {
			cell := domain.GridPos{X: x0, Y: y0, Z: p1.Z}
			if w.BlocksSight(cell) || (low && w.BlocksLow(cell)) {
				if logger.Log.IsLevelEnabled(logrus.TraceLevel) {
					logger.Log.WithFields(logrus.Fields{
						"component":      "physics_system",
						"start_pos":      p1,
						"end_pos":        p2,
						"blocking_point": cell,
						"low":            low,
					}).Trace("Line of sight blocked")
				}
				return false
			}
		}

		if x0 == x1 && y0 == y1 {
			break
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

	return true
}

// VecToGrid переводит мировые координаты в клетку
func VecToGrid(v domain.Vec3) domain.GridPos {
	return domain.GridPos{
		X: floorDiv(v.X, domain.UnitSize),
		Y: floorDiv(v.Y, domain.UnitSize),
		Z: floorDiv(v.Z, domain.UnitHeight),
	}
}

func floorDiv(v float64, size float64) int {
	q := v / size
	i := int(q)
	if q < 0 && float64(i) != q {
		i--
	}
	return i
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
