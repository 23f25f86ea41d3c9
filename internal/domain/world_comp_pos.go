package domain

import "math"

// GridPos - дискретная клетка (x, y, уровень)
type GridPos struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
	Z int `yaml:"z" json:"z"`
}

// Vec3 - мировые координаты
type Vec3 struct {
	X, Y, Z float64
}

// Vec возвращает мировые координаты центра клетки (на уровне пола).
func (p GridPos) Vec() Vec3 {
	return Vec3{
		X: (float64(p.X) + 0.5) * UnitSize,
		Y: (float64(p.Y) + 0.5) * UnitSize,
		Z: float64(p.Z) * UnitHeight,
	}
}

// Shift возвращает новую позицию со смещением (не меняя текущую)
func (p GridPos) Shift(dx, dy int) GridPos {
	return GridPos{X: p.X + dx, Y: p.Y + dy, Z: p.Z}
}

// DistanceTo - евклидово расстояние в клетках (уровни учитываются по высоте)
func (p GridPos) DistanceTo(other GridPos) float64 {
	return p.Vec().DistanceTo(other.Vec()) / UnitSize
}

// DirectionTo возвращает ближайшее из 8 направлений на точку.
// Для совпадающих клеток возвращает -1.
func (p GridPos) DirectionTo(other GridPos) int {
	dx := float64(other.X - p.X)
	dy := float64(other.Y - p.Y)
	if dx == 0 && dy == 0 {
		return -1
	}
	angle := math.Atan2(dy, dx)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return int(math.Round(angle/(math.Pi/4))) % 8
}

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Scale(f float64) Vec3 { return Vec3{v.X * f, v.Y * f, v.Z * f} }

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Length() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize возвращает единичный вектор (нулевой вектор остается нулевым)
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

func (v Vec3) DistanceTo(o Vec3) float64 { return v.Sub(o).Length() }

// DistanceSquaredTo - квадрат расстояния для сравнения без корней
func (v Vec3) DistanceSquaredTo(o Vec3) float64 {
	d := v.Sub(o)
	return d.Dot(d)
}
