package mapgen

import (
	"math/rand"

	"github.com/szydell/ufoai/internal/config"
	"github.com/szydell/ufoai/internal/domain"
)

// Константы генерации
const (
	MapWidth     = 32
	MapHeight    = 20
	MaxBuildings = 6
	MinSize      = 5
	MaxSize      = 9
	CoverPieces  = 10

	// edge - свободные колонки у левого и правого края для точек появления
	edge = 3
)

// Rect - прямоугольник здания
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.W && r.X+r.W >= other.X &&
		r.Y <= other.Y+other.H && r.Y+r.H >= other.Y
}

// Contains - клетка внутри прямоугольника (включая стены)
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// grown - прямоугольник с отступом в одну клетку (проход между зданиями)
func (r Rect) grown() Rect {
	return Rect{X: r.X - 1, Y: r.Y - 1, W: r.W + 2, H: r.H + 2}
}

// Generate строит одноуровневую карту: открытое поле, здания с дверью,
// низкие укрытия. Пришельцы появляются у левого края, люди у правого,
// гражданские внутри зданий. Цепочка точек ведет по нижнему ряду налево.
func Generate(rng *rand.Rand, spawnsPerTeam int) *config.MapDef {
	// 1. Заполняем полом
	grid := make([][]byte, MapHeight)
	for y := range grid {
		grid[y] = make([]byte, MapWidth)
		for x := range grid[y] {
			grid[y][x] = '.'
		}
	}

	// 2. Здания. Нижний ряд остается свободным под цепочку точек.
	var rooms []Rect
	for attempt := 0; attempt < MaxBuildings*4 && len(rooms) < MaxBuildings; attempt++ {
		w := randRange(rng, MinSize, MaxSize)
		h := randRange(rng, MinSize, MaxSize)
		room := Rect{
			X: randRange(rng, edge, MapWidth-edge-w),
			Y: randRange(rng, 1, MapHeight-2-h),
			W: w,
			H: h,
		}

		failed := false
		for _, other := range rooms {
			if room.grown().Intersects(other) {
				failed = true
				break
			}
		}
		if failed {
			continue
		}
		buildRoom(rng, grid, room)
		rooms = append(rooms, room)
	}

	// 3. Укрытия вне зданий, по две клетки. Только каждый третий ряд:
	// из них нельзя собрать замкнутый контур.
	for placed, attempt := 0, 0; placed < CoverPieces && attempt < CoverPieces*10; attempt++ {
		x := randRange(rng, edge, MapWidth-edge-2)
		y := 3 * randRange(rng, 1, (MapHeight-3)/3)
		if insideAny(rooms, x, y) || insideAny(rooms, x+1, y) {
			continue
		}
		grid[y][x], grid[y][x+1] = '=', '='
		placed++
	}

	m := &config.MapDef{
		Name:   "generated",
		Levels: [][]string{toRows(grid)},
		Spawns: make(map[string][]domain.GridPos),
	}

	// 4. Точки появления
	rows := MapHeight - 1
	n := min(spawnsPerTeam, rows)
	for _, y := range rng.Perm(rows)[:n] {
		m.Spawns[domain.TeamAlien.String()] = append(m.Spawns[domain.TeamAlien.String()], domain.GridPos{X: 0, Y: y})
	}
	for _, y := range rng.Perm(rows)[:n] {
		m.Spawns[domain.TeamPhalanx.String()] = append(m.Spawns[domain.TeamPhalanx.String()], domain.GridPos{X: MapWidth - 1, Y: y})
	}
	m.Spawns[domain.TeamCivilian.String()] = civilianSpawns(rng, grid, rooms, n)

	// 5. Цепочка для гражданских
	m.Waypoints = []domain.Waypoint{
		{Pos: domain.GridPos{X: MapWidth / 2, Y: MapHeight - 1}, Count: 3},
		{Pos: domain.GridPos{X: MapWidth / 4, Y: MapHeight - 1}, Count: 2},
		{Pos: domain.GridPos{X: 0, Y: MapHeight - 1}, Count: 1},
	}
	return m
}

// --- Вспомогательные функции ---

// buildRoom - стены по периметру и одна дверь не в углу
func buildRoom(rng *rand.Rand, grid [][]byte, room Rect) {
	for y := room.Y; y < room.Y+room.H; y++ {
		for x := room.X; x < room.X+room.W; x++ {
			wall := y == room.Y || y == room.Y+room.H-1 || x == room.X || x == room.X+room.W-1
			if wall {
				grid[y][x] = '#'
			} else {
				grid[y][x] = '.'
			}
		}
	}

	switch rng.Intn(4) {
	case 0:
		grid[room.Y][randRange(rng, room.X+1, room.X+room.W-2)] = '.'
	case 1:
		grid[room.Y+room.H-1][randRange(rng, room.X+1, room.X+room.W-2)] = '.'
	case 2:
		grid[randRange(rng, room.Y+1, room.Y+room.H-2)][room.X] = '.'
	default:
		grid[randRange(rng, room.Y+1, room.Y+room.H-2)][room.X+room.W-1] = '.'
	}
}

// civilianSpawns - центры зданий, остальные в середине поля
func civilianSpawns(rng *rand.Rand, grid [][]byte, rooms []Rect, n int) []domain.GridPos {
	res := make([]domain.GridPos, 0, n)
	used := make(map[domain.GridPos]bool)
	for _, r := range rooms {
		if len(res) == n {
			return res
		}
		cx, cy := r.Center()
		p := domain.GridPos{X: cx, Y: cy}
		res = append(res, p)
		used[p] = true
	}
	for attempt := 0; len(res) < n && attempt < n*20; attempt++ {
		p := domain.GridPos{
			X: randRange(rng, edge, MapWidth-edge-1),
			Y: randRange(rng, 0, MapHeight-2),
		}
		if used[p] || grid[p.Y][p.X] != '.' || insideAny(rooms, p.X, p.Y) {
			continue
		}
		res = append(res, p)
		used[p] = true
	}
	return res
}

func insideAny(rooms []Rect, x, y int) bool {
	for _, r := range rooms {
		if r.grown().Contains(x, y) {
			return true
		}
	}
	return false
}

func toRows(grid [][]byte) []string {
	rows := make([]string, len(grid))
	for y, row := range grid {
		rows[y] = string(row)
	}
	return rows
}

func randRange(rng *rand.Rand, min, max int) int {
	return rng.Intn(max-min+1) + min
}
