package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/szydell/ufoai/internal/domain"
)

// RandomMap - имя карты, которую генерирует движок вместо чтения из файла
const RandomMap = "random"

var (
	ErrUnknownTeamDef = errors.New("unknown team definition")
	ErrUnknownItem    = errors.New("unknown item")
	ErrBadMap         = errors.New("invalid battle map")
)

// EquipmentEntry - оружие и запасные обоймы к нему
type EquipmentEntry struct {
	Item  string `yaml:"item"`
	Ammo  string `yaml:"ammo"`
	Clips int    `yaml:"clips"` // запасных обойм в рюкзак
}

// EquipmentDef - набор снаряжения для команды
type EquipmentDef struct {
	ID    string           `yaml:"id"`
	Items []EquipmentEntry `yaml:"items"`
}

// ObjectiveDef - цель миссии на карте
type ObjectiveDef struct {
	Name string         `yaml:"name"`
	Team string         `yaml:"team"`
	Pos  domain.GridPos `yaml:"pos"`
}

// MapDef - карта боя. Уровни задаются ASCII:
// '.' пол, '#' стена, '=' низкое укрытие, 'H' лестница, ' ' пустота.
type MapDef struct {
	Name       string                      `yaml:"name"`
	Night      bool                        `yaml:"night"`
	Levels     [][]string                  `yaml:"levels"`
	Spawns     map[string][]domain.GridPos `yaml:"spawns"`
	Waypoints  []domain.Waypoint           `yaml:"waypoints"`
	Objectives []ObjectiveDef              `yaml:"objectives"`
}

type itemsFile struct {
	Items []*domain.ItemDef `yaml:"items"`
}

type teamDefsFile struct {
	TeamDefs []*domain.TeamDef `yaml:"teamdefs"`
}

type equipmentFile struct {
	Equipment []*EquipmentDef `yaml:"equipment"`
}

// Catalog - все статические данные боя
type Catalog struct {
	Items     map[string]*domain.ItemDef
	TeamDefs  []*domain.TeamDef // порядок как в файле
	Equipment []*EquipmentDef
	Map       *MapDef
}

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// LoadCatalog читает items.yaml, teamdefs.yaml, equipment.yaml и карту mapFile из dir.
// Для RandomMap карта не читается (Catalog.Map == nil).
func LoadCatalog(dir, mapFile string) (*Catalog, error) {
	var (
		items  itemsFile
		teams  teamDefsFile
		equip  equipmentFile
		battle MapDef
	)
	if err := loadYAML(filepath.Join(dir, "items.yaml"), &items); err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}
	if err := loadYAML(filepath.Join(dir, "teamdefs.yaml"), &teams); err != nil {
		return nil, fmt.Errorf("load teamdefs: %w", err)
	}
	if err := loadYAML(filepath.Join(dir, "equipment.yaml"), &equip); err != nil {
		return nil, fmt.Errorf("load equipment: %w", err)
	}

	c := &Catalog{
		Items:     make(map[string]*domain.ItemDef, len(items.Items)),
		TeamDefs:  teams.TeamDefs,
		Equipment: equip.Equipment,
	}
	if mapFile != RandomMap {
		if err := loadYAML(filepath.Join(dir, mapFile), &battle); err != nil {
			return nil, fmt.Errorf("load map %s: %w", mapFile, err)
		}
		c.Map = &battle
	}
	for _, it := range items.Items {
		for i := range it.FireDefs {
			it.FireDefs[i].Index = i
		}
		c.Items[it.ID] = it
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// validate проверяет ссылки между файлами
func (c *Catalog) validate() error {
	for _, it := range c.Items {
		for _, ammo := range it.AmmoIDs {
			if _, ok := c.Items[ammo]; !ok {
				return fmt.Errorf("item %s ammo %s: %w", it.ID, ammo, ErrUnknownItem)
			}
		}
	}
	for _, td := range c.TeamDefs {
		if _, err := domain.ParseTeam(td.Team); err != nil {
			return fmt.Errorf("teamdef %s: %w", td.ID, err)
		}
		if td.MeleeItem != "" {
			if _, ok := c.Items[td.MeleeItem]; !ok {
				return fmt.Errorf("teamdef %s melee %s: %w", td.ID, td.MeleeItem, ErrUnknownItem)
			}
		}
		if td.Armour != "" {
			if _, ok := c.Items[td.Armour]; !ok {
				return fmt.Errorf("teamdef %s armour %s: %w", td.ID, td.Armour, ErrUnknownItem)
			}
		}
	}
	for _, eq := range c.Equipment {
		for _, e := range eq.Items {
			if _, ok := c.Items[e.Item]; !ok {
				return fmt.Errorf("equipment %s: %s: %w", eq.ID, e.Item, ErrUnknownItem)
			}
			if e.Ammo != "" {
				if _, ok := c.Items[e.Ammo]; !ok {
					return fmt.Errorf("equipment %s: %s: %w", eq.ID, e.Ammo, ErrUnknownItem)
				}
			}
		}
	}
	return nil
}

// Item возвращает описание предмета
func (c *Catalog) Item(id string) (*domain.ItemDef, error) {
	it, ok := c.Items[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, ErrUnknownItem)
	}
	return it, nil
}

// TeamDef ищет описание по id
func (c *Catalog) TeamDef(id string) (*domain.TeamDef, error) {
	for _, td := range c.TeamDefs {
		if td.ID == id {
			return td, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", id, ErrUnknownTeamDef)
}

// TeamDefsOf - все описания команды
func (c *Catalog) TeamDefsOf(team domain.Team) []*domain.TeamDef {
	var res []*domain.TeamDef
	for _, td := range c.TeamDefs {
		if t, err := domain.ParseTeam(td.Team); err == nil && t == team {
			res = append(res, td)
		}
	}
	return res
}

// EquipmentByName ищет набор по имени. Если такого нет - первый набор каталога.
func (c *Catalog) EquipmentByName(name string) *EquipmentDef {
	for _, eq := range c.Equipment {
		if eq.ID == name {
			return eq
		}
	}
	if len(c.Equipment) == 0 {
		return nil
	}
	return c.Equipment[0]
}

// BuildWorld строит мир по карте каталога
func (c *Catalog) BuildWorld() (*domain.World, error) {
	m := c.Map
	if m == nil || len(m.Levels) == 0 || len(m.Levels[0]) == 0 {
		return nil, fmt.Errorf("map has no levels: %w", ErrBadMap)
	}
	height := len(m.Levels[0])
	width := len(m.Levels[0][0])

	w := domain.NewWorld(width, height, len(m.Levels))
	w.Night = m.Night

	for z, rows := range m.Levels {
		if len(rows) != height {
			return nil, fmt.Errorf("level %d has %d rows, want %d: %w", z, len(rows), height, ErrBadMap)
		}
		for y, row := range rows {
			if len(row) != width {
				return nil, fmt.Errorf("level %d row %d has width %d, want %d: %w", z, y, len(row), width, ErrBadMap)
			}
			for x, ch := range row {
				kind, err := tileFromRune(ch)
				if err != nil {
					return nil, fmt.Errorf("level %d (%d,%d): %w", z, x, y, err)
				}
				if err := w.SetTile(domain.GridPos{X: x, Y: y, Z: z}, kind); err != nil {
					return nil, err
				}
			}
		}
	}

	// map в YAML порядка не хранит: команды по алфавиту, точки как в файле
	names := make([]string, 0, len(m.Spawns))
	for name := range m.Spawns {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		points := m.Spawns[name]
		team, err := domain.ParseTeam(name)
		if err != nil {
			return nil, fmt.Errorf("spawns: %w", err)
		}
		for _, p := range points {
			if !w.IsWalkable(p) {
				return nil, fmt.Errorf("spawn %v for %s is not walkable: %w", p, name, ErrBadMap)
			}
			w.SpawnPoints = append(w.SpawnPoints, domain.SpawnPoint{Pos: p, Team: team})
		}
	}

	for _, wp := range m.Waypoints {
		if !w.InBounds(wp.Pos) {
			return nil, fmt.Errorf("waypoint %v: %w", wp.Pos, ErrBadMap)
		}
		w.Waypoints = append(w.Waypoints, wp)
	}
	for _, o := range m.Objectives {
		team, err := domain.ParseTeam(o.Team)
		if err != nil {
			return nil, fmt.Errorf("objective %s: %w", o.Name, err)
		}
		if !w.InBounds(o.Pos) {
			return nil, fmt.Errorf("objective %s at %v: %w", o.Name, o.Pos, ErrBadMap)
		}
		w.Objectives = append(w.Objectives, domain.Objective{Name: o.Name, Pos: o.Pos, Team: team})
	}
	return w, nil
}

func tileFromRune(ch rune) (domain.TileKind, error) {
	switch ch {
	case '.':
		return domain.TileFloor, nil
	case '#':
		return domain.TileWall, nil
	case '=':
		return domain.TileCover, nil
	case 'H':
		return domain.TileStairs, nil
	case ' ':
		return domain.TileVoid, nil
	}
	return domain.TileVoid, fmt.Errorf("unknown tile %q: %w", ch, ErrBadMap)
}
