package engine

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/szydell/ufoai/internal/config"
	"github.com/szydell/ufoai/internal/domain"
	"github.com/szydell/ufoai/pkg/logger"
	"github.com/szydell/ufoai/pkg/utils"
)

var ErrAIDisabled = errors.New("ai is disabled")

// Spawner расставляет юнитов игрока ИИ по точкам появления
type Spawner struct {
	World   *domain.World
	Catalog *config.Catalog
	Config  Config
	Rng     *rand.Rand
}

func NewSpawner(w *domain.World, c *config.Catalog, cfg Config, rng *rand.Rand) *Spawner {
	if rng == nil {
		rng = utils.NewRand(cfg.Seed)
	}
	return &Spawner{World: w, Catalog: c, Config: cfg, Rng: rng}
}

// unitCount - сколько юнитов выставить команде
func (s *Spawner) unitCount(team domain.Team) int {
	switch {
	case team == domain.TeamCivilian:
		return s.Config.NumCivilians
	case team == domain.TeamPhalanx, s.Config.Multiplayer:
		return s.Config.NumActors
	default:
		return s.Config.NumAliens
	}
}

// CreatePlayer создает игрока ИИ и его юнитов
func (s *Spawner) CreatePlayer(team domain.Team) (*AIPlayer, error) {
	if !s.Config.AIEnabled {
		return nil, ErrAIDisabled
	}
	spawnLogger := logger.Log.WithFields(logrus.Fields{
		"component": "spawner",
		"team":      team.String(),
	})

	points := s.freeSpawnPoints(team)
	count := s.unitCount(team)
	if count > len(points) {
		spawnLogger.WithFields(logrus.Fields{
			"wanted":    count,
			"available": len(points),
		}).Warn("Not enough spawn points, spawning fewer units")
		count = len(points)
	}

	for n, idx := range utils.PickDistinct(s.Rng, len(points), count) {
		td, err := s.teamDefFor(team)
		if err != nil {
			return nil, err
		}
		u, err := s.spawnUnit(team, td, points[idx].Pos, n)
		if err != nil {
			return nil, err
		}
		s.World.AddUnit(u)

		spawnLogger.WithFields(logrus.Fields{
			"unit_id": u.ID,
			"name":    u.Name,
			"pos":     u.Pos,
			"tu":      u.TU,
			"hp":      u.HP(),
		}).Debug("Unit spawned")
	}

	spawnLogger.WithField("units", count).Info("AI player created")
	return &AIPlayer{Name: team.String(), Team: team}, nil
}

// freeSpawnPoints - точки команды, где никто не стоит
func (s *Spawner) freeSpawnPoints(team domain.Team) []domain.SpawnPoint {
	var res []domain.SpawnPoint
	for _, sp := range s.World.SpawnPointsOf(team) {
		if s.World.UnitAt(sp.Pos) == nil {
			res = append(res, sp)
		}
	}
	return res
}

// teamDefFor - гражданским заданная раса, остальным случайная из своей команды
func (s *Spawner) teamDefFor(team domain.Team) (*domain.TeamDef, error) {
	if team == domain.TeamCivilian {
		return s.Catalog.TeamDef(s.Config.CivilianTeam)
	}
	defs := s.Catalog.TeamDefsOf(team)
	if len(defs) == 0 {
		return nil, fmt.Errorf("no team definition for %s: %w", team, config.ErrUnknownTeamDef)
	}
	return defs[s.Rng.Intn(len(defs))], nil
}

func (s *Spawner) spawnUnit(team domain.Team, td *domain.TeamDef, pos domain.GridPos, n int) (*domain.Unit, error) {
	hp := rollRange(s.Rng, td.HP)
	tu := rollRange(s.Rng, td.TU)

	u := &domain.Unit{
		Name:    fmt.Sprintf("%s-%d", td.ID, n+1),
		Team:    team,
		Pos:     pos,
		Dir:     s.Rng.Intn(8),
		TeamDef: td,
		Stats: &domain.StatsComponent{
			HP:          hp,
			MaxHP:       hp,
			Morale:      rollRange(s.Rng, td.Morale),
			Accuracy:    rollRange(s.Rng, td.Accuracy),
			WeaponSkill: rollRange(s.Rng, td.WeaponSkill),
		},
		AI:  domain.NewAIComponent(s.Config.TeamStrategy[team.String()]),
		Inv: &domain.InventoryComponent{},
	}

	if td.Armour != "" {
		def, err := s.Catalog.Item(td.Armour)
		if err != nil {
			return nil, err
		}
		u.Inv.Armour = &domain.Item{Def: def}
	}

	if team != domain.TeamCivilian {
		if err := s.equip(u, td); err != nil {
			return nil, err
		}
		u.SetState(domain.StateReaction, true)
	}

	u.MaxTU = tu
	u.TU = tu
	return u, nil
}

// equip выдает снаряжение: вооруженным - набор из настроек, остальным - оружие ближнего боя
func (s *Spawner) equip(u *domain.Unit, td *domain.TeamDef) error {
	if !td.Weapons {
		if td.MeleeItem == "" {
			logger.Log.WithFields(logrus.Fields{
				"component": "spawner",
				"teamdef":   td.ID,
			}).Warn("Team can't use weapons and has no melee item")
			return nil
		}
		def, err := s.Catalog.Item(td.MeleeItem)
		if err != nil {
			return err
		}
		u.Inv.Right = &domain.Item{Def: def}
		return nil
	}

	eq := s.Catalog.EquipmentByName(s.Config.Equipment)
	if eq == nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "spawner",
			"equipment": s.Config.Equipment,
		}).Warn("No equipment definitions, unit spawns unarmed")
		return nil
	}

	for _, entry := range eq.Items {
		def, err := s.Catalog.Item(entry.Item)
		if err != nil {
			return err
		}
		item := &domain.Item{Def: def}

		var ammo *domain.ItemDef
		if entry.Ammo != "" {
			if ammo, err = s.Catalog.Item(entry.Ammo); err != nil {
				return err
			}
			if def.AcceptsAmmo(ammo) {
				item.AmmoDef = ammo
				item.Ammo = def.Capacity
			}
		}

		switch {
		case u.Inv.Right == nil:
			u.Inv.Right = item
		case u.Inv.Left == nil:
			u.Inv.Left = item
		default:
			u.Inv.Backpack = append(u.Inv.Backpack, item)
		}
		for i := 0; i < entry.Clips && ammo != nil; i++ {
			u.Inv.Backpack = append(u.Inv.Backpack, &domain.Item{Def: ammo})
		}
	}
	return nil
}

// rollRange - случайное число из [lo, hi]
func rollRange(r *rand.Rand, bounds [2]int) int {
	lo, hi := bounds[0], bounds[1]
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}
