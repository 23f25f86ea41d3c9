package ai

import (
	"github.com/szydell/ufoai/internal/domain"
	"github.com/szydell/ufoai/internal/systems"
	"github.com/szydell/ufoai/pkg/utils"
)

var (
	testAmmo = &domain.ItemDef{
		ID: "rifle_ammo",
		FireDefs: []domain.FireDef{
			{Name: "single", Time: 10, Damage: [2]float64{30, 0}, Shots: 1, Range: 20 * domain.UnitSize, DamageType: "normal", Reaction: true},
		},
	}
	testRifle = &domain.ItemDef{ID: "rifle", Weapon: true, Reload: 8, Capacity: 10, AmmoIDs: []string{"rifle_ammo"}}
)

func newRifle(rounds int) *domain.Item {
	return &domain.Item{Def: testRifle, AmmoDef: testAmmo, Ammo: rounds}
}

// createTestWorld строит один уровень из ASCII: '#' - стена, '=' - низкое укрытие
func createTestWorld(rows ...string) *domain.World {
	w := domain.NewWorld(len(rows[0]), len(rows), 1)
	for y, row := range rows {
		for x, ch := range row {
			p := domain.GridPos{X: x, Y: y}
			switch ch {
			case '#':
				_ = w.SetTile(p, domain.TileWall)
			case '=':
				_ = w.SetTile(p, domain.TileCover)
			}
		}
	}
	return w
}

func openWorld(width, height int) *domain.World {
	return domain.NewWorld(width, height, 1)
}

func newTestUnit(w *domain.World, team domain.Team, pos domain.GridPos, tu, hp int) *domain.Unit {
	u := &domain.Unit{
		Team:  team,
		Pos:   pos,
		TU:    tu,
		MaxTU: tu,
		Stats: &domain.StatsComponent{HP: hp, MaxHP: hp, Accuracy: 50, WeaponSkill: 50},
		AI:    domain.NewAIComponent(""),
		Inv:   &domain.InventoryComponent{},
	}
	w.AddUnit(u)
	return u
}

// testConfig - веса по умолчанию без случайных слагаемых
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Weights.Random = 0
	cfg.Weights.CivRandom = 0
	return cfg
}

func newTestDeps(w *domain.World) (Deps, *systems.Battlefield) {
	bf := systems.NewBattlefield(w, utils.NewRand(1))
	return NewDeps(w, bf, utils.NewRand(1), nil), bf
}

func newTestScorer(w *domain.World, cfg Config) *Scorer {
	d, _ := newTestDeps(w)
	return NewScorer(d, cfg, nil)
}
