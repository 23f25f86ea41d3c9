package systems

import (
	"github.com/szydell/ufoai/internal/domain"
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

func newTestBattlefield(w *domain.World) *Battlefield {
	return NewBattlefield(w, utils.NewRand(1))
}
