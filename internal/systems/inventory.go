package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/szydell/ufoai/internal/domain"
	"github.com/szydell/ufoai/pkg/logger"
)

// TUDrawWeapon - стоимость достать оружие из рюкзака
const TUDrawWeapon = 2

// findAmmo ищет в рюкзаке патроны к оружию. -1 - нет.
func findAmmo(inv *domain.InventoryComponent, weapon *domain.Item) int {
	for i, it := range inv.Backpack {
		if weapon.Def.AcceptsAmmo(it.Def) {
			return i
		}
	}
	return -1
}

// CanReload - есть патроны в рюкзаке и хватает TU
func (b *Battlefield) CanReload(u *domain.Unit, hand domain.Hand) bool {
	weapon := u.Inv.Held(hand)
	if !weapon.NeedsAmmo() {
		return false
	}
	if u.TU < weapon.Def.Reload {
		return false
	}
	return findAmmo(u.Inv, weapon) >= 0
}

// Reload перезаряжает оружие в руке патронами из рюкзака
func (b *Battlefield) Reload(u *domain.Unit, hand domain.Hand) bool {
	if !b.CanReload(u, hand) {
		return false
	}
	weapon := u.Inv.Held(hand)
	clip := u.Inv.RemoveFromBackpack(findAmmo(u.Inv, weapon))

	rounds := clip.Ammo
	if rounds <= 0 {
		rounds = weapon.Def.Capacity
	}
	weapon.AmmoDef = clip.Def
	weapon.Ammo = rounds
	u.TU -= weapon.Def.Reload

	logger.Log.WithFields(logrus.Fields{
		"component": "inventory_system",
		"unit_id":   u.ID,
		"weapon":    weapon.Def.ID,
		"ammo":      clip.Def.ID,
		"rounds":    rounds,
	}).Info("Weapon reloaded.")
	return true
}

// DropToFloor освобождает руку, кладя предмет на пол под юнитом
func (b *Battlefield) DropToFloor(u *domain.Unit, hand domain.Hand) {
	it := u.Inv.Held(hand)
	if it == nil {
		return
	}
	u.Inv.SetHeld(hand, nil)
	b.World.DropToFloor(u.Pos, it)

	logger.Log.WithFields(logrus.Fields{
		"component": "inventory_system",
		"unit_id":   u.ID,
		"item":      it.Def.ID,
		"hand":      hand.String(),
	}).Info("Item dropped to floor.")
}

// DrawWeapon берет в правую руку первое пригодное оружие из рюкзака.
// Оружие без патронов берется, только если к нему есть патроны в рюкзаке.
func (b *Battlefield) DrawWeapon(u *domain.Unit) bool {
	if u.Inv == nil || !u.Inv.HandsEmpty() || u.TU < TUDrawWeapon {
		return false
	}
	for i, it := range u.Inv.Backpack {
		if it.Def == nil || !it.Def.Weapon {
			continue
		}
		if !it.CanShoot() && (!it.NeedsAmmo() || findAmmo(u.Inv, it) < 0) {
			continue
		}
		u.Inv.RemoveFromBackpack(i)
		u.Inv.Right = it
		u.TU -= TUDrawWeapon

		logger.Log.WithFields(logrus.Fields{
			"component": "inventory_system",
			"unit_id":   u.ID,
			"weapon":    it.Def.ID,
		}).Info("Weapon drawn from backpack.")
		return true
	}
	return false
}
