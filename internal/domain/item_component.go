package domain

// FireDef описывает режим огня оружия (только чтение).
type FireDef struct {
	Name         string     `yaml:"name"`
	Time         int        `yaml:"time"`          // стоимость активации в TU
	Damage       [2]float64 `yaml:"damage"`        // база, разброс
	SplashDamage [2]float64 `yaml:"splash_damage"` // база, разброс
	Shots        int        `yaml:"shots"`         // выстрелов за активацию
	Spread       [2]float64 `yaml:"spread"`        // градусы: pitch, yaw
	Range        float64    `yaml:"range"`         // мировые единицы
	SplashRadius float64    `yaml:"splash_radius"` // мировые единицы
	DamageType   string     `yaml:"damage_type"`
	Reaction     bool       `yaml:"reaction"` // годится для огня на реакции

	// Index - порядковый номер режима у оружия (заполняется загрузчиком)
	Index int `yaml:"-"`
}

// ItemDef - описание типа предмета из каталога
type ItemDef struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Weapon bool   `yaml:"weapon"`

	// Reload - TU на перезарядку. 0 означает, что патроны не нужны (нож, когти).
	Reload   int      `yaml:"reload"`
	Capacity int      `yaml:"capacity"`
	AmmoIDs  []string `yaml:"ammo"`

	// FireDefs - режимы огня. У патронов - режимы для совместимого оружия,
	// у оружия без патронов - собственные.
	FireDefs []FireDef `yaml:"firedefs"`

	Armour     bool           `yaml:"armour"`
	Protection map[string]int `yaml:"protection"` // проценты по типу урона
}

// Item - конкретный экземпляр предмета у юнита или на полу
type Item struct {
	Def     *ItemDef
	AmmoDef *ItemDef
	Ammo    int
}

// NeedsAmmo - оружие, которому нужны патроны
func (it *Item) NeedsAmmo() bool {
	return it != nil && it.Def != nil && it.Def.Reload > 0
}

// IsEmpty - оружие с патронами, у которого они кончились
func (it *Item) IsEmpty() bool {
	return it.NeedsAmmo() && it.Ammo <= 0
}

// CanShoot проверяет, можно ли стрелять из предмета прямо сейчас.
func (it *Item) CanShoot() bool {
	if it == nil || it.Def == nil || !it.Def.Weapon {
		return false
	}
	if it.NeedsAmmo() {
		return it.AmmoDef != nil && it.Ammo > 0
	}
	return true
}

// FiredefsForItem возвращает режимы огня для предмета.
// Для оружия с патронами режимы берутся у патронов.
func FiredefsForItem(it *Item) []FireDef {
	if it == nil || it.Def == nil {
		return nil
	}
	if it.NeedsAmmo() {
		if it.AmmoDef == nil {
			return nil
		}
		return it.AmmoDef.FireDefs
	}
	return it.Def.FireDefs
}

// AcceptsAmmo проверяет совместимость патронов с оружием
func (d *ItemDef) AcceptsAmmo(ammo *ItemDef) bool {
	if d == nil || ammo == nil {
		return false
	}
	for _, id := range d.AmmoIDs {
		if id == ammo.ID {
			return true
		}
	}
	return false
}

// InventoryComponent - руки, рюкзак и броня юнита
type InventoryComponent struct {
	Right    *Item
	Left     *Item
	Backpack []*Item
	Armour   *Item
}

// Held возвращает предмет в руке
func (inv *InventoryComponent) Held(h Hand) *Item {
	if inv == nil {
		return nil
	}
	if h == HandLeft {
		return inv.Left
	}
	return inv.Right
}

// SetHeld кладет предмет в руку (nil - освободить руку)
func (inv *InventoryComponent) SetHeld(h Hand, it *Item) {
	if h == HandLeft {
		inv.Left = it
		return
	}
	inv.Right = it
}

// HandsEmpty - обе руки свободны
func (inv *InventoryComponent) HandsEmpty() bool {
	return inv == nil || (inv.Right == nil && inv.Left == nil)
}

// RemoveFromBackpack удаляет предмет из рюкзака по индексу
func (inv *InventoryComponent) RemoveFromBackpack(idx int) *Item {
	if idx < 0 || idx >= len(inv.Backpack) {
		return nil
	}
	it := inv.Backpack[idx]
	inv.Backpack = append(inv.Backpack[:idx], inv.Backpack[idx+1:]...)
	return it
}

// ArmourProtection возвращает защиту в процентах от данного типа урона
func (inv *InventoryComponent) ArmourProtection(damageType string) int {
	if inv == nil || inv.Armour == nil || inv.Armour.Def == nil {
		return 0
	}
	return inv.Armour.Def.Protection[damageType]
}
