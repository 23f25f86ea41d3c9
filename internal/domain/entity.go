package domain

// --- КОМПОНЕНТЫ ---

// StatsComponent - здоровье, мораль и навыки
type StatsComponent struct {
	HP          int `json:"hp"`
	MaxHP       int `json:"maxHp"`
	Stun        int `json:"stun"`
	Morale      int `json:"morale"`
	Accuracy    int `json:"accuracy"`    // способность, 0..100
	WeaponSkill int `json:"weaponSkill"` // навык владения оружием, 0..100
}

// AIComponent - состояние ИИ между ходами
type AIComponent struct {
	Hiding bool `json:"hiding"` // выставляется только на время отхода в укрытие
	// WaypointCount - прогресс гражданского по цепочке точек (меньше - ближе к цели)
	WaypointCount int    `json:"waypointCount"`
	Strategy      string `json:"strategy,omitempty"`
}

// TeamDef - описание расы/класса
type TeamDef struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Team     string `yaml:"team"`
	Weapons  bool   `yaml:"weapons"` // умеет пользоваться оружием
	Civilian bool   `yaml:"civilian"`
	// MeleeItem - предмет для классов без оружия (когти, щупальца)
	MeleeItem string `yaml:"melee_item"`

	HP          [2]int `yaml:"hp"`
	Morale      [2]int `yaml:"morale"`
	Accuracy    [2]int `yaml:"accuracy"`
	WeaponSkill [2]int `yaml:"weapon_skill"`
	TU          [2]int `yaml:"tu"`
	Armour      string `yaml:"armour"`
}

// --- СУЩНОСТЬ ---

// Unit - боевая единица на поле
type Unit struct {
	ID   UnitID `json:"id"`
	Name string `json:"name"`
	Team Team   `json:"team"`

	Pos GridPos `json:"pos"`
	Dir int     `json:"dir"` // 0..7, см. DirVecs

	TU    int        `json:"tu"`
	MaxTU int        `json:"maxTu"`
	State StateFlags `json:"state"`

	TeamDef *TeamDef `json:"-"`

	// Компоненты (если nil - свойство отсутствует)
	Stats *StatsComponent     `json:"stats,omitempty"`
	AI    *AIComponent        `json:"ai,omitempty"`
	Inv   *InventoryComponent `json:"-"`
}

// Origin - мировые координаты юнита
func (u *Unit) Origin() Vec3 {
	return u.Pos.Vec()
}

// IsDead - мертвые юниты для поиска не существуют, даже посреди хода
func (u *Unit) IsDead() bool {
	if u.State.Has(StateDead) {
		return true
	}
	return u.Stats != nil && u.Stats.HP <= 0
}

func (u *Unit) IsCrouched() bool  { return u.State.Has(StateCrouched) }
func (u *Unit) IsPanicked() bool  { return u.State.Has(StatePanic) }
func (u *Unit) IsRaged() bool     { return u.State.Has(StateRage) || u.State.Has(StateInsane) }
func (u *Unit) IsInsane() bool    { return u.State.Has(StateInsane) }
func (u *Unit) InReaction() bool  { return u.State.Has(StateReaction) }
func (u *Unit) IsCivilian() bool  { return u.Team == TeamCivilian }
func (u *Unit) CanUseWeapons() bool {
	return u.TeamDef != nil && u.TeamDef.Weapons
}

// HP возвращает текущее здоровье (0 для юнитов без статов)
func (u *Unit) HP() int {
	if u.Stats == nil {
		return 0
	}
	return u.Stats.HP
}

// SetState включает или выключает флаг
func (u *Unit) SetState(f StateFlags, on bool) {
	if on {
		u.State |= f
	} else {
		u.State &^= f
	}
}

// TakeDamage наносит урон. Возвращает true, если юнит погиб этим ударом.
func (u *Unit) TakeDamage(amount int) bool {
	if u.IsDead() || u.Stats == nil {
		return false
	}
	if u.Stats.TakeDamage(amount) {
		u.State |= StateDead
		u.State &^= StateReaction | StateCrouched
		return true
	}
	return false
}
