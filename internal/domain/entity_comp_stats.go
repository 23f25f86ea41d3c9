package domain

// TakeDamage снимает здоровье. Возвращает true, если HP дошло до нуля.
func (s *StatsComponent) TakeDamage(amount int) bool {
	if s.HP <= 0 {
		return false
	}
	if amount < 0 {
		amount = 0
	}

	s.HP -= amount

	if s.HP <= 0 {
		s.HP = 0
		return true
	}
	return false
}

// IsBrave - смелые юниты не прячутся, если опасного врага не видно
func (s *StatsComponent) IsBrave(threshold int) bool {
	return s != nil && s.Morale > threshold
}

// AccuracyFactor - поправка на меткость в градусах разброса.
// 1 - (способность/10 + навык)/100.
func (s *StatsComponent) AccuracyFactor() float64 {
	if s == nil {
		return 1
	}
	return 1 - (float64(s.Accuracy)/10+float64(s.WeaponSkill))/100
}
