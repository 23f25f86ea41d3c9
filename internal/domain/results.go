package domain

// MoveResult - итог перемещения
type MoveResult struct {
	Steps   int
	Reached bool
	// StoppedBy - почему остановились раньше: "died", "spotted", "tu", "unreachable"
	StoppedBy string
}

// ShotResult - итог одной активации оружия
type ShotResult struct {
	Fired  bool
	Hits   int
	Damage int
	Killed []*Unit
	Reason string // почему выстрела не было
}
