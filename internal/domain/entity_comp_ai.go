package domain

// NewAIComponent - прогресс по цепочке точек начинается "с конца"
func NewAIComponent(strategy string) *AIComponent {
	return &AIComponent{
		WaypointCount: WaypointCountReset,
		Strategy:      strategy,
	}
}

// ResetWaypoints начинает поиск по цепочке заново
func (a *AIComponent) ResetWaypoints() {
	a.WaypointCount = WaypointCountReset
}

// AdvanceWaypoint запоминает достигнутую точку. Двигаемся только вперед.
func (a *AIComponent) AdvanceWaypoint(count int) {
	if count < a.WaypointCount {
		a.WaypointCount = count
	}
}
