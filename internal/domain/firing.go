package domain

import "math"

const torad = math.Pi / 180

// SpreadNorm переводит угловой разброс (градусы) в дистанцию,
// до которой стрельба считается прицельной.
func SpreadNorm(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return 8.0 / (x * torad)
}

// NominalSpread - прицельная дистанция режима огня для стрелка
func NominalSpread(fd *FireDef, s *StatsComponent) float64 {
	return SpreadNorm((fd.Spread[0]+fd.Spread[1])*0.5 + s.AccuracyFactor())
}

// HitFactor - доля попаданий из-за разброса: 1 в пределах прицельной
// дистанции, дальше падает как nspread/dist.
func HitFactor(nspread, dist float64) float64 {
	if nspread > 0 && dist > nspread {
		return nspread / dist
	}
	return 1
}
