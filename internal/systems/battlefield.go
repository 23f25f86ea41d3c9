package systems

import (
	"math/rand"

	"github.com/szydell/ufoai/internal/domain"
	"github.com/szydell/ufoai/pkg/utils"
)

// Battlefield - эталонные реализации внешних систем поверх World:
// стоимость путей, видимость, перемещение, стрельба, инвентарь.
type Battlefield struct {
	World *domain.World
	Rng   *rand.Rand
}

func NewBattlefield(w *domain.World, rng *rand.Rand) *Battlefield {
	if rng == nil {
		rng = utils.NewRand(0)
	}
	return &Battlefield{World: w, Rng: rng}
}
