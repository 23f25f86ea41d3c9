package utils

import (
	"math/rand"
	"time"
)

// NewRand создает локальный генератор. Сид 0 означает "взять от времени".
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Frand возвращает число в [0,1).
func Frand(r *rand.Rand) float64 {
	return r.Float64()
}

// Crand возвращает число в [-1,1).
func Crand(r *rand.Rand) float64 {
	return r.Float64()*2 - 1
}

// PickDistinct выбирает n разных индексов из [0,total) в случайном порядке.
// Если n > total, возвращается total индексов.
func PickDistinct(r *rand.Rand, total, n int) []int {
	if n > total {
		n = total
	}
	if n <= 0 {
		return nil
	}
	return r.Perm(total)[:n]
}
