// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// WeightedEntry — одна строка таблицы весов: ключ и его относительный вес.
type WeightedEntry struct {
	Key    string  `json:"key" msgpack:"key"`
	Weight float64 `json:"weight" msgpack:"weight"`
}

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng   *rand.Rand
	seed  int64
	calls uint64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng:  rand.New(source),
		seed: seed,
	}
}

// Seed returns the seed the service was created with.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Calls returns how many values have been drawn so far.
func (s *PRNGService) Calls() uint64 {
	return s.calls
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	s.calls++
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	s.calls++
	return s.rng.Float64()
}

// ChooseWeighted выполняет взвешенный случайный выбор из таблицы весов.
func (s *PRNGService) ChooseWeighted(entries []WeightedEntry) string {
	if len(entries) == 0 {
		return ""
	}
	return PickWeighted(s.Float64(), entries)
}

// PickWeighted maps a uniform draw r in [0,1) onto the table: r is scaled by the
// total weight, then weights are subtracted in order until the remainder is <= 0.
// A non-positive total falls back to the first entry; an empty table yields "".
func PickWeighted(r float64, entries []WeightedEntry) string {
	if len(entries) == 0 {
		return ""
	}
	total := 0.0
	for _, e := range entries {
		total += e.Weight
	}
	if total <= 0 {
		return entries[0].Key
	}
	t := r * total
	for _, e := range entries {
		t -= e.Weight
		if t <= 0 {
			return e.Key
		}
	}
	// Этот код не должен быть достижим, но на всякий случай
	return entries[len(entries)-1].Key
}
