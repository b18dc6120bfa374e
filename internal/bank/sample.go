package bank

import (
	"math/rand"
	"time"
)

// Sample returns exactly count questions for the selection, or an empty
// slice when the resolved pool is empty. The pool is shuffled without
// replacement first; when the pool is smaller than count, the remainder is
// drawn from the original pool with replacement. Pass a seeded rng for
// deterministic tests; nil uses a time-seeded source.
func Sample(b Bank, section, topic, difficulty string, count int, rng *rand.Rand) []Question {
	pool := b.Pool(section, topic, difficulty)
	if len(pool) == 0 || count <= 0 {
		return nil
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	out := make([]Question, 0, count)
	for _, i := range rng.Perm(len(pool)) {
		out = append(out, pool[i])
	}
	for len(out) < count {
		out = append(out, pool[rng.Intn(len(pool))])
	}
	return out[:count]
}
