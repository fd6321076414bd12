package random

import (
	"crypto/rand"
	"math/big"
)

// Random is the single source of randomness for role shuffles, task and
// prompt sampling, and session codes. Tests substitute a deterministic queue.
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// String generates a random string of the given length from the given alphabet
	String(length int, alphabet string) string
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Intn returns a uniformly distributed int in [0, n)
func (r *CryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	result, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(result.Int64())
}

// String generates a random string of the given length from the given alphabet
func (r *CryptoRandom) String(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	result := make([]byte, length)
	for i := range result {
		result[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(result)
}

// Shuffle permutes items in place with Fisher-Yates, so every permutation is
// equally likely. It draws len(items)-1 values, from the last index down.
func Shuffle[T any](r Random, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// Sample picks k distinct items uniformly without replacement. The pool is
// not modified. If k exceeds the pool size, the whole pool is returned in
// sampled order.
func Sample[T any](r Random, pool []T, k int) []T {
	if k > len(pool) {
		k = len(pool)
	}
	if k <= 0 {
		return []T{}
	}
	work := make([]T, len(pool))
	copy(work, pool)
	for i := 0; i < k; i++ {
		j := i + r.Intn(len(work)-i)
		work[i], work[j] = work[j], work[i]
	}
	return work[:k]
}

// Pick returns one item chosen uniformly, and false if the pool is empty
func Pick[T any](r Random, pool []T) (T, bool) {
	var zero T
	if len(pool) == 0 {
		return zero, false
	}
	return pool[r.Intn(len(pool))], true
}
