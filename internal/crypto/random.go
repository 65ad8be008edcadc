package crypto

import (
	"crypto/rand"
	"math/big"
)

// randIntn returns a uniform random integer in [0, n) using crypto/rand.
func randIntn(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// randChar picks a random character from charset using crypto/rand.
func randChar(charset string) (byte, error) {
	i, err := randIntn(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[i], nil
}

// randSample returns k distinct elements of items in random order.
// It runs a partial Fisher-Yates shuffle on a copy, so items is left untouched.
func randSample(items []int, k int) ([]int, error) {
	pool := make([]int, len(items))
	copy(pool, items)
	if k > len(pool) {
		k = len(pool)
	}

	for i := 0; i < k; i++ {
		j, err := randIntn(len(pool) - i)
		if err != nil {
			return nil, err
		}
		j += i
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:k], nil
}
