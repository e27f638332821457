package classifier

import (
	"math"
	"math/rand/v2"
)

// Split shuffles indices 0..n-1 with a seeded generator and returns train and
// test index sets. The test set holds ceil(testSize*n) items; testSize <= 0
// puts everything in train.
func Split(n int, testSize float64, seed uint64) (train, test []int) {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	if testSize <= 0 || n == 0 {
		return perm, nil
	}

	r := rand.New(rand.NewPCG(seed, seed))
	r.Shuffle(n, func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })

	nTest := int(math.Ceil(testSize * float64(n)))
	if nTest >= n {
		nTest = n - 1
	}
	return perm[nTest:], perm[:nTest]
}
