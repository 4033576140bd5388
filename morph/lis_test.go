package morph

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// the identity permutation should be fully exempt
func TestLISIdentity(t *testing.T) {
	got := longestIncreasing([]int{0, 1, 2, 3, 4})
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

func TestLISEmpty(t *testing.T) {
	assert.Nil(t, longestIncreasing(nil))
}

func TestLISKnownSequences(t *testing.T) {
	cases := []struct {
		seq  []int
		want int // expected LIS length
	}{
		{[]int{2, 0, 1}, 2},
		{[]int{4, 3, 2, 1, 0}, 1},
		{[]int{3, 1, 4, 1, 5, 9, 2, 6}, 4},
		{[]int{10, 9, 2, 5, 3, 7, 101, 18}, 4},
		{[]int{7}, 1},
	}
	for _, tc := range cases {
		got := longestIncreasing(tc.seq)
		assert.Len(t, got, tc.want, "seq %v", tc.seq)
		assertStrictlyIncreasing(t, tc.seq, got)
	}
}

// positions must index a strictly increasing subsequence of the input
func TestLISRandomPermutations(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.Intn(40)
		seq := rng.Perm(n)
		got := longestIncreasing(seq)
		assert.NotEmpty(t, got)
		assertStrictlyIncreasing(t, seq, got)
	}
}

func assertStrictlyIncreasing(t *testing.T, seq, positions []int) {
	t.Helper()
	for i := 1; i < len(positions); i++ {
		assert.Less(t, positions[i-1], positions[i], "positions must ascend")
		assert.Less(t, seq[positions[i-1]], seq[positions[i]], "values must ascend")
	}
}
