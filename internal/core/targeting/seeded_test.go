package targeting

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Golden vector pinned against the web tier's hash: the arithmetic must
// stay bit-identical across runs, processes and languages.
func TestSeededMetricGolden(t *testing.T) {
	assert.Equal(t, 4317, SeededMetric("abc123", 1000, 6000))
}

func TestSeededMetricDeterministic(t *testing.T) {
	for _, id := range []string{"", "a", "abc123", "cmp_01HZX4", "校验"} {
		first := SeededMetric(id, 1000, 6000)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, SeededMetric(id, 1000, 6000), "id %q", id)
		}
	}
}

func TestSeededMetricRange(t *testing.T) {
	cases := []struct{ min, max int }{
		{1000, 6000},
		{500, 2500},
		{0, 0},
		{7, 7},
		{-100, 100},
	}
	for _, c := range cases {
		for i := 0; i < 200; i++ {
			v := SeededMetric(fmt.Sprintf("campaign-%d", i), c.min, c.max)
			assert.GreaterOrEqual(t, v, c.min)
			assert.LessOrEqual(t, v, c.max)
		}
	}
}

func TestSeededMetricSwapsInvertedBounds(t *testing.T) {
	assert.Equal(t, SeededMetric("abc123", 1000, 6000), SeededMetric("abc123", 6000, 1000))
}

// Ids shaped like real campaign ids (uuid-style hex) should spread over
// a meaningful slice of the range. Ids differing only in a trailing
// counter do not qualify: the rolling hash moves them just a few hundred
// apart, well inside one bucket of a 5001-wide mapping. This is not a
// uniformity guarantee, just a collapse check.
func TestSeededMetricSpread(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seen := make(map[int]struct{})
	for i := 0; i < 200; i++ {
		id := fmt.Sprintf("%08x-%04x-%04x-%012x",
			rng.Uint32(), rng.Uint32()&0xffff, rng.Uint32()&0xffff, rng.Uint64()&0xffffffffffff)
		seen[SeededMetric(id, 1000, 6000)] = struct{}{}
	}
	assert.Greater(t, len(seen), 50, "values collapsed: %d distinct of 200", len(seen))
}
