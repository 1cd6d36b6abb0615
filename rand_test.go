package skipset

import (
	"math"
	"testing"
)

func TestDrawHeightDistribution(t *testing.T) {
	const numSamples = 1000000
	const p = 0.5

	r := newRNG(0x123456789abcdef)
	counts := make(map[int]int)
	for i := 0; i < numSamples; i++ {
		counts[r.drawHeight(HeightCap)]++
	}

	// With a fair coin, the population of height h+1 should be roughly
	// half the population of height h. The ratio of two adjacent counts
	// has mean p and variance p(1-p)/count, so five standard deviations
	// keeps the check tight at the dense low levels while tolerating
	// noise once the samples thin out.
	for h := 1; h < HeightCap; h++ {
		count1 := counts[h]
		if count1 == 0 {
			continue
		}
		count2 := counts[h+1]

		ratio := float64(count2) / float64(count1)
		stdDev := math.Sqrt(p * (1 - p) / float64(count1))
		tolerance := 5 * stdDev

		if math.Abs(ratio-p) > tolerance {
			t.Errorf("expected ratio between heights %d and %d around %.2f ± %.4f, got %.2f", h, h+1, p, tolerance, ratio)
		}
	}
}

func TestDrawHeightRespectsCap(t *testing.T) {
	r := newRNG(1)
	for i := 0; i < 10000; i++ {
		if h := r.drawHeight(1); h != 1 {
			t.Fatalf("expected height 1 with cap 1, got %d", h)
		}
	}
	for i := 0; i < 10000; i++ {
		if h := r.drawHeight(DefaultMaxHeight); h < 1 || h > DefaultMaxHeight {
			t.Fatalf("expected height in [1, %d], got %d", DefaultMaxHeight, h)
		}
	}
}

func TestZeroSeedIsReplaced(t *testing.T) {
	r := newRNG(0)
	if r.state == 0 {
		t.Fatalf("expected a zero seed to be replaced with a derived one")
	}
	if r.next() == 0 {
		t.Fatalf("expected xorshift output to be nonzero")
	}
}

func TestFixedSeedIsReproducible(t *testing.T) {
	a := newRNG(42)
	b := newRNG(42)
	for i := 0; i < 1000; i++ {
		if a.drawHeight(HeightCap) != b.drawHeight(HeightCap) {
			t.Fatalf("expected identical height sequences from identical seeds")
		}
	}
}
