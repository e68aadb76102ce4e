package searcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExactOdds(t *testing.T) {
	odds := ExactOdds()

	t.Run("two needs a pair of ones", func(t *testing.T) {
		require.InDelta(t, 171.0/1296.0, odds.HitChance(2), 1e-12,
			"Should be 1 - P(no one) - P(exactly one one)")
	})

	t.Run("chances mirror around seven", func(t *testing.T) {
		for sum := 2; sum <= 6; sum++ {
			require.InDelta(t, odds.HitChance(sum), odds.HitChance(14-sum), 1e-12, "sum %d", sum)
		}
	})

	t.Run("seven is the likeliest sum", func(t *testing.T) {
		for sum := 2; sum <= 12; sum++ {
			require.LessOrEqual(t, odds.HitChance(sum), odds.HitChance(7), "sum %d", sum)
		}
		require.InDelta(t, 0.644, odds.HitChance(7), 0.001)
	})

	t.Run("sums off the table never hit", func(t *testing.T) {
		require.Zero(t, odds.HitChance(1))
		require.Zero(t, odds.HitChance(13))
	})
}

func TestSampler(t *testing.T) {
	exact := ExactOdds()

	t.Run("episodes approximate the exact odds", func(t *testing.T) {
		s := NewSampler(WithGoroutines(4), WithEpisodes(40000), WithSeed(3))
		for sum := 2; sum <= 12; sum++ {
			require.InDelta(t, exact.HitChance(sum), s.HitChance(sum), 0.02, "sum %d", sum)
		}
	})

	t.Run("repeating a seeded estimate", func(t *testing.T) {
		first := NewSampler(WithGoroutines(4), WithEpisodes(400_001), WithSeed(3)).Estimate()
		for i := 0; i < 3; i++ {
			again := NewSampler(WithGoroutines(4), WithEpisodes(400_001), WithSeed(3)).Estimate()
			require.Equal(t, first, again, "Same seed and goroutines should give the same odds")
		}
	})

	t.Run("splitting episodes across workers", func(t *testing.T) {
		s := NewSampler(WithGoroutines(4), WithEpisodes(10))
		require.Equal(t, []int{4, 2, 2, 2}, []int{s.share(0), s.share(1), s.share(2), s.share(3)})
	})

	t.Run("estimating once", func(t *testing.T) {
		s := NewSampler(WithEpisodes(500), WithSeed(1))
		first := s.Estimate()
		require.Equal(t, first, s.Estimate(), "Later calls should reuse the first estimate")
	})

	t.Run("sampling for a duration", func(t *testing.T) {
		s := NewSampler(WithGoroutines(2), WithDuration(20*time.Millisecond))
		got := s.Estimate()
		require.Greater(t, got.HitChance(7), 0.0)
	})

	t.Run("panics without a budget", func(t *testing.T) {
		require.Panics(t, func() {
			NewSampler()
		}, "Should panic without episodes or duration")
	})
}
