package searcher

import (
	"sync"
	"time"

	"cantstop/game"
	"cantstop/meta"

	"github.com/rs/zerolog/log"
)

type Option func(s *Sampler)

func WithGoroutines(goroutines int) Option {
	return func(s *Sampler) {
		if goroutines > 0 {
			s.goroutines = goroutines
		}
	}
}

func WithEpisodes(episodes int) Option {
	return func(s *Sampler) {
		if episodes > 0 {
			s.episodes = episodes
		}
	}
}

func WithDuration(duration time.Duration) Option {
	return func(s *Sampler) {
		if duration > 0 {
			s.duration = duration
		}
	}
}

// WithSeed makes an episode budgeted estimate reproducible for a given goroutine count.
func WithSeed(seed uint64) Option {
	return func(s *Sampler) {
		s.seed = seed
	}
}

// Sampler estimates Odds by rolling dice in parallel, either for a number of episodes or
// for a duration. The estimate is computed once, on first use.
type Sampler struct {
	goroutines int
	episodes   int
	duration   time.Duration
	seed       uint64

	once  sync.Once
	mu    sync.Mutex
	hits  [meta.MaxSum + 1]int
	total int
	table Table
}

func NewSampler(options ...Option) *Sampler {
	s := &Sampler{goroutines: 1}
	for _, option := range options {
		option(s)
	}
	if s.episodes <= 0 && s.duration <= 0 {
		panic("Must specify sampling episodes or duration")
	}
	return s
}

func (s *Sampler) HitChance(sum int) float64 {
	return s.Estimate().HitChance(sum)
}

func (s *Sampler) Estimate() Table {
	s.once.Do(func() {
		start := time.Now()
		if s.episodes > 0 {
			s.iterate()
		} else {
			s.countdown()
		}
		s.table = toTable(s.hits, s.total)
		log.Debug().Int("episodes", s.total).Dur("took", time.Since(start)).Msg("sampled roll odds")
	})
	return s.table
}

func (s *Sampler) iterate() {
	var wg sync.WaitGroup
	for i := 0; i < s.goroutines; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()

			roller := s.roller(worker)
			var hits [meta.MaxSum + 1]int
			n := s.share(worker)
			for j := 0; j < n; j++ {
				countHits(&hits, roller.Roll())
			}
			s.merge(hits, n)
		}(i)
	}

	wg.Wait()
}

// share is the number of episodes worker rolls. Worker 0 takes the remainder.
func (s *Sampler) share(worker int) int {
	n := s.episodes / s.goroutines
	if worker == 0 {
		n += s.episodes % s.goroutines
	}
	return n
}

func (s *Sampler) countdown() {
	done := make(chan any)

	var wg sync.WaitGroup
	for i := 0; i < s.goroutines; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()

			roller := s.roller(worker)
			var hits [meta.MaxSum + 1]int
			n := 0
			for {
				select {
				case <-done:
					s.merge(hits, n)
					return
				default:
					countHits(&hits, roller.Roll())
					n++
				}
			}
		}(i)
	}

	<-time.After(s.duration)
	close(done)
	wg.Wait()
}

func (s *Sampler) roller(worker int) *game.Roller {
	seed := s.seed
	if seed != 0 {
		seed += uint64(worker)
	}
	src, err := game.NewRandomSource(seed)
	if err != nil {
		panic(err)
	}
	return game.NewRoller(src)
}

func (s *Sampler) merge(hits [meta.MaxSum + 1]int, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for sum := range hits {
		s.hits[sum] += hits[sum]
	}
	s.total += n
}
