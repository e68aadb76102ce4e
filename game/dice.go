package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"

	"cantstop/meta"
)

// ErrRandomSource means the process could not obtain randomness. It is the only
// failure of the dice layer and is not a game outcome.
var ErrRandomSource = errors.New("random source unavailable")

// RandomSource yields a uniform int in [0, n). *rand.Rand satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// DiceRoll is the face value of each die in the order they were thrown.
type DiceRoll [meta.NumDice]int

// Roller throws meta.NumDice six-sided dice from a single source.
type Roller struct {
	src RandomSource
}

func NewRoller(src RandomSource) *Roller {
	return &Roller{src: src}
}

// Roll returns meta.NumDice independent draws in [1, meta.DieFaces].
func (r *Roller) Roll() DiceRoll {
	var roll DiceRoll
	for i := range roll {
		roll[i] = r.src.IntN(meta.DieFaces) + 1
	}
	return roll
}

// NewRandomSource returns a PCG generator. A zero seed draws one from crypto/rand;
// any other seed gives a reproducible sequence.
func NewRandomSource(seed uint64) (*rand.Rand, error) {
	if seed == 0 {
		var b [16]byte
		if _, err := crand.Read(b[:]); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRandomSource, err)
		}
		return rand.New(rand.NewPCG(binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:]))), nil
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), nil
}
