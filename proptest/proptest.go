// Package proptest provides property-based testing utilities with seeded
// random generation for reproducible tests.
//
// Property-based testing generates random inputs and verifies that certain
// invariants (properties) always hold. When a test fails, the seed is logged
// so the failure can be reproduced.
//
// Basic usage:
//
//	func TestMyProperty(t *testing.T) {
//	    proptest.Check(t, "my property", proptest.Config{}, func(g *proptest.Generator) bool {
//	        n := g.IntRange(1, 100)
//	        return n >= 1 && n <= 100
//	    })
//	}
package proptest

import (
	"math/rand"
	"os"
	"strconv"
	"testing"
	"time"
)

// Generator wraps a seeded random number generator for reproducible
// random value generation. The seed is stored so it can be logged
// on test failure for reproducibility.
type Generator struct {
	rng  *rand.Rand
	seed int64
}

// New creates a new Generator with the given seed.
// If seed is 0, uses the current time as the seed.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed used by this generator.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Intn returns a random int in [0, n).
// Panics if n <= 0.
func (g *Generator) Intn(n int) int {
	return g.rng.Intn(n)
}

// IntRange returns a random int in [min, max] inclusive.
// Panics if min > max.
func (g *Generator) IntRange(min, max int) int {
	if min > max {
		panic("proptest: IntRange min > max")
	}
	return min + g.rng.Intn(max-min+1)
}

// Float64 returns a random float64 in [0.0, 1.0).
func (g *Generator) Float64() float64 {
	return g.rng.Float64()
}

// Bool returns a random boolean with 50% probability for each value.
func (g *Generator) Bool() bool {
	return g.rng.Intn(2) == 1
}

const identChars = "abcdefghijklmnopqrstuvwxyz_"

// Identifier returns a random lowercase identifier of length [1, maxLen]
// matching ^[a-z_][a-z0-9_]*$.
func (g *Generator) Identifier(maxLen int) string {
	if maxLen < 1 {
		maxLen = 1
	}
	length := g.IntRange(1, maxLen)
	buf := make([]byte, length)
	buf[0] = identChars[g.Intn(len(identChars))]
	const tailChars = identChars + "0123456789"
	for i := 1; i < length; i++ {
		buf[i] = tailChars[g.Intn(len(tailChars))]
	}
	return string(buf)
}

// Config controls a property check run.
type Config struct {
	// NumTrials is the number of random inputs to try. Defaults to 100.
	NumTrials int
	// Seed overrides the starting seed. Defaults to PROPTEST_SEED
	// from the environment, else the current time.
	Seed int64
}

// Check runs the property against NumTrials random generators and fails
// the test on the first falsified trial, logging the seed that
// reproduces it.
func Check(t *testing.T, name string, cfg Config, property func(*Generator) bool) {
	t.Helper()

	trials := cfg.NumTrials
	if trials <= 0 {
		trials = 100
	}
	seed := cfg.Seed
	if seed == 0 {
		if env := os.Getenv("PROPTEST_SEED"); env != "" {
			if parsed, err := strconv.ParseInt(env, 10, 64); err == nil {
				seed = parsed
			}
		}
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	for i := 0; i < trials; i++ {
		g := New(seed + int64(i))
		if !property(g) {
			t.Fatalf("property %q falsified on trial %d (reproduce with PROPTEST_SEED=%d)", name, i, g.Seed())
		}
	}
}
