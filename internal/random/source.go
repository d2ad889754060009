package random

import (
	"math"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Source is the random number source used by scripts.
type Source interface {
	// OnUnitSphere returns a point uniformly distributed on the unit sphere.
	OnUnitSphere() mgl32.Vec3
	// Float32 returns a uniform value in [0, 1).
	Float32() float32
}

type mathSource struct {
	rng *rand.Rand
}

// NewSource returns a Source seeded with seed, or with the current time when
// seed is 0.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &mathSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *mathSource) OnUnitSphere() mgl32.Vec3 {
	for {
		// A vector of independent normal deviates is rotationally symmetric,
		// so its direction is uniform on the sphere.
		x, y, z := s.rng.NormFloat64(), s.rng.NormFloat64(), s.rng.NormFloat64()
		length := math.Sqrt(x*x + y*y + z*z)
		if length < 1e-9 {
			continue
		}
		return mgl32.Vec3{float32(x / length), float32(y / length), float32(z / length)}
	}
}

func (s *mathSource) Float32() float32 {
	return s.rng.Float32()
}

// Fixed is a Source that always returns the same values. It is meant for
// tests and scripted demos.
type Fixed struct {
	Direction mgl32.Vec3
	Value     float32
}

func (f Fixed) OnUnitSphere() mgl32.Vec3 {
	return f.Direction
}

func (f Fixed) Float32() float32 {
	return f.Value
}
