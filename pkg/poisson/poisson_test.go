package poisson

import (
	"math/rand/v2"
	"testing"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

func TestGenerateMinimumSeparation(t *testing.T) {
	tests := []struct {
		name                  string
		width, length, radius float64
	}{
		{"square", 100, 100, 8},
		{"thin strip", 1, 10, 0.3},
		{"radius wider than pan", 1, 10, 1.375},
		{"wide", 200, 20, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples := Sample(tt.width, tt.length, tt.radius, seeded(7))
			if len(samples) == 0 {
				t.Fatal("Sample() returned no points")
			}
			for i := range samples {
				for j := i + 1; j < len(samples); j++ {
					if d := samples[i].Distance(samples[j]); d < tt.radius {
						t.Fatalf("samples %d and %d are %v apart, want >= %v", i, j, d, tt.radius)
					}
				}
			}
		})
	}
}

func TestGenerateInBounds(t *testing.T) {
	samples := Sample(30, 45, 2, seeded(3))
	for i, p := range samples {
		if p.X < 0 || p.X >= 30 || p.Y < 0 || p.Y >= 45 {
			t.Errorf("sample %d = %v outside [0,30)x[0,45)", i, p)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Sample(50, 80, 4, seeded(42))
	b := Sample(50, 80, 4, seeded(42))

	if len(a) != len(b) {
		t.Fatalf("len = %d and %d, want equal", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs: %v vs %v", i, a[i], b[i])
		}
	}

	c := Sample(50, 80, 4, seeded(43))
	if len(c) == len(a) && c[0] == a[0] {
		t.Error("different seeds should produce different samples")
	}
}

func TestGenerateFillsDomain(t *testing.T) {
	// A maximal-ish disk process leaves no hole wider than 2r, so a 100x100
	// domain at r=5 must hold well over a hundred samples.
	samples := Sample(100, 100, 5, seeded(1))
	if len(samples) < 150 {
		t.Errorf("len(samples) = %d, want >= 150", len(samples))
	}
}

func TestGenerateDegenerate(t *testing.T) {
	tests := []Sampler{
		{Width: 0, Length: 10, Radius: 1},
		{Width: 10, Length: -1, Radius: 1},
		{Width: 10, Length: 10, Radius: 0},
	}
	for _, s := range tests {
		if got := s.Generate(seeded(1)); got != nil {
			t.Errorf("Generate(%+v) = %d points, want nil", s, len(got))
		}
	}
}

func TestAttemptsDefault(t *testing.T) {
	explicit := Sampler{Width: 20, Length: 20, Radius: 2, Attempts: DefaultAttempts}.Generate(seeded(5))
	implicit := Sampler{Width: 20, Length: 20, Radius: 2}.Generate(seeded(5))
	if len(explicit) != len(implicit) {
		t.Errorf("zero Attempts should behave as DefaultAttempts: %d vs %d", len(implicit), len(explicit))
	}
}
