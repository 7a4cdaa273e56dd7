package main

import (
	"math"
	"math/rand"
)

// skew and unskew factors for the 2D simplex grid.
const (
	skew2   = 0.3660254037844386  // (sqrt(3) - 1) / 2
	unskew2 = 0.21132486540518713 // (3 - sqrt(3)) / 6
)

// simplex is seeded 2D simplex noise.
type simplex struct {
	perm [512]uint8
}

func newSimplex(seed int64) *simplex {
	r := rand.New(rand.NewSource(seed))
	var p [256]uint8
	for i := range p {
		p[i] = uint8(i)
	}
	r.Shuffle(len(p), func(i, j int) { p[i], p[j] = p[j], p[i] })

	s := &simplex{}
	for i := range s.perm {
		s.perm[i] = p[i&255]
	}
	return s
}

func (s *simplex) hash(i, j int) int {
	return int(s.perm[i+int(s.perm[j])])
}

func corner(hash int, x, y float64) float64 {
	t := 0.5 - x*x - y*y
	if t <= 0 {
		return 0
	}
	t *= t
	u, v := x, y
	if hash&4 != 0 {
		u, v = y, x
	}
	if hash&1 != 0 {
		u = -u
	}
	if hash&2 != 0 {
		v = -v
	}
	return t * t * (u + v)
}

// at returns noise in [-1, 1].
func (s *simplex) at(x, y float64) float64 {
	k := (x + y) * skew2
	i, j := math.Floor(x+k), math.Floor(y+k)
	t := (i + j) * unskew2
	x0, y0 := x-(i-t), y-(j-t)

	i1, j1 := 0, 1
	if x0 > y0 {
		i1, j1 = 1, 0
	}
	x1, y1 := x0-float64(i1)+unskew2, y0-float64(j1)+unskew2
	x2, y2 := x0-1+2*unskew2, y0-1+2*unskew2

	ii, jj := int(i)&255, int(j)&255
	n := corner(s.hash(ii, jj), x0, y0) +
		corner(s.hash(ii+i1, jj+j1), x1, y1) +
		corner(s.hash(ii+1, jj+1), x2, y2)
	return 70 * n
}

// octaves configures fractal sampling.
type octaves struct {
	freq        float64
	count       int
	lacunarity  float64
	persistence float64
}

// fractal sums count octaves of noise and normalises the result to [0, 1].
func (s *simplex) fractal(x, y float64, o octaves) float64 {
	var total, norm float64
	amp, freq := 1.0, o.freq
	for range o.count {
		total += s.at(x*freq, y*freq) * amp
		norm += amp
		freq *= o.lacunarity
		amp *= o.persistence
	}
	return (total/norm + 1) / 2
}
