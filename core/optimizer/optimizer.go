// Package optimizer finds the minimum of a cost surface on a 2-D integer grid
// with an adaptive quadtree branch and bound search.
//
// The search evaluates a coarse mesh, estimates how steeply the surface can
// change per grid step along each axis, and only subdivides rectangles whose
// corners minus that slope allowance could still beat the best value seen at
// the start of the round. The result matches an exhaustive scan whenever the
// surface respects the damped slope estimate; it is not guaranteed otherwise.
package optimizer

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/kilianp07/heatplan/core/model"
)

// Surface is a lazily evaluated grid of costs.
type Surface interface {
	GetOrCompute(i, j int) float64
}

// Stats summarises a search.
type Stats struct {
	Min        float64
	Best       model.SizingPoint
	Points     int // distinct grid points requested
	Cells      int // grid size
	Rounds     int
	Exhaustive bool
}

// tracker records the distinct points requested and the running minimum.
type tracker struct {
	s     Surface
	ySize int
	seen  map[int]struct{}
	stats Stats
}

func newTracker(s Surface, xSize, ySize int) *tracker {
	return &tracker{
		s:     s,
		ySize: ySize,
		seen:  make(map[int]struct{}),
		stats: Stats{Min: math.Inf(1), Cells: xSize * ySize},
	}
}

func (t *tracker) get(i, j int) float64 {
	z := t.s.GetOrCompute(i, j)
	k := i*t.ySize + j
	if _, ok := t.seen[k]; !ok {
		t.seen[k] = struct{}{}
		if z < t.stats.Min {
			t.stats.Min = z
			t.stats.Best = model.SizingPoint{Solar: i, Storage: j}
		}
	}
	return z
}

func (t *tracker) done() Stats {
	t.stats.Points = len(t.seen)
	return t.stats
}

// Search minimises s over [0,xSize)x[0,ySize), using the quadtree search when
// cfg allows it for this grid and an exhaustive scan otherwise.
func Search(s Surface, xSize, ySize int, cfg Config) Stats {
	if cfg.UseQuadtree(xSize, ySize) {
		return Optimize(s, xSize, ySize, cfg)
	}
	return Exhaustive(s, xSize, ySize)
}

// Exhaustive evaluates every point, solar index major.
func Exhaustive(s Surface, xSize, ySize int) Stats {
	t := newTracker(s, xSize, ySize)
	for i := 0; i < xSize; i++ {
		for j := 0; j < ySize; j++ {
			t.get(i, j)
		}
	}
	st := t.done()
	st.Exhaustive = true
	return st
}

type rect struct {
	i1, i2, j1, j2 int
}

// segments returns the initial number of segments along an axis of size points.
func segments(size int, cfg Config) int {
	n := cfg.TargetSegments
	if s := size / cfg.TargetStep; s > n {
		n = s
	}
	if n > size-1 {
		n = size - 1
	}
	return n
}

// linspace returns n+1 integer points evenly spread over [0, last].
func linspace(last, n int) []int {
	pts := make([]int, n+1)
	for k := range pts {
		pts[k] = int(math.Round(float64(k) * float64(last) / float64(n)))
	}
	return pts
}

// Optimize runs the quadtree search. Both axes must have at least two points.
func Optimize(s Surface, xSize, ySize int, cfg Config) Stats {
	t := newTracker(s, xSize, ySize)
	is := linspace(xSize-1, segments(xSize, cfg))
	js := linspace(ySize-1, segments(ySize, cfg))

	rects := make([]rect, 0, (len(is)-1)*(len(js)-1))
	for b := 0; b+1 < len(js); b++ {
		for a := 0; a+1 < len(is); a++ {
			rects = append(rects, rect{i1: is[a], i2: is[a+1], j1: js[b], j2: js[b+1]})
		}
	}

	// steepest slope along each axis over the coarse mesh
	var mx, my float64
	for _, r := range rects {
		z11, z21, z12, z22 := t.get(r.i1, r.j1), t.get(r.i2, r.j1), t.get(r.i1, r.j2), t.get(r.i2, r.j2)
		di, dj := float64(r.i2-r.i1), float64(r.j2-r.j1)
		mx = math.Max(mx, math.Max(math.Abs(z21-z11), math.Abs(z22-z12))/di)
		my = math.Max(my, math.Max(math.Abs(z12-z11), math.Abs(z22-z21))/dj)
	}
	damping := cfg.damping(xSize * ySize)
	mx *= damping
	my *= damping

	corners := make([]float64, 4)
	for len(rects) > 0 {
		t.stats.Rounds++
		threshold := t.stats.Min
		var next []rect
		for _, r := range rects {
			di, dj := r.i2-r.i1, r.j2-r.j1
			corners[0], corners[1] = t.get(r.i1, r.j1), t.get(r.i2, r.j1)
			corners[2], corners[3] = t.get(r.i1, r.j2), t.get(r.i2, r.j2)
			bound := floats.Min(corners) - (mx*float64(di) + my*float64(dj))
			if !(bound < threshold) {
				continue
			}

			i12 := r.i1 + di/2
			if di == 1 {
				i12 = r.i2
			}
			j12 := r.j1 + dj/2
			if dj == 1 {
				j12 = r.j2
			}
			if i12 != r.i2 {
				t.get(i12, r.j1)
				t.get(i12, r.j2)
			}
			if j12 != r.j2 {
				t.get(r.i1, j12)
				t.get(r.i2, j12)
			}
			if i12 != r.i2 && j12 != r.j2 {
				t.get(i12, j12)
			}

			subI1, subI2 := i12-r.i1 > 1, r.i2-i12 > 1
			subJ1, subJ2 := j12-r.j1 > 1, r.j2-j12 > 1
			if subI1 || subJ1 {
				next = append(next, rect{i1: r.i1, i2: i12, j1: r.j1, j2: j12})
			}
			if subI2 || subJ1 {
				next = append(next, rect{i1: i12, i2: r.i2, j1: r.j1, j2: j12})
			}
			if subI1 || subJ2 {
				next = append(next, rect{i1: r.i1, i2: i12, j1: j12, j2: r.j2})
			}
			if subI2 || subJ2 {
				next = append(next, rect{i1: i12, i2: r.i2, j1: j12, j2: r.j2})
			}
		}
		rects = next
	}
	return t.done()
}
