package game

import (
	"math"
	"sort"
)

// SpatialGrid is a broad-phase grid over the torus. Each object lives in the
// cell that contains its centre; queries look at every cell within reach,
// wrapping across the world edges.
type SpatialGrid struct {
	// Preallocated 2D grid of cells
	Cells [][]*Cell

	n         int
	cellSize  float64
	worldSize float64
	maxRadius float64
}

// NewSpatialGrid creates a grid with preallocated cells
func NewSpatialGrid(config Config) *SpatialGrid {
	n := config.CellCount()

	cells := make([][]*Cell, n)
	for x := 0; x < n; x++ {
		cells[x] = make([]*Cell, n)
		for y := 0; y < n; y++ {
			cells[x][y] = NewCell(16)
		}
	}

	return &SpatialGrid{
		Cells:     cells,
		n:         n,
		cellSize:  config.WorldSize / float64(n),
		worldSize: config.WorldSize,
	}
}

// CellOf converts a world position to cell coordinates
func (g *SpatialGrid) CellOf(p Vec) (int, int) {
	half := g.worldSize / 2
	cx := int(math.Floor((p.X + half) / g.cellSize))
	cy := int(math.Floor((p.Y + half) / g.cellSize))
	return g.wrapIndex(cx), g.wrapIndex(cy)
}

func (g *SpatialGrid) wrapIndex(i int) int {
	i %= g.n
	if i < 0 {
		i += g.n
	}
	return i
}

// Clear empties every cell
func (g *SpatialGrid) Clear() {
	for x := range g.Cells {
		for _, c := range g.Cells[x] {
			c.Clear()
		}
	}
	g.maxRadius = 0
}

// Insert registers a live, colliding object in its centre cell
func (g *SpatialGrid) Insert(obj Object) {
	body := obj.Body()
	if !body.alive || body.Radius <= 0 || body.Position.IsNaN() {
		return
	}
	cx, cy := g.CellOf(body.Position)
	g.Cells[cx][cy].Add(obj)
	if body.Radius > g.maxRadius {
		g.maxRadius = body.Radius
	}
}

// Rebuild clears the grid and inserts objs
func (g *SpatialGrid) Rebuild(objs []Object) {
	g.Clear()
	for _, obj := range objs {
		g.Insert(obj)
	}
}

// Query returns every registered object whose circle may touch the circle
// (p, radius), sorted by spawn order. Callers still run the exact test.
func (g *SpatialGrid) Query(p Vec, radius float64) []Object {
	if p.IsNaN() || math.IsNaN(radius) {
		return nil
	}
	reach := radius + g.maxRadius
	span := int(math.Ceil(reach/g.cellSize)) + 1

	var out []Object
	if 2*span+1 >= g.n {
		for x := range g.Cells {
			for _, c := range g.Cells[x] {
				out = append(out, c.Items()...)
			}
		}
	} else {
		cx, cy := g.CellOf(p)
		for dx := -span; dx <= span; dx++ {
			for dy := -span; dy <= span; dy++ {
				x, y := g.wrapIndex(cx+dx), g.wrapIndex(cy+dy)
				out = append(out, g.Cells[x][y].Items()...)
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Body().ID < out[j].Body().ID
	})
	return out
}

// Len returns the number of registered objects
func (g *SpatialGrid) Len() int {
	total := 0
	for x := range g.Cells {
		for _, c := range g.Cells[x] {
			total += c.Count
		}
	}
	return total
}
