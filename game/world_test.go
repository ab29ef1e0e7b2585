package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridBullet(x, y float64) *Bullet {
	return NewBullet(x, y, 0, SidePlayer, testWorld)
}

func TestGridCellOfWraps(t *testing.T) {
	g := NewSpatialGrid(testConfig())
	n := testConfig().CellCount()

	x, y := g.CellOf(Vec{-4000, -4000})
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)

	x, y = g.CellOf(Vec{3999, 3999})
	assert.Equal(t, n-1, x)
	assert.Equal(t, n-1, y)

	// just past the edge lands back in the first cell
	x, _ = g.CellOf(Vec{4001, 0})
	assert.Equal(t, 0, x)
}

func TestGridQueryAcrossEdge(t *testing.T) {
	g := NewSpatialGrid(testConfig())
	left := gridBullet(-3995, 0)
	right := gridBullet(3995, 0)
	far := gridBullet(0, 0)
	g.Rebuild([]Object{left, right, far})

	got := g.Query(Vec{-3998, 0}, 20)
	assert.Contains(t, got, Object(left))
	assert.Contains(t, got, Object(right))
	assert.NotContains(t, got, Object(far))
}

func TestGridQuerySortedByID(t *testing.T) {
	g := NewSpatialGrid(testConfig())
	var objs []Object
	for i := 0; i < 10; i++ {
		objs = append(objs, gridBullet(float64(i*10), 0))
	}
	// insert in reverse to make sure order comes from the query
	for i, j := 0, len(objs)-1; i < j; i, j = i+1, j-1 {
		objs[i], objs[j] = objs[j], objs[i]
	}
	g.Rebuild(objs)

	got := g.Query(Vec{}, 200)
	require.Len(t, got, 10)
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1].Body().ID, got[i].Body().ID)
	}
}

func TestGridSkipsDeadAndDegenerate(t *testing.T) {
	g := NewSpatialGrid(testConfig())
	dead := gridBullet(0, 0)
	dead.Kill()
	ghost := gridBullet(0, 0)
	ghost.Radius = 0
	lost := gridBullet(0, 0)
	lost.Position = Vec{nan(), 0}
	live := gridBullet(0, 0)

	g.Rebuild([]Object{dead, ghost, lost, live})

	assert.Equal(t, 1, g.Len())
	assert.Nil(t, g.Query(Vec{nan(), 0}, 10))
}

func TestGridRebuildClears(t *testing.T) {
	g := NewSpatialGrid(testConfig())
	g.Rebuild([]Object{gridBullet(0, 0), gridBullet(10, 10)})
	require.Equal(t, 2, g.Len())

	g.Rebuild(nil)
	assert.Zero(t, g.Len())
}

func TestCellRemove(t *testing.T) {
	c := NewCell(1)
	a, b, d := gridBullet(0, 0), gridBullet(0, 0), gridBullet(0, 0)
	c.Add(a)
	c.Add(b)
	c.Add(d)

	c.Remove(b)
	assert.Equal(t, 2, c.Count)
	assert.ElementsMatch(t, []Object{a, d}, c.Items())

	c.Remove(b)
	assert.Equal(t, 2, c.Count)
}
