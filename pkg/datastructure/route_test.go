package datastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
A=0, B=1, C=2, D=3, E=4

	A --10/2000-- B --4/1999-- C --1/-5-- E
	               \          /
	              2/2010   3/2011
	                 \      /
	                    D
*/
func newRouteTestGraph(t *testing.T) *RoadGraph {
	g, ids := newTestGraph(t, "A", "B", "C", "D", "E")
	require.NoError(t, g.Connect(ids[0], ids[1], 10, 2000))
	require.NoError(t, g.Connect(ids[1], ids[2], 4, 1999))
	require.NoError(t, g.Connect(ids[2], ids[4], 1, -5))
	require.NoError(t, g.Connect(ids[1], ids[3], 2, 2010))
	require.NoError(t, g.Connect(ids[3], ids[2], 3, 2011))
	return g
}

func TestRouteRender(t *testing.T) {
	g := newRouteTestGraph(t)
	r := NewRoute([]int32{0, 1, 2, 4})

	assert.Equal(t, "7;A;10;2000;B;4;1999;C;1;-5;E", r.Render(7, g, g))
	assert.Equal(t, uint64(15), r.Length(g))
	assert.Equal(t, int32(-5), r.OldestRepair(g))
	assert.Equal(t, "3;D", NewRoute([]int32{3}).Render(3, g, g))
}

func TestRouteRenderMissingRoadPanics(t *testing.T) {
	g := newRouteTestGraph(t)
	r := NewRoute([]int32{0, 4})
	assert.Panics(t, func() { r.Render(1, g, g) })
}

func TestRouteSpliceReplace(t *testing.T) {
	g := newRouteTestGraph(t)
	r := NewRoute([]int32{0, 1, 2, 4})

	assert.NoError(t, r.SpliceReplace(1, 2, []int32{1, 3, 2}))
	assert.Equal(t, []int32{0, 1, 3, 2, 4}, r.Cities())
	assert.Equal(t, "1;A;10;2000;B;2;2010;D;3;2011;C;1;-5;E", r.Render(1, g, g))

	// reversed detour and reversed gap
	r = NewRoute([]int32{4, 2, 1, 0})
	assert.NoError(t, r.SpliceReplace(1, 2, []int32{1, 3, 2}))
	assert.Equal(t, []int32{4, 2, 3, 1, 0}, r.Cities())

	r = NewRoute([]int32{0, 1, 2, 4})
	assert.ErrorIs(t, r.SpliceReplace(0, 2, []int32{0, 3, 2}), ErrEdgeNotOnRoute)
	assert.ErrorIs(t, r.SpliceReplace(1, 2, []int32{1, 3}), ErrDetourEndpoints)
	assert.ErrorIs(t, r.SpliceReplace(1, 2, []int32{1}), ErrDetourEndpoints)
	assert.ErrorIs(t, r.SpliceReplace(1, 2, []int32{1, 4, 2}), ErrRepeatedCity)
	assert.Equal(t, []int32{0, 1, 2, 4}, r.Cities())
}

func TestRouteAppendPath(t *testing.T) {
	r := NewRoute([]int32{1, 2})

	assert.NoError(t, r.AppendPath([]int32{2, 4}, false))
	assert.Equal(t, []int32{1, 2, 4}, r.Cities())

	assert.NoError(t, r.AppendPath([]int32{0, 1}, true))
	assert.Equal(t, []int32{0, 1, 2, 4}, r.Cities())
	assert.Equal(t, int32(0), r.Front())
	assert.Equal(t, int32(4), r.Back())

	assert.ErrorIs(t, r.AppendPath([]int32{3, 4}, false), ErrPathEndpoint)
	assert.ErrorIs(t, r.AppendPath([]int32{3, 4}, true), ErrPathEndpoint)
	assert.ErrorIs(t, r.AppendPath([]int32{4, 3, 1}, false), ErrRepeatedCity)
	assert.ErrorIs(t, r.AppendPath([]int32{}, false), ErrEmptyRoute)
	assert.Equal(t, []int32{0, 1, 2, 4}, r.Cities())
}

func TestRouteContains(t *testing.T) {
	r := NewRoute([]int32{0, 1, 2})
	assert.True(t, r.Contains(1))
	assert.False(t, r.Contains(3))

	i, ok := r.ContainsEdge(2, 1)
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	_, ok = r.ContainsEdge(0, 2)
	assert.False(t, ok)
}

func TestComparePaths(t *testing.T) {
	g := newRouteTestGraph(t)

	// B-C: 4, oldest 1999. B-D-C: 5, oldest 2010. A-E: no road.
	viaC := []int32{1, 2}
	viaD := []int32{1, 3, 2}
	broken := []int32{0, 4}
	single := []int32{1}

	assert.Positive(t, ComparePaths(g, viaC, viaD))
	assert.Negative(t, ComparePaths(g, viaD, viaC))
	assert.Positive(t, ComparePaths(g, viaD, broken))
	assert.Negative(t, ComparePaths(g, single, viaD))
	assert.Equal(t, 0, ComparePaths(g, broken, nil))
	assert.Equal(t, 0, ComparePaths(g, viaC, []int32{2, 1}))
}
