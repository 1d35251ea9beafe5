package routingalgorithm

import (
	"testing"

	"github.com/lintang-b-s/roadnet/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRoad struct {
	a, b   int32
	length uint32
	year   int32
}

func NewGraph(t *testing.T, numCities int, roads []testRoad) *datastructure.RoadGraph {
	g := datastructure.NewRoadGraph()
	for i := 0; i < numCities; i++ {
		_, err := g.AddCity(string(rune('A' + i)))
		require.NoError(t, err)
	}
	for _, r := range roads {
		require.NoError(t, g.Connect(r.a, r.b, r.length, r.year))
	}
	return g
}

/*
A=0, B=1, C=2, D=3

	      B
	 2/1990  3/1995
	A             D
	 1/1995  4/1995
	      C

A-B-D: 5, oldest 1990. A-C-D: 5, oldest 1995 -> A-C-D
*/
func TestShortestPathTieBreakNewerRepair(t *testing.T) {
	g := NewGraph(t, 4, []testRoad{
		{0, 1, 2, 1990}, {1, 3, 3, 1995},
		{0, 2, 1, 1995}, {2, 3, 4, 1995},
	})
	rt := NewRouteAlgorithm(g)

	path, priority, err := rt.ShortestPath(0, 3, nil)
	assert.NoError(t, err)
	assert.Equal(t, []int32{0, 2, 3}, path)
	assert.Equal(t, uint64(5), priority.Length)
	assert.Equal(t, int32(1995), priority.OldestRepair)
	assert.Equal(t, int32(3), priority.CityID)
}

func TestShortestPathAmbiguous(t *testing.T) {
	g := NewGraph(t, 4, []testRoad{
		{0, 1, 2, 1990}, {1, 3, 3, 1995},
		{0, 2, 1, 1990}, {2, 3, 4, 1995},
	})
	rt := NewRouteAlgorithm(g)

	path, priority, err := rt.ShortestPath(0, 3, nil)
	assert.ErrorIs(t, err, ErrAmbiguousPath)
	assert.Empty(t, path)
	assert.False(t, priority.Set)
}

/*
ambiguity before the last city is also rejected.

	      B
	 1/2000  1/2000
	A             D --1/2000-- E
	 1/2000  1/2000
	      C
*/
func TestShortestPathAmbiguousPrefix(t *testing.T) {
	g := NewGraph(t, 5, []testRoad{
		{0, 1, 1, 2000}, {1, 3, 1, 2000},
		{0, 2, 1, 2000}, {2, 3, 1, 2000},
		{3, 4, 1, 2000},
	})
	rt := NewRouteAlgorithm(g)

	_, _, err := rt.ShortestPath(0, 4, nil)
	assert.ErrorIs(t, err, ErrAmbiguousPath)
}

/*
a tie that does not lie on the best path does not matter.

	      B
	 1/2000  1/2000
	A             D
	 1/2000  1/2000
	  \   C
	   \
	  10/2000
	     \
	      E

best A->E is A-E directly
*/
func TestShortestPathTieOffPath(t *testing.T) {
	g := NewGraph(t, 5, []testRoad{
		{0, 1, 1, 2000}, {1, 3, 1, 2000},
		{0, 2, 1, 2000}, {2, 3, 1, 2000},
		{0, 4, 10, 2000},
	})
	rt := NewRouteAlgorithm(g)

	path, priority, err := rt.ShortestPath(0, 4, nil)
	assert.NoError(t, err)
	assert.Equal(t, []int32{0, 4}, path)
	assert.Equal(t, uint64(10), priority.Length)
}

/*
a strictly better path found after a tie makes the city unique again.

	A --1/2000-- B --5/2000-- D
	A --1/2000-- C --5/2000-- D     B and C are popped first: D gets (6, 2000) twice
	A --2/2000-- E --1/2000-- D     then E relaxes D with (3, 2000)
*/
func TestShortestPathBetterAfterTie(t *testing.T) {
	g := NewGraph(t, 5, []testRoad{
		{0, 1, 1, 2000}, {1, 3, 5, 2000},
		{0, 2, 1, 2000}, {2, 3, 5, 2000},
		{0, 4, 2, 2000}, {4, 3, 1, 2000},
	})
	rt := NewRouteAlgorithm(g)

	path, priority, err := rt.ShortestPath(0, 3, nil)
	assert.NoError(t, err)
	assert.Equal(t, []int32{0, 4, 3}, path)
	assert.Equal(t, uint64(3), priority.Length)
	assert.Equal(t, int32(2000), priority.OldestRepair)
}

func TestShortestPathUnreachable(t *testing.T) {
	g := NewGraph(t, 4, []testRoad{{0, 1, 1, 1}, {2, 3, 1, 1}})
	rt := NewRouteAlgorithm(g)

	_, _, err := rt.ShortestPath(0, 3, nil)
	assert.ErrorIs(t, err, ErrUnreachable)

	_, _, err = rt.ShortestPath(0, 9, nil)
	assert.ErrorIs(t, err, ErrCityNotFound)
}

/*
excluded cities can not be crossed, except the destination.

	A --1/1-- B --1/1-- C
	 \                 /
	  5/1 --- D --- 5/1

excluded = {B, C}: A->C must go A-D-C
*/
func TestShortestPathExcluded(t *testing.T) {
	g := NewGraph(t, 4, []testRoad{
		{0, 1, 1, 1}, {1, 2, 1, 1},
		{0, 3, 5, 1}, {3, 2, 5, 1},
	})
	rt := NewRouteAlgorithm(g)

	path, _, err := rt.ShortestPath(0, 2, []int32{1, 2})
	assert.NoError(t, err)
	assert.Equal(t, []int32{0, 3, 2}, path)

	_, _, err = rt.ShortestPath(0, 2, []int32{1, 3})
	assert.ErrorIs(t, err, ErrUnreachable)

	// origin itself may be excluded
	path, _, err = rt.ShortestPath(1, 2, []int32{0, 1, 2})
	assert.NoError(t, err)
	assert.Equal(t, []int32{1, 2}, path)
}

/*
dari https://jlazarsfeld.github.io/ch.150.project/sections/8-contraction/
p=0, v=1, q=2, w=3, r=4, f=5

	 p
	  \
	   \
	    10
	     \
		  v -----3----- r
		 /            /
		6            5
	   /    		/
	  q ---5----- w ----15---- f

semua edge bidirectional
*/
func TestShortestPathLonger(t *testing.T) {
	g := NewGraph(t, 6, []testRoad{
		{0, 1, 10, 2001}, {1, 4, 3, 2002}, {1, 2, 6, 2003},
		{2, 3, 5, 2004}, {3, 4, 5, 2005}, {3, 5, 15, 2006},
	})
	rt := NewRouteAlgorithm(g)

	// shortest path nya:  P(0) -> V(1) -> R(4) -> W(3) -> F(5)
	path, priority, err := rt.ShortestPath(0, 5, nil)
	assert.NoError(t, err)
	assert.Equal(t, []int32{0, 1, 4, 3, 5}, path)
	assert.Equal(t, uint64(33), priority.Length)
	assert.Equal(t, int32(2001), priority.OldestRepair)

	reverse, _, err := rt.ShortestPath(5, 0, nil)
	assert.NoError(t, err)
	assert.Equal(t, []int32{5, 3, 4, 1, 0}, reverse)
}

func TestShortestPathSameCity(t *testing.T) {
	g := NewGraph(t, 2, []testRoad{{0, 1, 1, 1}})
	rt := NewRouteAlgorithm(g)

	path, priority, err := rt.ShortestPath(1, 1, nil)
	assert.NoError(t, err)
	assert.Equal(t, []int32{1}, path)
	assert.Equal(t, uint64(0), priority.Length)
}

/*
ties are decided per city: X is reached by A-B-X (2, oldest 2001) and A-C-X (2, oldest 2005), A-C-X wins at X.
both full paths to D have (3, oldest 2000) but only the winner at X is extended.

	A --1/2001-- B --1/2005-- X --1/2000-- D
	A --1/2005-- C --1/2005-- X
*/
func TestShortestPathTieDecidedOnPrefix(t *testing.T) {
	g := NewGraph(t, 5, []testRoad{
		{0, 1, 1, 2001}, {1, 3, 1, 2005},
		{0, 2, 1, 2005}, {2, 3, 1, 2005},
		{3, 4, 1, 2000},
	})
	rt := NewRouteAlgorithm(g)

	path, priority, err := rt.ShortestPath(0, 4, nil)
	assert.NoError(t, err)
	assert.Equal(t, []int32{0, 2, 3, 4}, path)
	assert.Equal(t, uint64(3), priority.Length)
	assert.Equal(t, int32(2000), priority.OldestRepair)
}
