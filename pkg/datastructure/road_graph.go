package datastructure

import (
	"fmt"

	"github.com/lintang-b-s/roadnet/pkg/util"
)

// Road. undirected road segment. CityA is always the smaller city id.
type Road struct {
	CityA      int32
	CityB      int32
	Length     uint32
	RepairYear int32
}

func NewRoad(a, b int32, length uint32, repairYear int32) Road {
	if a > b {
		a, b = b, a
	}
	return Road{
		CityA:      a,
		CityB:      b,
		Length:     length,
		RepairYear: repairYear,
	}
}

// Other. return the endpoint of r that is not id.
func (r Road) Other(id int32) int32 {
	if r.CityA == id {
		return r.CityB
	}
	return r.CityA
}

func roadKey(a, b int32) int64 {
	if a > b {
		a, b = b, a
	}
	return util.BitPackInt64(int64(a), int64(b), 32)
}

/*
RoadGraph. cities are stored in an arena indexed by their dense id, roads in a map keyed by the
packed unordered pair of endpoint ids, adjacency is a neighbor set per city.

	   Alpha --10-- Beta
	     \          /
	      5        7
	       \      /
	        Gamma

adjacency[Alpha] = {Beta, Gamma}, roads[pack(Alpha,Beta)] = {Length: 10, ...}
*/
type RoadGraph struct {
	cities    []City
	adjacency []map[int32]struct{}
	roads     map[int64]Road
}

func NewRoadGraph() *RoadGraph {
	return &RoadGraph{
		cities:    make([]City, 0),
		adjacency: make([]map[int32]struct{}, 0),
		roads:     make(map[int64]Road),
	}
}

// AddCity. append new city to the arena and return its id. the caller is responsible for name uniqueness.
func (g *RoadGraph) AddCity(name string) (int32, error) {
	if !ValidCityName(name) {
		return -1, fmt.Errorf("%w: %q", ErrInvalidCityName, name)
	}
	id := int32(len(g.cities))
	g.cities = append(g.cities, NewCity(id, name))
	g.adjacency = append(g.adjacency, make(map[int32]struct{}))
	return id, nil
}

func (g *RoadGraph) hasCity(id int32) bool {
	return id >= 0 && int(id) < len(g.cities)
}

func (g *RoadGraph) NumCities() int {
	return len(g.cities)
}

func (g *RoadGraph) CityName(id int32) string {
	if !g.hasCity(id) {
		return ""
	}
	return g.cities[id].Name
}

// Connect. add road between a and b.
func (g *RoadGraph) Connect(a, b int32, length uint32, repairYear int32) error {
	if !g.hasCity(a) || !g.hasCity(b) {
		return ErrCityNotFound
	}
	if a == b {
		return ErrSameCity
	}
	if length == 0 {
		return ErrInvalidLength
	}
	if repairYear == 0 {
		return ErrInvalidYear
	}
	key := roadKey(a, b)
	if _, ok := g.roads[key]; ok {
		return ErrRoadExists
	}

	g.roads[key] = NewRoad(a, b, length, repairYear)
	g.adjacency[a][b] = struct{}{}
	g.adjacency[b][a] = struct{}{}
	return nil
}

// Disconnect. remove road between a and b from both adjacency sets and return the removed road.
func (g *RoadGraph) Disconnect(a, b int32) (Road, error) {
	if !g.hasCity(a) || !g.hasCity(b) {
		return Road{}, ErrCityNotFound
	}
	key := roadKey(a, b)
	road, ok := g.roads[key]
	if !ok {
		return Road{}, ErrRoadNotFound
	}

	delete(g.roads, key)
	delete(g.adjacency[a], b)
	delete(g.adjacency[b], a)
	return road, nil
}

func (g *RoadGraph) AreConnected(a, b int32) bool {
	_, ok := g.roads[roadKey(a, b)]
	return ok
}

func (g *RoadGraph) GetRoad(a, b int32) (Road, bool) {
	road, ok := g.roads[roadKey(a, b)]
	return road, ok
}

// SetRepairYear. unconditional set, monotonicity is checked by the caller.
func (g *RoadGraph) SetRepairYear(a, b int32, repairYear int32) error {
	key := roadKey(a, b)
	road, ok := g.roads[key]
	if !ok {
		return ErrRoadNotFound
	}
	if repairYear == 0 {
		return ErrInvalidYear
	}
	road.RepairYear = repairYear
	g.roads[key] = road
	return nil
}

// Neighbors. return neighbor ids of city id sorted ascending.
func (g *RoadGraph) Neighbors(id int32) []int32 {
	if !g.hasCity(id) {
		return []int32{}
	}
	neighbors := make([]int32, 0, len(g.adjacency[id]))
	for n := range g.adjacency[id] {
		neighbors = append(neighbors, n)
	}
	return util.QuickSort(neighbors, 0, len(neighbors)-1, util.CompareInt32)
}

func (g *RoadGraph) Cities() []City {
	cities := make([]City, len(g.cities))
	copy(cities, g.cities)
	return cities
}

// Roads. return every road ordered by (CityA, CityB).
func (g *RoadGraph) Roads() []Road {
	roads := make([]Road, 0, len(g.roads))
	for _, r := range g.roads {
		roads = append(roads, r)
	}
	return util.QuickSort(roads, 0, len(roads)-1, func(x, y Road) int {
		if x.CityA != y.CityA {
			return util.CompareInt32(x.CityA, y.CityA)
		}
		return util.CompareInt32(x.CityB, y.CityB)
	})
}
