package datastructure

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lintang-b-s/roadnet/pkg/util"
)

type RoadLookup interface {
	GetRoad(a, b int32) (Road, bool)
}

type CityNameLookup interface {
	CityName(id int32) string
}

// Route. ordered sequence of distinct city ids, every consecutive pair is joined by a road.
type Route struct {
	cities []int32
}

func NewRoute(cities []int32) *Route {
	c := make([]int32, len(cities))
	copy(c, cities)
	return &Route{cities: c}
}

func (r *Route) Len() int {
	return len(r.cities)
}

func (r *Route) Cities() []int32 {
	c := make([]int32, len(r.cities))
	copy(c, r.cities)
	return c
}

func (r *Route) Front() int32 {
	return r.cities[0]
}

func (r *Route) Back() int32 {
	return r.cities[len(r.cities)-1]
}

func (r *Route) Contains(cityID int32) bool {
	for _, c := range r.cities {
		if c == cityID {
			return true
		}
	}
	return false
}

// ContainsEdge. return index i such that {cities[i], cities[i+1]} == {a, b}.
func (r *Route) ContainsEdge(a, b int32) (int, bool) {
	for i := 0; i+1 < len(r.cities); i++ {
		u, v := r.cities[i], r.cities[i+1]
		if (u == a && v == b) || (u == b && v == a) {
			return i, true
		}
	}
	return -1, false
}

func (r *Route) containsAny(path []int32, skip int32) bool {
	onRoute := make(map[int32]struct{}, len(r.cities))
	for _, c := range r.cities {
		onRoute[c] = struct{}{}
	}
	for _, c := range path {
		if c == skip {
			continue
		}
		if _, ok := onRoute[c]; ok {
			return true
		}
	}
	return false
}

/*
AppendPath. attach extension at one end of the route.

atFront == false: extension must start at Back(),  A-B-C + C-D-E = A-B-C-D-E
atFront == true:  extension must end at Front(),   X-Y-A + A-B-C = X-Y-A-B-C
*/
func (r *Route) AppendPath(extension []int32, atFront bool) error {
	if len(r.cities) == 0 || len(extension) == 0 {
		return ErrEmptyRoute
	}

	if atFront {
		if extension[len(extension)-1] != r.Front() {
			return ErrPathEndpoint
		}
		if r.containsAny(extension, r.Front()) {
			return ErrRepeatedCity
		}
		cities := make([]int32, 0, len(extension)-1+len(r.cities))
		cities = append(cities, extension[:len(extension)-1]...)
		r.cities = append(cities, r.cities...)
		return nil
	}

	if extension[0] != r.Back() {
		return ErrPathEndpoint
	}
	if r.containsAny(extension, r.Back()) {
		return ErrRepeatedCity
	}
	r.cities = append(r.cities, extension[1:]...)
	return nil
}

/*
SpliceReplace. replace the direct edge gapStart-gapEnd of the route with detour.
the detour may be given in either direction, it is oriented to follow the route.

	route  A - B ------- C - E
	detour     B - D - C
	result A - B - D - C - E
*/
func (r *Route) SpliceReplace(gapStart, gapEnd int32, detour []int32) error {
	if len(detour) < 2 {
		return ErrDetourEndpoints
	}
	i, ok := r.ContainsEdge(gapStart, gapEnd)
	if !ok {
		return ErrEdgeNotOnRoute
	}

	u, v := r.cities[i], r.cities[i+1]
	first, last := detour[0], detour[len(detour)-1]
	switch {
	case first == u && last == v:
	case first == v && last == u:
		detour = util.ReverseG(detour)
	default:
		return ErrDetourEndpoints
	}

	inner := detour[1 : len(detour)-1]
	if r.containsAny(inner, -1) {
		return ErrRepeatedCity
	}

	cities := make([]int32, 0, len(r.cities)+len(inner))
	cities = append(cities, r.cities[:i+1]...)
	cities = append(cities, inner...)
	cities = append(cities, r.cities[i+1:]...)
	r.cities = cities
	return nil
}

// PathPriorityOf. derive (total length, oldest repair year) of path. empty priority if path has less
// than two cities or a missing road.
func PathPriorityOf(g RoadLookup, path []int32) PathPriority {
	if len(path) < 2 {
		return EmptyPriority()
	}
	length := uint64(0)
	oldest := int32(math.MaxInt32)
	for i := 0; i+1 < len(path); i++ {
		road, ok := g.GetRoad(path[i], path[i+1])
		if !ok {
			return EmptyPriority()
		}
		length += uint64(road.Length)
		oldest = min(oldest, road.RepairYear)
	}
	return NewPathPriority(path[len(path)-1], length, oldest)
}

// ComparePaths. same ordering as ComparePriority, applied to the derived priority of both paths.
func ComparePaths(g RoadLookup, p1, p2 []int32) int {
	return ComparePriority(PathPriorityOf(g, p1), PathPriorityOf(g, p2))
}

func (r *Route) Length(g RoadLookup) uint64 {
	return PathPriorityOf(g, r.cities).Length
}

func (r *Route) OldestRepair(g RoadLookup) int32 {
	return PathPriorityOf(g, r.cities).OldestRepair
}

// Render. "<id>;<city1>;<len12>;<year12>;<city2>;...;<cityN>".
func (r *Route) Render(routeID uint32, g RoadLookup, names CityNameLookup) string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(uint64(routeID), 10))
	for i, c := range r.cities {
		if i > 0 {
			road, ok := g.GetRoad(r.cities[i-1], c)
			if !ok {
				panic(fmt.Sprintf("route %d: missing road between city %d and city %d", routeID, r.cities[i-1], c))
			}
			sb.WriteByte(';')
			sb.WriteString(strconv.FormatUint(uint64(road.Length), 10))
			sb.WriteByte(';')
			sb.WriteString(strconv.FormatInt(int64(road.RepairYear), 10))
		}
		sb.WriteByte(';')
		sb.WriteString(names.CityName(c))
	}
	return sb.String()
}
