package routingalgorithm

import (
	"github.com/lintang-b-s/roadnet/pkg/datastructure"
	"github.com/lintang-b-s/roadnet/pkg/util"
)

/*
ShortestPath. dijkstra from `from` to `to` over the road network. cities in excluded can not be visited,
except `to` itself. paths are ordered by total length, then by the most recent oldest repair year
(see datastructure.ComparePriority).

every city keeps a flag telling whether its best path is the only best path. a neighbor relaxed with a
candidate that ties its current best gets the flag cleared. the search result is rejected with
ErrAmbiguousPath if any city on the reconstructed path has the flag cleared.

	      B
	 2/1990  3/1990
	A             D      A-B-D and A-C-D both have length 5 & oldest repair 1990 -> ErrAmbiguousPath
	 2/1990  3/1990
	      C

O((V+E)logV)
*/
func (rt *RouteAlgorithm) ShortestPath(from, to int32, excluded []int32) ([]int32, datastructure.PathPriority, error) {
	n := rt.g.NumCities()
	if from < 0 || int(from) >= n || to < 0 || int(to) >= n {
		return []int32{}, datastructure.EmptyPriority(), ErrCityNotFound
	}
	if from == to {
		return []int32{from}, datastructure.NewPathPriority(from, 0, noSegmentYet), nil
	}

	states := make([]searchState, n)
	for i := range states {
		states[i].predecessor = -1
	}
	for _, c := range excluded {
		if c >= 0 && int(c) < n {
			states[c].excluded = true
		}
	}

	pq := datastructure.NewPriorityFrontier(n)

	origin := datastructure.NewPathPriority(from, 0, noSegmentYet)
	states[from].best = origin
	pq.Relax(origin)

	found := false
	for !pq.IsEmpty() {
		curr, _ := pq.PopBest()
		c := curr.CityID
		states[c].visited = true
		if c == to {
			found = true
			break
		}

		for _, next := range rt.g.Neighbors(c) {
			st := &states[next]
			if st.visited || (st.excluded && next != to) {
				continue
			}

			road, ok := rt.g.GetRoad(c, next)
			if !ok {
				continue
			}

			candidate := datastructure.NewPathPriority(next, curr.Length+uint64(road.Length),
				min(curr.OldestRepair, road.RepairYear))

			switch cmp := datastructure.ComparePriority(candidate, st.best); {
			case cmp > 0:
				st.best = candidate
				st.predecessor = c
				st.unique = true
				pq.Relax(candidate)
			case cmp == 0:
				// second path with the same priority
				st.unique = false
				pq.Relax(candidate)
			}
		}
	}

	if !found {
		return []int32{}, datastructure.EmptyPriority(), ErrUnreachable
	}

	path := make([]int32, 0)
	for c := to; c != from; c = states[c].predecessor {
		if !states[c].unique {
			return []int32{}, datastructure.EmptyPriority(), ErrAmbiguousPath
		}
		path = append(path, c)
	}
	path = append(path, from)

	return util.ReverseG(path), states[to].best, nil
}
