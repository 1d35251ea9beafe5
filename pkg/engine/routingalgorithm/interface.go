package routingalgorithm

import "github.com/lintang-b-s/roadnet/pkg/datastructure"

type RoadNetwork interface {
	NumCities() int
	// Neighbors. must be sorted ascending, the search is deterministic only then.
	Neighbors(cityID int32) []int32
	GetRoad(a, b int32) (datastructure.Road, bool)
}
