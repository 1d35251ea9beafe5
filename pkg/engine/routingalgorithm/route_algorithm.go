package routingalgorithm

import (
	"errors"
	"math"

	"github.com/lintang-b-s/roadnet/pkg/datastructure"
)

var (
	ErrUnreachable   = errors.New("destination is unreachable")
	ErrAmbiguousPath = errors.New("best path is not unique")
	ErrCityNotFound  = errors.New("city not found")
)

// noSegmentYet. oldest repair year of a path without any road segment.
const noSegmentYet = math.MaxInt32

type RouteAlgorithm struct {
	g RoadNetwork
}

func NewRouteAlgorithm(g RoadNetwork) *RouteAlgorithm {
	return &RouteAlgorithm{g: g}
}

// searchState. per city state of one ShortestPath call.
type searchState struct {
	best        datastructure.PathPriority
	predecessor int32
	unique      bool
	visited     bool
	excluded    bool
}
