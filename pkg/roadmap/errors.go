package roadmap

import (
	"errors"

	"github.com/lintang-b-s/roadnet/pkg/datastructure"
	"github.com/lintang-b-s/roadnet/pkg/engine/routingalgorithm"
)

var (
	ErrInvalidCityName = datastructure.ErrInvalidCityName
	ErrSameCity        = datastructure.ErrSameCity
	ErrInvalidLength   = datastructure.ErrInvalidLength
	ErrInvalidYear     = datastructure.ErrInvalidYear
	ErrRoadExists      = datastructure.ErrRoadExists
	ErrRepeatedCity    = datastructure.ErrRepeatedCity
	ErrCityNotFound    = datastructure.ErrCityNotFound
	ErrRoadNotFound    = datastructure.ErrRoadNotFound

	ErrUnreachable   = routingalgorithm.ErrUnreachable
	ErrAmbiguousPath = routingalgorithm.ErrAmbiguousPath

	ErrRouteIDOutOfRange    = errors.New("route id out of range")
	ErrRouteIDInUse         = errors.New("route id already in use")
	ErrRouteNotFound        = errors.New("route not found")
	ErrOlderRepairYear      = errors.New("repair year is older than the recorded one")
	ErrLengthMismatch       = errors.New("road length differs from the existing road")
	ErrCityOnRoute          = errors.New("city is already on the route")
	ErrDescriptionTooShort  = errors.New("route needs at least two cities")
	ErrMalformedDescription = errors.New("route description needs one length and one year per road")
	ErrExtensionTie         = errors.New("front and back extensions are equally good")
	ErrNoExtension          = errors.New("route can not be extended to the city")
	ErrRerouteFailed        = errors.New("affected route can not be rerouted")
	ErrInvalidState         = errors.New("invalid road network state")
)
