package service

import (
	"context"
	"errors"
	"sync"

	"github.com/lintang-b-s/roadnet/pkg/datastructure"
	"github.com/lintang-b-s/roadnet/pkg/roadmap"
	"github.com/lintang-b-s/roadnet/pkg/server"
)

type SnapshotCodec interface {
	Encode(m *roadmap.Map) ([]byte, error)
	Decode(data []byte) (*roadmap.Map, error)
}

type RouteView struct {
	RouteID     uint32
	Description string
	Cities      []string
}

// RoadNetworkService. every call holds mu, roadmap.Map is not safe for concurrent use.
type RoadNetworkService struct {
	mu    sync.Mutex
	m     *roadmap.Map
	codec SnapshotCodec
}

func NewRoadNetworkService(m *roadmap.Map, codec SnapshotCodec) *RoadNetworkService {
	return &RoadNetworkService{m: m, codec: codec}
}

func (s *RoadNetworkService) AddRoad(ctx context.Context, cityA, cityB string, length uint32, repairYear int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.m.AddRoad(cityA, cityB, length, repairYear); err != nil {
		return wrapRoadmapError(err, "can not add road")
	}
	return nil
}

func (s *RoadNetworkService) RepairRoad(ctx context.Context, cityA, cityB string, repairYear int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.m.RepairRoad(cityA, cityB, repairYear); err != nil {
		return wrapRoadmapError(err, "can not repair road")
	}
	return nil
}

func (s *RoadNetworkService) RemoveRoad(ctx context.Context, cityA, cityB string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.m.RemoveRoad(cityA, cityB); err != nil {
		return wrapRoadmapError(err, "can not remove road")
	}
	return nil
}

func (s *RoadNetworkService) GetRoad(ctx context.Context, cityA, cityB string) (datastructure.Road, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	road, err := s.m.RoadInfo(cityA, cityB)
	if err != nil {
		return datastructure.Road{}, wrapRoadmapError(err, "can not get road")
	}
	return road, nil
}

func (s *RoadNetworkService) NewRoute(ctx context.Context, routeID uint32, cityA, cityB string) (RouteView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.m.NewRoute(routeID, cityA, cityB); err != nil {
		return RouteView{}, wrapRoadmapError(err, "can not create route")
	}
	return s.routeView(routeID)
}

func (s *RoadNetworkService) DefineRoute(ctx context.Context, routeID uint32, cities []string, lengths []uint32,
	years []int32) (RouteView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.m.DefineRoute(routeID, cities, lengths, years); err != nil {
		return RouteView{}, wrapRoadmapError(err, "can not define route")
	}
	return s.routeView(routeID)
}

func (s *RoadNetworkService) ExtendRoute(ctx context.Context, routeID uint32, city string) (RouteView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.m.ExtendRoute(routeID, city); err != nil {
		return RouteView{}, wrapRoadmapError(err, "can not extend route")
	}
	return s.routeView(routeID)
}

func (s *RoadNetworkService) RemoveRoute(ctx context.Context, routeID uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.m.RemoveRoute(routeID); err != nil {
		return wrapRoadmapError(err, "can not remove route")
	}
	return nil
}

func (s *RoadNetworkService) GetRoute(ctx context.Context, routeID uint32) (RouteView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.routeView(routeID)
}

func (s *RoadNetworkService) ListRoutes(ctx context.Context) []uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.RouteIDs()
}

// Snapshot. encoded copy of the whole road network.
func (s *RoadNetworkService) Snapshot(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.codec.Encode(s.m)
	if err != nil {
		return nil, server.WrapErrorf(err, server.ErrInternalServerError, "internal server error")
	}
	return data, nil
}

// RestoreSnapshot. replace the road network with the decoded snapshot. the current network stays if data can
// not be decoded.
func (s *RoadNetworkService) RestoreSnapshot(ctx context.Context, data []byte) error {
	restored, err := s.codec.Decode(data)
	if err != nil {
		return server.WrapErrorf(err, server.ErrBadParamInput, "invalid snapshot")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.m.Close()
	s.m = restored
	return nil
}

func (s *RoadNetworkService) routeView(routeID uint32) (RouteView, error) {
	cities, err := s.m.RouteCities(routeID)
	if err != nil {
		return RouteView{}, wrapRoadmapError(err, "can not get route")
	}
	return RouteView{
		RouteID:     routeID,
		Description: s.m.GetRouteDescription(routeID),
		Cities:      cities,
	}, nil
}

func wrapRoadmapError(err error, msg string) error {
	code := server.ErrInternalServerError
	switch {
	case errors.Is(err, roadmap.ErrCityNotFound), errors.Is(err, roadmap.ErrRoadNotFound),
		errors.Is(err, roadmap.ErrRouteNotFound):
		code = server.ErrNotFound
	case errors.Is(err, roadmap.ErrRoadExists), errors.Is(err, roadmap.ErrRouteIDInUse),
		errors.Is(err, roadmap.ErrAmbiguousPath), errors.Is(err, roadmap.ErrExtensionTie):
		code = server.ErrConflict
	case errors.Is(err, roadmap.ErrUnreachable), errors.Is(err, roadmap.ErrNoExtension):
		code = server.ErrUnprocessable
	case errors.Is(err, roadmap.ErrInvalidCityName), errors.Is(err, roadmap.ErrSameCity),
		errors.Is(err, roadmap.ErrInvalidLength), errors.Is(err, roadmap.ErrInvalidYear),
		errors.Is(err, roadmap.ErrRouteIDOutOfRange), errors.Is(err, roadmap.ErrOlderRepairYear),
		errors.Is(err, roadmap.ErrLengthMismatch), errors.Is(err, roadmap.ErrCityOnRoute),
		errors.Is(err, roadmap.ErrRepeatedCity), errors.Is(err, roadmap.ErrDescriptionTooShort),
		errors.Is(err, roadmap.ErrMalformedDescription):
		code = server.ErrBadParamInput
	}
	return server.WrapErrorf(err, code, "%s", msg)
}
