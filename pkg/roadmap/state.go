package roadmap

import (
	"fmt"

	"github.com/lintang-b-s/roadnet/pkg/datastructure"
)

type RoadState struct {
	CityA      int32
	CityB      int32
	Length     uint32
	RepairYear int32
}

type RouteState struct {
	ID     uint32
	Cities []int32
}

// State. flat copy of a Map, city i of Cities has id i.
type State struct {
	MaxRouteID uint32
	Cities     []string
	Roads      []RoadState
	Routes     []RouteState
}

func (m *Map) State() State {
	cities := m.graph.Cities()
	names := make([]string, len(cities))
	for i, c := range cities {
		names[i] = c.Name
	}

	graphRoads := m.graph.Roads()
	roads := make([]RoadState, len(graphRoads))
	for i, r := range graphRoads {
		roads[i] = RoadState{
			CityA:      r.CityA,
			CityB:      r.CityB,
			Length:     r.Length,
			RepairYear: r.RepairYear,
		}
	}

	routes := make([]RouteState, 0, len(m.routes))
	for _, id := range m.RouteIDs() {
		routes = append(routes, RouteState{ID: id, Cities: m.routes[id].Cities()})
	}

	return State{
		MaxRouteID: m.maxRouteID,
		Cities:     names,
		Roads:      roads,
		Routes:     routes,
	}
}

// FromState. rebuild a Map from s. every route must be a simple path over existing roads.
func FromState(s State, opts ...Option) (*Map, error) {
	m := NewMap(append([]Option{WithMaxRouteID(s.MaxRouteID)}, opts...)...)

	for _, name := range s.Cities {
		if _, ok := m.index.Lookup(name); ok {
			return nil, fmt.Errorf("%w: duplicate city %q", ErrInvalidState, name)
		}
		id, err := m.graph.AddCity(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidState, err)
		}
		if err := m.index.Insert(name, id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidState, err)
		}
	}

	for _, r := range s.Roads {
		if err := m.graph.Connect(r.CityA, r.CityB, r.Length, r.RepairYear); err != nil {
			return nil, fmt.Errorf("%w: road %d-%d: %w", ErrInvalidState, r.CityA, r.CityB, err)
		}
	}

	for _, r := range s.Routes {
		if err := m.checkRouteID(r.ID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidState, err)
		}
		if _, ok := m.routes[r.ID]; ok {
			return nil, fmt.Errorf("%w: %w: %d", ErrInvalidState, ErrRouteIDInUse, r.ID)
		}
		if len(r.Cities) < 2 {
			return nil, fmt.Errorf("%w: route %d: %w", ErrInvalidState, r.ID, ErrDescriptionTooShort)
		}
		seen := make(map[int32]struct{}, len(r.Cities))
		for i, c := range r.Cities {
			if _, ok := seen[c]; ok {
				return nil, fmt.Errorf("%w: route %d: %w", ErrInvalidState, r.ID, ErrRepeatedCity)
			}
			seen[c] = struct{}{}
			if i > 0 && !m.graph.AreConnected(r.Cities[i-1], c) {
				return nil, fmt.Errorf("%w: route %d: %w", ErrInvalidState, r.ID, ErrRoadNotFound)
			}
		}
		m.routes[r.ID] = datastructure.NewRoute(r.Cities)
	}

	return m, nil
}
