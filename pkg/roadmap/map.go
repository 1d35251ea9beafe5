package roadmap

import (
	"fmt"

	"github.com/lintang-b-s/roadnet/pkg/concurrent"
	"github.com/lintang-b-s/roadnet/pkg/datastructure"
	"github.com/lintang-b-s/roadnet/pkg/engine/routingalgorithm"
	"github.com/lintang-b-s/roadnet/pkg/util"
)

const DefaultMaxRouteID = 999

type Option func(*Map)

// WithRerouteWorkers. number of goroutines searching detours in RemoveRoad, 1 searches sequentially.
func WithRerouteWorkers(n int) Option {
	return func(m *Map) {
		if n > 0 {
			m.rerouteWorkers = n
		}
	}
}

// WithMaxRouteID. valid route ids are [1, maxRouteID].
func WithMaxRouteID(maxRouteID uint32) Option {
	return func(m *Map) {
		if maxRouteID > 0 {
			m.maxRouteID = maxRouteID
		}
	}
}

/*
Map. road network of named cities plus registered routes that are kept valid while roads are added,
repaired and removed. every mutating method validates first and mutates only after every check passed,
so a returned error means the network is unchanged.

Map is not safe for concurrent use.
*/
type Map struct {
	graph      *datastructure.RoadGraph
	index      *datastructure.CityIndex
	routes     map[uint32]*datastructure.Route
	maxRouteID uint32
	rt         *routingalgorithm.RouteAlgorithm

	rerouteWorkers int
}

func NewMap(opts ...Option) *Map {
	m := &Map{maxRouteID: DefaultMaxRouteID, rerouteWorkers: 1}
	for _, opt := range opts {
		opt(m)
	}
	m.reset()
	return m
}

func (m *Map) reset() {
	m.graph = datastructure.NewRoadGraph()
	m.index = datastructure.NewCityIndex()
	m.routes = make(map[uint32]*datastructure.Route)
	m.rt = routingalgorithm.NewRouteAlgorithm(m.graph)
}

func (m *Map) MaxRouteID() uint32 {
	return m.maxRouteID
}

func (m *Map) NumCities() int {
	return m.graph.NumCities()
}

// Close. drop every route, then every road and city.
func (m *Map) Close() {
	for id := range m.routes {
		delete(m.routes, id)
	}
	m.reset()
}

func (m *Map) lookupCity(name string) (int32, error) {
	if !datastructure.ValidCityName(name) {
		return -1, fmt.Errorf("%w: %q", ErrInvalidCityName, name)
	}
	id, ok := m.index.Lookup(name)
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrCityNotFound, name)
	}
	return id, nil
}

func (m *Map) lookupCityPair(cityA, cityB string) (int32, int32, error) {
	a, err := m.lookupCity(cityA)
	if err != nil {
		return -1, -1, err
	}
	b, err := m.lookupCity(cityB)
	if err != nil {
		return -1, -1, err
	}
	return a, b, nil
}

// cityOrCreate. must only be called once every validation of the operation passed.
func (m *Map) cityOrCreate(name string) int32 {
	if id, ok := m.index.Lookup(name); ok {
		return id
	}
	id, err := m.graph.AddCity(name)
	if err != nil {
		panic(fmt.Sprintf("roadmap: add validated city %q: %v", name, err))
	}
	if err := m.index.Insert(name, id); err != nil {
		panic(fmt.Sprintf("roadmap: index city %q: %v", name, err))
	}
	return id
}

func (m *Map) checkRouteID(routeID uint32) error {
	if routeID == 0 || routeID > m.maxRouteID {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrRouteIDOutOfRange, routeID, m.maxRouteID)
	}
	return nil
}

func (m *Map) route(routeID uint32) (*datastructure.Route, error) {
	if err := m.checkRouteID(routeID); err != nil {
		return nil, err
	}
	r, ok := m.routes[routeID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrRouteNotFound, routeID)
	}
	return r, nil
}

// AddRoad. connect cityA and cityB, cities that do not exist yet are created.
func (m *Map) AddRoad(cityA, cityB string, length uint32, repairYear int32) error {
	if !datastructure.ValidCityName(cityA) {
		return fmt.Errorf("%w: %q", ErrInvalidCityName, cityA)
	}
	if !datastructure.ValidCityName(cityB) {
		return fmt.Errorf("%w: %q", ErrInvalidCityName, cityB)
	}
	if cityA == cityB {
		return ErrSameCity
	}
	if length == 0 {
		return ErrInvalidLength
	}
	if repairYear == 0 {
		return ErrInvalidYear
	}

	a, okA := m.index.Lookup(cityA)
	b, okB := m.index.Lookup(cityB)
	if okA && okB && m.graph.AreConnected(a, b) {
		return fmt.Errorf("%w: %q and %q", ErrRoadExists, cityA, cityB)
	}

	a = m.cityOrCreate(cityA)
	b = m.cityOrCreate(cityB)
	return m.graph.Connect(a, b, length, repairYear)
}

// RepairRoad. set the repair year of the road between cityA and cityB. the year may stay the same but
// never go back.
func (m *Map) RepairRoad(cityA, cityB string, repairYear int32) error {
	a, b, err := m.lookupCityPair(cityA, cityB)
	if err != nil {
		return err
	}
	if repairYear == 0 {
		return ErrInvalidYear
	}
	road, ok := m.graph.GetRoad(a, b)
	if !ok {
		return fmt.Errorf("%w: %q and %q", ErrRoadNotFound, cityA, cityB)
	}
	if repairYear < road.RepairYear {
		return fmt.Errorf("%w: %d < %d", ErrOlderRepairYear, repairYear, road.RepairYear)
	}
	return m.graph.SetRepairYear(a, b, repairYear)
}

// RoadInfo. return the road between cityA and cityB.
func (m *Map) RoadInfo(cityA, cityB string) (datastructure.Road, error) {
	a, b, err := m.lookupCityPair(cityA, cityB)
	if err != nil {
		return datastructure.Road{}, err
	}
	road, ok := m.graph.GetRoad(a, b)
	if !ok {
		return datastructure.Road{}, fmt.Errorf("%w: %q and %q", ErrRoadNotFound, cityA, cityB)
	}
	return road, nil
}

// NewRoute. register the unique best path from cityA to cityB as route routeID.
func (m *Map) NewRoute(routeID uint32, cityA, cityB string) error {
	if err := m.checkRouteID(routeID); err != nil {
		return err
	}
	if _, ok := m.routes[routeID]; ok {
		return fmt.Errorf("%w: %d", ErrRouteIDInUse, routeID)
	}
	if !datastructure.ValidCityName(cityA) || !datastructure.ValidCityName(cityB) {
		return ErrInvalidCityName
	}
	if cityA == cityB {
		return ErrSameCity
	}
	a, b, err := m.lookupCityPair(cityA, cityB)
	if err != nil {
		return err
	}

	path, _, err := m.rt.ShortestPath(a, b, nil)
	if err != nil {
		return fmt.Errorf("route %d from %q to %q: %w", routeID, cityA, cityB, err)
	}

	m.routes[routeID] = datastructure.NewRoute(path)
	return nil
}

/*
ExtendRoute. extend route routeID so that it ends in city. the best path city->front and the best path
back->city are computed without crossing the route, the strictly better one is attached.

	front                back
	  A ---- B ---- C ---- D
	  |                     \
	  X (city)               Y - X

toFront = X-A, toBack = D-Y-X
*/
func (m *Map) ExtendRoute(routeID uint32, city string) error {
	r, err := m.route(routeID)
	if err != nil {
		return err
	}
	c, err := m.lookupCity(city)
	if err != nil {
		return err
	}
	if r.Contains(c) {
		return fmt.Errorf("%w: %q", ErrCityOnRoute, city)
	}

	onRoute := r.Cities()
	toFront, frontPriority, errFront := m.rt.ShortestPath(c, r.Front(), onRoute)
	toBack, backPriority, errBack := m.rt.ShortestPath(r.Back(), c, onRoute)
	if errFront != nil {
		frontPriority = datastructure.EmptyPriority()
	}
	if errBack != nil {
		backPriority = datastructure.EmptyPriority()
	}

	if !frontPriority.Set && !backPriority.Set {
		return fmt.Errorf("%w: route %d to %q (front: %v, back: %v)", ErrNoExtension, routeID, city,
			errFront, errBack)
	}

	switch cmp := datastructure.ComparePriority(frontPriority, backPriority); {
	case cmp > 0:
		return r.AppendPath(toFront, true)
	case cmp < 0:
		return r.AppendPath(toBack, false)
	default:
		return fmt.Errorf("%w: route %d to %q", ErrExtensionTie, routeID, city)
	}
}

type detour struct {
	path []int32
	err  error
}

/*
RemoveRoad. remove the road between cityA and cityB. every route that uses the road gets the road replaced by
the unique best detour that does not cross the route. if any route can not be rerouted the road is put back
with its original length and repair year and nothing changes.

	route  A - B ------- C - E       removeRoad(B, C)
	            \       /
	             B - D - C
	result A - B - D - C - E
*/
func (m *Map) RemoveRoad(cityA, cityB string) error {
	a, b, err := m.lookupCityPair(cityA, cityB)
	if err != nil {
		return err
	}

	removed, err := m.graph.Disconnect(a, b)
	if err != nil {
		return fmt.Errorf("%w: %q and %q", err, cityA, cityB)
	}

	jobs := make([]concurrent.DetourJob, 0)
	for _, routeID := range m.RouteIDs() {
		r := m.routes[routeID]
		i, ok := r.ContainsEdge(a, b)
		if !ok {
			continue
		}
		cities := r.Cities()
		jobs = append(jobs, concurrent.NewDetourJob(len(jobs), routeID, cities[i], cities[i+1], cities))
	}

	detours := m.findDetours(jobs)
	for i, d := range detours {
		if d.err != nil {
			m.rollbackRemoval(removed)
			return fmt.Errorf("%w: route %d: %w", ErrRerouteFailed, jobs[i].RouteID, d.err)
		}
	}

	for i, d := range detours {
		job := jobs[i]
		if err := m.routes[job.RouteID].SpliceReplace(job.GapStart, job.GapEnd, d.path); err != nil {
			panic(fmt.Sprintf("roadmap: splice validated detour: %v", err))
		}
	}
	return nil
}

func (m *Map) findDetour(job concurrent.DetourJob) detour {
	path, _, err := m.rt.ShortestPath(job.GapStart, job.GapEnd, job.Excluded)
	return detour{path: path, err: err}
}

type indexedDetour struct {
	index int
	detour
}

// findDetours. detours[i] is the result of jobs[i]. searches only read the graph, so they may run in parallel.
func (m *Map) findDetours(jobs []concurrent.DetourJob) []detour {
	detours := make([]detour, len(jobs))
	if m.rerouteWorkers <= 1 || len(jobs) < 2 {
		for i, job := range jobs {
			detours[i] = m.findDetour(job)
		}
		return detours
	}

	workers := concurrent.NewWorkerPool[concurrent.DetourJob, indexedDetour](m.rerouteWorkers, len(jobs))
	for _, job := range jobs {
		workers.AddJob(job)
	}
	workers.Close()
	workers.Start(func(job concurrent.DetourJob) indexedDetour {
		return indexedDetour{index: job.Index, detour: m.findDetour(job)}
	})
	workers.Wait()

	for res := range workers.CollectResults() {
		detours[res.index] = res.detour
	}
	return detours
}

func (m *Map) rollbackRemoval(removed datastructure.Road) {
	if err := m.graph.Connect(removed.CityA, removed.CityB, removed.Length, removed.RepairYear); err != nil {
		panic(fmt.Sprintf("roadmap: restore removed road %d-%d: %v", removed.CityA, removed.CityB, err))
	}
}

// GetRouteDescription. "<id>;<city1>;<len12>;<year12>;<city2>;...;<cityN>", empty string for an unused id.
func (m *Map) GetRouteDescription(routeID uint32) string {
	r, err := m.route(routeID)
	if err != nil {
		return ""
	}
	return r.Render(routeID, m.graph, m.graph)
}

/*
DefineRoute. register route routeID exactly as described: cities[i] and cities[i+1] are joined by a road of
lengths[i], repaired in years[i]. missing cities and roads are created, an existing road must have the same
length and its repair year is raised to years[i] when older.
*/
func (m *Map) DefineRoute(routeID uint32, cities []string, lengths []uint32, years []int32) error {
	if err := m.checkRouteID(routeID); err != nil {
		return err
	}
	if _, ok := m.routes[routeID]; ok {
		return fmt.Errorf("%w: %d", ErrRouteIDInUse, routeID)
	}
	if len(cities) < 2 {
		return ErrDescriptionTooShort
	}
	if len(lengths) != len(cities)-1 || len(years) != len(cities)-1 {
		return ErrMalformedDescription
	}

	seen := make(map[string]struct{}, len(cities))
	for _, name := range cities {
		if !datastructure.ValidCityName(name) {
			return fmt.Errorf("%w: %q", ErrInvalidCityName, name)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: %q", ErrRepeatedCity, name)
		}
		seen[name] = struct{}{}
	}

	for i := 0; i+1 < len(cities); i++ {
		if lengths[i] == 0 {
			return ErrInvalidLength
		}
		if years[i] == 0 {
			return ErrInvalidYear
		}
		a, okA := m.index.Lookup(cities[i])
		b, okB := m.index.Lookup(cities[i+1])
		if !okA || !okB {
			continue
		}
		road, ok := m.graph.GetRoad(a, b)
		if !ok {
			continue
		}
		if road.Length != lengths[i] {
			return fmt.Errorf("%w: %q-%q has length %d", ErrLengthMismatch, cities[i], cities[i+1], road.Length)
		}
		if road.RepairYear > years[i] {
			return fmt.Errorf("%w: %q-%q repaired in %d", ErrOlderRepairYear, cities[i], cities[i+1],
				road.RepairYear)
		}
	}

	ids := make([]int32, len(cities))
	for i, name := range cities {
		ids[i] = m.cityOrCreate(name)
	}
	for i := 0; i+1 < len(ids); i++ {
		var err error
		if m.graph.AreConnected(ids[i], ids[i+1]) {
			err = m.graph.SetRepairYear(ids[i], ids[i+1], years[i])
		} else {
			err = m.graph.Connect(ids[i], ids[i+1], lengths[i], years[i])
		}
		if err != nil {
			panic(fmt.Sprintf("roadmap: apply validated road %q-%q: %v", cities[i], cities[i+1], err))
		}
	}

	m.routes[routeID] = datastructure.NewRoute(ids)
	return nil
}

// RemoveRoute. unregister route routeID, its cities and roads stay.
func (m *Map) RemoveRoute(routeID uint32) error {
	if _, err := m.route(routeID); err != nil {
		return err
	}
	delete(m.routes, routeID)
	return nil
}

// RouteCities. city names of route routeID in route order.
func (m *Map) RouteCities(routeID uint32) ([]string, error) {
	r, err := m.route(routeID)
	if err != nil {
		return nil, err
	}
	ids := r.Cities()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = m.graph.CityName(id)
	}
	return names, nil
}

// RouteIDs. registered route ids in ascending order.
func (m *Map) RouteIDs() []uint32 {
	ids := make([]uint32, 0, len(m.routes))
	for id := range m.routes {
		ids = append(ids, id)
	}
	return util.QuickSortG(ids, func(a, b uint32) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	})
}
