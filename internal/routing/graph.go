package routing

import (
	"sort"

	"github.com/katalvlaran/lvlath/bfs"
	"github.com/katalvlaran/lvlath/core"

	"cargo-route-service/internal/domain/entity"
)

type cityPair struct {
	from, to string
}

// ScheduleGraph is the time-indexed schedule for one search. The topology
// (airports and the city pairs operated between them) lives in an lvlath
// directed graph; every physical flight stays selectable through the per-pair
// leg lists, which are kept in ascending departure order.
type ScheduleGraph struct {
	topology *core.Graph
	legs     map[cityPair][]entity.Leg
	skipped  int
}

// BuildGraph builds the schedule graph from a snapshot. Legs with a blank
// endpoint or identical origin and destination cannot form an edge and are skipped.
func BuildGraph(snapshot []entity.Leg) *ScheduleGraph {
	g := &ScheduleGraph{
		topology: core.NewGraph(core.WithDirected(true)),
		legs:     make(map[cityPair][]entity.Leg),
	}

	for _, leg := range snapshot {
		if leg.Origin == "" || leg.Destination == "" || leg.Origin == leg.Destination {
			g.skipped++
			continue
		}
		pair := cityPair{leg.Origin, leg.Destination}
		if _, exists := g.legs[pair]; !exists {
			if _, err := g.topology.AddEdge(leg.Origin, leg.Destination, 0); err != nil {
				g.skipped++
				continue
			}
		}
		g.legs[pair] = append(g.legs[pair], leg)
	}

	for pair := range g.legs {
		sortByDeparture(g.legs[pair])
	}

	return g
}

// Empty reports whether the graph has no airports
func (g *ScheduleGraph) Empty() bool {
	return g.topology.VertexCount() == 0
}

// HasAirport reports whether code is a node of the graph
func (g *ScheduleGraph) HasAirport(code string) bool {
	return code != "" && g.topology.HasVertex(code)
}

// AirportCount returns the number of airports in the graph
func (g *ScheduleGraph) AirportCount() int {
	return g.topology.VertexCount()
}

// RouteCount returns the number of operated city pairs
func (g *ScheduleGraph) RouteCount() int {
	return len(g.legs)
}

// Skipped returns how many snapshot legs could not be placed on the graph
func (g *ScheduleGraph) Skipped() int {
	return g.skipped
}

// Neighbors returns the airports directly served from code, in lexical order.
func (g *ScheduleGraph) Neighbors(code string) []string {
	ids, err := g.topology.NeighborIDs(code)
	if err != nil {
		return nil
	}
	return ids
}

// Legs returns the legs operating from → to in ascending departure order.
// The returned slice must not be modified.
func (g *ScheduleGraph) Legs(from, to string) []entity.Leg {
	return g.legs[cityPair{from, to}]
}

// Hops returns the minimum number of edges from origin to every reachable airport.
func (g *ScheduleGraph) Hops(origin string) map[string]int {
	if !g.HasAirport(origin) {
		return nil
	}
	res, err := bfs.BFS(g.topology, origin)
	if err != nil {
		return nil
	}
	return res.Depth
}

func sortByDeparture(legs []entity.Leg) {
	sort.SliceStable(legs, func(i, j int) bool {
		a, b := legs[i], legs[j]
		if !a.Departure.Equal(b.Departure) {
			return a.Departure.Before(b.Departure)
		}
		if a.Carrier != b.Carrier {
			return a.Carrier < b.Carrier
		}
		return a.FlightNumber < b.FlightNumber
	})
}
