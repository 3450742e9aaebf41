package routing

// PathSet is the result of a path enumeration.
type PathSet struct {
	Paths     [][]string
	Truncated bool
}

// EnumeratePaths lists every simple airport path with at most maxLegs edges from
// each origin to each destination, walking topology only. Origins and destinations
// absent from the graph are ignored. Enumeration stops once maxPaths paths have been
// collected (maxPaths <= 0 disables the cap) and the result is flagged as truncated.
//
// Output order is deterministic: origins and destinations in the order given,
// neighbors in lexical order.
func EnumeratePaths(g *ScheduleGraph, origins, destinations []string, maxLegs, maxPaths int) PathSet {
	var set PathSet
	if g == nil || maxLegs <= 0 {
		return set
	}

	for _, origin := range origins {
		if !g.HasAirport(origin) {
			continue
		}
		hops := g.Hops(origin)
		for _, destination := range destinations {
			if destination == origin || !g.HasAirport(destination) {
				continue
			}
			// skip pairs that cannot be joined within the leg budget
			if d, ok := hops[destination]; !ok || d > maxLegs {
				continue
			}
			w := pathWalker{
				graph:       g,
				destination: destination,
				maxLegs:     maxLegs,
				maxPaths:    maxPaths,
				onPath:      []string{origin},
				visited:     map[string]bool{origin: true},
				set:         &set,
			}
			if !w.walk(origin) {
				return set
			}
		}
	}
	return set
}

// pathWalker is a bounded depth-first walk collecting simple paths to one destination.
type pathWalker struct {
	graph       *ScheduleGraph
	destination string
	maxLegs     int
	maxPaths    int
	onPath      []string
	visited     map[string]bool
	set         *PathSet
}

// walk extends the current path from node; it returns false once the path cap is hit.
func (w *pathWalker) walk(node string) bool {
	if len(w.onPath)-1 >= w.maxLegs {
		return true
	}
	for _, next := range w.graph.Neighbors(node) {
		if w.visited[next] {
			continue
		}
		if next == w.destination {
			path := make([]string, len(w.onPath)+1)
			copy(path, w.onPath)
			path[len(w.onPath)] = next
			w.set.Paths = append(w.set.Paths, path)
			if w.maxPaths > 0 && len(w.set.Paths) >= w.maxPaths {
				w.set.Truncated = true
				return false
			}
			continue
		}
		w.visited[next] = true
		w.onPath = append(w.onPath, next)
		ok := w.walk(next)
		w.onPath = w.onPath[:len(w.onPath)-1]
		w.visited[next] = false
		if !ok {
			return false
		}
	}
	return true
}
