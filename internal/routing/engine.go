package routing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cargo-route-service/internal/domain/entity"
	"cargo-route-service/pkg/logger"
	"cargo-route-service/pkg/utils"
)

// ErrInvalidRequest is returned for requests that cannot describe a search
var ErrInvalidRequest = errors.New("routing: invalid request")

// Request describes one route search
type Request struct {
	EarliestAt   time.Time
	LatestDate   time.Time
	Origins      []string
	Destinations []string
	WeightKg     float64
}

// Normalize upper-cases, de-duplicates and sorts the airport lists.
func (r Request) Normalize() Request {
	r.Origins = utils.NormalizeCodes(r.Origins)
	r.Destinations = utils.NormalizeCodes(r.Destinations)
	return r
}

// Validate checks the request is searchable
func (r Request) Validate() error {
	switch {
	case len(r.Origins) == 0:
		return fmt.Errorf("%w: no origin airport", ErrInvalidRequest)
	case len(r.Destinations) == 0:
		return fmt.Errorf("%w: no destination airport", ErrInvalidRequest)
	case r.WeightKg <= 0:
		return fmt.Errorf("%w: weight must be positive, got %v", ErrInvalidRequest, r.WeightKg)
	case r.EarliestAt.IsZero():
		return fmt.Errorf("%w: earliest availability is required", ErrInvalidRequest)
	case utils.TruncateToDate(r.LatestDate).Before(utils.TruncateToDate(r.EarliestAt)):
		return fmt.Errorf("%w: latest date %s is before earliest availability %s",
			ErrInvalidRequest, r.LatestDate.Format(utils.ISO_DATE_LAYOUT), r.EarliestAt.Format(utils.ISO_DATE_LAYOUT))
	}
	return nil
}

// Window returns the departure-date range to load: from the earliest date up
// to the latest date plus the lookahead buffer.
func (r Request) Window(lookaheadDays int) (from, to time.Time) {
	from = utils.TruncateToDate(r.EarliestAt)
	to = utils.TruncateToDate(r.LatestDate).AddDate(0, 0, lookaheadDays)
	return from, to
}

// Stats summarizes one engine run
type Stats struct {
	Legs         int
	Airports     int
	Paths        int
	Validated    int
	Discarded    int
	Truncated    bool
	NoCandidates bool
	// Qualified counts the candidates passing each category rule
	Qualified map[entity.Category]int
}

// Result is the outcome of one engine run
type Result struct {
	Candidates []entity.Candidate
	Winners    map[entity.Category]*entity.Candidate
	Stats      Stats
}

// Engine runs the routing pipeline over a schedule snapshot. It holds no
// mutable state, so one engine may serve concurrent searches.
type Engine struct {
	limits      SearchLimits
	validator   *Validator
	scorer      *Scorer
	categorizer *Categorizer
	logger      logger.Logger
}

// NewEngine creates a routing engine
func NewEngine(limits SearchLimits, weights Weights, log logger.Logger) *Engine {
	scorer := NewScorer(weights)
	return &Engine{
		limits:      limits,
		validator:   NewValidator(limits),
		scorer:      scorer,
		categorizer: NewCategorizer(scorer),
		logger:      log,
	}
}

// Limits returns the engine's search limits
func (e *Engine) Limits() SearchLimits {
	return e.limits
}

// Run builds the graph from snapshot, enumerates and validates paths, prices and
// scores the itineraries and selects the category winners. A graph missing the
// requested endpoints yields an empty result flagged NoCandidates.
func (e *Engine) Run(ctx context.Context, snapshot []entity.Leg, req Request, ev *Evaluator) Result {
	res := Result{Winners: map[entity.Category]*entity.Candidate{}}
	res.Stats.Qualified = make(map[entity.Category]int, len(entity.Categories))
	res.Stats.Legs = len(snapshot)

	g := BuildGraph(snapshot)
	res.Stats.Airports = g.AirportCount()
	if g.Skipped() > 0 {
		e.logger.Warn("Skipped malformed schedule legs", "count", g.Skipped())
	}

	if g.Empty() || !anyPresent(g, req.Origins) || !anyPresent(g, req.Destinations) {
		e.logger.Info("Requested airports are not in the schedule graph",
			"origins", req.Origins, "destinations", req.Destinations, "airports", g.AirportCount())
		res.Stats.NoCandidates = true
		return res
	}

	paths := EnumeratePaths(g, req.Origins, req.Destinations, e.limits.MaxLegs, e.limits.MaxPaths)
	res.Stats.Paths = len(paths.Paths)
	res.Stats.Truncated = paths.Truncated
	if paths.Truncated {
		e.logger.Warn("Path enumeration truncated", "maxPaths", e.limits.MaxPaths)
	}
	e.logger.Info("Candidate paths enumerated", "paths", len(paths.Paths), "routes", g.RouteCount())

	seen := make(map[string]struct{})
	for _, path := range paths.Paths {
		itineraries := e.validator.Feasible(g, path, req.EarliestAt)
		if len(itineraries) == 0 {
			res.Stats.Discarded++
			continue
		}
		for _, it := range itineraries {
			sig := it.Signature()
			if _, dup := seen[sig]; dup {
				continue
			}
			seen[sig] = struct{}{}
			res.Candidates = append(res.Candidates, ev.Evaluate(ctx, it))
		}
	}
	res.Stats.Validated = len(res.Candidates)
	e.logger.Info("Itineraries validated", "valid", res.Stats.Validated, "discardedPaths", res.Stats.Discarded)

	if len(res.Candidates) == 0 {
		return res
	}

	e.scorer.Apply(res.Candidates)
	res.Winners = e.categorizer.Categorize(res.Candidates)
	for _, category := range entity.Categories {
		res.Stats.Qualified[category] = len(e.categorizer.Rank(category, res.Candidates))
	}

	if best := res.Winners[entity.CategoryRecommended]; best != nil {
		e.logger.Info("Recommended itinerary selected",
			"carrier", best.Itinerary.Legs[0].Carrier,
			"stops", best.Metrics.Stops,
			"score", best.Metrics.Score,
			"partnership", best.Metrics.AvgPartnership)
	}
	return res
}

func anyPresent(g *ScheduleGraph, codes []string) bool {
	for _, c := range codes {
		if g.HasAirport(c) {
			return true
		}
	}
	return false
}
