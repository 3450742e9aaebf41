package usecase

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sort"
	"time"

	"cargo-route-service/internal/domain/entity"
	"cargo-route-service/internal/domain/repository"
	"cargo-route-service/internal/routing"
	"cargo-route-service/pkg/logger"
	"cargo-route-service/pkg/metrics"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrScheduleUnavailable is returned when the schedule snapshot cannot be read
	ErrScheduleUnavailable = errors.New("schedule unavailable")
	// ErrSearchFault is returned when a collaborator panics during a search
	ErrSearchFault = errors.New("route search fault")
	// ErrAuditDisabled is returned by search lookups when no audit store is configured
	ErrAuditDisabled = errors.New("route search audit log is disabled")
)

// PlannerOptions holds the request defaults applied by the planner
type PlannerOptions struct {
	DefaultWeightKg float64
	Partnership     routing.PartnershipDefaults
}

// RoutePlan is the outcome of one search together with its audit ID
type RoutePlan struct {
	SearchID string               `json:"searchId"`
	Options  *entity.RouteOptions `json:"options"`
}

// RoutePlanner orchestrates a route search: it loads the schedule snapshot and
// partnership scores, runs the routing engine and formats the winners.
type RoutePlanner struct {
	scheduleRepo repository.ScheduleRepository
	tariffRepo   repository.TariffRepository
	carrierRepo  repository.CarrierRepository
	searchRepo   repository.RouteSearchRepository
	engine       *routing.Engine
	formatter    *RouteFormatter
	metrics      *metrics.Metrics
	options      PlannerOptions
	logger       logger.Logger
}

// NewRoutePlanner creates a new route planner. searchRepo and m may be nil.
func NewRoutePlanner(
	scheduleRepo repository.ScheduleRepository,
	tariffRepo repository.TariffRepository,
	carrierRepo repository.CarrierRepository,
	searchRepo repository.RouteSearchRepository,
	engine *routing.Engine,
	formatter *RouteFormatter,
	m *metrics.Metrics,
	options PlannerOptions,
	logger logger.Logger,
) *RoutePlanner {
	return &RoutePlanner{
		scheduleRepo: scheduleRepo,
		tariffRepo:   tariffRepo,
		carrierRepo:  carrierRepo,
		searchRepo:   searchRepo,
		engine:       engine,
		formatter:    formatter,
		metrics:      m,
		options:      options,
		logger:       logger,
	}
}

// ComputeRouteOptions returns the best itinerary per category. Finding no
// itinerary is not an error: every category is then an empty list.
func (p *RoutePlanner) ComputeRouteOptions(ctx context.Context, req routing.Request) (*entity.RouteOptions, error) {
	plan, err := p.Plan(ctx, req)
	if err != nil {
		return nil, err
	}
	return plan.Options, nil
}

// Plan runs a search and records it in the audit log under a fresh search ID.
func (p *RoutePlanner) Plan(ctx context.Context, req routing.Request) (plan *RoutePlan, err error) {
	start := time.Now()
	searchID := uuid.NewString()
	log := p.logger.With("searchId", searchID)

	if req.WeightKg == 0 {
		req.WeightKg = p.options.DefaultWeightKg
	}
	req = req.Normalize()

	audit := &entity.RouteSearch{
		SearchID:           searchID,
		Origins:            req.Origins,
		Destinations:       req.Destinations,
		EarliestAt:         req.EarliestAt,
		LatestDate:         req.LatestDate,
		WeightKg:           req.WeightKg,
		CategoryLegs:       map[string]int{},
		CategoryCandidates: map[string]int{},
	}

	defer func() {
		if r := recover(); r != nil {
			plan = nil
			err = fmt.Errorf("%w: %v", ErrSearchFault, r)
			log.Error("Route search aborted by collaborator fault", "panic", r, "stack", string(debug.Stack()))
			p.incError("search_fault")
			p.finish(ctx, log, audit, entity.SearchFailed, err, start)
		}
	}()

	if err := req.Validate(); err != nil {
		log.Warn("Rejected route search", "error", err)
		p.finish(ctx, log, audit, entity.SearchInvalid, err, start)
		return nil, err
	}

	log.Info("Computing route options",
		"origins", req.Origins,
		"destinations", req.Destinations,
		"earliest", req.EarliestAt,
		"latestDate", req.LatestDate,
		"weightKg", req.WeightKg)

	snapshot, scores, err := p.load(ctx, log, req)
	if err != nil {
		p.incError("load_schedule")
		p.finish(ctx, log, audit, entity.SearchFailed, err, start)
		return nil, err
	}

	evaluator := routing.NewEvaluator(p.tariffRepo, scores, p.options.Partnership, req.WeightKg, log)
	result := p.engine.Run(ctx, snapshot, req, evaluator)

	audit.LegsLoaded = result.Stats.Legs
	audit.PathsFound = result.Stats.Paths
	audit.Validated = result.Stats.Validated
	audit.Truncated = result.Stats.Truncated
	if p.metrics != nil {
		p.metrics.CandidatePaths.Observe(float64(result.Stats.Paths))
		p.metrics.Validated.Observe(float64(result.Stats.Validated))
		if result.Stats.Truncated {
			p.metrics.PathsTruncated.Inc()
		}
	}

	options := p.formatter.Format(ctx, result.Winners)
	for _, category := range entity.Categories {
		audit.CategoryLegs[string(category)] = len(options.Get(category).Legs)
		audit.CategoryCandidates[string(category)] = result.Stats.Qualified[category]
	}

	outcome := entity.SearchFound
	if len(result.Candidates) == 0 {
		outcome = entity.SearchNoCandidates
	}
	p.finish(ctx, log, audit, outcome, nil, start)

	return &RoutePlan{SearchID: searchID, Options: options}, nil
}

// FindSearch returns the audit record of a past search
func (p *RoutePlanner) FindSearch(ctx context.Context, searchID string) (*entity.RouteSearch, error) {
	if p.searchRepo == nil {
		return nil, ErrAuditDisabled
	}
	return p.searchRepo.FindBySearchID(ctx, searchID)
}

// load reads the schedule snapshot and partnership scores concurrently.
// Only the schedule is required; missing scores fall back to the default.
func (p *RoutePlanner) load(ctx context.Context, log logger.Logger, req routing.Request) ([]entity.Leg, map[string]int, error) {
	from, to := req.Window(p.engine.Limits().LookaheadDays)

	var (
		snapshot []entity.Leg
		scores   map[string]int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return recovered(func() error {
			legs, err := p.scheduleRepo.ActiveLegs(gctx, from, to)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrScheduleUnavailable, err)
			}
			snapshot = legs
			return nil
		})
	})
	g.Go(func() error {
		if p.carrierRepo == nil {
			return nil
		}
		var s map[string]int
		err := recovered(func() (err error) {
			s, err = p.carrierRepo.Scores(gctx)
			return err
		})
		if err != nil {
			log.Error("Partnership scores unavailable, using defaults", "error", err)
			p.incError("load_partnerships")
			return nil
		}
		scores = s
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Error("Failed to load schedule snapshot", "from", from, "to", to, "error", err)
		return nil, nil, err
	}

	log.Info("Schedule snapshot loaded", "legs", len(snapshot), "from", from, "to", to, "byCarrier", legsByCarrier(snapshot))
	return snapshot, scores, nil
}

// finish records metrics and stores the audit record. Audit failures are only logged.
func (p *RoutePlanner) finish(ctx context.Context, log logger.Logger, audit *entity.RouteSearch, outcome string, err error, start time.Time) {
	elapsed := time.Since(start)
	audit.Outcome = outcome
	audit.ElapsedMillis = elapsed.Milliseconds()
	audit.CreatedAt = time.Now().UTC()
	if err != nil {
		audit.ErrorDetail = err.Error()
	}

	if p.metrics != nil {
		p.metrics.Searches.WithLabelValues(outcome).Inc()
		p.metrics.SearchDuration.Observe(elapsed.Seconds())
	}

	log.Info("Route search finished", "outcome", outcome, "elapsed", elapsed, "validated", audit.Validated)

	if p.searchRepo == nil {
		return
	}
	if err := p.searchRepo.Save(ctx, audit); err != nil {
		log.Error("Failed to save route search", "error", err)
		p.incError("save_route_search")
	}
}

// recovered runs fn on the current goroutine, turning a panic into ErrSearchFault.
func recovered(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrSearchFault, r)
		}
	}()
	return fn()
}

func (p *RoutePlanner) incError(operation string) {
	if p.metrics != nil {
		p.metrics.ErrorsCount.WithLabelValues(operation).Inc()
	}
}

// legsByCarrier summarizes the snapshot inventory as "CARRIER=count" entries
func legsByCarrier(legs []entity.Leg) []string {
	counts := make(map[string]int)
	for _, leg := range legs {
		counts[leg.Carrier]++
	}
	carriers := make([]string, 0, len(counts))
	for c := range counts {
		carriers = append(carriers, c)
	}
	sort.Strings(carriers)

	summary := make([]string, 0, len(carriers))
	for _, c := range carriers {
		summary = append(summary, fmt.Sprintf("%s=%d", c, counts[c]))
	}
	return summary
}
