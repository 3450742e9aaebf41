package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cargo-route-service/internal/domain/entity"
	"cargo-route-service/internal/domain/repository"
	"cargo-route-service/internal/routing"
	"cargo-route-service/pkg/logger"
	"cargo-route-service/pkg/metrics"
)

type plannerFixture struct {
	schedule *fakeSchedule
	tariffs  *fakeTariffs
	carriers *fakeCarriers
	airports *fakeAirports
	searches *fakeSearches
	metrics  *metrics.Metrics
	planner  *RoutePlanner
}

func newPlannerFixture() *plannerFixture {
	f := &plannerFixture{
		schedule: &fakeSchedule{legs: []entity.Leg{
			{Carrier: "GOL", FlightNumber: "1500", Origin: "GRU", Destination: "MAO", Departure: at(0, 8, 0), Arrival: at(0, 9, 0)},
			{Carrier: "LATAM", FlightNumber: "3300", Origin: "GRU", Destination: "MAO", Departure: at(0, 8, 0), Arrival: at(0, 10, 0)},
		}},
		tariffs: &fakeTariffs{entries: []entity.TariffEntry{
			{Origin: "GRU", Destination: "MAO", Carrier: "GOL", Service: "GOL LOG", PricePerKg: price(5)},
			{Origin: "GRU", Destination: "MAO", Carrier: "LATAM", Service: "LATAM CARGO", PricePerKg: price(12)},
		}},
		carriers: &fakeCarriers{scores: map[string]int{"GOL": 20, "LATAM": 90}},
		airports: &fakeAirports{airports: map[string]entity.Airport{
			"GRU": {Code: "GRU", Name: "Guarulhos", Latitude: -23.43, Longitude: -46.47},
		}},
		searches: &fakeSearches{},
		metrics:  metrics.NewMetrics("test", prometheus.NewRegistry()),
	}

	log := logger.NewNopLogger()
	engine := routing.NewEngine(routing.DefaultSearchLimits(), routing.DefaultWeights(), log)
	formatter := NewRouteFormatter(f.airports, "R$", log)
	f.planner = NewRoutePlanner(f.schedule, f.tariffs, f.carriers, f.searches, engine, formatter, f.metrics,
		PlannerOptions{DefaultWeightKg: 100, Partnership: routing.DefaultPartnership()}, log)
	return f
}

func searchRequest() routing.Request {
	return routing.Request{
		EarliestAt:   at(0, 6, 0),
		LatestDate:   at(1, 0, 0),
		Origins:      []string{"gru"},
		Destinations: []string{"MAO"},
	}
}

func TestRoutePlanner_ComputeRouteOptions(t *testing.T) {
	f := newPlannerFixture()

	opts, err := f.planner.ComputeRouteOptions(context.Background(), searchRequest())
	require.NoError(t, err)

	require.Len(t, opts.Recommended.Legs, 1)
	rec := opts.Recommended.Legs[0]
	assert.Equal(t, "LATAM", rec.Carrier)
	assert.Equal(t, entity.CategoryRecommended, rec.Category)
	assert.Equal(t, "10/01/2025", rec.Date)
	assert.Equal(t, "08:00", rec.DepartureTime)
	assert.Equal(t, "10:00", rec.ArrivalTime)
	assert.Equal(t, "Guarulhos", rec.Origin.Name)
	assert.Equal(t, "MAO", rec.Destination.Name, "unknown airports fall back to the code")
	assert.Equal(t, entity.TariffExact, rec.Cost.Source)
	assert.Equal(t, 100.0, rec.Cost.WeightKg, "missing weight defaults to 100 kg")
	assert.Equal(t, "R$ 1,200.00", opts.Recommended.TotalCost)
	assert.Equal(t, "02:00", opts.Recommended.TotalDuration)

	assert.Equal(t, "GOL", opts.Fastest.Legs[0].Carrier)
	assert.Equal(t, "GOL", opts.Cheapest.Legs[0].Carrier)
	assert.Equal(t, 500.0, opts.Cheapest.CostValue)
	assert.NotNil(t, opts.Interline.Legs)
	assert.Empty(t, opts.Interline.Legs)
	assert.Empty(t, opts.SameCarrierConnection.Legs)

	assert.Equal(t, at(0, 0, 0), f.schedule.from)
	assert.Equal(t, at(6, 0, 0), f.schedule.to, "window covers the latest date plus five days")
}

func TestRoutePlanner_RecordsAuditAndMetrics(t *testing.T) {
	f := newPlannerFixture()

	plan, err := f.planner.Plan(context.Background(), searchRequest())
	require.NoError(t, err)
	require.NotEmpty(t, plan.SearchID)

	require.Len(t, f.searches.saved, 1)
	audit := f.searches.saved[0]
	assert.Equal(t, plan.SearchID, audit.SearchID)
	assert.Equal(t, entity.SearchFound, audit.Outcome)
	assert.Equal(t, []string{"GRU"}, audit.Origins)
	assert.Equal(t, 2, audit.LegsLoaded)
	assert.Equal(t, 2, audit.Validated)
	assert.Equal(t, 1, audit.CategoryLegs[string(entity.CategoryDirect)])
	assert.Equal(t, 0, audit.CategoryLegs[string(entity.CategoryInterline)])
	assert.Equal(t, 2, audit.CategoryCandidates[string(entity.CategoryDirect)])
	assert.Equal(t, 0, audit.CategoryCandidates[string(entity.CategoryInterline)])

	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Searches.WithLabelValues(entity.SearchFound)))

	found, err := f.planner.FindSearch(context.Background(), plan.SearchID)
	require.NoError(t, err)
	assert.Equal(t, audit, found)

	_, err = f.planner.FindSearch(context.Background(), "unknown")
	assert.ErrorIs(t, err, repository.ErrRouteSearchNotFound)
}

func TestRoutePlanner_AbsentOriginReturnsEmptyCategories(t *testing.T) {
	f := newPlannerFixture()
	req := searchRequest()
	req.Origins = []string{"CNF"}

	opts, err := f.planner.ComputeRouteOptions(context.Background(), req)
	require.NoError(t, err)
	for _, c := range entity.Categories {
		assert.NotNil(t, opts.Get(c).Legs, c)
		assert.Empty(t, opts.Get(c).Legs, c)
	}
	assert.Equal(t, entity.SearchNoCandidates, f.searches.saved[0].Outcome)
}

func TestRoutePlanner_InvalidRequest(t *testing.T) {
	f := newPlannerFixture()
	req := searchRequest()
	req.Destinations = nil

	_, err := f.planner.ComputeRouteOptions(context.Background(), req)
	assert.ErrorIs(t, err, routing.ErrInvalidRequest)
	assert.Equal(t, entity.SearchInvalid, f.searches.saved[0].Outcome)
}

func TestRoutePlanner_ScheduleFailureIsSurfaced(t *testing.T) {
	f := newPlannerFixture()
	f.schedule.err = errUnavailable

	_, err := f.planner.ComputeRouteOptions(context.Background(), searchRequest())
	assert.ErrorIs(t, err, ErrScheduleUnavailable)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, entity.SearchFailed, f.searches.saved[0].Outcome)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.ErrorsCount.WithLabelValues("load_schedule")))
}

func TestRoutePlanner_PartnershipFailureDegradesToDefault(t *testing.T) {
	f := newPlannerFixture()
	f.carriers.err = errUnavailable

	opts, err := f.planner.ComputeRouteOptions(context.Background(), searchRequest())
	require.NoError(t, err)

	// with neutral partnership the faster, cheaper GOL flight wins
	assert.Equal(t, "GOL", opts.Recommended.Legs[0].Carrier)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.ErrorsCount.WithLabelValues("load_partnerships")))
}

func TestRoutePlanner_AuditFailureDoesNotFailSearch(t *testing.T) {
	f := newPlannerFixture()
	f.searches.err = errUnavailable

	opts, err := f.planner.ComputeRouteOptions(context.Background(), searchRequest())
	require.NoError(t, err)
	assert.False(t, opts.Recommended.Empty())
}

func TestRoutePlanner_WithoutOptionalCollaborators(t *testing.T) {
	log := logger.NewNopLogger()
	engine := routing.NewEngine(routing.DefaultSearchLimits(), routing.DefaultWeights(), log)
	f := newPlannerFixture()
	planner := NewRoutePlanner(f.schedule, f.tariffs, nil, nil, engine, NewRouteFormatter(nil, "R$", log), nil,
		PlannerOptions{DefaultWeightKg: 100, Partnership: routing.DefaultPartnership()}, log)

	opts, err := planner.ComputeRouteOptions(context.Background(), searchRequest())
	require.NoError(t, err)
	assert.Equal(t, "GRU", opts.Fastest.Legs[0].Origin.Name)

	_, err = planner.FindSearch(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrAuditDisabled)
}

func TestLegsByCarrier(t *testing.T) {
	legs := []entity.Leg{{Carrier: "LA"}, {Carrier: "G3"}, {Carrier: "LA"}}
	assert.Equal(t, []string{"G3=1", "LA=2"}, legsByCarrier(legs))
}

type panickingTariffs struct{}

func (panickingTariffs) FindByRoute(context.Context, string, string) ([]entity.TariffEntry, error) {
	panic("nil tariff table")
}

type panickingSchedule struct{ fakeSchedule }

func (*panickingSchedule) ActiveLegs(context.Context, time.Time, time.Time) ([]entity.Leg, error) {
	panic("schedule driver crashed")
}

type panickingCarriers struct{ fakeCarriers }

func (*panickingCarriers) Scores(context.Context) (map[string]int, error) {
	panic("carrier table missing")
}

func TestRoutePlanner_TariffPanicIsRecovered(t *testing.T) {
	f := newPlannerFixture()
	log := logger.NewNopLogger()
	engine := routing.NewEngine(routing.DefaultSearchLimits(), routing.DefaultWeights(), log)
	planner := NewRoutePlanner(f.schedule, panickingTariffs{}, f.carriers, f.searches, engine,
		NewRouteFormatter(f.airports, "R$", log), f.metrics,
		PlannerOptions{DefaultWeightKg: 100, Partnership: routing.DefaultPartnership()}, log)

	var (
		plan *RoutePlan
		err  error
	)
	require.NotPanics(t, func() { plan, err = planner.Plan(context.Background(), searchRequest()) })
	assert.Nil(t, plan)
	assert.ErrorIs(t, err, ErrSearchFault)
	assert.Contains(t, err.Error(), "nil tariff table")

	require.Len(t, f.searches.saved, 1)
	assert.Equal(t, entity.SearchFailed, f.searches.saved[0].Outcome)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.ErrorsCount.WithLabelValues("search_fault")))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Searches.WithLabelValues(entity.SearchFailed)))
}

func TestRoutePlanner_SchedulePanicIsRecovered(t *testing.T) {
	f := newPlannerFixture()
	log := logger.NewNopLogger()
	engine := routing.NewEngine(routing.DefaultSearchLimits(), routing.DefaultWeights(), log)
	planner := NewRoutePlanner(&panickingSchedule{}, f.tariffs, f.carriers, f.searches, engine,
		NewRouteFormatter(f.airports, "R$", log), f.metrics,
		PlannerOptions{DefaultWeightKg: 100, Partnership: routing.DefaultPartnership()}, log)

	_, err := planner.ComputeRouteOptions(context.Background(), searchRequest())
	assert.ErrorIs(t, err, ErrSearchFault)
	assert.Equal(t, entity.SearchFailed, f.searches.saved[0].Outcome)
}

func TestRoutePlanner_PartnershipPanicDegradesToDefault(t *testing.T) {
	f := newPlannerFixture()
	log := logger.NewNopLogger()
	engine := routing.NewEngine(routing.DefaultSearchLimits(), routing.DefaultWeights(), log)
	planner := NewRoutePlanner(f.schedule, f.tariffs, &panickingCarriers{}, f.searches, engine,
		NewRouteFormatter(f.airports, "R$", log), f.metrics,
		PlannerOptions{DefaultWeightKg: 100, Partnership: routing.DefaultPartnership()}, log)

	opts, err := planner.ComputeRouteOptions(context.Background(), searchRequest())
	require.NoError(t, err)
	assert.Equal(t, "GOL", opts.Recommended.Legs[0].Carrier)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.ErrorsCount.WithLabelValues("load_partnerships")))
}
