package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"cargo-route-service/internal/domain/entity"
	"cargo-route-service/internal/domain/repository"
)

var errUnavailable = errors.New("connection refused")

var day = time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)

func at(offset, hh, mm int) time.Time {
	return day.AddDate(0, 0, offset).Add(time.Duration(hh)*time.Hour + time.Duration(mm)*time.Minute)
}

func price(v float64) *float64 {
	return &v
}

type fakeSchedule struct {
	legs     []entity.Leg
	err      error
	from, to time.Time
}

func (f *fakeSchedule) ActiveLegs(_ context.Context, from, to time.Time) ([]entity.Leg, error) {
	f.from, f.to = from, to
	if f.err != nil {
		return nil, f.err
	}
	return f.legs, nil
}

func (f *fakeSchedule) ActiveRevisions(context.Context) ([]*entity.ScheduleRevision, error) {
	return nil, nil
}

type fakeTariffs struct {
	entries []entity.TariffEntry
}

func (f *fakeTariffs) FindByRoute(_ context.Context, origin, destination string) ([]entity.TariffEntry, error) {
	var out []entity.TariffEntry
	for _, e := range f.entries {
		if e.Origin == origin && e.Destination == destination {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeCarriers struct {
	mu     sync.Mutex
	scores map[string]int
	err    error
}

func (f *fakeCarriers) Scores(context.Context) (map[string]int, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.scores, nil
}

func (f *fakeCarriers) List(context.Context) ([]*entity.CarrierPartnership, error) {
	var out []*entity.CarrierPartnership
	for c, s := range f.scores {
		out = append(out, &entity.CarrierPartnership{Carrier: c, Score: s, Active: true})
	}
	return out, nil
}

func (f *fakeCarriers) Upsert(_ context.Context, carrier string, score int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if f.scores == nil {
		f.scores = map[string]int{}
	}
	f.scores[carrier] = score
	return nil
}

type fakeAirports struct {
	airports map[string]entity.Airport
	err      error
}

func (f *fakeAirports) GetByCodes(_ context.Context, codes []string) (map[string]entity.Airport, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := map[string]entity.Airport{}
	for _, c := range codes {
		if a, ok := f.airports[c]; ok {
			out[c] = a
		}
	}
	return out, nil
}

type fakeSearches struct {
	saved []*entity.RouteSearch
	err   error
}

func (f *fakeSearches) Save(_ context.Context, s *entity.RouteSearch) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, s)
	return nil
}

func (f *fakeSearches) FindBySearchID(_ context.Context, id string) (*entity.RouteSearch, error) {
	for _, s := range f.saved {
		if s.SearchID == id {
			return s, nil
		}
	}
	return nil, repository.ErrRouteSearchNotFound
}
