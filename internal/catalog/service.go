package catalog

import (
	"context"
	"sync"

	"verifind.org/internal/filter"
)

// Service lists the records behind the cases, tips and alerts views.
type Service interface {
	Cases(ctx context.Context, c filter.Criteria) (filter.Result[Case], error)
	Tips(ctx context.Context, c filter.Criteria) (filter.Result[Tip], error)
	Alerts(ctx context.Context, c filter.Criteria) (filter.Result[Alert], error)
	TipTargets(ctx context.Context) ([]TipTarget, error)
}

// InMemory serves a fixed record set. Callers always receive copies.
type InMemory struct {
	mu      sync.RWMutex
	cases   []Case
	tips    []Tip
	alerts  []Alert
	targets []TipTarget
}

// NewInMemory returns a catalog seeded with the demo records.
func NewInMemory() *InMemory {
	return NewInMemoryWith(seedCases(), seedTips(), seedAlerts(), seedTargets())
}

// NewInMemoryWith returns a catalog over the given records.
func NewInMemoryWith(cases []Case, tips []Tip, alerts []Alert, targets []TipTarget) *InMemory {
	return &InMemory{
		cases:   append([]Case(nil), cases...),
		tips:    append([]Tip(nil), tips...),
		alerts:  append([]Alert(nil), alerts...),
		targets: append([]TipTarget(nil), targets...),
	}
}

func (s *InMemory) Cases(ctx context.Context, c filter.Criteria) (filter.Result[Case], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter.NewResult(s.cases, CaseSchema, c, EmptyCases), nil
}

func (s *InMemory) Tips(ctx context.Context, c filter.Criteria) (filter.Result[Tip], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter.NewResult(s.tips, TipSchema, c, EmptyTips), nil
}

func (s *InMemory) Alerts(ctx context.Context, c filter.Criteria) (filter.Result[Alert], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter.NewResult(s.alerts, AlertSchema, c, EmptyAlerts), nil
}

func (s *InMemory) TipTargets(ctx context.Context) ([]TipTarget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]TipTarget(nil), s.targets...), nil
}

// ActiveAlerts returns the alerts still open, used for live re-broadcasts.
func ActiveAlerts(ctx context.Context, svc Service) ([]Alert, error) {
	res, err := svc.Alerts(ctx, filter.Criteria{Enums: map[string]string{"status": AlertActive}})
	if err != nil {
		return nil, err
	}
	return res.Items, nil
}
