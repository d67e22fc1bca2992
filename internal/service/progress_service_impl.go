package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rcastellanos/malla/internal/db"
	"github.com/rcastellanos/malla/internal/domain"
	"github.com/rcastellanos/malla/internal/repository"
)

type progressService struct {
	plans PlanService
	uow   db.UnitOfWork
}

// NewProgressService creates a ProgressService over the given plan service
// and journal database.
func NewProgressService(plans PlanService, uow db.UnitOfWork) ProgressService {
	return &progressService{plans: plans, uow: uow}
}

func (s *progressService) Available(ctx context.Context, plan string) ([]domain.Bundle, error) {
	g, err := s.plans.LoadGraph(ctx, plan)
	if err != nil {
		return nil, err
	}
	return g.AvailableBundles(), nil
}

func (s *progressService) StartCourses(ctx context.Context, plan string, codes []string) error {
	return s.apply(ctx, plan, codes, domain.StatusInProgress)
}

func (s *progressService) CompleteCourses(ctx context.Context, plan string, codes []string) error {
	return s.apply(ctx, plan, codes, domain.StatusCompleted)
}

func (s *progressService) ResetCourses(ctx context.Context, plan string, codes []string) error {
	return s.apply(ctx, plan, codes, domain.StatusNotStarted)
}

func (s *progressService) ResetAll(ctx context.Context, plan string) error {
	g, err := s.plans.LoadGraph(ctx, plan)
	if err != nil {
		return err
	}
	return s.applyToGraph(ctx, g, g.Codes(), domain.StatusNotStarted)
}

func (s *progressService) History(ctx context.Context, plan string) ([]*domain.ProgressEntry, error) {
	var entries []*domain.ProgressEntry
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		entries, err = repository.NewSQLiteProgressLogRepo(tx).ListByPlan(ctx, plan)
		return err
	})
	return entries, err
}

func (s *progressService) CourseHistory(ctx context.Context, plan, code string) ([]*domain.ProgressEntry, error) {
	var entries []*domain.ProgressEntry
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		entries, err = repository.NewSQLiteProgressLogRepo(tx).ListByCourse(ctx, plan, code)
		return err
	})
	return entries, err
}

// apply loads the plan, transitions the named courses to the target status
// and persists the result. Unknown codes and no-op transitions are skipped,
// matching the graph's own mutation semantics.
func (s *progressService) apply(ctx context.Context, plan string, codes []string, target domain.Status) error {
	g, err := s.plans.LoadGraph(ctx, plan)
	if err != nil {
		return err
	}
	return s.applyToGraph(ctx, g, codes, target)
}

func (s *progressService) applyToGraph(ctx context.Context, g *domain.Graph, codes []string, target domain.Status) error {
	now := time.Now().UTC()

	var entries []*domain.ProgressEntry
	for _, code := range codes {
		c, ok := g.Course(code)
		if !ok || c.Status == target {
			continue
		}
		entries = append(entries, &domain.ProgressEntry{
			ID:         uuid.New().String(),
			PlanName:   g.PlanName,
			CourseCode: code,
			FromStatus: c.Status,
			ToStatus:   target,
			LoggedAt:   now,
		})
		switch target {
		case domain.StatusInProgress:
			g.Start(code)
		case domain.StatusCompleted:
			g.Complete(code)
		default:
			g.Reset(code)
		}
	}
	if len(entries) == 0 {
		return nil
	}

	if err := s.plans.SaveGraph(ctx, g); err != nil {
		return err
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRepo := repository.NewSQLiteProgressLogRepo(tx)
		for _, e := range entries {
			if err := txRepo.Create(ctx, e); err != nil {
				return err
			}
		}
		return nil
	})
}
