package service

import (
	"context"

	"github.com/rcastellanos/malla/internal/domain"
)

// PlanInfo is the summary row shown by plan listings.
type PlanInfo struct {
	Name    string
	Courses int
	Credits int
}

// PlanService lists, loads and saves degree plans.
type PlanService interface {
	List(ctx context.Context) ([]PlanInfo, error)
	LoadGraph(ctx context.Context, name string) (*domain.Graph, error)
	SaveGraph(ctx context.Context, g *domain.Graph) error
}

// ProgressService applies status transitions to a plan and keeps the
// progress journal. Mutations persist the updated plan file first; the
// journal write happens afterwards in its own transaction.
type ProgressService interface {
	Available(ctx context.Context, plan string) ([]domain.Bundle, error)
	StartCourses(ctx context.Context, plan string, codes []string) error
	CompleteCourses(ctx context.Context, plan string, codes []string) error
	ResetCourses(ctx context.Context, plan string, codes []string) error
	ResetAll(ctx context.Context, plan string) error
	History(ctx context.Context, plan string) ([]*domain.ProgressEntry, error)
	CourseHistory(ctx context.Context, plan, code string) ([]*domain.ProgressEntry, error)
}
