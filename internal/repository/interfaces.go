package repository

import (
	"context"
	"errors"

	"github.com/rcastellanos/malla/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// ProgressLogRepo stores journaled status transitions.
type ProgressLogRepo interface {
	Create(ctx context.Context, e *domain.ProgressEntry) error
	GetByID(ctx context.Context, id string) (*domain.ProgressEntry, error)
	ListByPlan(ctx context.Context, planName string) ([]*domain.ProgressEntry, error)
	ListByCourse(ctx context.Context, planName, courseCode string) ([]*domain.ProgressEntry, error)
	DeleteByPlan(ctx context.Context, planName string) error
}
