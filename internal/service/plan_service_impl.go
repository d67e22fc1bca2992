package service

import (
	"context"

	"github.com/rcastellanos/malla/internal/domain"
	"github.com/rcastellanos/malla/internal/planfile"
)

type planService struct {
	store *planfile.Store
}

// NewPlanService creates a PlanService over the given plan store.
func NewPlanService(store *planfile.Store) PlanService {
	return &planService{store: store}
}

func (s *planService) List(ctx context.Context) ([]PlanInfo, error) {
	names, err := s.store.List()
	if err != nil {
		return nil, err
	}
	infos := make([]PlanInfo, 0, len(names))
	for _, name := range names {
		records, err := s.store.Load(name)
		if err != nil {
			return nil, err
		}
		info := PlanInfo{Name: name, Courses: len(records)}
		for _, rec := range records {
			info.Credits += rec.Creditos
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func (s *planService) LoadGraph(ctx context.Context, name string) (*domain.Graph, error) {
	return s.store.LoadGraph(name)
}

func (s *planService) SaveGraph(ctx context.Context, g *domain.Graph) error {
	return s.store.SaveGraph(g)
}
