package tracker

import (
	"ProjectTracker/internal/app_errors"
	"ProjectTracker/internal/models"
	"context"
)

// Module finds a module by id alone, scanning programmes in order; the first
// match wins since module ids are only unique within a programme.
func (s *TrackerService) Module(ctx context.Context, id int) (*models.ModuleDetail, error) {
	var out *models.ModuleDetail
	err := s.read(ctx, func(doc *models.Document) error {
		p, m := doc.ModuleByID(id)
		if m == nil {
			return app_errors.ErrModuleNotFound
		}
		out = &models.ModuleDetail{Module: *m, ProgrammeID: p.ID}
		return nil
	})
	return out, err
}

func (s *TrackerService) CreateModule(ctx context.Context, programmeID int, name string) (*models.Module, error) {
	var created models.Module
	err := s.mutate(ctx, func(doc *models.Document) error {
		p := doc.ProgrammeByID(programmeID)
		if p == nil {
			return app_errors.ErrProgrammeNotFound
		}
		if name == "" {
			return app_errors.ErrModuleNameRequired
		}
		created = models.Module{
			ID:    p.NextModuleID(),
			Name:  name,
			Tasks: []models.Task{},
		}
		p.Modules = append(p.Modules, created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.created(KindModule)
	s.log.Debug("module created", "programme_id", programmeID, "module_id", created.ID)
	return &created, nil
}
