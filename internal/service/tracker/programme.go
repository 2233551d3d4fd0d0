package tracker

import (
	"ProjectTracker/internal/app_errors"
	"ProjectTracker/internal/models"
	"context"
)

func (s *TrackerService) Programmes(ctx context.Context) ([]models.Programme, error) {
	var out []models.Programme
	err := s.read(ctx, func(doc *models.Document) error {
		out = doc.Programmes
		return nil
	})
	return out, err
}

func (s *TrackerService) Programme(ctx context.Context, id int) (*models.Programme, error) {
	var out *models.Programme
	err := s.read(ctx, func(doc *models.Document) error {
		p := doc.ProgrammeByID(id)
		if p == nil {
			return app_errors.ErrProgrammeNotFound
		}
		out = p
		return nil
	})
	return out, err
}

func (s *TrackerService) CreateProgramme(ctx context.Context, name string) (*models.Programme, error) {
	if name == "" {
		return nil, app_errors.ErrNameRequired
	}

	var created models.Programme
	err := s.mutate(ctx, func(doc *models.Document) error {
		created = models.Programme{
			ID:      doc.NextProgrammeID(),
			Name:    name,
			Modules: []models.Module{},
		}
		doc.Programmes = append(doc.Programmes, created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.created(KindProgramme)
	s.log.Debug("programme created", "programme_id", created.ID)
	return &created, nil
}
