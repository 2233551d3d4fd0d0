package tracker

import (
	"ProjectTracker/internal/app_errors"
	"ProjectTracker/internal/models"
	"context"
)

type TaskInput struct {
	Name  string
	Start string
	End   string
}

func (in TaskInput) complete() bool {
	return in.Name != "" && in.Start != "" && in.End != ""
}

func (s *TrackerService) CreateTask(ctx context.Context, moduleID int, in TaskInput) (*models.Task, error) {
	var created models.Task
	err := s.mutate(ctx, func(doc *models.Document) error {
		_, m := doc.ModuleByID(moduleID)
		if m == nil {
			return app_errors.ErrModuleNotFound
		}
		if !in.complete() {
			return app_errors.ErrTaskFieldsRequired
		}
		created = models.Task{
			ID:    m.NextTaskID(),
			Name:  in.Name,
			Start: in.Start,
			End:   in.End,
		}
		m.Tasks = append(m.Tasks, created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.created(KindTask)
	s.log.Debug("task created", "module_id", moduleID, "task_id", created.ID)
	return &created, nil
}
