package tracker

import (
	"ProjectTracker/internal/models"
	"ProjectTracker/pkg/logger"
	"context"
	"sync"
)

const (
	KindProgramme = "programme"
	KindModule    = "module"
	KindTask      = "task"
)

type documentRepo interface {
	Load(ctx context.Context) (*models.Document, error)
	Save(ctx context.Context, doc *models.Document) error
}

type snapshotMirror interface {
	Mirror(ctx context.Context, doc *models.Document) error
}

type creationRecorder interface {
	EntityCreated(kind string)
}

// TrackerService is the only way into the document. Every load-mutate-save
// cycle runs under mu, so concurrent requests cannot drop each other's writes.
type TrackerService struct {
	log      logger.Log
	repo     documentRepo
	mirror   snapshotMirror
	recorder creationRecorder

	mu sync.RWMutex
}

// NewTrackerService wires the service. mirror and recorder may be nil.
func NewTrackerService(log logger.Log, repo documentRepo, mirror snapshotMirror, recorder creationRecorder) *TrackerService {
	return &TrackerService{
		log:      log,
		repo:     repo,
		mirror:   mirror,
		recorder: recorder,
	}
}

// Document returns the whole persisted document.
func (s *TrackerService) Document(ctx context.Context) (*models.Document, error) {
	var out *models.Document
	err := s.read(ctx, func(doc *models.Document) error {
		out = doc
		return nil
	})
	return out, err
}

func (s *TrackerService) read(ctx context.Context, fn func(doc *models.Document) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	return fn(doc)
}

// mutate loads the document, applies fn and saves the result. Nothing is
// written when fn fails.
func (s *TrackerService) mutate(ctx context.Context, fn func(doc *models.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	if err := s.repo.Save(ctx, doc); err != nil {
		return err
	}

	if s.mirror != nil {
		if err := s.mirror.Mirror(ctx, doc); err != nil {
			s.log.ErrorErr("failed to mirror snapshot", err)
		}
	}
	return nil
}

func (s *TrackerService) created(kind string) {
	if s.recorder != nil {
		s.recorder.EntityCreated(kind)
	}
}
