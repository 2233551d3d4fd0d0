package service

import (
	"ProjectTracker/internal/service/tracker"
)

type Collection struct {
	*tracker.TrackerService
}
