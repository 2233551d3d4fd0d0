package controllers

import (
	"ProjectTracker/internal/app_errors"
	"ProjectTracker/internal/models"
	"ProjectTracker/internal/service/tracker"
	"ProjectTracker/pkg/logger"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ModuleService interface {
	Module(ctx context.Context, id int) (*models.ModuleDetail, error)
	CreateTask(ctx context.Context, moduleID int, in tracker.TaskInput) (*models.Task, error)
}

type ModuleHandler struct {
	ModuleService ModuleService
	log           logger.Log
}

func NewModuleHandler(l logger.Log, moduleService ModuleService) *ModuleHandler {
	return &ModuleHandler{
		ModuleService: moduleService,
		log:           l,
	}
}

func (h *ModuleHandler) ModuleByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	module, err := h.ModuleService.Module(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, module)
}

type createTaskRequest struct {
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
}

func (h *ModuleHandler) CreateTask(c *gin.Context) {
	moduleID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if _, err := h.ModuleService.Module(c.Request.Context(), moduleID); err != nil {
		respondError(c, h.log, err)
		return
	}

	var req createTaskRequest
	if err := bindJSON(c, &req, app_errors.ErrTaskFieldsRequired); err != nil {
		respondError(c, h.log, err)
		return
	}

	task, err := h.ModuleService.CreateTask(c.Request.Context(), moduleID, tracker.TaskInput{
		Name:  req.Name,
		Start: req.Start,
		End:   req.End,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}
