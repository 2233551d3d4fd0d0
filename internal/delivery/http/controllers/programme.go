package controllers

import (
	"ProjectTracker/internal/app_errors"
	"ProjectTracker/internal/models"
	"ProjectTracker/pkg/logger"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ProgrammeService interface {
	Programmes(ctx context.Context) ([]models.Programme, error)
	Programme(ctx context.Context, id int) (*models.Programme, error)
	CreateProgramme(ctx context.Context, name string) (*models.Programme, error)
	CreateModule(ctx context.Context, programmeID int, name string) (*models.Module, error)
}

type ProgrammeHandler struct {
	ProgrammeService ProgrammeService
	log              logger.Log
}

func NewProgrammeHandler(l logger.Log, programmeService ProgrammeService) *ProgrammeHandler {
	return &ProgrammeHandler{
		ProgrammeService: programmeService,
		log:              l,
	}
}

func (h *ProgrammeHandler) ListProgrammes(c *gin.Context) {
	programmes, err := h.ProgrammeService.Programmes(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, programmes)
}

type createProgrammeRequest struct {
	Name string `json:"name"`
}

func (h *ProgrammeHandler) CreateProgramme(c *gin.Context) {
	var req createProgrammeRequest
	if err := bindJSON(c, &req, app_errors.ErrNameRequired); err != nil {
		respondError(c, h.log, err)
		return
	}

	programme, err := h.ProgrammeService.CreateProgramme(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, programme)
}

func (h *ProgrammeHandler) ProgrammeByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	programme, err := h.ProgrammeService.Programme(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, programme)
}

type createModuleRequest struct {
	Name string `json:"name"`
}

func (h *ProgrammeHandler) CreateModule(c *gin.Context) {
	programmeID, ok := pathID(c, "id")
	if !ok {
		return
	}
	// an unknown programme wins over a bad body
	if _, err := h.ProgrammeService.Programme(c.Request.Context(), programmeID); err != nil {
		respondError(c, h.log, err)
		return
	}

	var req createModuleRequest
	if err := bindJSON(c, &req, app_errors.ErrModuleNameRequired); err != nil {
		respondError(c, h.log, err)
		return
	}

	module, err := h.ProgrammeService.CreateModule(c.Request.Context(), programmeID, req.Name)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, module)
}
