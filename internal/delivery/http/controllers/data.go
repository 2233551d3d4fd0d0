package controllers

import (
	"ProjectTracker/internal/models"
	"ProjectTracker/pkg/logger"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DataService interface {
	Document(ctx context.Context) (*models.Document, error)
}

type DataHandler struct {
	DataService DataService
	log         logger.Log
}

func NewDataHandler(l logger.Log, dataService DataService) *DataHandler {
	return &DataHandler{
		DataService: dataService,
		log:         l,
	}
}

// Dump returns the whole persisted document.
func (h *DataHandler) Dump(c *gin.Context) {
	doc, err := h.DataService.Document(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}
