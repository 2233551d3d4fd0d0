package controllers

import (
	"ProjectTracker/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

type StatusHandler struct {
	DataService DataService
	log         logger.Log
}

func NewStatusHandler(l logger.Log, dataService DataService) *StatusHandler {
	return &StatusHandler{DataService: dataService, log: l}
}

// Status reports Available only while the document can still be loaded.
func (h *StatusHandler) Status(c *gin.Context) {
	if _, err := h.DataService.Document(c.Request.Context()); err != nil {
		h.log.ErrorErr("status check: storage unavailable", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "Unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "Available"})
}
