package controllers

import (
	"ProjectTracker/internal/app_errors"
	"ProjectTracker/pkg/logger"
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// respondError maps err onto the status taxonomy and writes {"error": msg}.
func respondError(c *gin.Context, log logger.Log, err error) {
	switch {
	case app_errors.IsValidation(err), errors.Is(err, app_errors.ErrInvalidJSON):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case app_errors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.ErrorErr("request failed", err, "path", c.Request.URL.Path)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": app_errors.ErrInternal.Error()})
	}
}

// bindJSON decodes the whole body into dst. A value of the wrong type for a
// field is reported as fieldErr. Anything else that is not exactly one JSON
// value, including trailing data and a bare null, is Invalid JSON.
func bindJSON(c *gin.Context, dst any, fieldErr error) error {
	raw, err := c.GetRawData()
	if err != nil {
		return app_errors.ErrInvalidJSON
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return app_errors.ErrInvalidJSON
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return fieldErr
		}
		return app_errors.ErrInvalidJSON
	}
	return nil
}

// pathID reads an integer path param. Anything else is treated as an
// unknown route.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": app_errors.ErrNotFound.Error()})
		return 0, false
	}
	return id, true
}

func NotFoundAPI(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": app_errors.ErrNotFound.Error()})
}
