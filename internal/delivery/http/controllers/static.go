package controllers

import (
	"ProjectTracker/pkg/logger"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

const defaultMimeType = "application/octet-stream"

var mimeTypes = map[string]string{
	".html": "text/html",
	".js":   "application/javascript",
	".css":  "text/css",
	".json": "application/json",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".svg":  "image/svg+xml",
}

type StaticHandler struct {
	dir string
	log logger.Log
}

func NewStaticHandler(l logger.Log, dir string) *StaticHandler {
	return &StaticHandler{dir: dir, log: l}
}

func (h *StaticHandler) Serve(c *gin.Context) {
	name := c.Request.URL.Path
	if name == "/" {
		name = "/index.html"
	}
	fullPath := filepath.Join(h.dir, filepath.FromSlash(path.Clean("/"+name)))

	info, err := os.Stat(fullPath)
	if err != nil || !info.Mode().IsRegular() {
		c.String(http.StatusNotFound, "Not Found")
		return
	}

	content, err := os.ReadFile(fullPath)
	if err != nil {
		h.log.ErrorErr("failed to read static file", err, "path", fullPath)
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	c.Data(http.StatusOK, mimeType(fullPath), content)
}

func mimeType(name string) string {
	if t, ok := mimeTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return t
	}
	return defaultMimeType
}
