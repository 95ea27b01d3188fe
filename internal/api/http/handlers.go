// Package http exposes the tool-dispatch provider over HTTP.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/FileOps/backend/internal/provider"
	"github.com/GriffinCanCode/FileOps/backend/internal/shared/types"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	provider *provider.Provider
	version  string
}

// NewHandlers creates a new handler set
func NewHandlers(p *provider.Provider, version string) *Handlers {
	return &Handlers{provider: p, version: version}
}

// Root handles the liveness check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "FileOps Service (Go)",
		"version": h.version,
	})
}

// Health reports service health and the working base directory
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"base":   h.provider.Base(),
	})
}

// Definition returns the provider tool catalog
func (h *Handlers) Definition(c *gin.Context) {
	c.JSON(http.StatusOK, h.provider.Definition())
}

// Execute dispatches a single tool invocation
func (h *Handlers) Execute(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.provider.Execute(c.Request.Context(), req.ToolID, req.Params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
