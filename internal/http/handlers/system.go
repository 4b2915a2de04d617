package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SystemHandler serves the public landing and health endpoints.
type SystemHandler struct {
	DB *sql.DB
}

// GET /
func (h SystemHandler) Dummy(c *gin.Context) {
	c.String(http.StatusOK, "This is a dummy endpoint")
}

// GET /home
func (h SystemHandler) Home(c *gin.Context) {
	c.String(http.StatusOK, "This is a home endpoint")
}

// GET /farewell
func (h SystemHandler) Farewell(c *gin.Context) {
	c.String(http.StatusOK, "See you next time!")
}

// GET /healthz
func (h SystemHandler) Healthz(c *gin.Context) {
	if h.DB != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.DB.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
