package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barberhub/barbershop-api/internal/httperr"
)

// parseIDParam reads the :id route param; writes the error response
// itself so callers can just return.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return 0, false
	}
	return uint(id), true
}
