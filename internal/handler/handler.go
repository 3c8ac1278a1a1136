package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/mediblues/directory-api/pkg/errors"
)

// ParseIDParam reads the :id route parameter as a positive integer.
func ParseIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidation("invalid id parameter", err)
	}
	return id, nil
}
