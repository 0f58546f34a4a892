package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultPage     = 1 // pages are 1-based
)

// CalculateOffsetLimit calculates the offset and limit for SQL queries based on a 1-based page index.
func CalculateOffsetLimit(page, limit int) (offset uint64, normalized int) {
	if limit <= 0 || limit > MaxPageSize {
		normalized = DefaultPageSize
	} else {
		normalized = limit
	}

	if page < 1 {
		page = DefaultPage
	}

	offset = uint64((page - 1) * normalized)
	return offset, normalized
}

// ParsePaginationParams extracts and validates page/limit query parameters from the request.
func ParsePaginationParams(c *gin.Context) (page, limit int) {
	pageStr := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limitStr := c.DefaultQuery("limit", "10")
	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit <= 0 || limit > MaxPageSize {
		limit = DefaultPageSize
	}

	return page, limit
}
