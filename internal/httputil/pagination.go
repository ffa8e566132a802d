package httputil

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Pagination defaults for the post listing endpoint.
const (
	DefaultPageNumber = 0
	DefaultPageSize   = 10
	MaxPageSize       = 100
)

// ParsePageParams safely parses and validates pageNumber and pageSize query
// parameters. Page numbers are zero-based. The page size cannot exceed MaxPageSize.
func ParsePageParams(c *gin.Context) (pageNumber, pageSize int, err error) {
	pageNumberStr := c.DefaultQuery("pageNumber", strconv.Itoa(DefaultPageNumber))
	pageNumber, err = strconv.Atoi(pageNumberStr)
	if err != nil || pageNumber < 0 {
		return 0, 0, fmt.Errorf("invalid pageNumber parameter: must be a non-negative integer")
	}

	pageSizeStr := c.DefaultQuery("pageSize", strconv.Itoa(DefaultPageSize))
	pageSize, err = strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > MaxPageSize {
		return 0, 0, fmt.Errorf("invalid pageSize parameter: must be between 1 and %d", MaxPageSize)
	}

	return pageNumber, pageSize, nil
}
