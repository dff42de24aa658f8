package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultLimit  = 10
	defaultOffset = 0
)

// listWindow reads the limit/offset query params shared by every
// listing endpoint.
func listWindow(c *gin.Context) (limit int, offset int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}

	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = defaultOffset
	}

	return limit, offset
}
