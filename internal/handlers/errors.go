package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-scheduler/internal/httperr"
)

// Fixed mapping from business error kinds to HTTP status codes.
var businessStatus = map[string]int{
	"client_not_found":   http.StatusNotFound,
	"service_not_found":  http.StatusNotFound,
	"schedule_not_found": http.StatusNotFound,
	"invalid_date_range": http.StatusBadRequest,
	"invalid_shift":      http.StatusBadRequest,
}

func writeBusinessError(c *gin.Context, err error) bool {
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		return false
	}

	status, ok := businessStatus[be.Code]
	if !ok {
		status = http.StatusBadRequest
	}

	httperr.Write(c, status, be.Code, be.Message)
	return true
}
