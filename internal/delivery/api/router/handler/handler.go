// Package handler contains the echo handlers of the REST API.
package handler

import (
	"net/http"
	"strconv"

	"github.com/calvin-79/food-delivery-tracking/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// pathID parses the ":id" path parameter.
func pathID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)

	return id, err == nil
}

func invalidID(c echo.Context) error {
	return response.BadRequest(c, "INVALID_ID", "Path parameter id must be an unsigned integer")
}

func missingCaller(c echo.Context) error {
	return response.Unauthorized(c, "CONTEXT_ERROR", "Caller identity not found in context")
}

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
