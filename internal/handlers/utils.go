package handlers

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// parseIntParam parses an integer path parameter. The second return
// value is false when the parameter is absent or not a number.
func parseIntParam(c echo.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, false
	}
	return value, true
}

// parseInt64Param parses an int64 path parameter
func parseInt64Param(c echo.Context, name string) (int64, bool) {
	value, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
