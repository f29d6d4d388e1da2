package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ChetanKaturde/smart-college/attendance"
)

// string -> int with a fallback when missing or malformed
func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func pageSize(c echo.Context) (page, size int) {
	page, size = 1, 20
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(c.QueryParam("size")); err == nil {
		if v < 1 {
			size = 1
		} else if v > 100 {
			size = 100
		} else {
			size = v
		}
	}
	return page, size
}

func kindStatus(k attendance.Kind) int {
	switch k {
	case attendance.KindValidation:
		return http.StatusBadRequest
	case attendance.KindPermission:
		return http.StatusForbidden
	case attendance.KindTemporal:
		return http.StatusUnprocessableEntity
	case attendance.KindConflict:
		return http.StatusConflict
	case attendance.KindNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// coreJSON turns an attendance core error into its JSON envelope. Anything
// that is not a core error is a genuine 500 and stays one; 409 and 500 are
// never conflated.
func coreJSON(c echo.Context, err error) error {
	if e, ok := attendance.AsError(err); ok {
		return c.JSON(kindStatus(e.Kind), map[string]any{"error": e.Code, "message": e.Message})
	}
	return c.JSON(http.StatusInternalServerError, map[string]any{"error": "INTERNAL", "message": err.Error()})
}

// teacherID pulls the caller's teacher identity attached by the auth
// middleware. Admins without a teacher link get 0.
func teacherID(c echo.Context) uint {
	id, _ := c.Get("teacher_id").(uint)
	return id
}
