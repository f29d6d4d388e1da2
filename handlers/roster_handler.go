package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/ChetanKaturde/smart-college/attendance"
)

type RosterHandler struct {
	DB *gorm.DB
}

func NewRosterHandler(db *gorm.DB) *RosterHandler { return &RosterHandler{DB: db} }

// GET /teacher/attendance/students?course_id=
// An empty roster is a valid answer and renders as "no students".
func (h *RosterHandler) List(c echo.Context) error {
	courseID := uint(atoiOr(c.QueryParam("course_id"), 0))
	if courseID == 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS", "message": "course_id is required"})
	}
	roster, err := attendance.ResolveRoster(h.DB, courseID)
	if err != nil {
		return coreJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"data": roster})
}
