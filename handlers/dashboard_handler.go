package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type DashboardHandler struct {
	DB *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler { return &DashboardHandler{DB: db} }

// GET /teacher/dashboard/daily?date=YYYY-MM-DD&mine=1
// One row per session of the day with its present/absent counts. This is the
// server-authoritative view the marking screen polls; clients keep no
// session cache of their own.
func (h *DashboardHandler) Daily(c echo.Context) error {
	date := strings.TrimSpace(c.QueryParam("date"))
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	type row struct {
		SessionID     uint   `json:"session_id"`
		SlotID        uint   `json:"slot_id"`
		LectureNumber int    `json:"lecture_number"`
		TeacherID     uint   `json:"teacher_id"`
		Status        string `json:"status"`
		Marked        bool   `json:"marked"`
		Present       int    `json:"present"`
		Absent        int    `json:"absent"`
	}

	tx := h.DB.Table("attendance_sessions AS s").
		Select(`s.id AS session_id, s.slot_id, s.lecture_number, s.teacher_id, s.status,
			s.marked_at IS NOT NULL AS marked,
			COUNT(r.id) FILTER (WHERE r.status = 'PRESENT') AS present,
			COUNT(r.id) FILTER (WHERE r.status = 'ABSENT') AS absent`).
		Joins("LEFT JOIN attendance_records r ON r.session_id = s.id").
		Where("s.lecture_date = ?", date).
		Group("s.id, s.slot_id, s.lecture_number, s.teacher_id, s.status, s.marked_at")

	if c.QueryParam("mine") == "1" {
		tx = tx.Where("s.teacher_id = ?", teacherID(c))
	}

	var rows []row
	if err := tx.Order("s.lecture_number ASC, s.id ASC").Scan(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED", "message": err.Error()})
	}
	if rows == nil {
		rows = []row{}
	}
	return c.JSON(http.StatusOK, map[string]any{"data": rows, "date": date})
}
