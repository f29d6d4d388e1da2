package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/ChetanKaturde/smart-college/attendance"
)

// AttendanceSessionHandler exposes the session workflow: open a session for
// a slot, save the marked batch once, edit saved marks, close.
type AttendanceSessionHandler struct {
	Registry *attendance.Registry
	Recorder *attendance.Recorder
}

func NewAttendanceSessionHandler(db *gorm.DB) *AttendanceSessionHandler {
	return &AttendanceSessionHandler{
		Registry: attendance.NewRegistry(db),
		Recorder: attendance.NewRecorder(db),
	}
}

type createSessionReq struct {
	SlotID        uint   `json:"slot_id" validate:"required"`
	LectureDate   string `json:"lecture_date" validate:"required,len=10"`
	LectureNumber int    `json:"lecture_number" validate:"required,min=1"`
}

// POST /teacher/attendance/sessions
func (h *AttendanceSessionHandler) Create(c echo.Context) error {
	var req createSessionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	s, err := h.Registry.CreateSession(req.SlotID, req.LectureDate, req.LectureNumber, teacherID(c))
	if err != nil {
		return coreJSON(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"data": s})
}

// GET /teacher/attendance/sessions?date=YYYY-MM-DD&status=OPEN&mine=1
func (h *AttendanceSessionHandler) List(c echo.Context) error {
	var tid uint
	if c.QueryParam("mine") == "1" {
		tid = teacherID(c)
	}
	rows, err := h.Registry.ListSessions(c.QueryParam("date"), c.QueryParam("status"), tid)
	if err != nil {
		return coreJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"data": rows})
}

// GET /teacher/attendance/sessions/:id
func (h *AttendanceSessionHandler) Get(c echo.Context) error {
	id := uint(atoiOr(c.Param("id"), 0))
	s, err := h.Registry.GetSession(id)
	if err != nil {
		return coreJSON(c, err)
	}
	recs, err := h.Recorder.Records(id)
	if err != nil {
		return coreJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"data": map[string]any{
		"session": s,
		"records": recs,
	}})
}

// POST /teacher/attendance/sessions/:id/close
func (h *AttendanceSessionHandler) Close(c echo.Context) error {
	id := uint(atoiOr(c.Param("id"), 0))
	s, err := h.Registry.CloseSession(id, teacherID(c))
	if err != nil {
		return coreJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"data": s})
}

type markReq struct {
	Attendance []attendance.Entry `json:"attendance" validate:"required,min=1,dive"`
}

// POST /teacher/attendance/sessions/:id/mark-attendance
func (h *AttendanceSessionHandler) Mark(c echo.Context) error {
	id := uint(atoiOr(c.Param("id"), 0))
	var req markReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := h.Recorder.Record(id, req.Attendance); err != nil {
		return coreJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"data": map[string]any{
		"session_id": id,
		"saved":      len(req.Attendance),
	}})
}

// PUT /teacher/attendance/sessions/:id/records, the explicit edit path.
func (h *AttendanceSessionHandler) EditRecords(c echo.Context) error {
	id := uint(atoiOr(c.Param("id"), 0))
	var req markReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := h.Recorder.Edit(id, teacherID(c), req.Attendance); err != nil {
		return coreJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"data": map[string]any{
		"session_id": id,
		"updated":    len(req.Attendance),
	}})
}
