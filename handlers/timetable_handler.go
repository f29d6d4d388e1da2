package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/ChetanKaturde/smart-college/database"
	"github.com/ChetanKaturde/smart-college/models"
)

// TimetableHandler covers timetables and their weekly slots. Session
// creation only ever reads these; publishing is the gate that makes a
// timetable's slots usable for attendance.
type TimetableHandler struct{}

func NewTimetableHandler() *TimetableHandler { return &TimetableHandler{} }

type timetablePayload struct {
	Name         string `json:"name" validate:"required,max=120"`
	CourseID     uint   `json:"course_id" validate:"required"`
	Semester     string `json:"semester" validate:"required,max=20"`
	AcademicYear string `json:"academic_year" validate:"required,max=10"`
}

// GET /admin/timetables?course_id=&status=
func (h *TimetableHandler) List(c echo.Context) error {
	tx := database.DB.Model(&models.Timetable{})
	if id := atoiOr(c.QueryParam("course_id"), 0); id > 0 {
		tx = tx.Where("course_id = ?", id)
	}
	if st := strings.TrimSpace(c.QueryParam("status")); st != "" {
		tx = tx.Where("status = ?", st)
	}
	var items []models.Timetable
	if err := tx.Order("id ASC").Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"data": items})
}

// POST /admin/timetables (always starts in DRAFT)
func (h *TimetableHandler) Create(c echo.Context) error {
	var p timetablePayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.Name = strings.Join(strings.Fields(p.Name), " ")
	if err := c.Validate(&p); err != nil {
		return err
	}
	var course models.Course
	if err := database.DB.First(&course, "id = ?", p.CourseID).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "COURSE_NOT_FOUND"})
	}
	tt := models.Timetable{
		Name:         p.Name,
		CourseID:     p.CourseID,
		Semester:     p.Semester,
		AcademicYear: p.AcademicYear,
		Status:       models.TimetableDraft,
	}
	if err := database.DB.Create(&tt).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, tt)
}

// POST /admin/timetables/:id/publish, one-way DRAFT -> PUBLISHED
func (h *TimetableHandler) Publish(c echo.Context) error {
	var tt models.Timetable
	if err := database.DB.First(&tt, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	res := database.DB.Model(&models.Timetable{}).
		Where("id = ? AND status = ?", tt.ID, models.TimetableDraft).
		Update("status", models.TimetablePublished)
	if res.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_UPDATE_FAILED"})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusConflict, map[string]string{"error": "ALREADY_PUBLISHED"})
	}
	tt.Status = models.TimetablePublished
	return c.JSON(http.StatusOK, tt)
}

// DELETE /admin/timetables/:id (draft only; published timetables are
// immutable during the term)
func (h *TimetableHandler) Delete(c echo.Context) error {
	var tt models.Timetable
	if err := database.DB.First(&tt, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	if tt.Status == models.TimetablePublished {
		return c.JSON(http.StatusConflict, map[string]string{"error": "TIMETABLE_PUBLISHED"})
	}
	if err := database.DB.Delete(&tt).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

// ===== Slots =====

type slotPayload struct {
	TimetableID uint   `json:"timetable_id" validate:"required"`
	SubjectID   uint   `json:"subject_id" validate:"required"`
	TeacherID   uint   `json:"teacher_id" validate:"required"`
	DayOfWeek   *int   `json:"day_of_week" validate:"required,min=0,max=6"`
	StartTime   string `json:"start_time" validate:"required,len=5"`
	EndTime     string `json:"end_time" validate:"required,len=5"`
	Room        string `json:"room" validate:"max=20"`
	SlotType    string `json:"slot_type" validate:"omitempty,oneof=LECTURE LAB TUTORIAL PRACTICAL"`
}

// GET /admin/timetables/:id/slots (also mounted read-only for teachers)
func (h *TimetableHandler) ListSlots(c echo.Context) error {
	var items []models.TimetableSlot
	if err := database.DB.Where("timetable_id = ?", c.Param("id")).
		Order("day_of_week ASC, start_time ASC, id ASC").Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"data": items})
}

// POST /admin/slots
func (h *TimetableHandler) CreateSlot(c echo.Context) error {
	var p slotPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&p); err != nil {
		return err
	}
	if p.StartTime >= p.EndTime {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_TIME_RANGE"})
	}
	var tt models.Timetable
	if err := database.DB.First(&tt, "id = ?", p.TimetableID).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "TIMETABLE_NOT_FOUND"})
	}
	if tt.Status == models.TimetablePublished {
		return c.JSON(http.StatusConflict, map[string]string{"error": "TIMETABLE_PUBLISHED"})
	}
	var subj models.Subject
	if err := database.DB.First(&subj, "id = ?", p.SubjectID).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "SUBJECT_NOT_FOUND"})
	}
	var tch models.Teacher
	if err := database.DB.First(&tch, "id = ?", p.TeacherID).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "TEACHER_NOT_FOUND"})
	}
	slotType := p.SlotType
	if slotType == "" {
		slotType = models.SlotLecture
	}
	slot := models.TimetableSlot{
		TimetableID: p.TimetableID,
		SubjectID:   p.SubjectID,
		TeacherID:   p.TeacherID,
		DayOfWeek:   *p.DayOfWeek,
		StartTime:   p.StartTime,
		EndTime:     p.EndTime,
		Room:        strings.TrimSpace(p.Room),
		SlotType:    slotType,
	}
	if err := database.DB.Create(&slot).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, slot)
}

// DELETE /admin/slots/:id (draft-timetable slots only)
func (h *TimetableHandler) DeleteSlot(c echo.Context) error {
	var slot models.TimetableSlot
	if err := database.DB.First(&slot, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	var tt models.Timetable
	if err := database.DB.First(&tt, "id = ?", slot.TimetableID).Error; err == nil &&
		tt.Status == models.TimetablePublished {
		return c.JSON(http.StatusConflict, map[string]string{"error": "TIMETABLE_PUBLISHED"})
	}
	if err := database.DB.Delete(&slot).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
