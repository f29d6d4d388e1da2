package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/ChetanKaturde/smart-college/database"
	"github.com/ChetanKaturde/smart-college/models"
)

type EnrollmentHandler struct{}

func NewEnrollmentHandler() *EnrollmentHandler { return &EnrollmentHandler{} }

type enrollmentPayload struct {
	StudentID uint `json:"student_id" validate:"required"`
	CourseID  uint `json:"course_id" validate:"required"`
}

// GET /admin/enrollments?course_id=&student_id=
func (h *EnrollmentHandler) List(c echo.Context) error {
	tx := database.DB.Model(&models.Enrollment{})
	if id := atoiOr(c.QueryParam("course_id"), 0); id > 0 {
		tx = tx.Where("course_id = ?", id)
	}
	if id := atoiOr(c.QueryParam("student_id"), 0); id > 0 {
		tx = tx.Where("student_id = ?", id)
	}
	var items []models.Enrollment
	if err := tx.Order("id ASC").Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"data": items})
}

// POST /admin/enrollments
func (h *EnrollmentHandler) Create(c echo.Context) error {
	var p enrollmentPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&p); err != nil {
		return err
	}
	var student models.Student
	if err := database.DB.First(&student, "id = ?", p.StudentID).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "STUDENT_NOT_FOUND"})
	}
	var course models.Course
	if err := database.DB.First(&course, "id = ?", p.CourseID).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "COURSE_NOT_FOUND"})
	}

	e := models.Enrollment{StudentID: p.StudentID, CourseID: p.CourseID, Status: "enrolled"}
	if err := database.DB.Create(&e).Error; err != nil {
		// pair index, not a read-then-write check
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "ALREADY_ENROLLED"})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, e)
}

// POST /admin/enrollments/:id/drop
func (h *EnrollmentHandler) Drop(c echo.Context) error {
	var cur models.Enrollment
	if err := database.DB.First(&cur, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	cur.Status = "dropped"
	if err := database.DB.Save(&cur).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, cur)
}

// DELETE /admin/enrollments/:id
func (h *EnrollmentHandler) Delete(c echo.Context) error {
	if err := database.DB.Delete(&models.Enrollment{}, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
