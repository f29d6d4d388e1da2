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

// CourseHandler covers courses and their subjects; subjects carry the
// course link the roster resolver walks.
type CourseHandler struct{}

func NewCourseHandler() *CourseHandler { return &CourseHandler{} }

type coursePayload struct {
	CourseCode   string `json:"course_code" validate:"required,max=20"`
	Name         string `json:"name" validate:"required,max=120"`
	Program      string `json:"program" validate:"required,max=80"`
	Semester     string `json:"semester" validate:"required,max=20"`
	AcademicYear string `json:"academic_year" validate:"required,max=10"`
}

func (p *coursePayload) normalize() {
	p.CourseCode = strings.TrimSpace(p.CourseCode)
	p.Name = strings.Join(strings.Fields(p.Name), " ")
	p.Program = strings.TrimSpace(p.Program)
	p.Semester = strings.TrimSpace(p.Semester)
	p.AcademicYear = strings.TrimSpace(p.AcademicYear)
}

// GET /admin/courses?q=&page=&size=
func (h *CourseHandler) List(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	page, size := pageSize(c)

	tx := database.DB.Model(&models.Course{})
	if q != "" {
		like := "%" + q + "%"
		tx = tx.Where("course_code ILIKE ? OR name ILIKE ? OR program ILIKE ?", like, like, like)
	}
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_COUNT_FAILED"})
	}
	var items []models.Course
	if err := tx.Order("course_code ASC, id ASC").
		Limit(size).Offset((page - 1) * size).Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"data": items, "page": page, "size": size, "total": total})
}

// POST /admin/courses
func (h *CourseHandler) Create(c echo.Context) error {
	var p coursePayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if err := c.Validate(&p); err != nil {
		return err
	}
	course := models.Course{
		CourseCode:   p.CourseCode,
		Name:         p.Name,
		Program:      p.Program,
		Semester:     p.Semester,
		AcademicYear: p.AcademicYear,
	}
	if err := database.DB.Create(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "COURSE_CODE_EXISTS"})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, course)
}

// PUT /admin/courses/:id
func (h *CourseHandler) Update(c echo.Context) error {
	var cur models.Course
	if err := database.DB.First(&cur, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	var p coursePayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if err := c.Validate(&p); err != nil {
		return err
	}
	cur.CourseCode = p.CourseCode
	cur.Name = p.Name
	cur.Program = p.Program
	cur.Semester = p.Semester
	cur.AcademicYear = p.AcademicYear
	if err := database.DB.Save(&cur).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "COURSE_CODE_EXISTS"})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, cur)
}

// DELETE /admin/courses/:id
func (h *CourseHandler) Delete(c echo.Context) error {
	if err := database.DB.Delete(&models.Course{}, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

// ===== Subjects =====

type subjectPayload struct {
	SubjectCode string `json:"subject_code" validate:"required,max=20"`
	Name        string `json:"name" validate:"required,max=120"`
	CourseID    uint   `json:"course_id" validate:"required"`
	Credits     int    `json:"credits" validate:"required,min=1,max=10"`
}

// GET /admin/subjects?course_id=&page=&size=
func (h *CourseHandler) ListSubjects(c echo.Context) error {
	page, size := pageSize(c)
	tx := database.DB.Model(&models.Subject{})
	if id := atoiOr(c.QueryParam("course_id"), 0); id > 0 {
		tx = tx.Where("course_id = ?", id)
	}
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_COUNT_FAILED"})
	}
	var items []models.Subject
	if err := tx.Order("subject_code ASC, id ASC").
		Limit(size).Offset((page - 1) * size).Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"data": items, "page": page, "size": size, "total": total})
}

// POST /admin/subjects
func (h *CourseHandler) CreateSubject(c echo.Context) error {
	var p subjectPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.SubjectCode = strings.TrimSpace(p.SubjectCode)
	p.Name = strings.Join(strings.Fields(p.Name), " ")
	if err := c.Validate(&p); err != nil {
		return err
	}
	var course models.Course
	if err := database.DB.First(&course, "id = ?", p.CourseID).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "COURSE_NOT_FOUND"})
	}
	subj := models.Subject{
		SubjectCode: p.SubjectCode,
		Name:        p.Name,
		CourseID:    p.CourseID,
		Credits:     p.Credits,
	}
	if err := database.DB.Create(&subj).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "SUBJECT_CODE_EXISTS"})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, subj)
}

// DELETE /admin/subjects/:id
func (h *CourseHandler) DeleteSubject(c echo.Context) error {
	if err := database.DB.Delete(&models.Subject{}, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
