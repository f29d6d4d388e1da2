package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/ChetanKaturde/smart-college/database"
	"github.com/ChetanKaturde/smart-college/models"
)

type StudentHandler struct{}

func NewStudentHandler() *StudentHandler { return &StudentHandler{} }

type studentPayload struct {
	StudentCode string `json:"student_code" validate:"required,max=20"`
	Prefix      string `json:"prefix" validate:"max=20"`
	FirstName   string `json:"first_name" validate:"required,max=50"`
	LastName    string `json:"last_name" validate:"required,max=50"`
	BirthDate   string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Email       string `json:"email" validate:"omitempty,email,max=80"`
	Phone       string `json:"phone" validate:"max=15"`
	Program     string `json:"program" validate:"required,max=80"`
	Year        int    `json:"year" validate:"required,min=1,max=8"`
	Status      string `json:"status" validate:"omitempty,oneof=active left suspended"`
}

func (p *studentPayload) normalize() {
	trim := func(s string) string { return strings.TrimSpace(s) }
	p.StudentCode = trim(p.StudentCode)
	p.Prefix = trim(p.Prefix)
	p.FirstName = strings.Join(strings.Fields(p.FirstName), " ")
	p.LastName = strings.Join(strings.Fields(p.LastName), " ")
	p.BirthDate = trim(p.BirthDate)
	p.Email = trim(strings.ToLower(p.Email))
	p.Phone = trim(p.Phone)
	p.Program = trim(p.Program)
	if p.Status == "" {
		p.Status = "active"
	}
}

func (p *studentPayload) apply(s *models.Student) {
	s.StudentCode = p.StudentCode
	s.Prefix = p.Prefix
	s.FirstName = p.FirstName
	s.LastName = p.LastName
	if p.BirthDate != "" {
		if d, err := time.Parse("2006-01-02", p.BirthDate); err == nil {
			s.BirthDate = &d
		}
	} else {
		s.BirthDate = nil
	}
	s.Email = p.Email
	s.Phone = p.Phone
	s.Program = p.Program
	s.Year = p.Year
	s.Status = p.Status
}

// GET /admin/students?q=&program=&year=&page=&size=
func (h *StudentHandler) List(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	program := strings.TrimSpace(c.QueryParam("program"))
	year := atoiOr(c.QueryParam("year"), 0)
	page, size := pageSize(c)

	tx := database.DB.Model(&models.Student{})
	if q != "" {
		like := "%" + q + "%"
		tx = tx.Where("student_code ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?", like, like, like)
	}
	if program != "" {
		tx = tx.Where("program = ?", program)
	}
	if year > 0 {
		tx = tx.Where("year = ?", year)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_COUNT_FAILED"})
	}
	var items []models.Student
	if err := tx.Order("last_name ASC, first_name ASC, id ASC").
		Limit(size).Offset((page - 1) * size).Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"data": items, "page": page, "size": size, "total": total})
}

// POST /admin/students
func (h *StudentHandler) Create(c echo.Context) error {
	var p studentPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if err := c.Validate(&p); err != nil {
		return err
	}
	var s models.Student
	p.apply(&s)
	if err := database.DB.Create(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "STUDENT_CODE_EXISTS"})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, s)
}

// PUT /admin/students/:id
func (h *StudentHandler) Update(c echo.Context) error {
	var cur models.Student
	if err := database.DB.First(&cur, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	var p studentPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if err := c.Validate(&p); err != nil {
		return err
	}
	p.apply(&cur)
	if err := database.DB.Save(&cur).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "STUDENT_CODE_EXISTS"})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, cur)
}

// DELETE /admin/students/:id
func (h *StudentHandler) Delete(c echo.Context) error {
	if err := database.DB.Delete(&models.Student{}, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
