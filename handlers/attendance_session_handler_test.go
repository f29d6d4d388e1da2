package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ChetanKaturde/smart-college/database"
	"github.com/ChetanKaturde/smart-college/models"
)

// 2026-03-02 is a Monday; the fixture slot runs Mondays 09:00-10:00.
const testMonday = "2026-03-02"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:handlers_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

type fixture struct {
	teacher  models.Teacher
	course   models.Course
	slot     models.TimetableSlot
	students []models.Student
}

func seed(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	f := fixture{}
	f.teacher = models.Teacher{TeacherCode: "T-100", FirstName: "Asha", LastName: "Rao", Email: "asha@college.test"}
	require.NoError(t, db.Create(&f.teacher).Error)

	f.course = models.Course{CourseCode: "CS101", Name: "Intro to CS", Program: "B.Sc. CS", Semester: "1", AcademicYear: "2026"}
	require.NoError(t, db.Create(&f.course).Error)
	subject := models.Subject{SubjectCode: "CS101-A", Name: "Programming I", CourseID: f.course.ID, Credits: 3}
	require.NoError(t, db.Create(&subject).Error)

	tt := models.Timetable{Name: "CS sem 1", CourseID: f.course.ID, Semester: "1", AcademicYear: "2026", Status: models.TimetablePublished}
	require.NoError(t, db.Create(&tt).Error)
	f.slot = models.TimetableSlot{
		TimetableID: tt.ID, SubjectID: subject.ID, TeacherID: f.teacher.ID,
		DayOfWeek: 1, StartTime: "09:00", EndTime: "10:00", SlotType: models.SlotLecture,
	}
	require.NoError(t, db.Create(&f.slot).Error)

	for i, name := range []struct{ first, last string }{{"Ben", "Abbott"}, {"Cara", "Malik"}} {
		s := models.Student{
			StudentCode: fmt.Sprintf("S-%03d", i+1),
			FirstName:   name.first, LastName: name.last,
			Program: "B.Sc. CS", Year: 1, Status: "active",
		}
		require.NoError(t, db.Create(&s).Error)
		require.NoError(t, db.Create(&models.Enrollment{StudentID: s.ID, CourseID: f.course.ID, Status: "enrolled"}).Error)
		f.students = append(f.students, s)
	}
	return f
}

func newContext(e *echo.Echo, method, path string, body any) (echo.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func sessionHandlerAt(db *gorm.DB, date, hhmm string) *AttendanceSessionHandler {
	h := NewAttendanceSessionHandler(db)
	ts, _ := time.Parse("2006-01-02 15:04", date+" "+hhmm)
	h.Registry.Now = func() time.Time { return ts }
	h.Recorder.Now = h.Registry.Now
	return h
}

func TestCreateSessionEndpoint(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	e := echo.New()
	e.Validator = NewValidator()
	h := sessionHandlerAt(db, testMonday, "09:15")

	body := map[string]any{"slot_id": f.slot.ID, "lecture_date": testMonday, "lecture_number": 1}

	c, rec := newContext(e, http.MethodPost, "/teacher/attendance/sessions", body)
	c.Set("teacher_id", f.teacher.ID)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	// retry: distinct conflict code, not a generic failure
	c, rec = newContext(e, http.MethodPost, "/teacher/attendance/sessions", body)
	c.Set("teacher_id", f.teacher.ID)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "DUPLICATE_SESSION", decodeBody(t, rec)["error"])

	// too early is a temporal error with its own code
	early := sessionHandlerAt(db, testMonday, "08:45")
	body["lecture_number"] = 2
	c, rec = newContext(e, http.MethodPost, "/teacher/attendance/sessions", body)
	c.Set("teacher_id", f.teacher.ID)
	require.NoError(t, early.Create(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "LECTURE_NOT_STARTED", decodeBody(t, rec)["error"])
}

func TestMarkEndpoint(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	e := echo.New()
	e.Validator = NewValidator()
	h := sessionHandlerAt(db, testMonday, "09:15")

	c, rec := newContext(e, http.MethodPost, "/teacher/attendance/sessions",
		map[string]any{"slot_id": f.slot.ID, "lecture_date": testMonday, "lecture_number": 1})
	c.Set("teacher_id", f.teacher.ID)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody(t, rec)["data"].(map[string]any)
	sessionID := fmt.Sprintf("%v", created["id"])

	mark := map[string]any{"attendance": []map[string]any{
		{"student_id": f.students[0].ID, "status": "PRESENT"},
		{"student_id": f.students[1].ID, "status": "ABSENT"},
	}}

	markCtx := func() (echo.Context, *httptest.ResponseRecorder) {
		c, rec := newContext(e, http.MethodPost, "/teacher/attendance/sessions/:id/mark-attendance", mark)
		c.SetParamNames("id")
		c.SetParamValues(sessionID)
		c.Set("teacher_id", f.teacher.ID)
		return c, rec
	}

	c, rec = markCtx()
	require.NoError(t, h.Mark(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	// resubmission is ALREADY_MARKED, never silently overwritten
	c, rec = markCtx()
	require.NoError(t, h.Mark(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "ALREADY_MARKED", decodeBody(t, rec)["error"])

	// session detail returns both records
	c, rec = newContext(e, http.MethodGet, "/teacher/attendance/sessions/:id", nil)
	c.SetParamNames("id")
	c.SetParamValues(sessionID)
	require.NoError(t, h.Get(c))
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Len(t, data["records"], 2)
}

func TestCloseThenMarkEndpoint(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	e := echo.New()
	e.Validator = NewValidator()
	h := sessionHandlerAt(db, testMonday, "09:15")

	c, rec := newContext(e, http.MethodPost, "/teacher/attendance/sessions",
		map[string]any{"slot_id": f.slot.ID, "lecture_date": testMonday, "lecture_number": 1})
	c.Set("teacher_id", f.teacher.ID)
	require.NoError(t, h.Create(c))
	created := decodeBody(t, rec)["data"].(map[string]any)
	sessionID := fmt.Sprintf("%v", created["id"])

	c, rec = newContext(e, http.MethodPost, "/teacher/attendance/sessions/:id/close", nil)
	c.SetParamNames("id")
	c.SetParamValues(sessionID)
	c.Set("teacher_id", f.teacher.ID)
	require.NoError(t, h.Close(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(e, http.MethodPost, "/teacher/attendance/sessions/:id/mark-attendance",
		map[string]any{"attendance": []map[string]any{{"student_id": f.students[0].ID, "status": "PRESENT"}}})
	c.SetParamNames("id")
	c.SetParamValues(sessionID)
	c.Set("teacher_id", f.teacher.ID)
	require.NoError(t, h.Mark(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "SESSION_CLOSED", decodeBody(t, rec)["error"])
}

func TestRosterEndpoint(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	e := echo.New()
	e.Validator = NewValidator()
	h := NewRosterHandler(db)

	c, rec := newContext(e, http.MethodGet, "/teacher/attendance/students?course_id="+fmt.Sprint(f.course.ID), nil)
	require.NoError(t, h.List(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody(t, rec)["data"], 2)

	// unknown course: empty roster, not an error
	c, rec = newContext(e, http.MethodGet, "/teacher/attendance/students?course_id=9999", nil)
	require.NoError(t, h.List(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody(t, rec)["data"], 0)

	// missing course_id
	c, rec = newContext(e, http.MethodGet, "/teacher/attendance/students", nil)
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
