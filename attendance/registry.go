package attendance

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/ChetanKaturde/smart-college/models"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Registry owns attendance sessions: it is the only writer of the
// (slot, lecture_date, lecture_number) occurrence set and of session status.
type Registry struct {
	db *gorm.DB

	// Now is the server clock used for every temporal guard. Client clocks
	// are untrusted; the UI window check is a UX hint only. Overridable in
	// tests.
	Now func() time.Time
}

func NewRegistry(db *gorm.DB) *Registry {
	return &Registry{db: db, Now: time.Now}
}

// CreateSession opens a session for one dated occurrence of a slot. All
// guards run server-side; duplicate prevention is the unique occurrence
// index, not a prior existence read.
func (r *Registry) CreateSession(slotID uint, lectureDate string, lectureNumber int, teacherID uint) (*models.AttendanceSession, error) {
	if slotID == 0 || teacherID == 0 || lectureNumber <= 0 || lectureDate == "" {
		return nil, newError(KindValidation, CodeMissingFields, "slot_id, lecture_date and lecture_number are required")
	}
	day, err := time.Parse(dateLayout, lectureDate)
	if err != nil {
		return nil, newError(KindValidation, CodeInvalidDate, "lecture_date must be YYYY-MM-DD")
	}

	var slot models.TimetableSlot
	if err := r.db.First(&slot, "id = ?", slotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newError(KindNotFound, CodeSlotNotFound, "timetable slot not found")
		}
		return nil, err
	}
	var tt models.Timetable
	if err := r.db.First(&tt, "id = ?", slot.TimetableID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newError(KindNotFound, CodeTimetableNotFound, "parent timetable not found")
		}
		return nil, err
	}
	if tt.Status != models.TimetablePublished {
		return nil, newError(KindValidation, CodeTimetableNotPublished, "timetable is not published")
	}
	if slot.TeacherID != teacherID {
		return nil, newError(KindPermission, CodeNotSubjectTeacher, "only the subject teacher may start attendance")
	}

	if int(day.Weekday()) != slot.DayOfWeek {
		return nil, newError(KindTemporal, CodeDateDayMismatch,
			fmt.Sprintf("%s is not a %s slot day", lectureDate, time.Weekday(slot.DayOfWeek)))
	}
	now := r.Now()
	// Zero-padded ISO dates and HH:MM times compare correctly as strings.
	today := now.Format(dateLayout)
	if lectureDate < today {
		return nil, newError(KindTemporal, CodePastDateNotAllowed, "cannot open a session for a past date")
	}
	if lectureDate > today {
		return nil, newError(KindTemporal, CodeOnlyTodayAllowed, "sessions may only be opened on the lecture day")
	}
	clock := now.Format(timeLayout)
	if clock < slot.StartTime {
		return nil, newError(KindTemporal, CodeLectureNotStarted,
			fmt.Sprintf("lecture starts at %s", slot.StartTime))
	}
	if clock > slot.EndTime {
		return nil, newError(KindTemporal, CodeLectureEnded,
			fmt.Sprintf("lecture ended at %s", slot.EndTime))
	}

	s := models.AttendanceSession{
		SlotID:        slotID,
		LectureDate:   lectureDate,
		LectureNumber: lectureNumber,
		TeacherID:     teacherID,
		Status:        models.SessionOpen,
	}
	if err := r.db.Create(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, newError(KindConflict, CodeDuplicateSession, "a session already exists for this slot, date and lecture number")
		}
		return nil, err
	}
	return &s, nil
}

// CloseSession moves OPEN -> CLOSED. CLOSED is terminal; the conditional
// update makes a repeat close (or a racing one) come back as
// SESSION_ALREADY_CLOSED instead of a silent no-op.
func (r *Registry) CloseSession(sessionID, teacherID uint) (*models.AttendanceSession, error) {
	var s models.AttendanceSession
	if err := r.db.First(&s, "id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newError(KindNotFound, CodeSessionNotFound, "session not found")
		}
		return nil, err
	}
	if s.TeacherID != teacherID {
		return nil, newError(KindPermission, CodeNotSessionOwner, "only the owning teacher may close a session")
	}
	res := r.db.Model(&models.AttendanceSession{}).
		Where("id = ? AND status = ?", sessionID, models.SessionOpen).
		Update("status", models.SessionClosed)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, newError(KindConflict, CodeSessionAlreadyClosed, "session is already closed")
	}
	s.Status = models.SessionClosed
	return &s, nil
}

// GetSession loads one session by id.
func (r *Registry) GetSession(sessionID uint) (*models.AttendanceSession, error) {
	var s models.AttendanceSession
	if err := r.db.First(&s, "id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newError(KindNotFound, CodeSessionNotFound, "session not found")
		}
		return nil, err
	}
	return &s, nil
}

// ListSessions is the server-authoritative "which sessions exist" query.
// Zero/empty filters are ignored.
func (r *Registry) ListSessions(date, status string, teacherID uint) ([]models.AttendanceSession, error) {
	tx := r.db.Model(&models.AttendanceSession{})
	if date != "" {
		tx = tx.Where("lecture_date = ?", date)
	}
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	if teacherID != 0 {
		tx = tx.Where("teacher_id = ?", teacherID)
	}
	var out []models.AttendanceSession
	if err := tx.Order("lecture_date ASC, lecture_number ASC, id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
