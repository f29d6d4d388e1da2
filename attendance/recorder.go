package attendance

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/ChetanKaturde/smart-college/models"
)

// Entry is one submitted mark.
type Entry struct {
	StudentID uint   `json:"student_id"`
	Status    string `json:"status"` // PRESENT|ABSENT
}

// Recorder persists marks for a session. Marks are write-once through
// Record; Edit is the only path that changes saved marks.
type Recorder struct {
	db  *gorm.DB
	Now func() time.Time
}

func NewRecorder(db *gorm.DB) *Recorder {
	return &Recorder{db: db, Now: time.Now}
}

func validateEntries(entries []Entry) error {
	if len(entries) == 0 {
		return newError(KindValidation, CodeEmptyEntries, "attendance list is empty")
	}
	seen := make(map[uint]struct{}, len(entries))
	for _, e := range entries {
		if e.StudentID == 0 {
			return newError(KindValidation, CodeMissingFields, "student_id is required")
		}
		if e.Status != models.MarkPresent && e.Status != models.MarkAbsent {
			return newError(KindValidation, CodeInvalidStatus,
				fmt.Sprintf("status %q is not PRESENT or ABSENT", e.Status))
		}
		if _, dup := seen[e.StudentID]; dup {
			return newError(KindValidation, CodeDuplicateStudent,
				fmt.Sprintf("student %d appears twice", e.StudentID))
		}
		seen[e.StudentID] = struct{}{}
	}
	return nil
}

// Record saves the whole batch atomically. The marked_at conditional update
// is the idempotency gate: a retry or double-click loses the race at the
// database and comes back as ALREADY_MARKED with the first batch untouched.
func (rc *Recorder) Record(sessionID uint, entries []Entry) error {
	if err := validateEntries(entries); err != nil {
		return err
	}
	return rc.db.Transaction(func(tx *gorm.DB) error {
		var s models.AttendanceSession
		if err := tx.First(&s, "id = ?", sessionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return newError(KindNotFound, CodeSessionNotFound, "session not found")
			}
			return err
		}
		if s.Status != models.SessionOpen {
			return newError(KindConflict, CodeSessionClosed, "session is closed")
		}

		courseID, err := sessionCourse(tx, &s)
		if err != nil {
			return err
		}
		roster, err := ResolveRoster(tx, courseID)
		if err != nil {
			return err
		}
		enrolled := make(map[uint]struct{}, len(roster))
		for _, r := range roster {
			enrolled[r.StudentID] = struct{}{}
		}
		for _, e := range entries {
			if _, ok := enrolled[e.StudentID]; !ok {
				return newError(KindValidation, CodeStudentNotInRoster,
					fmt.Sprintf("student %d is not enrolled in this course", e.StudentID))
			}
		}

		res := tx.Model(&models.AttendanceSession{}).
			Where("id = ? AND marked_at IS NULL", s.ID).
			Update("marked_at", rc.Now())
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return newError(KindConflict, CodeAlreadyMarked, "attendance for this session is already saved")
		}

		recs := make([]models.AttendanceRecord, 0, len(entries))
		for _, e := range entries {
			recs = append(recs, models.AttendanceRecord{
				SessionID: s.ID,
				StudentID: e.StudentID,
				Status:    e.Status,
			})
		}
		return tx.Create(&recs).Error
	})
}

// Edit updates already-saved marks. It requires a marked session and the
// owning teacher; sessions that were never marked must go through Record.
func (rc *Recorder) Edit(sessionID, teacherID uint, entries []Entry) error {
	if err := validateEntries(entries); err != nil {
		return err
	}
	return rc.db.Transaction(func(tx *gorm.DB) error {
		var s models.AttendanceSession
		if err := tx.First(&s, "id = ?", sessionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return newError(KindNotFound, CodeSessionNotFound, "session not found")
			}
			return err
		}
		if s.TeacherID != teacherID {
			return newError(KindPermission, CodeNotSessionOwner, "only the owning teacher may edit attendance")
		}
		if s.MarkedAt == nil {
			return newError(KindConflict, CodeNotYetMarked, "attendance has not been saved yet")
		}
		for _, e := range entries {
			res := tx.Model(&models.AttendanceRecord{}).
				Where("session_id = ? AND student_id = ?", s.ID, e.StudentID).
				Update("status", e.Status)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return newError(KindNotFound, CodeRecordNotFound,
					fmt.Sprintf("no saved mark for student %d", e.StudentID))
			}
		}
		return nil
	})
}

// Records lists a session's saved marks in student order.
func (rc *Recorder) Records(sessionID uint) ([]models.AttendanceRecord, error) {
	var out []models.AttendanceRecord
	err := rc.db.Where("session_id = ?", sessionID).
		Order("student_id ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
