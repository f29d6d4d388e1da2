package attendance

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ChetanKaturde/smart-college/models"
)

// RosterEntry is one enrolled student as shown in the marking UI.
type RosterEntry struct {
	StudentID   uint   `json:"student_id"`
	StudentCode string `json:"student_code"`
	Prefix      string `json:"prefix"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
}

// ResolveRoster returns the students with an active enrollment in the
// course, in stable name order. A course with no students yields an empty
// slice, not an error.
func ResolveRoster(db *gorm.DB, courseID uint) ([]RosterEntry, error) {
	var out []RosterEntry
	err := db.Table("students").
		Select("students.id AS student_id, students.student_code, students.prefix, students.first_name, students.last_name").
		Joins("JOIN enrollments ON enrollments.student_id = students.id").
		Where("enrollments.course_id = ? AND enrollments.status = ?", courseID, "enrolled").
		Order("students.last_name ASC, students.first_name ASC, students.id ASC").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []RosterEntry{}
	}
	return out, nil
}

// sessionCourse walks session -> slot -> subject to the course whose
// enrollments form the session's roster.
func sessionCourse(db *gorm.DB, s *models.AttendanceSession) (uint, error) {
	var slot models.TimetableSlot
	if err := db.First(&slot, "id = ?", s.SlotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, newError(KindNotFound, CodeSlotNotFound, "timetable slot not found")
		}
		return 0, err
	}
	var subj models.Subject
	if err := db.First(&subj, "id = ?", slot.SubjectID).Error; err != nil {
		return 0, err
	}
	return subj.CourseID, nil
}
