package models

import "time"

// One row per student per course. The pair index keeps a student from being
// enrolled twice in the same course.
type Enrollment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StudentID uint      `gorm:"not null;uniqueIndex:ux_enrollments_student_course" json:"student_id"`
	CourseID  uint      `gorm:"not null;uniqueIndex:ux_enrollments_student_course" json:"course_id"`
	Status    string    `gorm:"size:20;not null;default:'enrolled'" json:"status"` // enrolled|dropped
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
