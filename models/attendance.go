package models

import "time"

// Session status values.
const (
	SessionOpen   = "OPEN"
	SessionClosed = "CLOSED"
)

// Per-student mark values.
const (
	MarkPresent = "PRESENT"
	MarkAbsent  = "ABSENT"
)

// One dated occurrence of a timetable slot. The composite unique index is the
// duplicate-session guard: a second create for the same
// (slot, lecture_date, lecture_number) fails at the database, never by a
// read-then-write check.
type AttendanceSession struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	SlotID        uint       `gorm:"not null;uniqueIndex:ux_attendance_sessions_occurrence" json:"slot_id"`
	LectureDate   string     `gorm:"size:10;not null;uniqueIndex:ux_attendance_sessions_occurrence" json:"lecture_date"` // YYYY-MM-DD
	LectureNumber int        `gorm:"not null;uniqueIndex:ux_attendance_sessions_occurrence" json:"lecture_number"`
	TeacherID     uint       `gorm:"index;not null" json:"teacher_id"` // creator; the slot's subject teacher
	Status        string     `gorm:"size:10;not null;default:'OPEN'" json:"status"` // OPEN|CLOSED
	MarkedAt      *time.Time `json:"marked_at,omitempty"` // set exactly once by the mark recorder

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// One student's PRESENT/ABSENT mark for a session. A session owns its records:
// deleting the session cascades.
type AttendanceRecord struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	SessionID uint   `gorm:"not null;uniqueIndex:ux_attendance_records_session_student" json:"session_id"`
	StudentID uint   `gorm:"not null;uniqueIndex:ux_attendance_records_session_student" json:"student_id"`
	Status    string `gorm:"size:10;not null" json:"status"` // PRESENT|ABSENT

	Session AttendanceSession `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
