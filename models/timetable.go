package models

import "time"

// Timetable status values. Publish is one-way: sessions may only be opened
// against slots of a PUBLISHED timetable.
const (
	TimetableDraft     = "DRAFT"
	TimetablePublished = "PUBLISHED"
)

// Slot types, matching the authoring UI.
const (
	SlotLecture   = "LECTURE"
	SlotLab       = "LAB"
	SlotTutorial  = "TUTORIAL"
	SlotPractical = "PRACTICAL"
)

type Timetable struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:120;not null" json:"name"`
	CourseID     uint      `gorm:"index;not null" json:"course_id"`
	Semester     string    `gorm:"size:20;not null" json:"semester"`
	AcademicYear string    `gorm:"size:10;not null" json:"academic_year"`
	Status       string    `gorm:"size:20;not null;default:'DRAFT'" json:"status"` // DRAFT|PUBLISHED
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// One recurring weekly teaching period. Immutable during a term once the
// parent timetable is published.
type TimetableSlot struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TimetableID uint      `gorm:"index;not null" json:"timetable_id"`
	SubjectID   uint      `gorm:"index;not null" json:"subject_id"`
	TeacherID   uint      `gorm:"index;not null" json:"teacher_id"`
	DayOfWeek   int       `gorm:"not null" json:"day_of_week"`        // 0=Sunday … 6=Saturday
	StartTime   string    `gorm:"size:5;not null" json:"start_time"`  // HH:MM
	EndTime     string    `gorm:"size:5;not null" json:"end_time"`    // HH:MM
	Room        string    `gorm:"size:20" json:"room"`
	SlotType    string    `gorm:"size:20;not null;default:'LECTURE'" json:"slot_type"` // LECTURE|LAB|TUTORIAL|PRACTICAL
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
