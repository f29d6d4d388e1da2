package models

import "time"

type Course struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CourseCode   string    `gorm:"size:20;not null;uniqueIndex" json:"course_code"`
	Name         string    `gorm:"size:120;not null" json:"name"`
	Program      string    `gorm:"size:80;not null" json:"program"`
	Semester     string    `gorm:"size:20;not null" json:"semester"`      // e.g. "1", "2"
	AcademicYear string    `gorm:"size:10;not null" json:"academic_year"` // e.g. "2026"
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Subject struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SubjectCode string    `gorm:"size:20;not null;uniqueIndex" json:"subject_code"`
	Name        string    `gorm:"size:120;not null" json:"name"`
	CourseID    uint      `gorm:"index;not null" json:"course_id"` // FK -> courses.id
	Credits     int       `gorm:"not null;default:3" json:"credits"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
