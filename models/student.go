package models

import "time"

type Student struct {
	ID          uint       `gorm:"primaryKey"                   json:"id"`
	StudentCode string     `gorm:"size:20;uniqueIndex;not null" json:"student_code"` // shown in tables
	Prefix      string     `gorm:"size:20"                      json:"prefix"`
	FirstName   string     `gorm:"size:50;not null"             json:"first_name"`
	LastName    string     `gorm:"size:50;not null"             json:"last_name"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
	Email       string     `gorm:"size:80"                      json:"email"`
	Phone       string     `gorm:"size:15"                      json:"phone"`
	Program     string     `gorm:"size:80;not null"             json:"program"` // e.g. "B.Sc. Computer Science"
	Year        int        `gorm:"not null;default:1"           json:"year"`
	Status      string     `gorm:"size:20;not null;default:'active'" json:"status"` // active|left|suspended
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
