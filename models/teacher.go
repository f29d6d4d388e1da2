package models

import "time"

type Teacher struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TeacherCode string    `gorm:"size:20;not null;uniqueIndex" json:"teacher_code"`
	Prefix      string    `gorm:"size:20" json:"prefix"`
	FirstName   string    `gorm:"size:50;not null" json:"first_name"`
	LastName    string    `gorm:"size:50;not null" json:"last_name"`
	Phone       string    `gorm:"size:15" json:"phone"`
	Email       string    `gorm:"size:80;not null;uniqueIndex" json:"email"`
	Position    string    `gorm:"size:50" json:"position"` // e.g. "Assistant Professor"
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
