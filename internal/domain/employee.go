package domain

import "time"

type Employee struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"column:emp_name;size:255;not null" json:"name"`
	Email        string    `gorm:"column:emp_email;uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string    `gorm:"column:emp_pwrd;size:1024;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Employee) TableName() string { return "Employee" }
