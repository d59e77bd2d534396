package domain

import "time"

// BiometricRegistration records that an employee enrolled a device credential.
// Marker is opaque to the server apart from being the key for assertion checks.
type BiometricRegistration struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	EmployeeID     uint       `gorm:"column:emp_id;uniqueIndex;not null" json:"employee_id"`
	Employee       *Employee  `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE" json:"-"`
	Marker         []byte     `gorm:"column:biometric_data;not null" json:"-"`
	RegisteredDate string     `gorm:"column:date;size:10;not null" json:"registered_date"`
	LastVerifiedAt *time.Time `json:"last_verified_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (BiometricRegistration) TableName() string { return "EmployeeBiometrics" }
