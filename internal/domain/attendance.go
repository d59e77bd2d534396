package domain

import "time"

const WorkDateLayout = "2006-01-02"

type AttendanceRecord struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	EmployeeID   uint       `gorm:"column:emp_id;not null;uniqueIndex:idx_attendance_emp_day,priority:1" json:"employee_id"`
	Employee     *Employee  `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE" json:"-"`
	WorkDate     string     `gorm:"column:work_date;size:10;not null;uniqueIndex:idx_attendance_emp_day,priority:2" json:"work_date"`
	CheckInTime  time.Time  `gorm:"not null;index" json:"check_in_time"`
	CheckOutTime *time.Time `json:"check_out_time,omitempty"`
}

func (AttendanceRecord) TableName() string { return "AttendanceRecord" }

// Open reports whether the session still waits for a check-out.
func (r AttendanceRecord) Open() bool { return r.CheckOutTime == nil }

// WorkDateOf returns the calendar day t falls on in loc.
func WorkDateOf(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(WorkDateLayout)
}
