package compensation

import "time"

// Compensation is one pay-period record. An employee accumulates many of
// these; overlapping periods are not rejected.
type Compensation struct {
	ID          int64     `gorm:"primaryKey"`
	EmployeeID  int64     `gorm:"column:employee_id;index;not null"`
	StartDate   time.Time `gorm:"column:start_date;type:date;not null"`
	EndDate     time.Time `gorm:"column:end_date;type:date;not null"`
	NetPay      float64   `gorm:"column:net_pay"`
	GrossPay    float64   `gorm:"column:gross_pay"`
	HourlyWage  float64   `gorm:"column:hourly_wage"`
	HoursWorked float64   `gorm:"column:hours_worked"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Compensation) TableName() string {
	return "compensations"
}
