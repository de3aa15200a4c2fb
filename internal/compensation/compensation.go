package compensation

import (
	"time"

	compensationDatamodel "hrportal/internal/core/datamodel/compensation"
)

// Compensation is one pay-period record for an employee.
type Compensation struct {
	ID          int64     `json:"id"`
	EmployeeID  int64     `json:"employee_id"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	NetPay      float64   `json:"net_pay"`
	GrossPay    float64   `json:"gross_pay"`
	HourlyWage  float64   `json:"hourly_wage"`
	HoursWorked float64   `json:"hours_worked"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToDataModel(c *Compensation) *compensationDatamodel.Compensation {
	return &compensationDatamodel.Compensation{
		ID:          c.ID,
		EmployeeID:  c.EmployeeID,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		NetPay:      c.NetPay,
		GrossPay:    c.GrossPay,
		HourlyWage:  c.HourlyWage,
		HoursWorked: c.HoursWorked,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func FromDataModel(c *compensationDatamodel.Compensation) *Compensation {
	return &Compensation{
		ID:          c.ID,
		EmployeeID:  c.EmployeeID,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		NetPay:      c.NetPay,
		GrossPay:    c.GrossPay,
		HourlyWage:  c.HourlyWage,
		HoursWorked: c.HoursWorked,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func FromDataModelSlice(rows []*compensationDatamodel.Compensation) []*Compensation {
	result := make([]*Compensation, len(rows))
	for i, row := range rows {
		result[i] = FromDataModel(row)
	}
	return result
}
