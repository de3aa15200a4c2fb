package compensation

import (
	"time"

	errors "hrportal/internal"
	"hrportal/internal/core/common/validation"
)

// CompensationDTO is shared by create and edit. Dates use YYYY-MM-DD.
type CompensationDTO struct {
	EmployeeID  int64   `json:"employee_id,omitempty"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	NetPay      float64 `json:"net_pay"`
	GrossPay    float64 `json:"gross_pay"`
	HourlyWage  float64 `json:"hourly_wage"`
	HoursWorked float64 `json:"hours_worked"`
}

const dateLayout = "2006-01-02"

func validDate(field string) func(interface{}) *errors.AppError {
	return func(value interface{}) *errors.AppError {
		if v, ok := value.(string); ok && v != "" {
			if _, err := time.Parse(dateLayout, v); err != nil {
				return errors.NewValidationFieldError(field, field+" must use format YYYY-MM-DD", errors.ErrCodeInvalidDate)
			}
		}
		return nil
	}
}

func (dto CompensationDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("start_date", dto.StartDate).Required().Custom(validDate("start_date"))
	v.Field("end_date", dto.EndDate).Required().Custom(validDate("end_date"))
	v.Field("net_pay", dto.NetPay).NonNegativeFloat()
	v.Field("gross_pay", dto.GrossPay).NonNegativeFloat()
	v.Field("hourly_wage", dto.HourlyWage).NonNegativeFloat()
	v.Field("hours_worked", dto.HoursWorked).NonNegativeFloat()
	v.Field("period", dto.EndDate).Custom(func(interface{}) *errors.AppError {
		start, err1 := time.Parse(dateLayout, dto.StartDate)
		end, err2 := time.Parse(dateLayout, dto.EndDate)
		if err1 == nil && err2 == nil && end.Before(start) {
			return errors.NewValidationFieldError("end_date", "end_date must not precede start_date", errors.ErrCodeInvalidDate)
		}
		return nil
	})
	return v.Validate()
}

func (dto CompensationDTO) Start() time.Time {
	t, _ := time.Parse(dateLayout, dto.StartDate)
	return t
}

func (dto CompensationDTO) End() time.Time {
	t, _ := time.Parse(dateLayout, dto.EndDate)
	return t
}
