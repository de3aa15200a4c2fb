package employee

import (
	"time"

	errors "hrportal/internal"
	"hrportal/internal/core/common/validation"
)

// RegisterEmployeeDTO is the admin registration payload. The ID is chosen by
// the registering admin and becomes the login identifier.
type RegisterEmployeeDTO struct {
	ID              int64  `json:"id"`
	Email           string `json:"email"`
	FirstName       string `json:"first_name"`
	MiddleName      string `json:"middle_name,omitempty"`
	LastName        string `json:"last_name"`
	DateOfBirth     string `json:"date_of_birth"`
	Street          string `json:"street"`
	City            string `json:"city"`
	State           string `json:"state"`
	ZIP             int64  `json:"zip"`
	HomePhone       string `json:"home_phone,omitempty"`
	CellPhone       string `json:"cell_phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	IsAdmin         bool   `json:"is_admin,omitempty"`
}

// UpdatePersonalInfoDTO covers both the admin edit and the self-service edit.
// Credentials and the admin flag cannot be changed through it.
type UpdatePersonalInfoDTO struct {
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	MiddleName  string `json:"middle_name,omitempty"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`
	Street      string `json:"street"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZIP         int64  `json:"zip"`
	HomePhone   string `json:"home_phone,omitempty"`
	CellPhone   string `json:"cell_phone"`
}

const dateLayout = "2006-01-02"

func validateState(value interface{}) *errors.AppError {
	if v, ok := value.(string); ok {
		if !IsValidState(v) {
			return errors.NewValidationFieldError("state", "state must be a valid US state code", errors.ErrCodeValidationFailed)
		}
	}
	return nil
}

func validateDate(field string) func(interface{}) *errors.AppError {
	return func(value interface{}) *errors.AppError {
		if v, ok := value.(string); ok && v != "" {
			if _, err := time.Parse(dateLayout, v); err != nil {
				return errors.NewValidationFieldError(field, field+" must use format YYYY-MM-DD", errors.ErrCodeInvalidDate)
			}
		}
		return nil
	}
}

func (dto RegisterEmployeeDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("id", dto.ID).Required().IntRange(1, 999999999)
	v.Field("email", dto.Email).Required().MaxLength(60)
	v.Field("first_name", dto.FirstName).Required().MinLength(1).MaxLength(60)
	v.Field("last_name", dto.LastName).Required().MinLength(1).MaxLength(60)
	v.Field("middle_name", dto.MiddleName).MaxLength(60)
	v.Field("date_of_birth", dto.DateOfBirth).Required().Custom(validateDate("date_of_birth"))
	v.Field("street", dto.Street).Required().MaxLength(60)
	v.Field("city", dto.City).Required().MaxLength(60)
	v.Field("zip", dto.ZIP).Required().IntRange(1000, 99999)
	v.Field("state", dto.State).Required().Custom(validateState)
	v.Field("cell_phone", dto.CellPhone).Required().MaxLength(20)
	v.Field("password", dto.Password).Required().MinLength(8)
	v.Field("confirm_password", dto.ConfirmPassword).Custom(func(interface{}) *errors.AppError {
		if dto.Password != dto.ConfirmPassword {
			return errors.NewValidationFieldError("confirm_password", "passwords do not match", errors.ErrCodeValidationFailed)
		}
		return nil
	})
	return v.Validate()
}

func (dto UpdatePersonalInfoDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("email", dto.Email).Required().MaxLength(60)
	v.Field("first_name", dto.FirstName).Required().MinLength(1).MaxLength(60)
	v.Field("last_name", dto.LastName).Required().MinLength(1).MaxLength(60)
	v.Field("middle_name", dto.MiddleName).MaxLength(60)
	v.Field("date_of_birth", dto.DateOfBirth).Required().Custom(validateDate("date_of_birth"))
	v.Field("street", dto.Street).Required().MaxLength(60)
	v.Field("city", dto.City).Required().MaxLength(60)
	v.Field("zip", dto.ZIP).Required().IntRange(1000, 99999)
	v.Field("state", dto.State).Required().Custom(validateState)
	v.Field("cell_phone", dto.CellPhone).Required().MaxLength(20)
	return v.Validate()
}

// DOB parses the already validated date string.
func (dto RegisterEmployeeDTO) DOB() time.Time {
	t, _ := time.Parse(dateLayout, dto.DateOfBirth)
	return t
}

func (dto UpdatePersonalInfoDTO) DOB() time.Time {
	t, _ := time.Parse(dateLayout, dto.DateOfBirth)
	return t
}
