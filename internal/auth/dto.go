package auth

// LoginDTO is the transport shape for login requests. Employees sign in with
// their numeric employee ID, not their email.
type LoginDTO struct {
	EmployeeID int64  `json:"employee_id"`
	Password   string `json:"password"`
}

type RefreshTokenDTO struct {
	RefreshToken string `json:"refresh_token"`
}

// ValidationError represents a simple validation error from DTO validation.
type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d LoginDTO) Validate() error {
	if d.EmployeeID == 0 {
		return ValidationError{Msg: "employee_id is required"}
	}
	if d.Password == "" {
		return ValidationError{Msg: "password is required"}
	}
	return nil
}

func (d RefreshTokenDTO) Validate() error {
	if d.RefreshToken == "" {
		return ValidationError{Msg: "refresh_token is required"}
	}
	return nil
}
