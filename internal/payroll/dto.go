package payroll

import (
	errors "hrportal/internal"
	"hrportal/internal/core/common/validation"
)

// PayrollDTO is shared by create and edit. On admin create the employee_id
// names the owner; on self-service create it is ignored and overwritten with
// the session identity.
type PayrollDTO struct {
	EmployeeID     int64  `json:"employee_id,omitempty"`
	AccountType    string `json:"account_type"`
	AccountNumber  string `json:"account_number"`
	RoutingNumber  string `json:"routing_number"`
	AmountWithheld int64  `json:"amount_withheld"`
	NumAllowances  int64  `json:"num_allowances"`
	ClaimExemption bool   `json:"claim_exemption"`
}

func (dto PayrollDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("account_type", dto.AccountType).Required().OneOf(AccountTypeChecking, AccountTypeSavings)
	v.Field("account_number", dto.AccountNumber).Required().ExactDigits(9)
	v.Field("routing_number", dto.RoutingNumber).Required().ExactDigits(9)
	v.Field("amount_withheld", dto.AmountWithheld).NonNegativeInt()
	v.Field("num_allowances", dto.NumAllowances).NonNegativeInt()
	return v.Validate()
}
