package payroll

import (
	"time"

	payrollDatamodel "hrportal/internal/core/datamodel/payroll"
)

type Payroll struct {
	ID             int64     `json:"id"`
	EmployeeID     int64     `json:"employee_id"`
	AccountType    string    `json:"account_type"`
	AccountNumber  string    `json:"account_number"`
	RoutingNumber  string    `json:"routing_number"`
	AmountWithheld int64     `json:"amount_withheld"`
	NumAllowances  int64     `json:"num_allowances"`
	ClaimExemption bool      `json:"claim_exemption"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

const (
	AccountTypeChecking = "Checking"
	AccountTypeSavings  = "Savings"
)

func ToDataModel(p *Payroll) *payrollDatamodel.Payroll {
	return &payrollDatamodel.Payroll{
		ID:             p.ID,
		EmployeeID:     p.EmployeeID,
		AccountType:    p.AccountType,
		AccountNumber:  p.AccountNumber,
		RoutingNumber:  p.RoutingNumber,
		AmountWithheld: p.AmountWithheld,
		NumAllowances:  p.NumAllowances,
		ClaimExemption: p.ClaimExemption,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func FromDataModel(p *payrollDatamodel.Payroll) *Payroll {
	return &Payroll{
		ID:             p.ID,
		EmployeeID:     p.EmployeeID,
		AccountType:    p.AccountType,
		AccountNumber:  p.AccountNumber,
		RoutingNumber:  p.RoutingNumber,
		AmountWithheld: p.AmountWithheld,
		NumAllowances:  p.NumAllowances,
		ClaimExemption: p.ClaimExemption,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func FromDataModelSlice(rows []*payrollDatamodel.Payroll) []*Payroll {
	result := make([]*Payroll, len(rows))
	for i, row := range rows {
		result[i] = FromDataModel(row)
	}
	return result
}
