package payroll

import "time"

// Payroll holds direct-deposit and withholding details. The unique index on
// employee_id enforces the at-most-one-payroll-per-employee invariant at the
// storage layer, so a racing duplicate create fails at commit.
type Payroll struct {
	ID             int64     `gorm:"primaryKey"`
	EmployeeID     int64     `gorm:"column:employee_id;uniqueIndex;not null"`
	AccountType    string    `gorm:"column:account_type;not null"`
	AccountNumber  string    `gorm:"column:account_number;not null"`
	RoutingNumber  string    `gorm:"column:routing_number;not null"`
	AmountWithheld int64     `gorm:"column:amount_withheld;default:0"`
	NumAllowances  int64     `gorm:"column:num_allowances;default:0"`
	ClaimExemption bool      `gorm:"column:claim_exemption;default:false"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Payroll) TableName() string {
	return "payrolls"
}
