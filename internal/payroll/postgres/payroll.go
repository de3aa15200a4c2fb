package postgres

import (
	"errors"

	"gorm.io/gorm"

	"hrportal/internal"
	payrollDatamodel "hrportal/internal/core/datamodel/payroll"
	"hrportal/internal/payroll"
)

// PayrollRepository implements the payroll.Repository interface using GORM
type PayrollRepository struct {
	db *gorm.DB
}

func NewPayrollRepository(db *gorm.DB) *PayrollRepository {
	return &PayrollRepository{db: db}
}

// Create inserts a payroll row. The unique index on employee_id turns a
// racing duplicate into a conflict instead of a second row.
func (r *PayrollRepository) Create(p *payroll.Payroll) error {
	row := payroll.ToDataModel(p)
	if err := r.db.Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return internal.ErrPayrollExists
		}
		return err
	}
	p.ID = row.ID
	return nil
}

func (r *PayrollRepository) GetByID(id int64) (*payroll.Payroll, error) {
	var row payrollDatamodel.Payroll
	err := r.db.Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrPayrollNotFound
		}
		return nil, err
	}
	return payroll.FromDataModel(&row), nil
}

func (r *PayrollRepository) GetByEmployeeID(employeeID int64) ([]*payroll.Payroll, error) {
	var rows []*payrollDatamodel.Payroll
	err := r.db.Where("employee_id = ?", employeeID).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return payroll.FromDataModelSlice(rows), nil
}

func (r *PayrollRepository) GetAll() ([]*payroll.Payroll, error) {
	var rows []*payrollDatamodel.Payroll
	err := r.db.Order("employee_id ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return payroll.FromDataModelSlice(rows), nil
}

func (r *PayrollRepository) Update(p *payroll.Payroll) error {
	row := payroll.ToDataModel(p)
	return r.db.Model(&payrollDatamodel.Payroll{}).
		Where("id = ?", p.ID).
		Select("account_type", "account_number", "routing_number",
			"amount_withheld", "num_allowances", "claim_exemption", "updated_at").
		Updates(row).Error
}

func (r *PayrollRepository) Delete(id int64) error {
	result := r.db.Delete(&payrollDatamodel.Payroll{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return internal.ErrPayrollNotFound
	}
	return nil
}
