package postgres

import (
	"errors"

	"gorm.io/gorm"

	"hrportal/internal"
	"hrportal/internal/compensation"
	compensationDatamodel "hrportal/internal/core/datamodel/compensation"
)

// CompensationRepository implements the compensation.Repository interface using GORM
type CompensationRepository struct {
	db *gorm.DB
}

func NewCompensationRepository(db *gorm.DB) *CompensationRepository {
	return &CompensationRepository{db: db}
}

func (r *CompensationRepository) Create(c *compensation.Compensation) error {
	row := compensation.ToDataModel(c)
	if err := r.db.Create(row).Error; err != nil {
		return err
	}
	c.ID = row.ID
	return nil
}

func (r *CompensationRepository) GetByID(id int64) (*compensation.Compensation, error) {
	var row compensationDatamodel.Compensation
	err := r.db.Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrCompensationNotFound
		}
		return nil, err
	}
	return compensation.FromDataModel(&row), nil
}

func (r *CompensationRepository) GetByEmployeeID(employeeID int64) ([]*compensation.Compensation, error) {
	var rows []*compensationDatamodel.Compensation
	err := r.db.Where("employee_id = ?", employeeID).
		Order("start_date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return compensation.FromDataModelSlice(rows), nil
}

func (r *CompensationRepository) Update(c *compensation.Compensation) error {
	row := compensation.ToDataModel(c)
	return r.db.Model(&compensationDatamodel.Compensation{}).
		Where("id = ?", c.ID).
		Select("start_date", "end_date", "net_pay", "gross_pay",
			"hourly_wage", "hours_worked", "updated_at").
		Updates(row).Error
}

func (r *CompensationRepository) Delete(id int64) error {
	result := r.db.Delete(&compensationDatamodel.Compensation{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return internal.ErrCompensationNotFound
	}
	return nil
}
