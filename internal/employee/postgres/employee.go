package postgres

import (
	"errors"

	"gorm.io/gorm"

	"hrportal/internal"
	employeeDatamodel "hrportal/internal/core/datamodel/employee"
	"hrportal/internal/employee"
)

// EmployeeRepository implements the employee.Repository interface using GORM
type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create inserts the employee row with its credential hash in one insert.
// The unique indexes on id and email make a racing duplicate fail here
// instead of silently producing a second row.
func (r *EmployeeRepository) Create(e *employee.Employee, passwordHash string) error {
	row := employee.ToDataModel(e)
	row.PasswordHash = passwordHash
	if err := r.db.Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return internal.ErrEmployeeIDTaken
		}
		return err
	}
	return nil
}

func (r *EmployeeRepository) GetByID(id int64) (*employee.Employee, error) {
	var row employeeDatamodel.Employee
	err := r.db.Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrEmployeeNotFound
		}
		return nil, err
	}
	return employee.FromDataModel(&row), nil
}

func (r *EmployeeRepository) GetByEmail(email string) (*employee.Employee, error) {
	var row employeeDatamodel.Employee
	err := r.db.Where("email = ?", email).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrEmployeeNotFound
		}
		return nil, err
	}
	return employee.FromDataModel(&row), nil
}

// Exists is the cross-entity lookup used by payroll and compensation
// validation.
func (r *EmployeeRepository) Exists(employeeID int64) (bool, error) {
	var count int64
	err := r.db.Model(&employeeDatamodel.Employee{}).Where("id = ?", employeeID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *EmployeeRepository) GetAll() ([]*employee.Employee, error) {
	var rows []*employeeDatamodel.Employee
	err := r.db.Order("id ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return employee.FromDataModelSlice(rows), nil
}

// Update persists personal info changes. The password hash column is left
// untouched by selecting only the mutable fields.
func (r *EmployeeRepository) Update(e *employee.Employee) error {
	row := employee.ToDataModel(e)
	return r.db.Model(&employeeDatamodel.Employee{}).
		Where("id = ?", e.ID).
		Select("first_name", "middle_name", "last_name", "date_of_birth",
			"email", "street", "city", "state", "zip",
			"home_phone", "cell_phone", "updated_at").
		Updates(row).Error
}
