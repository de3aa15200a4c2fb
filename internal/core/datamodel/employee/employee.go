package employee

import "time"

// Employee is the storage model. The employee ID doubles as the login
// identifier and is assigned at registration, never generated.
type Employee struct {
	ID           int64     `gorm:"primaryKey;autoIncrement:false"`
	FirstName    string    `gorm:"column:first_name;not null"`
	MiddleName   string    `gorm:"column:middle_name"`
	LastName     string    `gorm:"column:last_name;not null"`
	DateOfBirth  time.Time `gorm:"column:date_of_birth;type:date"`
	Email        string    `gorm:"column:email;uniqueIndex;not null"`
	Street       string    `gorm:"column:street"`
	City         string    `gorm:"column:city"`
	State        string    `gorm:"column:state"`
	ZIP          int64     `gorm:"column:zip"`
	HomePhone    string    `gorm:"column:home_phone"`
	CellPhone    string    `gorm:"column:cell_phone"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	IsAdmin      bool      `gorm:"column:is_admin;default:false"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Employee) TableName() string {
	return "employees"
}
