package auth

import (
	"time"

	"github.com/google/uuid"
)

// Employee is a back-office credential record, not a courier. Role is one of
// the rbac package roles.
type Employee struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"column:name;size:255;not null"`
	Username  string    `gorm:"column:username;size:100;not null;uniqueIndex:uq_employee_username"`
	Password  string    `gorm:"column:password;size:255;not null"`
	Role      string    `gorm:"column:role;size:30;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Employee) TableName() string {
	return "employees"
}
