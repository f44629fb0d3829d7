package attendance

import (
	"time"

	"github.com/google/uuid"
)

type Attendance struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CourierID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_courier_date"`
	Date        time.Time `gorm:"type:date;not null;uniqueIndex:uq_attendance_courier_date"`
	EntryTime   *string   `gorm:"type:time"`
	ExitTime    *string   `gorm:"type:time"`
	Status      string    `gorm:"type:varchar(10);not null"`
	Observation string    `gorm:"type:text;not null;default:''"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Attendance) TableName() string {
	return "attendances"
}
