package courier

import (
	"time"

	"github.com/google/uuid"
)

// Courier is the person who executes delivery runs. Attendance rows and
// deliveries reference it.
type Courier struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"column:name;size:255;not null;uniqueIndex:uq_courier_name"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Courier) TableName() string {
	return "couriers"
}
