package destination

import (
	"time"

	"github.com/google/uuid"
)

type Destination struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Place     string    `gorm:"type:varchar(120);not null;uniqueIndex:uq_destination_place"`
	Address   string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Destination) TableName() string {
	return "destinations"
}
