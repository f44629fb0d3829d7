package seller

import (
	"time"

	"github.com/google/uuid"
)

type Seller struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(120);not null;uniqueIndex:uq_seller_name"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Seller) TableName() string {
	return "sellers"
}
