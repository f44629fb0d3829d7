package delivery

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusInProgress = "IN_PROGRESS"
	StatusFinalized  = "FINALIZED"
)

type Delivery struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Ticket          string    `gorm:"type:varchar(40);not null;uniqueIndex:uq_delivery_ticket"`
	DestinationID   uuid.UUID `gorm:"type:uuid;not null"`
	CourierID       uuid.UUID `gorm:"type:uuid;not null"`
	SellerID        uuid.UUID `gorm:"type:uuid;not null"`
	PaymentMethodID uuid.UUID `gorm:"type:uuid;not null"`
	CreationDate    time.Time `gorm:"type:date;not null"`
	DepartureTime   string    `gorm:"type:time;not null"`
	ArrivalTime     *string   `gorm:"type:time"`
	TotalAmount     float64   `gorm:"type:numeric(12,2);not null"`
	Status          string    `gorm:"type:varchar(15);not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (Delivery) TableName() string {
	return "deliveries"
}
