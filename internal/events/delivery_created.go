package events

import "time"

type DeliveryCreatedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	DeliveryID    string    `json:"delivery_id"`
	Ticket        string    `json:"ticket"`
	CourierID     string    `json:"courier_id"`
	DestinationID string    `json:"destination_id"`
	TotalAmount   float64   `json:"total_amount"`
	OccurredAt    time.Time `json:"occurred_at"`
}
