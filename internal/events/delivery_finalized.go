package events

import "time"

const DeliveryLifecycleTopic = "ops.delivery.lifecycle.v1"

type DeliveryFinalizedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	DeliveryID  string    `json:"delivery_id"`
	Ticket      string    `json:"ticket"`
	CourierID   string    `json:"courier_id"`
	TotalAmount float64   `json:"total_amount"`
	ArrivalTime string    `json:"arrival_time"`
	OccurredAt  time.Time `json:"occurred_at"`
}
