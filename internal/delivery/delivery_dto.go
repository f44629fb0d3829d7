package delivery

type CreateDeliveryRequest struct {
	Ticket          string   `json:"ticket" binding:"required"`
	DestinationID   string   `json:"destinationId" binding:"required"`
	CourierID       string   `json:"courierId" binding:"required"`
	SellerID        string   `json:"sellerId" binding:"required"`
	PaymentMethodID string   `json:"paymentMethodId" binding:"required"`
	TotalAmount     *float64 `json:"totalAmount" binding:"required"`
}

type DeliveryResponse struct {
	ID            string  `json:"id"`
	Ticket        string  `json:"ticket"`
	CreationDate  string  `json:"creationDate"`
	DepartureTime string  `json:"departureTime"`
	ArrivalTime   *string `json:"arrivalTime"`
	TotalAmount   float64 `json:"totalAmount"`
	Status        string  `json:"status"`
}

type DeliveryListItem struct {
	ID                string  `json:"id"`
	Ticket            string  `json:"ticket"`
	DestinationPlace  string  `json:"destinationPlace"`
	CourierName       string  `json:"courierName"`
	SellerName        string  `json:"sellerName"`
	PaymentMethodName string  `json:"paymentMethodName"`
	CreationDate      string  `json:"creationDate"`
	DepartureTime     string  `json:"departureTime"`
	ArrivalTime       *string `json:"arrivalTime"`
	TotalAmount       float64 `json:"totalAmount"`
	Status            string  `json:"status"`
}
