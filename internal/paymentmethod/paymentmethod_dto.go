package paymentmethod

type CreatePaymentMethodRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdatePaymentMethodRequest struct {
	Name string `json:"name" binding:"required"`
}

type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

type PaymentMethodResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}
