package seller

type CreateSellerRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateSellerRequest struct {
	Name string `json:"name" binding:"required"`
}

type SellerResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
