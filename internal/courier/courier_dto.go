package courier

type CreateCourierRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateCourierRequest struct {
	Name string `json:"name" binding:"required"`
}

type CourierResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
