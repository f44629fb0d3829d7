package destination

type CreateDestinationRequest struct {
	Place   string `json:"place" binding:"required"`
	Address string `json:"address" binding:"required"`
}

type UpdateDestinationRequest struct {
	Place   string `json:"place" binding:"required"`
	Address string `json:"address" binding:"required"`
}

type DestinationResponse struct {
	ID      string `json:"id"`
	Place   string `json:"place"`
	Address string `json:"address"`
}
