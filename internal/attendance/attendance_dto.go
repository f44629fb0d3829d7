package attendance

type UpsertAttendanceRequest struct {
	CourierID   string  `json:"courierId" binding:"required"`
	EntryTime   *string `json:"entryTime"`
	ExitTime    *string `json:"exitTime"`
	Status      *string `json:"status"`
	Observation string  `json:"observation"`
}

type AttendanceResponse struct {
	CourierID   string  `json:"courierId"`
	CourierName string  `json:"courierName,omitempty"`
	Date        string  `json:"date"`
	EntryTime   *string `json:"entryTime"`
	ExitTime    *string `json:"exitTime"`
	Status      string  `json:"status"`
	Observation string  `json:"observation"`
}
