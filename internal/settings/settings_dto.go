package settings

type SaveSettingsRequest struct {
	BaseSalary     *float64 `json:"baseSalary" binding:"required"`
	PerTripRate    *float64 `json:"perTripRate" binding:"required"`
	AbsencePenalty *float64 `json:"absencePenalty" binding:"required"`
}

type SettingsResponse struct {
	BaseSalary     float64 `json:"baseSalary"`
	PerTripRate    float64 `json:"perTripRate"`
	AbsencePenalty float64 `json:"absencePenalty"`
}
