package payroll

type PayrollConfig struct {
	BaseSalary     *float64 `json:"baseSalary" binding:"required"`
	PerTripRate    *float64 `json:"perTripRate" binding:"required"`
	AbsencePenalty *float64 `json:"absencePenalty" binding:"required"`
}

type CalculateRequest struct {
	StartDate string        `json:"startDate" binding:"required"`
	EndDate   string        `json:"endDate" binding:"required"`
	Config    PayrollConfig `json:"config" binding:"required"`
}

type PayrollLine struct {
	CourierID   string  `json:"courierId"`
	CourierName string  `json:"courierName"`
	Trips       int     `json:"trips"`
	Absences    int     `json:"absences"`
	TripPay     float64 `json:"tripPay"`
	Gross       float64 `json:"gross"`
	Deductions  float64 `json:"deductions"`
	Net         float64 `json:"net"`
}

type CalculateResponse struct {
	StartDate string        `json:"startDate"`
	EndDate   string        `json:"endDate"`
	Lines     []PayrollLine `json:"lines"`
}

type SaveReportResponse struct {
	ReportID string `json:"reportId"`
}

type ReportSummary struct {
	ID          string `json:"id"`
	PeriodStart string `json:"periodStart"`
	PeriodEnd   string `json:"periodEnd"`
	GeneratedBy string `json:"generatedBy"`
	CreatedAt   string `json:"createdAt"`
}

type ReportDetail struct {
	ReportSummary
	BaseSalary     float64       `json:"baseSalary"`
	PerTripRate    float64       `json:"perTripRate"`
	AbsencePenalty float64       `json:"absencePenalty"`
	Lines          []PayrollLine `json:"lines"`
}
