package stats

type CourierStats struct {
	CourierID   string  `json:"courierId"`
	CourierName string  `json:"courierName"`
	Trips       int     `json:"trips"`
	Revenue     float64 `json:"revenue"`
	Earnings    float64 `json:"earnings"`
}

type MonthlyStatsResponse struct {
	Month int            `json:"month"`
	Year  int            `json:"year"`
	Rows  []CourierStats `json:"rows"`
}

type PeriodTotals struct {
	Month          int     `json:"month"`
	Year           int     `json:"year"`
	ActiveCouriers int     `json:"activeCouriers"`
	Trips          int     `json:"trips"`
	Revenue        float64 `json:"revenue"`
	Earnings       float64 `json:"earnings"`
}

type MonthOverMonthResponse struct {
	Current          PeriodTotals `json:"current"`
	Previous         PeriodTotals `json:"previous"`
	TripsDeltaPct    float64      `json:"tripsDeltaPct"`
	EarningsDeltaPct float64      `json:"earningsDeltaPct"`
}
