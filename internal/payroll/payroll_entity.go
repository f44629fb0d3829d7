package payroll

import (
	"time"

	"github.com/google/uuid"
)

type PayrollReport struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	PeriodStart    time.Time `gorm:"type:date;not null"`
	PeriodEnd      time.Time `gorm:"type:date;not null"`
	BaseSalary     float64   `gorm:"type:numeric(12,2);not null"`
	PerTripRate    float64   `gorm:"type:numeric(12,2);not null"`
	AbsencePenalty float64   `gorm:"type:numeric(12,2);not null"`
	GeneratedBy    string    `gorm:"type:varchar(120);not null"`
	CreatedAt      time.Time

	Lines []PayrollReportLine `gorm:"foreignKey:ReportID"`
}

func (PayrollReport) TableName() string {
	return "payroll_reports"
}

type PayrollReportLine struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ReportID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CourierID   uuid.UUID `gorm:"type:uuid;not null"`
	CourierName string    `gorm:"type:varchar(120);not null"`
	Trips       int       `gorm:"not null"`
	Absences    int       `gorm:"not null"`
	TripPay     float64   `gorm:"type:numeric(12,2);not null"`
	Gross       float64   `gorm:"type:numeric(12,2);not null"`
	Deductions  float64   `gorm:"type:numeric(12,2);not null"`
	Net         float64   `gorm:"type:numeric(12,2);not null"`
}

func (PayrollReportLine) TableName() string {
	return "payroll_report_lines"
}
