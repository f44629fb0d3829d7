package settings

import "time"

// Settings is a single-row table; SettingsRowID is the only id ever used.
const SettingsRowID = 1

type Settings struct {
	ID             int     `gorm:"primaryKey"`
	BaseSalary     float64 `gorm:"type:numeric(12,2);not null;default:0"`
	PerTripRate    float64 `gorm:"type:numeric(12,2);not null;default:0"`
	AbsencePenalty float64 `gorm:"type:numeric(12,2);not null;default:0"`
	UpdatedAt      time.Time
}

func (Settings) TableName() string {
	return "settings"
}
