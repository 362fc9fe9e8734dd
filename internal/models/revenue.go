package models

// Revenue is read-only reference data for the dashboard chart.
type Revenue struct {
	Month   string `gorm:"primaryKey;size:4"`
	Revenue int64
}
