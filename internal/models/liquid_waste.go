package models

import "time"

// LiquidWasteEntry: 팀별 액상폐기물 월간 입고 건
type LiquidWasteEntry struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	YearMonth     string    `gorm:"size:7;index;not null" json:"year_month"` // "YYYY-MM"
	DischargeDate string    `gorm:"size:10" json:"discharge_date"`           // 배출일
	ReceiveDate   string    `gorm:"size:10" json:"receive_date"`             // 반입일
	WasteType     string    `gorm:"size:200" json:"waste_type"`
	Content       string    `gorm:"size:300" json:"content"`
	Team          string    `gorm:"size:100;index" json:"team"` // 배출부서
	Discharger    string    `gorm:"size:100" json:"discharger"` // 배출자
	QuantityEA    int       `gorm:"default:0" json:"quantity_ea"`
	AmountKG      float64   `gorm:"default:0" json:"amount_kg"`
	CreatedAt     time.Time `json:"created_at"`
}
