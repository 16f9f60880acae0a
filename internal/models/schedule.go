package models

import "time"

type ScheduleStatus string

const (
	SchedulePending   ScheduleStatus = "pending"
	ScheduleCompleted ScheduleStatus = "completed"
)

// Schedule: 수거 일정 (하나의 일정은 하나의 날짜에 속함)
type Schedule struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      string    `gorm:"size:10;index;not null" json:"date"` // "YYYY-MM-DD"
	Content   string    `gorm:"size:500;not null" json:"content"`
	Status    string    `gorm:"size:20;default:pending" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
