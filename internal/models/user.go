package models

import "time"

type UserRole string

const (
	RoleAdmin  UserRole = "admin"  // 등록/수정/삭제 가능
	RoleViewer UserRole = "viewer" // 조회 전용
)

type User struct {
	ID           uint     `gorm:"primaryKey"`
	Name         string   `gorm:"size:100;not null"`
	Email        string   `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string   `gorm:"size:255;not null"`
	Role         UserRole `gorm:"size:20;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
