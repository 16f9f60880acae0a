package models

import "time"

type RecordStatus string

const (
	StatusPending    RecordStatus = "pending"    // 수거 대기
	StatusDispatched RecordStatus = "dispatched" // 배차 완료
	StatusCollecting RecordStatus = "collecting" // 수거 중
	StatusCompleted  RecordStatus = "completed"  // 처리 완료
)

// NormalizeStatus: 네 가지 상태값 외의 값은 completed로 취급
func NormalizeStatus(s string) RecordStatus {
	switch RecordStatus(s) {
	case StatusPending, StatusDispatched, StatusCollecting:
		return RecordStatus(s)
	default:
		return StatusCompleted
	}
}

// DefaultLocation: 장소 미지정 시 기본값
const DefaultLocation = "공장"

// Record: 지정폐기물 처리(인계) 기록
type Record struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SlipNo    string    `gorm:"size:100;uniqueIndex;not null" json:"slip_no"` // 전표번호(인계번호)
	Date      string    `gorm:"size:10;index" json:"date"`                    // 처리일 "YYYY-MM-DD", 미정이면 빈 문자열
	WasteType string    `gorm:"size:200" json:"waste_type"`                   // 폐기물명
	Amount    float64   `gorm:"not null;default:0" json:"amount"`             // 처리량(톤)
	Carrier   string    `gorm:"size:100" json:"carrier"`                      // 운반업체
	VehicleNo string    `gorm:"size:50" json:"vehicle_no"`                    // 차량번호
	Processor string    `gorm:"size:100" json:"processor"`                    // 처리업체
	Note1     string    `gorm:"size:200" json:"note1"`                        // 처리방법
	Note2     string    `gorm:"size:200" json:"note2"`
	Category  string    `gorm:"size:200" json:"category"` // 비고 (폐공드럼 N, 폐IBC N 패턴 포함 가능)
	Supplier  string    `gorm:"size:100" json:"supplier"` // 장소, 비어있으면 공장
	Status    string    `gorm:"size:20;default:completed" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
