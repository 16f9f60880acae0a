package models

import (
	"strings"
)

// RecordView: 화면/필터/통계에서 쓰는 표시용 레코드 형태.
// DB 원본(snake_case)과 달리 프런트엔드가 소비하던 camelCase 필드를 유지한다.
type RecordView struct {
	ID        uint    `json:"id"`
	SlipNo    string  `json:"slipNo"`
	Date      string  `json:"date"` // 날짜 부분만 ("YYYY-MM-DD")
	WasteName string  `json:"wasteName"`
	Amount    float64 `json:"amount"`
	Carrier   string  `json:"carrier"`
	Vehicle   string  `json:"vehicle"`
	Processor string  `json:"processor"`
	Note      string  `json:"note"`     // note1 + ", " + note2
	Category  string  `json:"category"` // ao-tar 표기는 AO-Tar로 통일
	Location  string  `json:"location"`
	Status    string  `json:"status"`
}

// ToView: Record → RecordView 변환
func (r Record) ToView() RecordView {
	date := r.Date
	if i := strings.IndexByte(date, ' '); i >= 0 {
		date = date[:i]
	}

	note := r.Note1
	if r.Note2 != "" {
		note = note + ", " + r.Note2
	}

	location := r.Supplier
	if location == "" {
		location = DefaultLocation
	}

	return RecordView{
		ID:        r.ID,
		SlipNo:    r.SlipNo,
		Date:      date,
		WasteName: r.WasteType,
		Amount:    r.Amount,
		Carrier:   r.Carrier,
		Vehicle:   r.VehicleNo,
		Processor: r.Processor,
		Note:      note,
		Category:  normalizeCategoryLabel(r.Category),
		Location:  location,
		Status:    string(NormalizeStatus(r.Status)),
	}
}

// normalizeCategoryLabel: "ao-tar" 대소문자 변형을 "AO-Tar" 하나로 통일
func normalizeCategoryLabel(s string) string {
	lower := strings.ToLower(s)
	var b strings.Builder
	for i := 0; i < len(s); {
		if strings.HasPrefix(lower[i:], "ao-tar") {
			b.WriteString("AO-Tar")
			i += len("ao-tar")
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}
