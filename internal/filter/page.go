package filter

import "waste-backend/internal/models"

// 페이지 크기는 50으로 고정, 페이지 번호는 1부터 시작
const PageSize = 50

// PageCount: 전체 건수에 필요한 페이지 수
func PageCount(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + PageSize - 1) / PageSize
}

// Paginate: 필터·정렬이 끝난 결과에서 해당 페이지 구간만 잘라낸다.
// 범위를 벗어난 페이지는 빈 슬라이스.
func Paginate(records []models.RecordView, page int) []models.RecordView {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * PageSize
	if start >= len(records) {
		return []models.RecordView{}
	}
	end := start + PageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}
