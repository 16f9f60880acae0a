package calendar

import "fmt"

// HolidayProvider: (연, 월, 일) → 공휴일 이름. 해당 없음이면 ok=false.
// 연도 범위 확장은 새 Provider 등록으로 처리한다 (음력 계산 라이브러리 없이 표 관리).
type HolidayProvider interface {
	Holiday(year, month, day int) (string, bool)
}

// KoreanHolidays: 양력 고정 공휴일 + 음력/대체공휴일 하드코딩 표 (2024~2026)
type KoreanHolidays struct{}

// 양력 고정 공휴일 (연도 무관, "MM-DD" 키)
var solarHolidays = map[string]string{
	"01-01": "신정",
	"03-01": "3.1절",
	"05-05": "어린이날",
	"06-06": "현충일",
	"08-15": "광복절",
	"10-03": "개천절",
	"10-09": "한글날",
	"12-25": "성탄절",
}

// 음력 공휴일 및 대체공휴일 ("YYYY-MM-DD" 키, 주요 연도만)
var lunarHolidays = map[string]string{
	// 2024
	"2024-02-09": "설날 연휴",
	"2024-02-10": "설날",
	"2024-02-11": "설날 연휴",
	"2024-02-12": "대체공휴일",
	"2024-04-10": "국회의원 선거",
	"2024-05-06": "대체공휴일",
	"2024-05-15": "부처님오신날",
	"2024-09-16": "추석 연휴",
	"2024-09-17": "추석",
	"2024-09-18": "추석 연휴",

	// 2025
	"2025-01-28": "설날 연휴",
	"2025-01-29": "설날",
	"2025-01-30": "설날 연휴",
	"2025-03-03": "대체공휴일",
	"2025-05-05": "부처님오신날",
	"2025-05-06": "대체공휴일",
	"2025-10-05": "추석 연휴",
	"2025-10-06": "추석",
	"2025-10-07": "추석 연휴",
	"2025-10-08": "대체공휴일",

	// 2026
	"2026-02-16": "설날 연휴",
	"2026-02-17": "설날",
	"2026-02-18": "설날 연휴",
	"2026-03-02": "대체공휴일",
	"2026-05-24": "부처님오신날",
	"2026-05-25": "대체공휴일",
	"2026-08-17": "대체공휴일",
	"2026-09-24": "추석 연휴",
	"2026-09-25": "추석",
	"2026-09-26": "추석 연휴",
	"2026-10-05": "대체공휴일",
}

// Holiday: 양력 표를 먼저 확인하고, 없으면 연도별 음력/대체공휴일 표를 확인한다.
// 어느 쪽에도 없으면 공휴일 아님 (에러 아님).
func (KoreanHolidays) Holiday(year, month, day int) (string, bool) {
	md := fmt.Sprintf("%02d-%02d", month, day)
	if name, ok := solarHolidays[md]; ok {
		return name, true
	}

	ymd := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
	if name, ok := lunarHolidays[ymd]; ok {
		return name, true
	}

	return "", false
}
