package calendar

import (
	"fmt"
	"time"

	"waste-backend/internal/models"
)

// 한 달 그리드는 항상 6주 × 7일 = 42칸
const GridCells = 42

// EventCell: 달력 칸에 붙는 일정 항목
type EventCell struct {
	ID      uint   `json:"id"`
	Content string `json:"content"`
	Status  string `json:"status"`
	Style   int    `json:"style"` // id 기반 고정 스타일 번호 (1~6), 순서 의미 없음
}

// DayCell: 달력의 한 칸
type DayCell struct {
	Day      int         `json:"day"`
	InMonth  bool        `json:"inMonth"` // 이전/다음 달 채움 칸이면 false
	Date     string      `json:"date"`    // "YYYY-MM-DD" (이번 달 칸만)
	Weekday  int         `json:"weekday"` // 0=일요일
	Holiday  string      `json:"holiday,omitempty"`
	IsToday  bool        `json:"isToday"`
	Events   []EventCell `json:"events,omitempty"`
}

// BuildMonthGrid: (연, 월)의 6주 그리드 생성.
// 앞쪽은 이전 달 꼬리, 뒤쪽은 다음 달 머리로 채워 42칸을 보장한다.
func BuildMonthGrid(year, month int, schedules []models.Schedule, hp HolidayProvider, now time.Time) []DayCell {
	firstDay := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	startWeekday := int(firstDay.Weekday()) // 0=일요일
	totalDays := daysInMonth(year, month)
	prevLastDay := daysInMonth(prevYM(year, month))

	// 날짜별 일정 묶기
	byDate := make(map[string][]EventCell)
	for _, s := range schedules {
		byDate[s.Date] = append(byDate[s.Date], EventCell{
			ID:      s.ID,
			Content: s.Content,
			Status:  s.Status,
			Style:   int(s.ID%6) + 1,
		})
	}

	isCurrentMonth := now.Year() == year && int(now.Month()) == month

	cells := make([]DayCell, 0, GridCells)

	// 이전 달 꼬리
	for i := 0; i < startWeekday; i++ {
		cells = append(cells, DayCell{
			Day:     prevLastDay - startWeekday + 1 + i,
			Weekday: i,
		})
	}

	// 이번 달
	for d := 1; d <= totalDays; d++ {
		dateStr := fmt.Sprintf("%04d-%02d-%02d", year, month, d)
		weekday := (startWeekday + d - 1) % 7

		cell := DayCell{
			Day:     d,
			InMonth: true,
			Date:    dateStr,
			Weekday: weekday,
			IsToday: isCurrentMonth && now.Day() == d,
			Events:  byDate[dateStr],
		}
		if hp != nil {
			if name, ok := hp.Holiday(year, month, d); ok {
				cell.Holiday = name
			}
		}
		cells = append(cells, cell)
	}

	// 다음 달 머리 (42칸이 될 때까지)
	for d := 1; len(cells) < GridCells; d++ {
		cells = append(cells, DayCell{
			Day:     d,
			Weekday: len(cells) % 7,
		})
	}

	return cells
}

// Navigate: delta 개월 이동. 1월 이전은 전년 12월로, 12월 이후는 익년 1월로 넘어간다.
func Navigate(year, month, delta int) (int, int) {
	month += delta
	for month < 1 {
		year--
		month += 12
	}
	for month > 12 {
		year++
		month -= 12
	}
	return year, month
}

func daysInMonth(year, month int) int {
	// 다음 달 0일 = 이번 달 마지막 날
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func prevYM(year, month int) (int, int) {
	return Navigate(year, month, -1)
}
