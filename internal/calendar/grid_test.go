package calendar

import (
	"testing"
	"time"

	"waste-backend/internal/models"
)

func TestBuildMonthGridFebruary2024(t *testing.T) {
	now := time.Date(2024, 2, 15, 9, 0, 0, 0, time.UTC)
	schedules := []models.Schedule{
		{Content: "정기 수거", Date: "2024-02-15", Status: "scheduled"},
	}
	schedules[0].ID = 7

	cells := BuildMonthGrid(2024, 2, schedules, KoreanHolidays{}, now)

	if len(cells) != GridCells {
		t.Fatalf("칸 수 = %d, want %d", len(cells), GridCells)
	}

	// 2024-02-01은 목요일 → 앞에 일~수 4칸이 이전 달 꼬리
	for i := 0; i < 4; i++ {
		if cells[i].InMonth {
			t.Errorf("%d번 칸이 이번 달로 표시됨", i)
		}
	}
	first := cells[4]
	if !first.InMonth || first.Day != 1 || first.Weekday != 4 || first.Date != "2024-02-01" {
		t.Errorf("1일 칸 = %+v", first)
	}

	// 이전 달 꼬리는 1월 28~31일
	if cells[0].Day != 28 || cells[3].Day != 31 {
		t.Errorf("이전 달 꼬리 = %d..%d, want 28..31", cells[0].Day, cells[3].Day)
	}

	// 설날 (음력 표)
	tenth := cells[4+9]
	if tenth.Date != "2024-02-10" || tenth.Holiday != "설날" {
		t.Errorf("2024-02-10 칸 = %+v", tenth)
	}

	// 오늘 표시와 일정
	fifteenth := cells[4+14]
	if !fifteenth.IsToday {
		t.Errorf("오늘 칸이 표시되지 않음: %+v", fifteenth)
	}
	if len(fifteenth.Events) != 1 || fifteenth.Events[0].Content != "정기 수거" {
		t.Fatalf("일정 = %+v", fifteenth.Events)
	}
	if style := fifteenth.Events[0].Style; style != int(7%6)+1 {
		t.Errorf("스타일 번호 = %d, want %d", style, int(7%6)+1)
	}

	// 뒤쪽은 다음 달 머리
	last := cells[GridCells-1]
	if last.InMonth {
		t.Errorf("마지막 칸이 이번 달로 표시됨: %+v", last)
	}
}

func TestBuildMonthGridSolarHoliday(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	cells := BuildMonthGrid(2025, 3, nil, KoreanHolidays{}, now)

	for _, c := range cells {
		if c.Date == "2025-03-01" {
			if c.Holiday != "3.1절" {
				t.Errorf("2025-03-01 공휴일 = %q, want 3.1절", c.Holiday)
			}
			return
		}
	}
	t.Fatal("2025-03-01 칸을 찾지 못함")
}

func TestKoreanHolidaysLookupOrder(t *testing.T) {
	h := KoreanHolidays{}

	// 양력 표가 우선
	if name, ok := h.Holiday(2025, 1, 1); !ok || name != "신정" {
		t.Errorf("신정 = %q %v", name, ok)
	}
	// 연도별 음력 표
	if name, ok := h.Holiday(2025, 1, 29); !ok || name != "설날" {
		t.Errorf("2025 설날 = %q %v", name, ok)
	}
	// 표 밖의 날
	if _, ok := h.Holiday(2025, 1, 15); ok {
		t.Error("평일이 공휴일로 표시됨")
	}
	// 표 범위 밖의 연도는 양력만 인식
	if _, ok := h.Holiday(2030, 2, 17); ok {
		t.Error("표에 없는 연도의 음력 공휴일이 표시됨")
	}
}

func TestNavigate(t *testing.T) {
	cases := []struct {
		year, month, delta  int
		wantYear, wantMonth int
	}{
		{2025, 1, -1, 2024, 12},
		{2025, 12, 1, 2026, 1},
		{2025, 6, 3, 2025, 9},
		{2025, 2, -14, 2023, 12},
		{2025, 11, 14, 2027, 1},
	}

	for _, c := range cases {
		y, m := Navigate(c.year, c.month, c.delta)
		if y != c.wantYear || m != c.wantMonth {
			t.Errorf("Navigate(%d, %d, %d) = (%d, %d), want (%d, %d)",
				c.year, c.month, c.delta, y, m, c.wantYear, c.wantMonth)
		}
	}
}
