package stats

import (
	"reflect"
	"testing"
	"time"

	"waste-backend/internal/models"
)

func TestGroupByPeriodMonthly(t *testing.T) {
	records := []models.RecordView{
		{Date: "2025-01-10", Amount: 1.5, Category: "폐공드럼 2"},
		{Date: "2025-01-20", Amount: 0.5, Category: "폐IBC 1"},
		{Date: "2025-03-05", Amount: 2.0, WasteName: "폐유기용제(액상)"},
		{Date: "", Amount: 9.9}, // 날짜 없는 건은 제외
	}

	got := GroupByPeriod(records, PeriodMonthly)
	if len(got) != 2 {
		t.Fatalf("기간 수 = %d, want 2", len(got))
	}

	jan := got[0]
	if jan.Key != "2025-01" || jan.Count != 2 || jan.Amount != 2.0 || jan.Drum != 2 || jan.IBC != 1 {
		t.Errorf("1월 집계 = %+v", jan)
	}

	mar := got[1]
	if mar.Key != "2025-03" || mar.Buckets[BucketLiquid] != 2.0 {
		t.Errorf("3월 집계 = %+v", mar)
	}
}

func TestGroupByPeriodEmptyInput(t *testing.T) {
	if got := GroupByPeriod(nil, PeriodDaily); len(got) != 0 {
		t.Errorf("빈 입력에 %d개 기간, want 0", len(got))
	}
}

func TestCumulative(t *testing.T) {
	got := Cumulative([]float64{2, 3, 5})
	if !reflect.DeepEqual(got, []float64{2, 5, 10}) {
		t.Errorf("Cumulative = %v, want [2 5 10]", got)
	}
	if got := Cumulative(nil); len(got) != 0 {
		t.Errorf("빈 입력 누적합 = %v", got)
	}
}

func TestMonthlyDetailSeriesFutureMonthsNil(t *testing.T) {
	now := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)
	records := []models.RecordView{
		{Date: "2025-03-01", Amount: 1.0, Category: "AO-Tar 폐공드럼 4"},
		{Date: "2025-08-10", Amount: 2.5, WasteName: "폐유기용제(액상)"},
		{Date: "2024-03-01", Amount: 7.0}, // 다른 연도는 제외
	}

	detail := MonthlyDetailSeries(records, 2025, now)

	if detail.Year != 2025 || len(detail.Labels) != 12 || detail.Labels[0] != "1월" {
		t.Fatalf("기본 형태 오류: %+v", detail)
	}

	// 8월(now)까지는 값, 9월부터는 nil
	if detail.Drum[7] == nil || detail.Drum[8] != nil {
		t.Errorf("현재 월 경계 오류: 8월=%v 9월=%v", detail.Drum[7], detail.Drum[8])
	}
	if detail.Drum[2] == nil || *detail.Drum[2] != 4 {
		t.Errorf("3월 드럼 수 = %v, want 4", detail.Drum[2])
	}
	if s := detail.Series[BucketLiquid]; s[7] == nil || *s[7] != 2.5 {
		t.Errorf("8월 액상 톤수 = %v, want 2.5", s[7])
	}
	// 데이터가 없는 과거 달은 nil이 아니라 0
	if detail.Drum[0] == nil || *detail.Drum[0] != 0 {
		t.Errorf("1월 드럼 수 = %v, want 0", detail.Drum[0])
	}
}

func TestMonthlyDetailSeriesPastYearAllTwelve(t *testing.T) {
	now := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)
	detail := MonthlyDetailSeries(nil, 2024, now)

	for m := 0; m < 12; m++ {
		if detail.Drum[m] == nil {
			t.Errorf("지난 연도 %d월이 nil", m+1)
		}
	}
}
