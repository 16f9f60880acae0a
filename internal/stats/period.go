package stats

import (
	"sort"
	"strconv"
	"time"

	"waste-backend/internal/models"
)

// 집계 기간 단위
const (
	PeriodDaily   = "daily"
	PeriodMonthly = "monthly"
	PeriodYearly  = "yearly"
)

// PeriodAgg: 한 기간(일/월/연)의 집계 결과
type PeriodAgg struct {
	Key     string             `json:"key"` // "YYYY-MM-DD" | "YYYY-MM" | "YYYY"
	Count   int                `json:"count"`
	Amount  float64            `json:"amount"`
	Drum    int                `json:"drum"`
	IBC     int                `json:"ibc"`
	Buckets map[string]float64 `json:"buckets"` // 화학 버킷별 처리량(톤)
}

// PeriodKey: 날짜를 기간 키로 절단. 날짜 없는 레코드는 빈 키 (집계 제외 대상).
func PeriodKey(date, period string) string {
	if date == "" {
		return ""
	}
	switch period {
	case PeriodMonthly:
		if len(date) >= 7 {
			return date[:7]
		}
	case PeriodYearly:
		if len(date) >= 4 {
			return date[:4]
		}
	default: // daily
		return date
	}
	return date
}

// GroupByPeriod: 레코드를 기간별로 묶어 키 오름차순으로 돌려준다.
// 날짜 없는 레코드는 모든 기간 집계에서 제외된다.
// 빈 입력이면 빈 슬라이스 (0으로 채운 결과와 구분).
func GroupByPeriod(records []models.RecordView, period string) []PeriodAgg {
	byKey := make(map[string]*PeriodAgg)

	for _, r := range records {
		key := PeriodKey(r.Date, period)
		if key == "" {
			continue
		}

		agg, ok := byKey[key]
		if !ok {
			agg = &PeriodAgg{Key: key, Buckets: make(map[string]float64)}
			byKey[key] = agg
		}

		agg.Count++
		agg.Amount += r.Amount
		agg.Drum += DrumCount(r.Category)
		agg.IBC += IBCCount(r.Category)
		agg.Buckets[Classify(r.Category, r.WasteName)] += r.Amount
	}

	out := make([]PeriodAgg, 0, len(byKey))
	for _, agg := range byKey {
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Cumulative: 기간순 처리량 수열의 누적합. 입력과 같은 길이.
func Cumulative(amounts []float64) []float64 {
	out := make([]float64, len(amounts))
	var sum float64
	for i, a := range amounts {
		sum += a
		out[i] = sum
	}
	return out
}

// MonthlyDetail: 한 해의 월별 상세 시리즈 (12칸 고정).
// 현재 연도면 미래 월은 nil. "아직 데이터 없음"을 0과 구분해 차트에 전달한다.
type MonthlyDetail struct {
	Year   int                   `json:"year"`
	Labels []string              `json:"labels"` // "1월" ~ "12월"
	Drum   []*int                `json:"drum"`
	IBC    []*int                `json:"ibc"`
	Series map[string][]*float64 `json:"series"` // 버킷별 톤수
}

var monthLabels = []string{"1월", "2월", "3월", "4월", "5월", "6월", "7월", "8월", "9월", "10월", "11월", "12월"}

// MonthlyDetailSeries: 해당 연도 레코드의 월별 수량/톤수 상세 집계
func MonthlyDetailSeries(records []models.RecordView, year int, now time.Time) MonthlyDetail {
	type monthAgg struct {
		drum, ibc int
		buckets   map[string]float64
	}
	months := make([]monthAgg, 12)
	for i := range months {
		months[i].buckets = make(map[string]float64)
	}

	yearPrefix := strconv.Itoa(year)
	for _, r := range records {
		if r.Date == "" || len(r.Date) < 7 || r.Date[:4] != yearPrefix {
			continue
		}
		m := monthIndex(r.Date)
		if m < 0 {
			continue
		}
		months[m].drum += DrumCount(r.Category)
		months[m].ibc += IBCCount(r.Category)
		months[m].buckets[Classify(r.Category, r.WasteName)] += r.Amount
	}

	// 현재 연도라면 이번 달까지만 값 채우고 이후는 nil
	lastIndex := 11
	if year == now.Year() {
		lastIndex = int(now.Month()) - 1
	}

	detail := MonthlyDetail{
		Year:   year,
		Labels: append([]string(nil), monthLabels...),
		Drum:   make([]*int, 12),
		IBC:    make([]*int, 12),
		Series: make(map[string][]*float64, len(Buckets)),
	}
	for _, b := range Buckets {
		detail.Series[b] = make([]*float64, 12)
	}

	for m := 0; m <= lastIndex && m < 12; m++ {
		d, ib := months[m].drum, months[m].ibc
		detail.Drum[m] = &d
		detail.IBC[m] = &ib
		for _, b := range Buckets {
			v := months[m].buckets[b]
			detail.Series[b][m] = &v
		}
	}

	return detail
}

func monthIndex(date string) int {
	if len(date) < 7 {
		return -1
	}
	m := int(date[5]-'0')*10 + int(date[6]-'0')
	if m < 1 || m > 12 {
		return -1
	}
	return m - 1
}

