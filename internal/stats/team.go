package stats

import (
	"math"
	"sort"

	"waste-backend/internal/models"
)

// FixedTeams: 액상폐기물 요약이 인정하는 고정 9개 팀.
// 이 목록 밖의 팀 값은 요약에서 제외된다 (상세 조회에는 그대로 나온다).
var FixedTeams = []string{
	"생산1부",
	"생산2부",
	"제품운영팀",
	"공무팀",
	"경영지원팀",
	"품보팀",
	"연구1팀",
	"연구2팀",
	"연구3팀",
}

// TeamRow: 요약표의 한 행 (팀별 월별 배출량, 단위 MT)
type TeamRow struct {
	Team    string    `json:"team"`
	ByMonth []float64 `json:"byMonth"`
	Total   float64   `json:"total"`
}

// TeamSummary: 팀×월 요약표. kg 저장값을 MT(/1000)로 환산해 소수 둘째 자리까지 표기.
// 데이터가 없으면 Months가 빈 목록이다 (0으로 채운 표와 구분).
type TeamSummary struct {
	Months      []string  `json:"months"` // "YYYY-MM" 오름차순
	Rows        []TeamRow `json:"rows"`
	MonthTotals []float64 `json:"monthTotals"`
	GrandTotal  float64   `json:"grandTotal"`
}

// SummarizeByTeam: 액상폐기물 건들을 고정 팀 목록 × 월로 2단 집계
func SummarizeByTeam(entries []models.LiquidWasteEntry) TeamSummary {
	monthSet := make(map[string]struct{})
	kgByTeamMonth := make(map[string]map[string]float64)

	for _, e := range entries {
		monthSet[e.YearMonth] = struct{}{}
		if kgByTeamMonth[e.Team] == nil {
			kgByTeamMonth[e.Team] = make(map[string]float64)
		}
		kgByTeamMonth[e.Team][e.YearMonth] += e.AmountKG
	}

	if len(monthSet) == 0 {
		return TeamSummary{Months: []string{}}
	}

	months := make([]string, 0, len(monthSet))
	for m := range monthSet {
		months = append(months, m)
	}
	sort.Strings(months)

	summary := TeamSummary{
		Months:      months,
		Rows:        make([]TeamRow, 0, len(FixedTeams)),
		MonthTotals: make([]float64, len(months)),
	}

	// 합계는 반올림 전 원시값으로 누적하고 마지막에 한 번만 반올림한다
	monthTotals := make([]float64, len(months))
	var grandTotal float64

	for _, team := range FixedTeams {
		row := TeamRow{Team: team, ByMonth: make([]float64, len(months))}
		var rowTotal float64
		for i, m := range months {
			mt := kgByTeamMonth[team][m] / 1000
			row.ByMonth[i] = Round2(mt)
			rowTotal += mt
			monthTotals[i] += mt
		}
		row.Total = Round2(rowTotal)
		grandTotal += rowTotal
		summary.Rows = append(summary.Rows, row)
	}

	for i, v := range monthTotals {
		summary.MonthTotals[i] = Round2(v)
	}
	summary.GrandTotal = Round2(grandTotal)

	return summary
}

// Round2: 소수 둘째 자리 반올림 (표기 단위)
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
