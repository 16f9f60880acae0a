package stats

import (
	"strconv"
	"strings"
	"time"

	"waste-backend/internal/models"
	"waste-backend/internal/records"

	"github.com/gofiber/fiber/v2"
)

type StatsResponse struct {
	Year       string      `json:"year"`
	Period     string      `json:"period"`
	Periods    []PeriodAgg `json:"periods"`
	Cumulative []float64   `json:"cumulative"` // Periods와 같은 순서의 누적 처리량
	DrumTotal  int         `json:"drumTotal"`
	IBCTotal   int         `json:"ibcTotal"`
	Total      float64     `json:"total"`
}

// GET /api/stats?year=2025&period=monthly
func StatsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		views, err := records.LoadViews()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "기록을 불러올 수 없습니다")
		}

		year := c.Query("year", strconv.Itoa(time.Now().Year()))
		period := c.Query("period", PeriodMonthly)
		switch period {
		case PeriodDaily, PeriodMonthly, PeriodYearly:
		default:
			return fiber.NewError(fiber.StatusBadRequest, "period는 daily|monthly|yearly 중 하나여야 합니다")
		}

		yearRecords := filterByYear(views, year)
		periods := GroupByPeriod(yearRecords, period)

		amounts := make([]float64, len(periods))
		var drumTotal, ibcTotal int
		var total float64
		for i, p := range periods {
			amounts[i] = p.Amount
			drumTotal += p.Drum
			ibcTotal += p.IBC
			total += p.Amount
		}

		return c.JSON(StatsResponse{
			Year:       year,
			Period:     period,
			Periods:    periods,
			Cumulative: Cumulative(amounts),
			DrumTotal:  drumTotal,
			IBCTotal:   ibcTotal,
			Total:      total,
		})
	}
}

// GET /api/stats/detail?year=2025
// 월별 상세 시리즈. 현재 연도의 미래 월은 null로 내려간다.
func StatsDetailHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		views, err := records.LoadViews()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "기록을 불러올 수 없습니다")
		}

		now := time.Now()
		year, err := strconv.Atoi(c.Query("year", strconv.Itoa(now.Year())))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "year 값이 올바르지 않습니다")
		}

		return c.JSON(MonthlyDetailSeries(views, year, now))
	}
}

func filterByYear(views []models.RecordView, year string) []models.RecordView {
	out := make([]models.RecordView, 0, len(views))
	for _, v := range views {
		if v.Date != "" && strings.HasPrefix(v.Date, year) {
			out = append(out, v)
		}
	}
	return out
}
