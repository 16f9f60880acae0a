package liquidwaste

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"waste-backend/internal/database"
	"waste-backend/internal/models"
	"waste-backend/internal/stats"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GET /api/liquid-waste?year=2025
func ListHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := database.DB.Order("year_month, team, receive_date")

		if year := c.Query("year"); year != "" {
			q = q.Where("year_month LIKE ?", year+"-%")
		}

		var entries []models.LiquidWasteEntry
		if err := q.Find(&entries).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "액상폐기물 데이터를 불러올 수 없습니다")
		}
		return c.JSON(entries)
	}
}

// POST /api/liquid-waste/upload
// 해당 월의 기존 데이터를 지우고 업로드 내용으로 통째로 교체한다.
func UploadHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "업로드 파일이 없습니다")
		}
		file, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "파일을 열 수 없습니다")
		}
		defer file.Close()

		yearMonth, entries, err := ParseWorkbook(file)
		if err != nil {
			if errors.Is(err, ErrNoListSheet) || errors.Is(err, ErrNoHeaderRow) || errors.Is(err, ErrNoData) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusBadRequest, "Excel 처리 중 오류: "+err.Error())
		}

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("year_month = ?", yearMonth).Delete(&models.LiquidWasteEntry{}).Error; err != nil {
				return err
			}
			return tx.Create(&entries).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "데이터 저장 실패")
		}

		return c.JSON(fiber.Map{
			"success":    true,
			"year_month": yearMonth,
			"count":      len(entries),
			"message":    fmt.Sprintf("%s 데이터 %d건 저장 완료", yearMonth, len(entries)),
		})
	}
}

// DELETE /api/liquid-waste/:yearMonth
func DeleteMonthHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		yearMonth := c.Params("yearMonth")

		res := database.DB.Where("year_month = ?", yearMonth).Delete(&models.LiquidWasteEntry{})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "데이터 삭제 실패")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("%s 데이터가 없습니다", yearMonth))
		}

		return c.JSON(fiber.Map{
			"success": true,
			"deleted": res.RowsAffected,
			"message": fmt.Sprintf("%s 데이터 %d건 삭제", yearMonth, res.RowsAffected),
		})
	}
}

// GET /api/liquid-waste/summary
// 고정 9개 팀 × 월 요약 (MT 단위). 목록 밖의 팀은 여기서 빠진다.
func SummaryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var entries []models.LiquidWasteEntry
		if err := database.DB.Find(&entries).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "액상폐기물 데이터를 불러올 수 없습니다")
		}
		return c.JSON(stats.SummarizeByTeam(entries))
	}
}

// GET /api/liquid-waste/summary/csv: 요약표를 BOM 포함 CSV로
func SummaryCSVHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var entries []models.LiquidWasteEntry
		if err := database.DB.Find(&entries).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "액상폐기물 데이터를 불러올 수 없습니다")
		}

		summary := stats.SummarizeByTeam(entries)

		c.Set("Content-Type", "text/csv; charset=utf-8")
		c.Set("Content-Disposition", `attachment; filename=liquid_waste_summary.csv`)
		return c.Send(buildSummaryCSV(summary))
	}
}

// buildSummaryCSV: 팀명 + 월별 컬럼("YY.MM") + 합계, 마지막에 총합계 행
func buildSummaryCSV(summary stats.TeamSummary) []byte {
	var b bytes.Buffer
	b.WriteString("\uFEFF")

	header := []string{"팀명"}
	for _, m := range summary.Months {
		header = append(header, shortMonth(m))
	}
	header = append(header, "합계")
	b.WriteString(strings.Join(header, ","))
	b.WriteByte('\n')

	for _, row := range summary.Rows {
		fields := []string{row.Team}
		for _, v := range row.ByMonth {
			fields = append(fields, formatMT(v))
		}
		fields = append(fields, strconv.FormatFloat(row.Total, 'f', 2, 64))
		b.WriteString(strings.Join(fields, ","))
		b.WriteByte('\n')
	}

	total := []string{"합 계"}
	for _, v := range summary.MonthTotals {
		total = append(total, strconv.FormatFloat(v, 'f', 2, 64))
	}
	total = append(total, strconv.FormatFloat(summary.GrandTotal, 'f', 2, 64))
	b.WriteString(strings.Join(total, ","))
	b.WriteByte('\n')

	return b.Bytes()
}

// shortMonth: "2025-10" → "25.10"
func shortMonth(yearMonth string) string {
	parts := strings.Split(yearMonth, "-")
	if len(parts) != 2 || len(parts[0]) != 4 {
		return yearMonth
	}
	return parts[0][2:] + "." + parts[1]
}

// formatMT: 값이 없는 칸은 "-" 표기
func formatMT(v float64) string {
	if v == 0 {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
