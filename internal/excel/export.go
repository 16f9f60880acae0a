package excel

import (
	"bytes"
	"strconv"
	"strings"

	"waste-backend/internal/database"
	"waste-backend/internal/filter"
	"waste-backend/internal/models"
	"waste-backend/internal/records"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// 엑셀/CSV 출력 공통 헤더 (화면 표시 순서와 동일)
var exportHeaders = []string{"처리일", "전표번호", "폐기물명", "처리량(톤)", "차량번호", "처리업체", "처리방법", "비고", "장소"}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// GET /api/export/excel: 전체 기록을 한글 헤더 엑셀로 추출
func ExportExcelHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var recs []models.Record
		if err := database.DB.Order("date DESC, id DESC").Find(&recs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "기록을 불러올 수 없습니다")
		}

		out, err := buildWorkbook("AllRecords", recordRows(recs))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "엑셀 파일 생성 실패")
		}

		c.Set("Content-Type", xlsxContentType)
		c.Set("Content-Disposition", `attachment; filename=waste_records_export.xlsx`)
		return c.Send(out)
	}
}

// POST /api/export/excel/filtered: 화면에서 필터링된 표시용 행들을 그대로 엑셀로
func ExportFilteredHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var views []models.RecordView
		if err := c.BodyParser(&views); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "잘못된 요청 본문입니다")
		}

		out, err := buildWorkbook("FilteredRecords", viewRows(views))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "엑셀 파일 생성 실패")
		}

		c.Set("Content-Type", xlsxContentType)
		c.Set("Content-Disposition", `attachment; filename=waste_records_filtered.xlsx`)
		return c.Send(out)
	}
}

// GET /api/export/csv: 필터 조건(쿼리 파라미터)을 적용한 CSV 추출.
// 스프레드시트 호환을 위해 UTF-8 BOM을 붙인다.
func ExportCSVHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		views, err := records.LoadViews()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "기록을 불러올 수 없습니다")
		}

		criteria := criteriaFromQuery(c)
		sortField := c.Query("sort", filter.ColDate)
		sortDir := c.Query("dir", "desc")

		filtered := filter.Apply(views, criteria, sortField, sortDir, "")

		c.Set("Content-Type", "text/csv; charset=utf-8")
		c.Set("Content-Disposition", `attachment; filename=waste_records.csv`)
		return c.Send(BuildRecordsCSV(filtered))
	}
}

// criteriaFromQuery: 쿼리 파라미터 → 필터 조건.
// 상세 날짜와 신속 년/월이 함께 오면 Set 계열이 상호 배타를 강제한다.
func criteriaFromQuery(c *fiber.Ctx) filter.Criteria {
	var criteria filter.Criteria
	criteria.Search = c.Query("search")
	criteria.WasteType = c.Query("wasteType")
	criteria.Processor = c.Query("processor")
	criteria.SetQuickPeriod(c.Query("quickYear"), c.Query("quickMonth"))
	criteria.SetDateRange(c.Query("dateFrom"), c.Query("dateTo"))
	return criteria
}

// BuildRecordsCSV: 표시용 행들을 BOM 포함 CSV 바이트로 변환
func BuildRecordsCSV(views []models.RecordView) []byte {
	var b bytes.Buffer
	b.WriteString("\uFEFF")
	b.WriteString(strings.Join([]string{"날짜", "전표", "폐기물", "처리량(톤)", "차량번호", "처리업체", "처리방법", "비고", "장소"}, ","))
	b.WriteByte('\n')

	for _, v := range views {
		row := []string{
			v.Date,
			v.SlipNo,
			v.WasteName,
			strconv.FormatFloat(v.Amount, 'f', -1, 64),
			v.Vehicle,
			v.Processor,
			v.Note,
			v.Category,
			v.Location,
		}
		for i := range row {
			row[i] = csvField(row[i])
		}
		b.WriteString(strings.Join(row, ","))
		b.WriteByte('\n')
	}

	return b.Bytes()
}

func csvField(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

// recordRows: DB 원본 그대로 출력. 처리방법은 note1만, 비고는 저장된 분류값 그대로.
func recordRows(recs []models.Record) [][]interface{} {
	rows := make([][]interface{}, 0, len(recs))
	for _, r := range recs {
		location := r.Supplier
		if location == "" {
			location = models.DefaultLocation
		}
		rows = append(rows, []interface{}{
			r.Date,
			r.SlipNo,
			r.WasteType,
			r.Amount,
			r.VehicleNo,
			r.Processor,
			r.Note1,
			r.Category,
			location,
		})
	}
	return rows
}

// viewRows: 화면 표시용 행을 표시된 모습 그대로 출력
func viewRows(views []models.RecordView) [][]interface{} {
	rows := make([][]interface{}, 0, len(views))
	for _, v := range views {
		rows = append(rows, []interface{}{
			v.Date,
			v.SlipNo,
			v.WasteName,
			v.Amount,
			v.Vehicle,
			v.Processor,
			v.Note,
			v.Category,
			v.Location,
		})
	}
	return rows
}

func buildWorkbook(sheet string, rows [][]interface{}) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	for i, h := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for rowIdx, row := range rows {
		for colIdx, val := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
