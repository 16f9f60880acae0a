package excel

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"

	"waste-backend/internal/database"
	"waste-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// 업로드 파일의 다양한 한글/영문 헤더를 내부 필드로 매핑
var headerSynonyms = map[string][]string{
	"slip_no":    {"slip_no", "전표번호", "인계번호", "인계번호(*)", "전자인계번호", "관리번호", "No", "no"},
	"date":       {"date", "날짜", "처리일", "인계일자", "인계일자(*)", "일자"},
	"waste_type": {"waste_type", "폐기물종류", "폐기물명", "폐기물종류(성상)", "폐기물종류(성상)(*)", "품명"},
	"amount":     {"amount", "중량", "처리량", "처리량(톤)", "위탁량", "위탁량(*)", "수량"},
	"carrier":    {"carrier", "운반업체", "운반자명", "운반업체명", "운반자명(*)"},
	"vehicle_no": {"vehicle_no", "차량번호", "차량 번호"},
	"processor":  {"processor", "처리업체", "처리자명", "처리업체명", "처리자명(*)"},
	"note1":      {"note1", "비고1", "처리방법", "비고"},
	"note2":      {"note2", "비고2"},
	"category":   {"category", "분류", "폐기물분류", "비고"},
	"supplier":   {"supplier", "공급업체", "장소"},
	"status":     {"status"},
}

type ImportResult struct {
	Added   int      `json:"added"`
	Skipped int      `json:"skipped"`
	Columns []string `json:"columns"`
}

// POST /api/import/excel
func ImportExcelHandler() fiber.Handler {
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

		excelFile, err := excelize.OpenReader(file)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "엑셀 처리 중 오류: "+err.Error())
		}
		defer excelFile.Close()

		sheetList := excelFile.GetSheetList()
		if len(sheetList) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "엑셀 파일에 시트가 없습니다")
		}
		rows, err := excelFile.GetRows(sheetList[0])
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "시트를 읽을 수 없습니다: "+err.Error())
		}
		if len(rows) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "엑셀 파일이 비어 있습니다")
		}

		result := importRows(rows[0], rows[1:])
		return c.JSON(result)
	}
}

// POST /api/import/csv
func ImportCSVHandler() fiber.Handler {
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

		var buf bytes.Buffer
		if _, err := buf.ReadFrom(file); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "파일을 읽을 수 없습니다")
		}

		rows, err := parseCSV(buf.Bytes())
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "CSV 처리 중 오류: "+err.Error())
		}
		if len(rows) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "CSV 파일이 비어 있습니다")
		}

		result := importRows(rows[0], rows[1:])
		return c.JSON(result)
	}
}

func parseCSV(data []byte) ([][]string, error) {
	// 스프레드시트 호환용 BOM 제거
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

// importRows: 행들을 Record로 변환해 병합한다. 중복 전표번호는 skipped로 센다.
func importRows(header []string, rows [][]string) ImportResult {
	records, skipped, columns := buildRecords(header, rows)

	result := ImportResult{Skipped: skipped, Columns: columns}
	for i := range records {
		if err := database.DB.Create(&records[i]).Error; err != nil {
			// 전표번호 unique 제약 위반 등은 중복으로 간주
			result.Skipped++
			continue
		}
		result.Added++
	}
	return result
}

// buildRecords: 헤더 동의어 매핑으로 행을 Record로 변환한다.
// 전표번호가 없는 행은 조용히 버리고, 처리량이 숫자가 아닌 행은 skipped로 센다.
func buildRecords(header []string, rows [][]string) (records []models.Record, skipped int, columns []string) {
	columns = make([]string, len(header))
	for i, h := range header {
		columns[i] = strings.ReplaceAll(strings.TrimSpace(h), "\n", " ")
	}

	// 필드 → 컬럼 인덱스 (동의어 목록의 우선순위 순)
	index := make(map[string]int)
	for field, synonyms := range headerSynonyms {
		for _, syn := range synonyms {
			for i, col := range columns {
				if col == syn {
					if _, ok := index[field]; !ok {
						index[field] = i
					}
				}
			}
			if _, ok := index[field]; ok {
				break
			}
		}
	}

	cell := func(row []string, field string) string {
		i, ok := index[field]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	for _, row := range rows {
		slipNo := cell(row, "slip_no")
		if slipNo == "" || strings.EqualFold(slipNo, "nan") || slipNo == "None" {
			continue
		}

		amountStr := strings.ReplaceAll(cell(row, "amount"), ",", "")
		var amount float64
		if amountStr != "" {
			parsed, err := strconv.ParseFloat(amountStr, 64)
			if err != nil {
				skipped++
				continue
			}
			amount = parsed
		}

		processor := cell(row, "processor")
		category := cell(row, "category")
		if category == "" {
			category = autoCategory(processor)
		}

		status := cell(row, "status")
		if status == "" {
			status = string(models.StatusCompleted)
		}

		records = append(records, models.Record{
			SlipNo:    slipNo,
			Date:      cell(row, "date"),
			WasteType: cell(row, "waste_type"),
			Amount:    amount,
			Carrier:   cell(row, "carrier"),
			VehicleNo: cell(row, "vehicle_no"),
			Processor: processor,
			Note1:     cell(row, "note1"),
			Note2:     cell(row, "note2"),
			Category:  category,
			Supplier:  cell(row, "supplier"),
			Status:    string(models.NormalizeStatus(status)),
		})
	}

	return records, skipped, columns
}

// autoCategory: 처리업체명 기반 분류 자동 매핑 (분류값이 비어 있을 때만)
func autoCategory(processor string) string {
	switch {
	case strings.Contains(processor, "해동이앤티"):
		return "AO-Tar"
	case strings.Contains(processor, "제일자원"):
		return "AO-TAR"
	case strings.Contains(processor, "디에너지"):
		return "메탄올"
	}
	return ""
}
