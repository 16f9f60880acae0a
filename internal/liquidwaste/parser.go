package liquidwaste

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"waste-backend/internal/models"

	"github.com/xuri/excelize/v2"
)

var (
	ErrNoListSheet = errors.New("입고리스트 시트를 찾을 수 없습니다")
	ErrNoHeaderRow = errors.New("헤더 행(배출일)을 찾을 수 없습니다")
	ErrNoData      = errors.New("파싱된 데이터가 없습니다")
)

// ParseWorkbook: 팀별 액상폐기물 입고리스트 워크북 파싱.
// 시트명에 "입고리스트"가 포함된 시트를 찾고, 시트명 앞의 "YY.M"에서 연월을 얻는다.
// (예: "26.1 팀별 액상폐기물 입고리스트" → "2026-01")
func ParseWorkbook(r io.Reader) (string, []models.LiquidWasteEntry, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return "", nil, fmt.Errorf("엑셀 파일을 열 수 없습니다: %w", err)
	}
	defer f.Close()

	var sheetName, yearMonth string
	for _, name := range f.GetSheetList() {
		if !strings.Contains(name, "입고리스트") {
			continue
		}
		ym, ok := yearMonthFromSheetName(name)
		if !ok {
			continue
		}
		sheetName, yearMonth = name, ym
		break
	}
	if sheetName == "" {
		return "", nil, ErrNoListSheet
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return "", nil, fmt.Errorf("시트를 읽을 수 없습니다: %w", err)
	}

	// 헤더 행: 앞쪽 10행 × 10열 안에서 "배출일"이 있는 행
	headerRow := -1
	for r := 0; r < len(rows) && r < 10; r++ {
		for c := 0; c < len(rows[r]) && c < 10; c++ {
			if strings.Contains(rows[r][c], "배출일") {
				headerRow = r
				break
			}
		}
		if headerRow >= 0 {
			break
		}
	}
	if headerRow < 0 {
		return "", nil, ErrNoHeaderRow
	}

	var entries []models.LiquidWasteEntry
	for r := headerRow + 1; r < len(rows); r++ {
		row := rows[r]

		team := strings.TrimSpace(cellAt(row, 4)) // E열: 배출부서
		amountStr := cellAt(row, 7)               // H열: 반입량(kg)

		if team == "" {
			// 재고 표기 행이거나 빈 행
			continue
		}
		if strings.Contains(amountStr, "재고") {
			continue
		}

		quantity, _ := strconv.Atoi(strings.TrimSpace(cellAt(row, 6)))
		amountKG, _ := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(amountStr), ",", ""), 64)

		entries = append(entries, models.LiquidWasteEntry{
			YearMonth:     yearMonth,
			DischargeDate: strings.TrimSpace(cellAt(row, 0)),
			ReceiveDate:   strings.TrimSpace(cellAt(row, 1)),
			WasteType:     strings.TrimSpace(cellAt(row, 2)),
			Content:       strings.TrimSpace(cellAt(row, 3)),
			Team:          team,
			Discharger:    strings.TrimSpace(cellAt(row, 5)),
			QuantityEA:    quantity,
			AmountKG:      amountKG,
		})
	}

	if len(entries) == 0 {
		return "", nil, ErrNoData
	}

	return yearMonth, entries, nil
}

// yearMonthFromSheetName: "26.1 팀별 ..." → "2026-01"
func yearMonthFromSheetName(name string) (string, bool) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", false
	}

	ym := strings.Split(parts[0], ".")
	if len(ym) != 2 {
		return "", false
	}

	y, errY := strconv.Atoi(ym[0])
	m, errM := strconv.Atoi(ym[1])
	if errY != nil || errM != nil || m < 1 || m > 12 {
		return "", false
	}
	if y < 100 {
		y += 2000
	}

	return fmt.Sprintf("%04d-%02d", y, m), true
}

func cellAt(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}
