package filter

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"waste-backend/internal/models"
)

// Apply: 전체 레코드에서 조건에 맞는 것만 골라 정렬한 새 슬라이스를 돌려준다.
// excludeColumn이 지정되면 해당 컬럼의 개별 필터는 건너뛴다.
// "다른 모든 필터를 적용했을 때 이 컬럼에 남는 값" 계산용 (연쇄 필터).
func Apply(records []models.RecordView, c Criteria, sortField, sortDir, excludeColumn string) []models.RecordView {
	search := strings.ToLower(c.Search)

	out := make([]models.RecordView, 0, len(records))
	for _, r := range records {
		if !matches(r, c, search, excludeColumn) {
			continue
		}
		out = append(out, r)
	}

	sortRecords(out, sortField, sortDir)
	return out
}

func matches(r models.RecordView, c Criteria, search, excludeColumn string) bool {
	if search != "" && !strings.Contains(strings.ToLower(serialize(r)), search) {
		return false
	}
	if c.WasteType != "" && r.WasteName != c.WasteType {
		return false
	}
	if c.Processor != "" && r.Processor != c.Processor {
		return false
	}

	// 컬럼별 상세 필터링
	for col, val := range c.Columns {
		if val == "" || col == excludeColumn {
			continue
		}
		rVal := ColumnValue(r, col)

		// 전표번호와 분류는 부분 일치, 나머지는 완전 일치
		if col == ColSlipNo || col == ColCategory {
			if !strings.Contains(strings.ToLower(rVal), strings.ToLower(val)) {
				return false
			}
		} else if rVal != val {
			return false
		}
	}

	// 우선순위 1: 상세 날짜 범위
	if c.DateFrom != "" && r.Date < c.DateFrom {
		return false
	}
	if c.DateTo != "" && r.Date > c.DateTo {
		return false
	}

	// 우선순위 2: 신속 년/월 (상세 날짜 조건이 하나도 없을 때만)
	if c.DateFrom == "" && c.DateTo == "" {
		if c.QuickYear != "" && r.Date != "" && !strings.HasPrefix(r.Date, c.QuickYear) {
			return false
		}
		if c.QuickMonth != "" && r.Date != "" && monthSegment(r.Date) != c.QuickMonth {
			return false
		}
	}

	return true
}

// ColumnValue: 컬럼 식별자에 해당하는 레코드 필드의 문자열 형태
func ColumnValue(r models.RecordView, col string) string {
	switch col {
	case ColDate:
		return r.Date
	case ColSlipNo:
		return r.SlipNo
	case ColWasteName:
		return r.WasteName
	case ColAmount:
		return strconv.FormatFloat(r.Amount, 'f', -1, 64)
	case ColVehicle:
		return r.Vehicle
	case ColProcessor:
		return r.Processor
	case ColNote:
		return r.Note
	case ColCategory:
		return r.Category
	case ColLocation:
		return r.Location
	}
	return ""
}

// sortRecords: 단일 필드, 문자열 사전순 정렬. 동률은 입력 순서를 유지한다 (stable).
func sortRecords(records []models.RecordView, field, dir string) {
	if field == "" {
		return
	}
	desc := dir != "asc"
	sort.SliceStable(records, func(i, j int) bool {
		vi := ColumnValue(records[i], field)
		vj := ColumnValue(records[j], field)
		if desc {
			return vi > vj
		}
		return vi < vj
	})
}

// serialize: 전체 텍스트 검색용 레코드 직렬화 (모든 필드 포함)
func serialize(r models.RecordView) string {
	b, err := json.Marshal(r)
	if err != nil {
		return ""
	}
	return string(b)
}

func monthSegment(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
