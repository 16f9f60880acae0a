package filter

// 컬럼 식별자 (표시용 RecordView 필드 기준)
const (
	ColDate      = "date"
	ColSlipNo    = "slipNo"
	ColWasteName = "wasteName"
	ColAmount    = "amount"
	ColVehicle   = "vehicle"
	ColProcessor = "processor"
	ColNote      = "note"
	ColCategory  = "category"
	ColLocation  = "location"
)

// Criteria: 레코드 목록 필터 조건. 뷰 상태로만 존재하며 저장되지 않는다.
// 상세 날짜 범위(DateFrom/DateTo)와 신속 년/월(QuickYear/QuickMonth)은 상호 배타:
// Set 계열 메서드를 통해 한쪽을 지정하면 다른 쪽이 비워진다.
type Criteria struct {
	Search     string            // 전체 텍스트 검색 (대소문자 무시, 부분 일치)
	WasteType  string            // 폐기물명 완전 일치
	Processor  string            // 처리업체 완전 일치
	DateFrom   string            // "YYYY-MM-DD"
	DateTo     string            // "YYYY-MM-DD"
	QuickYear  string            // "YYYY"
	QuickMonth string            // "MM"
	Columns    map[string]string // 컬럼별 개별 필터
}

// SetDateRange: 상세 날짜 범위를 지정하고 신속 년/월 필터를 초기화한다.
func (c *Criteria) SetDateRange(from, to string) {
	c.DateFrom = from
	c.DateTo = to
	if from != "" || to != "" {
		c.QuickYear = ""
		c.QuickMonth = ""
	}
}

// SetQuickPeriod: 신속 년/월 필터를 지정하고 상세 날짜 범위를 초기화한다.
func (c *Criteria) SetQuickPeriod(year, month string) {
	c.QuickYear = year
	c.QuickMonth = month
	if year != "" || month != "" {
		c.DateFrom = ""
		c.DateTo = ""
	}
}

// SetColumn: 컬럼별 필터 값 지정. 빈 값이면 해당 컬럼 필터 제거.
func (c *Criteria) SetColumn(col, val string) {
	if c.Columns == nil {
		c.Columns = make(map[string]string)
	}
	if val == "" {
		delete(c.Columns, col)
		return
	}
	c.Columns[col] = val
}
