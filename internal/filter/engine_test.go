package filter

import (
	"reflect"
	"testing"

	"waste-backend/internal/models"
)

func sampleRecords() []models.RecordView {
	return []models.RecordView{
		{ID: 1, SlipNo: "A-100", Date: "2025-01-15", WasteName: "폐유기용제(액상)", Amount: 3.5, Processor: "해동이앤티", Category: "AO-Tar 폐공드럼 3", Location: "공장"},
		{ID: 2, SlipNo: "A-101", Date: "2025-02-10", WasteName: "폐합성수지(고상)", Amount: 1.2, Processor: "제일자원", Category: "", Location: "공장"},
		{ID: 3, SlipNo: "B-200", Date: "2025-02-20", WasteName: "폐유기용제(액상)", Amount: 2.0, Processor: "디에너지", Category: "메탄올", Location: "연구동"},
		{ID: 4, SlipNo: "B-201", Date: "2024-12-31", WasteName: "기타폐기물", Amount: 0.8, Processor: "해동이앤티", Category: "", Location: "공장"},
		{ID: 5, SlipNo: "C-300", Date: "", WasteName: "날짜없는건", Amount: 1.0, Processor: "디에너지", Category: "", Location: "공장"},
	}
}

func ids(records []models.RecordView) []uint {
	out := make([]uint, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestApplySearchMatchesAnyField(t *testing.T) {
	records := sampleRecords()

	got := Apply(records, Criteria{Search: "메탄올"}, "", "", "")
	if !reflect.DeepEqual(ids(got), []uint{3}) {
		t.Errorf("검색 결과 = %v, want [3]", ids(got))
	}

	// 대소문자 무시
	got = Apply(records, Criteria{Search: "ao-tar"}, "", "", "")
	if !reflect.DeepEqual(ids(got), []uint{1}) {
		t.Errorf("대소문자 무시 검색 결과 = %v, want [1]", ids(got))
	}
}

func TestApplyExactVsSubstringColumns(t *testing.T) {
	records := sampleRecords()

	// 전표번호는 부분 일치
	var c Criteria
	c.SetColumn(ColSlipNo, "a-10")
	got := Apply(records, c, "", "", "")
	if !reflect.DeepEqual(ids(got), []uint{1, 2}) {
		t.Errorf("전표번호 부분 일치 = %v, want [1 2]", ids(got))
	}

	// 처리업체는 완전 일치
	var c2 Criteria
	c2.SetColumn(ColProcessor, "해동")
	if got := Apply(records, c2, "", "", ""); len(got) != 0 {
		t.Errorf("처리업체 부분값으로 %d건 일치, want 0", len(got))
	}
	c2.SetColumn(ColProcessor, "해동이앤티")
	got = Apply(records, c2, "", "", "")
	if !reflect.DeepEqual(ids(got), []uint{1, 4}) {
		t.Errorf("처리업체 완전 일치 = %v, want [1 4]", ids(got))
	}
}

func TestApplyDateRangeOverridesQuickPeriod(t *testing.T) {
	records := sampleRecords()

	var c Criteria
	c.SetQuickPeriod("2024", "")
	c.SetDateRange("2025-02-01", "2025-02-28")

	got := Apply(records, c, "", "", "")
	if !reflect.DeepEqual(ids(got), []uint{2, 3}) {
		t.Errorf("날짜 범위 필터 = %v, want [2 3]", ids(got))
	}
	if c.QuickYear != "" || c.QuickMonth != "" {
		t.Errorf("날짜 범위 지정 후에도 신속 필터가 남아 있음: %q %q", c.QuickYear, c.QuickMonth)
	}
}

func TestApplyQuickPeriodSkipsDatelessRecords(t *testing.T) {
	records := sampleRecords()

	var c Criteria
	c.SetQuickPeriod("2025", "02")

	got := Apply(records, c, "", "", "")
	// ID 5는 날짜가 없어 신속 필터를 통과한다
	if !reflect.DeepEqual(ids(got), []uint{2, 3, 5}) {
		t.Errorf("신속 년/월 필터 = %v, want [2 3 5]", ids(got))
	}
}

func TestApplyQuickMonthWithoutYear(t *testing.T) {
	records := []models.RecordView{
		{ID: 1, Date: "2024-05-10"},
		{ID: 2, Date: "2025-05-03"},
		{ID: 3, Date: "2025-06-01"},
	}

	// 연도 없이 월만 지정하면 모든 연도의 해당 월이 걸린다
	var c Criteria
	c.SetQuickPeriod("", "05")

	got := Apply(records, c, "", "", "")
	if !reflect.DeepEqual(ids(got), []uint{1, 2}) {
		t.Errorf("월 단독 필터 = %v, want [1 2]", ids(got))
	}
}

func TestSetQuickPeriodClearsDateRange(t *testing.T) {
	records := sampleRecords()

	var c Criteria
	c.SetDateRange("2025-02-01", "2025-02-28")
	c.SetQuickPeriod("2024", "")

	if c.DateFrom != "" || c.DateTo != "" {
		t.Errorf("신속 필터 지정 후에도 날짜 범위가 남아 있음: %q %q", c.DateFrom, c.DateTo)
	}

	got := Apply(records, c, "", "", "")
	if !reflect.DeepEqual(ids(got), []uint{4, 5}) {
		t.Errorf("신속 연도 필터 = %v, want [4 5]", ids(got))
	}
}

func TestApplyExcludeColumn(t *testing.T) {
	records := sampleRecords()

	var c Criteria
	c.SetColumn(ColProcessor, "디에너지")
	c.SetColumn(ColLocation, "연구동")

	// 처리업체 컬럼 자체를 제외하면 장소 필터만 적용된다
	got := Apply(records, c, "", "", ColProcessor)
	if !reflect.DeepEqual(ids(got), []uint{3}) {
		t.Errorf("컬럼 제외 필터 = %v, want [3]", ids(got))
	}
}

func TestApplySortStable(t *testing.T) {
	records := []models.RecordView{
		{ID: 1, Date: "2025-02-10", SlipNo: "x"},
		{ID: 2, Date: "2025-01-01", SlipNo: "y"},
		{ID: 3, Date: "2025-02-10", SlipNo: "z"},
	}

	got := Apply(records, Criteria{}, ColDate, "asc", "")
	if !reflect.DeepEqual(ids(got), []uint{2, 1, 3}) {
		t.Errorf("오름차순 정렬 = %v, want [2 1 3]", ids(got))
	}

	got = Apply(records, Criteria{}, ColDate, "desc", "")
	// 동률(1, 3)은 입력 순서 유지
	if !reflect.DeepEqual(ids(got), []uint{1, 3, 2}) {
		t.Errorf("내림차순 정렬 = %v, want [1 3 2]", ids(got))
	}
}

func TestApplyIdempotent(t *testing.T) {
	records := sampleRecords()
	c := Criteria{Search: "공장"}

	once := Apply(records, c, ColDate, "asc", "")
	twice := Apply(once, c, ColDate, "asc", "")
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("같은 조건 재적용 결과가 다름: %v vs %v", ids(once), ids(twice))
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	before := ids(records)

	Apply(records, Criteria{}, ColDate, "desc", "")
	if !reflect.DeepEqual(ids(records), before) {
		t.Errorf("원본 슬라이스 순서가 변경됨: %v", ids(records))
	}
}

func TestPaginate(t *testing.T) {
	records := make([]models.RecordView, 120)
	for i := range records {
		records[i] = models.RecordView{ID: uint(i + 1)}
	}

	if got := PageCount(120); got != 3 {
		t.Errorf("PageCount(120) = %d, want 3", got)
	}
	if got := PageCount(0); got != 0 {
		t.Errorf("PageCount(0) = %d, want 0", got)
	}

	if got := Paginate(records, 1); len(got) != 50 || got[0].ID != 1 {
		t.Errorf("1페이지 = %d건 시작 ID %d, want 50건 ID 1", len(got), got[0].ID)
	}
	if got := Paginate(records, 3); len(got) != 20 || got[0].ID != 101 {
		t.Errorf("3페이지 = %d건, want 20건", len(got))
	}
	if got := Paginate(records, 4); len(got) != 0 {
		t.Errorf("범위 밖 페이지 = %d건, want 0", len(got))
	}
	if got := Paginate(records, 0); len(got) != 50 {
		t.Errorf("0 이하 페이지는 1페이지 취급, got %d건", len(got))
	}
}
