package excel

import (
	"reflect"
	"testing"
)

func TestParseCSVStripsBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("전표번호,처리량\nA-100,3.5\n")...)

	rows, err := parseCSV(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("행 수 = %d, want 2", len(rows))
	}
	if rows[0][0] != "전표번호" {
		t.Errorf("첫 헤더 = %q (BOM이 남아 있음?)", rows[0][0])
	}
}

func TestParseCSVUnevenRows(t *testing.T) {
	rows, err := parseCSV([]byte("a,b,c\n1,2\n3,4,5,6\n"))
	if err != nil {
		t.Fatalf("열 수가 다른 행에서 오류: %v", err)
	}
	want := [][]string{{"a", "b", "c"}, {"1", "2"}, {"3", "4", "5", "6"}}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %v", rows)
	}
}

func TestBuildRecords(t *testing.T) {
	header := []string{"인계번호", "인계일자", "폐기물종류(성상)", "위탁량", "처리자명"}
	rows := [][]string{
		{"A-100", "2025-01-15", "폐유기용제(액상)", "3.5", "해동이앤티"},
		{"", "2025-01-16", "폐유기용제(액상)", "1.0", "해동이앤티"},   // 전표번호 없음: 조용히 버림
		{"A-101", "2025-01-17", "폐합성수지(고상)", "abc", "제일자원"}, // 처리량 파싱 실패: skipped
		{"A-102", "2025-01-18", "폐합성수지(고상)", "1,250.5", "제일자원"},
		{"A-103", "2025-01-19", "폐산", "", "디에너지"}, // 빈 처리량은 0
	}

	records, skipped, columns := buildRecords(header, rows)

	if len(columns) != 5 || columns[0] != "인계번호" {
		t.Errorf("columns = %v", columns)
	}
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
	if len(records) != 3 {
		t.Fatalf("변환된 행 수 = %d, want 3", len(records))
	}

	first := records[0]
	if first.SlipNo != "A-100" || first.Amount != 3.5 || first.WasteType != "폐유기용제(액상)" {
		t.Errorf("첫 행 = %+v", first)
	}
	// 분류가 비어 있으면 처리업체 기반 자동 매핑
	if first.Category != "AO-Tar" {
		t.Errorf("자동 분류 = %q, want AO-Tar", first.Category)
	}
	if records[1].Amount != 1250.5 {
		t.Errorf("천단위 쉼표 처리량 = %v, want 1250.5", records[1].Amount)
	}
	if records[2].Amount != 0 {
		t.Errorf("빈 처리량 = %v, want 0", records[2].Amount)
	}
	// 상태 미지정은 completed
	if records[0].Status != "completed" {
		t.Errorf("기본 상태 = %q", records[0].Status)
	}
}

func TestAutoCategory(t *testing.T) {
	cases := []struct{ processor, want string }{
		{"(주)해동이앤티", "AO-Tar"},
		{"제일자원", "AO-TAR"},
		{"디에너지", "메탄올"},
		{"기타업체", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := autoCategory(c.processor); got != c.want {
			t.Errorf("autoCategory(%q) = %q, want %q", c.processor, got, c.want)
		}
	}
}
