package stats

import (
	"regexp"
	"strconv"
	"strings"
)

// 화학 분류 버킷. 모든 레코드는 정확히 하나의 버킷에 속한다.
const (
	BucketAOTar    = "AO-Tar"
	BucketMethanol = "메탄올"
	BucketSolid    = "유해화학물질(고상)"
	BucketLiquid   = "유해화학물질(액상)"
	BucketEtc      = "기타"
)

// Buckets: 차트/표 출력 순서
var Buckets = []string{BucketAOTar, BucketMethanol, BucketSolid, BucketLiquid, BucketEtc}

// ChemicalRule: (조건, 버킷) 한 쌍. 위에서부터 차례로 평가되며 먼저 맞은 규칙이 이긴다.
type ChemicalRule struct {
	Bucket string
	Match  func(category, wasteName string) bool
}

// ChemicalRules: 분류 우선순위.
// 비고(category)의 ao-tar/메탄올 표기가 폐기물명보다 우선하고,
// 그 다음 폐기물명의 고상/액상 표기로 세분화한다.
var ChemicalRules = []ChemicalRule{
	{BucketAOTar, func(category, _ string) bool {
		return strings.Contains(category, "ao-tar")
	}},
	{BucketMethanol, func(category, _ string) bool {
		return strings.Contains(category, "메탄올")
	}},
	{BucketSolid, func(_, wasteName string) bool {
		return strings.Contains(wasteName, "고상") || strings.Contains(wasteName, "고체")
	}},
	{BucketLiquid, func(_, wasteName string) bool {
		return strings.Contains(wasteName, "액상") || strings.Contains(wasteName, "액체")
	}},
}

// Classify: 비고와 폐기물명으로 버킷 결정. 어떤 규칙에도 맞지 않으면 기타.
func Classify(category, wasteName string) string {
	lowerCategory := strings.ToLower(strings.TrimSpace(category))
	lowerWasteName := strings.ToLower(strings.TrimSpace(wasteName))

	for _, rule := range ChemicalRules {
		if rule.Match(lowerCategory, lowerWasteName) {
			return rule.Bucket
		}
	}
	return BucketEtc
}

var (
	drumPattern = regexp.MustCompile(`폐공드럼\s*(\d+)`)
	ibcPattern  = regexp.MustCompile(`폐IBC\s*(\d+)`)
)

// DrumCount: 비고에서 "폐공드럼 N" 패턴의 수량 추출. 첫 매치만 집계.
func DrumCount(category string) int {
	return firstCount(drumPattern, category)
}

// IBCCount: 비고에서 "폐IBC N" 패턴의 수량 추출. 첫 매치만 집계.
func IBCCount(category string) int {
	return firstCount(ibcPattern, category)
}

func firstCount(re *regexp.Regexp, s string) int {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
