package exampaper

import (
	"github.com/soseon203/exam-paper-korean/internal/hwpeq"
	"github.com/soseon203/exam-paper-korean/internal/measure"
	"github.com/soseon203/exam-paper-korean/internal/segment"
)

// ErrTranspileDepth 는 수식 구조가 너무 깊게 중첩되어 변환을 포기했을 때.
// 변환이 실패하는 유일한 경우다.
var ErrTranspileDepth = hwpeq.ErrDepthExceeded

// Segment 는 OCR 텍스트를 텍스트/수식/강조 구간 목록으로 분할한다.
//
// 네 단계를 순서대로 적용한다: __...__ 강조 분리, $...$ 수식 분리,
// 수식 구간의 최상위 쉼표 분할, 한·영 혼용 텍스트의 수식 승격 휴리스틱.
// 입력이 빈 문자열이면 빈 목록을 돌려준다.
func Segment(text string) []Span {
	return segment.Segment(text)
}

// JoinSpans 는 구간 목록을 원래 표기로 되돌린다. 수식은 $...$ 로,
// 강조는 __...__ 로 감싼다.
func JoinSpans(spans []Span) string {
	return segment.Join(spans)
}

// Transpile 는 LaTeX 수식 하나를 HWP 수식 스크립트로 변환한다.
//
// 실패는 ErrTranspileDepth 뿐이며, 모르는 명령은 오류 없이 제거된다.
//
//	script, err := exampaper.Transpile(`\sum_{i=0}^{n} i`)
//	// script == "SUM _{i=0} ^{n} i"
func Transpile(latex string) (string, error) {
	return hwpeq.Convert(latex)
}

// EstimateSize 는 변환된 수식의 렌더링 크기를 hwpunit 으로 추정한다.
// opts 로 폰트 측정기를 넘기지 않으면 기본 설정의 측정기를 쓴다.
func EstimateSize(latex, script string, opts ...Option) (width, height int) {
	options := applyOptions(opts...)
	est := measure.New(options.Config.Measurer)
	size := est.Estimate(latex, script)
	return size.Width, size.Height
}
