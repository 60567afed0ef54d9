// Package measure 수식의 렌더링 크기(hwpunit) 추정
//
// 변환된 수식을 본문 텍스트와 인라인으로 배치하려면 한글(HWP)이
// 요구하는 절대 크기(width/height, 1 hwpunit = 1/100 pt)를 미리
// 알아야 한다. 1차 경로는 주입된 폰트 측정기로 원본 수식의 실제
// 렌더링 폭을 재고, 측정기가 없거나 실패하면 변환된 스크립트의
// 가시 문자 수를 세는 휴리스틱으로 폴백한다. 어느 경로든 항상
// 양수 크기를 돌려준다 — 추정은 바깥으로 실패하지 않는다.
package measure

import (
	"regexp"
	"strings"

	"golang.org/x/text/width"

	"github.com/soseon203/exam-paper-korean/internal/scan"
)

// Measurer 는 렌더링된 텍스트의 픽셀 크기를 재는 외부 협력자다.
// 구현은 상태를 갖지 않는 함수 의존성으로 취급된다.
type Measurer interface {
	Measure(text string, points float64) (w, h float64, err error)
}

// Size 추정된 수식 크기 (hwpunit)
type Size struct {
	Width  int
	Height int
}

// HWP 수식 렌더러 기준 상수
const (
	basePoints = 10.0 // 기준 글꼴 크기 (pt)
	fracScale  = 0.85 // 분수 내용 축소 비율
	barPadding = 300  // 분수 가로줄 좌우 여백 (hwpunit)
	groupGap   = 200  // 분수와 앞뒤 식 사이 간격 (hwpunit)
	minWidth   = 800  // 폭 하한 — 빈 수식도 0 에 가까운 박스가 되지 않는다

	heightPlain = 1200
	heightSqrt  = 1600
	heightFrac  = 2400
	heightBoth  = 3200
)

// Estimator 수식 크기 추정기. Measurer 가 nil 이면 항상 휴리스틱 경로.
type Estimator struct {
	m Measurer
}

// New 는 주어진 측정기로 Estimator 를 만든다. m 은 nil 일 수 있다.
func New(m Measurer) *Estimator {
	return &Estimator{m: m}
}

// Estimate 는 수식의 렌더링 크기를 추정한다.
//
// latex 는 원본 수식(1차 측정 경로), script 는 변환된 HWP 수식
// 스크립트(폴백 경로)다. 측정 불가는 내부에서 흡수된다.
func (e *Estimator) Estimate(latex, script string) Size {
	if e.m != nil {
		if sz, ok := e.measureLatex(latex); ok {
			return sz
		}
	}
	return e.Fallback(script)
}

var fracRe = regexp.MustCompile(`\\d?frac\s*\{`)

// measureLatex 는 폰트 측정기로 수식 폭을 잰다.
//
// 분수가 있으면 분자·분모를 축소 크기로 개별 측정해 합성한다 —
// HWP 수식 렌더러가 분수 내용을 본문보다 작게 그리기 때문이다.
func (e *Estimator) measureLatex(latex string) (Size, bool) {
	loc := fracRe.FindStringIndex(latex)
	if loc == nil {
		w, ok := e.measureWidth(latex, basePoints)
		if !ok {
			return Size{}, false
		}
		h := heightPlain
		if strings.Contains(latex, `\sqrt`) {
			h = heightSqrt
		}
		return Size{Width: maxInt(w, minWidth), Height: h}, true
	}

	prefix := strings.TrimSpace(latex[:loc[0]])
	rest := latex[loc[1]-1:] // 여는 '{' 포함

	numerator, afterNum, _ := scan.ExtractBrace(rest)
	denominator, suffix, _ := scan.ExtractBrace(afterNum)
	suffix = strings.TrimSpace(suffix)

	wPrefix, ok := e.measureWidth(prefix, basePoints)
	if !ok {
		return Size{}, false
	}
	wNum, ok := e.measureWidth(numerator, basePoints*fracScale)
	if !ok {
		return Size{}, false
	}
	wDen, ok := e.measureWidth(denominator, basePoints*fracScale)
	if !ok {
		return Size{}, false
	}
	wSuffix, ok := e.measureWidth(suffix, basePoints)
	if !ok {
		return Size{}, false
	}

	w := wPrefix
	if wPrefix > 0 {
		w += groupGap
	}
	w += maxInt(wNum, wDen) + barPadding
	if wSuffix > 0 {
		w += groupGap + wSuffix
	}

	h := heightFrac
	if strings.Contains(latex, `\sqrt`) {
		h = heightBoth
	}
	return Size{Width: maxInt(w, minWidth), Height: h}, true
}

// measureWidth 는 식 하나의 렌더링 폭을 hwpunit 로 돌려준다.
func (e *Estimator) measureWidth(expr string, points float64) (int, bool) {
	if strings.TrimSpace(expr) == "" {
		return 0, true
	}
	w, _, err := e.m.Measure(expr, points)
	if err != nil {
		return 0, false
	}
	return int(w * 100), true
}

// ─────────────────────────────────────────────
// 폴백 휴리스틱
// ─────────────────────────────────────────────

const (
	charWidth   = 650 // 가시 문자 하나의 폭 (hwpunit)
	widthPad    = 200
	stackFactor = 1.4 // 분수/근호가 있으면 폭이 넓어진다
)

// Fallback 은 변환된 HWP 수식 스크립트의 가시 문자 수로 크기를 추정한다.
//
// 분수가 있으면 분자/분모 중 넓은 쪽이 폭을 결정한다 (합이 아니라 max).
func (e *Estimator) Fallback(script string) Size {
	hasFraction := strings.Contains(script, "over") || strings.Contains(script, "atop")
	hasRoot := strings.Contains(script, "sqrt") || strings.Contains(script, "root")

	var visible float64
	if hasFraction {
		parts := strings.Split(strings.ReplaceAll(script, "atop", "over"), "over")
		for _, p := range parts {
			if c := visualCharCount(p); c > visible {
				visible = c
			}
		}
	} else {
		visible = visualCharCount(script)
	}

	w := maxInt(int(visible*charWidth)+widthPad, minWidth)
	if hasFraction {
		w = int(float64(w) * stackFactor)
	}
	if hasRoot {
		w = int(float64(w) * stackFactor)
	}

	h := heightPlain
	if hasFraction {
		h = heightFrac
	}
	if hasRoot && h < heightSqrt {
		h = heightSqrt
	}
	if hasFraction && hasRoot && h < heightBoth {
		h = heightBoth
	}
	return Size{Width: w, Height: h}
}

var (
	supSubBraceRe = regexp.MustCompile(`[\^_]\{[^{}]*\}`)
	supSubCharRe  = regexp.MustCompile(`[\^_]\S`)
)

// visualCharCount 는 스크립트가 실제로 그리는 글리프 수를 센다.
//
// 기호/연산자 토큰은 원문 길이와 무관하게 글리프 1개, 구조 키워드는
// 0개로 친다. 첨자 내용은 작게 그려지므로 절반 가중치다. 한글 등
// 전각 문자는 글리프 2칸을 차지한다.
func visualCharCount(text string) float64 {
	s := text
	for _, kw := range symbolKeywords {
		s = strings.ReplaceAll(s, kw, "G")
	}
	for _, kw := range largeOpKeywords {
		s = strings.ReplaceAll(s, kw, "W")
	}
	for _, kw := range structKeywords {
		// 변환기는 구조 토큰을 대문자로도 낸다 (LEFT/RIGHT/CASES)
		s = strings.ReplaceAll(s, kw, "")
		s = strings.ReplaceAll(s, strings.ToUpper(kw), "")
	}

	var supSub float64
	for _, m := range supSubBraceRe.FindAllString(s, -1) {
		content := strings.ReplaceAll(m[2:len(m)-1], " ", "")
		supSub += glyphUnits(content)
	}
	noBrace := supSubBraceRe.ReplaceAllString(s, "")
	supSub += float64(len(supSubCharRe.FindAllString(noBrace, -1)))

	for _, ch := range []string{"{", "}", "^", "_"} {
		s = strings.ReplaceAll(s, ch, "")
	}
	total := glyphUnits(strings.TrimSpace(strings.ReplaceAll(s, " ", "")))

	base := total - supSub
	if base < 0 {
		base = 0
	}
	return base + supSub*0.5
}

// glyphUnits 는 전각 문자를 2칸으로 계산한 글리프 수를 돌려준다.
func glyphUnits(s string) float64 {
	var n float64
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
