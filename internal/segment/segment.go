// Package segment OCR 텍스트를 타입이 있는 span 열로 분할
//
// 입력은 자연어(한글)와 수식 표기가 섞인 한 덩어리의 문자열이고,
// 출력은 PlainText / Equation / Emphasized 로 분류된 순서 있는 span 열이다.
//
// 패스는 고정된 순서로 적용된다:
//  1. 강조 패스: __내용__ → Emphasized
//  2. 명시적 수식 패스: $...$ → Equation
//  3. 쉼표 분할 패스: Equation span 안의 최상위 쉼표에서 분할
//  4. 혼합 휴리스틱 패스: 한글 문장 속의 수식 run 을 분리
//
// 뒤 패스는 앞 패스가 PlainText 로 남긴 span 만 다시 본다.
// 어떤 패스도 실패하지 않는다 — 애매한 입력은 가장 보수적인
// 분류(PlainText)로 남는다.
package segment

import (
	"strings"
)

// Kind span 의 분류
type Kind int

const (
	// PlainText 자연어 텍스트
	PlainText Kind = iota
	// Equation 수식 (LaTeX 원본)
	Equation
	// Emphasized 강조 텍스트 (밑줄)
	Emphasized
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case PlainText:
		return "text"
	case Equation:
		return "equation"
	case Emphasized:
		return "emphasized"
	default:
		return "unknown"
	}
}

// Span 분류가 끝난 하나의 구간. 생성 후 불변.
type Span struct {
	Kind Kind
	Text string
}

// Segment 는 원시 텍스트 하나를 span 열로 분할한다.
// 빈 입력은 빈 목록.
func Segment(text string) []Span {
	if text == "" {
		return nil
	}
	spans := []Span{{Kind: PlainText, Text: text}}
	spans = applyEmphasis(spans)
	spans = applyExplicitEquations(spans)
	spans = SplitEquationCommas(spans)
	spans = applyMixedHeuristic(spans)
	return spans
}

// Join 은 span 열을 원래의 마커를 복원해 하나의 문자열로 되돌린다.
// Segment(Join(spans)) 는 spans 와 동등해야 한다 (멱등성).
func Join(spans []Span) string {
	var b strings.Builder
	for _, sp := range spans {
		switch sp.Kind {
		case Equation:
			b.WriteString("$")
			b.WriteString(sp.Text)
			b.WriteString("$")
		case Emphasized:
			b.WriteString("__")
			b.WriteString(sp.Text)
			b.WriteString("__")
		default:
			b.WriteString(sp.Text)
		}
	}
	return b.String()
}

// ─────────────────────────────────────────────
// 패스 1: 강조 (__내용__)
// ─────────────────────────────────────────────

const emphasisMarker = "__"

func applyEmphasis(spans []Span) []Span {
	var out []Span
	for _, sp := range spans {
		if sp.Kind != PlainText {
			out = append(out, sp)
			continue
		}
		out = append(out, emphasisPass(sp.Text)...)
	}
	return out
}

// emphasisPass 는 짝이 맞는 __...__ 를 Emphasized span 으로 추출한다.
// 짝이 없거나 내용이 빈 마커는 리터럴 텍스트로 남긴다.
func emphasisPass(text string) []Span {
	var out []Span
	rest := text
	for {
		open := strings.Index(rest, emphasisMarker)
		if open < 0 {
			break
		}
		close := strings.Index(rest[open+len(emphasisMarker):], emphasisMarker)
		if close < 0 {
			break
		}
		inner := rest[open+len(emphasisMarker) : open+len(emphasisMarker)+close]
		if inner == "" {
			// "____" — 강조할 내용이 없으면 리터럴로 지나간다
			out = append(out, Span{PlainText, rest[:open+len(emphasisMarker)]})
			rest = rest[open+len(emphasisMarker):]
			continue
		}
		if open > 0 {
			out = append(out, Span{PlainText, rest[:open]})
		}
		out = append(out, Span{Emphasized, inner})
		rest = rest[open+2*len(emphasisMarker)+close:]
	}
	if rest != "" {
		out = append(out, Span{PlainText, rest})
	}
	if len(out) == 0 {
		out = append(out, Span{PlainText, text})
	}
	return out
}

// ─────────────────────────────────────────────
// 패스 2: 명시적 수식 ($...$)
// ─────────────────────────────────────────────

func applyExplicitEquations(spans []Span) []Span {
	var out []Span
	for _, sp := range spans {
		if sp.Kind != PlainText {
			out = append(out, sp)
			continue
		}
		out = append(out, explicitEquationPass(sp.Text)...)
	}
	return out
}

// explicitEquationPass 는 $...$ 쌍을 Equation span 으로 추출한다.
//
// 여는 $ 는 같은 종류의 구분자와 바로 붙어 있으면 안 된다
// ($$ 디스플레이 수식 여는 기호를 빈 수식으로 오인하지 않기 위해).
// trim 후 내용이 비면 해당 수식은 버린다. 짝 없는 $ 는 리터럴.
func explicitEquationPass(text string) []Span {
	var out []Span
	rest := text
	for {
		open := findEquationOpener(rest)
		if open < 0 {
			break
		}
		close := strings.IndexByte(rest[open+1:], '$')
		if close < 0 {
			break
		}
		inner := strings.TrimSpace(rest[open+1 : open+1+close])
		if open > 0 {
			out = append(out, Span{PlainText, rest[:open]})
		}
		if inner != "" {
			out = append(out, Span{Equation, inner})
		}
		rest = rest[open+1+close+1:]
	}
	if rest != "" {
		out = append(out, Span{PlainText, rest})
	}
	if len(out) == 0 {
		out = append(out, Span{PlainText, text})
	}
	return out
}

// findEquationOpener 는 앞뒤로 $ 가 붙어 있지 않은 여는 $ 의 위치를 찾는다.
func findEquationOpener(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] != '$' {
			continue
		}
		if i > 0 && s[i-1] == '$' {
			continue
		}
		if i+1 < len(s) && s[i+1] == '$' {
			continue
		}
		return i
	}
	return -1
}
