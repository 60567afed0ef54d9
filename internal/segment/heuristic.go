package segment

import (
	"strings"
	"unicode"

	"github.com/soseon203/exam-paper-korean/internal/scan"
)

// ─────────────────────────────────────────────
// 패스 3: 수식 내부 최상위 쉼표 분할
// ─────────────────────────────────────────────

// SplitEquationCommas 는 Equation span 의 최상위 쉼표에서 독립 수식을 분할한다.
//
// "A=2^6, B=3^6" 처럼 쉼표로 나열된 독립 등식을
// Equation / Text(", ") / Equation 으로 나눈다. 괄호 안의 쉼표는
// scan.SplitTopLevel 이 보호한다. 분할 결과가 비어 있지 않은 부분
// 2개 이상일 때만 적용한다 — 함수 인자 쉼표 하나짜리 수식을
// 파괴적으로 쪼개지 않기 위한 가드.
func SplitEquationCommas(spans []Span) []Span {
	var out []Span
	for _, sp := range spans {
		if sp.Kind != Equation || !strings.ContainsRune(sp.Text, ',') {
			out = append(out, sp)
			continue
		}
		parts := scan.SplitTopLevel(sp.Text, ',')
		var nonEmpty []string
		for _, p := range parts {
			if t := strings.TrimSpace(p); t != "" {
				nonEmpty = append(nonEmpty, t)
			}
		}
		if len(nonEmpty) < 2 {
			out = append(out, sp)
			continue
		}
		for i, p := range nonEmpty {
			if i > 0 {
				out = append(out, Span{PlainText, ", "})
			}
			out = append(out, Span{Equation, p})
		}
	}
	return out
}

// ─────────────────────────────────────────────
// 패스 4: 한글/수식 혼합 휴리스틱
// ─────────────────────────────────────────────

// 수식 run 을 구성하는 연산자
var heuristicOperators = map[rune]bool{
	'=': true, '>': true, '<': true, '+': true, '-': true,
	'×': true, '÷': true, '^': true, '_': true,
	'≤': true, '≥': true, '≠': true,
}

// maxRunLength 이보다 긴 run 은 수식이 아니라 자연어 단어일 가능성이 높다
const maxRunLength = 20

func isHangul(r rune) bool {
	return unicode.Is(unicode.Hangul, r)
}

func isLatinLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isUnitRune(r rune) bool {
	return isLatinLetter(r) || unicode.IsDigit(r)
}

func applyMixedHeuristic(spans []Span) []Span {
	var out []Span
	for _, sp := range spans {
		if sp.Kind != PlainText {
			out = append(out, sp)
			continue
		}
		out = append(out, mixedHeuristicPass(sp.Text)...)
	}
	return out
}

// MixedHeuristic 은 한글 문장에 섞여 들어간 수식 run 을 분리한다.
//
// 한글과 라틴 문자가 둘 다 있을 때만 동작한다 (순수 수식이나
// 순수 한글 문장은 건드리지 않는다). run 의 문법은
// 항 (연산자 항)* 이고, 항은 라틴 문자 또는 숫자 열이다.
// run 의 앞뒤에 다른 라틴 문자가 붙어 있으면 단어 내부이므로 제외한다.
//
// 거부 규칙:
//   - run 이 20자를 넘으면 자연어 단어로 본다
//   - run 에 한글이 섞이면 제외 (항 정의상 발생하지 않지만 방어)
//   - 연산자 없는 run 은 단독 라틴 변수 한 글자일 때만 승격한다
//     (연산자 없는 고립 숫자는 문항 번호와 구별할 수 없다)
//
// 분할 결과 span 이 2개 미만이면 원본 span 을 그대로 유지한다.
func MixedHeuristic(text string) []Span {
	return mixedHeuristicPass(text)
}

func mixedHeuristicPass(text string) []Span {
	hasHangul := strings.ContainsFunc(text, isHangul)
	hasLatin := strings.ContainsFunc(text, isLatinLetter)
	if !hasHangul || !hasLatin {
		return []Span{{PlainText, text}}
	}

	runes := []rune(text)
	var out []Span
	textStart := 0 // 아직 내보내지 않은 텍스트의 시작
	i := 0
	for i < len(runes) {
		if !isUnitRune(runes[i]) || (i > 0 && isLatinLetter(runes[i-1])) {
			i++
			continue
		}
		end, hasOp := scanExpressionRun(runes, i)
		if !acceptRun(runes, i, end, hasOp) {
			// run 내부의 문자에서 다시 시작하지 않는다
			i = end
			continue
		}
		if i > textStart {
			out = append(out, Span{PlainText, string(runes[textStart:i])})
		}
		out = append(out, Span{Equation, string(runes[i:end])})
		textStart = end
		i = end
	}
	if textStart < len(runes) {
		out = append(out, Span{PlainText, string(runes[textStart:])})
	}
	if len(out) < 2 {
		// 실제로 나눠지지 않는 분할은 되돌린다
		return []Span{{PlainText, text}}
	}
	return out
}

// scanExpressionRun 은 runes[start]에서 시작하는 최대 수식 run 의 끝과
// 연산자 포함 여부를 반환한다. 끝자리 공백은 run 에 포함하지 않는다.
func scanExpressionRun(runes []rune, start int) (end int, hasOp bool) {
	i := start
	i = consumeUnit(runes, i)
	end = i
	for {
		j := i
		for j < len(runes) && runes[j] == ' ' {
			j++
		}
		if j >= len(runes) || !heuristicOperators[runes[j]] {
			break
		}
		j++ // 연산자
		for j < len(runes) && runes[j] == ' ' {
			j++
		}
		if j >= len(runes) || !isUnitRune(runes[j]) {
			break
		}
		hasOp = true
		i = consumeUnit(runes, j)
		end = i
	}
	return end, hasOp
}

// consumeUnit 은 연속된 라틴 문자/숫자 항을 소비한다.
func consumeUnit(runes []rune, i int) int {
	for i < len(runes) && isUnitRune(runes[i]) {
		i++
	}
	return i
}

// acceptRun 은 후보 run 의 승격 여부를 판정한다.
func acceptRun(runes []rune, start, end int, hasOp bool) bool {
	if end <= start {
		return false
	}
	// 뒤에 라틴 문자가 붙어 있으면 단어 내부
	if end < len(runes) && isLatinLetter(runes[end]) {
		return false
	}
	run := runes[start:end]
	if len(run) > maxRunLength {
		return false
	}
	for _, r := range run {
		if isHangul(r) {
			return false
		}
	}
	if !hasOp {
		// 연산자가 없으면 단독 변수 한 글자만 수식으로 본다
		return len(run) == 1 && isLatinLetter(run[0])
	}
	return true
}
