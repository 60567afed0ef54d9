// Package scan 괄호 중첩을 인식하는 문자열 스캔 프리미티브
//
// 수식 분할과 LaTeX 인자 추출이 공유하는 저수준 유틸리티.
// 정규식 대신 선형 깊이 카운터를 사용하므로 중첩 깊이에 제한이 없다.
package scan

import "strings"

// isOpen / isClose 세 종류의 괄호를 한 깊이 카운터로 취급
func isOpen(r rune) bool {
	return r == '(' || r == '{' || r == '['
}

func isClose(r rune) bool {
	return r == ')' || r == '}' || r == ']'
}

// MatchBracket 은 s[start]가 여는 괄호일 때, 대응하는 닫는 괄호
// 바로 다음 인덱스를 반환한다.
//
// 깊이 카운터는 세 종류의 괄호 모두에서 증감하며 음수가 되지 않는다.
// 문자열이 끝날 때까지 닫히지 않으면 -1 ("짝 없음")을 반환한다.
func MatchBracket(s string, start int) int {
	if start < 0 || start >= len(s) || !isOpen(rune(s[start])) {
		return -1
	}
	depth := 0
	for i, r := range s[start:] {
		if isOpen(r) {
			depth++
		} else if isClose(r) {
			depth--
			if depth == 0 {
				return start + i + 1
			}
		}
	}
	return -1
}

// SplitTopLevel 은 괄호 밖(깊이 0)에 있는 sep 에서만 문자열을 분할한다.
//
// "f(a, b), c" 를 ','로 분할하면 ["f(a, b)", " c"].
// 깊이 0에서 나타난 닫는 괄호는 소비하지 않고 리터럴로 지난다.
func SplitTopLevel(s string, sep rune) []string {
	var parts []string
	var cur strings.Builder
	depth := 0
	for _, r := range s {
		switch {
		case isOpen(r):
			depth++
			cur.WriteRune(r)
		case isClose(r):
			if depth > 0 {
				depth--
			}
			cur.WriteRune(r)
		case r == sep && depth == 0:
			parts = append(parts, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	parts = append(parts, cur.String())
	return parts
}

// ExtractBrace 는 문자열 맨 앞의 {content}를 추출한다.
//
// 앞쪽 공백은 건너뛴다. '{'로 시작하지 않으면 ok=false.
// 닫는 괄호가 없으면 나머지 전체를 content 로 취급한다 (호출자 규약).
func ExtractBrace(s string) (content, rest string, ok bool) {
	trimmed := strings.TrimLeft(s, " \t\n")
	if trimmed == "" || trimmed[0] != '{' {
		return "", s, false
	}
	depth := 0
	for i, r := range trimmed {
		if r == '{' {
			depth++
		} else if r == '}' {
			depth--
			if depth == 0 {
				return trimmed[1:i], trimmed[i+1:], true
			}
		}
	}
	return trimmed[1:], "", true
}

// ExtractOption 은 문자열 맨 앞의 [content]를 추출한다 (\sqrt[n]{x} 의 n).
func ExtractOption(s string) (content, rest string, ok bool) {
	trimmed := strings.TrimLeft(s, " \t\n")
	if trimmed == "" || trimmed[0] != '[' {
		return "", s, false
	}
	depth := 0
	for i, r := range trimmed {
		if r == '[' {
			depth++
		} else if r == ']' {
			depth--
			if depth == 0 {
				return trimmed[1:i], trimmed[i+1:], true
			}
		}
	}
	return trimmed[1:], "", true
}
