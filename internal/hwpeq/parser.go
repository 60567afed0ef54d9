// Package hwpeq LaTeX 수식을 HWP 수식 스크립트로 변환
//
// 한글(HWP) 수식 편집기는 자체 수식 스크립트 문법을 사용한다.
// 주요 매핑:
//
//	\frac{a}{b}     → {a} over {b}
//	x^{2}           → x ^{2}
//	x_{n}           → x _{n}
//	\sqrt{x}        → sqrt {x}
//	\sqrt[n]{x}     → root {n} of {x}
//	\sum_{i=0}^{n}  → SUM _{i=0} ^{n}
//	\int_{a}^{b}    → INT _{a} ^{b}
//	\lim_{x \to 0}  → lim _{x -> 0}
//
// 변환은 순서가 의미를 가지는 재작성 단계의 파이프라인이다. 구조
// 단계(환경, 분수, 근호, 대형 연산자, 장식 등)는 추출한 인자에 대해
// 전체 파이프라인을 다시 재귀 호출하므로 중첩 깊이와 무관하게
// 올바르게 합성된다. 인자 추출은 정규식이 아니라 internal/scan 의
// 선형 깊이 카운터를 쓴다.
//
// 인식하지 못한 명령은 조용히 버려진다 — 변환이 실패하는 경우는
// 재귀 안전 한계를 넘는 비정상 중첩뿐이다 (ErrDepthExceeded).
package hwpeq

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/soseon203/exam-paper-korean/internal/scan"
)

// maxDepth 재귀 안전 한계. 정상적인 수식은 닿지 않는다.
const maxDepth = 48

// ErrDepthExceeded 는 수식의 중첩이 안전 한계를 넘었을 때 반환된다.
// 호출자는 해당 수식 하나만 리터럴 텍스트로 폴백해야 하며,
// 문서 전체 변환을 중단해서는 안 된다.
var ErrDepthExceeded = errors.New("hwpeq: equation nesting exceeds safety limit")

var (
	displayEnvRe = regexp.MustCompile(`\\(?:begin|end)\{(?:equation|align|gather|displaymath)\*?\}`)
	unknownCmdRe = regexp.MustCompile(`\\[a-zA-Z]+`)
	multiSpaceRe = regexp.MustCompile(`  +`)
)

// Convert 는 LaTeX 수식 하나를 HWP 수식 스크립트로 변환한다.
//
// 입력은 분할이 끝난 수식 표현이어야 하며, $ 구분자가 남아 있어도 된다.
func Convert(latex string) (string, error) {
	s := strings.TrimSpace(latex)
	s = strings.Trim(s, "$")
	s = strings.TrimSpace(s)

	// 디스플레이 수식 구분자와 환경 마커 제거
	for _, marker := range []string{`\[`, `\]`, `\(`, `\)`} {
		s = strings.ReplaceAll(s, marker, "")
	}
	s = displayEnvRe.ReplaceAllString(s, "")

	out, err := convertExpr(strings.TrimSpace(s), 0)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(multiSpaceRe.ReplaceAllString(out, " ")), nil
}

// convertExpr 는 재작성 파이프라인 전체를 한 번 적용한다.
// 재귀 단계는 모두 이 함수를 depth+1 로 다시 부른다.
func convertExpr(s string, depth int) (string, error) {
	if depth > maxDepth {
		return "", ErrDepthExceeded
	}
	if s == "" {
		return "", nil
	}
	var err error
	if s, err = rewriteEnvironments(s, depth); err != nil {
		return "", err
	}
	s = rewriteTextBlocks(s)
	if s, err = rewriteBinom(s, depth); err != nil {
		return "", err
	}
	if s, err = rewriteFrac(s, depth); err != nil {
		return "", err
	}
	if s, err = rewriteSqrt(s, depth); err != nil {
		return "", err
	}
	if s, err = rewriteBigOps(s, depth); err != nil {
		return "", err
	}
	if s, err = rewriteLeftRight(s, depth); err != nil {
		return "", err
	}
	if s, err = rewriteAccents(s, depth); err != nil {
		return "", err
	}
	s = substituteTables(s)
	if s, err = rewriteScripts(s, depth); err != nil {
		return "", err
	}
	if s, err = rewriteBraceGroups(s, depth); err != nil {
		return "", err
	}
	return cleanup(s), nil
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// findCommand 는 from 이후에서 cmd 가 더 긴 명령의 접두사가 아닌
// 위치를 찾는다 (\text 가 \textbf 에 걸리지 않도록).
func findCommand(s, cmd string, from int) int {
	for from <= len(s) {
		i := strings.Index(s[from:], cmd)
		if i < 0 {
			return -1
		}
		i += from
		j := i + len(cmd)
		if j >= len(s) || !isASCIILetter(s[j]) {
			return i
		}
		from = i + 1
	}
	return -1
}

// ─────────────────────────────────────────────
// 환경 (\begin{env} ... \end{env})
// ─────────────────────────────────────────────

// rewriteEnvironments 는 행렬/조건식 환경을 HWP 환경 래퍼로 바꾼다.
// 행 구분자 \\ 는 # 로 바뀌고, 내용 전체가 재귀 변환된다.
func rewriteEnvironments(s string, depth int) (string, error) {
	from := 0
	for {
		i := strings.Index(s[from:], `\begin{`)
		if i < 0 {
			return s, nil
		}
		i += from
		nameEnd := strings.IndexByte(s[i+7:], '}')
		if nameEnd < 0 {
			return s, nil
		}
		name := s[i+7 : i+7+nameEnd]
		token, known := EnvMap[name]
		endMarker := `\end{` + name + `}`
		j := strings.Index(s[i:], endMarker)
		if !known || j < 0 {
			from = i + 1
			continue
		}
		content := s[i+7+nameEnd+1 : i+j]
		content = strings.ReplaceAll(content, `\\`, " # ")
		conv, err := convertExpr(strings.TrimSpace(content), depth+1)
		if err != nil {
			return "", err
		}
		replaced := token + " {" + conv + "}"
		s = s[:i] + replaced + s[i+j+len(endMarker):]
		from = i + len(replaced)
	}
}

// ─────────────────────────────────────────────
// 리터럴 텍스트 블록 (\text, \mathrm, \mathbf)
// ─────────────────────────────────────────────

// rewriteTextBlocks 는 텍스트 블록 명령을 바꾼다. 내용은 리터럴이므로
// 재귀 변환하지 않는다.
func rewriteTextBlocks(s string) string {
	s = rewriteLiteral(s, `\text`, func(arg string) string { return `"` + arg + `"` })
	s = rewriteLiteral(s, `\mathrm`, func(arg string) string { return "rm " + arg })
	s = rewriteLiteral(s, `\mathbf`, func(arg string) string { return "bold " + arg })
	return s
}

func rewriteLiteral(s, cmd string, wrap func(string) string) string {
	from := 0
	for {
		i := findCommand(s, cmd, from)
		if i < 0 {
			return s
		}
		arg, rest, ok := scan.ExtractBrace(s[i+len(cmd):])
		if !ok {
			from = i + 1
			continue
		}
		w := wrap(arg)
		s = s[:i] + w + rest
		from = i + len(w)
	}
}

// ─────────────────────────────────────────────
// \binom{n}{k}
// ─────────────────────────────────────────────

// rewriteBinom 은 이항계수를 괄호로 감싼 수직 스택으로 바꾼다.
func rewriteBinom(s string, depth int) (string, error) {
	from := 0
	for {
		i := findCommand(s, `\binom`, from)
		if i < 0 {
			return s, nil
		}
		top, rest1, ok1 := scan.ExtractBrace(s[i+len(`\binom`):])
		bot, rest2, ok2 := scan.ExtractBrace(rest1)
		if !ok1 || !ok2 {
			from = i + 1
			continue
		}
		ct, err := convertExpr(top, depth+1)
		if err != nil {
			return "", err
		}
		cb, err := convertExpr(bot, depth+1)
		if err != nil {
			return "", err
		}
		w := "LEFT ( {" + ct + "} atop {" + cb + "} RIGHT )"
		s = s[:i] + w + rest2
		from = i + len(w)
	}
}

// ─────────────────────────────────────────────
// \frac{a}{b}
// ─────────────────────────────────────────────

func rewriteFrac(s string, depth int) (string, error) {
	for _, cmd := range []string{`\dfrac`, `\tfrac`, `\frac`} {
		from := 0
		for {
			i := findCommand(s, cmd, from)
			if i < 0 {
				break
			}
			num, rest1, ok1 := scan.ExtractBrace(s[i+len(cmd):])
			den, rest2, ok2 := scan.ExtractBrace(rest1)
			if !ok1 || !ok2 {
				from = i + 1
				continue
			}
			cn, err := convertExpr(num, depth+1)
			if err != nil {
				return "", err
			}
			cd, err := convertExpr(den, depth+1)
			if err != nil {
				return "", err
			}
			w := "{" + cn + "} over {" + cd + "}"
			s = s[:i] + w + rest2
			from = i + len(w)
		}
	}
	return s, nil
}

// ─────────────────────────────────────────────
// \sqrt[n]{x} / \sqrt{x}
// ─────────────────────────────────────────────

func rewriteSqrt(s string, depth int) (string, error) {
	from := 0
	for {
		i := findCommand(s, `\sqrt`, from)
		if i < 0 {
			return s, nil
		}
		rest := s[i+len(`\sqrt`):]
		index, afterOpt, hasIndex := scan.ExtractOption(rest)
		body, rest2, ok := scan.ExtractBrace(afterOpt)
		if !ok {
			from = i + 1
			continue
		}
		cbody, err := convertExpr(body, depth+1)
		if err != nil {
			return "", err
		}
		var w string
		if hasIndex {
			cidx, err := convertExpr(index, depth+1)
			if err != nil {
				return "", err
			}
			w = "root {" + cidx + "} of {" + cbody + "}"
		} else {
			w = "sqrt {" + cbody + "}"
		}
		s = s[:i] + w + rest2
		from = i + len(w)
	}
}

// ─────────────────────────────────────────────
// 대형 연산자 (\sum, \int, \oint, ...)
// ─────────────────────────────────────────────

// rewriteBigOps 는 대형 연산자와 선택적 상·하한을 바꾼다.
// \iint/\iiint 는 INT 의 반복이 아니라 고유 토큰(DINT/TINT)이다.
func rewriteBigOps(s string, depth int) (string, error) {
	for _, name := range bigOpOrder {
		cmd := `\` + name
		token := BigOpMap[name]
		from := 0
		for {
			i := findCommand(s, cmd, from)
			if i < 0 {
				break
			}
			rest := s[i+len(cmd):]
			lo, rest1 := parseScriptArg(rest, '_')
			hi, rest2 := parseScriptArg(rest1, '^')
			out := token
			if lo != "" {
				c, err := convertExpr(lo, depth+1)
				if err != nil {
					return "", err
				}
				out += " _{" + c + "}"
			}
			if hi != "" {
				c, err := convertExpr(hi, depth+1)
				if err != nil {
					return "", err
				}
				out += " ^{" + c + "}"
			}
			s = s[:i] + out + rest2
			from = i + len(out)
		}
	}
	return s, nil
}

// parseScriptArg 는 선택적 `marker{...}` 또는 `marker바로 한 글자`를 소비한다.
// marker 가 없으면 (``, 원본) 을 돌려준다.
func parseScriptArg(s string, marker byte) (arg, rest string) {
	t := strings.TrimLeft(s, " ")
	if t == "" || t[0] != marker {
		return "", s
	}
	t = strings.TrimLeft(t[1:], " ")
	if a, r, ok := scan.ExtractBrace(t); ok {
		return a, r
	}
	if t == "" {
		return "", s
	}
	r0, size := utf8.DecodeRuneInString(t)
	if r0 == '\\' || r0 == '{' || r0 == '}' {
		return "", s
	}
	return string(r0), t[size:]
}

// ─────────────────────────────────────────────
// \left DELIM ... \right DELIM
// ─────────────────────────────────────────────

// rewriteLeftRight 는 짝이 맞는 \left/\right 구분자 쌍을 바꾼다.
// 중괄호 구분자는 lbrace/rbrace 이름 토큰이 되고, "." 은 해당 쪽에
// 보이는 구분자를 내지 않는다. 중첩된 \left 쌍을 올바르게 짝짓는다.
func rewriteLeftRight(s string, depth int) (string, error) {
	from := 0
	for {
		i := findCommand(s, `\left`, from)
		if i < 0 {
			return s, nil
		}
		leftDelim, bodyStart := parseDelim(s, i+len(`\left`))

		// 대응하는 \right 탐색 (중첩 고려)
		level := 1
		pos := bodyStart
		rightAt := -1
		for level > 0 {
			nl := findCommand(s, `\left`, pos)
			nr := findCommand(s, `\right`, pos)
			if nr < 0 {
				break
			}
			if nl >= 0 && nl < nr {
				level++
				pos = nl + len(`\left`)
				continue
			}
			level--
			if level == 0 {
				rightAt = nr
				break
			}
			pos = nr + len(`\right`)
		}
		if rightAt < 0 {
			// 짝 없는 \left — 최종 정리 단계가 명령만 제거한다
			from = i + 1
			continue
		}

		rightDelim, afterRight := parseDelim(s, rightAt+len(`\right`))
		inner, err := convertExpr(strings.TrimSpace(s[bodyStart:rightAt]), depth+1)
		if err != nil {
			return "", err
		}

		var w string
		switch {
		case leftDelim != "" && rightDelim != "":
			w = "LEFT " + leftDelim + " " + inner + " RIGHT " + rightDelim
		case leftDelim != "":
			w = "LEFT " + leftDelim + " " + inner
		case rightDelim != "":
			w = inner + " RIGHT " + rightDelim
		default:
			w = inner
		}
		s = s[:i] + w + s[afterRight:]
		from = i + len(w)
	}
}

// parseDelim 은 \left/\right 바로 뒤의 구분 문자를 읽어
// HWP 토큰과 그다음 위치를 돌려준다.
func parseDelim(s string, pos int) (string, int) {
	for pos < len(s) && s[pos] == ' ' {
		pos++
	}
	if pos >= len(s) {
		return "", pos
	}
	var raw string
	if s[pos] == '\\' && pos+1 < len(s) {
		raw = s[pos : pos+2]
		pos += 2
	} else {
		raw = string(s[pos])
		pos++
	}
	if mapped, ok := DelimMap[raw]; ok {
		return mapped, pos
	}
	return raw, pos
}

// ─────────────────────────────────────────────
// 장식 (\vec, \bar, \hat, ...)
// ─────────────────────────────────────────────

func rewriteAccents(s string, depth int) (string, error) {
	for _, cmd := range accentOrder {
		token := AccentMap[cmd]
		from := 0
		for {
			i := findCommand(s, cmd, from)
			if i < 0 {
				break
			}
			body, rest, ok := scan.ExtractBrace(s[i+len(cmd):])
			if !ok {
				from = i + 1
				continue
			}
			c, err := convertExpr(body, depth+1)
			if err != nil {
				return "", err
			}
			w := token + " {" + c + "}"
			s = s[:i] + w + rest
			from = i + len(w)
		}
	}
	return s, nil
}

// ─────────────────────────────────────────────
// 리터럴 치환 (그리스 문자 / 기호 / 함수명)
// ─────────────────────────────────────────────

// substituteTables 는 무조건적인 리터럴 치환 패스다. 명령이 하나도
// 없는 수식(숫자와 연산자뿐)도 이 단계를 그대로 통과해 변환된다.
// 치환은 명령 경계를 지킨다 — \le 가 \left 의 접두사에 걸리면 안 된다.
func substituteTables(s string) string {
	for _, cmd := range greekOrder {
		s = replaceCommand(s, cmd, GreekMap[cmd])
	}
	for _, cmd := range symbolOrder {
		s = replaceCommand(s, cmd, SymbolMap[cmd])
	}
	for _, cmd := range funcOrder {
		s = replaceCommand(s, cmd, FuncMap[cmd])
	}
	return s
}

// replaceCommand 는 명령 경계(다음 문자가 영문자가 아님)를 지키는 치환.
func replaceCommand(s, cmd, repl string) string {
	from := 0
	for {
		i := findCommand(s, cmd, from)
		if i < 0 {
			return s
		}
		s = s[:i] + repl + s[i+len(cmd):]
		from = i + len(repl)
	}
}

// ─────────────────────────────────────────────
// 상첨자 / 하첨자
// ─────────────────────────────────────────────

// rewriteScripts 는 ^{...}/^x 와 _{...}/_x 를 바꾼다. 피연산자가 한
// 글자여도 HWP 쪽에서는 반드시 중괄호로 감싼다.
func rewriteScripts(s string, depth int) (string, error) {
	var b strings.Builder
	for s != "" {
		k := strings.IndexAny(s, "^_")
		if k < 0 {
			b.WriteString(s)
			break
		}
		marker := s[k]
		b.WriteString(s[:k])
		t := strings.TrimLeft(s[k+1:], " ")
		arg, after, ok := scan.ExtractBrace(t)
		if !ok {
			if t == "" {
				b.WriteByte(marker)
				break
			}
			r0, size := utf8.DecodeRuneInString(t)
			if r0 == '\\' || r0 == '{' || r0 == '}' {
				b.WriteByte(marker)
				s = s[k+1:]
				continue
			}
			arg, after = string(r0), t[size:]
		}
		conv, err := convertExpr(arg, depth+1)
		if err != nil {
			return "", err
		}
		b.WriteString(" ")
		b.WriteByte(marker)
		b.WriteString("{")
		b.WriteString(conv)
		b.WriteString("}")
		s = after
	}
	return b.String(), nil
}

// ─────────────────────────────────────────────
// 남은 중괄호 그룹 재귀
// ─────────────────────────────────────────────

// rewriteBraceGroups 는 앞 단계가 소비하지 않은 가장 안쪽의 {...}
// 그룹 내용을 한 번 더 변환한다 (의미 명령 없는 단순 그룹핑).
func rewriteBraceGroups(s string, depth int) (string, error) {
	var b strings.Builder
	rest := s
	for {
		p := strings.IndexByte(rest, '{')
		if p < 0 {
			b.WriteString(rest)
			break
		}
		q := strings.IndexAny(rest[p+1:], "{}")
		if q < 0 {
			b.WriteString(rest)
			break
		}
		if rest[p+1+q] == '{' {
			// 더 안쪽 그룹이 있다 — 그쪽부터
			b.WriteString(rest[:p+1])
			rest = rest[p+1:]
			continue
		}
		content := rest[p+1 : p+1+q]
		b.WriteString(rest[:p])
		if content == "" {
			b.WriteString("{}")
		} else {
			conv, err := convertExpr(content, depth+1)
			if err != nil {
				return "", err
			}
			b.WriteString("{")
			b.WriteString(conv)
			b.WriteString("}")
		}
		rest = rest[p+1+q+1:]
	}
	return b.String(), nil
}

// ─────────────────────────────────────────────
// 최종 정리
// ─────────────────────────────────────────────

// cleanup 은 공백 명령을 HWP 공백 문자로 바꾸고, 끝까지 해석되지
// 않은 명령을 제거한다.
func cleanup(s string) string {
	s = strings.ReplaceAll(s, `\,`, "`")
	s = strings.ReplaceAll(s, `\;`, "~")
	s = strings.ReplaceAll(s, `\!`, "")
	s = strings.ReplaceAll(s, `\qquad`, "~~~~")
	s = strings.ReplaceAll(s, `\quad`, "~~")
	s = strings.ReplaceAll(s, `\\`, "")
	s = unknownCmdRe.ReplaceAllString(s, "")
	return s
}
