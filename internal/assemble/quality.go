package assemble

import (
	"fmt"

	"github.com/soseon203/exam-paper-korean/internal/doc"
)

// Quality 는 디코딩된 페이지 레코드의 점검 결과.
type Quality struct {
	Valid         bool
	Warnings      []string
	QuestionCount int
	EquationCount int
}

// Validate 는 페이지 레코드의 구조적 결함을 찾아낸다. 문항 번호 누락,
// 빈 콘텐츠, 수식 중괄호 짝 불일치 등을 경고로 수집하며, 문항이 하나도
// 없는 페이지만 Valid=false 로 본다.
func Validate(page *RawPage) Quality {
	q := Quality{Valid: true}
	if page == nil {
		q.Valid = false
		q.Warnings = append(q.Warnings, "페이지 레코드가 비어 있음")
		return q
	}
	if len(page.Questions) == 0 {
		q.Valid = false
		q.Warnings = append(q.Warnings, "문항이 없는 페이지")
		return q
	}
	for i := range page.Questions {
		validateQuestion(&page.Questions[i], "", &q)
	}
	return q
}

func validateQuestion(raw *RawQuestion, parent string, q *Quality) {
	q.QuestionCount++
	label := fmt.Sprintf("%d", raw.Number)
	if raw.Number == 0 {
		label = fmt.Sprintf("%s(번호 없음 #%d)", parent, q.QuestionCount)
		q.Warnings = append(q.Warnings, fmt.Sprintf("문항 번호 누락: %s", label))
	} else if parent != "" {
		label = parent + "-" + label
	}
	if len(raw.Contents) == 0 {
		q.Warnings = append(q.Warnings, fmt.Sprintf("문항 %s: 콘텐츠가 없음", label))
	}
	validateBlocks(raw.Contents, label, q)
	for _, c := range raw.Choices {
		validateBlocks(c.Contents, fmt.Sprintf("%s 선택지 %d", label, c.Number), q)
	}
	for i := range raw.SubQuestions {
		validateQuestion(&raw.SubQuestions[i], label, q)
	}
}

func validateBlocks(blocks []RawBlock, label string, q *Quality) {
	for _, b := range blocks {
		t := doc.ParseContentType(b.Type)
		if b.Value == "" && t != doc.Image {
			q.Warnings = append(q.Warnings, fmt.Sprintf("%s: 값이 빈 %s 블록", label, b.Type))
			continue
		}
		if t == doc.Equation || t == doc.EquationBlock {
			q.EquationCount++
			if msg := lintEquation(b.Value); msg != "" {
				q.Warnings = append(q.Warnings, fmt.Sprintf("%s: %s", label, msg))
			}
		}
	}
}

// lintEquation 은 LaTeX 수식의 괄호 짝을 검사한다. 변환 전에 걸러 두면
// 변환 실패로 떨어지는 블록을 미리 알 수 있다.
func lintEquation(latex string) string {
	depth := 0
	escaped := false
	for _, r := range latex {
		if escaped {
			escaped = false
			continue
		}
		switch r {
		case '\\':
			escaped = true
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return fmt.Sprintf("수식 중괄호 짝 불일치: %q", latex)
			}
		}
	}
	if depth != 0 {
		return fmt.Sprintf("수식 중괄호 %d개 닫히지 않음: %q", depth, latex)
	}
	return ""
}
