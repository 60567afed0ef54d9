package assemble

import (
	"strings"

	"github.com/soseon203/exam-paper-korean/internal/doc"
	"github.com/soseon203/exam-paper-korean/internal/hwpeq"
	"github.com/soseon203/exam-paper-korean/internal/measure"
	"github.com/soseon203/exam-paper-korean/internal/segment"
)

// Assembler 는 OCR 레코드를 doc 트리로 바꾼다.
//
// 분할과 변환은 공유 상태가 없는 순수 함수이므로, Assembler 하나를
// 여러 고루틴이 페이지 단위로 나눠 써도 안전하다.
type Assembler struct {
	est *measure.Estimator
}

// New 는 주어진 크기 추정기로 Assembler 를 만든다.
func New(est *measure.Estimator) *Assembler {
	if est == nil {
		est = measure.New(nil)
	}
	return &Assembler{est: est}
}

// Page 는 RawPage 하나를 doc.Page 로 조립한다. number 는 1부터.
func (a *Assembler) Page(raw *RawPage, number int) doc.Page {
	page := doc.Page{
		Number: number,
		Header: raw.Header,
	}
	for _, q := range raw.Questions {
		page.Questions = append(page.Questions, a.question(q))
	}
	return page
}

// BuildDocument 는 페이지 열로 문서를 만든다. 제목이 비어 있으면
// 첫 페이지 헤더에서 가져온다.
func BuildDocument(pages []doc.Page, title, subject, grade string) *doc.Document {
	d := &doc.Document{
		Title:   title,
		Subject: subject,
		Grade:   grade,
		Pages:   pages,
	}
	if d.Title == "" && len(pages) > 0 {
		d.Title = pages[0].Header
	}
	return d
}

func (a *Assembler) question(raw RawQuestion) doc.Question {
	q := doc.Question{
		Number: raw.Number,
		Score:  raw.Score,
	}
	for _, b := range raw.Contents {
		q.Contents = append(q.Contents, a.blocks(b)...)
	}
	for _, c := range raw.Choices {
		if c.Number == 0 {
			continue
		}
		choice := doc.Choice{Number: c.Number}
		for _, b := range c.Contents {
			choice.Contents = append(choice.Contents, a.blocks(b)...)
		}
		q.Choices = append(q.Choices, choice)
	}
	for _, sub := range raw.SubQuestions {
		q.SubQuestions = append(q.SubQuestions, a.question(sub))
	}
	return q
}

// blocks 는 콘텐츠 항목 하나를 블록 열로 바꾼다. 텍스트 항목은 분할을
// 거치며 여러 블록이 될 수 있다.
func (a *Assembler) blocks(raw RawBlock) []doc.Block {
	if raw.Value == "" && raw.Type != "image" {
		return nil
	}
	switch doc.ParseContentType(raw.Type) {
	case doc.Equation:
		return []doc.Block{a.equationBlock(raw.Value, doc.Equation)}
	case doc.EquationBlock:
		return []doc.Block{a.equationBlock(raw.Value, doc.EquationBlock)}
	case doc.Image:
		return []doc.Block{{Type: doc.Image, Value: raw.Value}}
	default:
		return a.textBlocks(raw.Value)
	}
}

// textBlocks 는 텍스트 잎을 분할해 블록 열로 바꾼다.
// 분할기가 찾아낸 수식 span 은 인라인 수식 블록이 된다.
func (a *Assembler) textBlocks(text string) []doc.Block {
	var out []doc.Block
	for _, span := range segment.Segment(text) {
		switch span.Kind {
		case segment.Equation:
			out = append(out, a.equationBlock(span.Text, doc.Equation))
		case segment.Emphasized:
			out = append(out, doc.Block{Type: doc.Text, Value: span.Text, Emphasis: true})
		default:
			out = append(out, doc.Block{Type: doc.Text, Value: span.Text})
		}
	}
	return out
}

// equationBlock 은 수식 잎 하나를 변환·측정한다. 변환 실패는 해당
// 블록만 리터럴 텍스트로 폴백한다.
func (a *Assembler) equationBlock(latex string, t doc.ContentType) doc.Block {
	latex = strings.TrimSpace(latex)
	script, err := hwpeq.Convert(latex)
	if err != nil {
		return doc.Block{
			Type:     doc.Text,
			Value:    "[" + latex + "]",
			Fallback: true,
		}
	}
	sz := a.est.Estimate(latex, script)
	return doc.Block{
		Type:  t,
		Value: latex,
		Script: &doc.EquationScript{
			Script: script,
			Width:  sz.Width,
			Height: sz.Height,
		},
	}
}
