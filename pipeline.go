package exampaper

import (
	"context"
	"sync"

	"github.com/soseon203/exam-paper-korean/internal/assemble"
	"github.com/soseon203/exam-paper-korean/internal/measure"
)

// 페이지 레코드와 품질 점검 타입 재노출
type (
	// RawPage 는 OCR 모델이 돌려준 페이지 레코드.
	RawPage = assemble.RawPage
	// Quality 는 페이지 레코드 점검 결과.
	Quality = assemble.Quality
)

// ExtractJSON 는 OCR 모델의 마크다운 응답에서 JSON 페이로드를 꺼낸다.
func ExtractJSON(reply string) ([]byte, error) {
	return assemble.ExtractJSON(reply)
}

// DecodePage 는 JSON 페이로드를 페이지 레코드로 디코딩한다.
func DecodePage(data []byte) (*RawPage, error) {
	return assemble.DecodePage(data)
}

// ValidatePage 는 페이지 레코드의 구조적 결함을 점검한다.
func ValidatePage(page *RawPage) Quality {
	return assemble.Validate(page)
}

// AssemblePage 는 페이지 레코드 하나를 문서 페이지로 조립한다.
//
// 텍스트 블록은 구간 분할을 거쳐 인라인 수식/강조 블록으로 나뉘고,
// 수식 블록은 HWP 스크립트로 변환되어 추정 크기가 붙는다. 변환에
// 실패한 수식은 [원본] 표기의 텍스트 블록으로 대체된다.
func AssemblePage(raw *RawPage, number int, opts ...Option) Page {
	options := applyOptions(opts...)
	a := assemble.New(measure.New(options.Config.Measurer))
	return a.Page(raw, number)
}

// AssembleDocument 는 여러 페이지 레코드를 병렬로 조립해 문서를 만든다.
//
// 페이지마다 고루틴 하나가 조립을 맡고, 결과는 입력 순서대로 모인다.
// 문서 제목이 비어 있으면 첫 페이지의 머리글을 제목으로 쓴다.
//
// 매개변수：
//   - ctx: 컨텍스트. 취소되면 결과를 버리고 ctx.Err() 를 돌려준다
//   - records: 페이지 순서대로 정렬된 레코드 목록
//   - title: 문서 제목 (빈 문자열이면 첫 페이지 머리글 사용)
//   - opts: 과목/학년/설정 옵션
func AssembleDocument(ctx context.Context, records []*RawPage, title string, opts ...Option) (*Document, error) {
	options := applyOptions(opts...)

	pages := make([]Page, len(records))
	var wg sync.WaitGroup
	for i, raw := range records {
		wg.Add(1)
		go func(i int, raw *RawPage) {
			defer wg.Done()
			a := assemble.New(measure.New(options.Config.Measurer))
			pages[i] = a.Page(raw, i+1)
		}(i, raw)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return assemble.BuildDocument(pages, title, options.Subject, options.Grade), nil
}
