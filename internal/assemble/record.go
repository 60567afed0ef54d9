// Package assemble OCR 레코드를 타입 트리로 조립
//
// OCR 서비스가 돌려준 계층 레코드(문서 → 페이지 → 문제 → 선택지 →
// 콘텐츠 항목)를 걸어 내려가며, 텍스트 잎에는 분할기를, 수식 잎에는
// 변환기와 크기 추정기를 적용해 외부 문서 작성기가 소비할 타입
// 트리(doc 패키지)를 만든다. 잎 하나의 실패는 그 블록만 폴백으로
// 내려가며 문서 전체 조립을 중단시키지 않는다.
package assemble

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// RawBlock OCR 레코드의 콘텐츠 항목 하나
type RawBlock struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// RawChoice OCR 레코드의 선택지
type RawChoice struct {
	Number   int        `json:"number"`
	Contents []RawBlock `json:"contents"`
}

// RawQuestion OCR 레코드의 문제
type RawQuestion struct {
	Number       int           `json:"number"`
	Score        int           `json:"score"`
	Contents     []RawBlock    `json:"contents"`
	Choices      []RawChoice   `json:"choices"`
	SubQuestions []RawQuestion `json:"sub_questions"`
}

// RawPage OCR 레코드의 페이지 하나
type RawPage struct {
	Header    string        `json:"header"`
	Questions []RawQuestion `json:"questions"`
}

// DecodePage 는 OCR 응답 JSON 을 RawPage 로 디코딩한다.
func DecodePage(data []byte) (*RawPage, error) {
	var page RawPage
	if err := sonic.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("assemble: OCR 레코드 디코딩 실패: %w", err)
	}
	return &page, nil
}
