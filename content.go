package exampaper

import (
	"github.com/soseon203/exam-paper-korean/internal/doc"
	"github.com/soseon203/exam-paper-korean/internal/segment"
)

// 내부 타입 별칭 재노출
type (
	// Span 은 분할된 텍스트 구간 하나.
	Span = segment.Span
	// SpanKind 는 구간의 종류 (텍스트/수식/강조).
	SpanKind = segment.Kind

	// Block 은 조립된 문서의 콘텐츠 블록.
	Block = doc.Block
	// ContentType 은 블록 유형.
	ContentType = doc.ContentType
	// EquationScript 는 변환된 HWP 수식 스크립트와 추정 크기.
	EquationScript = doc.EquationScript

	// Document / Page / Question / Choice 는 조립 결과 트리.
	Document = doc.Document
	Page     = doc.Page
	Question = doc.Question
	Choice   = doc.Choice
)

const (
	// SpanText 일반 텍스트 구간
	SpanText = segment.PlainText
	// SpanEquation 수식 구간
	SpanEquation = segment.Equation
	// SpanEmphasized 강조 구간
	SpanEmphasized = segment.Emphasized
)

const (
	// ContentText 텍스트 블록
	ContentText = doc.Text
	// ContentEquation 인라인 수식 블록
	ContentEquation = doc.Equation
	// ContentEquationBlock 표시 수식 블록
	ContentEquationBlock = doc.EquationBlock
	// ContentImage 이미지 블록
	ContentImage = doc.Image
)
