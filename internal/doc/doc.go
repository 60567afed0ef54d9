// Package doc 시험 문서의 타입 트리
//
// OCR 레코드를 조립한 결과물이며, 외부 문서 작성기(HWPX writer)가
// 소비하는 경계 타입이다. 이 패키지는 동작이 거의 없는 순수 데이터다.
package doc

// ContentType 콘텐츠 블록 유형. 닫힌 열거형 — switch 는 항상
// default 로 알 수 없는 유형을 텍스트 취급해야 한다.
type ContentType int

const (
	// Text 자연어 텍스트
	Text ContentType = iota
	// Equation 인라인 수식
	Equation
	// EquationBlock 독립행 수식
	EquationBlock
	// Image 이미지 참조
	Image
)

// String returns the string representation of ContentType.
func (t ContentType) String() string {
	switch t {
	case Text:
		return "text"
	case Equation:
		return "equation"
	case EquationBlock:
		return "equation_block"
	case Image:
		return "image"
	default:
		return "unknown"
	}
}

// ParseContentType 은 OCR 레코드의 type 문자열을 열거형으로 바꾼다.
// 알 수 없는 문자열은 가장 보수적인 Text 로 내려간다.
func ParseContentType(s string) ContentType {
	switch s {
	case "text":
		return Text
	case "equation":
		return Equation
	case "equation_block":
		return EquationBlock
	case "image":
		return Image
	default:
		return Text
	}
}

// EquationScript 변환된 HWP 수식 스크립트와 레이아웃 크기.
// 크기 단위는 hwpunit (1/100 pt).
type EquationScript struct {
	Script string
	Width  int
	Height int
}

// Block 문서 내 개별 콘텐츠 블록.
//
// Value 는 Text 면 텍스트, Equation/EquationBlock 이면 LaTeX 원본,
// Image 면 파일 경로다. Script 는 수식 블록에서만 채워진다.
type Block struct {
	Type     ContentType
	Value    string
	Script   *EquationScript
	Emphasis bool // 밑줄 강조 텍스트
	Fallback bool // 수식 변환 실패로 리터럴 텍스트로 내려간 블록
}

// IsEquation 은 블록이 수식인지 돌려준다.
func (b Block) IsEquation() bool {
	return b.Type == Equation || b.Type == EquationBlock
}

// Choice 선택지 (①~⑤)
type Choice struct {
	Number   int
	Contents []Block
}

// Question 시험 문제 하나
type Question struct {
	Number       int
	Score        int
	Contents     []Block
	Choices      []Choice
	SubQuestions []Question
}

// Page 시험지 한 페이지
type Page struct {
	Number    int
	Header    string // 페이지 상단 (과목명, 학년 등)
	Questions []Question
}

// Document 전체 시험 문서
type Document struct {
	Title   string
	Subject string
	Grade   string
	Pages   []Page
}

// AllQuestions 는 모든 페이지의 문제를 순서대로 돌려준다.
func (d *Document) AllQuestions() []Question {
	var questions []Question
	for _, p := range d.Pages {
		questions = append(questions, p.Questions...)
	}
	return questions
}
