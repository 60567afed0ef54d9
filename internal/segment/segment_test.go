package segment

import (
	"reflect"
	"testing"
)

func assertSpans(t *testing.T, got, want []Span) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("spans = %v, want %v", got, want)
	}
}

// TestSegment_Empty 빈 입력은 빈 목록
func TestSegment_Empty(t *testing.T) {
	if got := Segment(""); len(got) != 0 {
		t.Errorf("Segment(\"\") = %v, want empty", got)
	}
}

// TestSegment_PlainHangul 순수 한글 문장은 그대로
func TestSegment_PlainHangul(t *testing.T) {
	assertSpans(t, Segment("다음 물음에 답하시오."),
		[]Span{{PlainText, "다음 물음에 답하시오."}})
}

// TestSegment_Emphasis 밑줄 강조 분리
func TestSegment_Emphasis(t *testing.T) {
	assertSpans(t, Segment("옳지 __않은__ 것은?"),
		[]Span{
			{PlainText, "옳지 "},
			{Emphasized, "않은"},
			{PlainText, " 것은?"},
		})
}

// TestSegment_EmphasisUnpaired 짝 없는 마커는 리터럴
func TestSegment_EmphasisUnpaired(t *testing.T) {
	assertSpans(t, Segment("값은 __얼마인가"),
		[]Span{{PlainText, "값은 __얼마인가"}})
}

// TestSegment_EmphasisEmpty 내용이 빈 마커는 리터럴
func TestSegment_EmphasisEmpty(t *testing.T) {
	assertSpans(t, Segment("가____나"),
		[]Span{
			{PlainText, "가__"},
			{PlainText, "__나"},
		})
}

// TestSegment_ExplicitEquation $...$ 수식 분리
func TestSegment_ExplicitEquation(t *testing.T) {
	assertSpans(t, Segment(`함수 $f(x) = x^2$ 의 최솟값은?`),
		[]Span{
			{PlainText, "함수 "},
			{Equation, `f(x) = x^2`},
			{PlainText, " 의 최솟값은?"},
		})
}

// TestSegment_DollarUnpaired 짝 없는 $ 는 리터럴
func TestSegment_DollarUnpaired(t *testing.T) {
	assertSpans(t, Segment("가격은 $얼마"),
		[]Span{{PlainText, "가격은 $얼마"}})
}

// TestSegment_DoubleDollar 인접한 $$ 는 여는 기호가 아니다
func TestSegment_DoubleDollar(t *testing.T) {
	assertSpans(t, Segment("$$x$$"),
		[]Span{{PlainText, "$$x$$"}})
}

// TestSegment_EmptyEquation trim 후 빈 수식은 버린다
func TestSegment_EmptyEquation(t *testing.T) {
	assertSpans(t, Segment("좌변 $ $ 우변"),
		[]Span{
			{PlainText, "좌변 "},
			{PlainText, " 우변"},
		})
}

// TestSegment_CommaSplit 수식 안의 최상위 쉼표 분할
func TestSegment_CommaSplit(t *testing.T) {
	assertSpans(t, Segment(`$A=2^6, B=3^6$`),
		[]Span{
			{Equation, "A=2^6"},
			{PlainText, ", "},
			{Equation, "B=3^6"},
		})
}

// TestSegment_CommaInsideParens 괄호 안의 쉼표는 보호된다
func TestSegment_CommaInsideParens(t *testing.T) {
	assertSpans(t, Segment(`$f(a, b)$`),
		[]Span{{Equation, "f(a, b)"}})
}

// TestSegment_CommaSingPart 비어 있지 않은 부분이 하나면 분할하지 않는다
func TestSegment_CommaSingPart(t *testing.T) {
	assertSpans(t, Segment(`$x=1,$`),
		[]Span{{Equation, "x=1,"}})
}

// TestSegment_MixedHeuristic 한글 문장 속 수식 run 분리
func TestSegment_MixedHeuristic(t *testing.T) {
	assertSpans(t, Segment("(a > 0, b는 정수)에서"),
		[]Span{
			{PlainText, "("},
			{Equation, "a > 0"},
			{PlainText, ", "},
			{Equation, "b"},
			{PlainText, "는 정수)에서"},
		})
}

// TestSegment_IsolatedDigit 연산자 없는 고립 숫자는 승격하지 않는다
func TestSegment_IsolatedDigit(t *testing.T) {
	assertSpans(t, Segment("3번 문제에서 x는"),
		[]Span{
			{PlainText, "3번 문제에서 "},
			{Equation, "x"},
			{PlainText, "는"},
		})
}

// TestSegment_EnglishWordNotPromoted 연산자 없는 영어 단어는 승격하지 않는다
func TestSegment_EnglishWordNotPromoted(t *testing.T) {
	assertSpans(t, Segment("서울에서 Apple 을"),
		[]Span{{PlainText, "서울에서 Apple 을"}})
}

// TestSegment_NoHangulNoHeuristic 한글이 없으면 휴리스틱이 꺼진다
func TestSegment_NoHangulNoHeuristic(t *testing.T) {
	assertSpans(t, Segment("a = b + c"),
		[]Span{{PlainText, "a = b + c"}})
}

// TestSegment_LongRunRejected 20자를 넘는 run 은 자연어로 본다
func TestSegment_LongRunRejected(t *testing.T) {
	long := "abcde1234 + fghij5678 + klmno9012에서 y는"
	got := Segment(long)
	for _, sp := range got {
		if sp.Kind == Equation && len([]rune(sp.Text)) > 20 {
			t.Errorf("run %q 은 거부되어야 함", sp.Text)
		}
	}
}

// TestJoin_RoundTrip Join 후 Segment 는 동등해야 한다
func TestJoin_RoundTrip(t *testing.T) {
	cases := []string{
		"옳지 __않은__ 것은?",
		`함수 $f(x) = x^2$ 의 최솟값은?`,
		"다음 물음에 답하시오.",
	}
	for _, text := range cases {
		spans := Segment(text)
		again := Segment(Join(spans))
		assertSpans(t, again, spans)
	}
}

// TestMixedHeuristic_Revert 분할 결과가 2개 미만이면 원본 유지
func TestMixedHeuristic_Revert(t *testing.T) {
	got := MixedHeuristic("서울에서 Apple")
	assertSpans(t, got, []Span{{PlainText, "서울에서 Apple"}})
}

// TestMixedHeuristic_WordInterior 단어 내부의 문자는 run 시작이 아니다
func TestMixedHeuristic_WordInterior(t *testing.T) {
	// "km" 의 m 에서 run 이 시작되면 안 된다
	got := MixedHeuristic("거리 3 km 에서 x = 1 이다")
	want := []Span{
		{PlainText, "거리 3 km 에서 "},
		{Equation, "x = 1"},
		{PlainText, " 이다"},
	}
	assertSpans(t, got, want)
}
