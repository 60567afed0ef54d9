package exampaper

import (
	"context"
	"errors"
	"testing"
)

// TestSegment_PublicAPI 분할 공개 API
func TestSegment_PublicAPI(t *testing.T) {
	spans := Segment("옳지 __않은__ 것은?")
	if len(spans) != 3 {
		t.Fatalf("spans = %+v", spans)
	}
	if spans[1].Kind != SpanEmphasized || spans[1].Text != "않은" {
		t.Errorf("spans[1] = %+v", spans[1])
	}
}

// TestJoinSpans_RoundTrip 분할 → 복원 멱등성
func TestJoinSpans_RoundTrip(t *testing.T) {
	text := `함수 $f(x) = x^2$ 의 최솟값은?`
	if got := JoinSpans(Segment(text)); got != text {
		t.Errorf("JoinSpans = %q, want %q", got, text)
	}
}

// TestTranspile 변환 공개 API
func TestTranspile(t *testing.T) {
	got, err := Transpile(`\sum_{i=0}^{n} i`)
	if err != nil {
		t.Fatalf("Transpile error: %v", err)
	}
	if got != "SUM _{i=0} ^{n} i" {
		t.Errorf("Transpile = %q", got)
	}
}

// TestTranspile_DepthError 깊이 한계 오류는 공개 별칭과 일치
func TestTranspile_DepthError(t *testing.T) {
	s := "x"
	for i := 0; i < 60; i++ {
		s = `\frac{` + s + `}{1}`
	}
	if _, err := Transpile(s); !errors.Is(err, ErrTranspileDepth) {
		t.Errorf("error = %v, want ErrTranspileDepth", err)
	}
}

// TestEstimateSize 크기는 항상 양수
func TestEstimateSize(t *testing.T) {
	w, h := EstimateSize(`\frac{1}{2}`, "{1} over {2}", WithMeasurer(nil))
	if w <= 0 || h <= 0 {
		t.Errorf("EstimateSize = %dx%d, want positive", w, h)
	}
}

// TestAssembleDocument 전체 파이프라인
func TestAssembleDocument(t *testing.T) {
	reply := "```json\n" + `{
	  "header": "2026학년도 수학 모의평가",
	  "questions": [
	    {"number": 1, "score": 2, "contents": [
	      {"type": "text", "value": "$x^2$ 의 값은?"}
	    ]}
	  ]
	}` + "\n```"

	payload, err := ExtractJSON(reply)
	if err != nil {
		t.Fatalf("ExtractJSON error: %v", err)
	}
	page, err := DecodePage(payload)
	if err != nil {
		t.Fatalf("DecodePage error: %v", err)
	}
	if q := ValidatePage(page); !q.Valid {
		t.Fatalf("ValidatePage warnings: %v", q.Warnings)
	}

	d, err := AssembleDocument(context.Background(), []*RawPage{page}, "",
		WithSubject("수학"), WithGrade("고3"), WithMeasurer(nil))
	if err != nil {
		t.Fatalf("AssembleDocument error: %v", err)
	}
	if d.Title != "2026학년도 수학 모의평가" || d.Subject != "수학" {
		t.Errorf("Document = %+v", d)
	}
	qs := d.AllQuestions()
	if len(qs) != 1 {
		t.Fatalf("AllQuestions = %d, want 1", len(qs))
	}
	eq := qs[0].Contents[0]
	if !eq.IsEquation() || eq.Script.Script != "x ^{2}" {
		t.Errorf("equation block = %+v", eq)
	}
}

// TestAssembleDocument_Cancelled 취소된 컨텍스트
func TestAssembleDocument_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := AssembleDocument(ctx, nil, ""); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

// TestAssemblePage 페이지 단위 조립
func TestAssemblePage(t *testing.T) {
	raw := &RawPage{Header: "머리글"}
	page := AssemblePage(raw, 3, WithMeasurer(nil))
	if page.Number != 3 || page.Header != "머리글" {
		t.Errorf("page = %+v", page)
	}
}
