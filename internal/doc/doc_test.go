package doc

import "testing"

// TestParseContentType 알 수 없는 유형은 Text 로 내려간다
func TestParseContentType(t *testing.T) {
	cases := map[string]ContentType{
		"text":           Text,
		"equation":       Equation,
		"equation_block": EquationBlock,
		"image":          Image,
		"table":          Text,
		"":               Text,
	}
	for in, want := range cases {
		if got := ParseContentType(in); got != want {
			t.Errorf("ParseContentType(%q) = %v, want %v", in, got, want)
		}
	}
}

// TestContentType_String 문자열 왕복
func TestContentType_String(t *testing.T) {
	for _, ct := range []ContentType{Text, Equation, EquationBlock, Image} {
		if got := ParseContentType(ct.String()); got != ct {
			t.Errorf("round trip %v → %q → %v", ct, ct.String(), got)
		}
	}
}

// TestIsEquation 수식 판별
func TestIsEquation(t *testing.T) {
	if !(Block{Type: Equation}).IsEquation() || !(Block{Type: EquationBlock}).IsEquation() {
		t.Error("equation blocks should report IsEquation")
	}
	if (Block{Type: Text}).IsEquation() || (Block{Type: Image}).IsEquation() {
		t.Error("non-equation blocks should not report IsEquation")
	}
}

// TestAllQuestions 페이지 순서를 유지한다
func TestAllQuestions(t *testing.T) {
	d := &Document{Pages: []Page{
		{Number: 1, Questions: []Question{{Number: 1}, {Number: 2}}},
		{Number: 2, Questions: []Question{{Number: 3}}},
	}}
	qs := d.AllQuestions()
	if len(qs) != 3 || qs[0].Number != 1 || qs[2].Number != 3 {
		t.Errorf("AllQuestions = %+v", qs)
	}
}
