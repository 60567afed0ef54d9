package measure

import (
	"errors"
	"testing"
)

// fakeMeasurer 글자 수 × 포인트 크기에 비례하는 폭을 돌려주는 가짜 측정기
type fakeMeasurer struct{}

func (fakeMeasurer) Measure(text string, points float64) (w, h float64, err error) {
	return points * float64(len([]rune(text))), points, nil
}

// narrowMeasurer 항상 아주 좁은 폭을 돌려준다 (폭 하한 검증용)
type narrowMeasurer struct{}

func (narrowMeasurer) Measure(text string, points float64) (w, h float64, err error) {
	return 0.5, points, nil
}

// failMeasurer 항상 실패한다 (폴백 경로 검증용)
type failMeasurer struct{}

func (failMeasurer) Measure(text string, points float64) (w, h float64, err error) {
	return 0, 0, errors.New("measure failed")
}

// TestEstimate_PlainMeasured 분수 없는 수식은 전체를 한 번에 잰다
func TestEstimate_PlainMeasured(t *testing.T) {
	est := New(fakeMeasurer{})
	got := est.Estimate("x+1", "x+1")
	if got.Width != 3000 || got.Height != heightPlain {
		t.Errorf("Estimate = %+v, want {3000 %d}", got, heightPlain)
	}
}

// TestEstimate_SqrtHeight 근호가 있으면 키가 커진다
func TestEstimate_SqrtHeight(t *testing.T) {
	est := New(fakeMeasurer{})
	got := est.Estimate(`\sqrt{2}`, "sqrt {2}")
	if got.Height != heightSqrt {
		t.Errorf("Height = %d, want %d", got.Height, heightSqrt)
	}
}

// TestEstimate_FracComposed 분자·분모는 축소 측정 후 합성된다
func TestEstimate_FracComposed(t *testing.T) {
	est := New(fakeMeasurer{})
	got := est.Estimate(`\frac{1}{2}`, "{1} over {2}")
	if got.Height != heightFrac {
		t.Errorf("Height = %d, want %d", got.Height, heightFrac)
	}
	// max(분자, 분모) + 가로줄 여백 — 대략 850 + 300
	if got.Width < 1100 || got.Width > 1200 {
		t.Errorf("Width = %d, want ~1150", got.Width)
	}
}

// TestEstimate_FracWithPrefix 앞뒤 식은 본문 크기로 재고 간격을 더한다
func TestEstimate_FracWithPrefix(t *testing.T) {
	est := New(fakeMeasurer{})
	plain := est.Estimate(`\frac{1}{2}`, "{1} over {2}")
	prefixed := est.Estimate(`a + \frac{1}{2}`, "a + {1} over {2}")
	if prefixed.Width <= plain.Width {
		t.Errorf("prefixed Width = %d, want > %d", prefixed.Width, plain.Width)
	}
}

// TestEstimate_NumeratorMonotonic 분자가 길수록 폭이 줄지 않는다
func TestEstimate_NumeratorMonotonic(t *testing.T) {
	est := New(fakeMeasurer{})
	short := est.Estimate(`\frac{1}{2}`, "{1} over {2}")
	long := est.Estimate(`\frac{111}{2}`, "{111} over {2}")
	if long.Width < short.Width {
		t.Errorf("long numerator Width = %d < short %d", long.Width, short.Width)
	}
}

// TestFallback_NumeratorMonotonic 폴백 경로에서도 같은 단조성
func TestFallback_NumeratorMonotonic(t *testing.T) {
	est := New(nil)
	short := est.Fallback("{1} over {2}")
	long := est.Fallback("{111} over {2}")
	if long.Width < short.Width {
		t.Errorf("long numerator Width = %d < short %d", long.Width, short.Width)
	}
}

// TestEstimate_FracSqrtHeight 분수와 근호가 같이 있으면 가장 큰 키
func TestEstimate_FracSqrtHeight(t *testing.T) {
	est := New(fakeMeasurer{})
	got := est.Estimate(`\frac{\sqrt{2}}{2}`, "{sqrt {2}} over {2}")
	if got.Height != heightBoth {
		t.Errorf("Height = %d, want %d", got.Height, heightBoth)
	}
}

// TestEstimate_MinWidth 폭 하한
func TestEstimate_MinWidth(t *testing.T) {
	est := New(narrowMeasurer{})
	got := est.Estimate("x", "x")
	if got.Width != minWidth {
		t.Errorf("Width = %d, want %d", got.Width, minWidth)
	}
}

// TestEstimate_MeasurerFailure 측정 실패는 폴백으로 흡수된다
func TestEstimate_MeasurerFailure(t *testing.T) {
	est := New(failMeasurer{})
	got := est.Estimate("x+1", "x+1")
	fallback := est.Fallback("x+1")
	if got != fallback {
		t.Errorf("Estimate = %+v, want fallback %+v", got, fallback)
	}
}

// TestEstimate_NilMeasurer 측정기 없이도 항상 크기를 돌려준다
func TestEstimate_NilMeasurer(t *testing.T) {
	est := New(nil)
	got := est.Estimate("x", "x")
	if got.Width <= 0 || got.Height <= 0 {
		t.Errorf("Estimate = %+v, want positive", got)
	}
}

// TestFallback_Plain 단순 수식
func TestFallback_Plain(t *testing.T) {
	est := New(nil)
	got := est.Fallback("x ^{2}")
	// x(1) + 첨자 2(0.5) = 1.5 글리프
	if got.Width != 1175 || got.Height != heightPlain {
		t.Errorf("Fallback = %+v, want {1175 %d}", got, heightPlain)
	}
}

// TestFallback_SupSubHalfWeight 첨자는 절반 가중치
func TestFallback_SupSubHalfWeight(t *testing.T) {
	est := New(nil)
	sub := est.Fallback("x ^{22}")
	flat := est.Fallback("x22")
	if sub.Width >= flat.Width {
		t.Errorf("sup/sub Width = %d, want < %d", sub.Width, flat.Width)
	}
}

// TestFallback_FracMaxSide 분자/분모 중 넓은 쪽이 폭을 정한다
func TestFallback_FracMaxSide(t *testing.T) {
	est := New(nil)
	got := est.Fallback("{123} over {4}")
	if got.Height != heightFrac {
		t.Errorf("Height = %d, want %d", got.Height, heightFrac)
	}
	// 3 글리프 기준 폭에 스택 계수
	if got.Width < 3000 || got.Width > 3100 {
		t.Errorf("Width = %d, want ~3010", got.Width)
	}
}

// TestFallback_Atop atop 도 분수와 같이 취급
func TestFallback_Atop(t *testing.T) {
	est := New(nil)
	got := est.Fallback("{n} atop {k}")
	if got.Height != heightFrac {
		t.Errorf("Height = %d, want %d", got.Height, heightFrac)
	}
}

// TestFallback_RootHeight 근호 키
func TestFallback_RootHeight(t *testing.T) {
	est := New(nil)
	got := est.Fallback("sqrt {x}")
	if got.Height != heightSqrt {
		t.Errorf("Height = %d, want %d", got.Height, heightSqrt)
	}
}

// TestFallback_FracAndRoot 분수+근호는 가장 큰 키
func TestFallback_FracAndRoot(t *testing.T) {
	est := New(nil)
	got := est.Fallback("{sqrt {2}} over {2}")
	if got.Height != heightBoth {
		t.Errorf("Height = %d, want %d", got.Height, heightBoth)
	}
}

// TestFallback_WideGlyphs 전각 문자는 2칸
func TestFallback_WideGlyphs(t *testing.T) {
	est := New(nil)
	got := est.Fallback(`"속력"`)
	// 따옴표 2 + 전각 2×2 = 6 글리프
	if got.Width != 4100 || got.Height != heightPlain {
		t.Errorf("Fallback = %+v, want {4100 %d}", got, heightPlain)
	}
}

// TestFallback_SymbolKeywordsOneGlyph 기호 키워드는 글리프 1개
func TestFallback_SymbolKeywordsOneGlyph(t *testing.T) {
	est := New(nil)
	long := est.Fallback("alpha")
	short := est.Fallback("a")
	if long.Width != short.Width {
		t.Errorf("alpha Width = %d, a Width = %d, want equal", long.Width, short.Width)
	}
}

// TestFallback_StructKeywordsZeroGlyph 구조 키워드는 폭에 기여하지 않는다
func TestFallback_StructKeywordsZeroGlyph(t *testing.T) {
	est := New(nil)
	a := est.Fallback("LEFT ( x RIGHT )")
	b := est.Fallback("( x )")
	if a != b {
		t.Errorf("LEFT/RIGHT = %+v, bare = %+v, want equal", a, b)
	}
}

// TestFallback_MinWidth 빈 스크립트도 폭 하한을 지킨다
func TestFallback_MinWidth(t *testing.T) {
	est := New(nil)
	got := est.Fallback("")
	if got.Width != minWidth || got.Height != heightPlain {
		t.Errorf("Fallback = %+v, want {%d %d}", got, minWidth, heightPlain)
	}
}
