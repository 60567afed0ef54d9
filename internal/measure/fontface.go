package measure

import (
	"fmt"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

// fontMeasurer 는 내장 TTF 폰트와 래스터 컨텍스트로 텍스트 폭을 잰다.
//
// 렌더링 컨텍스트는 프로세스 로컬 자원이므로 mutex 로 직렬화한다.
// 호출자가 병렬 측정이 필요하면 측정기를 풀링하면 된다.
type fontMeasurer struct {
	mu   sync.Mutex
	font *truetype.Font
	ctx  *gg.Context
}

// NewFontMeasurer 는 내장 Go Regular 폰트 기반의 기본 측정기를 만든다.
func NewFontMeasurer() (Measurer, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("measure: 내장 폰트 파싱 실패: %w", err)
	}
	return &fontMeasurer{
		font: f,
		ctx:  gg.NewContext(1, 1),
	}, nil
}

// Measure 는 텍스트의 렌더링 크기를 픽셀(72 DPI)로 돌려준다.
func (m *fontMeasurer) Measure(text string, points float64) (float64, float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	face := truetype.NewFace(m.font, &truetype.Options{
		Size: points,
		DPI:  72,
	})
	defer face.Close()

	m.ctx.SetFontFace(face)
	w, h := m.ctx.MeasureString(text)
	return w, h, nil
}
