package exampaper

import (
	"sync"

	"github.com/soseon203/exam-paper-korean/internal/measure"
)

// 측정기 타입 별칭
type Measurer = measure.Measurer

// Config 는 조립 파이프라인의 설정.
type Config struct {
	// Measurer 는 수식 크기 추정에 쓸 폰트 측정기. nil 이면 문자 기반
	// 추정으로 대체된다.
	Measurer Measurer
}

var (
	defaultConfig     *Config
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default pipeline configuration (singleton).
// 폰트 측정기 초기화에 실패하면 문자 기반 추정만 쓰는 설정을 돌려준다.
func DefaultConfig() *Config {
	defaultConfigOnce.Do(func() {
		defaultConfig = &Config{}
		if m, err := measure.NewFontMeasurer(); err == nil {
			defaultConfig.Measurer = m
		} else {
			Logger.Printf("폰트 측정기 초기화 실패, 문자 기반 추정 사용: %v", err)
		}
	})
	return defaultConfig
}
