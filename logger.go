package exampaper

import (
	"log"
	"os"
)

// Logger 전역 로거
var Logger = log.New(os.Stderr, "[exampaper] ", log.LstdFlags)

// SetLogger 는 커스텀 로거를 지정한다
func SetLogger(logger *log.Logger) {
	Logger = logger
}
