package assemble

import (
	"errors"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ErrNoJSON 응답에서 JSON 을 찾지 못했을 때
var ErrNoJSON = errors.New("assemble: 응답에서 JSON 블록을 찾을 수 없음")

// ExtractJSON 은 OCR 모델의 마크다운 응답에서 JSON 페이로드를 꺼낸다.
//
// 모델은 보통 ```json 펜스 블록으로 감싸 응답하므로 마크다운 AST 에서
// 첫 번째 펜스 코드 블록을 찾는다 (info 가 json 인 블록 우선).
// 펜스가 없으면 첫 '{' 부터 나머지를 그대로 취한다.
func ExtractJSON(reply string) ([]byte, error) {
	source := []byte(reply)
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(source))

	var jsonBlock, anyBlock []byte
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fenced, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		body := fencedBody(fenced, source)
		if anyBlock == nil {
			anyBlock = body
		}
		if jsonBlock == nil && string(fenced.Language(source)) == "json" {
			jsonBlock = body
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})

	if jsonBlock != nil {
		return jsonBlock, nil
	}
	if anyBlock != nil {
		return anyBlock, nil
	}

	// 펜스 없이 맨 JSON 이 온 경우
	if i := strings.IndexByte(reply, '{'); i >= 0 {
		return []byte(strings.TrimSpace(reply[i:])), nil
	}
	return nil, ErrNoJSON
}

func fencedBody(fenced *ast.FencedCodeBlock, source []byte) []byte {
	var b strings.Builder
	lines := fenced.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
	return []byte(strings.TrimSpace(b.String()))
}
