// Package exampaper 는 OCR 로 읽은 한국어 시험지를 구조화된 문서로 조립한다
//
// 이 패키지는 수학 시험지 OCR 파이프라인의 후처리 단계를 담당한다.
// OCR 모델이 돌려준 페이지 레코드(JSON)를 받아 텍스트 안에 섞인 수식과
// 강조 구간을 분리하고, LaTeX 수식을 HWP 수식 스크립트로 변환하며,
// 변환된 수식의 렌더링 크기를 추정해 완성된 문서 트리를 만든다.
//
// 핵심 기능：
//   - 텍스트/수식/강조 구간 분할 (명시적 $...$ 와 한·영 혼용 휴리스틱)
//   - LaTeX → HWP 수식 스크립트 변환
//   - 수식 렌더링 크기 추정 (폰트 측정 또는 문자 기반 추정)
//   - OCR 응답에서 JSON 추출 및 페이지 레코드 검증
//
// 주요 API：
//   - Segment(): 텍스트를 구간 목록으로 분할
//   - Transpile(): LaTeX 수식 하나를 HWP 스크립트로 변환
//   - AssemblePage(): 페이지 레코드 하나를 문서 페이지로 조립
//   - AssembleDocument(): 여러 페이지를 병렬로 조립해 문서 완성
//
// 예시：
//
//	// 수식 하나 변환
//	script, err := exampaper.Transpile(`\frac{1}{2}`)
//
//	// 전체 문서 조립
//	doc, err := exampaper.AssembleDocument(ctx, pages, "2026 모의고사", nil)
//	for _, q := range doc.AllQuestions() {
//	    for _, b := range q.Contents {
//	        if b.IsEquation() {
//	            // b.Script.Script 를 HWPX 수식 개체로 기록
//	        }
//	    }
//	}
package exampaper
