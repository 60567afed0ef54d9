package measure

// HWP 수식 스크립트 키워드 분류 (폴백 휴리스틱용)
//
// 긴 이름을 앞에 두어 부분 일치를 막는다 — "epsilon" 을 먼저
// 치환하면 "varepsilon" 이 깨진다.

// symbolKeywords 1문자 기호로 렌더링되는 키워드
var symbolKeywords = []string{
	// 변환기가 생성하는 대문자 키워드
	"PLUSMINUS", "MINUSPLUS", "SMALLUNION", "SMALLINTER",
	"APPROX", "PROPTO", "LAPLACE", "BULLET", "TRIANGLE",
	"DIAMOND", "SQUARE",
	"EQUIV", "SIMEQ", "ASYMP", "DOTEQ",
	"TIMES", "CDOT", "EXIST",
	"WEDGE", "LNOT", "OPLUS", "OTIMES",
	"VDASH", "MODELS",
	"PREC", "SUCC", "CONG", "OWNS", "CIRC", "STAR",
	"DIV", "LEQ", "GEQ", "SIM", "VEE", "BOT", "TOP",
	// 소문자 그리스 문자
	"varepsilon", "vartheta", "varphi",
	"epsilon", "upsilon", "lambda",
	"alpha", "beta", "gamma", "delta", "zeta", "eta", "theta",
	"iota", "kappa", "mu", "nu", "xi", "pi", "rho", "sigma",
	"tau", "phi", "chi", "psi", "omega",
	// 기타 소문자 키워드
	"partial", "therefore", "because", "forall", "exists",
	"emptyset", "subseteq", "supseteq", "subset", "supset",
	"notin", "parallel",
	"infty", "prime", "dprime", "angle", "nabla", "bullet",
	"approx", "propto", "equiv", "neq", "leq", "geq", "sim",
	"cdot", "times", "div", "pm", "mp", "inf", "in",
}

// largeOpKeywords 넓은 1문자 기호 (대형 연산자)
var largeOpKeywords = []string{"SUM", "PROD", "OINT", "DINT", "TINT", "INT"}

// structKeywords 렌더링에 글리프를 보태지 않는 구조 키워드
var structKeywords = []string{
	"eqalign", "matrix", "cases", "pile",
	"sqrt", "root", "of",
	"over", "atop",
	"from", "left", "right",
	"roman", "bold", "ital",
	"to",
}
