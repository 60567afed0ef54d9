package hwpeq

import "sort"

// LaTeX 명령 → HWP 수식 스크립트 토큰 매핑 테이블
//
// 모든 테이블은 프로세스 시작 시 한 번 구성되는 읽기 전용 설정이다.
// 치환은 긴 명령 우선으로 진행하고 명령 경계를 확인한다 — \le 는
// \leq 의 접두사이고 \in 은 \inf 의 접두사다.

// GreekMap 그리스 문자 (HWP 규칙: 대문자는 첫 글자만 대문자)
var GreekMap = map[string]string{
	`\alpha`:   "alpha",
	`\beta`:    "beta",
	`\gamma`:   "gamma",
	`\delta`:   "delta",
	`\epsilon`: "epsilon",
	`\varepsilon`: "varepsilon",
	`\zeta`:    "zeta",
	`\eta`:     "eta",
	`\theta`:   "theta",
	`\vartheta`: "vartheta",
	`\iota`:    "iota",
	`\kappa`:   "kappa",
	`\lambda`:  "lambda",
	`\mu`:      "mu",
	`\nu`:      "nu",
	`\xi`:      "xi",
	`\pi`:      "pi",
	`\rho`:     "rho",
	`\sigma`:   "sigma",
	`\tau`:     "tau",
	`\upsilon`: "upsilon",
	`\phi`:     "phi",
	`\varphi`:  "varphi",
	`\chi`:     "chi",
	`\psi`:     "psi",
	`\omega`:   "omega",
	`\Gamma`:   "Gamma",
	`\Delta`:   "Delta",
	`\Theta`:   "Theta",
	`\Lambda`:  "Lambda",
	`\Xi`:      "Xi",
	`\Pi`:      "Pi",
	`\Sigma`:   "Sigma",
	`\Upsilon`: "Upsilon",
	`\Phi`:     "Phi",
	`\Chi`:     "Chi",
	`\Psi`:     "Psi",
	`\Omega`:   "Omega",
}

// SymbolMap 연산자/기호
var SymbolMap = map[string]string{
	// 산술
	`\times`: "TIMES",
	`\cdot`:  "CDOT",
	`\div`:   "DIV",
	`\pm`:    "PLUSMINUS",
	`\mp`:    "MINUSPLUS",
	// 관계
	`\leq`:    "LEQ",
	`\le`:     "LEQ",
	`\geq`:    "GEQ",
	`\ge`:     "GEQ",
	`\neq`:    "neq",
	`\ne`:     "neq",
	`\approx`: "APPROX",
	`\equiv`:  "EQUIV",
	`\sim`:    "SIM",
	`\simeq`:  "SIMEQ",
	`\cong`:   "CONG",
	`\propto`: "PROPTO",
	`\asymp`:  "ASYMP",
	`\doteq`:  "DOTEQ",
	`\prec`:   "PREC",
	`\succ`:   "SUCC",
	`\ll`:     "<<",
	`\gg`:     ">>",
	// 특수 기호
	`\infty`:     "inf",
	`\partial`:   "partial",
	`\nabla`:     "LAPLACE",
	`\forall`:    "forall",
	`\exists`:    "EXIST",
	`\in`:        "in",
	`\notin`:     "notin",
	`\ni`:        "OWNS",
	`\subset`:    "subset",
	`\supset`:    "supset",
	`\subseteq`:  "subseteq",
	`\supseteq`:  "supseteq",
	`\cup`:       "SMALLUNION",
	`\cap`:       "SMALLINTER",
	`\emptyset`:  "emptyset",
	`\vee`:       "VEE",
	`\lor`:       "VEE",
	`\wedge`:     "WEDGE",
	`\land`:      "WEDGE",
	`\neg`:       "LNOT",
	`\lnot`:      "LNOT",
	`\oplus`:     "OPLUS",
	`\otimes`:    "OTIMES",
	`\therefore`: "therefore",
	`\because`:   "because",
	`\angle`:     "angle",
	`\perp`:      "BOT",
	`\parallel`:  "parallel",
	`\triangle`:  "TRIANGLE",
	`\square`:    `"□"`,
	`\circ`:      "CIRC",
	`\bullet`:    "BULLET",
	`\star`:      "STAR",
	`\diamond`:   "DIAMOND",
	`\top`:       "TOP",
	`\vdash`:     "VDASH",
	`\models`:    "MODELS",
	// 화살표 — 단일선
	`\rightarrow`:     "->",
	`\leftarrow`:      "<-",
	`\leftrightarrow`: "<->",
	`\to`:             "->",
	`\gets`:           "<-",
	`\uparrow`:        "uparrow",
	`\downarrow`:      "downarrow",
	`\updownarrow`:    "udarrow",
	`\nearrow`:        "nearrow",
	`\nwarrow`:        "nwarrow",
	`\searrow`:        "searrow",
	`\swarrow`:        "swarrow",
	`\hookleftarrow`:  "hookleft",
	`\hookrightarrow`: "hookright",
	`\mapsto`:         "mapsto",
	// 화살표 — 이중선
	`\Rightarrow`:     "RARROW",
	`\Leftarrow`:      "LARROW",
	`\Leftrightarrow`: "LRARROW",
	`\Uparrow`:        "UPARROW",
	`\Downarrow`:      "DOWNARROW",
	`\Updownarrow`:    "UDARROW",
	// 점
	`\ldots`: "LDOTS",
	`\cdots`: "CDOTS",
	`\vdots`: "VDOTS",
	`\ddots`: "DDOTS",
	// 기타
	`\prime`:   "prime",
	`\aleph`:   "ALEPH",
	`\hbar`:    "HBAR",
	`\imath`:   "IMATH",
	`\jmath`:   "JMATH",
	`\ell`:     "ELL",
	`\wp`:      "WP",
	`\Im`:      "IMAG",
	`\Re`:      "REIMAGE",
	`\dagger`:  "DAGGER",
	`\ddagger`: "DDAGGER",
}

// FuncMap 함수명 (HWP 는 소문자 토큰)
var FuncMap = map[string]string{
	`\sin`:    "sin",
	`\cos`:    "cos",
	`\tan`:    "tan",
	`\sec`:    "sec",
	`\csc`:    "csc",
	`\cot`:    "cot",
	`\cosec`:  "cosec",
	`\arcsin`: "arcsin",
	`\arccos`: "arccos",
	`\arctan`: "arctan",
	`\sinh`:   "sinh",
	`\cosh`:   "cosh",
	`\tanh`:   "tanh",
	`\coth`:   "coth",
	`\log`:    "log",
	`\ln`:     "ln",
	`\lg`:     "lg",
	`\exp`:    "exp",
	`\Exp`:    "Exp",
	`\det`:    "det",
	`\max`:    "max",
	`\min`:    "min",
	`\sup`:    "sup",
	`\inf`:    "inf",
	`\lim`:    "lim",
	`\Lim`:    "Lim",
	`\gcd`:    "gcd",
	`\arg`:    "arg",
	`\dim`:    "dim",
	`\ker`:    "ker",
	`\hom`:    "hom",
	`\mod`:    "mod",
	`\lcm`:    "lcm",
}

// AccentMap 장식(accent) 명령 → TOKEN {body} 형태로 감싼다
var AccentMap = map[string]string{
	`\vec`:            "VEC",
	`\bar`:            "BAR",
	`\hat`:            "HAT",
	`\tilde`:          "TILDE",
	`\dot`:            "DOT",
	`\ddot`:           "DDOT",
	`\acute`:          "acute",
	`\grave`:          "grave",
	`\check`:          "check",
	`\breve`:          "arch",
	`\overline`:       "overline",
	`\underline`:      "underline",
	`\overrightarrow`: "VEC",
	`\widehat`:        "HAT",
	`\widetilde`:      "TILDE",
}

// EnvMap 행렬/조건식 환경 → HWP 환경 래퍼 (행 구분자는 #)
var EnvMap = map[string]string{
	"cases":   "CASES",
	"pmatrix": "PMATRIX",
	"bmatrix": "BMATRIX",
	"vmatrix": "DMATRIX",
	"matrix":  "MATRIX",
}

// BigOpMap 대형 연산자. 이중/삼중 적분은 반복이 아니라 고유 토큰이다.
var BigOpMap = map[string]string{
	"sum":    "SUM",
	"prod":   "PROD",
	"coprod": "COPROD",
	"int":    "INT",
	"iint":   "DINT",
	"iiint":  "TINT",
	"oint":   "OINT",
	"bigcup": "UNION",
	"bigcap": "INTER",
}

// DelimMap \left / \right 구분 문자. 중괄호는 HWP 스크립트에서
// 구조 문자이므로 lbrace/rbrace 이름 토큰으로 바꾼다.
// "." 은 보이지 않는 구분자 — 빈 문자열로 매핑돼 토큰을 내지 않는다.
var DelimMap = map[string]string{
	"(":   "(",
	")":   ")",
	"[":   "[",
	"]":   "]",
	`\{`:  "lbrace",
	`\}`:  "rbrace",
	"{":   "lbrace",
	"}":   "rbrace",
	"|":   "|",
	".":   "",
}

// sortedKeys 는 맵의 키를 긴 것 우선으로 정렬해 반환한다.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}

// 긴 명령 우선 치환 순서 (패키지 로드 시 한 번 계산)
var (
	greekOrder  = sortedKeys(GreekMap)
	symbolOrder = sortedKeys(SymbolMap)
	funcOrder   = sortedKeys(FuncMap)
	accentOrder = sortedKeys(AccentMap)
	bigOpOrder  = sortedKeys(BigOpMap)
)
