package grader

import (
	"encoding/json"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// Loose compares answers with type-coercing equality, so answers stored as
// numeric strings keep matching clients that submit plain numbers.
//
// Coercions, by submitted type:
//
//	nil              never equal
//	string           exact comparison
//	number           stored text converted to a number, compared numerically
//	bool             true/false become 1/0, then compared as a number
//	array            elements joined with "," and compared as text
//	object           compared as the text "[object Object]"
//
// Text to number: surrounding whitespace is ignored, empty text is 0,
// decimal and exponent literals, 0x/0o/0b integers and ±Infinity are
// recognised. Anything else is NaN, which never compares equal.
type Loose struct{}

// Compile-time check: Loose satisfies the Grader interface.
var _ Grader = Loose{}

func (Loose) Grade(stored string, submitted any) bool {
	switch v := submitted.(type) {
	case nil:
		return false
	case string:
		return stored == v
	case bool:
		if v {
			return textToNumber(stored) == 1
		}
		return textToNumber(stored) == 0
	case float64:
		return textToNumber(stored) == v
	case json.Number:
		return textToNumber(stored) == jsonNumber(v)
	case int:
		return textToNumber(stored) == float64(v)
	case int64:
		return textToNumber(stored) == float64(v)
	case []any, map[string]any:
		return stored == toText(v)
	default:
		return false
	}
}

var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

func textToNumber(s string) float64 {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, ok := new(big.Int).SetString(s[2:], base)
			if !ok || n.Sign() < 0 || strings.ContainsAny(s[2:], "+-_") {
				return math.NaN()
			}
			f, _ := new(big.Float).SetInt(n).Float64()
			return f
		}
	}

	if !decimalLiteral.MatchString(s) {
		return math.NaN()
	}
	// Out of range literals parse to ±Inf, which is what we want.
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

func jsonNumber(n json.Number) float64 {
	f, _ := strconv.ParseFloat(string(n), 64)
	return f
}

func toText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return NumberText(x)
	case json.Number:
		return NumberText(jsonNumber(x))
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = toText(e)
		}
		return strings.Join(parts, ",")
	case map[string]any:
		return "[object Object]"
	default:
		return ""
	}
}

// NumberText renders a float the way a JSON client would print it back:
// fixed notation between 1e-6 and 1e21, exponent form outside, "0" for -0.
func NumberText(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	exp = strings.TrimLeft(exp[1:], "0")
	return mant + "e" + sign + exp
}
