package selection

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// toInt coerces a raw entry with loose numeric rules: the longest numeric
// prefix of a string counts, floats truncate toward zero, true is 1, and
// anything non-numeric is 0.
func toInt(v any) int {
	switch val := v.(type) {
	case int:
		return val
	case int8:
		return int(val)
	case int16:
		return int(val)
	case int32:
		return int(val)
	case int64:
		return int(val)
	case uint:
		return int(val)
	case uint8:
		return int(val)
	case uint16:
		return int(val)
	case uint32:
		return int(val)
	case uint64:
		return int(val)
	case float32:
		return floatToInt(float64(val))
	case float64:
		return floatToInt(val)
	case bool:
		if val {
			return 1
		}
		return 0
	case json.Number:
		return stringToInt(val.String())
	case string:
		return stringToInt(val)
	default:
		return 0
	}
}

func floatToInt(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	if f >= math.MaxInt64 || f <= math.MinInt64 {
		return 0
	}
	return int(f)
}

func stringToInt(s string) int {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	prefix, isFloat := numericPrefix(s)
	if prefix == "" {
		return 0
	}
	if isFloat {
		f, err := strconv.ParseFloat(prefix, 64)
		if err != nil {
			return 0
		}
		return floatToInt(f)
	}
	// ParseInt saturates on overflow and reports the bound alongside the error.
	n, _ := strconv.ParseInt(prefix, 10, 64)
	return int(n)
}

// numericPrefix returns the longest leading decimal number in s and whether it
// carries a fraction or exponent.
func numericPrefix(s string) (string, bool) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	isFloat := false
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits > 0 || frac > 0 {
			i = j
			digits += frac
			isFloat = true
		}
	}
	if digits == 0 {
		return "", false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		exp := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			exp++
		}
		if exp > 0 {
			i = j
			isFloat = true
		}
	}
	return s[:i], isFloat
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
