package specspec

import (
	"math"
	"reflect"
	"regexp"
	"strconv"
	"sync"

	j "github.com/goccy/go-json"
)

// ValidateStr checks that v is a string and enforces the optional length and
// pattern constraints. A wrong type stops further checks; the constraints
// themselves are independent and all violations are recorded.
func ValidateStr(v any, path Path, issues *Issues, opts ...StrOpt) {
	var opt StrOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	s, ok := v.(string)
	if !ok {
		report(issues, path, CodeTypeMismatch, map[string]string{"want": "string", "got": display(v)})
		return
	}
	if opt.MinLen != nil && len(s) < *opt.MinLen {
		report(issues, path, CodeStrTooShort, map[string]string{"len": itoa(len(s)), "min": itoa(*opt.MinLen)})
	}
	if opt.MaxLen != nil && len(s) > *opt.MaxLen {
		report(issues, path, CodeStrTooLong, map[string]string{"len": itoa(len(s)), "max": itoa(*opt.MaxLen)})
	}
	if opt.Pattern != "" {
		if re, err := compilePattern(opt.Pattern); err != nil {
			report(issues, path, CodePatternInvalid, map[string]string{"pattern": opt.Pattern, "err": err.Error()})
		} else if !re.MatchString(s) {
			report(issues, path, CodeStrPatternMismatch, map[string]string{"pattern": opt.Pattern})
		}
	}
}

// ValidateNum checks that v is numeric and enforces the optional integer and
// range constraints. Every accepted representation is normalized to float64
// first; all applicable violations are recorded, not just the first.
func ValidateNum(v any, path Path, issues *Issues, opts ...NumOpt) {
	var opt NumOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	n, ok := numeric(v)
	if !ok {
		report(issues, path, CodeTypeMismatch, map[string]string{"want": "number", "got": display(v)})
		return
	}
	if opt.Integer && n != math.Trunc(n) {
		report(issues, path, CodeNumNotInteger, map[string]string{"got": ftoa(n)})
	}
	if opt.Min != nil && n < *opt.Min {
		report(issues, path, CodeNumTooSmall, map[string]string{"got": ftoa(n), "min": ftoa(*opt.Min)})
	}
	if opt.Max != nil && n > *opt.Max {
		report(issues, path, CodeNumTooLarge, map[string]string{"got": ftoa(n), "max": ftoa(*opt.Max)})
	}
}

// ValidateBool checks that v is a boolean.
func ValidateBool(v any, path Path, issues *Issues) {
	if _, ok := v.(bool); !ok {
		report(issues, path, CodeTypeMismatch, map[string]string{"want": "boolean", "got": display(v)})
	}
}

// ValidateLiteral checks exact equality against want. Numeric values compare
// numerically regardless of representation; everything else compares by deep
// equality.
func ValidateLiteral(v, want any, path Path, issues *Issues) {
	if literalEqual(v, want) {
		return
	}
	report(issues, path, CodeLiteralMismatch, map[string]string{"want": display(want), "got": display(v)})
}

// ValidateLiteralStr is the string fast path of ValidateLiteral.
func ValidateLiteralStr(v any, want string, path Path, issues *Issues) {
	if s, ok := v.(string); ok && s == want {
		return
	}
	report(issues, path, CodeLiteralMismatch, map[string]string{"want": display(want), "got": display(v)})
}

// ValidateLiteralInt is the integer fast path of ValidateLiteral.
func ValidateLiteralInt(v any, want int64, path Path, issues *Issues) {
	if n, ok := numeric(v); ok && n == float64(want) {
		return
	}
	report(issues, path, CodeLiteralMismatch, map[string]string{"want": strconv.FormatInt(want, 10), "got": display(v)})
}

// ValidatePattern checks that v is a string matching the given regex.
func ValidatePattern(v any, pattern string, path Path, issues *Issues) {
	s, ok := v.(string)
	if !ok {
		report(issues, path, CodeTypeMismatch, map[string]string{"want": "string for pattern match", "got": display(v)})
		return
	}
	if re, err := compilePattern(pattern); err != nil {
		report(issues, path, CodePatternInvalid, map[string]string{"pattern": pattern, "err": err.Error()})
	} else if !re.MatchString(s) {
		report(issues, path, CodePatternMismatch, map[string]string{"pattern": pattern})
	}
}

// numeric normalizes the accepted number representations to float64.
func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case j.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func literalEqual(v, want any) bool {
	if vn, ok := numeric(v); ok {
		wn, ok := numeric(want)
		return ok && vn == wn
	}
	return reflect.DeepEqual(v, want)
}

// simple compiled-pattern cache; patterns come from schemas, so the set is
// small and stable
var (
	_regexMu    sync.RWMutex
	_regexCache = map[string]*regexp.Regexp{}
)

func compilePattern(pattern string) (*regexp.Regexp, error) {
	_regexMu.RLock()
	if re, ok := _regexCache[pattern]; ok {
		_regexMu.RUnlock()
		return re, nil
	}
	_regexMu.RUnlock()

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	_regexMu.Lock()
	if prev, ok := _regexCache[pattern]; ok { // double-check
		_regexMu.Unlock()
		return prev, nil
	}
	_regexCache[pattern] = re
	_regexMu.Unlock()
	return re, nil
}
