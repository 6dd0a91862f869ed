package specspec

import (
	"fmt"
	"strconv"

	j "github.com/goccy/go-json"

	"github.com/kookyleo/SpecSpec/i18n"
)

// report resolves the message for code through the i18n catalog and appends
// the issue via AddIssue. All built-in validators construct issues here.
func report(issues *Issues, path Path, code string, data map[string]string) {
	AddIssue(issues, path, code, i18n.T(code, data))
}

// display renders an offending value for embedding in a message. Values are
// shown as compact JSON so strings stay quoted and nil reads as null.
func display(v any) string {
	if v == nil {
		return "null"
	}
	b, err := j.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

func itoa(n int) string { return strconv.Itoa(n) }

// ftoa renders a float without an exponent, "3" for 3.0.
func ftoa(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
