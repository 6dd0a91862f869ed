package specspec

import "strings"

// ValidateObject checks that v is a string-keyed object and returns it
// typed. Callers use the second return to decide whether to proceed with
// field checks; the nil map from a failed check is safe to hand to
// ValidateField.
func ValidateObject(v any, path Path, issues *Issues) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		report(issues, path, CodeTypeMismatch, map[string]string{"want": "object", "got": display(v)})
		return nil, false
	}
	return m, true
}

// ValidateField checks one field of obj. A missing key is reported as
// field.missing at the parent path unless marked Optional; a present key
// runs the nested Validator, when given, with the path extended by the key.
// A nil obj is a no-op: the parent check already reported the shape.
func ValidateField(obj map[string]any, key string, path Path, issues *Issues, opts ...FieldOpt) {
	var opt FieldOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if obj == nil {
		return
	}
	v, ok := obj[key]
	if !ok {
		if !opt.Optional {
			report(issues, path, CodeFieldMissing, map[string]string{"key": key})
		}
		return
	}
	if opt.Validator != nil {
		opt.Validator(v, path.Field(key), issues)
	}
}

// ValidateList checks that v is an array, enforces the optional length
// bounds, and runs the Item validator over every element with the path
// extended by the bracketed index. Bounds and per-item checks are
// independent: an out-of-bounds list still has every item validated.
func ValidateList(v any, path Path, issues *Issues, opts ...ListOpt) {
	var opt ListOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	arr, ok := v.([]any)
	if !ok {
		report(issues, path, CodeTypeMismatch, map[string]string{"want": "array", "got": display(v)})
		return
	}
	if opt.MinItems != nil && len(arr) < *opt.MinItems {
		report(issues, path, CodeListTooShort, map[string]string{"len": itoa(len(arr)), "min": itoa(*opt.MinItems)})
	}
	if opt.MaxItems != nil && len(arr) > *opt.MaxItems {
		report(issues, path, CodeListTooLong, map[string]string{"len": itoa(len(arr)), "max": itoa(*opt.MaxItems)})
	}
	if opt.Item != nil {
		for i, item := range arr {
			opt.Item(item, path.Index(i), issues)
		}
	}
}

// ValidateOneOf tries each candidate in order against a fresh issue list and
// accepts the first that records nothing; the candidates' own issues are
// never surfaced. When every candidate fails, a single oneof.no_match is
// recorded at the original path. Matching is order-sensitive and
// non-exhaustive, so candidate ordering is the schema author's concern.
func ValidateOneOf(v any, path Path, issues *Issues, alts []Validator, opts ...OneOfOpt) {
	var opt OneOfOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	for _, alt := range alts {
		trial := Issues{}
		alt(v, path, &trial)
		if len(trial) == 0 {
			return // matched
		}
	}
	desc := "any of the options"
	if len(opt.Descriptions) > 0 {
		desc = strings.Join(opt.Descriptions, ", ")
	}
	report(issues, path, CodeOneOfNoMatch, map[string]string{"alts": desc})
}
