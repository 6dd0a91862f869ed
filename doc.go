package specspec

// Package specspec provides the runtime primitives embedded into generated
// validators:
//
// - Primitive checks (ValidateStr/ValidateNum/ValidateBool/ValidateLiteral/ValidatePattern)
// - Structural combinators (ValidateObject/ValidateField/ValidateList/ValidateOneOf)
// - A stable issue model (dotted path, code, message) accumulated across the whole run
// - Bundle validation over directories and zip archives via the bundle package
//
// Design policy:
// - Validators are plain functions of (value, path, issues); generators compose them freely.
// - Wrong shapes become recorded issues, never panics; a run always completes with a full report.
// - Keep the public API in the root package; the accessor backends live under bundle/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	item := func(v any, path specspec.Path, issues *specspec.Issues) {
//		obj, ok := specspec.ValidateObject(v, path, issues)
//		if !ok {
//			return
//		}
//		specspec.ValidateField(obj, "name", path, issues, specspec.FieldOpt{
//			Validator: func(v any, path specspec.Path, issues *specspec.Issues) {
//				specspec.ValidateStr(v, path, issues, specspec.StrOpt{MinLen: specspec.IntPtr(1)})
//			},
//		})
//	}
//	res := specspec.Validate(doc, item)
//
