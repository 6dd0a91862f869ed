package specspec_test

import (
	"testing"

	specspec "github.com/kookyleo/SpecSpec"
)

func TestValidateObject(t *testing.T) {
	issues := specspec.Issues{}
	m, ok := specspec.ValidateObject(map[string]any{"a": 1}, nil, &issues)
	if !ok || m == nil || len(issues) != 0 {
		t.Fatalf("expected object to pass, got ok=%v issues=%v", ok, issues)
	}

	m, ok = specspec.ValidateObject(42, nil, &issues)
	if ok || m != nil {
		t.Fatalf("expected failure on non-object")
	}
	if len(issues) != 1 || issues[0].Code != specspec.CodeTypeMismatch || issues[0].Message != "Expected object, got 42" {
		t.Fatalf("unexpected issue: %v", issues)
	}
}

func TestValidateField(t *testing.T) {
	obj := map[string]any{"name": 42, "note": "hi"}
	path := specspec.Path{"user"}

	// missing required field reports at the parent path
	issues := specspec.Issues{}
	specspec.ValidateField(obj, "email", path, &issues)
	if len(issues) != 1 || issues[0].Code != specspec.CodeFieldMissing {
		t.Fatalf("expected field.missing, got %v", issues)
	}
	if issues[0].Path != "user" || issues[0].Message != "Missing required field: email" {
		t.Fatalf("unexpected issue: %+v", issues[0])
	}

	// optional fields may be absent
	issues = specspec.Issues{}
	specspec.ValidateField(obj, "email", path, &issues, specspec.FieldOpt{Optional: true})
	if len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", issues)
	}

	// a present field runs its validator with the path extended by the key
	issues = specspec.Issues{}
	specspec.ValidateField(obj, "name", path, &issues, specspec.FieldOpt{
		Validator: func(v any, p specspec.Path, iss *specspec.Issues) { specspec.ValidateStr(v, p, iss) },
	})
	if len(issues) != 1 || issues[0].Path != "user.name" || issues[0].Code != specspec.CodeTypeMismatch {
		t.Fatalf("expected type.mismatch at user.name, got %v", issues)
	}

	// present without a validator is just a presence check
	issues = specspec.Issues{}
	specspec.ValidateField(obj, "note", path, &issues)
	if len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", issues)
	}

	// nil object is silent: the parent check already reported the shape
	issues = specspec.Issues{}
	specspec.ValidateField(nil, "name", path, &issues)
	if len(issues) != 0 {
		t.Fatalf("expected no issues on nil object, got %v", issues)
	}
}

func TestValidateList(t *testing.T) {
	// wrong type
	issues := specspec.Issues{}
	specspec.ValidateList("nope", nil, &issues)
	if len(issues) != 1 || issues[0].Code != specspec.CodeTypeMismatch {
		t.Fatalf("expected type.mismatch, got %v", issues)
	}

	// bounds and per-item checks are independent
	issues = specspec.Issues{}
	specspec.ValidateList([]any{42, "ok"}, specspec.Path{"items"}, &issues, specspec.ListOpt{
		MinItems: specspec.IntPtr(3),
		Item:     func(v any, p specspec.Path, iss *specspec.Issues) { specspec.ValidateStr(v, p, iss) },
	})
	if len(issues) != 2 {
		t.Fatalf("expected too_short plus one item issue, got %v", issues)
	}
	if issues[0].Code != specspec.CodeListTooShort || issues[0].Path != "items" {
		t.Fatalf("unexpected bounds issue: %+v", issues[0])
	}
	if issues[1].Code != specspec.CodeTypeMismatch || issues[1].Path != "items.[0]" {
		t.Fatalf("unexpected item issue: %+v", issues[1])
	}

	// max items
	issues = specspec.Issues{}
	specspec.ValidateList([]any{1, 2, 3}, nil, &issues, specspec.ListOpt{MaxItems: specspec.IntPtr(2)})
	if len(issues) != 1 || issues[0].Code != specspec.CodeListTooLong {
		t.Fatalf("expected list.too_long, got %v", issues)
	}
}

func TestValidateOneOf(t *testing.T) {
	str := func(v any, p specspec.Path, iss *specspec.Issues) { specspec.ValidateStr(v, p, iss) }
	num := func(v any, p specspec.Path, iss *specspec.Issues) { specspec.ValidateNum(v, p, iss) }

	// the first passing candidate wins and nothing is recorded
	issues := specspec.Issues{}
	specspec.ValidateOneOf(7.5, nil, &issues, []specspec.Validator{str, num})
	if len(issues) != 0 {
		t.Fatalf("expected a match, got %v", issues)
	}

	// failing candidates never leak their own issues
	issues = specspec.Issues{}
	specspec.ValidateOneOf(true, specspec.Path{"choice"}, &issues, []specspec.Validator{str, num})
	if len(issues) != 1 || issues[0].Code != specspec.CodeOneOfNoMatch {
		t.Fatalf("expected a single oneof.no_match, got %v", issues)
	}
	if issues[0].Path != "choice" || issues[0].Message != "Value does not match any of the options" {
		t.Fatalf("unexpected issue: %+v", issues[0])
	}

	// descriptions feed the message
	issues = specspec.Issues{}
	specspec.ValidateOneOf(true, nil, &issues, []specspec.Validator{str, num},
		specspec.OneOfOpt{Descriptions: []string{"a string", "a number"}})
	if issues[0].Message != "Value does not match a string, a number" {
		t.Fatalf("unexpected message: %q", issues[0].Message)
	}

	// probing never touches issues already collected by the caller
	issues = specspec.Issues{}
	specspec.AddIssue(&issues, nil, specspec.CodeTypeMismatch, "earlier")
	specspec.ValidateOneOf(7.5, nil, &issues, []specspec.Validator{str, num})
	if len(issues) != 1 {
		t.Fatalf("expected the earlier issue only, got %v", issues)
	}
}
