package specspec_test

import (
	"strings"
	"testing"

	j "github.com/goccy/go-json"

	specspec "github.com/kookyleo/SpecSpec"
)

func TestIssues_ErrorSummary(t *testing.T) {
	var iss specspec.Issues
	if iss.Error() != "" {
		t.Fatalf("empty issues should summarize to an empty string, got %q", iss.Error())
	}
	iss = specspec.AppendIssues(iss,
		specspec.Issue{Path: "(root)", Code: specspec.CodeTypeMismatch, Message: "m"},
		specspec.Issue{Path: "a", Code: specspec.CodeFieldMissing, Message: "m"},
		specspec.Issue{Path: "b", Code: specspec.CodeFieldMissing, Message: "m"},
		specspec.Issue{Path: "c", Code: specspec.CodeFieldMissing, Message: "m"},
	)
	msg := iss.Error()
	if !strings.Contains(msg, "type.mismatch at (root)") {
		t.Fatalf("summary should lead with the first issue: %q", msg)
	}
	if !strings.Contains(msg, "(total 4)") {
		t.Fatalf("summary should carry the total count: %q", msg)
	}
}

func TestAddIssue_PathRendering(t *testing.T) {
	issues := specspec.Issues{}
	specspec.AddIssue(&issues, nil, specspec.CodeTypeMismatch, "m")
	specspec.AddIssue(&issues, specspec.Path{"items", "[2]", "name"}, specspec.CodeFieldMissing, "m")
	if issues[0].Path != "(root)" {
		t.Fatalf("expected (root), got %q", issues[0].Path)
	}
	if issues[1].Path != "items.[2].name" {
		t.Fatalf("expected items.[2].name, got %q", issues[1].Path)
	}
}

func TestAsIssues(t *testing.T) {
	iss := specspec.AppendIssues(nil, specspec.Issue{Path: "(root)", Code: specspec.CodeTypeMismatch, Message: "m"})
	got, ok := specspec.AsIssues(iss)
	if !ok || len(got) != 1 || got[0].Code != specspec.CodeTypeMismatch {
		t.Fatalf("expected issue extraction, got ok=%v issues=%v", ok, got)
	}
	if _, ok := specspec.AsIssues(nil); ok {
		t.Fatalf("nil error should not extract issues")
	}
}

func TestResult_WireShape(t *testing.T) {
	res := specspec.Validate(map[string]any{}, func(v any, path specspec.Path, issues *specspec.Issues) {})
	b, err := j.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"ok":true,"issues":[]}` {
		t.Fatalf("unexpected wire shape: %s", b)
	}

	res = specspec.Validate(nil, specspec.ValidateBool)
	b, err = j.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"ok":false,"issues":[{"path":"(root)","code":"type.mismatch","message":"Expected boolean, got null"}]}`
	if string(b) != want {
		t.Fatalf("unexpected wire shape:\n  got  %s\n  want %s", b, want)
	}
}
