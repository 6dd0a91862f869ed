package specspec_test

import (
	"testing"

	j "github.com/goccy/go-json"

	specspec "github.com/kookyleo/SpecSpec"
)

func smallManifestDoc(tb testing.TB) map[string]any {
	tb.Helper()
	var v map[string]any
	data := []byte(`{"name":"demo","items":[{"name":"a"},{"name":"b"}]}`)
	if err := j.Unmarshal(data, &v); err != nil {
		tb.Fatalf("unmarshal fixture: %v", err)
	}
	return v
}

func Benchmark_Validate_Manifest_Small(b *testing.B) {
	doc := smallManifestDoc(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if res := specspec.Validate(doc, manifestValidator); !res.OK {
			b.Fatalf("unexpected issues: %v", res.Issues)
		}
	}
}

func Benchmark_ValidateStr_Pattern(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		issues := specspec.Issues{}
		specspec.ValidateStr("v1.2.3", nil, &issues, specspec.StrOpt{Pattern: `^v\d+\.\d+\.\d+$`})
		if len(issues) != 0 {
			b.Fatalf("unexpected issues: %v", issues)
		}
	}
}
