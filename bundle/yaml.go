package bundle

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// readYAML parses the file at rel and normalizes the decoded tree so YAML
// and JSON content flow through the same validators.
func readYAML(fsys FS, rel string) (any, error) {
	text, err := fsys.Read(rel)
	if err != nil {
		return nil, err
	}
	var node any
	if err := yaml.Unmarshal([]byte(text), &node); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return normalizeYAML(node), nil
}

// normalizeYAML converts YAML-decoded values (which may contain map[any]any)
// into JSON-like map[string]any recursively. Non-string keys are dropped.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalizeYAML(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = normalizeYAML(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = normalizeYAML(t[i])
		}
		return arr
	default:
		return v
	}
}
