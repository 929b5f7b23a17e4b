// Package deepmerge recursively merges decoded JSON/TOML/YAML documents.
//
// Documents are represented the way encoding/json, go-toml and yaml.v3
// decode them into an any: nested map[string]any values, slices and
// scalars. Merge never mutates its inputs.
package deepmerge

// Merge returns a new map holding target with source layered on top.
//
// For every key in source: when both sides hold a map the two are merged
// recursively; otherwise the source value replaces the target value.
// Slices are replaced, not concatenated. A key present in source with an
// explicit nil value overrides the target value with nil.
func Merge(target, source map[string]any) map[string]any {
	out := make(map[string]any, len(target)+len(source))
	for k, v := range target {
		out[k] = v
	}

	for k, sv := range source {
		tv, exists := out[k]
		if exists {
			tm, tok := AsMap(tv)
			sm, sok := AsMap(sv)
			if tok && sok {
				out[k] = Merge(tm, sm)
				continue
			}
		}
		out[k] = sv
	}

	return out
}

// Overlay replaces top-level keys of target with those of source without
// recursing. It backs the auto-overwrite policy.
func Overlay(target, source map[string]any) map[string]any {
	out := make(map[string]any, len(target)+len(source))
	for k, v := range target {
		out[k] = v
	}
	for k, v := range source {
		out[k] = v
	}
	return out
}

// AsMap reports whether v is a mapping and returns it with string keys.
// yaml.v3 may produce map[string]any or, for non-string keys,
// map[any]any; the latter is converted.
func AsMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = val
		}
		return out, true
	default:
		return nil, false
	}
}
