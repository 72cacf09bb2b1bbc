package entity

import "strings"

// Flags is the module-namespaced value bag on an entity. Values are bool,
// string, []string or a number, matching what the host persists.
type Flags map[string]any

func (f Flags) Has(key string) bool {
	_, ok := f[key]
	return ok
}

func (f Flags) String(key string) string {
	switch v := f[key].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

// Strings normalizes single values and []any slices coming from decoded JSON or YAML
func (f Flags) Strings(key string) []string {
	switch v := f[key].(type) {
	case []string:
		return v
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func (f Flags) Bool(key string) bool {
	switch v := f[key].(type) {
	case bool:
		return v
	case string:
		return v != "" && v != "false" && v != "0"
	}
	n, ok := f.Number(key)
	return ok && n != 0
}

func (f Flags) Number(key string) (float64, bool) {
	switch v := f[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	}
	return 0, false
}

// Clone returns a shallow copy; slice values are copied so edits do not alias
func (f Flags) Clone() Flags {
	out := make(Flags, len(f))
	for k, v := range f {
		if ss, ok := v.([]string); ok {
			v = append([]string(nil), ss...)
		}
		out[k] = v
	}
	return out
}

// ReferenceID reduces a document reference such as "Actor.abc.Item.def" to its final id
func ReferenceID(ref string) string {
	if i := strings.LastIndex(ref, "."); i >= 0 {
		return ref[i+1:]
	}
	return ref
}
