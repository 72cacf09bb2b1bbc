package rolls

import (
	"strings"
)

// RollData is the host's roll data tree. Paths are dot separated
// ("attributes.init.total").
type RollData map[string]any

// Get walks path and returns the value found there
func (d RollData) Get(path string) (any, bool) {
	if d == nil || path == "" {
		return nil, false
	}

	var current any = map[string]any(d)
	for _, part := range strings.Split(path, ".") {
		m, ok := asMap(current)
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Number returns the numeric value at path, 0 when missing or not a number
func (d RollData) Number(path string) float64 {
	v, ok := d.Get(path)
	if !ok {
		return 0
	}
	n, _ := toFloat(v)
	return n
}

// Set stores value at path, creating intermediate maps
func (d RollData) Set(path string, value any) {
	parts := strings.Split(path, ".")
	current := map[string]any(d)
	for _, part := range parts[:len(parts)-1] {
		next, ok := asMap(current[part])
		if !ok {
			next = map[string]any{}
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}

// Add increments the number at path by delta and returns the new value
func (d RollData) Add(path string, delta float64) float64 {
	total := d.Number(path) + delta
	d.Set(path, total)
	return total
}

// Flatten lists every numeric leaf by its dotted path
func (d RollData) Flatten() map[string]float64 {
	out := map[string]float64{}
	var walk func(prefix string, m map[string]any)
	walk = func(prefix string, m map[string]any) {
		for k, v := range m {
			path := k
			if prefix != "" {
				path = prefix + "." + k
			}
			if child, ok := asMap(v); ok {
				walk(path, child)
				continue
			}
			if n, ok := toFloat(v); ok {
				out[path] = n
			}
		}
	}
	walk("", d)
	return out
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case RollData:
		return m, true
	}
	return nil, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}
