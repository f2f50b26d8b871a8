package validate

// Path addresses a value inside a decoded JSON structure. Elements are
// string keys (for objects) and int indices (for arrays); an empty path
// addresses the whole structure.
type Path []any

// resolve reads the value at p from body. The second return is false when
// the path does not resolve: a missing key, a container of the wrong type,
// an index out of range, or a non-string non-int path element.
func (p Path) resolve(body any) (any, bool) {
	current := body
	for _, segment := range p {
		switch seg := segment.(type) {
		case string:
			m, ok := current.(map[string]any)
			if !ok {
				return nil, false
			}
			current, ok = m[seg]
			if !ok {
				return nil, false
			}
		case int:
			s, ok := current.([]any)
			if !ok || seg < 0 || seg >= len(s) {
				return nil, false
			}
			current = s[seg]
		default:
			return nil, false
		}
	}
	return current, true
}

// set writes value at p inside body. The path must be non-empty and must
// have resolved against body immediately before; set navigates to the
// parent container and overwrites the final element in place.
func (p Path) set(body any, value any) {
	parent, _ := p[:len(p)-1].resolve(body)
	switch seg := p[len(p)-1].(type) {
	case string:
		if m, ok := parent.(map[string]any); ok {
			m[seg] = value
		}
	case int:
		if s, ok := parent.([]any); ok && seg >= 0 && seg < len(s) {
			s[seg] = value
		}
	}
}
