package ptr

// Of returns a pointer to a copy of v.
func Of[T any](v T) *T {
	return &v
}

// Clone copies the pointed-to value so callers cannot alias it.
func Clone[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Coalesce returns the value pointed to by p if it's not nil, otherwise returns fallback
func Coalesce[T any](p *T, fallback T) T {
	if p != nil {
		return *p
	}
	return fallback
}
