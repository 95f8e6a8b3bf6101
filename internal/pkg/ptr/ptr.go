package ptr

func Of[T any](v T) *T {
	return &v
}

// Copy returns a pointer to a copy of *p, or nil when p is nil.
func Copy[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
