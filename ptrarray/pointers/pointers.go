package pointers

// New returns a pointer to a freshly allocated copy of value.
func New[T any](value T) *T {
	return &value
}

// ValueOr dereferences ptr, or returns fallback when ptr is nil.
func ValueOr[T any](ptr *T, fallback T) T {
	if ptr == nil {
		return fallback
	}

	return *ptr
}
