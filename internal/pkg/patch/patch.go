package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalesceSlice keeps fallback when the patch omitted the field; an explicit empty slice clears it
func CoalesceSlice[T any](patch []T, present bool, fallback []T) []T {
	if !present {
		return fallback
	}
	return patch
}
