package common

// Coalesce returns the first value that is not the zero value of T, or the
// zero value when every argument is zero. The config loader uses it to
// overlay file-provided fields on defaults.
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
