package functional

func Map[T, V any](slice []T, f func(T) V) []V {
	result := make([]V, len(slice))
	for i, v := range slice {
		result[i] = f(v)
	}

	return result
}

// Find returns the first element matching pred.
func Find[T any](slice []T, pred func(T) bool) (T, bool) {
	for _, v := range slice {
		if pred(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}
