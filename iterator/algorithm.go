package iterator

// Distance returns the number of elements in [first, last).
func Distance[T any, I RandomAccess[T, I]](first, last I) int {
	return last.Sub(first)
}

// ForEach calls fn with a pointer to every element in [first, last).
func ForEach[T any, I RandomAccess[T, I]](first, last I, fn func(*T)) {
	for it := first; !it.Equal(last); it = it.Next() {
		fn(it.Ptr())
	}
}

// Collect copies [first, last) into a new slice.
func Collect[T any, I RandomAccess[T, I]](first, last I) []T {
	out := make([]T, 0, max(Distance[T](first, last), 0))
	for it := first; !it.Equal(last); it = it.Next() {
		out = append(out, it.Get())
	}
	return out
}

// CollectReadOnly copies [first, last) of a read-only range into a new slice.
func CollectReadOnly[T any, I RandomAccess[T, I]](first, last ReadOnly[T, I]) []T {
	return Collect[T](first.it, last.it)
}

// SwapRanges exchanges [first, last) element by element with the range
// starting at other and returns the position after the last swapped element
// of other.
func SwapRanges[T any, I RandomAccess[T, I], J RandomAccess[T, J]](first, last I, other J) J {
	for it := first; !it.Equal(last); it = it.Next() {
		a, b := it.Ptr(), other.Ptr()
		*a, *b = *b, *a
		other = other.Next()
	}
	return other
}
