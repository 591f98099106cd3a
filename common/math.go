package common

type Float interface {
	~float32 | ~float64
}

func Lerp[T Float](a, b, t T) T {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi].
func Clamp[T Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
