package colorspace

// Interpolable is satisfied by every color type in this package.
type Interpolable[T any] interface {
	Lerp(T, float64) T
}

// Ramp returns n evenly spaced samples from a to b inclusive. With n = 1
// the single sample is a; n < 1 returns nil.
func Ramp[T Interpolable[T]](a, b T, n int) []T {
	if n < 1 {
		return nil
	}
	samples := make([]T, n)
	for i := range samples {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		samples[i] = a.Lerp(b, t)
	}
	return samples
}
