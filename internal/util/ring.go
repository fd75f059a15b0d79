// Package util contains small shared helpers.
package util

// Ring is a fixed-capacity ring buffer. When full, a push evicts the
// oldest element first. The zero value is not usable; use NewRing.
type Ring[T any] struct {
	buf   []T
	start int
	size  int
}

// NewRing creates a ring buffer with the given capacity. Panics if
// capacity is not positive.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity <= 0 {
		panic("ring capacity must be positive")
	}

	return &Ring[T]{buf: make([]T, capacity)}
}

// Push appends a value, evicting the oldest element when full.
func (r *Ring[T]) Push(v T) {
	end := (r.start + r.size) % len(r.buf)
	r.buf[end] = v

	if r.size < len(r.buf) {
		r.size++
	} else {
		r.start = (r.start + 1) % len(r.buf)
	}
}

// Len returns the number of retained elements.
func (r *Ring[T]) Len() int {
	return r.size
}

// Cap returns the ring capacity.
func (r *Ring[T]) Cap() int {
	return len(r.buf)
}

// Items returns the retained elements, oldest first.
func (r *Ring[T]) Items() []T {
	out := make([]T, 0, r.size)
	for i := range r.size {
		out = append(out, r.buf[(r.start+i)%len(r.buf)])
	}

	return out
}
