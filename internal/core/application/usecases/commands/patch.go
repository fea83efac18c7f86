package commands

// Patch is one field of a partial update. It is either absent (keep the
// stored value), cleared (store null) or set to a value.
type Patch[T any] struct {
	present bool
	value   *T
}

// Keep leaves the stored value unchanged.
func Keep[T any]() Patch[T] {
	return Patch[T]{}
}

// Clear stores null.
func Clear[T any]() Patch[T] {
	return Patch[T]{present: true}
}

// Set stores v.
func Set[T any](v T) Patch[T] {
	return Patch[T]{present: true, value: &v}
}

// IsPresent reports whether the field was part of the request.
func (p Patch[T]) IsPresent() bool {
	return p.present
}

// Value returns the new value, nil when the field is cleared or absent.
func (p Patch[T]) Value() *T {
	return p.value
}
