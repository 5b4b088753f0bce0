package mines

// ValidationError reports a broken construction invariant: an index outside
// the bitmap, a bitmap that does not form a rectangle, or a malformed
// neighbor candidate set. These are programming errors, not bad user input,
// and should be propagated rather than retried.
type ValidationError struct {
	message string
}

// [ValidationError] implements [error]
func (e ValidationError) Error() string {
	return e.message
}

// MalformedKeyError reports a board key that cannot describe any bitmap of
// the requested size: a non-hexadecimal character, or a value too wide to
// fit the cell count.
type MalformedKeyError struct {
	message string
}

// [MalformedKeyError] implements [error]
func (e MalformedKeyError) Error() string {
	return e.message
}
