package exercise

// CheckCount rejects negative element counts read from input.
func CheckCount(n int) error {
	if n < 0 {
		return ErrInvalidCount
	}
	return nil
}
