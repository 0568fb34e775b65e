package exercise

// PreIncrement increments *a and returns the new value, like ++a.
func PreIncrement(a *int) int {
	*a++
	return *a
}

// PostIncrement increments *a and returns the old value, like a++.
func PostIncrement(a *int) int {
	old := *a
	*a++
	return old
}
