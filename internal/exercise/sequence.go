package exercise

// MinMax returns the smallest and largest element of nums.
func MinMax(nums []int) (minimum, maximum int, err error) {
	if len(nums) == 0 {
		return 0, 0, ErrEmptySequence
	}

	minimum, maximum = nums[0], nums[0]
	for _, n := range nums[1:] {
		if n < minimum {
			minimum = n
		}
		if n > maximum {
			maximum = n
		}
	}
	return minimum, maximum, nil
}

// Sum returns the arithmetic sum of nums. The empty sum is 0.
func Sum(nums []int) int {
	total := 0
	for _, n := range nums {
		total += n
	}
	return total
}

// Average returns the arithmetic mean of nums.
func Average(nums []int) (float64, error) {
	if len(nums) == 0 {
		return 0, ErrEmptySequence
	}
	return float64(Sum(nums)) / float64(len(nums)), nil
}

// RunningSum accumulates integers one at a time.
type RunningSum struct {
	total int
	count int
}

// Add folds n into the sum and returns the new total.
func (r *RunningSum) Add(n int) int {
	r.total += n
	r.count++
	return r.total
}

// Total is the sum of every value added so far.
func (r *RunningSum) Total() int { return r.total }

// Count is the number of values added so far.
func (r *RunningSum) Count() int { return r.count }

// Average is the mean of every value added so far.
func (r *RunningSum) Average() (float64, error) {
	if r.count == 0 {
		return 0, ErrEmptySequence
	}
	return float64(r.total) / float64(r.count), nil
}
