package console

import (
	"context"
	"fmt"

	"practice/internal/exercise"
)

// RunMinMax reads a count followed by that many integers and prints the
// largest and smallest of them.
func (c *Console) RunMinMax(ctx context.Context) error {
	count, err := c.askInt("Enter how many numbers to read: ")
	if err != nil {
		return fmt.Errorf("read count: %w", err)
	}
	if err := exercise.CheckCount(count); err != nil {
		return err
	}

	c.printf("Enter %d integers:\n", count)
	var nums []int
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := c.in.ReadInt()
		if err != nil {
			return fmt.Errorf("read integer %d: %w", i+1, err)
		}
		nums = append(nums, n)
	}

	lo, hi, err := exercise.MinMax(nums)
	if err != nil {
		return err
	}
	c.printf("Largest: %d\n", hi)
	c.printf("Smallest: %d\n", lo)
	return nil
}

// RunAverage reads integers until -1 (or end of input) and prints their sum
// and average.
func (c *Console) RunAverage(ctx context.Context) error {
	var rs exercise.RunningSum
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := c.askInt("Enter a number (-1 to stop): ")
		if isEOF(err) {
			c.printf("\n")
			break
		}
		if err != nil {
			return err
		}
		if n == -1 {
			break
		}
		rs.Add(n)
	}

	c.printf("Sum: %d\n", rs.Total())
	avg, err := rs.Average()
	if err != nil {
		c.printf("Average: n/a (no numbers entered)\n")
		return nil
	}
	c.printf("Average: %.2f\n", avg)
	return nil
}

// RunRunningSum reads integers until 0 (or end of input), printing the
// running total after each one.
func (c *Console) RunRunningSum(ctx context.Context) error {
	var rs exercise.RunningSum
	c.printf("Enter one integer at a time. Enter 0 to quit.\n")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := c.askInt("Enter an integer: ")
		if isEOF(err) {
			c.printf("\n")
			break
		}
		if err != nil {
			return err
		}
		if n == 0 {
			break
		}
		c.printf("Running total: %d\n", rs.Add(n))
	}
	c.printf("Exiting.\n")
	return nil
}
