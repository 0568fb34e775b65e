package console

import (
	"context"
	"fmt"

	"practice/internal/exercise"
)

var subjectPrompts = [len(exercise.Subjects)]string{
	"Korean score: ",
	"English score: ",
	"Math score: ",
}

// RunScores reads three subject scores for each student and prints every
// student's total and average. A non-positive students value asks for the
// number of students first.
func (c *Console) RunScores(ctx context.Context, students int) error {
	if students <= 0 {
		n, err := c.askInt("Enter the number of students: ")
		if err != nil {
			return fmt.Errorf("read student count: %w", err)
		}
		if err := exercise.CheckCount(n); err != nil {
			return err
		}
		students = n
	}

	var cards []exercise.ScoreCard
	for i := 0; i < students; i++ {
		c.printf("Enter scores for student %d:\n", i+1)
		var card exercise.ScoreCard
		for j, p := range subjectPrompts {
			if err := ctx.Err(); err != nil {
				return err
			}
			score, err := c.askInt(p)
			if err != nil {
				return fmt.Errorf("read %s score for student %d: %w", exercise.Subjects[j], i+1, err)
			}
			card[j] = score
		}
		cards = append(cards, card)
	}

	for _, r := range exercise.Report(cards) {
		c.printf("Student %d total: %d, average: %.2f\n", r.Number, r.Total, r.Average)
	}
	return nil
}
