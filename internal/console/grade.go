package console

import "practice/internal/exercise"

// RunGrade prints the feedback message for grade.
func (c *Console) RunGrade(grade string) {
	c.printf("%s\n", exercise.GradeMessage(grade))
}

// RunIncrement prints the prefix and postfix increment results starting
// from a = 1.
func (c *Console) RunIncrement() {
	a := 1
	b := exercise.PreIncrement(&a)
	c.printf("a = %d, b = %d\n", a, b)

	a = 1
	b = exercise.PostIncrement(&a)
	c.printf("a = %d, b = %d\n", a, b)
}
