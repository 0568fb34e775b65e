package exercise

// Subjects lists the score columns in input order.
var Subjects = [...]string{"korean", "english", "math"}

// ScoreCard holds one student's scores, indexed like Subjects.
type ScoreCard [len(Subjects)]int

// Total sums the card.
func (c ScoreCard) Total() int {
	return Sum(c[:])
}

// Average is Total divided by the number of subjects.
func (c ScoreCard) Average() float64 {
	return float64(c.Total()) / float64(len(c))
}

// StudentResult is one line of a score report. Number is 1-based.
type StudentResult struct {
	Number  int
	Total   int
	Average float64
}

// Report computes the total and average of every card in order.
func Report(cards []ScoreCard) []StudentResult {
	out := make([]StudentResult, 0, len(cards))
	for i, c := range cards {
		out = append(out, StudentResult{
			Number:  i + 1,
			Total:   c.Total(),
			Average: c.Average(),
		})
	}
	return out
}
