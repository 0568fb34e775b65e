package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"practice/internal/config"
	"practice/internal/exercise"
)

func newTestConsole(input string) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out, config.ConsoleConfig{CatalogCapacity: 2}), &out
}

func TestRunMinMax(t *testing.T) {
	c, out := newTestConsole("5\n3 -7 12\n0 4\n")

	require.NoError(t, c.RunMinMax(context.Background()))
	assert.Contains(t, out.String(), "Enter 5 integers:")
	assert.Contains(t, out.String(), "Largest: 12\n")
	assert.Contains(t, out.String(), "Smallest: -7\n")
}

func TestRunMinMax_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "zero count", input: "0\n", wantErr: exercise.ErrEmptySequence},
		{name: "negative count", input: "-2\n", wantErr: exercise.ErrInvalidCount},
		{name: "non-numeric element", input: "2\n1 x\n", wantErr: ErrInvalidInteger},
		{name: "huge count", input: "4611686018427387904\n1 2\n", wantErr: io.EOF},
		{name: "max int count", input: "9223372036854775807\n", wantErr: io.EOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestConsole(tt.input)
			assert.ErrorIs(t, c.RunMinMax(context.Background()), tt.wantErr)
		})
	}
}

func TestRunAverage(t *testing.T) {
	c, out := newTestConsole("10\n20\n31\n-1\n")

	require.NoError(t, c.RunAverage(context.Background()))
	assert.Contains(t, out.String(), "Sum: 61\n")
	assert.Contains(t, out.String(), "Average: 20.33\n")
}

func TestRunAverage_NoNumbers(t *testing.T) {
	c, out := newTestConsole("-1\n")

	require.NoError(t, c.RunAverage(context.Background()))
	assert.Contains(t, out.String(), "Sum: 0\n")
	assert.Contains(t, out.String(), "Average: n/a")
}

func TestRunAverage_EndOfInputStops(t *testing.T) {
	c, out := newTestConsole("4 6")

	require.NoError(t, c.RunAverage(context.Background()))
	assert.Contains(t, out.String(), "Sum: 10\n")
	assert.Contains(t, out.String(), "Average: 5.00\n")
}

func TestRunRunningSum(t *testing.T) {
	c, out := newTestConsole("3\n4\n-2\n0\n99\n")

	require.NoError(t, c.RunRunningSum(context.Background()))
	s := out.String()
	assert.Contains(t, s, "Running total: 3\n")
	assert.Contains(t, s, "Running total: 7\n")
	assert.Contains(t, s, "Running total: 5\n")
	assert.NotContains(t, s, "Running total: 104")
	assert.True(t, strings.HasSuffix(s, "Exiting.\n"))
}

func TestRunRunningSum_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c, _ := newTestConsole("1\n")
	assert.ErrorIs(t, c.RunRunningSum(ctx), context.Canceled)
}

func TestRunScores_FixedCount(t *testing.T) {
	c, out := newTestConsole("90 80 70\n100 100 100\n")

	require.NoError(t, c.RunScores(context.Background(), 2))
	s := out.String()
	assert.Contains(t, s, "Enter scores for student 2:")
	assert.Contains(t, s, "Student 1 total: 240, average: 80.00\n")
	assert.Contains(t, s, "Student 2 total: 300, average: 100.00\n")
}

func TestRunScores_AsksForCount(t *testing.T) {
	c, out := newTestConsole("1\n50\n60\n71\n")

	require.NoError(t, c.RunScores(context.Background(), 0))
	assert.Contains(t, out.String(), "Enter the number of students: ")
	assert.Contains(t, out.String(), "Student 1 total: 181, average: 60.33\n")
}

func TestRunScores_ShortInput(t *testing.T) {
	c, _ := newTestConsole("90 80\n")

	err := c.RunScores(context.Background(), 1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "read math score for student 1")
}

func TestRunScores_HugeCount(t *testing.T) {
	for _, input := range []string{"4611686018427387904\n", "9223372036854775807\n90 80 70\n"} {
		c, _ := newTestConsole(input)

		var err error
		require.NotPanics(t, func() { err = c.RunScores(context.Background(), 0) })
		assert.ErrorIs(t, err, io.EOF)
	}
}

func TestRunGrade(t *testing.T) {
	c, out := newTestConsole("")
	c.RunGrade("A")
	c.RunGrade("Z")

	assert.Equal(t, "Outstanding performance.\n"+exercise.InvalidGradeMessage+"\n", out.String())
}

func TestRunIncrement(t *testing.T) {
	c, out := newTestConsole("")
	c.RunIncrement()

	assert.Equal(t, "a = 2, b = 2\na = 2, b = 1\n", out.String())
}
