package exercise

import (
	"context"
	"io"

	"github.com/urfave/cli/v3"

	"practice/cmd/practice/shared"
	"practice/internal/config"
	"practice/internal/console"
)

const (
	NoColorFlag  = "no-color"
	studentsFlag = "students"
	gradeFlag    = "grade"
	capacityFlag = "capacity"
)

// Env is what every exercise command reads from and writes to.
type Env struct {
	In     io.Reader
	Out    io.Writer
	Config config.ConsoleConfig
}

func (e *Env) console(cmd *cli.Command) *console.Console {
	shared.ConfigureColor(e.Config.NoColor || cmd.Bool(NoColorFlag))
	return console.New(e.In, e.Out, e.Config)
}

// GetCommands returns one subcommand per console exercise.
func GetCommands(env *Env) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "minmax",
			Usage: "Read N integers and print the largest and smallest",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return env.console(cmd).RunMinMax(ctx)
			},
		},
		{
			Name:  "scores",
			Usage: "Read korean/english/math scores per student and print totals and averages",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  studentsFlag,
					Usage: "Number of students; 0 asks for it on stdin",
					Value: 4,
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return env.console(cmd).RunScores(ctx, int(cmd.Int(studentsFlag)))
			},
		},
		{
			Name:  "average",
			Usage: "Read integers until -1 and print their sum and average",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return env.console(cmd).RunAverage(ctx)
			},
		},
		{
			Name:  "sum",
			Usage: "Read integers until 0, printing the running total",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return env.console(cmd).RunRunningSum(ctx)
			},
		},
		{
			Name:      "grade",
			Usage:     "Print the feedback message for a letter grade",
			ArgsUsage: "[grade]",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  gradeFlag,
					Usage: "Letter grade (A-E)",
					Value: "A",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				grade := cmd.String(gradeFlag)
				if arg := cmd.Args().First(); arg != "" {
					grade = arg
				}
				env.console(cmd).RunGrade(grade)
				return nil
			},
		},
		{
			Name:  "catalog",
			Usage: "Register and list products from a menu",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  capacityFlag,
					Usage: "Maximum number of products; 0 uses CATALOG_CAPACITY",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				c := *env
				if n := int(cmd.Int(capacityFlag)); n > 0 {
					c.Config.CatalogCapacity = n
				}
				return c.console(cmd).RunCatalog(ctx)
			},
		},
		{
			Name:  "cart",
			Usage: "Add purchases and check out from a menu",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return env.console(cmd).RunCart(ctx)
			},
		},
		{
			Name:  "increment",
			Usage: "Show prefix and postfix increment results",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				env.console(cmd).RunIncrement()
				return nil
			},
		},
	}
}
